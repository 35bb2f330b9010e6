package models

import (
	"log"

	"bitbucket.org/mmdatafocus/labregistry_backend/config"
)

func MigrateTable() {
	db := config.GetDB()

	err := db.AutoMigrate(
		&Organization{},
		&RegisteredOffice{}, &TopManagement{},
		&ParentOrganization{}, &BankDetails{},
		&WorkingSchedule{}, &ShiftTiming{},
		&ComplianceDocument{}, &PolicyDocuments{}, &InfrastructureDetails{},
		&AccreditationDocument{}, &OtherLabDetails{},
		&QualityManual{}, &SOP{}, &QualityFormat{}, &QualityProcedure{},
		&User{},
		&Instrument{}, &Calibration{}, &Consumable{},
		&SOPDocument{}, &Audit{}, &NonConformance{},
	)
	if err != nil {
		log.Fatal(err)
	}
}
