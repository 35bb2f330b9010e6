package models

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"bitbucket.org/mmdatafocus/labregistry_backend/config"
	"bitbucket.org/mmdatafocus/labregistry_backend/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StringList stores a slice of strings as a JSON column.
type StringList []string

// Value implements the driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot convert %T to StringList", value)
	}
}

type WorkingSchedule struct {
	ID             string `gorm:"primary_key;size:36" json:"id"`
	OrganizationID string `gorm:"size:36;not null;index" json:"organization_id"`

	WorkingDays                StringList `gorm:"type:json" json:"working_days"`
	OrganizationType           string     `gorm:"size:100" json:"organization_type"`
	OrganizationTypeOther      string     `gorm:"size:255" json:"organization_type_other"`
	ProofOfLegalIdentity       string     `gorm:"size:255" json:"proof_of_legal_identity"`
	ProofOfLegalIdentityOther  string     `gorm:"size:255" json:"proof_of_legal_identity_other"`
	LegalIdentityDocumentId    string     `gorm:"size:100" json:"legal_identity_document_id"`
	LegalIdentityDocumentUrl   string     `gorm:"size:500" json:"legal_identity_document_url"`
}

type ShiftTiming struct {
	ID             string `gorm:"primary_key;size:36" json:"id"`
	OrganizationID string `gorm:"size:36;not null;index" json:"organization_id"`

	ShiftFrom  string `gorm:"size:5;not null" json:"shift_from"`
	ShiftTo    string `gorm:"size:5;not null" json:"shift_to"`
	OrderIndex int    `gorm:"default:0" json:"order_index"`
}

type ShiftTimingInput struct {
	ShiftFrom string `json:"shift_from" binding:"required"`
	ShiftTo   string `json:"shift_to" binding:"required"`
}

// WorkingScheduleUpdate is the Step 4 payload. Shift timings are replaced
// wholesale in the submitted order.
type WorkingScheduleUpdate struct {
	WorkingDays               []string           `json:"working_days"`
	OrganizationType          string             `json:"organization_type"`
	OrganizationTypeOther     string             `json:"organization_type_other"`
	ProofOfLegalIdentity      string             `json:"proof_of_legal_identity"`
	ProofOfLegalIdentityOther string             `json:"proof_of_legal_identity_other"`
	LegalIdentityDocumentId   string             `json:"legal_identity_document_id"`
	LegalIdentityDocumentUrl  string             `json:"legal_identity_document_url"`
	ShiftTimings              []ShiftTimingInput `json:"shift_timings"`
}

func (input *WorkingScheduleUpdate) validate() error {
	for _, shift := range input.ShiftTimings {
		if _, ok := utils.ParseClockTime(shift.ShiftFrom); !ok {
			return utils.NewValidationError("shift_timings.shift_from", "Invalid time format, expected HH:MM")
		}
		if _, ok := utils.ParseClockTime(shift.ShiftTo); !ok {
			return utils.NewValidationError("shift_timings.shift_to", "Invalid time format, expected HH:MM")
		}
	}
	return nil
}

func UpdateWorkingSchedule(ctx context.Context, organizationId string, input *WorkingScheduleUpdate) (*Organization, error) {

	if err := input.validate(); err != nil {
		return nil, err
	}

	if err := utils.ValidateResourceId[Organization](ctx, organizationId); err != nil {
		return nil, err
	}

	db := config.GetDB()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var schedule WorkingSchedule
		err := tx.Where("organization_id = ?", organizationId).First(&schedule).Error
		if err == gorm.ErrRecordNotFound {
			schedule = WorkingSchedule{ID: uuid.NewString(), OrganizationID: organizationId}
		} else if err != nil {
			return err
		}

		schedule.WorkingDays = StringList(input.WorkingDays)
		schedule.OrganizationType = input.OrganizationType
		schedule.OrganizationTypeOther = input.OrganizationTypeOther
		schedule.ProofOfLegalIdentity = input.ProofOfLegalIdentity
		schedule.ProofOfLegalIdentityOther = input.ProofOfLegalIdentityOther
		schedule.LegalIdentityDocumentId = input.LegalIdentityDocumentId
		schedule.LegalIdentityDocumentUrl = input.LegalIdentityDocumentUrl

		if err := tx.Save(&schedule).Error; err != nil {
			return err
		}

		if err := tx.Where("organization_id = ?", organizationId).Delete(&ShiftTiming{}).Error; err != nil {
			return err
		}
		for idx, shift := range input.ShiftTimings {
			from, _ := utils.ParseClockTime(shift.ShiftFrom)
			to, _ := utils.ParseClockTime(shift.ShiftTo)
			row := ShiftTiming{
				ID:             uuid.NewString(),
				OrganizationID: organizationId,
				ShiftFrom:      from,
				ShiftTo:        to,
				OrderIndex:     idx,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		config.LogError(config.GetLogger(), "workingSchedule.go", "UpdateWorkingSchedule", "Transaction", organizationId, err)
		return nil, err
	}

	return GetOrganization(ctx, organizationId)
}
