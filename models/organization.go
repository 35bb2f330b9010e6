package models

import (
	"context"
	"errors"
	"time"

	"bitbucket.org/mmdatafocus/labregistry_backend/config"
	"bitbucket.org/mmdatafocus/labregistry_backend/utils"
	"github.com/bsm/redislock"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Organization is the root of the registration wizard. Step 1 fields live on
// the row itself; every other step hangs off it as a child table.
type Organization struct {
	ID string `gorm:"primary_key;size:36" json:"id"`

	// Laboratory Details (Step 1)
	LabName                string `gorm:"size:255;not null" json:"lab_name" binding:"required"`
	LabAddress             string `gorm:"type:text;not null" json:"lab_address" binding:"required"`
	LabCountry             string `gorm:"size:100;default:India" json:"lab_country"`
	LabState               string `gorm:"size:100;not null" json:"lab_state" binding:"required"`
	LabDistrict            string `gorm:"size:100;not null" json:"lab_district" binding:"required"`
	LabCity                string `gorm:"size:100;not null" json:"lab_city" binding:"required"`
	LabPinCode             string `gorm:"size:10;not null" json:"lab_pin_code" binding:"required"`
	LabLogoUrl             string `gorm:"size:500" json:"lab_logo_url"`
	LabProofOfAddress      string `gorm:"size:255" json:"lab_proof_of_address"`
	LabProofOfAddressOther string `gorm:"size:255" json:"lab_proof_of_address_other"`
	LabDocumentId          string `gorm:"size:100" json:"lab_document_id"`
	LabAddressProofUrl     string `gorm:"size:500" json:"lab_address_proof_url"`

	Status    OrganizationStatus `gorm:"size:20;default:draft" json:"status"`
	CreatedAt time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time          `gorm:"autoUpdateTime" json:"updated_at"`

	RegisteredOffice       *RegisteredOffice       `gorm:"constraint:OnDelete:CASCADE" json:"registered_office,omitempty"`
	TopManagement          []TopManagement         `gorm:"constraint:OnDelete:CASCADE" json:"top_management,omitempty"`
	ParentOrganization     *ParentOrganization     `gorm:"constraint:OnDelete:CASCADE" json:"parent_organization,omitempty"`
	BankDetails            *BankDetails            `gorm:"constraint:OnDelete:CASCADE" json:"bank_details,omitempty"`
	WorkingSchedule        *WorkingSchedule        `gorm:"constraint:OnDelete:CASCADE" json:"working_schedule,omitempty"`
	ShiftTimings           []ShiftTiming           `gorm:"constraint:OnDelete:CASCADE" json:"shift_timings,omitempty"`
	ComplianceDocuments    []ComplianceDocument    `gorm:"constraint:OnDelete:CASCADE" json:"compliance_documents,omitempty"`
	PolicyDocuments        *PolicyDocuments        `gorm:"constraint:OnDelete:CASCADE" json:"policy_documents,omitempty"`
	Infrastructure         *InfrastructureDetails  `gorm:"constraint:OnDelete:CASCADE" json:"infrastructure,omitempty"`
	AccreditationDocuments []AccreditationDocument `gorm:"constraint:OnDelete:CASCADE" json:"accreditation_documents,omitempty"`
	OtherDetails           *OtherLabDetails        `gorm:"constraint:OnDelete:CASCADE" json:"other_details,omitempty"`
	QualityManual          *QualityManual          `gorm:"constraint:OnDelete:CASCADE" json:"quality_manual,omitempty"`
	SOPs                   []SOP                   `gorm:"constraint:OnDelete:CASCADE" json:"sops,omitempty"`
	QualityFormats         []QualityFormat         `gorm:"constraint:OnDelete:CASCADE" json:"quality_formats,omitempty"`
	QualityProcedures      []QualityProcedure      `gorm:"constraint:OnDelete:CASCADE" json:"quality_procedures,omitempty"`
}

var organizationAssociations = []string{
	"RegisteredOffice", "TopManagement", "ParentOrganization", "BankDetails",
	"WorkingSchedule", "ShiftTimings", "ComplianceDocuments", "PolicyDocuments",
	"Infrastructure", "AccreditationDocuments", "OtherDetails", "QualityManual",
	"SOPs", "QualityFormats", "QualityProcedures",
}

type NewOrganization struct {
	LabName     string `json:"lab_name" binding:"required"`
	LabAddress  string `json:"lab_address" binding:"required"`
	LabState    string `json:"lab_state" binding:"required"`
	LabDistrict string `json:"lab_district" binding:"required"`
	LabCity     string `json:"lab_city" binding:"required"`
	LabPinCode  string `json:"lab_pin_code" binding:"required"`
}

// LaboratoryDetailsUpdate is the Step 1 payload.
type LaboratoryDetailsUpdate struct {
	LabName                string `json:"lab_name" binding:"required"`
	LabAddress             string `json:"lab_address" binding:"required"`
	LabCountry             string `json:"lab_country"`
	LabState               string `json:"lab_state" binding:"required"`
	LabDistrict            string `json:"lab_district" binding:"required"`
	LabCity                string `json:"lab_city" binding:"required"`
	LabPinCode             string `json:"lab_pin_code" binding:"required"`
	LabLogoUrl             string `json:"lab_logo_url"`
	LabProofOfAddress      string `json:"lab_proof_of_address" binding:"required"`
	LabProofOfAddressOther string `json:"lab_proof_of_address_other"`
	LabDocumentId          string `json:"lab_document_id"`
	LabAddressProofUrl     string `json:"lab_address_proof_url"`
}

func (input *NewOrganization) validate() error {
	if !utils.IsValidPinCode(input.LabPinCode) {
		return utils.NewValidationError("lab_pin_code", "Invalid PIN code format")
	}
	return nil
}

func CreateOrganization(ctx context.Context, input *NewOrganization) (*Organization, error) {

	if err := input.validate(); err != nil {
		return nil, err
	}

	organization := Organization{
		ID:          uuid.NewString(),
		LabName:     input.LabName,
		LabAddress:  input.LabAddress,
		LabCountry:  "India",
		LabState:    input.LabState,
		LabDistrict: input.LabDistrict,
		LabCity:     input.LabCity,
		LabPinCode:  input.LabPinCode,
		Status:      OrganizationStatusDraft,
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&organization).Error; err != nil {
		config.LogError(config.GetLogger(), "organization.go", "CreateOrganization", "Create", organization.LabName, err)
		return nil, err
	}

	return &organization, nil
}

// GetOrganization loads an organization with every wizard section attached.
func GetOrganization(ctx context.Context, id string) (*Organization, error) {
	return utils.FetchSingleModel[Organization](ctx, id, organizationAssociations...)
}

func GetOrganizations(ctx context.Context, skip int, limit int) ([]*Organization, error) {

	if limit <= 0 || limit > config.ListLimit {
		limit = config.ListLimit
	}
	if skip < 0 {
		skip = 0
	}

	db := config.GetDB()
	var results []*Organization
	err := db.WithContext(ctx).Offset(skip).Limit(limit).Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func DeleteOrganization(ctx context.Context, id string) error {

	organization, err := utils.FetchSingleModel[Organization](ctx, id)
	if err != nil {
		return err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Children first; MySQL FK cascade covers fresh schemas but older
		// deployments migrated without the constraint.
		for _, child := range []interface{}{
			&RegisteredOffice{}, &TopManagement{}, &ParentOrganization{},
			&BankDetails{}, &WorkingSchedule{}, &ShiftTiming{},
			&ComplianceDocument{}, &PolicyDocuments{}, &InfrastructureDetails{},
			&AccreditationDocument{}, &OtherLabDetails{}, &QualityManual{},
			&SOP{}, &QualityFormat{}, &QualityProcedure{},
		} {
			if err := tx.Where("organization_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}
		return tx.Delete(organization).Error
	})
	if err != nil {
		config.LogError(config.GetLogger(), "organization.go", "DeleteOrganization", "Transaction", id, err)
	}
	return err
}

// UpdateLaboratoryDetails handles Step 1.
func UpdateLaboratoryDetails(ctx context.Context, id string, input *LaboratoryDetailsUpdate) (*Organization, error) {

	if !utils.IsValidPinCode(input.LabPinCode) {
		return nil, utils.NewValidationError("lab_pin_code", "Invalid PIN code format")
	}

	organization, err := utils.FetchSingleModel[Organization](ctx, id)
	if err != nil {
		return nil, err
	}

	country := input.LabCountry
	if country == "" {
		country = "India"
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(organization).Updates(map[string]interface{}{
		"LabName":                input.LabName,
		"LabAddress":             input.LabAddress,
		"LabCountry":             country,
		"LabState":               input.LabState,
		"LabDistrict":            input.LabDistrict,
		"LabCity":                input.LabCity,
		"LabPinCode":             input.LabPinCode,
		"LabLogoUrl":             input.LabLogoUrl,
		"LabProofOfAddress":      input.LabProofOfAddress,
		"LabProofOfAddressOther": input.LabProofOfAddressOther,
		"LabDocumentId":          input.LabDocumentId,
		"LabAddressProofUrl":     input.LabAddressProofUrl,
	}).Error
	if err != nil {
		config.LogError(config.GetLogger(), "organization.go", "UpdateLaboratoryDetails", "Updates", id, err)
		return nil, err
	}

	return organization, nil
}

// SubmitOrganization flips a complete draft to submitted. A redis lock keeps
// double-clicks from racing past the status check.
func SubmitOrganization(ctx context.Context, id string) (*Organization, error) {

	if locker := config.GetRedisLock(); locker != nil {
		lock, err := locker.Obtain(ctx, "submit:"+id, 10*time.Second, nil)
		if err == nil {
			defer lock.Release(ctx)
		} else if err != redislock.ErrNotObtained {
			return nil, err
		} else {
			return nil, errors.New("submission already in progress")
		}
	}

	organization, err := GetOrganization(ctx, id)
	if err != nil {
		return nil, err
	}

	if organization.Status != OrganizationStatusDraft {
		return nil, errors.New("organization has already been submitted")
	}

	checklist := BuildChecklist(organization)
	if !checklist.IsReadyForSubmission {
		return nil, errors.New("organization is not complete, please fill all required fields")
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Model(organization).Update("Status", OrganizationStatusSubmitted).Error; err != nil {
		config.LogError(config.GetLogger(), "organization.go", "SubmitOrganization", "Update Status", id, err)
		return nil, err
	}
	organization.Status = OrganizationStatusSubmitted

	// Best-effort notification; the submission itself is already durable.
	correlationId, _ := utils.GetCorrelationIdFromContext(ctx)
	if _, err := config.PublishSubmission(ctx, config.SubmissionMessage{
		OrganizationId: organization.ID,
		LabName:        organization.LabName,
		Status:         string(organization.Status),
		SubmittedAt:    time.Now().UTC(),
		CorrelationId:  correlationId,
	}); err != nil {
		config.LogError(config.GetLogger(), "organization.go", "SubmitOrganization", "PublishSubmission", organization.ID, err)
	}

	return organization, nil
}
