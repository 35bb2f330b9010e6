package models

import (
	"context"

	"bitbucket.org/mmdatafocus/labregistry_backend/config"
	"bitbucket.org/mmdatafocus/labregistry_backend/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ParentOrganization struct {
	ID             string `gorm:"primary_key;size:36" json:"id"`
	OrganizationID string `gorm:"size:36;not null;index" json:"organization_id"`

	SameAsLaboratory bool   `gorm:"default:false" json:"same_as_laboratory"`
	Name             string `gorm:"size:255" json:"name"`
	Address          string `gorm:"type:text" json:"address"`
	Country          string `gorm:"size:100;default:India" json:"country"`
	State            string `gorm:"size:100" json:"state"`
	District         string `gorm:"size:100" json:"district"`
	City             string `gorm:"size:100" json:"city"`
	PinCode          string `gorm:"size:10" json:"pin_code"`
}

// ParentOrganizationUpdate is the first half of Step 3.
type ParentOrganizationUpdate struct {
	SameAsLaboratory bool   `json:"same_as_laboratory"`
	Name             string `json:"name"`
	Address          string `json:"address"`
	Country          string `json:"country"`
	State            string `json:"state"`
	District         string `json:"district"`
	City             string `json:"city"`
	PinCode          string `json:"pin_code"`
}

func UpdateParentOrganization(ctx context.Context, organizationId string, input *ParentOrganizationUpdate) (*Organization, error) {

	if input.PinCode != "" && !utils.IsValidPinCode(input.PinCode) {
		return nil, utils.NewValidationError("pin_code", "Invalid PIN code format")
	}

	if err := utils.ValidateResourceId[Organization](ctx, organizationId); err != nil {
		return nil, err
	}

	country := input.Country
	if country == "" {
		country = "India"
	}

	db := config.GetDB()

	var parent ParentOrganization
	err := db.WithContext(ctx).Where("organization_id = ?", organizationId).First(&parent).Error
	if err == gorm.ErrRecordNotFound {
		parent = ParentOrganization{ID: uuid.NewString(), OrganizationID: organizationId}
	} else if err != nil {
		return nil, err
	}

	parent.SameAsLaboratory = input.SameAsLaboratory
	parent.Name = input.Name
	parent.Address = input.Address
	parent.Country = country
	parent.State = input.State
	parent.District = input.District
	parent.City = input.City
	parent.PinCode = input.PinCode

	if err := db.WithContext(ctx).Save(&parent).Error; err != nil {
		config.LogError(config.GetLogger(), "parentOrganization.go", "UpdateParentOrganization", "Save", organizationId, err)
		return nil, err
	}

	return GetOrganization(ctx, organizationId)
}
