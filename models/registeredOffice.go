package models

import (
	"context"

	"bitbucket.org/mmdatafocus/labregistry_backend/config"
	"bitbucket.org/mmdatafocus/labregistry_backend/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RegisteredOffice struct {
	ID             string `gorm:"primary_key;size:36" json:"id"`
	OrganizationID string `gorm:"size:36;not null;index" json:"organization_id"`

	SameAsLabAddress          bool   `gorm:"default:false" json:"same_as_lab_address"`
	Address                   string `gorm:"type:text" json:"address"`
	Country                   string `gorm:"size:100;default:India" json:"country"`
	State                     string `gorm:"size:100" json:"state"`
	District                  string `gorm:"size:100" json:"district"`
	City                      string `gorm:"size:100" json:"city"`
	PinCode                   string `gorm:"size:10" json:"pin_code"`
	Mobile                    string `gorm:"size:20" json:"mobile"`
	Telephone                 string `gorm:"size:20" json:"telephone"`
	Fax                       string `gorm:"size:20" json:"fax"`
	TopManagementDocumentUrl  string `gorm:"size:500" json:"top_management_document_url"`
}

type TopManagement struct {
	ID             string `gorm:"primary_key;size:36" json:"id"`
	OrganizationID string `gorm:"size:36;not null;index" json:"organization_id"`

	Name        string `gorm:"size:255;not null" json:"name"`
	Designation string `gorm:"size:255;not null" json:"designation"`
	Mobile      string `gorm:"size:20;not null" json:"mobile"`
	Telephone   string `gorm:"size:20" json:"telephone"`
	Fax         string `gorm:"size:20" json:"fax"`
	OrderIndex  int    `gorm:"default:0" json:"order_index"`
}

type TopManagementInput struct {
	Name        string `json:"name" binding:"required"`
	Designation string `json:"designation" binding:"required"`
	Mobile      string `json:"mobile" binding:"required"`
	Telephone   string `json:"telephone"`
	Fax         string `json:"fax"`
}

// RegisteredOfficeUpdate is the Step 2 payload. The office row is upserted,
// top management members are replaced wholesale in the submitted order.
type RegisteredOfficeUpdate struct {
	SameAsLabAddress         bool                 `json:"same_as_lab_address"`
	Address                  string               `json:"address"`
	Country                  string               `json:"country"`
	State                    string               `json:"state"`
	District                 string               `json:"district"`
	City                     string               `json:"city"`
	PinCode                  string               `json:"pin_code"`
	Mobile                   string               `json:"mobile"`
	Telephone                string               `json:"telephone"`
	Fax                      string               `json:"fax"`
	TopManagementDocumentUrl string               `json:"top_management_document_url"`
	TopManagement            []TopManagementInput `json:"top_management"`
}

func (input *RegisteredOfficeUpdate) validate() error {
	if input.PinCode != "" && !utils.IsValidPinCode(input.PinCode) {
		return utils.NewValidationError("pin_code", "Invalid PIN code format")
	}
	for _, member := range input.TopManagement {
		if err := utils.ValidatePhoneNumber(member.Mobile, utils.CountryCode); err != nil {
			return utils.NewValidationError("top_management.mobile", "Invalid mobile number: "+member.Mobile)
		}
	}
	return nil
}

func UpdateRegisteredOffice(ctx context.Context, organizationId string, input *RegisteredOfficeUpdate) (*Organization, error) {

	if err := input.validate(); err != nil {
		return nil, err
	}

	if err := utils.ValidateResourceId[Organization](ctx, organizationId); err != nil {
		return nil, err
	}

	country := input.Country
	if country == "" {
		country = "India"
	}

	db := config.GetDB()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var office RegisteredOffice
		err := tx.Where("organization_id = ?", organizationId).First(&office).Error
		if err == gorm.ErrRecordNotFound {
			office = RegisteredOffice{ID: uuid.NewString(), OrganizationID: organizationId}
		} else if err != nil {
			return err
		}

		office.SameAsLabAddress = input.SameAsLabAddress
		office.Address = input.Address
		office.Country = country
		office.State = input.State
		office.District = input.District
		office.City = input.City
		office.PinCode = input.PinCode
		office.Mobile = input.Mobile
		office.Telephone = input.Telephone
		office.Fax = input.Fax
		office.TopManagementDocumentUrl = input.TopManagementDocumentUrl

		if err := tx.Save(&office).Error; err != nil {
			return err
		}

		if err := tx.Where("organization_id = ?", organizationId).Delete(&TopManagement{}).Error; err != nil {
			return err
		}
		for idx, member := range input.TopManagement {
			row := TopManagement{
				ID:             uuid.NewString(),
				OrganizationID: organizationId,
				Name:           member.Name,
				Designation:    member.Designation,
				Mobile:         member.Mobile,
				Telephone:      member.Telephone,
				Fax:            member.Fax,
				OrderIndex:     idx,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		config.LogError(config.GetLogger(), "registeredOffice.go", "UpdateRegisteredOffice", "Transaction", organizationId, err)
		return nil, err
	}

	return GetOrganization(ctx, organizationId)
}
