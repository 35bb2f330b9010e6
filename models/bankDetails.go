package models

import (
	"context"

	"bitbucket.org/mmdatafocus/labregistry_backend/config"
	"bitbucket.org/mmdatafocus/labregistry_backend/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BankDetails struct {
	ID             string `gorm:"primary_key;size:36" json:"id"`
	OrganizationID string `gorm:"size:36;not null;index" json:"organization_id"`

	AccountHolderName  string `gorm:"size:255" json:"account_holder_name"`
	AccountNumber      string `gorm:"size:50" json:"account_number"`
	IfscCode           string `gorm:"size:11" json:"ifsc_code"`
	BranchName         string `gorm:"size:255" json:"branch_name"`
	GstNumber          string `gorm:"size:15" json:"gst_number"`
	CancelledChequeUrl string `gorm:"size:500" json:"cancelled_cheque_url"`
}

// BankDetailsUpdate is the second half of Step 3.
type BankDetailsUpdate struct {
	AccountHolderName  string `json:"account_holder_name"`
	AccountNumber      string `json:"account_number"`
	IfscCode           string `json:"ifsc_code"`
	BranchName         string `json:"branch_name"`
	GstNumber          string `json:"gst_number"`
	CancelledChequeUrl string `json:"cancelled_cheque_url"`
}

func (input *BankDetailsUpdate) validate() error {
	if input.IfscCode != "" && !utils.IsValidIFSC(input.IfscCode) {
		return utils.NewValidationError("ifsc_code", "Invalid IFSC code format")
	}
	if input.GstNumber != "" && !utils.IsValidGSTNumber(input.GstNumber) {
		return utils.NewValidationError("gst_number", "Invalid GST number format")
	}
	return nil
}

func UpdateBankDetails(ctx context.Context, organizationId string, input *BankDetailsUpdate) (*Organization, error) {

	if err := input.validate(); err != nil {
		return nil, err
	}

	if err := utils.ValidateResourceId[Organization](ctx, organizationId); err != nil {
		return nil, err
	}

	db := config.GetDB()

	var bank BankDetails
	err := db.WithContext(ctx).Where("organization_id = ?", organizationId).First(&bank).Error
	if err == gorm.ErrRecordNotFound {
		bank = BankDetails{ID: uuid.NewString(), OrganizationID: organizationId}
	} else if err != nil {
		return nil, err
	}

	bank.AccountHolderName = input.AccountHolderName
	bank.AccountNumber = input.AccountNumber
	bank.IfscCode = input.IfscCode
	bank.BranchName = input.BranchName
	bank.GstNumber = input.GstNumber
	bank.CancelledChequeUrl = input.CancelledChequeUrl

	if err := db.WithContext(ctx).Save(&bank).Error; err != nil {
		config.LogError(config.GetLogger(), "bankDetails.go", "UpdateBankDetails", "Save", organizationId, err)
		return nil, err
	}

	return GetOrganization(ctx, organizationId)
}
