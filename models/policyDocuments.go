package models

import (
	"context"

	"bitbucket.org/mmdatafocus/labregistry_backend/config"
	"bitbucket.org/mmdatafocus/labregistry_backend/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PolicyDocuments struct {
	ID             string `gorm:"primary_key;size:36" json:"id"`
	OrganizationID string `gorm:"size:36;not null;index" json:"organization_id"`

	ImpartialityDocumentUrl         string `gorm:"size:500" json:"impartiality_document_url"`
	TermsConditionsDocumentUrl      string `gorm:"size:500" json:"terms_conditions_document_url"`
	CodeOfEthicsDocumentUrl         string `gorm:"size:500" json:"code_of_ethics_document_url"`
	TestingChargesPolicyDocumentUrl string `gorm:"size:500" json:"testing_charges_policy_document_url"`
}

// PolicyDocumentsUpdate is the Step 6 payload.
type PolicyDocumentsUpdate struct {
	ImpartialityDocumentUrl         string `json:"impartiality_document_url"`
	TermsConditionsDocumentUrl      string `json:"terms_conditions_document_url"`
	CodeOfEthicsDocumentUrl         string `json:"code_of_ethics_document_url"`
	TestingChargesPolicyDocumentUrl string `json:"testing_charges_policy_document_url"`
}

func UpdatePolicyDocuments(ctx context.Context, organizationId string, input *PolicyDocumentsUpdate) (*Organization, error) {

	if err := utils.ValidateResourceId[Organization](ctx, organizationId); err != nil {
		return nil, err
	}

	db := config.GetDB()

	var docs PolicyDocuments
	err := db.WithContext(ctx).Where("organization_id = ?", organizationId).First(&docs).Error
	if err == gorm.ErrRecordNotFound {
		docs = PolicyDocuments{ID: uuid.NewString(), OrganizationID: organizationId}
	} else if err != nil {
		return nil, err
	}

	docs.ImpartialityDocumentUrl = input.ImpartialityDocumentUrl
	docs.TermsConditionsDocumentUrl = input.TermsConditionsDocumentUrl
	docs.CodeOfEthicsDocumentUrl = input.CodeOfEthicsDocumentUrl
	docs.TestingChargesPolicyDocumentUrl = input.TestingChargesPolicyDocumentUrl

	if err := db.WithContext(ctx).Save(&docs).Error; err != nil {
		config.LogError(config.GetLogger(), "policyDocuments.go", "UpdatePolicyDocuments", "Save", organizationId, err)
		return nil, err
	}

	return GetOrganization(ctx, organizationId)
}
