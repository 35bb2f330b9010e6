package models

import (
	"context"

	"bitbucket.org/mmdatafocus/labregistry_backend/config"
	"bitbucket.org/mmdatafocus/labregistry_backend/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ComplianceDocument struct {
	ID             string `gorm:"primary_key;size:36" json:"id"`
	OrganizationID string `gorm:"size:36;not null;index" json:"organization_id"`

	DocumentType      string `gorm:"size:100" json:"document_type"`
	DocumentTypeOther string `gorm:"size:255" json:"document_type_other"`
	DocumentId        string `gorm:"size:100" json:"document_id"`
	FileUrl           string `gorm:"size:500" json:"file_url"`
}

type ComplianceDocumentInput struct {
	DocumentType      string `json:"document_type"`
	DocumentTypeOther string `json:"document_type_other"`
	DocumentId        string `json:"document_id"`
	FileUrl           string `json:"file_url"`
}

// ComplianceDocumentsUpdate is the Step 5 payload. Documents are replaced
// wholesale.
type ComplianceDocumentsUpdate struct {
	ComplianceDocuments []ComplianceDocumentInput `json:"compliance_documents"`
}

func UpdateComplianceDocuments(ctx context.Context, organizationId string, input *ComplianceDocumentsUpdate) (*Organization, error) {

	if err := utils.ValidateResourceId[Organization](ctx, organizationId); err != nil {
		return nil, err
	}

	db := config.GetDB()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("organization_id = ?", organizationId).Delete(&ComplianceDocument{}).Error; err != nil {
			return err
		}
		for _, doc := range input.ComplianceDocuments {
			row := ComplianceDocument{
				ID:                uuid.NewString(),
				OrganizationID:    organizationId,
				DocumentType:      doc.DocumentType,
				DocumentTypeOther: doc.DocumentTypeOther,
				DocumentId:        doc.DocumentId,
				FileUrl:           doc.FileUrl,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		config.LogError(config.GetLogger(), "complianceDocument.go", "UpdateComplianceDocuments", "Transaction", organizationId, err)
		return nil, err
	}

	return GetOrganization(ctx, organizationId)
}
