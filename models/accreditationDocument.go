package models

import (
	"context"

	"bitbucket.org/mmdatafocus/labregistry_backend/config"
	"bitbucket.org/mmdatafocus/labregistry_backend/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccreditationDocument struct {
	ID             string `gorm:"primary_key;size:36" json:"id"`
	OrganizationID string `gorm:"size:36;not null;index" json:"organization_id"`

	CertificationType      string `gorm:"size:100" json:"certification_type"`
	CertificationTypeOther string `gorm:"size:255" json:"certification_type_other"`
	CertificateNo          string `gorm:"size:100" json:"certificate_no"`
	CertificateFileUrl     string `gorm:"size:500" json:"certificate_file_url"`
	ScopeFileUrl           string `gorm:"size:500" json:"scope_file_url"`
}

type AccreditationDocumentInput struct {
	CertificationType      string `json:"certification_type"`
	CertificationTypeOther string `json:"certification_type_other"`
	CertificateNo          string `json:"certificate_no"`
	CertificateFileUrl     string `json:"certificate_file_url"`
	ScopeFileUrl           string `json:"scope_file_url"`
}

// AccreditationUpdate is the first half of Step 8. Documents are replaced
// wholesale.
type AccreditationUpdate struct {
	AccreditationDocuments []AccreditationDocumentInput `json:"accreditation_documents"`
}

func UpdateAccreditationDocuments(ctx context.Context, organizationId string, input *AccreditationUpdate) (*Organization, error) {

	if err := utils.ValidateResourceId[Organization](ctx, organizationId); err != nil {
		return nil, err
	}

	db := config.GetDB()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("organization_id = ?", organizationId).Delete(&AccreditationDocument{}).Error; err != nil {
			return err
		}
		for _, doc := range input.AccreditationDocuments {
			row := AccreditationDocument{
				ID:                     uuid.NewString(),
				OrganizationID:         organizationId,
				CertificationType:      doc.CertificationType,
				CertificationTypeOther: doc.CertificationTypeOther,
				CertificateNo:          doc.CertificateNo,
				CertificateFileUrl:     doc.CertificateFileUrl,
				ScopeFileUrl:           doc.ScopeFileUrl,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		config.LogError(config.GetLogger(), "accreditationDocument.go", "UpdateAccreditationDocuments", "Transaction", organizationId, err)
		return nil, err
	}

	return GetOrganization(ctx, organizationId)
}
