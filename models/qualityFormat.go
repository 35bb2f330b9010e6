package models

import (
	"context"

	"bitbucket.org/mmdatafocus/labregistry_backend/config"
	"bitbucket.org/mmdatafocus/labregistry_backend/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QualityFormat struct {
	ID             string `gorm:"primary_key;size:36" json:"id"`
	OrganizationID string `gorm:"size:36;not null;index" json:"organization_id"`

	Title       string `gorm:"size:255" json:"title"`
	Number      string `gorm:"size:50" json:"number"`
	IssueNumber string `gorm:"size:50" json:"issue_number"`
	IssueDate   string `gorm:"size:10" json:"issue_date"`
	Amendments  string `gorm:"size:255" json:"amendments"`
	OrderIndex  int    `gorm:"default:0" json:"order_index"`
}

type QualityProcedure struct {
	ID             string `gorm:"primary_key;size:36" json:"id"`
	OrganizationID string `gorm:"size:36;not null;index" json:"organization_id"`

	Title       string `gorm:"size:255" json:"title"`
	Number      string `gorm:"size:50" json:"number"`
	FileUrl     string `gorm:"size:500" json:"file_url"`
	IssueNumber string `gorm:"size:50" json:"issue_number"`
	IssueDate   string `gorm:"size:10" json:"issue_date"`
	Amendments  string `gorm:"size:255" json:"amendments"`
	OrderIndex  int    `gorm:"default:0" json:"order_index"`
}

type QualityFormatInput struct {
	Title       string `json:"title"`
	Number      string `json:"number"`
	IssueNumber string `json:"issue_number"`
	IssueDate   string `json:"issue_date"`
	Amendments  string `json:"amendments"`
}

type QualityProcedureInput struct {
	Title       string `json:"title"`
	Number      string `json:"number"`
	FileUrl     string `json:"file_url"`
	IssueNumber string `json:"issue_number"`
	IssueDate   string `json:"issue_date"`
	Amendments  string `json:"amendments"`
}

// QualityFormatsUpdate is the Step 10 payload. Both collections are replaced
// wholesale in the submitted order.
type QualityFormatsUpdate struct {
	QualityFormats    []QualityFormatInput    `json:"quality_formats"`
	QualityProcedures []QualityProcedureInput `json:"quality_procedures"`
}

func (input *QualityFormatsUpdate) validate() error {
	for _, format := range input.QualityFormats {
		if err := validateIssueDate("quality_formats.issue_date", format.IssueDate); err != nil {
			return err
		}
	}
	for _, procedure := range input.QualityProcedures {
		if err := validateIssueDate("quality_procedures.issue_date", procedure.IssueDate); err != nil {
			return err
		}
	}
	return nil
}

func UpdateQualityFormats(ctx context.Context, organizationId string, input *QualityFormatsUpdate) (*Organization, error) {

	if err := input.validate(); err != nil {
		return nil, err
	}

	if err := utils.ValidateResourceId[Organization](ctx, organizationId); err != nil {
		return nil, err
	}

	db := config.GetDB()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Where("organization_id = ?", organizationId).Delete(&QualityFormat{}).Error; err != nil {
			return err
		}
		for idx, format := range input.QualityFormats {
			row := QualityFormat{
				ID:             uuid.NewString(),
				OrganizationID: organizationId,
				Title:          format.Title,
				Number:         format.Number,
				IssueNumber:    format.IssueNumber,
				IssueDate:      format.IssueDate,
				Amendments:     format.Amendments,
				OrderIndex:     idx,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("organization_id = ?", organizationId).Delete(&QualityProcedure{}).Error; err != nil {
			return err
		}
		for idx, procedure := range input.QualityProcedures {
			row := QualityProcedure{
				ID:             uuid.NewString(),
				OrganizationID: organizationId,
				Title:          procedure.Title,
				Number:         procedure.Number,
				FileUrl:        procedure.FileUrl,
				IssueNumber:    procedure.IssueNumber,
				IssueDate:      procedure.IssueDate,
				Amendments:     procedure.Amendments,
				OrderIndex:     idx,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		config.LogError(config.GetLogger(), "qualityFormat.go", "UpdateQualityFormats", "Transaction", organizationId, err)
		return nil, err
	}

	return GetOrganization(ctx, organizationId)
}
