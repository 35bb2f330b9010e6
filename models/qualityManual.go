package models

import (
	"context"
	"time"

	"bitbucket.org/mmdatafocus/labregistry_backend/config"
	"bitbucket.org/mmdatafocus/labregistry_backend/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QualityManual struct {
	ID             string `gorm:"primary_key;size:36" json:"id"`
	OrganizationID string `gorm:"size:36;not null;index" json:"organization_id"`

	Title       string `gorm:"size:255" json:"title"`
	IssueNumber string `gorm:"size:50" json:"issue_number"`
	IssueDate   string `gorm:"size:10" json:"issue_date"`
	Amendments  string `gorm:"size:255" json:"amendments"`
	DocumentUrl string `gorm:"size:500" json:"document_url"`
}

type SOP struct {
	ID             string `gorm:"primary_key;size:36" json:"id"`
	OrganizationID string `gorm:"size:36;not null;index" json:"organization_id"`

	Title       string `gorm:"size:255" json:"title"`
	Number      string `gorm:"size:50" json:"number"`
	IssueNumber string `gorm:"size:50" json:"issue_number"`
	IssueDate   string `gorm:"size:10" json:"issue_date"`
	Amendments  string `gorm:"size:255" json:"amendments"`
	OrderIndex  int    `gorm:"default:0" json:"order_index"`
}

type SOPInput struct {
	Title       string `json:"title"`
	Number      string `json:"number"`
	IssueNumber string `json:"issue_number"`
	IssueDate   string `json:"issue_date"`
	Amendments  string `json:"amendments"`
}

// QualityManualUpdate is the Step 9 payload. The manual row is upserted, SOPs
// are replaced wholesale in the submitted order.
type QualityManualUpdate struct {
	Title       string     `json:"title"`
	IssueNumber string     `json:"issue_number"`
	IssueDate   string     `json:"issue_date"`
	Amendments  string     `json:"amendments"`
	DocumentUrl string     `json:"document_url"`
	SOPs        []SOPInput `json:"sops"`
}

func validateIssueDate(field, value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return utils.NewValidationError(field, "Invalid date format, expected YYYY-MM-DD")
	}
	return nil
}

func (input *QualityManualUpdate) validate() error {
	if err := validateIssueDate("issue_date", input.IssueDate); err != nil {
		return err
	}
	for _, sop := range input.SOPs {
		if err := validateIssueDate("sops.issue_date", sop.IssueDate); err != nil {
			return err
		}
	}
	return nil
}

func UpdateQualityManual(ctx context.Context, organizationId string, input *QualityManualUpdate) (*Organization, error) {

	if err := input.validate(); err != nil {
		return nil, err
	}

	if err := utils.ValidateResourceId[Organization](ctx, organizationId); err != nil {
		return nil, err
	}

	db := config.GetDB()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var manual QualityManual
		err := tx.Where("organization_id = ?", organizationId).First(&manual).Error
		if err == gorm.ErrRecordNotFound {
			manual = QualityManual{ID: uuid.NewString(), OrganizationID: organizationId}
		} else if err != nil {
			return err
		}

		manual.Title = input.Title
		manual.IssueNumber = input.IssueNumber
		manual.IssueDate = input.IssueDate
		manual.Amendments = input.Amendments
		manual.DocumentUrl = input.DocumentUrl

		if err := tx.Save(&manual).Error; err != nil {
			return err
		}

		if err := tx.Where("organization_id = ?", organizationId).Delete(&SOP{}).Error; err != nil {
			return err
		}
		for idx, sop := range input.SOPs {
			row := SOP{
				ID:             uuid.NewString(),
				OrganizationID: organizationId,
				Title:          sop.Title,
				Number:         sop.Number,
				IssueNumber:    sop.IssueNumber,
				IssueDate:      sop.IssueDate,
				Amendments:     sop.Amendments,
				OrderIndex:     idx,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		config.LogError(config.GetLogger(), "qualityManual.go", "UpdateQualityManual", "Transaction", organizationId, err)
		return nil, err
	}

	return GetOrganization(ctx, organizationId)
}
