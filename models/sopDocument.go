package models

import (
	"context"
	"time"

	"bitbucket.org/mmdatafocus/labregistry_backend/config"
	"bitbucket.org/mmdatafocus/labregistry_backend/utils"
)

// SOPDocument is the controlled-document register entry on the dashboard,
// distinct from the wizard's Step 9 SOP listing.
type SOPDocument struct {
	ID             int    `gorm:"primary_key" json:"id"`
	OrganizationID string `gorm:"size:36;not null;index" json:"organization_id"`

	Title          string    `gorm:"size:255;not null" json:"title" binding:"required"`
	DocumentNumber string    `gorm:"size:100" json:"document_number"`
	Revision       string    `gorm:"size:50" json:"revision"`
	EffectiveDate  string    `gorm:"size:10" json:"effective_date"`
	ReviewDate     string    `gorm:"size:10" json:"review_date"`
	Department     string    `gorm:"size:100" json:"department"`
	FileUrl        string    `gorm:"size:500" json:"file_url"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type SOPDocumentInput struct {
	Title          string `json:"title" binding:"required"`
	DocumentNumber string `json:"document_number"`
	Revision       string `json:"revision"`
	EffectiveDate  string `json:"effective_date"`
	ReviewDate     string `json:"review_date"`
	Department     string `json:"department"`
	FileUrl        string `json:"file_url"`
}

func (input *SOPDocumentInput) apply(row *SOPDocument) {
	row.Title = input.Title
	row.DocumentNumber = input.DocumentNumber
	row.Revision = input.Revision
	row.EffectiveDate = input.EffectiveDate
	row.ReviewDate = input.ReviewDate
	row.Department = input.Department
	row.FileUrl = input.FileUrl
}

func GetSOPDocuments(ctx context.Context, organizationId string) ([]*SOPDocument, error) {

	cacheKey := listCacheKey[SOPDocument](organizationId)
	var cached []*SOPDocument
	if found, err := config.GetRedisObject(cacheKey, &cached); err == nil && found {
		return cached, nil
	}

	results, err := utils.FetchAllModels[SOPDocument](ctx, organizationId)
	if err != nil {
		return nil, err
	}

	_ = config.SetRedisObject(cacheKey, results, utils.GetCacheLifespan())
	return results, nil
}

func GetSOPDocument(ctx context.Context, organizationId string, id int) (*SOPDocument, error) {
	return utils.FetchModel[SOPDocument](ctx, organizationId, id)
}

func CreateSOPDocument(ctx context.Context, organizationId string, input *SOPDocumentInput) (*SOPDocument, error) {

	row := SOPDocument{OrganizationID: organizationId}
	input.apply(&row)

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&row).Error; err != nil {
		config.LogError(config.GetLogger(), "sopDocument.go", "CreateSOPDocument", "Create", row, err)
		return nil, err
	}

	_ = config.RemoveRedisKey(listCacheKey[SOPDocument](organizationId))
	return &row, nil
}

func UpdateSOPDocument(ctx context.Context, organizationId string, id int, input *SOPDocumentInput) (*SOPDocument, error) {

	row, err := utils.FetchModel[SOPDocument](ctx, organizationId, id)
	if err != nil {
		return nil, err
	}

	input.apply(row)

	db := config.GetDB()
	if err := db.WithContext(ctx).Save(row).Error; err != nil {
		config.LogError(config.GetLogger(), "sopDocument.go", "UpdateSOPDocument", "Save", row, err)
		return nil, err
	}

	_ = config.RemoveRedisKey(listCacheKey[SOPDocument](organizationId))
	return row, nil
}

func DeleteSOPDocument(ctx context.Context, organizationId string, id int) error {

	row, err := utils.FetchModel[SOPDocument](ctx, organizationId, id)
	if err != nil {
		return err
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(row).Error; err != nil {
		config.LogError(config.GetLogger(), "sopDocument.go", "DeleteSOPDocument", "Delete", id, err)
		return err
	}

	_ = config.RemoveRedisKey(listCacheKey[SOPDocument](organizationId))
	return nil
}
