package models

import (
	"context"
	"time"

	"bitbucket.org/mmdatafocus/labregistry_backend/config"
	"bitbucket.org/mmdatafocus/labregistry_backend/utils"
)

type NonConformance struct {
	ID             int    `gorm:"primary_key" json:"id"`
	OrganizationID string `gorm:"size:36;not null;index" json:"organization_id"`

	Title            string      `gorm:"size:255;not null" json:"title" binding:"required"`
	Description      string      `gorm:"type:text" json:"description"`
	Source           string      `gorm:"size:100" json:"source"`
	Severity         NCRSeverity `gorm:"size:20;default:minor" json:"severity"`
	RaisedDate       string      `gorm:"size:10" json:"raised_date"`
	DueDate          string      `gorm:"size:10" json:"due_date"`
	ClosedDate       string      `gorm:"size:10" json:"closed_date"`
	CorrectiveAction string      `gorm:"type:text" json:"corrective_action"`
	AssignedTo       string      `gorm:"size:255" json:"assigned_to"`
	Status           NCRStatus   `gorm:"size:20;default:open" json:"status"`
	CreatedAt        time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

type NonConformanceInput struct {
	Title            string `json:"title" binding:"required"`
	Description      string `json:"description"`
	Source           string `json:"source"`
	Severity         string `json:"severity"`
	RaisedDate       string `json:"raised_date"`
	DueDate          string `json:"due_date"`
	ClosedDate       string `json:"closed_date"`
	CorrectiveAction string `json:"corrective_action"`
	AssignedTo       string `json:"assigned_to"`
	Status           string `json:"status"`
}

func (input *NonConformanceInput) apply(row *NonConformance) {
	row.Title = input.Title
	row.Description = input.Description
	row.Source = input.Source
	if input.Severity != "" {
		row.Severity = NCRSeverity(input.Severity)
	}
	row.RaisedDate = input.RaisedDate
	row.DueDate = input.DueDate
	row.ClosedDate = input.ClosedDate
	row.CorrectiveAction = input.CorrectiveAction
	row.AssignedTo = input.AssignedTo
	if input.Status != "" {
		row.Status = NCRStatus(input.Status)
	}
}

func GetNonConformances(ctx context.Context, organizationId string) ([]*NonConformance, error) {

	cacheKey := listCacheKey[NonConformance](organizationId)
	var cached []*NonConformance
	if found, err := config.GetRedisObject(cacheKey, &cached); err == nil && found {
		return cached, nil
	}

	results, err := utils.FetchAllModels[NonConformance](ctx, organizationId)
	if err != nil {
		return nil, err
	}

	_ = config.SetRedisObject(cacheKey, results, utils.GetCacheLifespan())
	return results, nil
}

func GetNonConformance(ctx context.Context, organizationId string, id int) (*NonConformance, error) {
	return utils.FetchModel[NonConformance](ctx, organizationId, id)
}

func CreateNonConformance(ctx context.Context, organizationId string, input *NonConformanceInput) (*NonConformance, error) {

	row := NonConformance{OrganizationID: organizationId, Severity: NCRSeverityMinor, Status: NCRStatusOpen}
	input.apply(&row)

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&row).Error; err != nil {
		config.LogError(config.GetLogger(), "nonConformance.go", "CreateNonConformance", "Create", row, err)
		return nil, err
	}

	_ = config.RemoveRedisKey(listCacheKey[NonConformance](organizationId))
	return &row, nil
}

func UpdateNonConformance(ctx context.Context, organizationId string, id int, input *NonConformanceInput) (*NonConformance, error) {

	row, err := utils.FetchModel[NonConformance](ctx, organizationId, id)
	if err != nil {
		return nil, err
	}

	input.apply(row)

	db := config.GetDB()
	if err := db.WithContext(ctx).Save(row).Error; err != nil {
		config.LogError(config.GetLogger(), "nonConformance.go", "UpdateNonConformance", "Save", row, err)
		return nil, err
	}

	_ = config.RemoveRedisKey(listCacheKey[NonConformance](organizationId))
	return row, nil
}

func DeleteNonConformance(ctx context.Context, organizationId string, id int) error {

	row, err := utils.FetchModel[NonConformance](ctx, organizationId, id)
	if err != nil {
		return err
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(row).Error; err != nil {
		config.LogError(config.GetLogger(), "nonConformance.go", "DeleteNonConformance", "Delete", id, err)
		return err
	}

	_ = config.RemoveRedisKey(listCacheKey[NonConformance](organizationId))
	return nil
}
