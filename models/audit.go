package models

import (
	"context"
	"time"

	"bitbucket.org/mmdatafocus/labregistry_backend/config"
	"bitbucket.org/mmdatafocus/labregistry_backend/utils"
)

type Audit struct {
	ID             int    `gorm:"primary_key" json:"id"`
	OrganizationID string `gorm:"size:36;not null;index" json:"organization_id"`

	Title         string      `gorm:"size:255;not null" json:"title" binding:"required"`
	AuditType     string      `gorm:"size:100" json:"audit_type"`
	ScheduledDate string      `gorm:"size:10" json:"scheduled_date"`
	CompletedDate string      `gorm:"size:10" json:"completed_date"`
	Auditor       string      `gorm:"size:255" json:"auditor"`
	Scope         string      `gorm:"type:text" json:"scope"`
	Findings      string      `gorm:"type:text" json:"findings"`
	Status        AuditStatus `gorm:"size:20;default:planned" json:"status"`
	CreatedAt     time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

type AuditInput struct {
	Title         string `json:"title" binding:"required"`
	AuditType     string `json:"audit_type"`
	ScheduledDate string `json:"scheduled_date"`
	CompletedDate string `json:"completed_date"`
	Auditor       string `json:"auditor"`
	Scope         string `json:"scope"`
	Findings      string `json:"findings"`
	Status        string `json:"status"`
}

func (input *AuditInput) apply(row *Audit) {
	row.Title = input.Title
	row.AuditType = input.AuditType
	row.ScheduledDate = input.ScheduledDate
	row.CompletedDate = input.CompletedDate
	row.Auditor = input.Auditor
	row.Scope = input.Scope
	row.Findings = input.Findings
	if input.Status != "" {
		row.Status = AuditStatus(input.Status)
	}
}

func GetAudits(ctx context.Context, organizationId string) ([]*Audit, error) {

	cacheKey := listCacheKey[Audit](organizationId)
	var cached []*Audit
	if found, err := config.GetRedisObject(cacheKey, &cached); err == nil && found {
		return cached, nil
	}

	results, err := utils.FetchAllModels[Audit](ctx, organizationId)
	if err != nil {
		return nil, err
	}

	_ = config.SetRedisObject(cacheKey, results, utils.GetCacheLifespan())
	return results, nil
}

func GetAudit(ctx context.Context, organizationId string, id int) (*Audit, error) {
	return utils.FetchModel[Audit](ctx, organizationId, id)
}

func CreateAudit(ctx context.Context, organizationId string, input *AuditInput) (*Audit, error) {

	row := Audit{OrganizationID: organizationId, Status: AuditStatusPlanned}
	input.apply(&row)

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&row).Error; err != nil {
		config.LogError(config.GetLogger(), "audit.go", "CreateAudit", "Create", row, err)
		return nil, err
	}

	_ = config.RemoveRedisKey(listCacheKey[Audit](organizationId))
	return &row, nil
}

func UpdateAudit(ctx context.Context, organizationId string, id int, input *AuditInput) (*Audit, error) {

	row, err := utils.FetchModel[Audit](ctx, organizationId, id)
	if err != nil {
		return nil, err
	}

	input.apply(row)

	db := config.GetDB()
	if err := db.WithContext(ctx).Save(row).Error; err != nil {
		config.LogError(config.GetLogger(), "audit.go", "UpdateAudit", "Save", row, err)
		return nil, err
	}

	_ = config.RemoveRedisKey(listCacheKey[Audit](organizationId))
	return row, nil
}

func DeleteAudit(ctx context.Context, organizationId string, id int) error {

	row, err := utils.FetchModel[Audit](ctx, organizationId, id)
	if err != nil {
		return err
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(row).Error; err != nil {
		config.LogError(config.GetLogger(), "audit.go", "DeleteAudit", "Delete", id, err)
		return err
	}

	_ = config.RemoveRedisKey(listCacheKey[Audit](organizationId))
	return nil
}
