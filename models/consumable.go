package models

import (
	"context"
	"time"

	"bitbucket.org/mmdatafocus/labregistry_backend/config"
	"bitbucket.org/mmdatafocus/labregistry_backend/utils"
)

type Consumable struct {
	ID             int    `gorm:"primary_key" json:"id"`
	OrganizationID string `gorm:"size:36;not null;index" json:"organization_id"`

	Name         string    `gorm:"size:255;not null" json:"name" binding:"required"`
	Category     string    `gorm:"size:100" json:"category"`
	Unit         string    `gorm:"size:50" json:"unit"`
	Quantity     float64   `json:"quantity"`
	ReorderLevel float64   `json:"reorder_level"`
	Supplier     string    `gorm:"size:255" json:"supplier"`
	ExpiryDate   string    `gorm:"size:10" json:"expiry_date"`
	BatchNumber  string    `gorm:"size:100" json:"batch_number"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type ConsumableInput struct {
	Name         string  `json:"name" binding:"required"`
	Category     string  `json:"category"`
	Unit         string  `json:"unit"`
	Quantity     float64 `json:"quantity"`
	ReorderLevel float64 `json:"reorder_level"`
	Supplier     string  `json:"supplier"`
	ExpiryDate   string  `json:"expiry_date"`
	BatchNumber  string  `json:"batch_number"`
}

func (input *ConsumableInput) apply(row *Consumable) {
	row.Name = input.Name
	row.Category = input.Category
	row.Unit = input.Unit
	row.Quantity = input.Quantity
	row.ReorderLevel = input.ReorderLevel
	row.Supplier = input.Supplier
	row.ExpiryDate = input.ExpiryDate
	row.BatchNumber = input.BatchNumber
}

func GetConsumables(ctx context.Context, organizationId string) ([]*Consumable, error) {

	cacheKey := listCacheKey[Consumable](organizationId)
	var cached []*Consumable
	if found, err := config.GetRedisObject(cacheKey, &cached); err == nil && found {
		return cached, nil
	}

	results, err := utils.FetchAllModels[Consumable](ctx, organizationId)
	if err != nil {
		return nil, err
	}

	_ = config.SetRedisObject(cacheKey, results, utils.GetCacheLifespan())
	return results, nil
}

func GetConsumable(ctx context.Context, organizationId string, id int) (*Consumable, error) {
	return utils.FetchModel[Consumable](ctx, organizationId, id)
}

func CreateConsumable(ctx context.Context, organizationId string, input *ConsumableInput) (*Consumable, error) {

	row := Consumable{OrganizationID: organizationId}
	input.apply(&row)

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&row).Error; err != nil {
		config.LogError(config.GetLogger(), "consumable.go", "CreateConsumable", "Create", row, err)
		return nil, err
	}

	_ = config.RemoveRedisKey(listCacheKey[Consumable](organizationId))
	return &row, nil
}

func UpdateConsumable(ctx context.Context, organizationId string, id int, input *ConsumableInput) (*Consumable, error) {

	row, err := utils.FetchModel[Consumable](ctx, organizationId, id)
	if err != nil {
		return nil, err
	}

	input.apply(row)

	db := config.GetDB()
	if err := db.WithContext(ctx).Save(row).Error; err != nil {
		config.LogError(config.GetLogger(), "consumable.go", "UpdateConsumable", "Save", row, err)
		return nil, err
	}

	_ = config.RemoveRedisKey(listCacheKey[Consumable](organizationId))
	return row, nil
}

func DeleteConsumable(ctx context.Context, organizationId string, id int) error {

	row, err := utils.FetchModel[Consumable](ctx, organizationId, id)
	if err != nil {
		return err
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(row).Error; err != nil {
		config.LogError(config.GetLogger(), "consumable.go", "DeleteConsumable", "Delete", id, err)
		return err
	}

	_ = config.RemoveRedisKey(listCacheKey[Consumable](organizationId))
	return nil
}
