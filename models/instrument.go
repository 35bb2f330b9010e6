package models

import (
	"context"
	"time"

	"bitbucket.org/mmdatafocus/labregistry_backend/config"
	"bitbucket.org/mmdatafocus/labregistry_backend/utils"
)

type Instrument struct {
	ID             int    `gorm:"primary_key" json:"id"`
	OrganizationID string `gorm:"size:36;not null;index" json:"organization_id"`

	Name                string     `gorm:"size:255;not null" json:"name" binding:"required"`
	Make                string     `gorm:"size:255" json:"make"`
	Model               string     `gorm:"size:255" json:"model"`
	SerialNumber        string     `gorm:"size:100" json:"serial_number"`
	Location            string     `gorm:"size:255" json:"location"`
	Range               string     `gorm:"size:100" json:"range"`
	LeastCount          string     `gorm:"size:100" json:"least_count"`
	LastCalibrationDate string     `gorm:"size:10" json:"last_calibration_date"`
	NextCalibrationDue  string     `gorm:"size:10" json:"next_calibration_due"`
	Status              string     `gorm:"size:50;default:active" json:"status"`
	CreatedAt           time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

type InstrumentInput struct {
	Name                string `json:"name" binding:"required"`
	Make                string `json:"make"`
	Model               string `json:"model"`
	SerialNumber        string `json:"serial_number"`
	Location            string `json:"location"`
	Range               string `json:"range"`
	LeastCount          string `json:"least_count"`
	LastCalibrationDate string `json:"last_calibration_date"`
	NextCalibrationDue  string `json:"next_calibration_due"`
	Status              string `json:"status"`
}

func (input *InstrumentInput) apply(row *Instrument) {
	row.Name = input.Name
	row.Make = input.Make
	row.Model = input.Model
	row.SerialNumber = input.SerialNumber
	row.Location = input.Location
	row.Range = input.Range
	row.LeastCount = input.LeastCount
	row.LastCalibrationDate = input.LastCalibrationDate
	row.NextCalibrationDue = input.NextCalibrationDue
	if input.Status != "" {
		row.Status = input.Status
	}
}

func GetInstruments(ctx context.Context, organizationId string) ([]*Instrument, error) {

	cacheKey := listCacheKey[Instrument](organizationId)
	var cached []*Instrument
	if found, err := config.GetRedisObject(cacheKey, &cached); err == nil && found {
		return cached, nil
	}

	results, err := utils.FetchAllModels[Instrument](ctx, organizationId)
	if err != nil {
		return nil, err
	}

	_ = config.SetRedisObject(cacheKey, results, utils.GetCacheLifespan())
	return results, nil
}

func GetInstrument(ctx context.Context, organizationId string, id int) (*Instrument, error) {
	return utils.FetchModel[Instrument](ctx, organizationId, id)
}

func CreateInstrument(ctx context.Context, organizationId string, input *InstrumentInput) (*Instrument, error) {

	row := Instrument{OrganizationID: organizationId, Status: "active"}
	input.apply(&row)

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&row).Error; err != nil {
		config.LogError(config.GetLogger(), "instrument.go", "CreateInstrument", "Create", row, err)
		return nil, err
	}

	_ = config.RemoveRedisKey(listCacheKey[Instrument](organizationId))
	return &row, nil
}

func UpdateInstrument(ctx context.Context, organizationId string, id int, input *InstrumentInput) (*Instrument, error) {

	row, err := utils.FetchModel[Instrument](ctx, organizationId, id)
	if err != nil {
		return nil, err
	}

	input.apply(row)

	db := config.GetDB()
	if err := db.WithContext(ctx).Save(row).Error; err != nil {
		config.LogError(config.GetLogger(), "instrument.go", "UpdateInstrument", "Save", row, err)
		return nil, err
	}

	_ = config.RemoveRedisKey(listCacheKey[Instrument](organizationId))
	return row, nil
}

func DeleteInstrument(ctx context.Context, organizationId string, id int) error {

	row, err := utils.FetchModel[Instrument](ctx, organizationId, id)
	if err != nil {
		return err
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(row).Error; err != nil {
		config.LogError(config.GetLogger(), "instrument.go", "DeleteInstrument", "Delete", id, err)
		return err
	}

	_ = config.RemoveRedisKey(listCacheKey[Instrument](organizationId))
	return nil
}
