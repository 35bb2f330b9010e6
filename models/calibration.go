package models

import (
	"context"
	"time"

	"bitbucket.org/mmdatafocus/labregistry_backend/config"
	"bitbucket.org/mmdatafocus/labregistry_backend/utils"
)

type Calibration struct {
	ID             int    `gorm:"primary_key" json:"id"`
	OrganizationID string `gorm:"size:36;not null;index" json:"organization_id"`

	InstrumentID      int               `gorm:"not null;index" json:"instrument_id"`
	CalibrationDate   string            `gorm:"size:10" json:"calibration_date"`
	DueDate           string            `gorm:"size:10" json:"due_date"`
	Agency            string            `gorm:"size:255" json:"agency"`
	CertificateNumber string            `gorm:"size:100" json:"certificate_number"`
	CertificateUrl    string            `gorm:"size:500" json:"certificate_url"`
	Status            CalibrationStatus `gorm:"size:20;default:scheduled" json:"status"`
	Remarks           string            `gorm:"type:text" json:"remarks"`
	CreatedAt         time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

type CalibrationInput struct {
	InstrumentID      int    `json:"instrument_id" binding:"required"`
	CalibrationDate   string `json:"calibration_date"`
	DueDate           string `json:"due_date"`
	Agency            string `json:"agency"`
	CertificateNumber string `json:"certificate_number"`
	CertificateUrl    string `json:"certificate_url"`
	Status            string `json:"status"`
	Remarks           string `json:"remarks"`
}

func (input *CalibrationInput) apply(row *Calibration) {
	row.InstrumentID = input.InstrumentID
	row.CalibrationDate = input.CalibrationDate
	row.DueDate = input.DueDate
	row.Agency = input.Agency
	row.CertificateNumber = input.CertificateNumber
	row.CertificateUrl = input.CertificateUrl
	if input.Status != "" {
		row.Status = CalibrationStatus(input.Status)
	}
	row.Remarks = input.Remarks
}

// validate checks the referenced instrument belongs to the same organization.
func (input *CalibrationInput) validate(ctx context.Context, organizationId string) error {
	if _, err := utils.FetchModel[Instrument](ctx, organizationId, input.InstrumentID); err != nil {
		return utils.NewValidationError("instrument_id", "Instrument not found")
	}
	return nil
}

func GetCalibrations(ctx context.Context, organizationId string) ([]*Calibration, error) {

	cacheKey := listCacheKey[Calibration](organizationId)
	var cached []*Calibration
	if found, err := config.GetRedisObject(cacheKey, &cached); err == nil && found {
		return cached, nil
	}

	results, err := utils.FetchAllModels[Calibration](ctx, organizationId)
	if err != nil {
		return nil, err
	}

	_ = config.SetRedisObject(cacheKey, results, utils.GetCacheLifespan())
	return results, nil
}

func GetCalibration(ctx context.Context, organizationId string, id int) (*Calibration, error) {
	return utils.FetchModel[Calibration](ctx, organizationId, id)
}

func CreateCalibration(ctx context.Context, organizationId string, input *CalibrationInput) (*Calibration, error) {

	if err := input.validate(ctx, organizationId); err != nil {
		return nil, err
	}

	row := Calibration{OrganizationID: organizationId, Status: CalibrationStatusScheduled}
	input.apply(&row)

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&row).Error; err != nil {
		config.LogError(config.GetLogger(), "calibration.go", "CreateCalibration", "Create", row, err)
		return nil, err
	}

	_ = config.RemoveRedisKey(listCacheKey[Calibration](organizationId))
	return &row, nil
}

func UpdateCalibration(ctx context.Context, organizationId string, id int, input *CalibrationInput) (*Calibration, error) {

	if err := input.validate(ctx, organizationId); err != nil {
		return nil, err
	}

	row, err := utils.FetchModel[Calibration](ctx, organizationId, id)
	if err != nil {
		return nil, err
	}

	input.apply(row)

	db := config.GetDB()
	if err := db.WithContext(ctx).Save(row).Error; err != nil {
		config.LogError(config.GetLogger(), "calibration.go", "UpdateCalibration", "Save", row, err)
		return nil, err
	}

	_ = config.RemoveRedisKey(listCacheKey[Calibration](organizationId))
	return row, nil
}

func DeleteCalibration(ctx context.Context, organizationId string, id int) error {

	row, err := utils.FetchModel[Calibration](ctx, organizationId, id)
	if err != nil {
		return err
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(row).Error; err != nil {
		config.LogError(config.GetLogger(), "calibration.go", "DeleteCalibration", "Delete", id, err)
		return err
	}

	_ = config.RemoveRedisKey(listCacheKey[Calibration](organizationId))
	return nil
}
