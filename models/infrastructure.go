package models

import (
	"context"

	"bitbucket.org/mmdatafocus/labregistry_backend/config"
	"bitbucket.org/mmdatafocus/labregistry_backend/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InfrastructureDetails struct {
	ID             string `gorm:"primary_key;size:36" json:"id"`
	OrganizationID string `gorm:"size:36;not null;index" json:"organization_id"`

	AdequacySanctionedLoad         string `gorm:"type:text" json:"adequacy_sanctioned_load"`
	AvailabilityUninterruptedPower bool   `gorm:"default:false" json:"availability_uninterrupted_power"`
	StabilityOfSupply              bool   `gorm:"default:false" json:"stability_of_supply"`
	WaterSource                    string `gorm:"size:50" json:"water_source"`
}

// InfrastructureUpdate is the Step 7 payload.
type InfrastructureUpdate struct {
	AdequacySanctionedLoad         string `json:"adequacy_sanctioned_load"`
	AvailabilityUninterruptedPower bool   `json:"availability_uninterrupted_power"`
	StabilityOfSupply              bool   `json:"stability_of_supply"`
	WaterSource                    string `json:"water_source"`
}

func UpdateInfrastructure(ctx context.Context, organizationId string, input *InfrastructureUpdate) (*Organization, error) {

	if err := utils.ValidateResourceId[Organization](ctx, organizationId); err != nil {
		return nil, err
	}

	db := config.GetDB()

	var details InfrastructureDetails
	err := db.WithContext(ctx).Where("organization_id = ?", organizationId).First(&details).Error
	if err == gorm.ErrRecordNotFound {
		details = InfrastructureDetails{ID: uuid.NewString(), OrganizationID: organizationId}
	} else if err != nil {
		return nil, err
	}

	details.AdequacySanctionedLoad = input.AdequacySanctionedLoad
	details.AvailabilityUninterruptedPower = input.AvailabilityUninterruptedPower
	details.StabilityOfSupply = input.StabilityOfSupply
	details.WaterSource = input.WaterSource

	if err := db.WithContext(ctx).Save(&details).Error; err != nil {
		config.LogError(config.GetLogger(), "infrastructure.go", "UpdateInfrastructure", "Save", organizationId, err)
		return nil, err
	}

	return GetOrganization(ctx, organizationId)
}
