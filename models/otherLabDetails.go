package models

import (
	"context"

	"bitbucket.org/mmdatafocus/labregistry_backend/config"
	"bitbucket.org/mmdatafocus/labregistry_backend/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OtherLabDetails struct {
	ID             string `gorm:"primary_key;size:36" json:"id"`
	OrganizationID string `gorm:"size:36;not null;index" json:"organization_id"`

	OtherDetails            string   `gorm:"type:text" json:"other_details"`
	OtherDetailsDocumentUrl string   `gorm:"size:500" json:"other_details_document_url"`
	LayoutLabPremisesUrl    string   `gorm:"size:500" json:"layout_lab_premises_url"`
	OrganizationChartUrl    string   `gorm:"size:500" json:"organization_chart_url"`
	GpsLatitude             *float64 `json:"gps_latitude"`
	GpsLongitude            *float64 `json:"gps_longitude"`
}

// OtherLabDetailsUpdate is the second half of Step 8. GPS coordinates arrive
// as strings from the wizard form and are parsed server side.
type OtherLabDetailsUpdate struct {
	OtherDetails            string `json:"other_details"`
	OtherDetailsDocumentUrl string `json:"other_details_document_url"`
	LayoutLabPremisesUrl    string `json:"layout_lab_premises_url"`
	OrganizationChartUrl    string `json:"organization_chart_url"`
	GpsLatitude             string `json:"gps_latitude"`
	GpsLongitude            string `json:"gps_longitude"`
}

func UpdateOtherLabDetails(ctx context.Context, organizationId string, input *OtherLabDetailsUpdate) (*Organization, error) {

	if err := utils.ValidateResourceId[Organization](ctx, organizationId); err != nil {
		return nil, err
	}

	var latitude, longitude *float64
	if input.GpsLatitude != "" || input.GpsLongitude != "" {
		lat, lon, ok := utils.ParseCoordinates(input.GpsLatitude, input.GpsLongitude)
		if !ok {
			return nil, utils.NewValidationError("gps_latitude", "Invalid GPS coordinates")
		}
		latitude, longitude = &lat, &lon
	}

	db := config.GetDB()

	var details OtherLabDetails
	err := db.WithContext(ctx).Where("organization_id = ?", organizationId).First(&details).Error
	if err == gorm.ErrRecordNotFound {
		details = OtherLabDetails{ID: uuid.NewString(), OrganizationID: organizationId}
	} else if err != nil {
		return nil, err
	}

	details.OtherDetails = input.OtherDetails
	details.OtherDetailsDocumentUrl = input.OtherDetailsDocumentUrl
	details.LayoutLabPremisesUrl = input.LayoutLabPremisesUrl
	details.OrganizationChartUrl = input.OrganizationChartUrl
	details.GpsLatitude = latitude
	details.GpsLongitude = longitude

	if err := db.WithContext(ctx).Save(&details).Error; err != nil {
		config.LogError(config.GetLogger(), "otherLabDetails.go", "UpdateOtherLabDetails", "Save", organizationId, err)
		return nil, err
	}

	return GetOrganization(ctx, organizationId)
}
