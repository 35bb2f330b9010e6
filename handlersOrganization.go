package main

import (
	"net/http"
	"strconv"

	"bitbucket.org/mmdatafocus/labregistry_backend/models"
	"bitbucket.org/mmdatafocus/labregistry_backend/utils"
	"github.com/gin-gonic/gin"
)

func createOrganizationHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.NewOrganization
		if err := c.ShouldBindJSON(&input); err != nil {
			respondBindError(c, err)
			return
		}
		organization, err := models.CreateOrganization(c.Request.Context(), &input)
		if err != nil {
			respondError(c, err)
			return
		}
		// Tie the registration to the session user so the wizard can resume.
		if userId, ok := utils.GetUserIdFromContext(c.Request.Context()); ok {
			_ = models.LinkUserOrganization(c.Request.Context(), userId, organization.ID)
		}
		c.JSON(http.StatusCreated, organization)
	}
}

func listOrganizationsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
		organizations, err := models.GetOrganizations(c.Request.Context(), skip, limit)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, organizations)
	}
}

func getOrganizationHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		organization, err := models.GetOrganization(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, organization)
	}
}

func deleteOrganizationHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := models.DeleteOrganization(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// stepHandler wires one wizard step endpoint: bind the payload, run the
// model-layer update, return the refreshed organization.
func stepHandler[T any](update func(c *gin.Context, id string, input *T) (*models.Organization, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input T
		if err := c.ShouldBindJSON(&input); err != nil {
			respondBindError(c, err)
			return
		}
		organization, err := update(c, c.Param("id"), &input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, organization)
	}
}

func checklistHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		organization, err := models.GetOrganization(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.BuildChecklist(organization))
	}
}

func submitOrganizationHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		organization, err := models.SubmitOrganization(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, organization)
	}
}

func registerOrganizationRoutes(rg *gin.RouterGroup) {
	rg.POST("", createOrganizationHandler())
	rg.GET("", listOrganizationsHandler())
	rg.GET("/:id", getOrganizationHandler())
	rg.DELETE("/:id", deleteOrganizationHandler())

	rg.PUT("/:id/laboratory-details", stepHandler(func(c *gin.Context, id string, input *models.LaboratoryDetailsUpdate) (*models.Organization, error) {
		return models.UpdateLaboratoryDetails(c.Request.Context(), id, input)
	}))
	rg.PUT("/:id/registered-office", stepHandler(func(c *gin.Context, id string, input *models.RegisteredOfficeUpdate) (*models.Organization, error) {
		return models.UpdateRegisteredOffice(c.Request.Context(), id, input)
	}))
	rg.PUT("/:id/parent-organization", stepHandler(func(c *gin.Context, id string, input *models.ParentOrganizationUpdate) (*models.Organization, error) {
		return models.UpdateParentOrganization(c.Request.Context(), id, input)
	}))
	rg.PUT("/:id/bank-details", stepHandler(func(c *gin.Context, id string, input *models.BankDetailsUpdate) (*models.Organization, error) {
		return models.UpdateBankDetails(c.Request.Context(), id, input)
	}))
	rg.PUT("/:id/working-schedule", stepHandler(func(c *gin.Context, id string, input *models.WorkingScheduleUpdate) (*models.Organization, error) {
		return models.UpdateWorkingSchedule(c.Request.Context(), id, input)
	}))
	rg.PUT("/:id/compliance-documents", stepHandler(func(c *gin.Context, id string, input *models.ComplianceDocumentsUpdate) (*models.Organization, error) {
		return models.UpdateComplianceDocuments(c.Request.Context(), id, input)
	}))
	rg.PUT("/:id/policy-documents", stepHandler(func(c *gin.Context, id string, input *models.PolicyDocumentsUpdate) (*models.Organization, error) {
		return models.UpdatePolicyDocuments(c.Request.Context(), id, input)
	}))
	rg.PUT("/:id/infrastructure", stepHandler(func(c *gin.Context, id string, input *models.InfrastructureUpdate) (*models.Organization, error) {
		return models.UpdateInfrastructure(c.Request.Context(), id, input)
	}))
	rg.PUT("/:id/accreditation", stepHandler(func(c *gin.Context, id string, input *models.AccreditationUpdate) (*models.Organization, error) {
		return models.UpdateAccreditationDocuments(c.Request.Context(), id, input)
	}))
	rg.PUT("/:id/other-details", stepHandler(func(c *gin.Context, id string, input *models.OtherLabDetailsUpdate) (*models.Organization, error) {
		return models.UpdateOtherLabDetails(c.Request.Context(), id, input)
	}))
	rg.PUT("/:id/quality-manual", stepHandler(func(c *gin.Context, id string, input *models.QualityManualUpdate) (*models.Organization, error) {
		return models.UpdateQualityManual(c.Request.Context(), id, input)
	}))
	rg.PUT("/:id/quality-formats", stepHandler(func(c *gin.Context, id string, input *models.QualityFormatsUpdate) (*models.Organization, error) {
		return models.UpdateQualityFormats(c.Request.Context(), id, input)
	}))

	rg.GET("/:id/checklist", checklistHandler())
	rg.POST("/:id/submit", submitOrganizationHandler())
}
