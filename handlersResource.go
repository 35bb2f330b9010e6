package main

import (
	"context"
	"fmt"
	"net/http"

	"bitbucket.org/mmdatafocus/labregistry_backend/models"
	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// resourceService bundles the five model-layer CRUD funcs for one dashboard
// resource so every resource shares the same route wiring.
type resourceService[T any, I any] struct {
	list   func(ctx context.Context, organizationId string) ([]*T, error)
	get    func(ctx context.Context, organizationId string, id int) (*T, error)
	create func(ctx context.Context, organizationId string, input *I) (*T, error)
	update func(ctx context.Context, organizationId string, id int, input *I) (*T, error)
	delete func(ctx context.Context, organizationId string, id int) error
}

func registerResourceRoutes[T any, I any](api *gin.RouterGroup, path string, svc resourceService[T, I]) {

	rg := api.Group("/" + path)

	rg.GET("", func(c *gin.Context) {
		organizationId, ok := requireOrganizationId(c)
		if !ok {
			return
		}
		results, err := svc.list(c.Request.Context(), organizationId)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, results)
	})

	rg.GET("/:id", func(c *gin.Context) {
		organizationId, ok := requireOrganizationId(c)
		if !ok {
			return
		}
		id, ok := requireIntParam(c, "id")
		if !ok {
			return
		}
		result, err := svc.get(c.Request.Context(), organizationId, id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	})

	rg.POST("", func(c *gin.Context) {
		organizationId, ok := requireOrganizationId(c)
		if !ok {
			return
		}
		var input I
		if err := c.ShouldBindJSON(&input); err != nil {
			respondBindError(c, err)
			return
		}
		result, err := svc.create(c.Request.Context(), organizationId, &input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, result)
	})

	rg.PUT("/:id", func(c *gin.Context) {
		organizationId, ok := requireOrganizationId(c)
		if !ok {
			return
		}
		id, ok := requireIntParam(c, "id")
		if !ok {
			return
		}
		var input I
		if err := c.ShouldBindJSON(&input); err != nil {
			respondBindError(c, err)
			return
		}
		result, err := svc.update(c.Request.Context(), organizationId, id, &input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	})

	rg.DELETE("/:id", func(c *gin.Context) {
		organizationId, ok := requireOrganizationId(c)
		if !ok {
			return
		}
		id, ok := requireIntParam(c, "id")
		if !ok {
			return
		}
		if err := svc.delete(c.Request.Context(), organizationId, id); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})
}

func registerDashboardRoutes(api *gin.RouterGroup) {

	api.GET("/instruments/export", exportInstrumentsHandler())

	registerResourceRoutes(api, "instruments", resourceService[models.Instrument, models.InstrumentInput]{
		list:   models.GetInstruments,
		get:    models.GetInstrument,
		create: models.CreateInstrument,
		update: models.UpdateInstrument,
		delete: models.DeleteInstrument,
	})
	registerResourceRoutes(api, "calibrations", resourceService[models.Calibration, models.CalibrationInput]{
		list:   models.GetCalibrations,
		get:    models.GetCalibration,
		create: models.CreateCalibration,
		update: models.UpdateCalibration,
		delete: models.DeleteCalibration,
	})
	registerResourceRoutes(api, "consumables", resourceService[models.Consumable, models.ConsumableInput]{
		list:   models.GetConsumables,
		get:    models.GetConsumable,
		create: models.CreateConsumable,
		update: models.UpdateConsumable,
		delete: models.DeleteConsumable,
	})
	registerResourceRoutes(api, "sop-documents", resourceService[models.SOPDocument, models.SOPDocumentInput]{
		list:   models.GetSOPDocuments,
		get:    models.GetSOPDocument,
		create: models.CreateSOPDocument,
		update: models.UpdateSOPDocument,
		delete: models.DeleteSOPDocument,
	})
	registerResourceRoutes(api, "audits", resourceService[models.Audit, models.AuditInput]{
		list:   models.GetAudits,
		get:    models.GetAudit,
		create: models.CreateAudit,
		update: models.UpdateAudit,
		delete: models.DeleteAudit,
	})
	registerResourceRoutes(api, "non-conformances", resourceService[models.NonConformance, models.NonConformanceInput]{
		list:   models.GetNonConformances,
		get:    models.GetNonConformance,
		create: models.CreateNonConformance,
		update: models.UpdateNonConformance,
		delete: models.DeleteNonConformance,
	})
}

func exportInstrumentsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		organizationId, ok := requireOrganizationId(c)
		if !ok {
			return
		}
		instruments, err := models.GetInstruments(c.Request.Context(), organizationId)
		if err != nil {
			respondError(c, err)
			return
		}

		f := excelize.NewFile()
		sheet := "Sheet1"

		headers := []string{"Name", "Make", "Model", "SerialNumber", "Location", "Range", "LeastCount", "LastCalibration", "NextCalibrationDue", "Status"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, h)
		}
		for i, instrument := range instruments {
			values := []interface{}{
				instrument.Name, instrument.Make, instrument.Model, instrument.SerialNumber,
				instrument.Location, instrument.Range, instrument.LeastCount,
				instrument.LastCalibrationDate, instrument.NextCalibrationDue, instrument.Status,
			}
			for j, v := range values {
				cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
				f.SetCellValue(sheet, cell, v)
			}
		}

		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=instruments_%s.xlsx", organizationId))
		if err := f.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to write file"})
		}
	}
}
