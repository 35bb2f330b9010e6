package main

import (
	"errors"
	"net/http"
	"strconv"

	"bitbucket.org/mmdatafocus/labregistry_backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondError maps model-layer errors onto the wire. Field validation
// failures keep the {"detail": [{loc, msg}]} shape the registration UI
// consumes; everything else is a plain {"error": ...}.
func respondError(c *gin.Context, err error) {
	if ve, ok := utils.AsValidationError(err); ok {
		c.JSON(http.StatusUnprocessableEntity, ve)
		return
	}
	if errors.Is(err, utils.ErrorRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// respondBindError converts gin binding failures into the same 422 shape.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		ve := &utils.ValidationError{}
		for field, tag := range utils.ProcessValidationErrors(verrs) {
			ve.Add(field, "failed validation: "+tag)
		}
		c.JSON(http.StatusUnprocessableEntity, ve)
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
}

func requireSessionUser(c *gin.Context) (string, bool) {
	username, ok := utils.GetUsernameFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return "", false
	}
	return username, true
}

func requireOrganizationId(c *gin.Context) (string, bool) {
	organizationId := c.Query("organization_id")
	if organizationId == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "organization_id is required"})
		return "", false
	}
	return organizationId, true
}

func requireIntParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a positive integer"})
		return 0, false
	}
	return id, true
}
