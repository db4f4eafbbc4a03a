// controllers/service.go
package controllers

import (
	"net/http"

	"orderdesk-backend/operations"
	"orderdesk-backend/services"
	"orderdesk-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ServiceInput defines the expected JSON structure for creating or replacing a service
type ServiceInput struct {
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description"`
	Icon        string           `json:"icon"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	Features    []string         `json:"features"`
	Active      *bool            `json:"active"`
}

func (in ServiceInput) toService() services.ServiceInput {
	return services.ServiceInput{
		Name:        in.Name,
		Description: in.Description,
		Icon:        in.Icon,
		Price:       *in.Price,
		Features:    in.Features,
		Active:      in.Active,
	}
}

// ServiceController serves the catalog.
type ServiceController struct {
	Ops *operations.Operations
}

// GetServices retrieves the active services shown to customers
func (sc *ServiceController) GetServices(c *gin.Context) {
	respond(c, http.StatusOK, sc.Ops.ListServices(c.Request.Context()))
}

// GetAllServices retrieves every service, including inactive ones
func (sc *ServiceController) GetAllServices(c *gin.Context) {
	respond(c, http.StatusOK, sc.Ops.ListAllServices(c.Request.Context()))
}

// GetService retrieves a specific service by ID
func (sc *ServiceController) GetService(c *gin.Context) {
	respond(c, http.StatusOK, sc.Ops.GetService(c.Request.Context(), c.Param("id")))
}

// CreateService adds a service to the catalog
func (sc *ServiceController) CreateService(c *gin.Context) {
	var input ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	respond(c, http.StatusCreated, sc.Ops.CreateService(c.Request.Context(), input.toService()))
}

// UpdateService replaces an existing service
func (sc *ServiceController) UpdateService(c *gin.Context) {
	var input ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	respond(c, http.StatusOK, sc.Ops.UpdateService(c.Request.Context(), c.Param("id"), input.toService()))
}

// DeleteService permanently deletes a service
func (sc *ServiceController) DeleteService(c *gin.Context) {
	respond(c, http.StatusOK, sc.Ops.DeleteService(c.Request.Context(), c.Param("id")))
}
