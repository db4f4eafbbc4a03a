package controllers

import (
	"net/http"

	"orderdesk-backend/operations"

	"github.com/gin-gonic/gin"
)

// DashboardController serves the admin overview counters.
type DashboardController struct {
	Ops *operations.Operations
}

func (dc *DashboardController) GetDashboardOverview(c *gin.Context) {
	respond(c, http.StatusOK, dc.Ops.OrderSummary(c.Request.Context()))
}
