// controllers/order.go
package controllers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"orderdesk-backend/models"
	"orderdesk-backend/operations"
	"orderdesk-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// MaxPaymentSlipSize bounds an uploaded payment slip.
const MaxPaymentSlipSize = 5 << 20

// SubmitOrderInput defines the expected JSON or form structure for a customer order
type SubmitOrderInput struct {
	Service        string  `json:"service" form:"service" binding:"required"`
	ProjectDetails string  `json:"projectDetails" form:"projectDetails" binding:"required,min=20"`
	CustomerName   string  `json:"customerName" form:"customerName" binding:"required"`
	CustomerEmail  string  `json:"customerEmail" form:"customerEmail" binding:"required,email"`
	CustomerPhone  *string `json:"customerPhone" form:"customerPhone"`
	// Form requests carry the slip as a file part or a text field, read by SubmitOrder.
	PaymentSlip    *string `json:"paymentSlip" form:"-"`
	ProjectFiles   *string `json:"projectFiles" form:"projectFiles"`
}

// UpdateOrderInput defines the expected JSON structure for editing an order
type UpdateOrderInput struct {
	Service        *string `json:"service"`
	ProjectDetails *string `json:"projectDetails" binding:"omitempty,min=20"`
	CustomerName   *string `json:"customerName"`
	CustomerEmail  *string `json:"customerEmail" binding:"omitempty,email"`
	CustomerPhone  *string `json:"customerPhone"`
	PaymentSlip    *string `json:"paymentSlip"`
	ProjectFiles   *string `json:"projectFiles"`
	Status         *string `json:"status"`
}

// UpdateStatusInput defines the expected JSON structure for a status change
type UpdateStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// OrderController serves customer submissions, tracking and admin order edits.
type OrderController struct {
	Ops *operations.Operations
}

func optional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// SubmitOrder records a new customer order
func (oc *OrderController) SubmitOrder(c *gin.Context) {
	var input SubmitOrderInput
	if err := c.ShouldBind(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	phone := optional(input.CustomerPhone)
	if phone != nil && !utils.ValidatePhone(*phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	slip := optional(input.PaymentSlip)
	contentType := c.ContentType()
	if contentType != binding.MIMEJSON {
		text := c.PostForm("paymentSlip")
		slip = optional(&text)
	}
	if contentType == binding.MIMEMultipartPOSTForm {
		uploaded, err := readPaymentSlip(c)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		if uploaded != nil {
			slip = uploaded
		}
	}

	env := oc.Ops.SubmitOrder(c.Request.Context(), models.OrderInput{
		Service:        strings.TrimSpace(input.Service),
		ProjectDetails: input.ProjectDetails,
		CustomerName:   strings.TrimSpace(input.CustomerName),
		CustomerEmail:  strings.TrimSpace(input.CustomerEmail),
		CustomerPhone:  phone,
		PaymentSlip:    slip,
		ProjectFiles:   optional(input.ProjectFiles),
	})
	respond(c, http.StatusCreated, env)
}

type uploadError string

func (e uploadError) Error() string { return string(e) }

// readPaymentSlip converts the optional paymentSlip file part to a data URI.
func readPaymentSlip(c *gin.Context) (*string, error) {
	header, err := c.FormFile("paymentSlip")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, uploadError("Invalid payment slip upload")
	}
	if header.Size > MaxPaymentSlipSize {
		return nil, uploadError("Payment slip must be at most 5 MB")
	}

	f, err := header.Open()
	if err != nil {
		return nil, uploadError("Invalid payment slip upload")
	}
	defer f.Close()

	payload, err := io.ReadAll(io.LimitReader(f, MaxPaymentSlipSize+1))
	if err != nil || len(payload) > MaxPaymentSlipSize {
		return nil, uploadError("Invalid payment slip upload")
	}
	uri := utils.DataURI(header.Header.Get("Content-Type"), payload)
	return &uri, nil
}

// TrackOrders looks orders up by order id or customer email
func (oc *OrderController) TrackOrders(c *gin.Context) {
	term := strings.TrimSpace(c.Query("q"))
	if term == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Order ID or email is required")
		return
	}
	respond(c, http.StatusOK, oc.Ops.TrackOrders(c.Request.Context(), term))
}

// GetOrders lists every order for the admin dashboard, newest first
func (oc *OrderController) GetOrders(c *gin.Context) {
	respond(c, http.StatusOK, oc.Ops.ListOrders(c.Request.Context()))
}

// UpdateOrder edits the provided fields of an order
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	var input UpdateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	// An empty phone clears it; anything else must be a valid number.
	if input.CustomerPhone != nil && *input.CustomerPhone != "" && !utils.ValidatePhone(*input.CustomerPhone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	patch := models.OrderPatch{
		Service:        input.Service,
		ProjectDetails: input.ProjectDetails,
		CustomerName:   input.CustomerName,
		CustomerEmail:  input.CustomerEmail,
		CustomerPhone:  input.CustomerPhone,
		PaymentSlip:    input.PaymentSlip,
		ProjectFiles:   input.ProjectFiles,
	}
	if input.Status != nil {
		status := models.OrderStatus(*input.Status)
		patch.Status = &status
	}
	respond(c, http.StatusOK, oc.Ops.UpdateOrder(c.Request.Context(), c.Param("id"), patch))
}

// UpdateOrderStatus moves an order to another status
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	var input UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	respond(c, http.StatusOK, oc.Ops.UpdateOrderStatus(c.Request.Context(), c.Param("id"), input.Status))
}

// DeleteOrder permanently deletes an order
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	respond(c, http.StatusOK, oc.Ops.DeleteOrder(c.Request.Context(), c.Param("id")))
}
