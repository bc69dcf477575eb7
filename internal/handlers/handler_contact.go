package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fxdesk/currency_exchange_app/internal/core/ports/services"
	"github.com/fxdesk/currency_exchange_app/internal/dto"
	"github.com/fxdesk/currency_exchange_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// contactHandler handles contact mailbox requests.
type contactHandler struct {
	contactService portssvc.ContactSvcFacade
}

// registerContactRoutes registers contact routes. Submission is public;
// reading and deleting require an authenticated admin.
func registerContactRoutes(public, protected *gin.RouterGroup, contactService portssvc.ContactSvcFacade) {
	h := &contactHandler{contactService: contactService}

	public.POST("/contact", h.submitMessage)

	admin := protected.Group("/contact")
	{
		admin.GET("", h.listMessages)
		admin.GET("/:id", h.getMessage)
		admin.DELETE("/:id", h.deleteMessage)
	}
}

// submitMessage godoc
// @Summary Submit a contact message
// @Tags contact
// @Accept json
// @Produce json
// @Param contact body dto.CreateContactRequest true "Message details"
// @Success 201 {object} dto.ContactMessageResponse
// @Failure 400 {object} ErrorResponse
// @Router /contact [post]
func (h *contactHandler) submitMessage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	msg, err := h.contactService.SubmitContactMessage(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to submit contact message")
		return
	}

	logger.Info("Contact message submitted", slog.String("message_id", msg.MessageID))
	c.JSON(http.StatusCreated, dto.ToContactMessageResponse(msg))
}

// listMessages godoc
// @Summary List contact messages
// @Description Returns all contact messages, newest first (admin operation).
// @Tags contact
// @Produce json
// @Success 200 {array} dto.ContactMessageResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /contact [get]
func (h *contactHandler) listMessages(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetActorFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	msgs, err := h.contactService.ListContactMessages(c.Request.Context(), actor)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list contact messages")
		return
	}

	c.JSON(http.StatusOK, dto.ToListContactMessageResponse(msgs))
}

// getMessage godoc
// @Summary Get one contact message
// @Tags contact
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} dto.ContactMessageResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /contact/{id} [get]
func (h *contactHandler) getMessage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetActorFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	msg, err := h.contactService.GetContactMessage(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		respondWithError(c, logger, err, "Failed to get contact message")
		return
	}

	c.JSON(http.StatusOK, dto.ToContactMessageResponse(msg))
}

// deleteMessage godoc
// @Summary Delete a contact message
// @Tags contact
// @Param id path string true "Message ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /contact/{id} [delete]
func (h *contactHandler) deleteMessage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetActorFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.contactService.DeleteContactMessage(c.Request.Context(), c.Param("id"), actor); err != nil {
		respondWithError(c, logger, err, "Failed to delete contact message")
		return
	}

	c.Status(http.StatusNoContent)
}
