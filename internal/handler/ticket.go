package handler

import (
	"net/http"

	"helpdesk/internal/config"
	"helpdesk/internal/model"
	"helpdesk/internal/service"

	"github.com/gin-gonic/gin"
)

// TicketHandler handles ticket creation, listing, stats and updates
type TicketHandler struct {
	tickets *service.TicketService
}

func NewTicketHandler(tickets *service.TicketService) *TicketHandler {
	return &TicketHandler{tickets: tickets}
}

// Create handles POST /api/tickets
func (h *TicketHandler) Create(c *gin.Context) {
	var req service.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}
	if len(req.Title) > config.MaxTitleLength {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Title exceeds maximum length", ""))
		return
	}
	if len(req.Description) > config.MaxDescriptionLength {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Description exceeds maximum length", ""))
		return
	}

	requester := requesterFromContext(c)
	ticket, err := h.tickets.Create(c.Request.Context(), requester.UserID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.NewSuccessResponse("Ticket created", ticket))
}

// List handles GET /api/tickets. The requester identity comes from
// the session claims; status and branch are optional report filters.
func (h *TicketHandler) List(c *gin.Context) {
	query := service.TicketQuery{
		Status: c.Query("status"),
		Branch: c.Query("branch"),
	}

	tickets, err := h.tickets.List(c.Request.Context(), requesterFromContext(c), query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("", tickets))
}

// Stats handles GET /api/tickets/stats
func (h *TicketHandler) Stats(c *gin.Context) {
	stats, err := h.tickets.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("", stats))
}

// Update handles PUT /api/tickets/:id
func (h *TicketHandler) Update(c *gin.Context) {
	var req service.UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	ticket, err := h.tickets.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("Ticket updated", ticket))
}
