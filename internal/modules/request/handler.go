package request

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"autosalon/internal/middleware"
	"autosalon/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes expects rg to be behind JWTAuth.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/purchase-requests")
	{
		g.POST("", h.Create)
		g.GET("", h.List)
		g.PATCH("/:id", middleware.ManagerOnly(), h.UpdateStatus)
	}
}

// Create — заявка на покупку автомобиля
// @Summary		Оставить заявку
// @Tags		Заявки
// @Param		request	body	CreateRequest	true	"Контактные данные и ID автомобиля"
// @Success		201	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{} "Ошибка валидации"
// @Failure		404	{object}	map[string]interface{} "Автомобиль не найден"
// @Failure		409	{object}	map[string]interface{} "Автомобиль уже продан"
// @Router		/purchase-requests [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	pr, err := h.service.Create(c.Request.Context(), middleware.ClientID(c), middleware.UserID(c), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"request": toResponse(pr)})
}

func (h *Handler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context(), middleware.UserID(c), middleware.CurrentRole(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"requests": toResponses(list), "total": len(list)})
}

// UpdateStatus — смена статуса менеджером
// @Router		/purchase-requests/{id} [PATCH]
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid request ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	pr, err := h.service.UpdateStatus(c.Request.Context(), middleware.ClientID(c), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"request": toResponse(pr)})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data", ve.Fields)
	case errors.Is(err, ErrInvalidStatus):
		response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Unknown request status")
	case errors.Is(err, ErrCarNotFound):
		response.Error(c, http.StatusNotFound, "CAR_NOT_FOUND", "Car not found")
	case errors.Is(err, ErrCarSold):
		response.Error(c, http.StatusConflict, "CAR_SOLD", "Car is already sold")
	case errors.Is(err, ErrRequestNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Purchase request not found")
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}
