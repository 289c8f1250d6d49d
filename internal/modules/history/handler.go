package history

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autosalon/internal/domain"
	"autosalon/internal/middleware"
	"autosalon/internal/pkg/format"
	"autosalon/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/history")
	{
		g.GET("", h.GetHistory)
		g.POST("", h.RecordView)
		g.DELETE("", h.ClearHistory)
	}
}

type HistoryResponse struct {
	domain.HistoryItem
	PriceFormatted    string `json:"price_formatted"`
	ViewedAtFormatted string `json:"viewed_at_formatted"`
}

// GetHistory возвращает историю просмотров, последние сверху
func (h *Handler) GetHistory(c *gin.Context) {
	items := h.service.For(middleware.ClientID(c)).List(c.Request.Context())

	out := make([]HistoryResponse, len(items))
	for i, item := range items {
		out[i] = HistoryResponse{
			HistoryItem:       item,
			PriceFormatted:    format.Price(item.Price),
			ViewedAtFormatted: format.LocalDate(item.ViewedAt),
		}
	}
	response.Success(c, http.StatusOK, gin.H{"history": out, "total": len(out)})
}

// RecordView добавляет просмотренный автомобиль в историю
func (h *Handler) RecordView(c *gin.Context) {
	var car domain.CarInput
	if err := c.ShouldBindJSON(&car); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid car payload")
		return
	}

	if !h.service.RecordView(c.Request.Context(), middleware.ClientID(c), car) {
		response.Error(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to record view")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"recorded": true})
}

// ClearHistory очищает историю просмотров
func (h *Handler) ClearHistory(c *gin.Context) {
	if !h.service.For(middleware.ClientID(c)).Clear(c.Request.Context()) {
		response.Error(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to clear history")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cleared": true})
}
