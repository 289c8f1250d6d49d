package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"autosalon/internal/domain"
	"autosalon/internal/middleware"
	"autosalon/internal/pkg/response"
	"autosalon/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/brands", h.GetBrands)
	rg.GET("/cars", h.GetCars)
	rg.GET("/cars/:id", h.GetCarByID)
}

func (h *Handler) GetBrands(c *gin.Context) {
	brands, err := h.service.Brands(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load brands")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"brands": brands})
}

// queryInt ignores anything that is not a plain non-negative number.
func queryInt(c *gin.Context, name string) int64 {
	v, err := strconv.ParseInt(c.Query(name), 10, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// GetCars handles GET /api/v1/cars with filters
func (h *Handler) GetCars(c *gin.Context) {
	f := repository.CarFilter{
		BrandID:      queryInt(c, "brand"),
		Search:       c.Query("search"),
		MinPrice:     queryInt(c, "min_price"),
		MaxPrice:     queryInt(c, "max_price"),
		MinYear:      int(queryInt(c, "min_year")),
		MaxYear:      int(queryInt(c, "max_year")),
		Transmission: domain.Transmission(c.Query("transmission")),
		FuelType:     domain.FuelType(c.Query("fuel")),
	}

	// нечисловая страница — первая
	page := int(queryInt(c, "page"))

	res, err := h.service.ListCars(c.Request.Context(), f, page)
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load cars")
		return
	}

	response.Success(c, http.StatusOK, CarListResponse{
		Cars: toCarCards(res.Cars),
		Pagination: Pagination{
			Page:       res.Page,
			Limit:      PageSize,
			Total:      res.Total,
			TotalPages: res.TotalPages,
		},
	})
}

// GetCarByID handles GET /api/v1/cars/:id and records the view
func (h *Handler) GetCarByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid car ID")
		return
	}

	d, err := h.service.Detail(c.Request.Context(), middleware.ClientID(c), id)
	if err != nil {
		if errors.Is(err, ErrCarNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Автомобиль не найден")
			return
		}
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load car")
		return
	}

	response.Success(c, http.StatusOK, toCarDetailResponse(d))
}
