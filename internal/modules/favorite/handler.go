package favorite

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"autosalon/internal/domain"
	"autosalon/internal/middleware"
	"autosalon/internal/pkg/response"
)

// Handler обрабатывает HTTP запросы для избранного
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes регистрирует routes для избранного
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	favorites := rg.Group("/favorites")
	{
		favorites.GET("", h.GetFavorites)
		favorites.POST("", h.AddFavorite)
		favorites.DELETE("", h.ClearFavorites)
		favorites.POST("/:carId", h.AddCatalogFavorite)
		favorites.DELETE("/:carId", h.RemoveFavorite)
		favorites.GET("/:carId/check", h.CheckFavorite)
	}
}

// GetFavorites возвращает избранное текущего клиента в порядке добавления
//
// @Summary Получить список избранных автомобилей
// @Tags Favorite
// @Produce json
// @Success 200 {object} FavoriteListResponse
// @Router /favorites [get]
func (h *Handler) GetFavorites(c *gin.Context) {
	items := h.service.For(middleware.ClientID(c)).List(c.Request.Context())
	response.Success(c, http.StatusOK, ToFavoriteListResponse(items))
}

// AddFavorite добавляет автомобиль из тела запроса. Марка может прийти
// строкой или объектом {"name": ...}.
//
// @Summary Добавить автомобиль в избранное
// @Tags Favorite
// @Accept json
// @Produce json
// @Param request body domain.CarInput true "Автомобиль"
// @Success 201 {object} AddFavoriteResponse "Добавлен"
// @Success 200 {object} AddFavoriteResponse "Уже был в избранном"
// @Router /favorites [post]
func (h *Handler) AddFavorite(c *gin.Context) {
	var car domain.CarInput
	if err := c.ShouldBindJSON(&car); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid car payload")
		return
	}

	item, err := h.service.For(middleware.ClientID(c)).AddItem(c.Request.Context(), car)
	h.writeAddResult(c, item, err)
}

// AddCatalogFavorite добавляет в избранное автомобиль из каталога по ID
//
// @Summary Добавить автомобиль каталога в избранное
// @Tags Favorite
// @Produce json
// @Param carId path int64 true "ID автомобиля"
// @Success 201 {object} AddFavoriteResponse
// @Failure 404 {object} map[string]interface{} "Автомобиль не найден"
// @Router /favorites/{carId} [post]
func (h *Handler) AddCatalogFavorite(c *gin.Context) {
	carID, ok := parseCarID(c)
	if !ok {
		return
	}

	item, err := h.service.AddCatalogCar(c.Request.Context(), middleware.ClientID(c), carID)
	if errors.Is(err, ErrCarNotFound) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Car not found")
		return
	}
	h.writeAddResult(c, item, err)
}

func (h *Handler) writeAddResult(c *gin.Context, item domain.FavoriteItem, err error) {
	switch {
	case err == nil:
		response.Success(c, http.StatusCreated, AddFavoriteResponse{Added: true, Favorite: ToFavoriteResponse(item)})
	case errors.Is(err, ErrAlreadyFavorite):
		response.Success(c, http.StatusOK, AddFavoriteResponse{Added: false, Favorite: ToFavoriteResponse(item)})
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to add favorite")
	}
}

// RemoveFavorite удаляет автомобиль из избранного. Повторное удаление
// тоже успешно.
//
// @Summary Удалить автомобиль из избранного
// @Tags Favorite
// @Param carId path int64 true "ID автомобиля"
// @Success 200 {object} map[string]interface{}
// @Router /favorites/{carId} [delete]
func (h *Handler) RemoveFavorite(c *gin.Context) {
	carID, ok := parseCarID(c)
	if !ok {
		return
	}

	if !h.service.For(middleware.ClientID(c)).Remove(c.Request.Context(), carID) {
		response.Error(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to remove favorite")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"removed": true})
}

// CheckFavorite проверяет, находится ли автомобиль в избранном
//
// @Summary Проверить избранное
// @Tags Favorite
// @Param carId path int64 true "ID автомобиля"
// @Success 200 {object} CheckFavoriteResponse
// @Router /favorites/{carId}/check [get]
func (h *Handler) CheckFavorite(c *gin.Context) {
	carID, ok := parseCarID(c)
	if !ok {
		return
	}

	isFavorite := h.service.For(middleware.ClientID(c)).Contains(c.Request.Context(), carID)
	response.Success(c, http.StatusOK, CheckFavoriteResponse{IsFavorite: isFavorite})
}

// ClearFavorites очищает избранное целиком
//
// @Summary Очистить избранное
// @Tags Favorite
// @Success 200 {object} map[string]interface{}
// @Router /favorites [delete]
func (h *Handler) ClearFavorites(c *gin.Context) {
	if !h.service.For(middleware.ClientID(c)).Clear(c.Request.Context()) {
		response.Error(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to clear favorites")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cleared": true})
}

func parseCarID(c *gin.Context) (int64, bool) {
	carID, err := strconv.ParseInt(c.Param("carId"), 10, 64)
	if err != nil || carID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid car id")
		return 0, false
	}
	return carID, true
}
