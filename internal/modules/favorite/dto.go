package favorite

import (
	"autosalon/internal/domain"
	"autosalon/internal/pkg/format"
)

// FavoriteResponse — элемент избранного с уже отформатированными полями
type FavoriteResponse struct {
	domain.FavoriteItem
	PriceFormatted   string `json:"price_formatted"`
	AddedAtFormatted string `json:"added_at_formatted"`
}

// FavoriteListResponse — ответ со списком избранного
type FavoriteListResponse struct {
	Favorites []FavoriteResponse `json:"favorites"`
	Total     int                `json:"total"`
}

// AddFavoriteResponse reports whether the car was added or was already there.
type AddFavoriteResponse struct {
	Added    bool             `json:"added"`
	Favorite FavoriteResponse `json:"favorite"`
}

type CheckFavoriteResponse struct {
	IsFavorite bool `json:"is_favorite"`
}

func ToFavoriteResponse(item domain.FavoriteItem) FavoriteResponse {
	return FavoriteResponse{
		FavoriteItem:     item,
		PriceFormatted:   format.Price(item.Price),
		AddedAtFormatted: format.LocalDate(item.AddedAt),
	}
}

func ToFavoriteListResponse(items []domain.FavoriteItem) FavoriteListResponse {
	out := make([]FavoriteResponse, len(items))
	for i, item := range items {
		out[i] = ToFavoriteResponse(item)
	}
	return FavoriteListResponse{Favorites: out, Total: len(out)}
}
