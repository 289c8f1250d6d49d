package catalog

import (
	"autosalon/internal/domain"
	"autosalon/internal/pkg/format"
)

// CarCard — карточка автомобиля в списке
type CarCard struct {
	ID             int64               `json:"id"`
	Brand          string              `json:"brand"`
	BrandID        int64               `json:"brand_id"`
	Model          string              `json:"model"`
	Year           int                 `json:"year"`
	Price          int64               `json:"price"`
	PriceFormatted string              `json:"price_formatted"`
	Mileage        int                 `json:"mileage"`
	Transmission   domain.Transmission `json:"transmission"`
	FuelType       domain.FuelType     `json:"fuel_type"`
	Image          string              `json:"image,omitempty"`
}

type CarDetailResponse struct {
	*domain.Car
	PriceFormatted      string    `json:"price_formatted"`
	TransmissionDisplay string    `json:"transmission_display"`
	FuelDisplay         string    `json:"fuel_display"`
	CreatedAtFormatted  string    `json:"created_at_formatted"`
	Similar             []CarCard `json:"similar_cars"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

type CarListResponse struct {
	Cars       []CarCard  `json:"cars"`
	Pagination Pagination `json:"pagination"`
}

func toCarCard(c *domain.Car) CarCard {
	card := CarCard{
		ID:             c.ID,
		BrandID:        c.BrandID,
		Model:          c.Model,
		Year:           c.Year,
		Price:          c.Price,
		PriceFormatted: format.Price(c.Price),
		Mileage:        c.Mileage,
		Transmission:   c.Transmission,
		FuelType:       c.FuelType,
		Image:          c.MainImageURL(),
	}
	if c.Brand != nil {
		card.Brand = c.Brand.Name
	}
	return card
}

func toCarCards(cars []domain.Car) []CarCard {
	out := make([]CarCard, len(cars))
	for i := range cars {
		out[i] = toCarCard(&cars[i])
	}
	return out
}

// label falls back to the raw value for unknown codes.
func label[K ~string](labels map[K]string, k K) string {
	if l, ok := labels[k]; ok {
		return l
	}
	return string(k)
}

func toCarDetailResponse(d *Detail) CarDetailResponse {
	return CarDetailResponse{
		Car:                 d.Car,
		PriceFormatted:      format.Price(d.Car.Price),
		TransmissionDisplay: label(domain.TransmissionLabels, d.Car.Transmission),
		FuelDisplay:         label(domain.FuelLabels, d.Car.FuelType),
		CreatedAtFormatted:  format.LocalDate(d.Car.CreatedAt),
		Similar:             toCarCards(d.Similar),
	}
}
