package request

import (
	"autosalon/internal/domain"
	"autosalon/internal/pkg/format"
)

type CreateRequest struct {
	CarID        int64  `json:"car_id" validate:"required,gt=0"`
	ContactName  string `json:"contact_name" validate:"required,min=2,max=100"`
	ContactPhone string `json:"contact_phone" validate:"required,min=5,max=20"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email,max=254"`
	Message      string `json:"message" validate:"max=2000"`
}

type UpdateStatusRequest struct {
	Status         domain.RequestStatus `json:"status" validate:"required"`
	ManagerComment string               `json:"manager_comment" validate:"max=2000"`
}

// statusLabels — подписи статусов для личного кабинета
var statusLabels = map[domain.RequestStatus]string{
	domain.RequestPending:    "Ожидает обработки",
	domain.RequestProcessing: "В обработке",
	domain.RequestCompleted:  "Завершена",
	domain.RequestCancelled:  "Отменена",
}

type RequestResponse struct {
	ID                 int64                `json:"id"`
	CarID              int64                `json:"car_id"`
	Car                string               `json:"car,omitempty"`
	CarPriceFormatted  string               `json:"car_price_formatted,omitempty"`
	UserID             int64                `json:"user_id"`
	Username           string               `json:"username,omitempty"`
	ContactName        string               `json:"contact_name"`
	ContactPhone       string               `json:"contact_phone"`
	ContactEmail       string               `json:"contact_email,omitempty"`
	Message            string               `json:"message,omitempty"`
	Status             domain.RequestStatus `json:"status"`
	StatusDisplay      string               `json:"status_display"`
	ManagerComment     string               `json:"manager_comment,omitempty"`
	CreatedAtFormatted string               `json:"created_at_formatted"`
}

func toResponse(pr *domain.PurchaseRequest) RequestResponse {
	out := RequestResponse{
		ID:                 pr.ID,
		CarID:              pr.CarID,
		UserID:             pr.UserID,
		ContactName:        pr.ContactName,
		ContactPhone:       pr.ContactPhone,
		ContactEmail:       pr.ContactEmail,
		Message:            pr.Message,
		Status:             pr.Status,
		StatusDisplay:      statusLabels[pr.Status],
		ManagerComment:     pr.ManagerComment,
		CreatedAtFormatted: format.LocalDate(pr.CreatedAt),
	}
	if pr.Car != nil {
		out.CarPriceFormatted = format.Price(pr.Car.Price)
		out.Car = pr.CarTitle()
	}
	if pr.User != nil {
		out.Username = pr.User.Username
	}
	return out
}

func toResponses(list []domain.PurchaseRequest) []RequestResponse {
	out := make([]RequestResponse, len(list))
	for i := range list {
		out[i] = toResponse(&list[i])
	}
	return out
}
