package profile

import (
	"autosalon/internal/domain"
	"autosalon/internal/pkg/format"
)

// UpdateRequest is a partial update: absent fields keep their value, an
// empty string clears the field. Role is accepted only to be refused.
type UpdateRequest struct {
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Department *string `json:"department"`
	Position   *string `json:"position"`
	Role       *string `json:"role"`
}

// profileFields is the profile after the update, as validated.
type profileFields struct {
	FirstName  string `json:"first_name" validate:"max=150"`
	LastName   string `json:"last_name" validate:"max=150"`
	Email      string `json:"email" validate:"required,email,max=254"`
	Phone      string `json:"phone" validate:"omitempty,ru_phone"`
	Department string `json:"department" validate:"max=100"`
	Position   string `json:"position" validate:"max=100"`
}

type UserResponse struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Position   string `json:"position"`
	JoinedAt   string `json:"joined_at"`
}

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Phone:      u.Phone,
		Role:       string(u.Role),
		Department: u.Department,
		Position:   u.Position,
		JoinedAt:   format.LocalDate(u.CreatedAt),
	}
}

type FavoriteCar struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Year           int    `json:"year"`
	PriceFormatted string `json:"price_formatted"`
	Image          string `json:"image,omitempty"`
}

// RecentRequest — строка заявки в личном кабинете
type RecentRequest struct {
	ID                 int64                `json:"id"`
	Car                string               `json:"car"`
	Username           string               `json:"username,omitempty"`
	Status             domain.RequestStatus `json:"status"`
	CreatedAtFormatted string               `json:"created_at_formatted"`
}

type SummaryResponse struct {
	User                  UserResponse    `json:"user"`
	IsManager             bool            `json:"is_manager"`
	FavoritesCount        int             `json:"favorites_count"`
	FavoriteCars          []FavoriteCar   `json:"favorite_cars"`
	PurchaseRequestsCount int64           `json:"purchase_requests_count"`
	ActiveRequestsCount   int64           `json:"active_requests_count"`
	UserRequestsCount     *int64          `json:"user_requests_count,omitempty"`
	RecentRequests        []RecentRequest `json:"recent_requests"`
}

func toSummaryResponse(s *Summary) SummaryResponse {
	out := SummaryResponse{
		User:                  toUserResponse(s.User),
		IsManager:             s.IsManager,
		FavoritesCount:        s.FavoritesCount,
		FavoriteCars:          make([]FavoriteCar, 0, len(s.FavoriteCars)),
		PurchaseRequestsCount: s.PurchaseRequestsCount,
		ActiveRequestsCount:   s.ActiveRequestsCount,
		RecentRequests:        make([]RecentRequest, 0, len(s.RecentRequests)),
	}
	if s.IsManager {
		n := s.UserRequestsCount
		out.UserRequestsCount = &n
	}
	for _, f := range s.FavoriteCars {
		out.FavoriteCars = append(out.FavoriteCars, FavoriteCar{
			ID:             f.ID,
			Title:          f.Brand + " " + f.Model,
			Year:           f.Year,
			PriceFormatted: format.Price(f.Price),
			Image:          f.Image,
		})
	}
	for i := range s.RecentRequests {
		pr := &s.RecentRequests[i]
		rr := RecentRequest{
			ID:                 pr.ID,
			Car:                pr.CarTitle(),
			Status:             pr.Status,
			CreatedAtFormatted: format.LocalDate(pr.CreatedAt),
		}
		if s.IsManager && pr.User != nil {
			rr.Username = pr.User.Username
		}
		out.RecentRequests = append(out.RecentRequests, rr)
	}
	return out
}
