package auth

import "autosalon/internal/domain"

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=150"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"omitempty,max=20"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest accepts either the username or the email in Login.
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserPublic struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Role       string `json:"role"`
	Department string `json:"department,omitempty"`
	Position   string `json:"position,omitempty"`
}

func toUserPublic(u *domain.User) *UserPublic {
	if u == nil {
		return nil
	}
	return &UserPublic{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		Phone:      u.Phone,
		Role:       string(u.Role),
		Department: u.Department,
		Position:   u.Position,
	}
}

type StateResponse struct {
	IsAuthenticated bool        `json:"is_authenticated"`
	Role            string      `json:"role"`
	IsManager       bool        `json:"is_manager"`
	IsAdmin         bool        `json:"is_admin"`
	User            *UserPublic `json:"user"`
}

func toStateResponse(s State) StateResponse {
	return StateResponse{
		IsAuthenticated: s.IsAuthenticated(),
		Role:            string(s.Role()),
		IsManager:       s.IsManager(),
		IsAdmin:         s.IsAdmin(),
		User:            toUserPublic(s.User),
	}
}
