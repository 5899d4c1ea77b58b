package response

import (
	"time"

	"bookhaven/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func FromUserRM(rm *readmodel.AuthorizedUserRM) UserResponse {
	return UserResponse{
		ID:        rm.ID,
		Name:      rm.Name,
		Email:     rm.Email,
		Role:      rm.Role,
		LastLogin: rm.LastLogin,
		CreatedAt: rm.CreatedAt,
	}
}
