package response

import (
	"time"

	"article-service/internal/data/entity"
)

// UserResponse is the external user shape. The password hash never leaves the
// service.
type UserResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	FullName    string     `json:"fullname"`
	PhoneNumber string     `json:"phone_number"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:          user.ID.String(),
		Email:       user.Email,
		FullName:    user.FullName,
		PhoneNumber: user.PhoneNumber,
		LastLogin:   user.LastLogin,
		CreatedAt:   user.CreatedAt,
	}
}

// LoginToResponse strips last_login from the login payload as well.
func LoginToResponse(user *entity.User, token string) AuthResponse {
	resp := UserToResponse(user)
	resp.LastLogin = nil
	return AuthResponse{
		User:  resp,
		Token: token,
	}
}
