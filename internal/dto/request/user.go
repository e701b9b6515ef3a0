package request

type RegisterRequest struct {
	Email           string `json:"email" validate:"required,email"`
	FullName        string `json:"fullname" validate:"required,min=6,max=100"`
	PhoneNumber     string `json:"phone_number" validate:"required,min=9,max=14"`
	Password        string `json:"password" validate:"required,min=8,max=64"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,min=8,max=64"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=64"`
}

type ForgotPasswordRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,min=9,max=14"`
}

type VerifyCodeRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,min=9,max=14"`
	Code        string `json:"code" validate:"required"`
}

type ResetPasswordRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,min=9,max=14"`
	NewPassword string `json:"newPassword" validate:"required,min=8,max=64"`
}
