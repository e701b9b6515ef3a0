package adaptor

import (
	"encoding/json"
	"net/http"

	"article-service/internal/dto/request"
	"article-service/internal/usecase"
	"article-service/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	auth         usecase.AuthService
	verification usecase.VerificationService
	log          *zap.Logger
}

func NewUserHandler(auth usecase.AuthService, verification usecase.VerificationService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		auth:         auth,
		verification: verification,
		log:          log.With(zap.String("handler", "user")),
	}
}

// Register handles POST /api/users/new
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	user, err := h.auth.Register(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "register")
		return
	}

	utils.ResponseCreated(w, "Success", user)
}

// Login handles POST /api/users/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.auth.Login(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "login")
		return
	}

	utils.ResponseSuccess(w, "Login successful", resp)
}

// WhoAmI handles GET /api/users/whoami
func (h *UserHandler) WhoAmI(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	user, err := h.auth.WhoAmI(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "whoami")
		return
	}

	utils.ResponseSuccess(w, "Success", user)
}

// ForgotPassword handles POST /api/users/forget-password
func (h *UserHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ForgotPasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.verification.ForgotPassword(r.Context(), req.PhoneNumber); err != nil {
		handleServiceError(w, h.log, err, "forgot password")
		return
	}

	utils.ResponseSuccess(w, "The verification code is sent successfully!", nil)
}

// VerifyCode handles POST /api/users/verify-code
func (h *UserHandler) VerifyCode(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyCodeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.verification.VerifyCode(r.Context(), req.PhoneNumber, req.Code); err != nil {
		handleServiceError(w, h.log, err, "verify code")
		return
	}

	utils.ResponseSuccess(w, "The phone number is verified!", nil)
}

// ResetPassword handles POST /api/users/reset-password
func (h *UserHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ResetPasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.verification.ResetPassword(r.Context(), req.PhoneNumber, req.NewPassword); err != nil {
		handleServiceError(w, h.log, err, "reset password")
		return
	}

	utils.ResponseSuccess(w, "The password is successfully reset!", nil)
}
