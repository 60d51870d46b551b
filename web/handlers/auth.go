package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/telclab/topup-sandbox/errs"
	"github.com/telclab/topup-sandbox/models"
	webutils "github.com/telclab/topup-sandbox/web/utils"
)

const (
	// MockToken is the fixed login token. It carries no capability and
	// never expires; QA flows only check for its presence.
	MockToken = "mock-token"

	// MockOTP is the only code the verify endpoint accepts.
	MockOTP = "1234"
)

// Register creates a user account. Duplicate normalized emails conflict.
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, h.Deps.Logger, errs.InvalidBodyErr(err))

		return
	}

	if err := webutils.ValidateStruct(req); err != nil {
		renderError(w, h.Deps.Logger, err)

		return
	}

	user := models.User{Email: models.NormalizeEmail(req.Email), Password: req.Password}

	if err := h.Deps.Users.Create(r.Context(), &user); err != nil {
		renderError(w, h.Deps.Logger, err)

		return
	}

	h.Deps.Logger.Info("user registered", zap.String("email", user.Email))

	renderJSON(w, http.StatusCreated, models.MessageResponse{Status: "success", Message: "user registered"})
}

// Login checks the submitted password against the stored one and returns
// the fixed mock token.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, h.Deps.Logger, errs.InvalidBodyErr(err))

		return
	}

	if err := webutils.ValidateStruct(req); err != nil {
		renderError(w, h.Deps.Logger, err)

		return
	}

	user, err := h.Deps.Users.GetByEmail(r.Context(), req.Email)
	if err != nil || user.Password != req.Password {
		renderError(w, h.Deps.Logger, errs.UnauthorizedErr("invalid email or password"))

		return
	}

	renderJSON(w, http.StatusOK, models.LoginResponse{Status: "success", Token: MockToken})
}

// RequestOTP accepts any well-formed email. No code is issued or delivered.
func (h *AuthHandlers) RequestOTP(w http.ResponseWriter, r *http.Request) {
	var req models.OTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, h.Deps.Logger, errs.InvalidBodyErr(err))

		return
	}

	if err := webutils.ValidateStruct(req); err != nil {
		renderError(w, h.Deps.Logger, err)

		return
	}

	renderJSON(w, http.StatusOK, models.MessageResponse{Status: "success", Message: "OTP sent"})
}

// VerifyOTP succeeds iff the submitted code equals the static constant,
// regardless of email.
func (h *AuthHandlers) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req models.OTPVerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, h.Deps.Logger, errs.InvalidBodyErr(err))

		return
	}

	if err := webutils.ValidateStruct(req); err != nil {
		renderError(w, h.Deps.Logger, err)

		return
	}

	if req.OTP != MockOTP {
		renderError(w, h.Deps.Logger, errs.UnauthorizedErr("invalid OTP"))

		return
	}

	renderJSON(w, http.StatusOK, models.MessageResponse{Status: "success", Message: "OTP verified"})
}

// ResetPassword overwrites the stored password in place.
func (h *AuthHandlers) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, h.Deps.Logger, errs.InvalidBodyErr(err))

		return
	}

	if err := webutils.ValidateStruct(req); err != nil {
		renderError(w, h.Deps.Logger, err)

		return
	}

	if err := h.Deps.Users.UpdatePassword(r.Context(), req.Email, req.NewPassword); err != nil {
		renderError(w, h.Deps.Logger, err)

		return
	}

	h.Deps.Logger.Info("password reset", zap.String("email", models.NormalizeEmail(req.Email)))

	renderJSON(w, http.StatusOK, models.MessageResponse{Status: "success", Message: "password updated"})
}
