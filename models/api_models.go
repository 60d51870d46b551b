package models

// APIError is the JSON error envelope returned to callers.
type APIError struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// MessageResponse is the generic success envelope.
type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Status string `json:"status"`
	Token  string `json:"token"`
}

type OTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type OTPVerifyRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	NewPassword string `json:"newPassword" validate:"required"`
}

type TopupRequest struct {
	Email         string  `json:"email" validate:"required,email"`
	Package       string  `json:"package" validate:"required"`
	Phone         string  `json:"phone" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	PaymentMethod string  `json:"paymentMethod" validate:"required,oneof=credit_card wallet qr"`
}

type TopupResponse struct {
	Status string  `json:"status"`
	TxnID  string  `json:"txnId"`
	Amount float64 `json:"amount"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
}
