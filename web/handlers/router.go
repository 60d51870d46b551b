package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/telclab/topup-sandbox/web/middleware"
)

// NewRouter wires the handler group into a mux router with the common
// middleware stack.
func NewRouter(group *HandlerGroup, logger *zap.Logger) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", Health).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/register", group.Auth.Register).Methods(http.MethodPost)
	api.HandleFunc("/login", group.Auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/otp/request", group.Auth.RequestOTP).Methods(http.MethodPost)
	api.HandleFunc("/auth/otp/verify", group.Auth.VerifyOTP).Methods(http.MethodPost)
	api.HandleFunc("/auth/reset-password", group.Auth.ResetPassword).Methods(http.MethodPost)

	api.HandleFunc("/topup", group.Transactions.Topup).Methods(http.MethodPost)
	api.HandleFunc("/transactions", group.Transactions.List).Methods(http.MethodGet)
	api.HandleFunc("/transactions/{id}", group.Transactions.Get).Methods(http.MethodGet)
	api.HandleFunc("/transactions/{id}", group.Transactions.UpdateStatus).Methods(http.MethodPut)
	api.HandleFunc("/transactions/{id}", group.Transactions.Delete).Methods(http.MethodDelete)

	return middleware.Chain(r,
		middleware.Recover(logger),
		middleware.RequestID,
		middleware.CORS,
		middleware.RequestLogger(logger),
	)
}
