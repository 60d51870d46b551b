// Package handlers contains the JSON API handlers for the top-up sandbox.
package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/telclab/topup-sandbox/gateway"
	"github.com/telclab/topup-sandbox/models"
)

// Dependencies aggregates shared services used by handlers.
type Dependencies struct {
	Logger       *zap.Logger
	Users        models.UserRepository
	Transactions models.TransactionRepository
	Gateway      *gateway.Simulator
}

// HandlerGroup groups all handler categories for routing setup.
type HandlerGroup struct {
	Auth         *AuthHandlers
	Transactions *TransactionHandlers
}

// NewHandlerGroup constructs a HandlerGroup with initialized handlers.
func NewHandlerGroup(deps Dependencies) *HandlerGroup {
	return &HandlerGroup{
		Auth:         &AuthHandlers{Deps: deps},
		Transactions: &TransactionHandlers{Deps: deps},
	}
}

// AuthHandlers contains registration, login, OTP and password reset routes.
type AuthHandlers struct{ Deps Dependencies }

// TransactionHandlers contains top-up and transaction CRUD routes.
type TransactionHandlers struct{ Deps Dependencies }

// Health is the liveness probe.
func Health(w http.ResponseWriter, _ *http.Request) {
	renderJSON(w, http.StatusOK, models.MessageResponse{Status: "ok", Message: "topup sandbox is up"})
}
