package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/telclab/topup-sandbox/errs"
	"github.com/telclab/topup-sandbox/models"
)

func renderJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// renderError maps an error kind to its HTTP status and writes the error
// envelope. Raw failure is surfaced to the caller on purpose: QA suites
// assert on these bodies.
func renderError(w http.ResponseWriter, logger *zap.Logger, err error) {
	code := errs.HTTPStatus(err)

	if code >= http.StatusInternalServerError {
		logger.Error("request failed", zap.Error(err))
	}

	renderJSON(w, code, models.APIError{Status: "error", Code: code, Message: err.Error()})
}
