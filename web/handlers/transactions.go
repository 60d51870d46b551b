package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/telclab/topup-sandbox/errs"
	"github.com/telclab/topup-sandbox/models"
	webutils "github.com/telclab/topup-sandbox/web/utils"
)

// Topup runs a charge through the mock gateway and persists a transaction
// on the success path. Declined charges never create a record.
func (h *TransactionHandlers) Topup(w http.ResponseWriter, r *http.Request) {
	var req models.TopupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, h.Deps.Logger, errs.InvalidBodyErr(err))

		return
	}

	if err := webutils.ValidateStruct(req); err != nil {
		renderError(w, h.Deps.Logger, err)

		return
	}

	if err := h.Deps.Gateway.Charge(r.Context(), req.Phone); err != nil {
		renderError(w, h.Deps.Logger, err)

		return
	}

	txn := models.NewTransaction(req.Email, req.Phone, req.Package, req.PaymentMethod, req.Amount)

	if err := h.Deps.Transactions.Create(r.Context(), &txn); err != nil {
		renderError(w, h.Deps.Logger, errs.E(errs.Internal, "failed to persist transaction", err))

		return
	}

	h.Deps.Logger.Info("topup completed",
		zap.String("txn_id", txn.ID),
		zap.String("email", txn.Email),
		zap.Float64("amount", txn.Amount),
	)

	renderJSON(w, http.StatusOK, models.TopupResponse{Status: "success", TxnID: txn.ID, Amount: txn.Amount})
}

// List returns the owner's transactions newest-first.
func (h *TransactionHandlers) List(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if strings.TrimSpace(email) == "" {
		renderError(w, h.Deps.Logger, errs.EmptyParamErr("email"))

		return
	}

	txns, err := h.Deps.Transactions.Select(r.Context(), models.SelectParams{Email: email})
	if err != nil {
		renderError(w, h.Deps.Logger, errs.E(errs.Internal, "failed to list transactions", err))

		return
	}

	renderJSON(w, http.StatusOK, txns)
}

// Get fetches a single transaction by id.
func (h *TransactionHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	txn, err := h.Deps.Transactions.Get(r.Context(), id)
	if err != nil {
		renderError(w, h.Deps.Logger, err)

		return
	}

	renderJSON(w, http.StatusOK, txn)
}

// UpdateStatus sets the transaction status. Any non-empty string is
// accepted and stored uppercased; there is no status enum.
func (h *TransactionHandlers) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, h.Deps.Logger, errs.InvalidBodyErr(err))

		return
	}

	req.Status = strings.TrimSpace(req.Status)

	if err := webutils.ValidateStruct(req); err != nil {
		renderError(w, h.Deps.Logger, err)

		return
	}

	txn, err := h.Deps.Transactions.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		renderError(w, h.Deps.Logger, err)

		return
	}

	renderJSON(w, http.StatusOK, txn)
}

// Delete removes a transaction and returns the deleted record.
func (h *TransactionHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	txn, err := h.Deps.Transactions.Delete(r.Context(), id)
	if err != nil {
		renderError(w, h.Deps.Logger, err)

		return
	}

	h.Deps.Logger.Info("transaction deleted", zap.String("txn_id", id))

	renderJSON(w, http.StatusOK, txn)
}
