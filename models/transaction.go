package models

import (
	"context"

	"github.com/telclab/topup-sandbox/utils"
)

const (
	StatusSuccess = "SUCCESS"

	PaymentMethodCreditCard = "credit_card"
	PaymentMethodWallet     = "wallet"
	PaymentMethodQR         = "qr"
)

// Transaction is a persisted record of one top-up attempt. The owner email
// references a User by value only; deleting a user does not cascade.
type Transaction struct {
	ID            string  `json:"id"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Package       string  `json:"package"`
	PaymentMethod string  `json:"paymentMethod"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"createdAt"`
}

// SelectParams filters transaction listings.
type SelectParams struct {
	Email string
}

// TransactionRepository manages transaction records keyed by generated id.
type TransactionRepository interface {
	Create(ctx context.Context, txn *Transaction) error

	// Select returns the owner's transactions newest-first.
	Select(ctx context.Context, params SelectParams) ([]Transaction, error)

	Get(ctx context.Context, id string) (Transaction, error)

	// UpdateStatus sets a new status and returns the updated record.
	UpdateStatus(ctx context.Context, id, status string) (Transaction, error)

	// Delete removes and returns the deleted record.
	Delete(ctx context.Context, id string) (Transaction, error)
}

// NewTransaction builds a transaction from validated top-up input. Only the
// gateway's success path calls this, so status is fixed to SUCCESS.
func NewTransaction(email, phone, pkg, paymentMethod string, amount float64) Transaction {
	return Transaction{
		ID:            utils.TxnID(),
		Email:         NormalizeEmail(email),
		Phone:         phone,
		Package:       pkg,
		PaymentMethod: paymentMethod,
		Amount:        amount,
		Status:        StatusSuccess,
		CreatedAt:     utils.NowTimestamp(),
	}
}
