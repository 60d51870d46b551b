package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/telclab/topup-sandbox/errs"
	"github.com/telclab/topup-sandbox/models"
)

var _ models.TransactionRepository = (*transactionRepository)(nil)

type transactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a postgres-backed TransactionRepository.
func NewTransactionRepository(db *sql.DB) models.TransactionRepository {
	return &transactionRepository{db: db}
}

func (repo *transactionRepository) Create(ctx context.Context, txn *models.Transaction) error {
	const q = `INSERT INTO transactions
		(id, email, phone, package, payment_method, amount, status, created_at)
		VALUES
		($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := repo.db.ExecContext(ctx, q,
		txn.ID, txn.Email, txn.Phone, txn.Package, txn.PaymentMethod, txn.Amount, txn.Status, txn.CreatedAt,
	)

	return err
}

func (repo *transactionRepository) Select(ctx context.Context, params models.SelectParams) ([]models.Transaction, error) {
	// The timestamp format and the numeric id token both sort
	// lexicographically in chronological order.
	const q = `SELECT id, email, phone, package, payment_method, amount, status, created_at
		FROM transactions WHERE email = $1 ORDER BY created_at DESC, id DESC`

	rows, err := repo.db.QueryContext(ctx, q, models.NormalizeEmail(params.Email))
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	ans := make([]models.Transaction, 0)

	for rows.Next() {
		var txn models.Transaction

		err := rows.Scan(
			&txn.ID, &txn.Email, &txn.Phone, &txn.Package,
			&txn.PaymentMethod, &txn.Amount, &txn.Status, &txn.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		ans = append(ans, txn)
	}

	return ans, rows.Err()
}

func (repo *transactionRepository) Get(ctx context.Context, id string) (models.Transaction, error) {
	const q = `SELECT id, email, phone, package, payment_method, amount, status, created_at
		FROM transactions WHERE id = $1`

	var txn models.Transaction

	err := repo.db.QueryRowContext(ctx, q, id).Scan(
		&txn.ID, &txn.Email, &txn.Phone, &txn.Package,
		&txn.PaymentMethod, &txn.Amount, &txn.Status, &txn.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Transaction{}, errs.TransactionNotFoundErr(id)
		}

		return models.Transaction{}, err
	}

	return txn, nil
}

func (repo *transactionRepository) UpdateStatus(ctx context.Context, id, status string) (models.Transaction, error) {
	const q = `UPDATE transactions SET status = $1 WHERE id = $2
		RETURNING id, email, phone, package, payment_method, amount, status, created_at`

	var txn models.Transaction

	err := repo.db.QueryRowContext(ctx, q, strings.ToUpper(status), id).Scan(
		&txn.ID, &txn.Email, &txn.Phone, &txn.Package,
		&txn.PaymentMethod, &txn.Amount, &txn.Status, &txn.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Transaction{}, errs.TransactionNotFoundErr(id)
		}

		return models.Transaction{}, err
	}

	return txn, nil
}

func (repo *transactionRepository) Delete(ctx context.Context, id string) (models.Transaction, error) {
	const q = `DELETE FROM transactions WHERE id = $1
		RETURNING id, email, phone, package, payment_method, amount, status, created_at`

	var txn models.Transaction

	err := repo.db.QueryRowContext(ctx, q, id).Scan(
		&txn.ID, &txn.Email, &txn.Phone, &txn.Package,
		&txn.PaymentMethod, &txn.Amount, &txn.Status, &txn.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Transaction{}, errs.TransactionNotFoundErr(id)
		}

		return models.Transaction{}, err
	}

	return txn, nil
}
