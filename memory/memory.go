// Package memory provides in-memory repositories. They back the default
// deployment and double as deterministic stores for unit tests.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/telclab/topup-sandbox/errs"
	"github.com/telclab/topup-sandbox/models"
)

var (
	_ models.UserRepository        = (*UserRepository)(nil)
	_ models.TransactionRepository = (*TransactionRepository)(nil)
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]models.User)}
}

func (r *UserRepository) Create(_ context.Context, user *models.User) error {
	key := models.NormalizeEmail(user.Email)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[key]; ok {
		return errs.DuplicateEmailErr(key)
	}

	user.Email = key
	r.users[key] = *user

	return nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (models.User, error) {
	key := models.NormalizeEmail(email)

	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[key]
	if !ok {
		return models.User{}, errs.UserNotFoundErr(key)
	}

	return user, nil
}

func (r *UserRepository) UpdatePassword(_ context.Context, email, password string) error {
	key := models.NormalizeEmail(email)

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[key]
	if !ok {
		return errs.UserNotFoundErr(key)
	}

	user.Password = password
	r.users[key] = user

	return nil
}

// TransactionRepository keeps records in insertion order so listings can be
// served newest-first without comparing formatted timestamps.
type TransactionRepository struct {
	mu   sync.RWMutex
	txns []models.Transaction
}

func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{}
}

func (r *TransactionRepository) Create(_ context.Context, txn *models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.txns = append(r.txns, *txn)

	return nil
}

func (r *TransactionRepository) Select(_ context.Context, params models.SelectParams) ([]models.Transaction, error) {
	email := models.NormalizeEmail(params.Email)

	r.mu.RLock()
	defer r.mu.RUnlock()

	ans := make([]models.Transaction, 0)

	for i := len(r.txns) - 1; i >= 0; i-- {
		if r.txns[i].Email == email {
			ans = append(ans, r.txns[i])
		}
	}

	return ans, nil
}

func (r *TransactionRepository) Get(_ context.Context, id string) (models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.txns {
		if r.txns[i].ID == id {
			return r.txns[i], nil
		}
	}

	return models.Transaction{}, errs.TransactionNotFoundErr(id)
}

func (r *TransactionRepository) UpdateStatus(_ context.Context, id, status string) (models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.txns {
		if r.txns[i].ID == id {
			r.txns[i].Status = strings.ToUpper(status)

			return r.txns[i], nil
		}
	}

	return models.Transaction{}, errs.TransactionNotFoundErr(id)
}

func (r *TransactionRepository) Delete(_ context.Context, id string) (models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.txns {
		if r.txns[i].ID == id {
			deleted := r.txns[i]
			r.txns = append(r.txns[:i], r.txns[i+1:]...)

			return deleted, nil
		}
	}

	return models.Transaction{}, errs.TransactionNotFoundErr(id)
}
