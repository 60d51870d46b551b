// Package sqlite implements the repositories on a single-file sqlite
// database, the zero-dependency local deployment.
package sqlite

import (
	"context"
	"errors"
	"strings"

	driver "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/telclab/topup-sandbox/errs"
	"github.com/telclab/topup-sandbox/models"
)

var (
	_ models.UserRepository        = (*UserRepository)(nil)
	_ models.TransactionRepository = (*TransactionRepository)(nil)
)

// Open opens (creating if necessary) the sqlite database at path and
// migrates the two relations.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(driver.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&user{}, &transaction{}); err != nil {
		return nil, err
	}

	return db, nil
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	u.Email = models.NormalizeEmail(u.Email)

	var existing user

	err := r.db.WithContext(ctx).First(&existing, "email = ?", u.Email).Error
	if err == nil {
		return errs.DuplicateEmailErr(u.Email)
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	dbo := userFromModelsUser(u)

	return r.db.WithContext(ctx).Create(&dbo).Error
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	email = models.NormalizeEmail(email)

	var dbo user

	err := r.db.WithContext(ctx).First(&dbo, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, errs.UserNotFoundErr(email)
		}

		return models.User{}, err
	}

	return dbo.toModelsUser(), nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, email, password string) error {
	email = models.NormalizeEmail(email)

	res := r.db.WithContext(ctx).Model(&user{}).
		Where("email = ?", email).
		Update("password", password)
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return errs.UserNotFoundErr(email)
	}

	return nil
}

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, txn *models.Transaction) error {
	dbo := transactionFromModelsTransaction(txn)

	return r.db.WithContext(ctx).Create(&dbo).Error
}

func (r *TransactionRepository) Select(ctx context.Context, params models.SelectParams) ([]models.Transaction, error) {
	var dbos []transaction

	db := r.db.WithContext(ctx).
		Where("email = ?", models.NormalizeEmail(params.Email)).
		Order("created_at DESC, id DESC")

	if err := db.Find(&dbos).Error; err != nil {
		return nil, err
	}

	ans := make([]models.Transaction, len(dbos))
	for i := range dbos {
		ans[i] = dbos[i].toModelsTransaction()
	}

	return ans, nil
}

func (r *TransactionRepository) Get(ctx context.Context, id string) (models.Transaction, error) {
	var dbo transaction

	err := r.db.WithContext(ctx).First(&dbo, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Transaction{}, errs.TransactionNotFoundErr(id)
		}

		return models.Transaction{}, err
	}

	return dbo.toModelsTransaction(), nil
}

func (r *TransactionRepository) UpdateStatus(ctx context.Context, id, status string) (models.Transaction, error) {
	var dbo transaction

	err := r.db.WithContext(ctx).First(&dbo, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Transaction{}, errs.TransactionNotFoundErr(id)
		}

		return models.Transaction{}, err
	}

	dbo.Status = strings.ToUpper(status)

	if err := r.db.WithContext(ctx).Save(&dbo).Error; err != nil {
		return models.Transaction{}, err
	}

	return dbo.toModelsTransaction(), nil
}

func (r *TransactionRepository) Delete(ctx context.Context, id string) (models.Transaction, error) {
	var dbo transaction

	err := r.db.WithContext(ctx).First(&dbo, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Transaction{}, errs.TransactionNotFoundErr(id)
		}

		return models.Transaction{}, err
	}

	if err := r.db.WithContext(ctx).Delete(&transaction{}, "id = ?", id).Error; err != nil {
		return models.Transaction{}, err
	}

	return dbo.toModelsTransaction(), nil
}
