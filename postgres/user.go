package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/telclab/topup-sandbox/errs"
	"github.com/telclab/topup-sandbox/models"
)

var _ models.UserRepository = (*userRepository)(nil)

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a postgres-backed UserRepository.
func NewUserRepository(db *sql.DB) models.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) Create(ctx context.Context, user *models.User) error {
	user.Email = models.NormalizeEmail(user.Email)

	const checkQ = `SELECT 1 FROM users WHERE email = $1`

	var one int

	err := repo.db.QueryRowContext(ctx, checkQ, user.Email).Scan(&one)
	if err == nil {
		return errs.DuplicateEmailErr(user.Email)
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	const q = `INSERT INTO users (email, password) VALUES ($1, $2)`

	_, err = repo.db.ExecContext(ctx, q, user.Email, user.Password)

	return err
}

func (repo *userRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	email = models.NormalizeEmail(email)

	const q = `SELECT email, password FROM users WHERE email = $1`

	var user models.User

	err := repo.db.QueryRowContext(ctx, q, email).Scan(&user.Email, &user.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, errs.UserNotFoundErr(email)
		}

		return models.User{}, err
	}

	return user, nil
}

func (repo *userRepository) UpdatePassword(ctx context.Context, email, password string) error {
	email = models.NormalizeEmail(email)

	const q = `UPDATE users SET password = $1 WHERE email = $2`

	res, err := repo.db.ExecContext(ctx, q, password, email)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return errs.UserNotFoundErr(email)
	}

	return nil
}
