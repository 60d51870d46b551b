package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/telclab/topup-sandbox/errs"
	"github.com/telclab/topup-sandbox/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "sandbox.db"))
	require.NoError(t, err)

	return db
}

func TestUserRepositorySQLite(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(openTestDB(t))

	require.NoError(t, repo.Create(ctx, &models.User{Email: "QA@Example.com", Password: "pass1234"}))

	got, err := repo.GetByEmail(ctx, "qa@example.com")
	require.NoError(t, err)
	assert.Equal(t, "pass1234", got.Password)

	err = repo.Create(ctx, &models.User{Email: " qa@example.COM", Password: "other"})
	require.Error(t, err)
	assert.Equal(t, errs.Conflict, errs.KindOf(err))

	require.NoError(t, repo.UpdatePassword(ctx, "qa@example.com", "changed"))

	got, err = repo.GetByEmail(ctx, "qa@example.com")
	require.NoError(t, err)
	assert.Equal(t, "changed", got.Password)

	err = repo.UpdatePassword(ctx, "nobody@example.com", "x")
	assert.Equal(t, errs.NotFound, errs.KindOf(err))
}

func TestTransactionRepositorySQLite(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository(openTestDB(t))

	first := models.NewTransaction("qa@example.com", "0812345678", "Basic", models.PaymentMethodWallet, 100)
	second := models.NewTransaction("qa@example.com", "0891234567", "5G Max Speed", models.PaymentMethodCreditCard, 1199)
	other := models.NewTransaction("other@example.com", "0812340000", "Basic", models.PaymentMethodQR, 50)

	for _, txn := range []*models.Transaction{&first, &second, &other} {
		require.NoError(t, repo.Create(ctx, txn))
	}

	t.Run("SelectNewestFirst", func(t *testing.T) {
		got, err := repo.Select(ctx, models.SelectParams{Email: "qa@example.com"})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, second.ID, got[0].ID)
		assert.Equal(t, first.ID, got[1].ID)
	})

	t.Run("Get", func(t *testing.T) {
		got, err := repo.Get(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, first, got)

		_, err = repo.Get(ctx, "TXN-0")
		assert.Equal(t, errs.NotFound, errs.KindOf(err))
	})

	t.Run("UpdateStatus", func(t *testing.T) {
		got, err := repo.UpdateStatus(ctx, first.ID, "refunded")
		require.NoError(t, err)
		assert.Equal(t, "REFUNDED", got.Status)

		_, err = repo.UpdateStatus(ctx, "TXN-0", "REFUNDED")
		assert.Equal(t, errs.NotFound, errs.KindOf(err))
	})

	t.Run("Delete", func(t *testing.T) {
		got, err := repo.Delete(ctx, other.ID)
		require.NoError(t, err)
		assert.Equal(t, other.ID, got.ID)

		_, err = repo.Get(ctx, other.ID)
		assert.Equal(t, errs.NotFound, errs.KindOf(err))
	})
}
