package sqlite

import "github.com/telclab/topup-sandbox/models"

type user struct {
	Email    string `gorm:"column:email;primaryKey"`
	Password string `gorm:"column:password;not null"`
}

func (user) TableName() string { return "users" }

func (u *user) toModelsUser() models.User {
	return models.User{
		Email:    u.Email,
		Password: u.Password,
	}
}

func userFromModelsUser(u *models.User) user {
	return user{
		Email:    u.Email,
		Password: u.Password,
	}
}

type transaction struct {
	ID            string  `gorm:"column:id;primaryKey"`
	Email         string  `gorm:"column:email;not null;index"`
	Phone         string  `gorm:"column:phone;not null"`
	Package       string  `gorm:"column:package;not null"`
	PaymentMethod string  `gorm:"column:payment_method;not null"`
	Amount        float64 `gorm:"column:amount;not null"`
	Status        string  `gorm:"column:status;not null"`
	CreatedAt     string  `gorm:"column:created_at;not null"`
}

func (transaction) TableName() string { return "transactions" }

func (t *transaction) toModelsTransaction() models.Transaction {
	return models.Transaction{
		ID:            t.ID,
		Email:         t.Email,
		Phone:         t.Phone,
		Package:       t.Package,
		PaymentMethod: t.PaymentMethod,
		Amount:        t.Amount,
		Status:        t.Status,
		CreatedAt:     t.CreatedAt,
	}
}

func transactionFromModelsTransaction(t *models.Transaction) transaction {
	return transaction{
		ID:            t.ID,
		Email:         t.Email,
		Phone:         t.Phone,
		Package:       t.Package,
		PaymentMethod: t.PaymentMethod,
		Amount:        t.Amount,
		Status:        t.Status,
		CreatedAt:     t.CreatedAt,
	}
}
