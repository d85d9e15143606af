package repository

import (
	"errors"
	"time"

	"loyalty/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

// LedgerRepository owns users and their transactions. Every points
// credit goes through RecordTransaction, which keeps the stored balance
// equal to the sum of points earned across the user's transactions.
type LedgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

func (r *LedgerRepository) CreateUser(name, email string) (*models.User, error) {
	u := &models.User{
		ID:            uuid.NewString(),
		Name:          name,
		Email:         email,
		PointsBalance: 0,
		CreatedAt:     time.Now().UTC(),
	}
	if err := r.db.Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func (r *LedgerRepository) GetUser(id string) (*models.User, error) {
	var u models.User
	if err := r.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// RecordTransaction appends the transaction and credits the user's
// balance in one database transaction. The increment happens in SQL so
// concurrent accruals for the same user cannot lose updates.
func (r *LedgerRepository) RecordTransaction(userID, partnerID string, amount float64, points int64, reference string) (*models.Transaction, *models.User, error) {
	txn := &models.Transaction{
		ID:                   uuid.NewString(),
		UserID:               userID,
		PartnerID:            partnerID,
		Amount:               amount,
		PointsEarned:         points,
		TransactionReference: reference,
		Timestamp:            time.Now().UTC(),
	}
	var u models.User
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&u, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		if err := tx.Create(txn).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).Where("id = ?", userID).
			Update("points_balance", gorm.Expr("points_balance + ?", points)).Error; err != nil {
			return err
		}
		return tx.First(&u, "id = ?", userID).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return txn, &u, nil
}

// TransactionsFor returns the user's transactions in recording order.
func (r *LedgerRepository) TransactionsFor(userID string) ([]models.Transaction, error) {
	if _, err := r.GetUser(userID); err != nil {
		return nil, err
	}
	list := make([]models.Transaction, 0)
	err := r.db.Where("user_id = ?", userID).Order("seq ASC").Find(&list).Error
	return list, err
}
