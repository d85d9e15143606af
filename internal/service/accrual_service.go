package service

import (
	"errors"
	"fmt"

	"loyalty/internal/models"
	"loyalty/internal/repository"
)

var ErrValidation = errors.New("validation failed")

// AccrualService composes the ledger with the rate table. It owns the
// amount-to-points conversion and the required-field checks at the
// domain boundary.
type AccrualService struct {
	ledger *repository.LedgerRepository
	rates  *repository.RateRepository
}

func NewAccrualService(ledger *repository.LedgerRepository, rates *repository.RateRepository) *AccrualService {
	return &AccrualService{ledger: ledger, rates: rates}
}

// RecordTransactionResult pairs the stored transaction with the user's
// balance read immediately after the credit.
type RecordTransactionResult struct {
	Transaction       *models.Transaction `json:"transaction"`
	UserPointsBalance int64               `json:"user_points_balance"`
}

// RateTable is the reporting view of the accrual rules.
type RateTable struct {
	DefaultRate  float64            `json:"default_rate"`
	PartnerRates map[string]float64 `json:"partner_rates"`
}

// CalculatePoints truncates toward zero: amount 9.99 at rate 2 earns 19
// points, not 20.
func CalculatePoints(amount, rate float64) int64 {
	return int64(amount * rate)
}

func (s *AccrualService) CreateUser(name, email string) (*models.User, error) {
	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: missing required fields: name, email", ErrValidation)
	}
	return s.ledger.CreateUser(name, email)
}

func (s *AccrualService) GetUser(id string) (*models.User, error) {
	return s.ledger.GetUser(id)
}

// RecordTransaction converts the amount into points at the partner's
// current rate and credits them to the user atomically.
func (s *AccrualService) RecordTransaction(userID, partnerID string, amount float64, reference string) (*RecordTransactionResult, error) {
	if userID == "" || partnerID == "" || reference == "" {
		return nil, fmt.Errorf("%w: missing required fields: user_id, partner_id, amount, transaction_reference", ErrValidation)
	}
	points := CalculatePoints(amount, s.rates.RateFor(partnerID))
	txn, u, err := s.ledger.RecordTransaction(userID, partnerID, amount, points, reference)
	if err != nil {
		return nil, err
	}
	return &RecordTransactionResult{Transaction: txn, UserPointsBalance: u.PointsBalance}, nil
}

func (s *AccrualService) GetUserTransactions(userID string) ([]models.Transaction, error) {
	return s.ledger.TransactionsFor(userID)
}

func (s *AccrualService) GetRateTable() (*RateTable, error) {
	def, partners, err := s.rates.Snapshot()
	if err != nil {
		return nil, err
	}
	return &RateTable{DefaultRate: def, PartnerRates: partners}, nil
}

// SetPartnerRate upserts one partner's rate and returns the updated
// table.
func (s *AccrualService) SetPartnerRate(partnerID string, rate float64) (*RateTable, error) {
	if partnerID == "" {
		return nil, fmt.Errorf("%w: missing required fields: partner_id, points_rate", ErrValidation)
	}
	if err := s.rates.SetRate(partnerID, rate); err != nil {
		return nil, err
	}
	return s.GetRateTable()
}
