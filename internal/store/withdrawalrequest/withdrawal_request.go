package withdrawalrequest

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/dwarvesf/payout-backend/internal/model"
)

type Store struct {
}

func New() IStore {
	return &Store{}
}

// Create returns (row, created, error). When the client request id collides
// with an existing row, that row is returned with created=false.
func (s *Store) Create(tx *gorm.DB, request *model.WithdrawalRequest) (*model.WithdrawalRequest, bool, error) {
	if request.ClientRequestID != nil {
		existing, err := s.GetByClientRequestID(tx, *request.ClientRequestID)
		if err == nil {
			return existing, false, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, err
		}
	}

	if err := tx.Create(request).Error; err != nil {
		// a concurrent job may have inserted the same client id between the
		// lookup and the insert; the unique index makes that loser re-read
		if request.ClientRequestID != nil {
			if existing, lookupErr := s.GetByClientRequestID(tx, *request.ClientRequestID); lookupErr == nil {
				return existing, false, nil
			}
		}
		return nil, false, err
	}
	return request, true, nil
}

func (s *Store) GetByID(tx *gorm.DB, id uint) (*model.WithdrawalRequest, error) {
	var request model.WithdrawalRequest
	err := tx.First(&request, id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (s *Store) GetByClientRequestID(tx *gorm.DB, clientRequestID string) (*model.WithdrawalRequest, error) {
	var request model.WithdrawalRequest
	err := tx.Where("client_request_id = ?", clientRequestID).First(&request).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (s *Store) UpdateStatus(tx *gorm.DB, id uint, status model.WithdrawalStatus) error {
	request, err := s.GetByID(tx, id)
	if err != nil {
		return err
	}

	// statuses only move forward; a resubmitted job replaying earlier steps
	// against an already-advanced row is a no-op, not an error
	if request.Status == status || !request.Status.CanTransitionTo(status) {
		return nil
	}

	return tx.Model(&model.WithdrawalRequest{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (s *Store) ListNonTerminalOlderThan(tx *gorm.DB, minutes int) ([]model.WithdrawalRequest, error) {
	var requests []model.WithdrawalRequest
	cutoff := time.Now().Add(-time.Duration(minutes) * time.Minute)
	err := tx.Where("status NOT IN ? AND updated_at < ?",
		[]model.WithdrawalStatus{model.WithdrawalStatusOnchainConfirmed, model.WithdrawalStatusFailed},
		cutoff,
	).Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}
