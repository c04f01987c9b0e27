package withdrawalrequest

import (
	"gorm.io/gorm"

	"github.com/dwarvesf/payout-backend/internal/model"
)

type IStore interface {
	// Create persists a new request. When the request carries a client
	// request id that already exists, the existing row is returned instead
	// of an error; this is what makes job resubmission safe.
	Create(tx *gorm.DB, request *model.WithdrawalRequest) (*model.WithdrawalRequest, bool, error)
	GetByID(tx *gorm.DB, id uint) (*model.WithdrawalRequest, error)
	GetByClientRequestID(tx *gorm.DB, clientRequestID string) (*model.WithdrawalRequest, error)
	// UpdateStatus advances the state machine. Transitions never move
	// backwards and terminal states never change.
	UpdateStatus(tx *gorm.DB, id uint, status model.WithdrawalStatus) error
	ListNonTerminalOlderThan(tx *gorm.DB, minutes int) ([]model.WithdrawalRequest, error)
}
