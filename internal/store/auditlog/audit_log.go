package auditlog

import (
	"gorm.io/gorm"

	"github.com/dwarvesf/payout-backend/internal/model"
)

type Store struct {
}

func New() IStore {
	return &Store{}
}

func (s *Store) Create(tx *gorm.DB, entry *model.WithdrawalAuditLog) (*model.WithdrawalAuditLog, error) {
	return entry, tx.Create(entry).Error
}
