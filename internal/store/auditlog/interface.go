package auditlog

import (
	"gorm.io/gorm"

	"github.com/dwarvesf/payout-backend/internal/model"
)

// IStore is write-only; the audit trail exists for forensic reconstruction
// and is never read by the withdrawal flow itself.
type IStore interface {
	Create(tx *gorm.DB, entry *model.WithdrawalAuditLog) (*model.WithdrawalAuditLog, error)
}
