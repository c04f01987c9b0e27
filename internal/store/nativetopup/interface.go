package nativetopup

import (
	"gorm.io/gorm"

	"github.com/dwarvesf/payout-backend/internal/model"
)

type IStore interface {
	Create(tx *gorm.DB, topup *model.NativeTopup) (*model.NativeTopup, error)
	GetByTransactionHash(tx *gorm.DB, txHash string) (*model.NativeTopup, error)
	UpdateStatus(tx *gorm.DB, txHash string, status model.TxStatus) error
}
