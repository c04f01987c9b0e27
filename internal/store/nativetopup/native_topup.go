package nativetopup

import (
	"gorm.io/gorm"

	"github.com/dwarvesf/payout-backend/internal/model"
)

type Store struct {
}

func New() IStore {
	return &Store{}
}

func (s *Store) Create(tx *gorm.DB, topup *model.NativeTopup) (*model.NativeTopup, error) {
	return topup, tx.Create(topup).Error
}

func (s *Store) GetByTransactionHash(tx *gorm.DB, txHash string) (*model.NativeTopup, error) {
	var topup model.NativeTopup
	err := tx.Where("transaction_hash = ?", txHash).First(&topup).Error
	if err != nil {
		return nil, err
	}
	return &topup, nil
}

func (s *Store) UpdateStatus(tx *gorm.DB, txHash string, status model.TxStatus) error {
	return tx.Model(&model.NativeTopup{}).
		Where("transaction_hash = ?", txHash).
		Update("status", status).Error
}
