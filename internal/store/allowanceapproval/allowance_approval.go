package allowanceapproval

import (
	"gorm.io/gorm"

	"github.com/dwarvesf/payout-backend/internal/model"
)

type Store struct {
}

func New() IStore {
	return &Store{}
}

func (s *Store) Create(tx *gorm.DB, approval *model.AllowanceApproval) (*model.AllowanceApproval, error) {
	return approval, tx.Create(approval).Error
}

func (s *Store) GetConfirmed(tx *gorm.DB, ownerAddress string, assetID, contractID uint) (*model.AllowanceApproval, error) {
	var approval model.AllowanceApproval
	err := tx.Where(
		"LOWER(owner_address) = LOWER(?) AND asset_id = ? AND contract_id = ? AND status = ?",
		ownerAddress, assetID, contractID, model.TxStatusConfirmed,
	).First(&approval).Error
	if err != nil {
		return nil, err
	}
	return &approval, nil
}

func (s *Store) UpdateStatus(tx *gorm.DB, txHash string, status model.TxStatus) error {
	return tx.Model(&model.AllowanceApproval{}).
		Where("transaction_hash = ?", txHash).
		Update("status", status).Error
}
