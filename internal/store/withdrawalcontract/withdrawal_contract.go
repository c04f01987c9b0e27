package withdrawalcontract

import (
	"gorm.io/gorm"

	"github.com/dwarvesf/payout-backend/internal/model"
)

type Store struct {
}

func New() IStore {
	return &Store{}
}

func (s *Store) Create(tx *gorm.DB, contract *model.WithdrawalContract) (*model.WithdrawalContract, error) {
	return contract, tx.Create(contract).Error
}

func (s *Store) GetByID(tx *gorm.DB, id uint) (*model.WithdrawalContract, error) {
	var contract model.WithdrawalContract
	err := tx.First(&contract, id).Error
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

// GetActiveByNetwork returns the single active spender contract for a
// network, or gorm.ErrRecordNotFound when none is active.
func (s *Store) GetActiveByNetwork(tx *gorm.DB, networkID uint) (*model.WithdrawalContract, error) {
	var contract model.WithdrawalContract
	err := tx.Where("network_id = ? AND is_active = ?", networkID, true).First(&contract).Error
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

// Activate marks the contract active and deactivates every other contract on
// the same network in the same transaction, keeping the at-most-one-active
// invariant. Callers wrap this in store.DoInTx.
func (s *Store) Activate(tx *gorm.DB, id uint) (*model.WithdrawalContract, error) {
	var contract model.WithdrawalContract
	if err := tx.First(&contract, id).Error; err != nil {
		return nil, err
	}

	err := tx.Model(&model.WithdrawalContract{}).
		Where("network_id = ? AND id != ?", contract.NetworkID, contract.ID).
		Update("is_active", false).Error
	if err != nil {
		return nil, err
	}

	contract.IsActive = true
	if err := tx.Save(&contract).Error; err != nil {
		return nil, err
	}
	return &contract, nil
}
