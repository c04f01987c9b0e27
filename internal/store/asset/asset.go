package asset

import (
	"gorm.io/gorm"

	"github.com/dwarvesf/payout-backend/internal/model"
)

type Store struct {
}

func New() IStore {
	return &Store{}
}

func (s *Store) Create(tx *gorm.DB, asset *model.Asset) (*model.Asset, error) {
	return asset, tx.Create(asset).Error
}

func (s *Store) GetByID(tx *gorm.DB, id uint) (*model.Asset, error) {
	var asset model.Asset
	err := tx.First(&asset, id).Error
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

// GetByContractAddress matches case-insensitively since hex addresses arrive
// in mixed checksum casing.
func (s *Store) GetByContractAddress(tx *gorm.DB, contractAddress string) (*model.Asset, error) {
	var asset model.Asset
	err := tx.Where("LOWER(contract_address) = LOWER(?)", contractAddress).First(&asset).Error
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func (s *Store) GetBySymbol(tx *gorm.DB, networkID uint, symbol string) (*model.Asset, error) {
	var asset model.Asset
	err := tx.Where("network_id = ? AND symbol = ?", networkID, symbol).First(&asset).Error
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func (s *Store) Update(tx *gorm.DB, asset *model.Asset) (*model.Asset, error) {
	return asset, tx.Save(asset).Error
}
