package network

import (
	"gorm.io/gorm"

	"github.com/dwarvesf/payout-backend/internal/model"
)

type Store struct {
}

func New() IStore {
	return &Store{}
}

func (s *Store) Create(tx *gorm.DB, network *model.Network) (*model.Network, error) {
	return network, tx.Create(network).Error
}

func (s *Store) GetByID(tx *gorm.DB, id uint) (*model.Network, error) {
	var network model.Network
	err := tx.First(&network, id).Error
	if err != nil {
		return nil, err
	}
	return &network, nil
}

func (s *Store) GetByChainID(tx *gorm.DB, chainID int64) (*model.Network, error) {
	var network model.Network
	err := tx.Where("chain_id = ?", chainID).First(&network).Error
	if err != nil {
		return nil, err
	}
	return &network, nil
}

func (s *Store) Update(tx *gorm.DB, network *model.Network) (*model.Network, error) {
	return network, tx.Save(network).Error
}
