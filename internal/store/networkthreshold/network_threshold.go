package networkthreshold

import (
	"gorm.io/gorm"

	"github.com/dwarvesf/payout-backend/internal/model"
)

type Store struct {
}

func New() IStore {
	return &Store{}
}

func (s *Store) Create(tx *gorm.DB, threshold *model.NetworkThreshold) (*model.NetworkThreshold, error) {
	return threshold, tx.Create(threshold).Error
}

func (s *Store) GetByNetworkID(tx *gorm.DB, networkID uint) (*model.NetworkThreshold, error) {
	var threshold model.NetworkThreshold
	err := tx.Where("network_id = ?", networkID).First(&threshold).Error
	if err != nil {
		return nil, err
	}
	return &threshold, nil
}

func (s *Store) Update(tx *gorm.DB, threshold *model.NetworkThreshold) (*model.NetworkThreshold, error) {
	return threshold, tx.Save(threshold).Error
}
