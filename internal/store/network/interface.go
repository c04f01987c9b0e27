package network

import (
	"gorm.io/gorm"

	"github.com/dwarvesf/payout-backend/internal/model"
)

type IStore interface {
	Create(tx *gorm.DB, network *model.Network) (*model.Network, error)
	GetByID(tx *gorm.DB, id uint) (*model.Network, error)
	GetByChainID(tx *gorm.DB, chainID int64) (*model.Network, error)
	Update(tx *gorm.DB, network *model.Network) (*model.Network, error)
}
