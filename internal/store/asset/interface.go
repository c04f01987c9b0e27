package asset

import (
	"gorm.io/gorm"

	"github.com/dwarvesf/payout-backend/internal/model"
)

type IStore interface {
	Create(tx *gorm.DB, asset *model.Asset) (*model.Asset, error)
	GetByID(tx *gorm.DB, id uint) (*model.Asset, error)
	GetByContractAddress(tx *gorm.DB, contractAddress string) (*model.Asset, error)
	GetBySymbol(tx *gorm.DB, networkID uint, symbol string) (*model.Asset, error)
	Update(tx *gorm.DB, asset *model.Asset) (*model.Asset, error)
}
