package withdrawalcontract

import (
	"gorm.io/gorm"

	"github.com/dwarvesf/payout-backend/internal/model"
)

type IStore interface {
	Create(tx *gorm.DB, contract *model.WithdrawalContract) (*model.WithdrawalContract, error)
	GetByID(tx *gorm.DB, id uint) (*model.WithdrawalContract, error)
	GetActiveByNetwork(tx *gorm.DB, networkID uint) (*model.WithdrawalContract, error)
	Activate(tx *gorm.DB, id uint) (*model.WithdrawalContract, error)
}
