package networkthreshold

import (
	"gorm.io/gorm"

	"github.com/dwarvesf/payout-backend/internal/model"
)

type IStore interface {
	Create(tx *gorm.DB, threshold *model.NetworkThreshold) (*model.NetworkThreshold, error)
	GetByNetworkID(tx *gorm.DB, networkID uint) (*model.NetworkThreshold, error)
	Update(tx *gorm.DB, threshold *model.NetworkThreshold) (*model.NetworkThreshold, error)
}
