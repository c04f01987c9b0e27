package allowanceapproval

import (
	"gorm.io/gorm"

	"github.com/dwarvesf/payout-backend/internal/model"
)

type IStore interface {
	Create(tx *gorm.DB, approval *model.AllowanceApproval) (*model.AllowanceApproval, error)
	// GetConfirmed returns the confirmed approval for the (owner, asset,
	// contract) triple if one exists; once present the allowance
	// precondition is permanently satisfied.
	GetConfirmed(tx *gorm.DB, ownerAddress string, assetID, contractID uint) (*model.AllowanceApproval, error)
	UpdateStatus(tx *gorm.DB, txHash string, status model.TxStatus) error
}
