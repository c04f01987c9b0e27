package withdrawalexecution

import (
	"gorm.io/gorm"

	"github.com/dwarvesf/payout-backend/internal/model"
)

type IStore interface {
	Create(tx *gorm.DB, execution *model.WithdrawalExecution) (*model.WithdrawalExecution, error)
	GetByRequestID(tx *gorm.DB, requestID uint) ([]model.WithdrawalExecution, error)
	// UpdateStatusByTransactionHash moves every execution in the batch at
	// once; a batch shares one transaction hash across requests.
	UpdateStatusByTransactionHash(tx *gorm.DB, txHash string, status model.TxStatus) error
}
