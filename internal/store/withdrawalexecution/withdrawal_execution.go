package withdrawalexecution

import (
	"gorm.io/gorm"

	"github.com/dwarvesf/payout-backend/internal/model"
)

type Store struct {
}

func New() IStore {
	return &Store{}
}

func (s *Store) Create(tx *gorm.DB, execution *model.WithdrawalExecution) (*model.WithdrawalExecution, error) {
	return execution, tx.Create(execution).Error
}

func (s *Store) GetByRequestID(tx *gorm.DB, requestID uint) ([]model.WithdrawalExecution, error) {
	var executions []model.WithdrawalExecution
	err := tx.Where("request_id = ?", requestID).Find(&executions).Error
	if err != nil {
		return nil, err
	}
	return executions, nil
}

func (s *Store) UpdateStatusByTransactionHash(tx *gorm.DB, txHash string, status model.TxStatus) error {
	return tx.Model(&model.WithdrawalExecution{}).
		Where("transaction_hash = ?", txHash).
		Update("status", status).Error
}
