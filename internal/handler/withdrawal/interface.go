package withdrawal

import (
	"github.com/gin-gonic/gin"

	"github.com/dwarvesf/payout-backend/internal/orchestrator"
)

type IHandler interface {
	CreateWithdrawal(c *gin.Context)
}

// Enqueuer is the slice of the worker the handler needs.
type Enqueuer interface {
	Enqueue(params orchestrator.ProcessWithdrawalParams) error
}
