package withdrawal

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/dwarvesf/payout-backend/internal/orchestrator"
	"github.com/dwarvesf/payout-backend/internal/utils/config"
	"github.com/dwarvesf/payout-backend/internal/utils/logger"
	"github.com/dwarvesf/payout-backend/internal/view"
	"github.com/dwarvesf/payout-backend/internal/worker"
)

type CreateWithdrawalRequest struct {
	OwnerIndex      uint32   `json:"owner_index"`
	OperatorIndex   uint32   `json:"operator_index"`
	FundingIndex    uint32   `json:"funding_index"`
	Recipients      []string `json:"recipients" binding:"required,min=1"`
	Amounts         []string `json:"amounts" binding:"required,min=1"`
	AssetContract   string   `json:"asset_contract" binding:"required"`
	RPCEndpoint     string   `json:"rpc_endpoint" binding:"required"`
	ClientRequestID string   `json:"client_request_id"`
	ChainID         int64    `json:"chain_id"`
}

type CreateWithdrawalResponse struct {
	ClientRequestID string `json:"client_request_id"`
}

type handler struct {
	enqueuer  Enqueuer
	logger    *logger.Logger
	appConfig *config.AppConfig
}

func New(enqueuer Enqueuer, logger *logger.Logger, appConfig *config.AppConfig) IHandler {
	return &handler{
		enqueuer:  enqueuer,
		logger:    logger,
		appConfig: appConfig,
	}
}

// CreateWithdrawal accepts a withdrawal job and queues it for processing.
// The response carries the client request id the job can be resubmitted
// under; processing itself is asynchronous.
func (h *handler) CreateWithdrawal(c *gin.Context) {
	var req CreateWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("[CreateWithdrawal][ShouldBindJSON]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, err, req, "invalid request"))
		return
	}

	// validate req
	err := validator.New().Struct(req)
	if err != nil {
		h.logger.Error("[CreateWithdrawal][Validator]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, err, req, "invalid request"))
		return
	}

	if len(req.Recipients) != len(req.Amounts) {
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, orchestrator.ErrRecipientsAmountsLength, req, "invalid request"))
		return
	}

	clientRequestID := req.ClientRequestID
	if clientRequestID == "" {
		clientRequestID = uuid.NewString()
	}

	err = h.enqueuer.Enqueue(orchestrator.ProcessWithdrawalParams{
		OwnerIndex:      req.OwnerIndex,
		OperatorIndex:   req.OperatorIndex,
		FundingIndex:    req.FundingIndex,
		Recipients:      req.Recipients,
		Amounts:         req.Amounts,
		AssetContract:   req.AssetContract,
		RPCEndpoint:     req.RPCEndpoint,
		ClientRequestID: clientRequestID,
		ChainID:         req.ChainID,
	})
	if err != nil {
		h.logger.Error("[CreateWithdrawal][Enqueue]", map[string]string{
			"clientRequestID": clientRequestID,
			"error":           err.Error(),
		})
		if errors.Is(err, worker.ErrQueueFull) {
			c.JSON(http.StatusServiceUnavailable, view.CreateResponse[any](nil, err, nil, "queue is full, retry later"))
			return
		}
		c.JSON(http.StatusInternalServerError, view.CreateResponse[any](nil, err, nil, "failed to queue withdrawal"))
		return
	}

	c.JSON(http.StatusAccepted, view.CreateResponse[any](CreateWithdrawalResponse{
		ClientRequestID: clientRequestID,
	}, nil, nil, "withdrawal queued"))
}
