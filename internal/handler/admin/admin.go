package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dwarvesf/payout-backend/internal/model"
	"github.com/dwarvesf/payout-backend/internal/store"
	"github.com/dwarvesf/payout-backend/internal/utils/logger"
	"github.com/dwarvesf/payout-backend/internal/view"
)

type handler struct {
	db     *gorm.DB
	store  *store.Store
	logger *logger.Logger

	inTx func(fn func(tx *gorm.DB) error) error
}

func New(db *gorm.DB, s *store.Store, logger *logger.Logger) IHandler {
	return &handler{
		db:     db,
		store:  s,
		logger: logger,
		inTx: func(fn func(tx *gorm.DB) error) error {
			return store.DoInTx(db, fn)
		},
	}
}

// ActivateContract makes a spender contract the active one for its network.
// Deactivation of the previously active contract happens in the same
// database transaction, so at most one contract is ever active per network.
func (h *handler) ActivateContract(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, err, nil, "invalid contract id"))
		return
	}

	var contract *model.WithdrawalContract
	err = h.inTx(func(tx *gorm.DB) error {
		var txErr error
		contract, txErr = h.store.WithdrawalContract.Activate(tx, uint(id))
		return txErr
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, view.CreateResponse[any](nil, err, nil, "contract not found"))
			return
		}
		h.logger.Error("[ActivateContract][Activate]", map[string]string{
			"contractID": c.Param("id"),
			"error":      err.Error(),
		})
		c.JSON(http.StatusInternalServerError, view.CreateResponse[any](nil, err, nil, "failed to activate contract"))
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse[any](contract, nil, nil, "contract activated"))
}
