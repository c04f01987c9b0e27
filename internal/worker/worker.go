package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/dwarvesf/payout-backend/internal/monitoring"
	"github.com/dwarvesf/payout-backend/internal/orchestrator"
	"github.com/dwarvesf/payout-backend/internal/store"
	"github.com/dwarvesf/payout-backend/internal/utils/config"
	"github.com/dwarvesf/payout-backend/internal/utils/logger"
)

var ErrQueueFull = errors.New("withdrawal queue is full")

// stuckAgeMinutes is how old a non-terminal request must be before the
// periodic sweep reports it.
const stuckAgeMinutes = 30

// Worker consumes withdrawal jobs from a bounded queue. Jobs for different
// owners run concurrently; jobs for the same owner index are serialized
// through a per-owner mutex so two jobs can never race the allowance check
// or the owner's nonce.
type Worker struct {
	db           *gorm.DB
	store        *store.Store
	orchestrator orchestrator.IOrchestrator
	metrics      *monitoring.WithdrawalMetrics
	logger       *logger.Logger

	queue chan orchestrator.ProcessWithdrawalParams

	mu         sync.Mutex
	ownerLocks map[uint32]*sync.Mutex

	wg sync.WaitGroup
}

func New(db *gorm.DB, s *store.Store, orch orchestrator.IOrchestrator, metrics *monitoring.WithdrawalMetrics, appConfig *config.AppConfig, logger *logger.Logger) *Worker {
	return &Worker{
		db:           db,
		store:        s,
		orchestrator: orch,
		metrics:      metrics,
		logger:       logger,
		queue:        make(chan orchestrator.ProcessWithdrawalParams, appConfig.Worker.QueueSize),
		ownerLocks:   map[uint32]*sync.Mutex{},
	}
}

// Enqueue adds a job without blocking. A full queue is the caller's problem;
// the worker never drops an accepted job.
func (w *Worker) Enqueue(params orchestrator.ProcessWithdrawalParams) error {
	select {
	case w.queue <- params:
		if w.metrics != nil {
			w.metrics.SetQueueDepth(len(w.queue))
		}
		return nil
	default:
		return ErrQueueFull
	}
}

// Start launches the dispatcher. It returns immediately; consumption stops
// when ctx is cancelled and in-flight jobs are waited out by Wait.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case params := <-w.queue:
				if w.metrics != nil {
					w.metrics.SetQueueDepth(len(w.queue))
				}
				w.wg.Add(1)
				go func() {
					defer w.wg.Done()
					w.process(ctx, params)
				}()
			}
		}
	}()
}

// Wait blocks until the dispatcher and all in-flight jobs are finished.
func (w *Worker) Wait() {
	w.wg.Wait()
}

func (w *Worker) process(ctx context.Context, params orchestrator.ProcessWithdrawalParams) {
	lock := w.ownerLock(params.OwnerIndex)
	lock.Lock()
	defer lock.Unlock()

	start := time.Now()
	receipt, err := w.orchestrator.ProcessWithdrawal(ctx, params)
	duration := time.Since(start).Seconds()

	outcome := classify(receipt, err)
	if w.metrics != nil {
		w.metrics.RecordJob(outcome, duration)
	}

	fields := map[string]string{
		"clientRequestID": params.ClientRequestID,
		"ownerIndex":      fmt.Sprintf("%d", params.OwnerIndex),
		"outcome":         outcome,
	}
	if err != nil {
		fields["error"] = err.Error()
		w.logger.Error("[process][ProcessWithdrawal]", fields)
		return
	}
	fields["txHash"] = receipt.TxHash.Hex()
	w.logger.Info("[process] job finished", fields)
}

func (w *Worker) ownerLock(ownerIndex uint32) *sync.Mutex {
	w.mu.Lock()
	defer w.mu.Unlock()
	lock, ok := w.ownerLocks[ownerIndex]
	if !ok {
		lock = &sync.Mutex{}
		w.ownerLocks[ownerIndex] = lock
	}
	return lock
}

func classify(receipt *ethtypes.Receipt, err error) string {
	switch {
	case err != nil:
		return monitoring.OutcomeError
	case receipt.Status != ethtypes.ReceiptStatusSuccessful:
		return monitoring.OutcomeFailed
	default:
		return monitoring.OutcomeConfirmed
	}
}

// SweepStuck reports requests that have sat in a non-terminal state for too
// long. It only observes; unsticking is an operator decision because the
// orchestrator never retries on its own.
func (w *Worker) SweepStuck() {
	requests, err := w.store.WithdrawalRequest.ListNonTerminalOlderThan(w.db, stuckAgeMinutes)
	if err != nil {
		w.logger.Error("[SweepStuck][ListNonTerminalOlderThan]", map[string]string{
			"error": err.Error(),
		})
		return
	}

	if w.metrics != nil {
		w.metrics.SetStuckRequests(len(requests))
	}
	for i := range requests {
		w.logger.Info("[SweepStuck] stuck withdrawal request", map[string]string{
			"requestID": fmt.Sprintf("%d", requests[i].ID),
			"status":    string(requests[i].Status),
			"to":        requests[i].ToAddress,
			"amount":    requests[i].Amount,
		})
	}
}
