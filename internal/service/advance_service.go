package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pod-seller-ledger/internal/core/domain"
	"pod-seller-ledger/internal/core/ports"
	"pod-seller-ledger/internal/metrics"
	"pod-seller-ledger/internal/traces"
	"pod-seller-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// AdvanceServiceImpl implements ports.AdvanceService.
//
// Every mutation runs in one transaction that locks the advance row before
// the wallet row. RequestAdvance locks only the wallet row, which serializes
// concurrent requests from the same seller against the credit limit.
type AdvanceServiceImpl struct {
	sellerRepo    ports.SellerRepository
	advanceRepo   ports.AdvanceRepository
	repaymentRepo ports.RepaymentRepository
	ledger        ports.WalletLedger
	transactor    ports.DBTransactor
	idemp         idempotencyGuard
	audit         auditor
	settings      LedgerSettings
	now           func() time.Time
	nextNumber    func(prefix string, now time.Time) (string, error)
	log           zerolog.Logger
}

// NewAdvanceService creates a new AdvanceServiceImpl. idempCache and
// auditSvc may be nil.
func NewAdvanceService(
	sellerRepo ports.SellerRepository,
	advanceRepo ports.AdvanceRepository,
	repaymentRepo ports.RepaymentRepository,
	idempRepo ports.IdempotencyRepository,
	idempCache ports.IdempotencyCache,
	ledger ports.WalletLedger,
	transactor ports.DBTransactor,
	auditSvc ports.AuditService,
	settings LedgerSettings,
	log zerolog.Logger,
) *AdvanceServiceImpl {
	if settings.AdvanceNumberAttempts < 1 {
		settings.AdvanceNumberAttempts = 1
	}
	return &AdvanceServiceImpl{
		sellerRepo:    sellerRepo,
		advanceRepo:   advanceRepo,
		repaymentRepo: repaymentRepo,
		ledger:        ledger,
		transactor:    transactor,
		idemp:         idempotencyGuard{repo: idempRepo, cache: idempCache, log: log},
		audit:         auditor{sink: auditSvc},
		settings:      settings,
		now:           utcNow,
		nextNumber:    newAdvanceNumber,
		log:           log,
	}
}

// RequestAdvance creates a PENDING advance for the calling seller if it fits
// within their available credit.
func (s *AdvanceServiceImpl) RequestAdvance(ctx context.Context, cmd ports.RequestAdvanceCommand) (_ *domain.Advance, err error) {
	ctx, span := traces.StartSpan(ctx, "advance.request",
		traces.SellerID(cmd.Actor.ID.String()),
		traces.Amount(cmd.Amount.String()),
	)
	defer func() { traces.End(span, err) }()
	defer metrics.ObserveOp("advance.request")()

	if !cmd.Type.IsValid() {
		return nil, apperror.Validation(fmt.Sprintf("unknown advance type %q", cmd.Type))
	}
	if err := domain.ValidateAmount(cmd.Amount); err != nil {
		return nil, amountError(err)
	}

	seller, err := s.sellerRepo.GetByID(ctx, cmd.Actor.ID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get seller: %w", err))
	}
	if seller == nil {
		return nil, apperror.ErrNotFound("seller")
	}
	if !seller.HasTeam() {
		return nil, apperror.ErrNotEligible()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, created, err := s.ledger.EnsureWallet(ctx, dbTx, seller)
	if err != nil {
		return nil, err
	}

	outstanding, err := s.advanceRepo.SumExposure(ctx, dbTx, seller.ID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("sum exposure: %w", err))
	}
	credit := domain.NewCreditSummary(seller.ID, wallet.AdvanceLimit, outstanding)
	if cmd.Amount.GreaterThan(credit.Available) {
		return nil, apperror.ErrCreditLimitExceeded(
			credit.Limit.String(), credit.Outstanding.String(),
			credit.Available.String(), cmd.Amount.String(),
		)
	}

	advance := domain.NewAdvance(seller, cmd.Type, cmd.Amount, strings.TrimSpace(cmd.Reason), cmd.DueDate, s.now())
	if err := s.insertWithUniqueNumber(ctx, dbTx, advance); err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	if created {
		s.audit.walletCreated(ctx, cmd.Actor.ID, wallet)
	}
	s.audit.advance(ctx, cmd.Actor.ID, domain.AuditActionAdvanceRequested, advance, map[string]any{
		"type": string(advance.Type),
	})
	metrics.AdvanceTransitionsTotal.WithLabelValues(string(advance.Status)).Inc()

	s.log.Info().
		Str("advance_id", advance.ID.String()).
		Str("advance_number", advance.AdvanceNumber).
		Str("seller_id", seller.ID.String()).
		Str("amount", advance.Amount.String()).
		Msg("advance requested successfully")

	return advance, nil
}

// insertWithUniqueNumber inserts the advance under a savepoint, drawing a
// fresh number after each collision.
func (s *AdvanceServiceImpl) insertWithUniqueNumber(ctx context.Context, tx pgx.Tx, advance *domain.Advance) error {
	var lastErr error
	for attempt := 1; attempt <= s.settings.AdvanceNumberAttempts; attempt++ {
		number, err := s.nextNumber(s.settings.AdvanceNumberPrefix, advance.RequestedAt)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("generate advance number: %w", err))
		}
		advance.AdvanceNumber = number

		sp, err := tx.Begin(ctx)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("begin savepoint: %w", err))
		}

		err = s.advanceRepo.Create(ctx, sp, advance)
		if err == nil {
			if err := sp.Commit(ctx); err != nil {
				return apperror.InternalError(fmt.Errorf("release savepoint: %w", err))
			}
			return nil
		}

		if rbErr := sp.Rollback(ctx); rbErr != nil {
			return apperror.InternalError(fmt.Errorf("rollback savepoint: %w", rbErr))
		}
		if !errors.Is(err, ports.ErrDuplicateAdvanceNumber) {
			return apperror.InternalError(fmt.Errorf("create advance: %w", err))
		}

		lastErr = err
		metrics.AdvanceNumberRetriesTotal.Inc()
		s.log.Warn().
			Str("advance_number", number).
			Int("attempt", attempt).
			Msg("advance number collision, retrying")
	}
	return apperror.ErrAdvanceNumberExhausted(lastErr)
}

// Approve moves a PENDING advance to APPROVED.
func (s *AdvanceServiceImpl) Approve(ctx context.Context, actor domain.Actor, advanceID uuid.UUID, note string) (_ *domain.Advance, err error) {
	ctx, span := traces.StartSpan(ctx, "advance.approve", traces.AdvanceID(advanceID.String()), traces.ActorID(actor.ID.String()))
	defer func() { traces.End(span, err) }()

	if !actor.Privileged {
		return nil, apperror.ErrPermissionDenied()
	}

	now := s.now()
	return s.transition(ctx, actor, advanceID, "approve", domain.AuditActionAdvanceApproved,
		func(a *domain.Advance) error { return a.Approve(actor.ID, strings.TrimSpace(note), now) },
	)
}

// Reject moves a PENDING advance to REJECTED. The reason is required and
// checked before anything is read.
func (s *AdvanceServiceImpl) Reject(ctx context.Context, actor domain.Actor, advanceID uuid.UUID, reason string) (_ *domain.Advance, err error) {
	ctx, span := traces.StartSpan(ctx, "advance.reject", traces.AdvanceID(advanceID.String()), traces.ActorID(actor.ID.String()))
	defer func() { traces.End(span, err) }()

	if !actor.Privileged {
		return nil, apperror.ErrPermissionDenied()
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, apperror.Validation("rejection reason is required")
	}

	now := s.now()
	return s.transition(ctx, actor, advanceID, "reject", domain.AuditActionAdvanceRejected,
		func(a *domain.Advance) error { return a.Reject(actor.ID, reason, now) },
	)
}

// MarkOutstanding flags a DISBURSED advance whose due date has passed.
func (s *AdvanceServiceImpl) MarkOutstanding(ctx context.Context, actor domain.Actor, advanceID uuid.UUID) (_ *domain.Advance, err error) {
	ctx, span := traces.StartSpan(ctx, "advance.mark_outstanding", traces.AdvanceID(advanceID.String()), traces.ActorID(actor.ID.String()))
	defer func() { traces.End(span, err) }()

	if !actor.Privileged {
		return nil, apperror.ErrPermissionDenied()
	}

	now := s.now()
	return s.transition(ctx, actor, advanceID, "mark outstanding", domain.AuditActionAdvanceOutstanding,
		func(a *domain.Advance) error { return a.MarkOutstanding(now) },
	)
}

// transition runs a wallet-free status change on a locked advance.
func (s *AdvanceServiceImpl) transition(
	ctx context.Context,
	actor domain.Actor,
	advanceID uuid.UUID,
	operation string,
	action domain.AuditAction,
	apply func(a *domain.Advance) error,
) (*domain.Advance, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	advance, err := s.lockAdvance(ctx, dbTx, advanceID)
	if err != nil {
		return nil, err
	}

	if err := apply(advance); err != nil {
		return nil, mapAdvanceError(err, operation, advance)
	}

	if err := s.advanceRepo.Update(ctx, dbTx, advance); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update advance: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.audit.advance(ctx, actor.ID, action, advance, nil)
	metrics.AdvanceTransitionsTotal.WithLabelValues(string(advance.Status)).Inc()

	s.log.Info().
		Str("advance_id", advance.ID.String()).
		Str("actor_id", actor.ID.String()).
		Str("status", string(advance.Status)).
		Msgf("advance %s processed successfully", operation)

	return advance, nil
}

// Disburse releases an APPROVED advance: the seller's wallet is ensured, an
// ADVANCE ledger entry is written and the advance becomes DISBURSED, all in
// one transaction.
func (s *AdvanceServiceImpl) Disburse(ctx context.Context, actor domain.Actor, advanceID uuid.UUID) (_ *ports.DisbursementResult, err error) {
	ctx, span := traces.StartSpan(ctx, "advance.disburse", traces.AdvanceID(advanceID.String()), traces.ActorID(actor.ID.String()))
	defer func() { traces.End(span, err) }()
	defer metrics.ObserveOp("advance.disburse")()

	if !actor.Privileged {
		return nil, apperror.ErrPermissionDenied()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	advance, err := s.lockAdvance(ctx, dbTx, advanceID)
	if err != nil {
		return nil, err
	}
	if err := advance.Disburse(s.now()); err != nil {
		return nil, mapAdvanceError(err, "disburse", advance)
	}

	seller := &domain.Seller{ID: advance.SellerID, TeamID: advance.TeamID}
	wallet, created, err := s.ledger.EnsureWallet(ctx, dbTx, seller)
	if err != nil {
		return nil, err
	}

	txn, err := s.ledger.Apply(ctx, dbTx, wallet, ports.LedgerEntry{
		Type:          domain.TransactionTypeAdvance,
		Amount:        advance.Amount,
		ActorID:       actor.ID,
		ReferenceType: domain.ReferenceTypeAdvance,
		ReferenceID:   &advance.ID,
		Description:   "Disbursement of " + advance.AdvanceNumber,
	})
	if err != nil {
		return nil, err
	}

	if err := s.advanceRepo.Update(ctx, dbTx, advance); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update advance: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	if created {
		s.audit.walletCreated(ctx, actor.ID, wallet)
	}
	s.audit.walletTransaction(ctx, txn)
	s.audit.advance(ctx, actor.ID, domain.AuditActionAdvanceDisbursed, advance, map[string]any{
		"wallet_transaction_id": txn.ID.String(),
	})
	metrics.WalletTransactionsTotal.WithLabelValues(string(txn.Type)).Inc()
	metrics.AdvanceTransitionsTotal.WithLabelValues(string(advance.Status)).Inc()

	s.log.Info().
		Str("advance_id", advance.ID.String()).
		Str("seller_id", advance.SellerID.String()).
		Str("amount", advance.Amount.String()).
		Msg("advance disbursed successfully")

	return &ports.DisbursementResult{Advance: advance, Wallet: wallet, Transaction: txn}, nil
}

// Repay records a repayment against a repayable advance. When the seller has
// a wallet, a REPAYMENT entry is written in the same transaction.
func (s *AdvanceServiceImpl) Repay(ctx context.Context, cmd ports.RepayCommand) (_ *ports.RepaymentResult, err error) {
	ctx, span := traces.StartSpan(ctx, "advance.repay",
		traces.AdvanceID(cmd.AdvanceID.String()),
		traces.ActorID(cmd.Actor.ID.String()),
		traces.Amount(cmd.Amount.String()),
	)
	defer func() { traces.End(span, err) }()
	defer metrics.ObserveOp("advance.repay")()

	if err := domain.ValidateAmount(cmd.Amount); err != nil {
		return nil, amountError(err)
	}
	if !cmd.Method.IsValid() {
		return nil, apperror.Validation(fmt.Sprintf("unknown repayment method %q", cmd.Method))
	}

	var idempKey string
	if cmd.IdempotencyKey != "" {
		idempKey = domain.BuildIdempotencyKey(cmd.Actor.ID, "repay", cmd.AdvanceID, cmd.IdempotencyKey)
		var prior ports.RepaymentResult
		found, err := s.idemp.lookup(ctx, idempKey, &prior)
		if err != nil {
			return nil, err
		}
		if found {
			return &prior, nil
		}
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	advance, err := s.lockAdvance(ctx, dbTx, cmd.AdvanceID)
	if err != nil {
		return nil, err
	}
	if !cmd.Actor.CanAccessSeller(advance.SellerID) {
		return nil, apperror.ErrPermissionDenied()
	}

	now := s.now()
	if err := advance.ApplyRepayment(cmd.Amount, now); err != nil {
		return nil, mapAdvanceError(err, "repay", advance)
	}

	repayment := &domain.AdvanceRepayment{
		ID:        uuid.New(),
		AdvanceID: advance.ID,
		SellerID:  advance.SellerID,
		Amount:    cmd.Amount,
		Method:    cmd.Method,
		OrderID:   cmd.OrderID,
		Note:      strings.TrimSpace(cmd.Note),
		CreatedBy: cmd.Actor.ID,
		CreatedAt: now,
	}
	if err := s.repaymentRepo.Create(ctx, dbTx, repayment); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create repayment: %w", err))
	}

	if err := s.advanceRepo.Update(ctx, dbTx, advance); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update advance: %w", err))
	}

	result := &ports.RepaymentResult{Advance: advance, Repayment: repayment}

	wallet, err := s.ledger.LockWalletBySeller(ctx, dbTx, advance.SellerID)
	if err != nil {
		return nil, err
	}
	if wallet != nil {
		txn, err := s.ledger.Apply(ctx, dbTx, wallet, ports.LedgerEntry{
			Type:          domain.TransactionTypeRepayment,
			Amount:        cmd.Amount,
			ActorID:       cmd.Actor.ID,
			ReferenceType: domain.ReferenceTypeRepayment,
			ReferenceID:   &repayment.ID,
			Description:   "Repayment of " + advance.AdvanceNumber,
		})
		if err != nil {
			return nil, err
		}
		result.Wallet, result.Transaction = wallet, txn
	}

	var body []byte
	if idempKey != "" {
		if body, err = s.idemp.record(ctx, dbTx, idempKey, repayment.ID, result, now); err != nil {
			if !errors.Is(err, domain.ErrDuplicateIdempotencyKey) {
				return nil, err
			}
			_ = dbTx.Rollback(ctx)
			var prior ports.RepaymentResult
			if err := s.idemp.replay(ctx, idempKey, &prior); err != nil {
				return nil, err
			}
			return &prior, nil
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.idemp.remember(ctx, idempKey, body)
	if result.Transaction != nil {
		s.audit.walletTransaction(ctx, result.Transaction)
		metrics.WalletTransactionsTotal.WithLabelValues(string(result.Transaction.Type)).Inc()
	}
	s.audit.advance(ctx, cmd.Actor.ID, domain.AuditActionAdvanceRepaid, advance, map[string]any{
		"repayment_id": repayment.ID.String(),
		"method":       string(repayment.Method),
		"repaid":       cmd.Amount.String(),
	})
	metrics.AdvanceTransitionsTotal.WithLabelValues(string(advance.Status)).Inc()

	s.log.Info().
		Str("advance_id", advance.ID.String()).
		Str("repayment_id", repayment.ID.String()).
		Str("amount", cmd.Amount.String()).
		Str("outstanding", advance.OutstandingAmount.String()).
		Str("status", string(advance.Status)).
		Msg("repayment processed successfully")

	return result, nil
}

// GetAdvance returns one advance visible to the actor.
func (s *AdvanceServiceImpl) GetAdvance(ctx context.Context, actor domain.Actor, advanceID uuid.UUID) (*domain.Advance, error) {
	advance, err := s.advanceRepo.GetByID(ctx, advanceID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get advance: %w", err))
	}
	if advance == nil {
		return nil, apperror.ErrNotFound("advance")
	}
	if !actor.CanAccessSeller(advance.SellerID) {
		return nil, apperror.ErrPermissionDenied()
	}
	return advance, nil
}

// ListAdvances pages through advances. Non-privileged actors only see their
// own.
func (s *AdvanceServiceImpl) ListAdvances(ctx context.Context, actor domain.Actor, params ports.AdvanceListParams) ([]domain.Advance, int64, error) {
	if !actor.Privileged {
		if params.SellerID != nil && *params.SellerID != actor.ID {
			return nil, 0, apperror.ErrPermissionDenied()
		}
		self := actor.ID
		params.SellerID = &self
	}
	params.Page, params.PageSize = normalizePage(params.Page, params.PageSize)

	advances, total, err := s.advanceRepo.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list advances: %w", err))
	}
	return advances, total, nil
}

// ListRepayments returns an advance's repayment history.
func (s *AdvanceServiceImpl) ListRepayments(ctx context.Context, actor domain.Actor, advanceID uuid.UUID) ([]domain.AdvanceRepayment, error) {
	if _, err := s.GetAdvance(ctx, actor, advanceID); err != nil {
		return nil, err
	}
	repayments, err := s.repaymentRepo.ListByAdvance(ctx, advanceID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list repayments: %w", err))
	}
	return repayments, nil
}

func (s *AdvanceServiceImpl) lockAdvance(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Advance, error) {
	advance, err := s.advanceRepo.GetByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock advance: %w", err))
	}
	if advance == nil {
		return nil, apperror.ErrNotFound("advance")
	}
	return advance, nil
}

// mapAdvanceError translates domain sentinels raised by an advance
// transition. advance must be the unmodified row.
func mapAdvanceError(err error, operation string, advance *domain.Advance) error {
	switch {
	case errors.Is(err, domain.ErrInvalidTransition):
		return apperror.ErrInvalidState(operation, string(advance.Status))
	case errors.Is(err, domain.ErrExceedsOutstanding):
		return apperror.ErrExceedsOutstanding(advance.OutstandingAmount.String())
	case errors.Is(err, domain.ErrNonPositiveAmount), errors.Is(err, domain.ErrAmountScale):
		return amountError(err)
	case errors.Is(err, domain.ErrReasonRequired):
		return apperror.Validation("rejection reason is required")
	case errors.Is(err, domain.ErrNotOverdue):
		return apperror.Validation("advance is not past its due date")
	default:
		return apperror.InternalError(err)
	}
}

var _ ports.AdvanceService = (*AdvanceServiceImpl)(nil)
