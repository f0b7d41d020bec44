package service

import (
	"context"
	"errors"
	"fmt"
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

// WalletServiceImpl implements ports.WalletService and ports.WalletLedger.
type WalletServiceImpl struct {
	sellerRepo  ports.SellerRepository
	walletRepo  ports.WalletRepository
	advanceRepo ports.AdvanceRepository
	txnRepo     ports.WalletTransactionRepository
	transactor  ports.DBTransactor
	idemp       idempotencyGuard
	audit       auditor
	settings    LedgerSettings
	now         func() time.Time
	log         zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl. idempCache and auditSvc
// may be nil.
func NewWalletService(
	sellerRepo ports.SellerRepository,
	walletRepo ports.WalletRepository,
	advanceRepo ports.AdvanceRepository,
	txnRepo ports.WalletTransactionRepository,
	idempRepo ports.IdempotencyRepository,
	idempCache ports.IdempotencyCache,
	transactor ports.DBTransactor,
	auditSvc ports.AuditService,
	settings LedgerSettings,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		sellerRepo:  sellerRepo,
		walletRepo:  walletRepo,
		advanceRepo: advanceRepo,
		txnRepo:     txnRepo,
		transactor:  transactor,
		idemp:       idempotencyGuard{repo: idempRepo, cache: idempCache, log: log},
		audit:       auditor{sink: auditSvc},
		settings:    settings,
		now:         utcNow,
		log:         log,
	}
}

// GetOrCreateWallet returns the seller's wallet, creating it on first use
// for sellers that belong to a team.
func (s *WalletServiceImpl) GetOrCreateWallet(ctx context.Context, sellerID uuid.UUID) (_ *domain.Wallet, err error) {
	ctx, span := traces.StartSpan(ctx, "wallet.get_or_create", traces.SellerID(sellerID.String()))
	defer func() { traces.End(span, err) }()

	seller, err := s.sellerRepo.GetByID(ctx, sellerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get seller: %w", err))
	}
	if seller == nil {
		return nil, apperror.ErrNotFound("seller")
	}

	wallet, err := s.walletRepo.GetBySellerID(ctx, sellerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet != nil {
		return wallet, nil
	}
	if !seller.HasTeam() {
		return nil, apperror.ErrNotEligible()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, created, err := s.EnsureWallet(ctx, dbTx, seller)
	if err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	if created {
		s.audit.walletCreated(ctx, sellerID, wallet)
		s.log.Info().
			Str("wallet_id", wallet.ID.String()).
			Str("seller_id", sellerID.String()).
			Msg("wallet created")
	}
	return wallet, nil
}

// GetAvailableCredit returns the seller's advance limit minus the
// outstanding amount of every advance still counting as exposure.
func (s *WalletServiceImpl) GetAvailableCredit(ctx context.Context, sellerID uuid.UUID) (*domain.CreditSummary, error) {
	wallet, err := s.GetOrCreateWallet(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	return s.creditFor(ctx, wallet)
}

func (s *WalletServiceImpl) creditFor(ctx context.Context, wallet *domain.Wallet) (*domain.CreditSummary, error) {
	outstanding, err := s.advanceRepo.SumExposure(ctx, nil, wallet.SellerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("sum exposure: %w", err))
	}
	summary := domain.NewCreditSummary(wallet.SellerID, wallet.AdvanceLimit, outstanding)
	return &summary, nil
}

// GetWalletSummary returns the wallet and its credit position.
func (s *WalletServiceImpl) GetWalletSummary(ctx context.Context, actor domain.Actor, sellerID uuid.UUID) (*ports.WalletSummary, error) {
	if !actor.CanAccessSeller(sellerID) {
		return nil, apperror.ErrPermissionDenied()
	}

	wallet, err := s.GetOrCreateWallet(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	credit, err := s.creditFor(ctx, wallet)
	if err != nil {
		return nil, err
	}
	return &ports.WalletSummary{Wallet: wallet, Credit: credit}, nil
}

// PostTransaction applies a manual wallet transaction for a privileged actor.
func (s *WalletServiceImpl) PostTransaction(ctx context.Context, cmd ports.PostTransactionCommand) (_ *ports.TransactionResult, err error) {
	ctx, span := traces.StartSpan(ctx, "wallet.post_transaction",
		traces.SellerID(cmd.SellerID.String()),
		traces.ActorID(cmd.Actor.ID.String()),
		traces.TxnType(string(cmd.Type)),
		traces.Amount(cmd.Amount.String()),
	)
	defer func() { traces.End(span, err) }()
	defer metrics.ObserveOp("wallet.post_transaction")()

	if !cmd.Actor.Privileged {
		return nil, apperror.ErrPermissionDenied()
	}
	if !isManualType(cmd.Type) {
		return nil, apperror.Validation(fmt.Sprintf("transaction type %q cannot be posted manually", cmd.Type))
	}
	if err := domain.ValidateAmount(cmd.Amount); err != nil {
		return nil, amountError(err)
	}

	var idempKey string
	if cmd.IdempotencyKey != "" {
		idempKey = domain.BuildIdempotencyKey(cmd.Actor.ID, "post_transaction", cmd.SellerID, cmd.IdempotencyKey)
		var prior ports.TransactionResult
		found, err := s.idemp.lookup(ctx, idempKey, &prior)
		if err != nil {
			return nil, err
		}
		if found {
			return &prior, nil
		}
	}

	seller, err := s.sellerRepo.GetByID(ctx, cmd.SellerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get seller: %w", err))
	}
	if seller == nil {
		return nil, apperror.ErrNotFound("seller")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, created, err := s.EnsureWallet(ctx, dbTx, seller)
	if err != nil {
		return nil, err
	}

	txn, err := s.Apply(ctx, dbTx, wallet, ports.LedgerEntry{
		Type:          cmd.Type,
		Amount:        cmd.Amount,
		ActorID:       cmd.Actor.ID,
		ReferenceType: domain.ReferenceTypeManual,
		Description:   cmd.Description,
	})
	if err != nil {
		return nil, err
	}

	result := &ports.TransactionResult{Wallet: wallet, Transaction: txn}

	var body []byte
	if idempKey != "" {
		if body, err = s.idemp.record(ctx, dbTx, idempKey, txn.ID, result, txn.CreatedAt); err != nil {
			if !errors.Is(err, domain.ErrDuplicateIdempotencyKey) {
				return nil, err
			}
			_ = dbTx.Rollback(ctx)
			var prior ports.TransactionResult
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
	if created {
		s.audit.walletCreated(ctx, cmd.Actor.ID, wallet)
	}
	s.audit.walletTransaction(ctx, txn)
	metrics.WalletTransactionsTotal.WithLabelValues(string(txn.Type)).Inc()

	s.log.Info().
		Str("txn_id", txn.ID.String()).
		Str("seller_id", cmd.SellerID.String()).
		Str("type", string(txn.Type)).
		Str("amount", txn.Amount.String()).
		Str("balance_after", txn.BalanceAfter.String()).
		Msg("wallet transaction posted successfully")

	return result, nil
}

// ListTransactions returns a page of the seller's ledger entries.
func (s *WalletServiceImpl) ListTransactions(ctx context.Context, actor domain.Actor, params ports.TransactionListParams) ([]domain.WalletTransaction, int64, error) {
	if !actor.CanAccessSeller(params.SellerID) {
		return nil, 0, apperror.ErrPermissionDenied()
	}
	params.Page, params.PageSize = normalizePage(params.Page, params.PageSize)

	txns, total, err := s.txnRepo.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list wallet transactions: %w", err))
	}
	return txns, total, nil
}

// --- ports.WalletLedger ---

// EnsureWallet locks the seller's wallet, inserting it first when absent.
func (s *WalletServiceImpl) EnsureWallet(ctx context.Context, tx pgx.Tx, seller *domain.Seller) (*domain.Wallet, bool, error) {
	wallet, err := s.LockWalletBySeller(ctx, tx, seller.ID)
	if err != nil {
		return nil, false, err
	}
	if wallet != nil {
		return wallet, false, nil
	}
	if !seller.HasTeam() {
		return nil, false, apperror.ErrNotEligible()
	}

	fresh := domain.NewWallet(seller, s.settings.Currency, s.settings.DefaultAdvanceLimit, s.now())
	created, err := s.walletRepo.CreateIfAbsent(ctx, tx, fresh)
	if err != nil {
		return nil, false, apperror.InternalError(fmt.Errorf("create wallet: %w", err))
	}
	if created {
		return fresh, true, nil
	}

	// A concurrent creator won; lock the row it inserted.
	wallet, err = s.LockWalletBySeller(ctx, tx, seller.ID)
	if err != nil {
		return nil, false, err
	}
	if wallet == nil {
		return nil, false, apperror.InternalError(fmt.Errorf("wallet for seller %s missing after insert conflict", seller.ID))
	}
	return wallet, false, nil
}

// LockWalletBySeller returns the seller's wallet locked for update, or nil.
func (s *WalletServiceImpl) LockWalletBySeller(ctx context.Context, tx pgx.Tx, sellerID uuid.UUID) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetBySellerIDForUpdate(ctx, tx, sellerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	return wallet, nil
}

// Apply is the single balance mutation path. It updates wallet in place and
// writes the wallet row and its ledger entry through tx.
func (s *WalletServiceImpl) Apply(ctx context.Context, tx pgx.Tx, wallet *domain.Wallet, entry ports.LedgerEntry) (*domain.WalletTransaction, error) {
	now := s.now()
	before, after, err := wallet.Apply(entry.Type, entry.Amount, now)
	if err != nil {
		return nil, mapWalletError(err, wallet)
	}

	if err := s.walletRepo.Update(ctx, tx, wallet); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update wallet: %w", err))
	}

	txn := &domain.WalletTransaction{
		ID:            uuid.New(),
		WalletID:      wallet.ID,
		SellerID:      wallet.SellerID,
		Type:          entry.Type,
		Amount:        entry.Amount,
		BalanceBefore: before,
		BalanceAfter:  after,
		ReferenceType: entry.ReferenceType,
		ReferenceID:   entry.ReferenceID,
		Description:   entry.Description,
		CreatedBy:     entry.ActorID,
		CreatedAt:     now,
	}
	if err := s.txnRepo.Create(ctx, tx, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create wallet transaction: %w", err))
	}
	return txn, nil
}

// isManualType reports whether t may be posted outside the advance
// lifecycle. ADVANCE and REPAYMENT entries always reference an advance.
func isManualType(t domain.TransactionType) bool {
	switch t {
	case domain.TransactionTypeCredit, domain.TransactionTypeDebit,
		domain.TransactionTypeProfitShare, domain.TransactionTypeHold,
		domain.TransactionTypeRelease:
		return true
	}
	return false
}

func mapWalletError(err error, wallet *domain.Wallet) error {
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return apperror.ErrInsufficientFunds(wallet.AvailableBalance.String())
	case errors.Is(err, domain.ErrReleaseExceedsHold):
		return apperror.ErrReleaseExceedsHold(wallet.HoldAmount.String())
	case errors.Is(err, domain.ErrNonPositiveAmount), errors.Is(err, domain.ErrAmountScale):
		return amountError(err)
	case errors.Is(err, domain.ErrUnknownTransactionType):
		return apperror.Validation("unknown transaction type")
	default:
		return apperror.InternalError(err)
	}
}

// Compile-time interface checks.
var (
	_ ports.WalletService = (*WalletServiceImpl)(nil)
	_ ports.WalletLedger  = (*WalletServiceImpl)(nil)
)
