package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pod-seller-ledger/internal/core/domain"
	"pod-seller-ledger/internal/core/ports"
	"pod-seller-ledger/internal/metrics"
	"pod-seller-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	idempotencyTTL = 24 * time.Hour

	defaultPageSize = 20
	maxPageSize     = 100
)

// LedgerSettings carries the ledger configuration the services need.
type LedgerSettings struct {
	Currency              string
	DefaultAdvanceLimit   decimal.Decimal
	AdvanceNumberPrefix   string
	AdvanceNumberAttempts int
}

func utcNow() time.Time { return time.Now().UTC() }

// normalizePage clamps 1-based pagination inputs.
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// idempotencyGuard implements the two-layer replay check: Redis first,
// then the idempotency_logs table. The cache is optional.
type idempotencyGuard struct {
	repo  ports.IdempotencyRepository
	cache ports.IdempotencyCache
	log   zerolog.Logger
}

// lookup decodes a previously stored response into out. It reports whether
// a stored response was found.
func (g idempotencyGuard) lookup(ctx context.Context, key string, out any) (bool, error) {
	if g.cache != nil {
		cached, err := g.cache.Get(ctx, key)
		if err != nil {
			g.log.Warn().Err(err).Str("key", key).Msg("redis idempotency check failed, falling through to DB")
		}
		if cached != nil {
			if err := json.Unmarshal(cached, out); err != nil {
				return false, apperror.InternalError(fmt.Errorf("unmarshal cached response: %w", err))
			}
			return true, nil
		}
	}

	scope := domain.IdempotencyScope(key)
	entry, err := g.repo.Get(ctx, key)
	if err != nil {
		metrics.IdempotencyLookupsTotal.WithLabelValues(scope, "postgres", "error").Inc()
		return false, apperror.InternalError(fmt.Errorf("db idempotency check: %w", err))
	}
	if entry == nil {
		metrics.IdempotencyLookupsTotal.WithLabelValues(scope, "postgres", "miss").Inc()
		return false, nil
	}
	metrics.IdempotencyLookupsTotal.WithLabelValues(scope, "postgres", "hit").Inc()
	if err := json.Unmarshal(entry.ResponseJSON, out); err != nil {
		return false, apperror.InternalError(fmt.Errorf("unmarshal stored response: %w", err))
	}
	return true, nil
}

// record writes the response inside tx and returns the encoded body for
// caching after commit.
func (g idempotencyGuard) record(ctx context.Context, tx pgx.Tx, key string, resourceID uuid.UUID, resp any, now time.Time) ([]byte, error) {
	body, err := json.Marshal(resp)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("marshal response: %w", err))
	}
	entry := &domain.IdempotencyLog{
		Key:          key,
		ResourceID:   resourceID,
		ResponseJSON: body,
		CreatedAt:    now,
	}
	if err := g.repo.Create(ctx, tx, entry); err != nil {
		if errors.Is(err, domain.ErrDuplicateIdempotencyKey) {
			return nil, domain.ErrDuplicateIdempotencyKey
		}
		return nil, apperror.InternalError(fmt.Errorf("save idempotency log: %w", err))
	}
	return body, nil
}

// replay loads the response a concurrent request committed under key. The
// caller must have rolled back its own transaction.
func (g idempotencyGuard) replay(ctx context.Context, key string, out any) error {
	metrics.IdempotencyLookupsTotal.WithLabelValues(domain.IdempotencyScope(key), "postgres", "conflict").Inc()
	found, err := g.lookup(ctx, key, out)
	if err != nil {
		return err
	}
	if !found {
		return apperror.InternalError(fmt.Errorf("idempotency key %s recorded but not readable", key))
	}
	g.log.Info().Str("key", key).Msg("concurrent duplicate request replayed")
	return nil
}

// remember caches a committed response (best-effort).
func (g idempotencyGuard) remember(ctx context.Context, key string, body []byte) {
	if g.cache == nil || body == nil {
		return
	}
	if err := g.cache.Set(ctx, key, body, idempotencyTTL); err != nil {
		g.log.Warn().Err(err).Str("key", key).Msg("failed to cache idempotency in redis")
	}
}

// amountError maps a domain amount check onto a validation error.
func amountError(err error) error {
	if errors.Is(err, domain.ErrAmountScale) {
		return apperror.Validation(fmt.Sprintf("amount must have at most %d decimal places", domain.AmountScale))
	}
	return apperror.Validation("amount must be greater than zero")
}

// auditor stamps and forwards audit records. A nil sink drops them.
type auditor struct {
	sink ports.AuditService
}

func (a auditor) emit(ctx context.Context, actorID uuid.UUID, action domain.AuditAction, entityType, entityID string, metadata map[string]any, now time.Time) {
	if a.sink == nil {
		return
	}
	a.sink.Log(ctx, &domain.AuditLog{
		ID:         uuid.New(),
		ActorID:    actorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Metadata:   metadata,
		CreatedAt:  now,
	})
}

func (a auditor) walletCreated(ctx context.Context, actorID uuid.UUID, w *domain.Wallet) {
	a.emit(ctx, actorID, domain.AuditActionWalletCreated, domain.EntityWallet, w.ID.String(), map[string]any{
		"seller_id":     w.SellerID.String(),
		"advance_limit": w.AdvanceLimit.String(),
		"currency":      w.Currency,
	}, w.CreatedAt)
}

func (a auditor) walletTransaction(ctx context.Context, txn *domain.WalletTransaction) {
	meta := map[string]any{
		"wallet_id":      txn.WalletID.String(),
		"type":           string(txn.Type),
		"amount":         txn.Amount.String(),
		"balance_before": txn.BalanceBefore.String(),
		"balance_after":  txn.BalanceAfter.String(),
		"reference_type": string(txn.ReferenceType),
	}
	if txn.ReferenceID != nil {
		meta["reference_id"] = txn.ReferenceID.String()
	}
	a.emit(ctx, txn.CreatedBy, domain.AuditActionWalletTransaction, domain.EntityWalletTransaction, txn.ID.String(), meta, txn.CreatedAt)
}

func (a auditor) advance(ctx context.Context, actorID uuid.UUID, action domain.AuditAction, adv *domain.Advance, extra map[string]any) {
	meta := map[string]any{
		"advance_number": adv.AdvanceNumber,
		"seller_id":      adv.SellerID.String(),
		"status":         string(adv.Status),
		"amount":         adv.Amount.String(),
		"outstanding":    adv.OutstandingAmount.String(),
	}
	for k, v := range extra {
		meta[k] = v
	}
	a.emit(ctx, actorID, action, domain.EntityAdvance, adv.ID.String(), meta, adv.UpdatedAt)
}
