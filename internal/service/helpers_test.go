package service

import (
	"context"
	"testing"
	"time"

	"pod-seller-ledger/internal/core/domain"
	"pod-seller-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 5, 4, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

var testSettings = LedgerSettings{
	Currency:              "USD",
	DefaultAdvanceLimit:   decimal.NewFromInt(5000),
	AdvanceNumberPrefix:   "ADV",
	AdvanceNumberAttempts: 3,
}

// mockTx implements pgx.Tx for testing. Begin opens a child savepoint.
type mockTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
	savepoints []*mockTx
}

func (m *mockTx) Begin(_ context.Context) (pgx.Tx, error) {
	sp := &mockTx{}
	m.savepoints = append(m.savepoints, sp)
	return sp, nil
}

func (m *mockTx) Commit(_ context.Context) error {
	m.committed = true
	return nil
}

func (m *mockTx) Rollback(_ context.Context) error {
	if !m.committed {
		m.rolledBack = true
	}
	return nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func teamSeller() *domain.Seller {
	team := uuid.New()
	return &domain.Seller{ID: uuid.New(), TeamID: &team, Name: "inkwell tees"}
}

func walletWith(seller *domain.Seller, balance, hold string) *domain.Wallet {
	w := domain.NewWallet(seller, "USD", decimal.NewFromInt(5000), testNow.Add(-time.Hour))
	w.Balance = dec(balance)
	w.HoldAmount = dec(hold)
	w.AvailableBalance = w.Balance.Sub(w.HoldAmount)
	return w
}

func sellerActor(id uuid.UUID) domain.Actor {
	return domain.Actor{ID: id, Roles: []string{"SELLER"}}
}

func financeActor() domain.Actor {
	return domain.Actor{ID: uuid.New(), Roles: []string{"FINANCE"}, Privileged: true}
}

func assertAppError(t *testing.T, err error, code string) *apperror.AppError {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
	return appErr
}
