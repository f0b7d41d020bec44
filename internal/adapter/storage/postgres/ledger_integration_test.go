//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"pod-seller-ledger/internal/adapter/storage/postgres"
	"pod-seller-ledger/internal/core/domain"
	"pod-seller-ledger/internal/core/ports"
	"pod-seller-ledger/internal/service"
	"pod-seller-ledger/migrations"
	"pod-seller-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// pgLedger is the full service stack over a migrated PostgreSQL container.
type pgLedger struct {
	pool     *pgxpool.Pool
	wallets  *service.WalletServiceImpl
	advances *service.AdvanceServiceImpl
	finance  domain.Actor
}

func newPGLedger(t *testing.T) *pgLedger {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("ledger_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "failed to start PostgreSQL container")
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	require.NoError(t, migrations.Up(ctx, db))
	require.NoError(t, db.Close())

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	log := zerolog.Nop()
	settings := service.LedgerSettings{
		Currency:              "USD",
		DefaultAdvanceLimit:   decimal.NewFromInt(5000),
		AdvanceNumberPrefix:   "ADV",
		AdvanceNumberAttempts: 5,
	}
	sellers := postgres.NewSellerRepo(pool)
	advanceRepo := postgres.NewAdvanceRepo(pool)
	idemp := postgres.NewIdempotencyRepo(pool)
	transactor := postgres.NewTransactor(pool)
	audit := service.NewAuditService(postgres.NewAuditRepo(pool), log)

	wallets := service.NewWalletService(
		sellers, postgres.NewWalletRepo(pool), advanceRepo, postgres.NewWalletTransactionRepo(pool),
		idemp, nil, transactor, audit, settings, log,
	)
	advances := service.NewAdvanceService(
		sellers, advanceRepo, postgres.NewRepaymentRepo(pool),
		idemp, nil, wallets, transactor, audit, settings, log,
	)

	return &pgLedger{
		pool:     pool,
		wallets:  wallets,
		advances: advances,
		finance:  domain.Actor{ID: uuid.New(), Roles: []string{"FINANCE"}, Privileged: true},
	}
}

func (l *pgLedger) seedSeller(t *testing.T) domain.Actor {
	t.Helper()
	id, team := uuid.New(), uuid.New()
	_, err := l.pool.Exec(context.Background(),
		`INSERT INTO sellers (id, team_id, name) VALUES ($1, $2, $3)`, id, team, "Acme Prints")
	require.NoError(t, err)
	return domain.Actor{ID: id, Roles: []string{"SELLER"}}
}

func (l *pgLedger) disbursed(t *testing.T, seller domain.Actor, amount string) *domain.Advance {
	t.Helper()
	ctx := context.Background()
	adv, err := l.advances.RequestAdvance(ctx, ports.RequestAdvanceCommand{
		Actor: seller, Type: domain.AdvanceTypeFulfillment, Amount: decimal.RequireFromString(amount),
	})
	require.NoError(t, err)
	_, err = l.advances.Approve(ctx, l.finance, adv.ID, "")
	require.NoError(t, err)
	res, err := l.advances.Disburse(ctx, l.finance, adv.ID)
	require.NoError(t, err)
	return res.Advance
}

func TestPostgres_ConcurrentRepaymentsSettleExactly(t *testing.T) {
	l := newPGLedger(t)
	seller := l.seedSeller(t)
	adv := l.disbursed(t, seller, "1000")

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for _, amt := range []string{"350", "650"} {
		wg.Add(1)
		go func(amt string) {
			defer wg.Done()
			_, err := l.advances.Repay(context.Background(), ports.RepayCommand{
				Actor: seller, AdvanceID: adv.ID, Amount: decimal.RequireFromString(amt),
				Method: domain.RepaymentMethodWalletDeduction,
			})
			errs <- err
		}(amt)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	got, err := l.advances.GetAdvance(context.Background(), seller, adv.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AdvanceStatusRepaid, got.Status)
	assert.True(t, got.OutstandingAmount.IsZero())
	assert.True(t, got.RepaidAmount.Equal(decimal.NewFromInt(1000)))

	wallet, err := l.wallets.GetOrCreateWallet(context.Background(), seller.ID)
	require.NoError(t, err)
	assert.True(t, wallet.Balance.Equal(decimal.NewFromInt(-1000)))
	assert.True(t, wallet.TotalRepayments.Equal(decimal.NewFromInt(1000)))
}

func TestPostgres_ConcurrentOverRepaymentIsBounded(t *testing.T) {
	l := newPGLedger(t)
	seller := l.seedSeller(t)
	adv := l.disbursed(t, seller, "1000")

	const workers = 10
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ok, over int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := l.advances.Repay(context.Background(), ports.RepayCommand{
				Actor: seller, AdvanceID: adv.ID, Amount: decimal.NewFromInt(200),
				Method: domain.RepaymentMethodManual,
			})
			mu.Lock()
			defer mu.Unlock()
			var appErr *apperror.AppError
			switch {
			case err == nil:
				ok++
			case errors.As(err, &appErr) && appErr.Code != "SYS_001":
				over++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, ok)
	assert.Equal(t, workers-5, over)

	repayments, err := l.advances.ListRepayments(context.Background(), seller, adv.ID)
	require.NoError(t, err)
	assert.Len(t, repayments, 5)
}

func TestPostgres_ConcurrentRequestsRespectCreditLimit(t *testing.T) {
	l := newPGLedger(t)
	seller := l.seedSeller(t)

	const workers = 8
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := l.advances.RequestAdvance(context.Background(), ports.RequestAdvanceCommand{
				Actor: seller, Type: domain.AdvanceTypeResource, Amount: decimal.NewFromInt(1000),
			})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				accepted++
				return
			}
			var appErr *apperror.AppError
			if !errors.As(err, &appErr) || appErr.Code != "ADV_001" {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, accepted)

	credit, err := l.wallets.GetAvailableCredit(context.Background(), seller.ID)
	require.NoError(t, err)
	assert.True(t, credit.Available.IsZero())
}

func TestPostgres_ManualPostingRollsBackOnInsufficientFunds(t *testing.T) {
	l := newPGLedger(t)
	seller := l.seedSeller(t)
	ctx := context.Background()

	_, err := l.wallets.PostTransaction(ctx, ports.PostTransactionCommand{
		Actor: l.finance, SellerID: seller.ID, Type: domain.TransactionTypeCredit,
		Amount: decimal.RequireFromString("0.1"), IdempotencyKey: "credit-1",
	})
	require.NoError(t, err)
	_, err = l.wallets.PostTransaction(ctx, ports.PostTransactionCommand{
		Actor: l.finance, SellerID: seller.ID, Type: domain.TransactionTypeCredit,
		Amount: decimal.RequireFromString("0.2"),
	})
	require.NoError(t, err)

	// Replaying the first key posts nothing.
	_, err = l.wallets.PostTransaction(ctx, ports.PostTransactionCommand{
		Actor: l.finance, SellerID: seller.ID, Type: domain.TransactionTypeCredit,
		Amount: decimal.RequireFromString("0.1"), IdempotencyKey: "credit-1",
	})
	require.NoError(t, err)

	_, err = l.wallets.PostTransaction(ctx, ports.PostTransactionCommand{
		Actor: l.finance, SellerID: seller.ID, Type: domain.TransactionTypeDebit,
		Amount: decimal.RequireFromString("0.31"),
	})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "WAL_002", appErr.Code)

	wallet, err := l.wallets.GetOrCreateWallet(ctx, seller.ID)
	require.NoError(t, err)
	assert.Equal(t, "0.3", wallet.Balance.String())

	txns, total, err := l.wallets.ListTransactions(ctx, seller, ports.TransactionListParams{SellerID: seller.ID, Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, txns, 2)
}
