package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"pod-seller-ledger/internal/adapter/storage/memory"
	"pod-seller-ledger/internal/core/domain"
	"pod-seller-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingAudit captures audit entries synchronously.
type recordingAudit struct {
	mu      sync.Mutex
	entries []domain.AuditLog
}

func (r *recordingAudit) Log(_ context.Context, entry *domain.AuditLog) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
}

func (r *recordingAudit) actions() []domain.AuditAction {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.AuditAction, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Action)
	}
	return out
}

// flakyWalletRepo fails Update while failUpdate is set.
type flakyWalletRepo struct {
	ports.WalletRepository
	failUpdate bool
}

func (f *flakyWalletRepo) Update(ctx context.Context, tx pgx.Tx, w *domain.Wallet) error {
	if f.failUpdate {
		return errors.New("injected wallet update failure")
	}
	return f.WalletRepository.Update(ctx, tx, w)
}

type ledgerFixture struct {
	store    *memory.Store
	wallets  *WalletServiceImpl
	advances *AdvanceServiceImpl
	audit    *recordingAudit
	walletDB *flakyWalletRepo
	seller   *domain.Seller
	finance  domain.Actor
}

func newLedgerFixture(t *testing.T, sink ports.AuditService) *ledgerFixture {
	t.Helper()
	store := memory.New()
	seller := teamSeller()
	store.PutSeller(*seller)

	rec := &recordingAudit{}
	if sink == nil {
		sink = rec
	}
	walletDB := &flakyWalletRepo{WalletRepository: store.Wallets()}

	wallets := NewWalletService(
		store.Sellers(), walletDB, store.Advances(), store.WalletTransactions(),
		store.Idempotency(), nil, store, sink, testSettings, newTestLogger(),
	)
	wallets.now = fixedClock

	advances := NewAdvanceService(
		store.Sellers(), store.Advances(), store.Repayments(),
		store.Idempotency(), nil, wallets, store, sink, testSettings, newTestLogger(),
	)
	advances.now = fixedClock

	return &ledgerFixture{
		store:    store,
		wallets:  wallets,
		advances: advances,
		audit:    rec,
		walletDB: walletDB,
		seller:   seller,
		finance:  financeActor(),
	}
}

func (f *ledgerFixture) sellerActor() domain.Actor { return sellerActor(f.seller.ID) }

func (f *ledgerFixture) request(t *testing.T, amount string) *domain.Advance {
	t.Helper()
	adv, err := f.advances.RequestAdvance(context.Background(), ports.RequestAdvanceCommand{
		Actor:  f.sellerActor(),
		Type:   domain.AdvanceTypeFulfillment,
		Amount: dec(amount),
	})
	require.NoError(t, err)
	return adv
}

// disbursed walks a fresh advance through approval and disbursement.
func (f *ledgerFixture) disbursed(t *testing.T, amount string) *domain.Advance {
	t.Helper()
	ctx := context.Background()
	adv := f.request(t, amount)
	_, err := f.advances.Approve(ctx, f.finance, adv.ID, "")
	require.NoError(t, err)
	res, err := f.advances.Disburse(ctx, f.finance, adv.ID)
	require.NoError(t, err)
	return res.Advance
}

func (f *ledgerFixture) repay(amount string, advanceID uuid.UUID, key string) (*ports.RepaymentResult, error) {
	return f.advances.Repay(context.Background(), ports.RepayCommand{
		Actor:          f.sellerActor(),
		AdvanceID:      advanceID,
		Amount:         dec(amount),
		Method:         domain.RepaymentMethodOrderProfit,
		IdempotencyKey: key,
	})
}

func (f *ledgerFixture) wallet(t *testing.T) *domain.Wallet {
	t.Helper()
	w, err := f.store.Wallets().GetBySellerID(context.Background(), f.seller.ID)
	require.NoError(t, err)
	require.NotNil(t, w)
	return w
}

func (f *ledgerFixture) advance(t *testing.T, id uuid.UUID) *domain.Advance {
	t.Helper()
	a, err := f.store.Advances().GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, a)
	return a
}

func TestLedgerFlow_CreditLimitAcrossRequests(t *testing.T) {
	f := newLedgerFixture(t, nil)

	first := f.request(t, "1500")
	assert.Equal(t, domain.AdvanceStatusPending, first.Status)
	assert.True(t, first.OutstandingAmount.Equal(dec("1500")))

	_, err := f.advances.RequestAdvance(context.Background(), ports.RequestAdvanceCommand{
		Actor:  f.sellerActor(),
		Type:   domain.AdvanceTypeFulfillment,
		Amount: dec("4000"),
	})
	appErr := assertAppError(t, err, "ADV_001")
	assert.Equal(t, "1500", appErr.Details["outstanding_total"])
	assert.Equal(t, "5000", appErr.Details["advance_limit"])

	assert.Equal(t, []domain.AuditAction{
		domain.AuditActionWalletCreated,
		domain.AuditActionAdvanceRequested,
	}, f.audit.actions())
}

func TestLedgerFlow_ApproveAndDisburse(t *testing.T) {
	f := newLedgerFixture(t, nil)
	ctx := context.Background()
	adv := f.request(t, "2000")

	approved, err := f.advances.Approve(ctx, f.finance, adv.ID, "ok")
	require.NoError(t, err)
	assert.Equal(t, domain.AdvanceStatusApproved, approved.Status)

	res, err := f.advances.Disburse(ctx, f.finance, adv.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AdvanceStatusDisbursed, res.Advance.Status)

	w := f.wallet(t)
	assert.True(t, w.TotalAdvances.Equal(dec("2000")))
	assert.True(t, w.Balance.IsZero(), "disbursement does not move balance")
	assert.True(t, w.IsConsistent())

	txns, total, err := f.wallets.ListTransactions(ctx, f.sellerActor(), ports.TransactionListParams{SellerID: f.seller.ID})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	assert.Equal(t, domain.TransactionTypeAdvance, txns[0].Type)
	assert.True(t, txns[0].Amount.Equal(dec("2000")))
	require.NotNil(t, txns[0].ReferenceID)
	assert.Equal(t, adv.ID, *txns[0].ReferenceID)

	_, err = f.advances.Disburse(ctx, f.finance, adv.ID)
	assertAppError(t, err, "ADV_002")
}

func TestLedgerFlow_RepayToZero(t *testing.T) {
	f := newLedgerFixture(t, nil)
	adv := f.disbursed(t, "2000")

	res, err := f.repay("500", adv.ID, "")
	require.NoError(t, err)
	assert.Equal(t, domain.AdvanceStatusPartiallyRepaid, res.Advance.Status)
	assert.True(t, res.Advance.OutstandingAmount.Equal(dec("1500")))
	assert.True(t, res.Advance.RepaidAmount.Equal(dec("500")))

	_, err = f.repay("2500", adv.ID, "")
	appErr := assertAppError(t, err, "ADV_003")
	assert.Contains(t, appErr.Message, "1500")

	res, err = f.repay("1500", adv.ID, "")
	require.NoError(t, err)
	assert.Equal(t, domain.AdvanceStatusRepaid, res.Advance.Status)
	assert.True(t, res.Advance.OutstandingAmount.IsZero())
	assert.True(t, res.Advance.RepaidAmount.Equal(dec("2000")))

	_, err = f.repay("1", adv.ID, "")
	assertAppError(t, err, "ADV_002")

	w := f.wallet(t)
	assert.True(t, w.TotalRepayments.Equal(dec("2000")))
	assert.True(t, w.Balance.Equal(dec("-2000")))
	assert.True(t, w.IsConsistent())

	reps, err := f.advances.ListRepayments(context.Background(), f.sellerActor(), adv.ID)
	require.NoError(t, err)
	assert.Len(t, reps, 2)

	credit, err := f.wallets.GetAvailableCredit(context.Background(), f.seller.ID)
	require.NoError(t, err)
	assert.True(t, credit.Available.Equal(dec("5000")))
}

func TestLedgerFlow_RepaymentsAreExactDecimals(t *testing.T) {
	f := newLedgerFixture(t, nil)
	adv := f.disbursed(t, "0.3")

	_, err := f.repay("0.1", adv.ID, "")
	require.NoError(t, err)
	res, err := f.repay("0.2", adv.ID, "")
	require.NoError(t, err)

	assert.Equal(t, domain.AdvanceStatusRepaid, res.Advance.Status)
	assert.True(t, res.Advance.OutstandingAmount.IsZero())
	assert.True(t, res.Advance.IsBalanced())
}

func TestLedgerFlow_RejectWithoutReasonLeavesPending(t *testing.T) {
	f := newLedgerFixture(t, nil)
	adv := f.request(t, "700")

	_, err := f.advances.Reject(context.Background(), f.finance, adv.ID, "")
	assertAppError(t, err, "REQ_001")
	assert.Equal(t, domain.AdvanceStatusPending, f.advance(t, adv.ID).Status)
}

func TestLedgerFlow_RejectRestoresCredit(t *testing.T) {
	f := newLedgerFixture(t, nil)
	ctx := context.Background()

	before, err := f.wallets.GetAvailableCredit(ctx, f.seller.ID)
	require.NoError(t, err)

	adv := f.request(t, "1200")
	during, err := f.wallets.GetAvailableCredit(ctx, f.seller.ID)
	require.NoError(t, err)
	assert.True(t, during.Available.Equal(before.Available.Sub(dec("1200"))))

	_, err = f.advances.Reject(ctx, f.finance, adv.ID, "insufficient sales history")
	require.NoError(t, err)

	after, err := f.wallets.GetAvailableCredit(ctx, f.seller.ID)
	require.NoError(t, err)
	assert.True(t, after.Available.Equal(before.Available))
}

func TestLedgerFlow_HoldAndRelease(t *testing.T) {
	f := newLedgerFixture(t, nil)
	ctx := context.Background()

	post := func(typ domain.TransactionType, amount string) (*ports.TransactionResult, error) {
		return f.wallets.PostTransaction(ctx, ports.PostTransactionCommand{
			Actor: f.finance, SellerID: f.seller.ID, Type: typ, Amount: dec(amount),
		})
	}

	_, err := post(domain.TransactionTypeCredit, "1000")
	require.NoError(t, err)

	res, err := post(domain.TransactionTypeHold, "200")
	require.NoError(t, err)
	assert.True(t, res.Wallet.Balance.Equal(dec("1000")))
	assert.True(t, res.Wallet.AvailableBalance.Equal(dec("800")))
	assert.True(t, res.Wallet.HoldAmount.Equal(dec("200")))

	_, err = post(domain.TransactionTypeDebit, "900")
	assertAppError(t, err, "WAL_002")

	res, err = post(domain.TransactionTypeRelease, "200")
	require.NoError(t, err)
	assert.True(t, res.Wallet.AvailableBalance.Equal(dec("1000")))
	assert.True(t, res.Wallet.HoldAmount.IsZero())

	w := f.wallet(t)
	assert.True(t, w.IsConsistent())
	assert.True(t, w.AvailableBalance.Equal(dec("1000")))
}

func TestLedgerFlow_RepayIsAtomicUnderWalletFailure(t *testing.T) {
	f := newLedgerFixture(t, nil)
	ctx := context.Background()
	adv := f.disbursed(t, "1000")
	walletBefore := f.wallet(t)
	_, txnsBefore, err := f.wallets.ListTransactions(ctx, f.finance, ports.TransactionListParams{SellerID: f.seller.ID})
	require.NoError(t, err)

	f.walletDB.failUpdate = true
	_, err = f.repay("400", adv.ID, "")
	assertAppError(t, err, "SYS_001")
	f.walletDB.failUpdate = false

	got := f.advance(t, adv.ID)
	assert.Equal(t, domain.AdvanceStatusDisbursed, got.Status)
	assert.True(t, got.OutstandingAmount.Equal(dec("1000")))
	assert.True(t, got.RepaidAmount.IsZero())

	reps, err := f.advances.ListRepayments(ctx, f.finance, adv.ID)
	require.NoError(t, err)
	assert.Empty(t, reps)

	walletAfter := f.wallet(t)
	assert.True(t, walletAfter.Balance.Equal(walletBefore.Balance))
	assert.True(t, walletAfter.TotalRepayments.Equal(walletBefore.TotalRepayments))

	_, txnsAfter, err := f.wallets.ListTransactions(ctx, f.finance, ports.TransactionListParams{SellerID: f.seller.ID})
	require.NoError(t, err)
	assert.Equal(t, txnsBefore, txnsAfter)

	_, err = f.repay("400", adv.ID, "")
	require.NoError(t, err, "store is usable after the aborted transaction")
}

func TestLedgerFlow_ConcurrentRepaymentsSettleExactly(t *testing.T) {
	f := newLedgerFixture(t, nil)
	adv := f.disbursed(t, "1000")

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, amount := range []string{"350", "650"} {
		wg.Add(1)
		go func(i int, amount string) {
			defer wg.Done()
			_, errs[i] = f.repay(amount, adv.ID, "")
		}(i, amount)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	got := f.advance(t, adv.ID)
	assert.Equal(t, domain.AdvanceStatusRepaid, got.Status)
	assert.True(t, got.OutstandingAmount.IsZero())
	assert.True(t, got.RepaidAmount.Equal(dec("1000")))
	assert.True(t, f.wallet(t).TotalRepayments.Equal(dec("1000")))
}

func TestLedgerFlow_IdempotentRepayReplay(t *testing.T) {
	f := newLedgerFixture(t, nil)
	adv := f.disbursed(t, "1000")

	first, err := f.repay("300", adv.ID, "order-991")
	require.NoError(t, err)
	second, err := f.repay("300", adv.ID, "order-991")
	require.NoError(t, err)

	assert.Equal(t, first.Repayment.ID, second.Repayment.ID)
	assert.True(t, second.Advance.OutstandingAmount.Equal(dec("700")))

	reps, err := f.advances.ListRepayments(context.Background(), f.sellerActor(), adv.ID)
	require.NoError(t, err)
	assert.Len(t, reps, 1)
	assert.True(t, f.advance(t, adv.ID).OutstandingAmount.Equal(dec("700")))
}

func TestLedgerFlow_ReusedKeyOnAnotherAdvanceIsApplied(t *testing.T) {
	f := newLedgerFixture(t, nil)
	first := f.disbursed(t, "1000")
	second := f.disbursed(t, "1000")

	_, err := f.repay("300", first.ID, "k1")
	require.NoError(t, err)
	res, err := f.repay("500", second.ID, "k1")
	require.NoError(t, err)

	assert.Equal(t, second.ID, res.Advance.ID)
	assert.True(t, res.Repayment.Amount.Equal(dec("500")))
	assert.True(t, f.advance(t, first.ID).OutstandingAmount.Equal(dec("700")))
	assert.True(t, f.advance(t, second.ID).OutstandingAmount.Equal(dec("500")))
	assert.True(t, f.wallet(t).TotalRepayments.Equal(dec("800")))
}

func TestLedgerFlow_ConcurrentSameKeyRepaysOnce(t *testing.T) {
	f := newLedgerFixture(t, nil)
	adv := f.disbursed(t, "1000")

	const workers = 6
	var wg sync.WaitGroup
	results := make(chan *ports.RepaymentResult, workers)
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := f.repay("250", adv.ID, "batch-7")
			if err != nil {
				errs <- err
				return
			}
			results <- res
		}()
	}
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		t.Errorf("duplicate request failed: %v", err)
	}
	var repaymentID uuid.UUID
	for res := range results {
		if repaymentID == uuid.Nil {
			repaymentID = res.Repayment.ID
		}
		assert.Equal(t, repaymentID, res.Repayment.ID)
	}

	reps, err := f.advances.ListRepayments(context.Background(), f.sellerActor(), adv.ID)
	require.NoError(t, err)
	assert.Len(t, reps, 1)
	assert.True(t, f.advance(t, adv.ID).OutstandingAmount.Equal(dec("750")))
}

func TestLedgerFlow_AmountBeyondStoredScaleLeavesAdvanceUntouched(t *testing.T) {
	f := newLedgerFixture(t, nil)
	adv := f.disbursed(t, "500")

	_, err := f.repay("499.99995", adv.ID, "")
	assertAppError(t, err, "REQ_001")

	got := f.advance(t, adv.ID)
	assert.Equal(t, domain.AdvanceStatusDisbursed, got.Status)
	assert.True(t, got.OutstandingAmount.Equal(dec("500")))
	assert.True(t, got.IsBalanced())
}

func TestLedgerFlow_MarkOutstanding(t *testing.T) {
	f := newLedgerFixture(t, nil)
	ctx := context.Background()
	due := testNow.Add(-time.Hour)

	adv, err := f.advances.RequestAdvance(ctx, ports.RequestAdvanceCommand{
		Actor:   f.sellerActor(),
		Type:    domain.AdvanceTypeOther,
		Amount:  dec("100"),
		DueDate: &due,
	})
	require.NoError(t, err)
	_, err = f.advances.Approve(ctx, f.finance, adv.ID, "")
	require.NoError(t, err)
	_, err = f.advances.Disburse(ctx, f.finance, adv.ID)
	require.NoError(t, err)

	got, err := f.advances.MarkOutstanding(ctx, f.finance, adv.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AdvanceStatusOutstanding, got.Status)

	res, err := f.repay("100", adv.ID, "")
	require.NoError(t, err)
	assert.Equal(t, domain.AdvanceStatusRepaid, res.Advance.Status)
}

type failingAuditRepo struct{}

func (failingAuditRepo) Create(context.Context, *domain.AuditLog) error {
	return errors.New("audit store offline")
}

func TestLedgerFlow_AuditFailureDoesNotFailOperation(t *testing.T) {
	f := newLedgerFixture(t, NewAuditService(failingAuditRepo{}, newTestLogger()))

	adv := f.request(t, "250")
	assert.True(t, f.advance(t, adv.ID).Amount.Equal(dec("250")))
}
