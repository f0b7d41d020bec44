package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"pod-seller-ledger/internal/core/domain"
	"pod-seller-ledger/internal/core/ports"
	"pod-seller-ledger/internal/core/ports/mocks"
	"pod-seller-ledger/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func pendingAdvance(sellerID uuid.UUID) *domain.Advance {
	return &domain.Advance{
		ID:                uuid.New(),
		AdvanceNumber:     "ADV-20260504-0A1B2C3D",
		SellerID:          sellerID,
		Type:              domain.AdvanceTypeFulfillment,
		Amount:            dec("1500"),
		OutstandingAmount: dec("1500"),
		RepaidAmount:      dec("0"),
		Status:            domain.AdvanceStatusPending,
	}
}

func TestRequestAdvance_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	advanceSvc := mocks.NewMockAdvanceService(ctrl)
	h := NewAdvanceHandler(advanceSvc)

	var got ports.RequestAdvanceCommand
	advanceSvc.EXPECT().RequestAdvance(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd ports.RequestAdvanceCommand) (*domain.Advance, error) {
			got = cmd
			return pendingAdvance(cmd.Actor.ID), nil
		})

	w := call{
		method: http.MethodPost,
		target: "/api/v1/advances",
		body:   `{"type":"FULFILLMENT","amount":"1500.00","reason":"Q2 inventory","due_date":"2026-08-01T00:00:00Z"}`,
		actor:  &seller,
	}.serve(h.Request)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, seller.ID, got.Actor.ID)
	assert.Equal(t, domain.AdvanceTypeFulfillment, got.Type)
	assert.True(t, got.Amount.Equal(dec("1500")))
	assert.Equal(t, "Q2 inventory", got.Reason)
	require.NotNil(t, got.DueDate)
	assert.True(t, got.DueDate.Equal(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)))

	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, "PENDING", data["status"])
	assert.Equal(t, "1500", data["outstanding_amount"])
}

func TestRequestAdvance_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown type", `{"type":"PAYROLL","amount":"100"}`},
		{"zero amount", `{"type":"OTHER","amount":"0"}`},
		{"negative amount", `{"type":"OTHER","amount":"-1"}`},
		{"empty body", ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			h := NewAdvanceHandler(mocks.NewMockAdvanceService(ctrl))

			w := call{method: http.MethodPost, target: "/api/v1/advances", body: tt.body, actor: &seller}.serve(h.Request)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestRequestAdvance_CreditLimitExceeded(t *testing.T) {
	ctrl := gomock.NewController(t)
	advanceSvc := mocks.NewMockAdvanceService(ctrl)
	h := NewAdvanceHandler(advanceSvc)

	advanceSvc.EXPECT().RequestAdvance(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrCreditLimitExceeded("5000", "4000", "1000", "1500"))

	w := call{
		method: http.MethodPost,
		target: "/api/v1/advances",
		body:   `{"type":"RESOURCE","amount":1500}`,
		actor:  &seller,
	}.serve(h.Request)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "ADV_001", resp["error_code"])
	details := resp["details"].(map[string]any)
	assert.Equal(t, "5000", details["advance_limit"])
	assert.Equal(t, "4000", details["outstanding_total"])
	assert.Equal(t, "1000", details["available_credit"])
	assert.Equal(t, "1500", details["requested_amount"])
}

func TestListAdvances_Filters(t *testing.T) {
	ctrl := gomock.NewController(t)
	advanceSvc := mocks.NewMockAdvanceService(ctrl)
	h := NewAdvanceHandler(advanceSvc)

	target := uuid.New()
	var got ports.AdvanceListParams
	advanceSvc.EXPECT().ListAdvances(gomock.Any(), finance, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Actor, p ports.AdvanceListParams) ([]domain.Advance, int64, error) {
			got = p
			return []domain.Advance{*pendingAdvance(target)}, 1, nil
		})

	w := call{
		method: http.MethodGet,
		target: "/api/v1/advances?status=pending&seller_id=" + target.String() + "&page_size=500",
		actor:  &finance,
	}.serve(h.List)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, got.Status)
	assert.Equal(t, domain.AdvanceStatusPending, *got.Status)
	require.NotNil(t, got.SellerID)
	assert.Equal(t, target, *got.SellerID)
	assert.Equal(t, 1, got.Page)
	assert.Equal(t, defaultPageSize, got.PageSize)

	data := decode(t, w)["data"].(map[string]any)
	assert.EqualValues(t, 1, data["total"])
}

func TestListAdvances_BadFilters(t *testing.T) {
	for _, q := range []string{"?status=LOST", "?seller_id=abc"} {
		t.Run(q, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			h := NewAdvanceHandler(mocks.NewMockAdvanceService(ctrl))

			w := call{method: http.MethodGet, target: "/api/v1/advances" + q, actor: &finance}.serve(h.List)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestGetAdvance_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	advanceSvc := mocks.NewMockAdvanceService(ctrl)
	h := NewAdvanceHandler(advanceSvc)

	id := uuid.New()
	advanceSvc.EXPECT().GetAdvance(gomock.Any(), seller, id).Return(nil, apperror.ErrNotFound("advance"))

	w := call{method: http.MethodGet, target: "/api/v1/advances/" + id.String(), actor: &seller, params: idParam("id", id)}.serve(h.Get)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "REQ_404", decode(t, w)["error_code"])
}

func TestListRepayments_EmptyRendersArray(t *testing.T) {
	ctrl := gomock.NewController(t)
	advanceSvc := mocks.NewMockAdvanceService(ctrl)
	h := NewAdvanceHandler(advanceSvc)

	id := uuid.New()
	advanceSvc.EXPECT().ListRepayments(gomock.Any(), seller, id).Return(nil, nil)

	w := call{method: http.MethodGet, target: "/api/v1/advances/" + id.String() + "/repayments", actor: &seller, params: idParam("id", id)}.serve(h.ListRepayments)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{}, decode(t, w)["data"])
}

func TestApprove_OptionalBody(t *testing.T) {
	tests := []struct {
		name string
		body string
		note string
	}{
		{"no body", "", ""},
		{"with note", `{"note":"verified orders"}`, "verified orders"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			advanceSvc := mocks.NewMockAdvanceService(ctrl)
			h := NewAdvanceHandler(advanceSvc)

			adv := pendingAdvance(seller.ID)
			adv.Status = domain.AdvanceStatusApproved
			advanceSvc.EXPECT().Approve(gomock.Any(), finance, adv.ID, tt.note).Return(adv, nil)

			w := call{
				method: http.MethodPost,
				target: "/api/v1/advances/" + adv.ID.String() + "/approve",
				body:   tt.body,
				actor:  &finance,
				params: idParam("id", adv.ID),
			}.serve(h.Approve)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "APPROVED", decode(t, w)["data"].(map[string]any)["status"])
		})
	}
}

func TestApprove_InvalidState(t *testing.T) {
	ctrl := gomock.NewController(t)
	advanceSvc := mocks.NewMockAdvanceService(ctrl)
	h := NewAdvanceHandler(advanceSvc)

	id := uuid.New()
	advanceSvc.EXPECT().Approve(gomock.Any(), finance, id, "").Return(nil, apperror.ErrInvalidState("approve", "REJECTED"))

	w := call{method: http.MethodPost, target: "/", actor: &finance, params: idParam("id", id)}.serve(h.Approve)

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "ADV_002", resp["error_code"])
	assert.Equal(t, "REJECTED", resp["details"].(map[string]any)["status"])
}

func TestReject_RequiresReason(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewAdvanceHandler(mocks.NewMockAdvanceService(ctrl))
	id := uuid.New()

	w := call{method: http.MethodPost, target: "/", body: `{}`, actor: &finance, params: idParam("id", id)}.serve(h.Reject)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReject_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	advanceSvc := mocks.NewMockAdvanceService(ctrl)
	h := NewAdvanceHandler(advanceSvc)

	adv := pendingAdvance(seller.ID)
	adv.Status = domain.AdvanceStatusRejected
	advanceSvc.EXPECT().Reject(gomock.Any(), finance, adv.ID, "too many chargebacks").Return(adv, nil)

	w := call{
		method: http.MethodPost,
		target: "/",
		body:   `{"reason":" too many chargebacks "}`,
		actor:  &finance,
		params: idParam("id", adv.ID),
	}.serve(h.Reject)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDisburse_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	advanceSvc := mocks.NewMockAdvanceService(ctrl)
	h := NewAdvanceHandler(advanceSvc)

	adv := pendingAdvance(seller.ID)
	adv.Status = domain.AdvanceStatusDisbursed
	advanceSvc.EXPECT().Disburse(gomock.Any(), finance, adv.ID).Return(&ports.DisbursementResult{
		Advance:     adv,
		Wallet:      &domain.Wallet{SellerID: seller.ID, TotalAdvances: dec("1500")},
		Transaction: &domain.WalletTransaction{Type: domain.TransactionTypeAdvance, Amount: dec("1500")},
	}, nil)

	w := call{method: http.MethodPost, target: "/", actor: &finance, params: idParam("id", adv.ID)}.serve(h.Disburse)

	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, "DISBURSED", data["advance"].(map[string]any)["status"])
	assert.Equal(t, "ADVANCE", data["transaction"].(map[string]any)["type"])
}

func TestRepay_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	advanceSvc := mocks.NewMockAdvanceService(ctrl)
	h := NewAdvanceHandler(advanceSvc)

	id := uuid.New()
	var got ports.RepayCommand
	advanceSvc.EXPECT().Repay(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd ports.RepayCommand) (*ports.RepaymentResult, error) {
			got = cmd
			adv := pendingAdvance(seller.ID)
			adv.Status = domain.AdvanceStatusPartiallyRepaid
			return &ports.RepaymentResult{Advance: adv, Repayment: &domain.AdvanceRepayment{Amount: cmd.Amount}}, nil
		})

	w := call{
		method:  http.MethodPost,
		target:  "/api/v1/advances/" + id.String() + "/repay",
		body:    `{"amount":"350","method":"ORDER_PROFIT","order_id":"ORD-1001","note":"weekly sweep"}`,
		actor:   &seller,
		params:  idParam("id", id),
		headers: map[string]string{"Idempotency-Key": "repay-1"},
	}.serve(h.Repay)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, id, got.AdvanceID)
	assert.Equal(t, domain.RepaymentMethodOrderProfit, got.Method)
	require.NotNil(t, got.OrderID)
	assert.Equal(t, "ORD-1001", *got.OrderID)
	assert.Equal(t, "repay-1", got.IdempotencyKey)

	data := decode(t, w)["data"].(map[string]any)
	_, hasWallet := data["wallet"]
	assert.False(t, hasWallet)
}

func TestRepay_ExceedsOutstanding(t *testing.T) {
	ctrl := gomock.NewController(t)
	advanceSvc := mocks.NewMockAdvanceService(ctrl)
	h := NewAdvanceHandler(advanceSvc)

	id := uuid.New()
	advanceSvc.EXPECT().Repay(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrExceedsOutstanding("150"))

	w := call{
		method: http.MethodPost,
		target: "/",
		body:   `{"amount":"200","method":"MANUAL"}`,
		actor:  &seller,
		params: idParam("id", id),
	}.serve(h.Repay)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "ADV_003", resp["error_code"])
	assert.Equal(t, "Repayment exceeds outstanding balance of 150", resp["message"])
}

func TestRepay_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown method", `{"amount":"10","method":"CASH"}`},
		{"zero amount", `{"amount":"0","method":"MANUAL"}`},
		{"five decimal places", `{"amount":"499.99995","method":"MANUAL"}`},
		{"unsafe order id", `{"amount":"10","method":"MANUAL","order_id":"<script>"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			h := NewAdvanceHandler(mocks.NewMockAdvanceService(ctrl))
			id := uuid.New()

			w := call{method: http.MethodPost, target: "/", body: tt.body, actor: &seller, params: idParam("id", id)}.serve(h.Repay)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestMarkOutstanding_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	advanceSvc := mocks.NewMockAdvanceService(ctrl)
	h := NewAdvanceHandler(advanceSvc)

	adv := pendingAdvance(seller.ID)
	adv.Status = domain.AdvanceStatusOutstanding
	advanceSvc.EXPECT().MarkOutstanding(gomock.Any(), finance, adv.ID).Return(adv, nil)

	w := call{method: http.MethodPost, target: "/", actor: &finance, params: idParam("id", adv.ID)}.serve(h.MarkOutstanding)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdvanceRoutes_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewAdvanceHandler(mocks.NewMockAdvanceService(ctrl))

	for name, fn := range map[string]gin.HandlerFunc{
		"get":              h.Get,
		"disburse":         h.Disburse,
		"mark-outstanding": h.MarkOutstanding,
	} {
		t.Run(name, func(t *testing.T) {
			w := call{method: http.MethodPost, target: "/", actor: &finance, params: gin.Params{{Key: "id", Value: "42"}}}.serve(fn)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
