package handler

import (
	"time"

	"pod-seller-ledger/internal/adapter/http/dto"
	"pod-seller-ledger/internal/core/domain"
	"pod-seller-ledger/internal/core/ports"
	"pod-seller-ledger/pkg/apperror"
	"pod-seller-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WalletHandler handles wallet endpoints.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// GetMine handles GET /api/v1/wallets/me.
func (h *WalletHandler) GetMine(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	h.respondSummary(c, actor, actor.ID)
}

// GetMyCredit handles GET /api/v1/wallets/me/credit.
func (h *WalletHandler) GetMyCredit(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	credit, err := h.walletSvc.GetAvailableCredit(c.Request.Context(), actor.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, credit)
}

// ListMyTransactions handles GET /api/v1/wallets/me/transactions.
func (h *WalletHandler) ListMyTransactions(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	h.listTransactions(c, actor, actor.ID)
}

// GetSellerWallet handles GET /api/v1/wallets/sellers/:sellerId.
func (h *WalletHandler) GetSellerWallet(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	sellerID, ok := uuidParam(c, "sellerId")
	if !ok {
		return
	}
	h.respondSummary(c, actor, sellerID)
}

// ListSellerTransactions handles GET /api/v1/wallets/sellers/:sellerId/transactions.
func (h *WalletHandler) ListSellerTransactions(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	sellerID, ok := uuidParam(c, "sellerId")
	if !ok {
		return
	}
	h.listTransactions(c, actor, sellerID)
}

// PostTransaction handles POST /api/v1/wallets/sellers/:sellerId/transactions.
func (h *WalletHandler) PostTransaction(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	sellerID, ok := uuidParam(c, "sellerId")
	if !ok {
		return
	}
	key, ok := idempotencyKey(c)
	if !ok {
		return
	}

	var req dto.PostTransactionRequest
	if !bindJSON(c, &req, false) {
		return
	}

	result, err := h.walletSvc.PostTransaction(c.Request.Context(), ports.PostTransactionCommand{
		Actor:          actor,
		SellerID:       sellerID,
		Type:           domain.TransactionType(req.Type),
		Amount:         req.Amount,
		Description:    req.Description,
		IdempotencyKey: key,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

func (h *WalletHandler) respondSummary(c *gin.Context, actor domain.Actor, sellerID uuid.UUID) {
	summary, err := h.walletSvc.GetWalletSummary(c.Request.Context(), actor, sellerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.WalletResponse{Wallet: summary.Wallet, Credit: summary.Credit})
}

func (h *WalletHandler) listTransactions(c *gin.Context, actor domain.Actor, sellerID uuid.UUID) {
	page, pageSize := pageParams(c)
	params := ports.TransactionListParams{
		SellerID: sellerID,
		Page:     page,
		PageSize: pageSize,
	}

	if t := c.Query("type"); t != "" {
		txnType := domain.TransactionType(t)
		if !txnType.IsValid() {
			response.Error(c, apperror.Validation("invalid type filter"))
			return
		}
		params.Type = &txnType
	}
	for _, f := range []struct {
		name string
		dst  **time.Time
	}{{"from", &params.From}, {"to", &params.To}} {
		raw := c.Query(f.name)
		if raw == "" {
			continue
		}
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			response.Error(c, apperror.Validation(f.name+" must be an RFC3339 timestamp"))
			return
		}
		*f.dst = &ts
	}

	txns, total, err := h.walletSvc.ListTransactions(c.Request.Context(), actor, params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewListResponse(txns, total, page, pageSize))
}
