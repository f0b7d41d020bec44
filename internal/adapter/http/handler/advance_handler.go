package handler

import (
	"strings"

	"pod-seller-ledger/internal/adapter/http/dto"
	"pod-seller-ledger/internal/core/domain"
	"pod-seller-ledger/internal/core/ports"
	"pod-seller-ledger/pkg/apperror"
	"pod-seller-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdvanceHandler handles cash-advance endpoints.
type AdvanceHandler struct {
	advanceSvc ports.AdvanceService
}

// NewAdvanceHandler creates a new AdvanceHandler.
func NewAdvanceHandler(advanceSvc ports.AdvanceService) *AdvanceHandler {
	return &AdvanceHandler{advanceSvc: advanceSvc}
}

// Request handles POST /api/v1/advances.
func (h *AdvanceHandler) Request(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req dto.RequestAdvanceRequest
	if !bindJSON(c, &req, false) {
		return
	}

	advance, err := h.advanceSvc.RequestAdvance(c.Request.Context(), ports.RequestAdvanceCommand{
		Actor:   actor,
		Type:    domain.AdvanceType(req.Type),
		Amount:  req.Amount,
		Reason:  req.Reason,
		DueDate: req.DueDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, advance)
}

// List handles GET /api/v1/advances.
// Query: status, seller_id, page, page_size.
func (h *AdvanceHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	page, pageSize := pageParams(c)
	params := ports.AdvanceListParams{Page: page, PageSize: pageSize}

	if s := strings.ToUpper(strings.TrimSpace(c.Query("status"))); s != "" {
		status := domain.AdvanceStatus(s)
		if !status.IsValid() {
			response.Error(c, apperror.Validation("invalid status filter"))
			return
		}
		params.Status = &status
	}
	if s := c.Query("seller_id"); s != "" {
		sellerID, err := uuid.Parse(s)
		if err != nil {
			response.Error(c, apperror.Validation("invalid seller_id"))
			return
		}
		params.SellerID = &sellerID
	}

	advances, total, err := h.advanceSvc.ListAdvances(c.Request.Context(), actor, params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewListResponse(advances, total, page, pageSize))
}

// Get handles GET /api/v1/advances/:id.
func (h *AdvanceHandler) Get(c *gin.Context) {
	actor, id, ok := actorAndAdvanceID(c)
	if !ok {
		return
	}

	advance, err := h.advanceSvc.GetAdvance(c.Request.Context(), actor, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, advance)
}

// ListRepayments handles GET /api/v1/advances/:id/repayments.
func (h *AdvanceHandler) ListRepayments(c *gin.Context) {
	actor, id, ok := actorAndAdvanceID(c)
	if !ok {
		return
	}

	repayments, err := h.advanceSvc.ListRepayments(c.Request.Context(), actor, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if repayments == nil {
		repayments = []domain.AdvanceRepayment{}
	}
	response.OK(c, repayments)
}

// Approve handles POST /api/v1/advances/:id/approve. The body is optional.
func (h *AdvanceHandler) Approve(c *gin.Context) {
	actor, id, ok := actorAndAdvanceID(c)
	if !ok {
		return
	}

	var req dto.ApproveAdvanceRequest
	if !bindJSON(c, &req, true) {
		return
	}

	advance, err := h.advanceSvc.Approve(c.Request.Context(), actor, id, req.Note)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, advance)
}

// Reject handles POST /api/v1/advances/:id/reject.
func (h *AdvanceHandler) Reject(c *gin.Context) {
	actor, id, ok := actorAndAdvanceID(c)
	if !ok {
		return
	}

	var req dto.RejectAdvanceRequest
	if !bindJSON(c, &req, false) {
		return
	}

	advance, err := h.advanceSvc.Reject(c.Request.Context(), actor, id, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, advance)
}

// Disburse handles POST /api/v1/advances/:id/disburse.
func (h *AdvanceHandler) Disburse(c *gin.Context) {
	actor, id, ok := actorAndAdvanceID(c)
	if !ok {
		return
	}

	result, err := h.advanceSvc.Disburse(c.Request.Context(), actor, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Repay handles POST /api/v1/advances/:id/repay.
// Headers: Idempotency-Key (optional).
func (h *AdvanceHandler) Repay(c *gin.Context) {
	actor, id, ok := actorAndAdvanceID(c)
	if !ok {
		return
	}
	key, ok := idempotencyKey(c)
	if !ok {
		return
	}

	var req dto.RepayRequest
	if !bindJSON(c, &req, false) {
		return
	}

	result, err := h.advanceSvc.Repay(c.Request.Context(), ports.RepayCommand{
		Actor:          actor,
		AdvanceID:      id,
		Amount:         req.Amount,
		Method:         domain.RepaymentMethod(req.Method),
		OrderID:        req.OrderID,
		Note:           req.Note,
		IdempotencyKey: key,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// MarkOutstanding handles POST /api/v1/advances/:id/mark-outstanding.
func (h *AdvanceHandler) MarkOutstanding(c *gin.Context) {
	actor, id, ok := actorAndAdvanceID(c)
	if !ok {
		return
	}

	advance, err := h.advanceSvc.MarkOutstanding(c.Request.Context(), actor, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, advance)
}

func actorAndAdvanceID(c *gin.Context) (domain.Actor, uuid.UUID, bool) {
	actor, ok := requireActor(c)
	if !ok {
		return domain.Actor{}, uuid.Nil, false
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return domain.Actor{}, uuid.Nil, false
	}
	return actor, id, true
}
