package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AdvanceType classifies what a cash advance is for.
type AdvanceType string

const (
	AdvanceTypeFulfillment AdvanceType = "FULFILLMENT"
	AdvanceTypeResource    AdvanceType = "RESOURCE"
	AdvanceTypeOther       AdvanceType = "OTHER"
)

// IsValid reports whether t is a known advance type.
func (t AdvanceType) IsValid() bool {
	switch t {
	case AdvanceTypeFulfillment, AdvanceTypeResource, AdvanceTypeOther:
		return true
	}
	return false
}

// AdvanceStatus is a state of the advance lifecycle.
type AdvanceStatus string

const (
	AdvanceStatusPending         AdvanceStatus = "PENDING"
	AdvanceStatusApproved        AdvanceStatus = "APPROVED"
	AdvanceStatusRejected        AdvanceStatus = "REJECTED"
	AdvanceStatusDisbursed       AdvanceStatus = "DISBURSED"
	AdvanceStatusPartiallyRepaid AdvanceStatus = "PARTIALLY_REPAID"
	AdvanceStatusOutstanding     AdvanceStatus = "OUTSTANDING"
	AdvanceStatusRepaid          AdvanceStatus = "REPAID"
)

// ExposureStatuses are the statuses whose outstanding amount counts
// against the seller's advance limit.
var ExposureStatuses = []AdvanceStatus{
	AdvanceStatusPending,
	AdvanceStatusApproved,
	AdvanceStatusDisbursed,
	AdvanceStatusPartiallyRepaid,
	AdvanceStatusOutstanding,
}

// IsValid reports whether s is a known status.
func (s AdvanceStatus) IsValid() bool {
	switch s {
	case AdvanceStatusPending, AdvanceStatusApproved, AdvanceStatusRejected,
		AdvanceStatusDisbursed, AdvanceStatusPartiallyRepaid,
		AdvanceStatusOutstanding, AdvanceStatusRepaid:
		return true
	}
	return false
}

// IsExposure reports whether advances in s count against the credit limit.
func (s AdvanceStatus) IsExposure() bool {
	for _, e := range ExposureStatuses {
		if s == e {
			return true
		}
	}
	return false
}

// IsRepayable reports whether repayments may be posted in s.
func (s AdvanceStatus) IsRepayable() bool {
	return s == AdvanceStatusDisbursed ||
		s == AdvanceStatusPartiallyRepaid ||
		s == AdvanceStatusOutstanding
}

// IsTerminal reports whether s allows no further transitions.
func (s AdvanceStatus) IsTerminal() bool {
	return s == AdvanceStatusRepaid || s == AdvanceStatusRejected
}

// Advance is a cash advance against a seller's future earnings. Once
// disbursed, Amount always equals RepaidAmount plus OutstandingAmount.
type Advance struct {
	ID                uuid.UUID       `json:"id"`
	AdvanceNumber     string          `json:"advance_number"`
	SellerID          uuid.UUID       `json:"seller_id"`
	TeamID            *uuid.UUID      `json:"team_id,omitempty"`
	Type              AdvanceType     `json:"type"`
	Amount            decimal.Decimal `json:"amount"`
	Status            AdvanceStatus   `json:"status"`
	OutstandingAmount decimal.Decimal `json:"outstanding_amount"`
	RepaidAmount      decimal.Decimal `json:"repaid_amount"`
	Reason            string          `json:"reason,omitempty"`
	DueDate           *time.Time      `json:"due_date,omitempty"`
	RequestedAt       time.Time       `json:"requested_at"`
	ApprovedAt        *time.Time      `json:"approved_at,omitempty"`
	ApprovedBy        *uuid.UUID      `json:"approved_by,omitempty"`
	ApprovalNote      string          `json:"approval_note,omitempty"`
	RejectedAt        *time.Time      `json:"rejected_at,omitempty"`
	RejectedBy        *uuid.UUID      `json:"rejected_by,omitempty"`
	RejectionNote     string          `json:"rejection_note,omitempty"`
	DisbursedAt       *time.Time      `json:"disbursed_at,omitempty"`
	OutstandingAt     *time.Time      `json:"outstanding_at,omitempty"`
	RepaidAt          *time.Time      `json:"repaid_at,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// NewAdvance returns a PENDING advance with the full amount outstanding.
// The advance number is assigned by the caller.
func NewAdvance(seller *Seller, t AdvanceType, amount decimal.Decimal, reason string, dueDate *time.Time, now time.Time) *Advance {
	return &Advance{
		ID:                uuid.New(),
		SellerID:          seller.ID,
		TeamID:            seller.TeamID,
		Type:              t,
		Amount:            amount,
		Status:            AdvanceStatusPending,
		OutstandingAmount: amount,
		RepaidAmount:      decimal.Zero,
		Reason:            reason,
		DueDate:           dueDate,
		RequestedAt:       now,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// Approve moves a PENDING advance to APPROVED.
func (a *Advance) Approve(by uuid.UUID, note string, now time.Time) error {
	if a.Status != AdvanceStatusPending {
		return ErrInvalidTransition
	}
	a.Status = AdvanceStatusApproved
	a.ApprovedBy = &by
	a.ApprovedAt = &now
	a.ApprovalNote = note
	a.UpdatedAt = now
	return nil
}

// Reject moves a PENDING advance to REJECTED. A reason is mandatory.
func (a *Advance) Reject(by uuid.UUID, reason string, now time.Time) error {
	if reason == "" {
		return ErrReasonRequired
	}
	if a.Status != AdvanceStatusPending {
		return ErrInvalidTransition
	}
	a.Status = AdvanceStatusRejected
	a.RejectedBy = &by
	a.RejectedAt = &now
	a.RejectionNote = reason
	a.UpdatedAt = now
	return nil
}

// Disburse moves an APPROVED advance to DISBURSED.
func (a *Advance) Disburse(now time.Time) error {
	if a.Status != AdvanceStatusApproved {
		return ErrInvalidTransition
	}
	a.Status = AdvanceStatusDisbursed
	a.DisbursedAt = &now
	a.UpdatedAt = now
	return nil
}

// ApplyRepayment books amount against the outstanding balance. The advance
// becomes REPAID when nothing is left, PARTIALLY_REPAID otherwise.
func (a *Advance) ApplyRepayment(amount decimal.Decimal, now time.Time) error {
	if !a.Status.IsRepayable() {
		return ErrInvalidTransition
	}
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	if amount.GreaterThan(a.OutstandingAmount) {
		return ErrExceedsOutstanding
	}

	a.RepaidAmount = a.RepaidAmount.Add(amount)
	a.OutstandingAmount = a.OutstandingAmount.Sub(amount)
	if a.OutstandingAmount.IsZero() {
		a.Status = AdvanceStatusRepaid
		a.RepaidAt = &now
	} else {
		a.Status = AdvanceStatusPartiallyRepaid
	}
	a.UpdatedAt = now
	return nil
}

// MarkOutstanding flags a DISBURSED advance whose due date has passed.
func (a *Advance) MarkOutstanding(now time.Time) error {
	if a.Status != AdvanceStatusDisbursed {
		return ErrInvalidTransition
	}
	if a.DueDate == nil || !now.After(*a.DueDate) {
		return ErrNotOverdue
	}
	a.Status = AdvanceStatusOutstanding
	a.OutstandingAt = &now
	a.UpdatedAt = now
	return nil
}

// IsBalanced reports whether principal equals repaid plus outstanding.
func (a *Advance) IsBalanced() bool {
	return a.Amount.Equal(a.RepaidAmount.Add(a.OutstandingAmount))
}
