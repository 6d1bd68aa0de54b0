package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VisitStatus string

const (
	VisitStatusScheduled VisitStatus = "scheduled"
	VisitStatusPostponed VisitStatus = "postponed"
	VisitStatusCompleted VisitStatus = "completed"
)

func (s VisitStatus) String() string {
	return string(s)
}

// ParseVisitStatus maps persisted status labels, including the legacy localized
// ones, onto the canonical statuses. Unknown labels are returned unchanged.
func ParseVisitStatus(raw string) VisitStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "scheduled", "planned", "запланирован":
		return VisitStatusScheduled
	case "postponed", "перенесен", "перенесён":
		return VisitStatusPostponed
	case "completed", "done", "выполнен":
		return VisitStatusCompleted
	default:
		return VisitStatus(raw)
	}
}

// VisitType separates generated plan entries from ad-hoc additions.
type VisitType string

const (
	VisitTypeScheduled VisitType = "scheduled"
	VisitTypeManual    VisitType = "manual"
)

type PlannedVisit struct {
	ID            string          `json:"id"`
	PlannedDate   string          `json:"plannedDate"`
	PlannedAt     time.Time       `json:"plannedAt"`
	OutletCode    string          `json:"outletCode"`
	OutletName    string          `json:"outletName"`
	INN           string          `json:"inn,omitempty"`
	Address       string          `json:"address,omitempty"`
	PaymentTerms  string          `json:"paymentTerms,omitempty"`
	Direction     string          `json:"direction,omitempty"`
	CreditLimit   decimal.Decimal `json:"creditLimit"`
	Debt          decimal.Decimal `json:"debt"`
	Status        VisitStatus     `json:"status"`
	Type          VisitType       `json:"type"`
	OperatorEmail string          `json:"operatorEmail"`
	Priority      int             `json:"priority"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func NewVisitID() string {
	return "visit_" + uuid.NewString()
}

// NewScheduledVisit builds a generated visit for route on plannedDate, copying the
// outlet display fields. A nil outlet yields an empty snapshot.
func NewScheduledVisit(route Route, outlet *Outlet, plannedDate string, plannedAt time.Time, operatorEmail string, priority int) *PlannedVisit {
	visit := &PlannedVisit{
		ID:            NewVisitID(),
		PlannedDate:   plannedDate,
		PlannedAt:     plannedAt,
		OutletCode:    route.OutletCode,
		Status:        VisitStatusScheduled,
		Type:          VisitTypeScheduled,
		OperatorEmail: operatorEmail,
		Priority:      priority,
		CreatedAt:     time.Now().UTC(),
	}

	if outlet != nil {
		visit.OutletName = outlet.Name
		visit.INN = outlet.INN
		visit.Address = outlet.Address
		visit.PaymentTerms = outlet.PaymentTerms
		visit.Direction = outlet.Direction
		visit.CreditLimit = outlet.CreditLimit
		visit.Debt = outlet.Debt
	}

	return visit
}

func (v *PlannedVisit) IsScheduled() bool {
	return v.Status == VisitStatusScheduled
}

// SlotKey identifies the (plannedDate, outletCode) pair generation is idempotent on.
func (v *PlannedVisit) SlotKey() string {
	return SlotKey(v.PlannedDate, v.OutletCode)
}

func SlotKey(plannedDate, outletCode string) string {
	return plannedDate + "|" + outletCode
}
