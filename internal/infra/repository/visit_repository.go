package repository

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/domain"
)

// visitRecord keeps the field names older clients wrote (outlet, payment,
// operator, date) so those records still decode.
type visitRecord struct {
	ID             string     `json:"id"`
	PlannedDate    string     `json:"plannedDate"`
	PlannedAt      timestamp  `json:"plannedAt"`
	LegacyDate     *timestamp `json:"date,omitempty"`
	OutletCode     string     `json:"outletCode"`
	LegacyOutlet   string     `json:"outlet,omitempty"`
	OutletName     string     `json:"outletName"`
	INN            string     `json:"inn,omitempty"`
	Address        string     `json:"address,omitempty"`
	PaymentTerms   string     `json:"paymentTerms,omitempty"`
	LegacyPayment  string     `json:"payment,omitempty"`
	Direction      string     `json:"direction,omitempty"`
	CreditLimit    amount     `json:"creditLimit"`
	Debt           amount     `json:"debt"`
	Status         string     `json:"status"`
	Type           string     `json:"type"`
	OperatorEmail  string     `json:"operatorEmail"`
	LegacyOperator string     `json:"operator,omitempty"`
	Priority       int        `json:"priority"`
	CreatedAt      timestamp  `json:"createdAt"`
}

type visitRepository struct {
	client *redis.Client
}

func NewVisitRepository(client *redis.Client) domain.VisitRepository {
	return &visitRepository{
		client: client,
	}
}

// GetAll returns every stored visit ordered by planned date and id. Records
// that fail to decode are logged and left out.
func (r *visitRepository) GetAll(ctx context.Context) ([]domain.PlannedVisit, error) {
	raw, err := r.client.HGetAll(ctx, visitsKey).Result()
	if err != nil {
		return nil, err
	}

	visits := make([]domain.PlannedVisit, 0, len(raw))
	for id, data := range raw {
		var record visitRecord
		if err := json.Unmarshal([]byte(data), &record); err != nil {
			slog.WarnContext(ctx, "skipping undecodable visit record",
				slog.String("visit_id", id),
				slog.String("error", err.Error()),
			)
			continue
		}
		if record.ID == "" {
			record.ID = id
		}
		visits = append(visits, record.toDomain())
	}

	slices.SortFunc(visits, func(a, b domain.PlannedVisit) int {
		return cmp.Or(
			cmp.Compare(a.PlannedDate, b.PlannedDate),
			cmp.Compare(a.ID, b.ID),
		)
	})

	return visits, nil
}

func (r *visitRepository) Put(ctx context.Context, visit *domain.PlannedVisit) error {
	if visit == nil || visit.ID == "" {
		return ErrInvalidVisitData
	}

	data, err := json.Marshal(newVisitRecord(visit))
	if err != nil {
		return ErrInvalidVisitData
	}

	return r.client.HSet(ctx, visitsKey, visit.ID, data).Err()
}

// Delete removes the visit. Deleting a visit that does not exist is not an error.
func (r *visitRepository) Delete(ctx context.Context, id string) error {
	return r.client.HDel(ctx, visitsKey, id).Err()
}

func (r *visitRepository) Clear(ctx context.Context) error {
	return r.client.Del(ctx, visitsKey).Err()
}

func newVisitRecord(v *domain.PlannedVisit) visitRecord {
	return visitRecord{
		ID:            v.ID,
		PlannedDate:   v.PlannedDate,
		PlannedAt:     timestamp(v.PlannedAt),
		OutletCode:    v.OutletCode,
		OutletName:    v.OutletName,
		INN:           v.INN,
		Address:       v.Address,
		PaymentTerms:  v.PaymentTerms,
		Direction:     v.Direction,
		CreditLimit:   amount(v.CreditLimit),
		Debt:          amount(v.Debt),
		Status:        v.Status.String(),
		Type:          string(v.Type),
		OperatorEmail: v.OperatorEmail,
		Priority:      v.Priority,
		CreatedAt:     timestamp(v.CreatedAt),
	}
}

func (rec visitRecord) toDomain() domain.PlannedVisit {
	outletCode := cmp.Or(rec.OutletCode, rec.LegacyOutlet)
	plannedAt := time.Time(rec.PlannedAt)
	if plannedAt.IsZero() && rec.LegacyDate != nil {
		plannedAt = time.Time(*rec.LegacyDate)
	}

	visitType := domain.VisitType(rec.Type)
	if visitType == "" {
		visitType = domain.VisitTypeManual
	}

	return domain.PlannedVisit{
		ID:            rec.ID,
		PlannedDate:   rec.PlannedDate,
		PlannedAt:     plannedAt,
		OutletCode:    outletCode,
		OutletName:    rec.OutletName,
		INN:           rec.INN,
		Address:       rec.Address,
		PaymentTerms:  cmp.Or(rec.PaymentTerms, rec.LegacyPayment),
		Direction:     rec.Direction,
		CreditLimit:   decimal.Decimal(rec.CreditLimit),
		Debt:          decimal.Decimal(rec.Debt),
		Status:        domain.ParseVisitStatus(rec.Status),
		Type:          visitType,
		OperatorEmail: domain.NormalizeEmail(cmp.Or(rec.OperatorEmail, rec.LegacyOperator)),
		Priority:      rec.Priority,
		CreatedAt:     time.Time(rec.CreatedAt),
	}
}
