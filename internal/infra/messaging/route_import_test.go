package messaging

import (
	"context"
	"errors"
	"testing"

	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/calendar"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/domain"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/service/plan"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/session"
)

type recordingPlanner struct {
	days     int
	zone     string
	operator *domain.Operator
	err      error
}

func (p *recordingPlanner) Recalculate(ctx context.Context, resolver *calendar.Resolver, days int) (*plan.HorizonResult, error) {
	p.days = days
	p.zone = resolver.Name()
	p.operator = session.OperatorFromContext(ctx)
	if p.err != nil {
		return nil, p.err
	}
	return &plan.HorizonResult{Days: days, CreatedCount: 3}, nil
}

type fixedZone string

func (z fixedZone) Resolver(context.Context) (*calendar.Resolver, error) {
	return calendar.NewResolver(string(z))
}

func TestRouteImportHandlerHandle(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantDays int
		wantErr  error
	}{
		{name: "explicit horizon", body: `{"days":14,"source":"xlsx"}`, wantDays: 14},
		{name: "empty body", body: "", wantDays: 7},
		{name: "non-positive days", body: `{"days":0}`, wantDays: 7},
		{name: "horizon beyond cap", body: `{"days":200000}`, wantDays: plan.MaxHorizonDays},
		{name: "malformed", body: `{"days":`, wantErr: ErrMalformedMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			planner := &recordingPlanner{}
			handler := NewRouteImportHandler(planner, fixedZone("Asia/Omsk"), 7)

			result, err := handler.Handle(context.Background(), []byte(tt.body))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Handle() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Handle() error = %v", err)
			}

			if planner.days != tt.wantDays || result.Days != tt.wantDays {
				t.Errorf("days = %d, want %d", planner.days, tt.wantDays)
			}
			if planner.zone != "Asia/Omsk" {
				t.Errorf("zone = %q, want Asia/Omsk", planner.zone)
			}
			if !planner.operator.IsAdmin() {
				t.Errorf("operator = %+v, want system admin", planner.operator)
			}
		})
	}
}

func TestRouteImportHandlerPropagatesFailure(t *testing.T) {
	planner := &recordingPlanner{err: errors.New("all horizon days failed")}
	handler := NewRouteImportHandler(planner, fixedZone("Europe/Moscow"), 7)

	if _, err := handler.Handle(context.Background(), nil); err == nil {
		t.Fatal("Handle() error = nil, want failure")
	}
}

func TestShouldRequeue(t *testing.T) {
	transient := errors.New("redis unavailable")

	tests := []struct {
		name        string
		err         error
		redelivered bool
		want        bool
	}{
		{name: "transient first delivery", err: transient, want: true},
		{name: "transient redelivery", err: transient, redelivered: true, want: false},
		{name: "malformed", err: ErrMalformedMessage, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shouldRequeue(tt.err, tt.redelivered); got != tt.want {
				t.Errorf("shouldRequeue() = %v, want %v", got, tt.want)
			}
		})
	}
}
