package domain

import "context"

// SessionProvider resolves the operator on whose behalf a call runs.
// A nil operator means the call is anonymous.
type SessionProvider interface {
	CurrentOperator(ctx context.Context) *Operator
}
