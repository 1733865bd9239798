package payments

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned when no provider credentials were set.
var ErrNotConfigured = errors.New("payment provider not configured")

// Disabled stands in for the real provider on deployments without
// credentials. Every call fails, which the booking flow surfaces as an
// upstream payment error.
type Disabled struct{}

func (Disabled) Charge(context.Context, ChargeInput) (ChargeResult, error) {
	return ChargeResult{}, ErrNotConfigured
}

func (Disabled) Refund(context.Context, string, float64) (RefundResult, error) {
	return RefundResult{}, ErrNotConfigured
}

func (Disabled) Status(context.Context, string) (string, error) {
	return "", ErrNotConfigured
}

var _ Processor = Disabled{}
