// Package gateway implements the deterministic mock payment backend. The
// outcome of a charge is a pure function of the phone-number prefix so QA
// suites can assert exact behavior per fixture phone number.
package gateway

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/telclab/topup-sandbox/errs"
)

const (
	PrefixDecline = "099"
	PrefixSlow    = "088"

	DefaultSlowDelay   = 5 * time.Second
	DefaultChargeDelay = 1500 * time.Millisecond
)

// Outcome is the response policy for a phone number.
type Outcome struct {
	Decline bool
	Delay   time.Duration
}

type Config struct {
	SlowDelay   time.Duration
	ChargeDelay time.Duration
}

type Simulator struct {
	cfg    Config
	logger *zap.Logger
}

func New(cfg Config, logger *zap.Logger) *Simulator {
	if cfg.SlowDelay == 0 {
		cfg.SlowDelay = DefaultSlowDelay
	}

	if cfg.ChargeDelay == 0 {
		cfg.ChargeDelay = DefaultChargeDelay
	}

	return &Simulator{cfg: cfg, logger: logger}
}

// PolicyFor maps a phone number to its response policy.
func (s *Simulator) PolicyFor(phone string) Outcome {
	switch {
	case strings.HasPrefix(phone, PrefixDecline):
		return Outcome{Decline: true}
	case strings.HasPrefix(phone, PrefixSlow):
		return Outcome{Delay: s.cfg.SlowDelay}
	default:
		return Outcome{Delay: s.cfg.ChargeDelay}
	}
}

// Charge simulates a payment attempt. Declines return synchronously.
// Successful charges suspend for the policy's delay; the suspension aborts
// when ctx is canceled.
func (s *Simulator) Charge(ctx context.Context, phone string) error {
	outcome := s.PolicyFor(phone)

	if outcome.Decline {
		s.logger.Warn("gateway declined charge", zap.String("phone", phone))

		return errs.GatewayDeclinedErr(phone)
	}

	s.logger.Debug("gateway processing charge",
		zap.String("phone", phone),
		zap.Duration("delay", outcome.Delay),
	)

	timer := time.NewTimer(outcome.Delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
