package workers

import (
	"context"
	"time"

	"github.com/centraplate/registry/internal/logger"
	"github.com/centraplate/registry/internal/store"
)

// OtpSweeper periodically deletes unredeemed passcodes whose validity window
// has closed. Redeemed records are never touched: they back the derived
// verification flag of every account.
type OtpSweeper struct {
	otps     store.OtpRepository
	interval time.Duration
	logger   *logger.Logger

	now func() time.Time
}

func NewOtpSweeper(otps store.OtpRepository, interval time.Duration, logger *logger.Logger) *OtpSweeper {
	return &OtpSweeper{
		otps:     otps,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

// Run sweeps once immediately, then on every tick until ctx is cancelled.
func (s *OtpSweeper) Run(ctx context.Context) {
	s.logger.Info().Dur("interval", s.interval).Msg("otp sweeper started")

	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("otp sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *OtpSweeper) sweep(ctx context.Context) {
	purged, err := s.otps.PurgeExpiredOtps(ctx, s.now())
	if err != nil {
		s.logger.Err(err).Str("func", "*OtpSweeper.sweep").Msg("error purging expired otp codes")
		return
	}

	if purged > 0 {
		s.logger.Info().Int64("purged", purged).Msg("expired otp codes purged")
	}
}
