package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"

	"github.com/golazo-app/golazo/internal/scoring"
)

const (
	ScoreRecomputeJob     = "score_recompute"
	scoreRecomputeTimeout = 30 * time.Minute
)

// BatchRecomputer rescores every player with history.
type BatchRecomputer interface {
	RecomputeAll(ctx context.Context) (scoring.BatchOutcome, error)
}

// RegisterScoreRecomputeJob schedules the periodic full score recompute.
func RegisterScoreRecomputeJob(s *Service, recomputer BatchRecomputer, cronExpr string) (gocron.Job, error) {
	if svc, ok := recomputer.(*scoring.Service); recomputer == nil || (ok && svc == nil) {
		return nil, fmt.Errorf("score recompute job requires a scoring service")
	}
	return s.AddJob(ScoreRecomputeJob, cronExpr, scoreRecomputeTimeout, func(ctx context.Context) {
		batch, err := recomputer.RecomputeAll(ctx)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("Score recompute job failed")
			return
		}
		log.Ctx(ctx).Info().
			Int("players", batch.Players).
			Int("updated", batch.Updated).
			Int("failed", batch.Failed).
			Int("skipped", batch.Skipped).
			Msg("Score recompute job finished")
	})
}
