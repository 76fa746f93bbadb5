// internal/api/scores/handlers.go
package scores

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/golazo-app/golazo/internal/api/apiutil"
	"github.com/golazo-app/golazo/internal/ratelimit"
	"github.com/golazo-app/golazo/internal/request"
	"github.com/golazo-app/golazo/internal/scoring"
)

const (
	scoreQueryTimeout     = 5 * time.Second
	recomputeQueryTimeout = 15 * time.Second
	playerIDPathKey       = "playerID"
)

var (
	service     *scoring.Service
	limiter     *ratelimit.Limiter
	serviceOnce sync.Once
)

// InitHandlers must be called during server startup before handling
// requests. A nil limiter disables throttling of recompute requests.
func InitHandlers(svc *scoring.Service, rl *ratelimit.Limiter) {
	if svc == nil {
		return
	}
	serviceOnce.Do(func() {
		service = svc
		limiter = rl
	})
}

// GET /api/v1/players/{playerID}/score
func HandleGetScore(w http.ResponseWriter, r *http.Request) {
	svc := loadService()
	if svc == nil {
		log.Ctx(r.Context()).Error().Msg("Scoring service not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	playerID, err := request.IDFromPath(r, playerIDPathKey)
	if err != nil {
		apiutil.WriteError(w, r, apiutil.BadRequest(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), scoreQueryTimeout)
	defer cancel()

	view, err := svc.Get(ctx, playerID)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, view); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to write score response")
	}
}

// POST /api/v1/players/{playerID}/score/recompute
func HandleRecomputeScore(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	svc := loadService()
	if svc == nil {
		logger.Error().Msg("Scoring service not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	playerID, err := request.IDFromPath(r, playerIDPathKey)
	if err != nil {
		apiutil.WriteError(w, r, apiutil.BadRequest(err))
		return
	}

	if rl := loadLimiter(); rl != nil {
		ip := rl.ClientIP(r)
		result := rl.CheckAndRecord(playerID, ip)
		if !result.Allowed {
			ratelimit.LogRateLimitExceeded(playerID, ip, result.Reason)
			seconds := int(math.Ceil(result.RetryAfter.Seconds()))
			w.Header().Set("Retry-After", strconv.Itoa(seconds))
			apiutil.WriteError(w, r, apiutil.HandlerError{
				Status:  http.StatusTooManyRequests,
				Message: fmt.Sprintf("Too many recompute requests, retry in %ds", seconds),
			})
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), recomputeQueryTimeout)
	defer cancel()

	outcome, err := svc.Recompute(ctx, playerID)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, outcome); err != nil {
		logger.Error().Err(err).Msg("Failed to write recompute response")
	}
}

func loadService() *scoring.Service {
	return service
}

func loadLimiter() *ratelimit.Limiter {
	return limiter
}
