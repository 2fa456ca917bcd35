package throttle

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/time/rate"

	"github.com/andrescamacho/fantasy-manager-go/internal/application/common"
	"github.com/andrescamacho/fantasy-manager-go/internal/application/mediator"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
)

// ErrRateLimited is returned when a manager issues requests faster than allowed
var ErrRateLimited = errors.New("too many requests, slow down")

// ManagerLimiter keeps one token bucket per manager
type ManagerLimiter struct {
	mu       sync.Mutex
	limiters map[int]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewManagerLimiter allows each manager requestsPerSecond with the given burst.
// A burst below 1 is raised to 1 so a single request always fits.
func NewManagerLimiter(requestsPerSecond float64, burst int) *ManagerLimiter {
	if burst < 1 {
		burst = 1
	}
	return &ManagerLimiter{
		limiters: make(map[int]*rate.Limiter),
		limit:    rate.Limit(requestsPerSecond),
		burst:    burst,
	}
}

// Allow consumes one token of the manager's bucket
func (l *ManagerLimiter) Allow(managerID shared.ManagerID) bool {
	l.mu.Lock()
	limiter, ok := l.limiters[managerID.Value()]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[managerID.Value()] = limiter
	}
	l.mu.Unlock()

	return limiter.Allow()
}

// Middleware rejects manager-scoped requests exceeding the manager's rate.
// Requests that are not manager-scoped pass through untouched.
func Middleware(limiter *ManagerLimiter) mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		if limiter == nil {
			return next(ctx, request)
		}

		scoped, ok := request.(common.ManagerScoped)
		if !ok || scoped.ScopeManagerID().IsZero() {
			return next(ctx, request)
		}

		managerID := scoped.ScopeManagerID()
		if !limiter.Allow(managerID) {
			common.LoggerFromContext(ctx).Log(common.LevelWarn, fmt.Sprintf("[Throttle] Manager %s exceeded request rate", managerID), nil)
			return nil, ErrRateLimited
		}

		return next(ctx, request)
	}
}
