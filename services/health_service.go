package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jstrehler/portfolio-backend/logger"
	"github.com/jstrehler/portfolio-backend/types"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// rateLimitTable is the optional view into the in-memory limiter table.
type rateLimitTable interface {
	Len() int
}

// HealthService aggregates component health for the /health endpoints.
// redisClient and table are both optional; only configured components are
// reported.
type HealthService struct {
	redisClient *goredis.Client
	table       rateLimitTable
	version     string
	startedAt   time.Time
	log         *zap.SugaredLogger
}

func NewHealthService(redisClient *goredis.Client, table rateLimitTable, version string) *HealthService {
	return &HealthService{
		redisClient: redisClient,
		table:       table,
		version:     version,
		startedAt:   time.Now(),
		log:         logger.GetLogger(),
	}
}

// CheckHealth pings each configured dependency and reports the aggregate.
func (h *HealthService) CheckHealth(ctx context.Context) types.HealthCheck {
	components := make(map[string]types.HealthComponent)
	overallStatus := types.HealthStatusUp

	if h.redisClient != nil {
		redisStatus := h.checkRedis(ctx)
		components["redis"] = redisStatus
		if redisStatus.Status == types.HealthStatusDown {
			overallStatus = types.HealthStatusDown
		}
	}

	if h.table != nil {
		components["rate_limit_store"] = types.HealthComponent{
			Status:  types.HealthStatusUp,
			Details: fmt.Sprintf("%d tracked identifiers", h.table.Len()),
		}
	}

	return types.HealthCheck{
		Status:     overallStatus,
		Components: components,
		Version:    h.version,
		Uptime:     time.Since(h.startedAt).Round(time.Second).String(),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
}

// IsReady reports whether the service can accept traffic. Without Redis the
// process is self-contained and always ready once started.
func (h *HealthService) IsReady(ctx context.Context) bool {
	if h.redisClient == nil {
		return true
	}
	return h.checkRedis(ctx).Status == types.HealthStatusUp
}

func (h *HealthService) checkRedis(ctx context.Context) types.HealthComponent {
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := h.redisClient.Ping(pingCtx).Err(); err != nil {
		h.log.Warnw("Redis health check failed", "error", err)
		return types.HealthComponent{
			Status:  types.HealthStatusDown,
			Details: "ping failed",
		}
	}
	return types.HealthComponent{Status: types.HealthStatusUp}
}
