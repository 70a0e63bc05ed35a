package health

import (
	"context"
	"net/http"
	"time"

	"github.com/heptiolabs/healthcheck"

	"chatmail/backend/internal/storage"
)

const probeTimeout = 5 * time.Second

// Checker 基于存储可达性的健康检查器。
type Checker struct {
	handler healthcheck.Handler
	store   storage.Store
}

// NewChecker 创建健康检查器。
func NewChecker(store storage.Store) *Checker {
	c := &Checker{
		handler: healthcheck.NewHandler(),
		store:   store,
	}

	c.handler.AddReadinessCheck("database", func() error {
		ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
		defer cancel()
		return c.store.Health(ctx)
	})
	c.handler.AddLivenessCheck("goroutine-threshold", healthcheck.GoroutineCountCheck(500))

	return c
}

// LiveEndpoint 存活探针处理器。
func (c *Checker) LiveEndpoint() http.HandlerFunc {
	return c.handler.LiveEndpoint
}

// ReadyEndpoint 就绪探针处理器。
func (c *Checker) ReadyEndpoint() http.HandlerFunc {
	return c.handler.ReadyEndpoint
}
