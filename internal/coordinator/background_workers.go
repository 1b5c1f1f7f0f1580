package coordinator

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/revault/coordinatord/internal/coordinator/store"
)

var storeUp = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "coordinator",
	Subsystem: "store",
	Name:      "up",
	Help:      "1 if the last health check reached the backing store, 0 otherwise",
})

type BackgroundWorkers struct {
	coordinatorStore store.CoordinatorStore
	logger           *slog.Logger

	healthy bool

	workersWg sync.WaitGroup
	ctx       context.Context
	cancelAll func()
}

func NewBackgroundWorkers(s store.CoordinatorStore, logger *slog.Logger) *BackgroundWorkers {
	ctx, cancel := context.WithCancel(context.Background())

	return &BackgroundWorkers{
		coordinatorStore: s,
		logger:           logger.With(slog.String("module", "background workers")),
		healthy:          true,

		ctx:       ctx,
		cancelAll: cancel,
	}
}

// StartStoreHealthCheck pings the store every interval. Only changes of reachability are logged.
func (w *BackgroundWorkers) StartStoreHealthCheck(interval, timeout time.Duration) {
	ticker := time.NewTicker(interval)

	w.workersWg.Add(1)
	go func() {
		defer func() {
			ticker.Stop()
			w.workersWg.Done()
		}()

		for {
			select {
			case <-ticker.C:
				w.checkStore(timeout)

			case <-w.ctx.Done():
				return
			}
		}
	}()
}

func (w *BackgroundWorkers) checkStore(timeout time.Duration) {
	ctx, cancel := context.WithTimeout(w.ctx, timeout)
	defer cancel()

	err := w.coordinatorStore.Ping(ctx)
	if err != nil {
		storeUp.Set(0)
		if w.healthy {
			w.logger.Error("Store unreachable", slog.String("err", err.Error()))
		}
		w.healthy = false
		return
	}

	storeUp.Set(1)
	if !w.healthy {
		w.logger.Info("Store reachable again")
	}
	w.healthy = true
}

func (w *BackgroundWorkers) GracefulStop() {
	w.logger.Info("Shutting down")

	w.cancelAll()
	w.workersWg.Wait()

	w.logger.Info("Shutdown complete")
}
