package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-card-validator/internal/adapter"
	"github.com/MKhiriev/go-card-validator/internal/logger"
	"github.com/MKhiriev/go-card-validator/models"
)

// DefaultHealthInterval is used when the configured interval is not positive.
const DefaultHealthInterval = 30 * time.Second

type healthCheckWorker struct {
	adapter  adapter.ValidatorAdapter
	interval time.Duration
	report   func(models.ServiceStatus)
	now      func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewHealthCheckWorker creates a worker that probes the validator health
// endpoint right after Start and then every interval, passing each result
// to report. report is called from the worker goroutine.
func NewHealthCheckWorker(adapter adapter.ValidatorAdapter, interval time.Duration, report func(models.ServiceStatus), logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = DefaultHealthInterval
	}

	return &healthCheckWorker{
		adapter:  adapter,
		interval: interval,
		report:   report,
		now:      time.Now,
		logger:   logger,
	}
}

func (w *healthCheckWorker) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		w.check(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.check(jobCtx)
			}
		}
	}()
}

func (w *healthCheckWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

// check runs one probe bounded by the interval. Results of a probe cut
// short by Stop are dropped.
func (w *healthCheckWorker) check(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, w.interval)
	defer cancel()

	_, err := w.adapter.Health(probeCtx)
	if ctx.Err() != nil {
		return
	}

	status := models.ServiceStatus{Healthy: err == nil, CheckedAt: w.now()}
	if err != nil {
		status.Detail = err.Error()
		w.logger.Warn().Err(err).Msg("validator health check failed")
	} else {
		w.logger.Debug().Msg("validator is healthy")
	}

	w.report(status)
}
