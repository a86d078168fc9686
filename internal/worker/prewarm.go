package worker

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/rs/zerolog"

	"github.com/shorecast/shorecast/internal/conditions"
)

// PrewarmJob keeps the dashboard cache warm for popular beach sets so the
// first request of each cache cycle never pays the upstream fan-out.
type PrewarmJob struct {
	config     PrewarmConfig
	logger     zerolog.Logger
	conditions *conditions.Service
	scheduler  *gocron.Scheduler

	metrics *PrewarmMetrics
}

// PrewarmMetrics tracks prewarm job statistics.
type PrewarmMetrics struct {
	mu sync.RWMutex

	TotalRuns       int64
	WarmedVariants  int64
	FailedVariants  int64
	LastRunAt       time.Time
	LastRunDuration time.Duration
}

// PrewarmJobConfig holds configuration for creating a PrewarmJob.
type PrewarmJobConfig struct {
	Config     PrewarmConfig
	Logger     zerolog.Logger
	Conditions *conditions.Service
}

// NewPrewarmJob creates a new prewarm job processor.
func NewPrewarmJob(cfg PrewarmJobConfig) *PrewarmJob {
	config := cfg.Config
	if len(config.Targets) == 0 {
		config.Targets = DefaultPrewarmTargets()
	}
	if config.Interval <= 0 {
		config.Interval = 4 * time.Minute
	}
	if config.Concurrency <= 0 {
		config.Concurrency = 2
	}
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}

	return &PrewarmJob{
		config:     config,
		logger:     cfg.Logger,
		conditions: cfg.Conditions,
		scheduler:  gocron.NewScheduler(time.UTC),
		metrics:    &PrewarmMetrics{},
	}
}

// Start schedules the periodic run. No-op when the job is disabled.
func (j *PrewarmJob) Start(ctx context.Context) error {
	if !j.config.Enabled {
		j.logger.Info().Msg("dashboard prewarm disabled")
		return nil
	}

	_, err := j.scheduler.Every(j.config.Interval).Do(func() {
		j.Run(ctx)
	})
	if err != nil {
		return err
	}

	j.scheduler.StartAsync()
	j.logger.Info().
		Dur("interval", j.config.Interval).
		Int("variants", j.config.TotalVariants()).
		Msg("dashboard prewarm scheduled")
	return nil
}

// Stop stops the scheduler and cancels any future runs.
func (j *PrewarmJob) Stop() {
	if j.scheduler != nil {
		j.scheduler.Stop()
	}
}

// PrewarmResult contains the outcome of a single run.
type PrewarmResult struct {
	StartTime time.Time
	Duration  time.Duration
	Warmed    int
	Failed    int
}

// Run warms every configured dashboard variant once.
func (j *PrewarmJob) Run(ctx context.Context) *PrewarmResult {
	start := time.Now()
	variants := j.config.allVariants()
	result := &PrewarmResult{StartTime: start}

	j.logger.Info().
		Int("variants", len(variants)).
		Int("concurrency", j.config.Concurrency).
		Msg("starting dashboard prewarm run")

	work := make(chan variant, len(variants))
	var warmed, failed int
	var mu sync.Mutex

	var wg sync.WaitGroup
	for i := 0; i < j.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for v := range work {
				if ctx.Err() != nil {
					return
				}
				ok := j.warmVariant(ctx, v)
				mu.Lock()
				if ok {
					warmed++
				} else {
					failed++
				}
				mu.Unlock()
			}
		}()
	}

	for _, v := range variants {
		work <- v
	}
	close(work)
	wg.Wait()

	result.Warmed = warmed
	result.Failed = failed
	result.Duration = time.Since(start)
	j.updateMetrics(result)

	j.logger.Info().
		Dur("duration", result.Duration).
		Int("warmed", result.Warmed).
		Int("failed", result.Failed).
		Msg("dashboard prewarm run completed")

	return result
}

func (j *PrewarmJob) warmVariant(ctx context.Context, v variant) bool {
	warmCtx, cancel := context.WithTimeout(ctx, j.config.Timeout)
	defer cancel()

	_, err := j.conditions.DashboardFor(warmCtx, v.slugs, v.mode, v.slot)
	if err != nil {
		j.logger.Warn().
			Err(err).
			Str("target", v.name).
			Str("mode", string(v.mode)).
			Str("slot", string(v.slot)).
			Msg("dashboard prewarm variant failed")
		return false
	}
	return true
}

func (j *PrewarmJob) updateMetrics(result *PrewarmResult) {
	j.metrics.mu.Lock()
	defer j.metrics.mu.Unlock()

	j.metrics.TotalRuns++
	j.metrics.WarmedVariants += int64(result.Warmed)
	j.metrics.FailedVariants += int64(result.Failed)
	j.metrics.LastRunAt = result.StartTime.Add(result.Duration)
	j.metrics.LastRunDuration = result.Duration
}

// GetMetrics returns a copy of the current metrics.
func (j *PrewarmJob) GetMetrics() PrewarmMetrics {
	j.metrics.mu.RLock()
	defer j.metrics.mu.RUnlock()

	return PrewarmMetrics{
		TotalRuns:       j.metrics.TotalRuns,
		WarmedVariants:  j.metrics.WarmedVariants,
		FailedVariants:  j.metrics.FailedVariants,
		LastRunAt:       j.metrics.LastRunAt,
		LastRunDuration: j.metrics.LastRunDuration,
	}
}
