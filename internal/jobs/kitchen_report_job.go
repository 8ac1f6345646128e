package jobs

import (
	"context"
	"log/slog"
	"time"

	"oorms/internal/core/domain/model/order"
	"oorms/internal/core/domain/model/restaurant"
	"oorms/internal/core/domain/services"
	"oorms/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DefaultReportSchedule runs the report at the top of every minute.
const DefaultReportSchedule = "0 * * * * *"

const reportTimeout = 5 * time.Second

// KitchenReportJob periodically logs the kitchen backlog.
type KitchenReportJob struct {
	executor   ports.Executor
	restaurant *restaurant.Restaurant
	board      services.KitchenBoard
	schedule   string
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewKitchenReportJob creates the job. The backlog is read through executor.
func NewKitchenReportJob(
	executor ports.Executor,
	r *restaurant.Restaurant,
	schedule string,
	logger *slog.Logger,
) *KitchenReportJob {
	return &KitchenReportJob{
		executor:   executor,
		restaurant: r,
		board:      services.NewKitchenBoard(),
		schedule:   schedule,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "kitchen_report_job"),
	}
}

func (j *KitchenReportJob) Name() string {
	return "kitchen report job"
}

// Start schedules the report.
func (j *KitchenReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
		defer cancel()

		if err := j.Report(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Kitchen report job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Kitchen report job started", "schedule", j.schedule)
	return nil
}

// Stop stops the job and waits for a running report to finish.
func (j *KitchenReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Kitchen report job stopped")
}

// Report logs one line with the number of items PLACED, COOKED and READY.
func (j *KitchenReportJob) Report(ctx context.Context) error {
	var backlog map[order.Status]int
	err := j.executor.Do(ctx, func() error {
		var err error
		backlog, err = j.board.Backlog(j.restaurant)
		return err
	})
	if err != nil {
		return err
	}

	total := backlog[order.Placed] + backlog[order.Cooked] + backlog[order.Ready]
	j.logger.InfoContext(ctx, "Kitchen backlog",
		"placed", backlog[order.Placed],
		"cooked", backlog[order.Cooked],
		"ready", backlog[order.Ready],
		"total", total,
	)
	return nil
}
