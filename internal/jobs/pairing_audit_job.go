package jobs

import (
	"context"
	"log/slog"
	"time"

	"freight/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultAuditSchedule runs the audit every five minutes, on the minute.
const DefaultAuditSchedule = "0 */5 * * * *"

// UnpairedOrdersCounter is satisfied by queries.CountUnpairedOrdersQueryHandler.
type UnpairedOrdersCounter interface {
	Handle(ctx context.Context, query queries.CountUnpairedOrdersQuery) (queries.UnpairedCounts, error)
}

// PairingAuditJob periodically checks that every order has exactly one
// delivery and every delivery an order. It only reports; it never repairs.
type PairingAuditJob struct {
	counter  UnpairedOrdersCounter
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewPairingAuditJob(counter UnpairedOrdersCounter, schedule string, logger *slog.Logger) *PairingAuditJob {
	if schedule == "" {
		schedule = DefaultAuditSchedule
	}
	return &PairingAuditJob{
		counter:  counter,
		schedule: schedule,
		timeout:  30 * time.Second,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "pairing_audit_job"),
	}
}

// Start schedules the audit. An invalid cron expression is returned as is.
func (j *PairingAuditJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()
		_, _ = j.Run(ctx)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Pairing audit job started", "schedule", j.schedule)
	return nil
}

// Run performs one audit and logs the outcome: a warning when unpaired rows
// exist, an error when the counts could not be read.
func (j *PairingAuditJob) Run(ctx context.Context) (queries.UnpairedCounts, error) {
	counts, err := j.counter.Handle(ctx, queries.NewCountUnpairedOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Pairing audit failed", "error", err)
		return queries.UnpairedCounts{}, err
	}

	if !counts.IsZero() {
		j.logger.WarnContext(ctx, "Orders and deliveries are out of pairing",
			"ordersWithoutDelivery", counts.OrdersWithoutDelivery,
			"deliveriesWithoutOrder", counts.DeliveriesWithoutOrder,
		)
	} else {
		j.logger.DebugContext(ctx, "Pairing audit passed")
	}
	return counts, nil
}

// Stop waits for a running audit to finish.
func (j *PairingAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Pairing audit job stopped")
}
