package jobs

import (
	"context"
	"log/slog"

	"zapship/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// CashoutReminderJob periodically surfaces riders who hold delivered but
// not yet settled parcels, so operations can chase the cash-outs. The job
// is read-only: it aggregates and logs, settlement stays a manual admin
// action.
type CashoutReminderJob struct {
	handler queries.GetPendingCashoutTotalsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCashoutReminderJob creates the hourly reminder job.
func NewCashoutReminderJob(handler queries.GetPendingCashoutTotalsQueryHandler, logger *slog.Logger) *CashoutReminderJob {
	return &CashoutReminderJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "cashout_reminder_job"),
	}
}

// Start begins the reminder job, running at the top of every hour.
func (j *CashoutReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cashout reminder job started (running hourly)")
	return nil
}

// Stop stops the reminder job.
func (j *CashoutReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Cashout reminder job stopped")
}

func (j *CashoutReminderJob) run() {
	ctx := context.Background()

	totals, err := j.handler.Handle(ctx, queries.NewGetPendingCashoutTotalsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Cashout reminder job failed", "error", err)
		return
	}

	if len(totals) == 0 {
		j.logger.InfoContext(ctx, "No pending cashouts")
		return
	}

	for _, total := range totals {
		j.logger.InfoContext(ctx, "Rider has pending cashouts",
			"rider", total.RiderEmail,
			"parcels", total.ParcelCount,
			"pending_earning", total.PendingEarning,
		)
	}
}
