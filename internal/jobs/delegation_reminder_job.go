package jobs

import (
	"context"

	"mandi/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DelegationReminderJob periodically reports offers that are still waiting
// for manager values. Runs every minute; the log lines are the reminder
// channel, delivery to people is the host's concern.
type DelegationReminderJob struct {
	handler queries.GetIncompleteOffersQueryHandler
	cron    *cron.Cron
	logger  *zap.Logger
}

// NewDelegationReminderJob creates the reminder job.
func NewDelegationReminderJob(handler queries.GetIncompleteOffersQueryHandler, logger *zap.Logger) *DelegationReminderJob {
	return &DelegationReminderJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With(zap.String("component", "delegation_reminder_job")),
	}
}

// Start begins the reminder job on a one minute schedule.
func (j *DelegationReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		offers, err := j.handler.Handle(ctx, queries.NewGetIncompleteOffersQuery())
		if err != nil {
			j.logger.Error("delegation reminder sweep failed", zap.Error(err))
			return
		}

		for _, offer := range offers {
			j.logger.Warn("offer awaiting manager values",
				zap.String("entryId", offer.EntryID.String()),
				zap.String("offerId", offer.OfferID.String()),
				zap.Strings("missingFields", offer.MissingFields),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("delegation reminder job started (running every minute)")
	return nil
}

// Stop stops the reminder job.
func (j *DelegationReminderJob) Stop() {
	j.cron.Stop()
	j.logger.Info("delegation reminder job stopped")
}
