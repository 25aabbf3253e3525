package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"oms/internal/core/application/usecases/queries"
	"oms/internal/core/domain/events"
	"oms/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// OfferNotificationJob periodically reminds candidate translators about
// active orders that still have operations open for offers.
// Runs every minute; a missed run only delays a reminder.
type OfferNotificationJob struct {
	pendingOrdersHandler queries.GetResponsePendingOrdersQueryHandler
	users                ports.UserServiceClient
	dispatcher           ports.EventDispatcher
	cron                 *cron.Cron
	logger               *slog.Logger
}

// NewOfferNotificationJob creates a new job for reminding translators.
func NewOfferNotificationJob(
	pendingOrdersHandler queries.GetResponsePendingOrdersQueryHandler,
	users ports.UserServiceClient,
	dispatcher ports.EventDispatcher,
	logger *slog.Logger,
) *OfferNotificationJob {
	return &OfferNotificationJob{
		pendingOrdersHandler: pendingOrdersHandler,
		users:                users,
		dispatcher:           dispatcher,
		cron:                 cron.New(cron.WithSeconds()),
		logger:               logger.With("component", "offer_notification_job"),
	}
}

// Start begins the notification job to run every minute.
func (j *OfferNotificationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		if err := j.notifyPendingOrders(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Offer notification job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Offer notification job started (running every minute)")
	return nil
}

// Stop stops the notification job.
func (j *OfferNotificationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Offer notification job stopped")
}

// notifyPendingOrders builds one reminder event per pending order and
// dispatches them in a single batch. A user lookup failure skips that order
// only; the remaining reminders still go out.
func (j *OfferNotificationJob) notifyPendingOrders(ctx context.Context) error {
	pending, err := j.pendingOrdersHandler.Handle(ctx, queries.NewGetResponsePendingOrdersQuery())
	if err != nil {
		return fmt.Errorf("load response pending orders: %w", err)
	}
	if len(pending) == 0 {
		return nil
	}

	messages := make([]events.EventMessage, 0, len(pending))
	for _, p := range pending {
		event, buildErr := j.buildReminder(ctx, p)
		if buildErr != nil {
			j.logger.ErrorContext(ctx, "Skipping reminder for order",
				"orderId", p.ID.String(), "error", buildErr)
			continue
		}
		if event == nil {
			continue
		}

		message, msgErr := event.ToEventMessage()
		if msgErr != nil {
			j.logger.ErrorContext(ctx, "Skipping reminder for order",
				"orderId", p.ID.String(), "error", msgErr)
			continue
		}
		messages = append(messages, message)
	}

	if len(messages) == 0 {
		return nil
	}

	if err = j.dispatcher.Dispatch(ctx, messages); err != nil {
		return fmt.Errorf("dispatch reminders: %w", err)
	}

	return nil
}

func (j *OfferNotificationJob) buildReminder(
	ctx context.Context, pending queries.GetResponsePendingOrdersQueryResponse,
) (*events.NotifyTranslatorsEvent, error) {
	translators, err := j.users.GetTranslatorsByQuality(ctx, pending.TranslationQualityID)
	if err != nil {
		return nil, fmt.Errorf("look up translators: %w", err)
	}
	if len(translators) == 0 {
		return nil, nil //nolint:nilnil // no candidates means nothing to send
	}

	recipients := make([]string, len(translators))
	for i, t := range translators {
		recipients[i] = t.Email
	}

	return &events.NotifyTranslatorsEvent{
		Subject: "Translation order awaiting offers",
		Message: fmt.Sprintf("Order %s still has %d operations open for offers",
			pending.ID, pending.OpenOperationCount),
		To: recipients,
	}, nil
}
