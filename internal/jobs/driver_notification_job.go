package jobs

import (
	"context"
	"log/slog"

	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// driverNotificationSchedule re-announces waiting orders every 30 seconds.
// Frequent enough that a driver connecting after the original cooked event
// still hears about the order quickly, rare enough not to flood the pool.
const driverNotificationSchedule = "*/30 * * * * *"

// DriverNotificationJob periodically re-publishes cooked orders that no
// driver has taken yet. The initial cooked event only reaches drivers
// connected at that moment; this job covers everyone who connects later.
type DriverNotificationJob struct {
	handler   queries.GetCookedUnassignedOrdersQueryHandler
	publisher ports.EventPublisher
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewDriverNotificationJob creates the re-announcement job. Uses the
// cooked-unassigned listing to find waiting orders and the event publisher
// to push them back onto the driver pool topic.
func NewDriverNotificationJob(
	handler queries.GetCookedUnassignedOrdersQueryHandler,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) *DriverNotificationJob {
	return &DriverNotificationJob{
		handler:   handler,
		publisher: publisher,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "driver_notification_job"),
	}
}

// Start begins the periodic re-announcement.
func (j *DriverNotificationJob) Start() error {
	_, err := j.cron.AddFunc(driverNotificationSchedule, func() {
		ctx := context.Background()
		if err := j.run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Driver notification job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Driver notification job started (running every 30 seconds)")
	return nil
}

// Stop stops the re-announcement job.
func (j *DriverNotificationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Driver notification job stopped")
}

func (j *DriverNotificationJob) run(ctx context.Context) error {
	waiting, err := j.handler.Handle(ctx, queries.NewGetCookedUnassignedOrdersQuery())
	if err != nil {
		return err
	}

	for _, cooked := range waiting {
		o, restoreErr := restoreOrder(cooked.Order)
		if restoreErr != nil {
			j.logger.ErrorContext(ctx, "Skipping unpublishable order",
				"orderId", cooked.Order.ID.String(), "error", restoreErr)
			continue
		}

		j.publisher.Publish(ports.TopicCookedOrders, ports.OrderEvent{
			Order:             o,
			RestaurantOwnerID: cooked.RestaurantOwnerID,
		})
	}

	return nil
}

// restoreOrder rebuilds the aggregate from the read model so the event
// carries the same payload shape as the original cooked announcement.
func restoreOrder(response queries.OrderResponse) (*order.Order, error) {
	items := make([]*order.Item, 0, len(response.Items))
	for _, item := range response.Items {
		selections := make([]order.Selection, 0, len(item.Selections))
		for _, sel := range item.Selections {
			selection, err := order.NewSelection(sel.Option, sel.Choice)
			if err != nil {
				return nil, err
			}
			selections = append(selections, selection)
		}

		price, err := kernel.NewPrice(item.Price)
		if err != nil {
			return nil, err
		}
		restored, err := order.NewItem(item.ID, item.DishID, price, selections)
		if err != nil {
			return nil, err
		}
		items = append(items, restored)
	}

	total, err := kernel.NewPrice(response.Total)
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(response.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		response.ID,
		response.RestaurantID,
		response.CustomerID,
		items,
		total,
		status,
		response.DriverID,
	)
}
