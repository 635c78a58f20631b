package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"assistance/internal/adapters/in/http"
	"assistance/internal/adapters/out/driverprov"
	"assistance/internal/adapters/out/eventbus"
	"assistance/internal/adapters/out/geocode"
	"assistance/internal/adapters/out/notify"
	"assistance/internal/adapters/out/postgres"
	"assistance/internal/adapters/out/postgres/sagarepo"
	"assistance/internal/core/application/notifications"
	"assistance/internal/core/application/orchestrators"
	"assistance/internal/core/application/sagas"
	"assistance/internal/core/application/usecases/commands"
	"assistance/internal/core/application/usecases/queries"
	"assistance/internal/core/domain/services"
	"assistance/internal/jobs"
)

// CompositionRoot wires adapters into use case handlers. All shared
// dependencies (database, event bus, external service clients) are built once
// here; the Create* methods hand out handlers over them.
type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   *postgres.GormUnitOfWorkFactory
	eventBus     *eventbus.InMemoryEventBus
	availability orchestrators.DriverAvailability
	geocoder     *geocode.Client
	logger       *slog.Logger
}

// NewCompositionRoot builds the shared dependency graph and registers the
// saga and notification event handlers on the bus.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	providerClient, err := driverprov.NewClient(config.DriverProviderURL)
	if err != nil {
		return nil, fmt.Errorf("create driver provider client: %w", err)
	}

	geocoderClient, err := geocode.NewClient(config.GeocoderURL)
	if err != nil {
		return nil, fmt.Errorf("create geocoder client: %w", err)
	}

	notifierClient := notify.NewClient(config.NotifierURL, logger)

	bus := eventbus.New(logger)

	sagaHandler := sagas.NewOrderStatusSagaHandler(sagarepo.NewGormSagaRepository(gormDB), logger)
	if err := sagaHandler.Subscribe(bus); err != nil {
		return nil, fmt.Errorf("subscribe saga handler: %w", err)
	}

	notificationHandler := notifications.NewDriverNotificationHandler(notifierClient)
	if err := notificationHandler.Subscribe(bus); err != nil {
		return nil, fmt.Errorf("subscribe notification handler: %w", err)
	}

	return &CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   postgres.NewGormUnitOfWorkFactory(gormDB),
		eventBus:     bus,
		availability: orchestrators.NewDriverAvailability(providerClient),
		geocoder:     geocoderClient,
		logger:       logger,
	}, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.fullUoWFactory(), c.geocoder, c.eventBus)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	return commands.NewAssignDriverCommandHandler(c.orderUoWFactory(), c.availability, c.eventBus)
}

func (c *CompositionRoot) CreateRespondToAssignmentCommandHandler() commands.RespondToAssignmentCommandHandler {
	return commands.NewRespondToAssignmentCommandHandler(c.orderUoWFactory(), c.availability, c.eventBus)
}

func (c *CompositionRoot) CreateConfirmArrivalCommandHandler() commands.ConfirmArrivalCommandHandler {
	return commands.NewConfirmArrivalCommandHandler(c.orderUoWFactory(), c.eventBus)
}

func (c *CompositionRoot) CreateBeginWorkCommandHandler() commands.BeginWorkCommandHandler {
	return commands.NewBeginWorkCommandHandler(c.orderUoWFactory(), c.eventBus)
}

func (c *CompositionRoot) CreateCompleteWorkCommandHandler() commands.CompleteWorkCommandHandler {
	return commands.NewCompleteWorkCommandHandler(c.orderUoWFactory(), c.availability, c.eventBus)
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	return commands.NewConfirmPaymentCommandHandler(c.orderUoWFactory(), c.eventBus)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.availability, c.eventBus)
}

func (c *CompositionRoot) CreateApplyExtraCostsCommandHandler() commands.ApplyExtraCostsCommandHandler {
	return commands.NewApplyExtraCostsCommandHandler(c.orderUoWFactory(), services.NewExtraCostValidator())
}

func (c *CompositionRoot) CreateRecomputeTotalCommandHandler() commands.RecomputeTotalCommandHandler {
	return commands.NewRecomputeTotalCommandHandler(c.fullUoWFactory(), services.NewCostCalculator())
}

func (c *CompositionRoot) CreateExpireAssignmentsCommandHandler() commands.ExpireAssignmentsCommandHandler {
	return commands.NewExpireAssignmentsCommandHandler(c.orderUoWFactory(), c.availability, c.eventBus)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.gormDB)
}

// CreateHTTPServer builds the REST server over all command and query handlers.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateAssignDriverCommandHandler(),
		c.CreateRespondToAssignmentCommandHandler(),
		c.CreateConfirmArrivalCommandHandler(),
		c.CreateBeginWorkCommandHandler(),
		c.CreateCompleteWorkCommandHandler(),
		c.CreateConfirmPaymentCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateApplyExtraCostsCommandHandler(),
		c.CreateRecomputeTotalCommandHandler(),
		c.CreateGetOrderByIDQueryHandler(),
		c.CreateGetOrdersByStatusQueryHandler(),
	)
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager(responseTimeout time.Duration) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateExpireAssignmentsCommandHandler(), responseTimeout, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
