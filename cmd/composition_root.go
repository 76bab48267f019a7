package cmd

import (
	"fmt"
	"log/slog"

	httpin "fastfood/internal/adapters/in/http"
	"fastfood/internal/adapters/out/media"
	"fastfood/internal/adapters/out/messaging"
	"fastfood/internal/adapters/out/postgres"
	"fastfood/internal/core/application/usecases/commands"
	"fastfood/internal/core/application/usecases/queries"
	"fastfood/internal/core/domain/services"
	"fastfood/internal/core/ports"
	"fastfood/internal/generated/servers"
	"fastfood/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// CompositionRoot owns the long lived dependencies and builds handlers on
// demand.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	uowFactory *postgres.GormUnitOfWorkFactory
	engine     services.EstimateEngine
	recorder   *services.RevenueRecorder
	mediaStore ports.MediaStore
	amqp       *messaging.Connection
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	rates, err := config.ExchangeRates()
	if err != nil {
		return nil, err
	}
	recorder, err := services.NewRevenueRecorder(rates)
	if err != nil {
		return nil, fmt.Errorf("revenue recorder: %w", err)
	}

	mediaStore, err := media.NewFileStore(config.MediaRoot, logger)
	if err != nil {
		return nil, fmt.Errorf("media store: %w", err)
	}

	var (
		publisher ports.EventPublisher
		amqpConn  *messaging.Connection
	)
	if config.AMQPURL != "" {
		amqpConn, err = messaging.Dial(config.AMQPURL, config.AMQPExchange)
		if err != nil {
			return nil, err
		}
		publisher = messaging.NewAMQPPublisher(amqpConn.Channel(), config.AMQPExchange, logger)
	} else {
		publisher = messaging.NewLogPublisher(logger)
	}

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		logger:     logger,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher),
		engine:     services.NewEstimateEngine(),
		recorder:   recorder,
		mediaStore: mediaStore,
		amqp:       amqpConn,
	}, nil
}

// Close releases the broker connection, if any.
func (c *CompositionRoot) Close() error {
	return c.amqp.Close()
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) foodUoWFactory() commands.FoodUoWFactory {
	return FuncFoodUoWFactory(func() commands.FoodUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateFoodCommandHandler() commands.CreateFoodCommandHandler {
	return commands.NewCreateFoodCommandHandler(c.foodUoWFactory())
}

func (c *CompositionRoot) CreateUpdateFoodCommandHandler() commands.UpdateFoodCommandHandler {
	return commands.NewUpdateFoodCommandHandler(c.foodUoWFactory())
}

func (c *CompositionRoot) CreateDeleteFoodCommandHandler() commands.DeleteFoodCommandHandler {
	return commands.NewDeleteFoodCommandHandler(c.foodUoWFactory(), c.mediaStore)
}

func (c *CompositionRoot) CreateRateFoodCommandHandler() commands.RateFoodCommandHandler {
	return commands.NewRateFoodCommandHandler(c.foodUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.engine)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.engine)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkOrderInTransitCommandHandler() commands.MarkOrderInTransitCommandHandler {
	return commands.NewMarkOrderInTransitCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(c.fullUoWFactory(), c.recorder)
}

func (c *CompositionRoot) CreateGetFoodsQueryHandler() queries.GetFoodsQueryHandler {
	return queries.NewGetFoodsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryRecordsQueryHandler() queries.GetDeliveryRecordsQueryHandler {
	return queries.NewGetDeliveryRecordsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.Schedules{
			RevenueReport: c.config.ReportSchedule,
			OverdueOrders: c.config.OverdueSchedule,
		},
		queries.NewGetMonthlyRevenueQueryHandler(c.gormDB),
		queries.NewGetOverdueOrdersQueryHandler(c.gormDB),
		c.logger,
	)
}

// CreateHTTPServer wires every use case into the echo router.
func (c *CompositionRoot) CreateHTTPServer() (*echo.Echo, error) {
	server := httpin.NewServer(httpin.Handlers{
		CreateFood:         c.CreateCreateFoodCommandHandler(),
		UpdateFood:         c.CreateUpdateFoodCommandHandler(),
		DeleteFood:         c.CreateDeleteFoodCommandHandler(),
		RateFood:           c.CreateRateFoodCommandHandler(),
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		CancelOrder:        c.CreateCancelOrderCommandHandler(),
		AcceptOrder:        c.CreateAcceptOrderCommandHandler(),
		MarkOrderInTransit: c.CreateMarkOrderInTransitCommandHandler(),
		DeliverOrder:       c.CreateDeliverOrderCommandHandler(),
		GetFoods:           c.CreateGetFoodsQueryHandler(),
		GetOrders:          c.CreateGetOrdersQueryHandler(),
		GetDeliveryRecords: c.CreateGetDeliveryRecordsQueryHandler(),
	}, c.logger)

	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	return httpin.NewRouter(server, httpin.RouterConfig{
		Swagger:   swagger,
		JWTSecret: []byte(c.config.JWTSecret),
		Logger:    c.logger,
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncFoodUoWFactory func() commands.FoodUoW

func (f FuncFoodUoWFactory) Create() commands.FoodUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
