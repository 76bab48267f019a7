package http

import (
	"context"
	"log/slog"
	"net/http"

	"fastfood/internal/core/application/usecases/commands"
	"fastfood/internal/core/application/usecases/queries"
	"fastfood/internal/core/domain/model/delivery"
	"fastfood/internal/core/domain/model/food"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CommandHandler executes a command that yields no value.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// ResultHandler executes a command or query that yields a value.
type ResultHandler[I any, R any] interface {
	Handle(ctx context.Context, in I) (R, error)
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateFood CommandHandler[commands.CreateFoodCommand]
	UpdateFood CommandHandler[commands.UpdateFoodCommand]
	DeleteFood CommandHandler[commands.DeleteFoodCommand]
	RateFood   ResultHandler[commands.RateFoodCommand, food.Score]

	CreateOrder        ResultHandler[commands.CreateOrderCommand, commands.CreateOrderResult]
	CancelOrder        CommandHandler[commands.CancelOrderCommand]
	AcceptOrder        CommandHandler[commands.AcceptOrderCommand]
	MarkOrderInTransit CommandHandler[commands.MarkOrderInTransitCommand]
	DeliverOrder       ResultHandler[commands.DeliverOrderCommand, *delivery.Record]

	GetFoods           ResultHandler[queries.GetFoodsQuery, []queries.FoodView]
	GetOrders          ResultHandler[queries.GetOrdersQuery, []queries.OrderView]
	GetDeliveryRecords ResultHandler[queries.GetDeliveryRecordsQuery, queries.DeliveryReport]
}

var _ servers.ServerInterface = (*Server)(nil)

// Server implements servers.ServerInterface on top of the application use cases.
// Every handler that acts on behalf of someone reads the actor placed in the
// request context by Authenticate.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http"),
	}
}

// ListFoods handles GET /api/v1/foods. The menu is public.
func (s *Server) ListFoods(ctx echo.Context) error {
	views, err := s.handlers.GetFoods.Handle(ctx.Request().Context(), queries.NewGetFoodsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Food, len(views))
	for i, view := range views {
		response[i] = toFood(view)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateFood handles POST /api/v1/foods.
func (s *Server) CreateFood(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.CreateFoodJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	details, err := toFoodDetails(body.Name, body.Description, body.Price, body.Currency, body.Pickup)
	if err != nil {
		return s.fail(ctx, err)
	}
	var media []string
	if body.Media != nil {
		media = *body.Media
	}

	foodID := kernel.NewUUID()
	cmd, err := commands.NewCreateFoodCommand(actor, foodID, details, media)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.CreateFood.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedFood{Id: foodID.Bytes()})
}

// UpdateFood handles PUT /api/v1/foods/{foodId}.
func (s *Server) UpdateFood(ctx echo.Context, foodId servers.FoodId) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	id, err := fromAPIUUID(foodId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.UpdateFoodJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}
	details, err := toFoodDetails(body.Name, body.Description, body.Price, body.Currency, body.Pickup)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateFoodCommand(actor, id, details)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.UpdateFood.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeleteFood handles DELETE /api/v1/foods/{foodId}.
func (s *Server) DeleteFood(ctx echo.Context, foodId servers.FoodId) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	id, err := fromAPIUUID(foodId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteFoodCommand(actor, id)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.DeleteFood.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RateFood handles PUT /api/v1/foods/{foodId}/rating and answers with the new score.
func (s *Server) RateFood(ctx echo.Context, foodId servers.FoodId) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	id, err := fromAPIUUID(foodId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.RateFoodJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRateFoodCommand(actor, id, body.Rate)
	if err != nil {
		return s.fail(ctx, err)
	}
	score, err := s.handlers.RateFood.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Score{
		AverageRating: score.Average,
		RatedUsers:    score.Count,
	})
}

// ListMyOrders handles GET /api/v1/orders.
func (s *Server) ListMyOrders(ctx echo.Context) error {
	return s.listOrders(ctx, queries.ScopeMine)
}

// CreateOrder handles POST /api/v1/orders and answers with the delivery estimate.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	foodID, err := fromAPIUUID(body.FoodId)
	if err != nil {
		return s.fail(ctx, err)
	}
	destination, err := toLocation(body.Destination)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(actor, kernel.NewUUID(), foodID, body.Quantity, destination)
	if err != nil {
		return s.fail(ctx, err)
	}
	result, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedOrder{
		Id:              result.OrderID.Bytes(),
		EstimateMinutes: result.EstimateMinutes,
	})
}

// CancelOrder handles DELETE /api/v1/orders/{orderId}.
func (s *Server) CancelOrder(ctx echo.Context, orderId servers.OrderId) error {
	return s.transition(ctx, orderId, func(actor kernel.Actor, id kernel.UUID) error {
		cmd, err := commands.NewCancelOrderCommand(actor, id)
		if err != nil {
			return err
		}
		return s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd)
	})
}

// ListAssignedOrders handles GET /api/v1/staff/orders.
func (s *Server) ListAssignedOrders(ctx echo.Context) error {
	return s.listOrders(ctx, queries.ScopeAssignedToMe)
}

// ListUnassignedOrders handles GET /api/v1/staff/orders/unassigned.
func (s *Server) ListUnassignedOrders(ctx echo.Context) error {
	return s.listOrders(ctx, queries.ScopeUnassigned)
}

// AcceptOrder handles PUT /api/v1/staff/orders/{orderId}/accept.
func (s *Server) AcceptOrder(ctx echo.Context, orderId servers.OrderId) error {
	return s.transition(ctx, orderId, func(actor kernel.Actor, id kernel.UUID) error {
		cmd, err := commands.NewAcceptOrderCommand(actor, id)
		if err != nil {
			return err
		}
		return s.handlers.AcceptOrder.Handle(ctx.Request().Context(), cmd)
	})
}

// MarkOrderInTransit handles PUT /api/v1/staff/orders/{orderId}/in-transit.
func (s *Server) MarkOrderInTransit(ctx echo.Context, orderId servers.OrderId) error {
	return s.transition(ctx, orderId, func(actor kernel.Actor, id kernel.UUID) error {
		cmd, err := commands.NewMarkOrderInTransitCommand(actor, id)
		if err != nil {
			return err
		}
		return s.handlers.MarkOrderInTransit.Handle(ctx.Request().Context(), cmd)
	})
}

// DeliverOrder handles PUT /api/v1/staff/orders/{orderId}/deliver and answers
// with the delivery record written for the order.
func (s *Server) DeliverOrder(ctx echo.Context, orderId servers.OrderId) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	id, err := fromAPIUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeliverOrderCommand(actor, id)
	if err != nil {
		return s.fail(ctx, err)
	}
	record, err := s.handlers.DeliverOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.DeliveryRecord{
		Id:              record.ID().Bytes(),
		StaffId:         record.StaffID().Bytes(),
		FoodId:          record.FoodID().Bytes(),
		Quantity:        record.Quantity(),
		TotalIncome:     record.TotalIncome(),
		TotalIncomeText: delivery.FormatIncome(record.TotalIncome()),
		DeliveredAt:     record.DeliveredAt(),
	})
}

// ListDeliveries handles GET /api/v1/deliveries.
func (s *Server) ListDeliveries(ctx echo.Context, params servers.ListDeliveriesParams) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	period, err := queries.NewPeriod(params.Year, params.Month)
	if err != nil {
		return s.fail(ctx, err)
	}
	var staffID *kernel.UUID
	if params.StaffId != nil {
		id, err := fromAPIUUID(*params.StaffId)
		if err != nil {
			return s.fail(ctx, err)
		}
		staffID = &id
	}

	query, err := queries.NewGetDeliveryRecordsQuery(actor, period, staffID)
	if err != nil {
		return s.fail(ctx, err)
	}
	report, err := s.handlers.GetDeliveryRecords.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryReport(report))
}

func (s *Server) listOrders(ctx echo.Context, scope queries.OrderScope) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrdersQuery(actor, scope)
	if err != nil {
		return s.fail(ctx, err)
	}
	views, err := s.handlers.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Order, len(views))
	for i, view := range views {
		response[i] = toOrder(view)
	}
	return ctx.JSON(http.StatusOK, response)
}

// transition runs a status change that answers 204 on success.
func (s *Server) transition(ctx echo.Context, orderID servers.OrderId, run func(kernel.Actor, kernel.UUID) error) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	id, err := fromAPIUUID(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := run(actor, id); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
