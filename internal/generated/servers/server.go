package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /api/v1/deliveries)
	ListDeliveries(ctx echo.Context, params ListDeliveriesParams) error
	// (GET /api/v1/foods)
	ListFoods(ctx echo.Context) error
	// (POST /api/v1/foods)
	CreateFood(ctx echo.Context) error
	// (DELETE /api/v1/foods/{foodId})
	DeleteFood(ctx echo.Context, foodId FoodId) error
	// (PUT /api/v1/foods/{foodId})
	UpdateFood(ctx echo.Context, foodId FoodId) error
	// (PUT /api/v1/foods/{foodId}/rating)
	RateFood(ctx echo.Context, foodId FoodId) error
	// (GET /api/v1/orders)
	ListMyOrders(ctx echo.Context) error
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// (DELETE /api/v1/orders/{orderId})
	CancelOrder(ctx echo.Context, orderId OrderId) error
	// (GET /api/v1/staff/orders)
	ListAssignedOrders(ctx echo.Context) error
	// (GET /api/v1/staff/orders/unassigned)
	ListUnassignedOrders(ctx echo.Context) error
	// (PUT /api/v1/staff/orders/{orderId}/accept)
	AcceptOrder(ctx echo.Context, orderId OrderId) error
	// (PUT /api/v1/staff/orders/{orderId}/deliver)
	DeliverOrder(ctx echo.Context, orderId OrderId) error
	// (PUT /api/v1/staff/orders/{orderId}/in-transit)
	MarkOrderInTransit(ctx echo.Context, orderId OrderId) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListDeliveries converts echo context to params.
func (w *ServerInterfaceWrapper) ListDeliveries(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	var params ListDeliveriesParams

	err = runtime.BindQueryParameter("form", true, true, "year", ctx.QueryParams(), &params.Year)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter year: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, true, "month", ctx.QueryParams(), &params.Month)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter month: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "staffId", ctx.QueryParams(), &params.StaffId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter staffId: %s", err))
	}

	return w.Handler.ListDeliveries(ctx, params)
}

// ListFoods converts echo context to params.
func (w *ServerInterfaceWrapper) ListFoods(ctx echo.Context) error {
	return w.Handler.ListFoods(ctx)
}

// CreateFood converts echo context to params.
func (w *ServerInterfaceWrapper) CreateFood(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.CreateFood(ctx)
}

// DeleteFood converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteFood(ctx echo.Context) error {
	foodId, err := bindUUIDPathParameter(ctx, "foodId")
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.DeleteFood(ctx, foodId)
}

// UpdateFood converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateFood(ctx echo.Context) error {
	foodId, err := bindUUIDPathParameter(ctx, "foodId")
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.UpdateFood(ctx, foodId)
}

// RateFood converts echo context to params.
func (w *ServerInterfaceWrapper) RateFood(ctx echo.Context) error {
	foodId, err := bindUUIDPathParameter(ctx, "foodId")
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.RateFood(ctx, foodId)
}

// ListMyOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListMyOrders(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.ListMyOrders(ctx)
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.CreateOrder(ctx)
}

// CancelOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	orderId, err := bindUUIDPathParameter(ctx, "orderId")
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.CancelOrder(ctx, orderId)
}

// ListAssignedOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListAssignedOrders(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.ListAssignedOrders(ctx)
}

// ListUnassignedOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListUnassignedOrders(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.ListUnassignedOrders(ctx)
}

// AcceptOrder converts echo context to params.
func (w *ServerInterfaceWrapper) AcceptOrder(ctx echo.Context) error {
	orderId, err := bindUUIDPathParameter(ctx, "orderId")
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.AcceptOrder(ctx, orderId)
}

// DeliverOrder converts echo context to params.
func (w *ServerInterfaceWrapper) DeliverOrder(ctx echo.Context) error {
	orderId, err := bindUUIDPathParameter(ctx, "orderId")
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.DeliverOrder(ctx, orderId)
}

// MarkOrderInTransit converts echo context to params.
func (w *ServerInterfaceWrapper) MarkOrderInTransit(ctx echo.Context) error {
	orderId, err := bindUUIDPathParameter(ctx, "orderId")
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.MarkOrderInTransit(ctx, orderId)
}

func bindUUIDPathParameter(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var value openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &value,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return value, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return value, nil
}

// EchoRouter is the subset of *echo.Echo and *echo.Group used for registration.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/deliveries", wrapper.ListDeliveries)
	router.GET(baseURL+"/api/v1/foods", wrapper.ListFoods)
	router.POST(baseURL+"/api/v1/foods", wrapper.CreateFood)
	router.DELETE(baseURL+"/api/v1/foods/:foodId", wrapper.DeleteFood)
	router.PUT(baseURL+"/api/v1/foods/:foodId", wrapper.UpdateFood)
	router.PUT(baseURL+"/api/v1/foods/:foodId/rating", wrapper.RateFood)
	router.GET(baseURL+"/api/v1/orders", wrapper.ListMyOrders)
	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.DELETE(baseURL+"/api/v1/orders/:orderId", wrapper.CancelOrder)
	router.GET(baseURL+"/api/v1/staff/orders", wrapper.ListAssignedOrders)
	router.GET(baseURL+"/api/v1/staff/orders/unassigned", wrapper.ListUnassignedOrders)
	router.PUT(baseURL+"/api/v1/staff/orders/:orderId/accept", wrapper.AcceptOrder)
	router.PUT(baseURL+"/api/v1/staff/orders/:orderId/deliver", wrapper.DeliverOrder)
	router.PUT(baseURL+"/api/v1/staff/orders/:orderId/in-transit", wrapper.MarkOrderInTransit)
}
