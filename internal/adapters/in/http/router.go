package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"fastfood/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// RouterConfig carries what NewRouter needs besides the server itself.
type RouterConfig struct {
	Swagger   *openapi3.T
	JWTSecret []byte
	Logger    *slog.Logger
}

// NewRouter builds the echo instance serving the API, its documentation under
// /swagger/ and a /health probe.
func NewRouter(server *Server, cfg RouterConfig) (*echo.Echo, error) {
	validator, err := RequestValidator(cfg.Swagger)
	if err != nil {
		return nil, err
	}
	if err := registerSwaggerDoc(cfg.Swagger); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(cfg.Logger)

	e.Use(middleware.Recover())
	e.Use(requestLogger(cfg.Logger))

	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("", Authenticate(cfg.JWTSecret), validator)
	servers.RegisterHandlers(api, server)

	return e, nil
}

// RequestValidator checks requests against the OpenAPI document before they
// reach a handler. Routes the document does not describe pass through.
// Security requirements are enforced by Authenticate, not here.
func RequestValidator(swagger *openapi3.T) (echo.MiddlewareFunc, error) {
	doc := *swagger
	doc.Servers = nil
	router, err := legacy.NewRouter(&doc)
	if err != nil {
		return nil, fmt.Errorf("building openapi router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return ctx.JSON(http.StatusBadRequest, servers.Error{
					Code:    http.StatusBadRequest,
					Message: err.Error(),
				})
			}
			return next(ctx)
		}
	}, nil
}

type swaggerDoc struct {
	doc string
}

func (d swaggerDoc) ReadDoc() string {
	return d.doc
}

// registerSwaggerDoc publishes the OpenAPI document to the swag registry the
// /swagger/ UI reads doc.json from. The registry is process wide, so only the
// first document is kept.
func registerSwaggerDoc(swagger *openapi3.T) error {
	if swag.GetSwagger(swag.Name) != nil {
		return nil
	}
	raw, err := swagger.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encoding openapi document: %w", err)
	}
	swag.Register(swag.Name, swaggerDoc{doc: string(raw)})
	return nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(ctx echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(ctx.Request().Context(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	})
}
