// Package http exposes the ordering use cases over a JSON HTTP API built on echo.
package http

import (
	"context"
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.CreateOrderResult, error)
	}
	PayOrderHandler interface {
		Handle(ctx context.Context, cmd commands.PayOrderCommand) error
	}
	ApproveOrderHandler interface {
		Handle(ctx context.Context, cmd commands.ApproveOrderCommand) error
	}
	CancelOrderPaymentHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderPaymentCommand) error
	}
	CancelOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) error
	}
	TrackOrderHandler interface {
		Handle(ctx context.Context, query queries.TrackOrderQuery) (queries.TrackOrderQueryResponse, error)
	}
)

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	CreateOrder        CreateOrderHandler
	PayOrder           PayOrderHandler
	ApproveOrder       ApproveOrderHandler
	CancelOrderPayment CancelOrderPaymentHandler
	CancelOrder        CancelOrderHandler
	TrackOrder         TrackOrderHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	logger   *zap.Logger
}

func NewServer(handlers Handlers, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		handlers: handlers,
		logger:   logger.Named("http"),
	}
}

// NewEcho builds the echo instance with every route, the request validator, metrics and
// the swagger UI.
func NewEcho(ctx context.Context, s *Server) (*echo.Echo, error) {
	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}
	if err = registerSwagger(doc); err != nil {
		return nil, err
	}
	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.HandleError

	e.Use(middleware.Recover())
	e.Use(metrics.Middleware())

	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1", validator)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:trackingId", s.TrackOrder)
	api.POST("/orders/:orderId/pay", s.PayOrder)
	api.POST("/orders/:orderId/approve", s.ApproveOrder)
	api.POST("/orders/:orderId/cancel-payment", s.CancelOrderPayment)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)

	return e, nil
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(c echo.Context) error {
	var body NewOrder
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body").SetInternal(err)
	}

	cmd, err := body.toCommand()
	if err != nil {
		return err
	}

	result, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, OrderCreated{
		OrderID:    result.OrderID.String(),
		TrackingID: result.TrackingID.String(),
	})
}

// TrackOrder handles GET /api/v1/orders/:trackingId.
func (s *Server) TrackOrder(c echo.Context) error {
	trackingID, err := pathUUID(c, "trackingId")
	if err != nil {
		return err
	}

	query, err := queries.NewTrackOrderQuery(trackingID)
	if err != nil {
		return err
	}

	result, err := s.handlers.TrackOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, OrderStatus{
		TrackingID:      result.TrackingID.String(),
		Status:          result.Status,
		FailureMessages: result.FailureMessages,
	})
}

// PayOrder handles POST /api/v1/orders/:orderId/pay.
func (s *Server) PayOrder(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewPayOrderCommand(orderID)
	if err != nil {
		return err
	}
	if err = s.handlers.PayOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// ApproveOrder handles POST /api/v1/orders/:orderId/approve.
func (s *Server) ApproveOrder(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewApproveOrderCommand(orderID)
	if err != nil {
		return err
	}
	if err = s.handlers.ApproveOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// CancelOrderPayment handles POST /api/v1/orders/:orderId/cancel-payment.
func (s *Server) CancelOrderPayment(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return err
	}
	body, err := bindCancellation(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelOrderPaymentCommand(orderID, body.FailureMessages)
	if err != nil {
		return err
	}
	if err = s.handlers.CancelOrderPayment.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel.
func (s *Server) CancelOrder(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return err
	}
	body, err := bindCancellation(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, body.FailureMessages)
	if err != nil {
		return err
	}
	if err = s.handlers.CancelOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// pathUUID binds a required path parameter in simple style, then parses it.
func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	var raw string
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusBadRequest, "Invalid format for parameter "+name).SetInternal(err)
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusBadRequest, "Invalid format for parameter "+name).SetInternal(err)
	}
	return id, nil
}

// bindCancellation accepts an empty body, which leaves the failure messages nil.
func bindCancellation(c echo.Context) (Cancellation, error) {
	var body Cancellation
	if c.Request().ContentLength == 0 {
		return body, nil
	}
	if err := c.Bind(&body); err != nil {
		return Cancellation{}, echo.NewHTTPError(http.StatusBadRequest, "Invalid request body").SetInternal(err)
	}
	return body, nil
}
