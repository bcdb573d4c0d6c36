// Package http exposes the order and delivery lifecycle over an echo server.
// Handlers translate JSON requests into commands and queries, and map domain
// error kinds onto HTTP statuses.
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"boozebuddies/internal/core/application/usecases/commands"
	"boozebuddies/internal/core/application/usecases/queries"
	"boozebuddies/internal/core/domain/model/delivery"
	"boozebuddies/internal/core/domain/model/kernel"
	"boozebuddies/internal/core/domain/model/order"
	"boozebuddies/internal/core/domain/model/payment"
	"boozebuddies/internal/metrics"
	"boozebuddies/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	slogecho "github.com/samber/slog-echo"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler        commands.CreateOrderCommandHandler
	updateOrderStatusHandler  commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler        commands.CancelOrderCommandHandler
	assignDriverHandler       commands.AssignDriverCommandHandler
	updateDeliveryHandler     commands.UpdateDeliveryStatusCommandHandler
	ageVerificationHandler    commands.UpdateAgeVerificationCommandHandler
	locationHandler           commands.UpdateDeliveryLocationCommandHandler
	cancelDeliveryHandler     commands.CancelDeliveryCommandHandler
	ordersWithinRadiusHandler queries.GetOrdersWithinRadiusQueryHandler
	activeDeliveriesHandler   queries.GetActiveDeliveriesQueryHandler
	totalRevenueHandler       queries.GetTotalRevenueQueryHandler
}

// NewServer creates an HTTP server over the given command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	updateDeliveryHandler commands.UpdateDeliveryStatusCommandHandler,
	ageVerificationHandler commands.UpdateAgeVerificationCommandHandler,
	locationHandler commands.UpdateDeliveryLocationCommandHandler,
	cancelDeliveryHandler commands.CancelDeliveryCommandHandler,
	ordersWithinRadiusHandler queries.GetOrdersWithinRadiusQueryHandler,
	activeDeliveriesHandler queries.GetActiveDeliveriesQueryHandler,
	totalRevenueHandler queries.GetTotalRevenueQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		updateOrderStatusHandler:  updateOrderStatusHandler,
		cancelOrderHandler:        cancelOrderHandler,
		assignDriverHandler:       assignDriverHandler,
		updateDeliveryHandler:     updateDeliveryHandler,
		ageVerificationHandler:    ageVerificationHandler,
		locationHandler:           locationHandler,
		cancelDeliveryHandler:     cancelDeliveryHandler,
		ordersWithinRadiusHandler: ordersWithinRadiusHandler,
		activeDeliveriesHandler:   activeDeliveriesHandler,
		totalRevenueHandler:       totalRevenueHandler,
	}
}

// NewEcho builds the echo instance with middleware, routes, health, and
// metrics endpoints.
func NewEcho(server *Server, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(slogecho.New(logger))
	e.Use(middleware.Recover())

	server.RegisterRoutes(e)
	return e
}

// RegisterRoutes binds every endpoint onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/orders", s.CreateOrder)
	v1.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	v1.POST("/orders/:id/cancel", s.CancelOrder)
	v1.POST("/orders/:id/assign", s.AssignDriver)
	v1.GET("/orders/nearby", s.GetOrdersNearby)

	v1.PATCH("/deliveries/:id/status", s.UpdateDeliveryStatus)
	v1.POST("/deliveries/:id/age-verification", s.UpdateAgeVerification)
	v1.PUT("/deliveries/:id/location", s.UpdateDeliveryLocation)
	v1.POST("/deliveries/:id/cancel", s.CancelDelivery)
	v1.GET("/deliveries/active", s.GetActiveDeliveries)

	v1.GET("/payments/revenue", s.GetTotalRevenue)

	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return badRequest(ctx, "invalid user_id")
	}
	merchantID, err := kernel.UUIDFromString(req.MerchantID)
	if err != nil {
		return badRequest(ctx, "invalid merchant_id")
	}

	items := make([]commands.ItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		productID, itemErr := kernel.UUIDFromString(item.ProductID)
		if itemErr != nil {
			return badRequest(ctx, "invalid product_id")
		}
		items = append(items, commands.ItemInput{
			ProductID: productID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), userID, merchantID,
		req.DeliveryAddress, req.PaymentMethod, items, req.Total,
	)
	if err != nil {
		return domainError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	metrics.OrdersCreatedTotal.Inc()
	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req StatusChangeRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, req.Status)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	metrics.OrdersCancelledTotal.Inc()
	return ctx.NoContent(http.StatusNoContent)
}

// AssignDriver handles POST /api/v1/orders/:id/assign. It binds a specific
// driver to the order, bypassing the scheduled dispatch pass.
func (s *Server) AssignDriver(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req AssignDriverRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return badRequest(ctx, "invalid driver_id")
	}

	cmd, err := commands.NewAssignDriverCommand(orderID, driverID)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.assignDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrdersNearby handles GET /api/v1/orders/nearby.
func (s *Server) GetOrdersNearby(ctx echo.Context) error {
	var params struct {
		Lat      float64 `query:"lat"`
		Lon      float64 `query:"lon"`
		RadiusKm float64 `query:"radius_km"`
	}
	if err := ctx.Bind(&params); err != nil {
		return badRequest(ctx, "invalid query parameters")
	}

	query, err := queries.NewGetOrdersWithinRadiusQuery(params.Lat, params.Lon, params.RadiusKm)
	if err != nil {
		return domainError(ctx, err)
	}

	rows, err := s.ordersWithinRadiusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, nearbyToResponse(rows))
}

// UpdateDeliveryStatus handles PATCH /api/v1/deliveries/:id/status.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid delivery id")
	}

	var req StatusChangeRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(deliveryID, req.Status)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.updateDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	if target, parseErr := delivery.ParseStatus(req.Status); parseErr == nil && target == delivery.StatusDelivered {
		metrics.DeliveriesCompletedTotal.Inc()
	}
	return ctx.NoContent(http.StatusNoContent)
}

// UpdateAgeVerification handles POST /api/v1/deliveries/:id/age-verification.
func (s *Server) UpdateAgeVerification(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid delivery id")
	}

	var req AgeVerificationRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateAgeVerificationCommand(deliveryID, req.Verified, req.IDType, req.IDNumber)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.ageVerificationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateDeliveryLocation handles PUT /api/v1/deliveries/:id/location.
func (s *Server) UpdateDeliveryLocation(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid delivery id")
	}

	var req LocationRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateDeliveryLocationCommand(deliveryID, req.Latitude, req.Longitude)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.locationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelDelivery handles POST /api/v1/deliveries/:id/cancel.
func (s *Server) CancelDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid delivery id")
	}

	var req CancelDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCancelDeliveryCommand(deliveryID, req.Reason)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.cancelDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetActiveDeliveries handles GET /api/v1/deliveries/active.
func (s *Server) GetActiveDeliveries(ctx echo.Context) error {
	rows, err := s.activeDeliveriesHandler.Handle(ctx.Request().Context(), queries.NewGetActiveDeliveriesQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, activeDeliveriesToResponse(rows))
}

// GetTotalRevenue handles GET /api/v1/payments/revenue.
func (s *Server) GetTotalRevenue(ctx echo.Context) error {
	from, err := time.Parse(time.RFC3339, ctx.QueryParam("from"))
	if err != nil {
		return badRequest(ctx, "invalid from timestamp, want RFC3339")
	}
	to, err := time.Parse(time.RFC3339, ctx.QueryParam("to"))
	if err != nil {
		return badRequest(ctx, "invalid to timestamp, want RFC3339")
	}

	query, err := queries.NewGetTotalRevenueQuery(from, to)
	if err != nil {
		return domainError(ctx, err)
	}

	resp, err := s.totalRevenueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RevenueResponse{
		Total: resp.Total,
		From:  resp.From,
		To:    resp.To,
	})
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps domain error kinds onto HTTP statuses.
func domainError(ctx echo.Context, err error) error {
	var (
		transitionErr *order.InvalidTransitionError
		cancelErr     *order.CancellationNotAllowedError
		terminalErr   *delivery.TerminalStateError
		duplicateErr  *payment.AlreadyAuthorizedError
	)

	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, order.ErrAgeVerificationRequired):
		code = http.StatusUnprocessableEntity
	case errors.As(err, &transitionErr),
		errors.As(err, &cancelErr),
		errors.As(err, &terminalErr),
		errors.As(err, &duplicateErr),
		errors.Is(err, errs.ErrVersionIsInvalid):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
