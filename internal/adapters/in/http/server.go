// Package http exposes the order lifecycle over a JSON API. Every route
// resolves the acting user from the X-Actor-ID header and consults the
// authorization gate before touching a use case; denials are 403s.
package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"commerce/internal/core/application/access"
	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/ports"
	"commerce/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderHandler       commands.UpdateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler

	// Query handlers
	getOrderTotalsHandler    queries.GetOrderTotalsQueryHandler
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler

	gate   *access.Gate
	orders ports.OrderRepository
}

// NewServer creates a new HTTP server with the required command and query
// handlers. The order repository serves the reads the gate needs before a
// permission decision.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrderTotalsHandler queries.GetOrderTotalsQueryHandler,
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
	gate *access.Gate,
	orders ports.OrderRepository,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderHandler:       updateOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		deleteOrderHandler:       deleteOrderHandler,
		getOrderTotalsHandler:    getOrderTotalsHandler,
		getOrdersByStatusHandler: getOrdersByStatusHandler,
		gate:                     gate,
		orders:                   orders,
	}
}

// RegisterRoutes wires the order API onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Use(ActorMiddleware())

	e.POST("/api/v1/orders", s.CreateOrder)
	e.GET("/api/v1/orders", s.GetOrdersByStatus)
	e.GET("/api/v1/orders/:id", s.GetOrder)
	e.PUT("/api/v1/orders/:id", s.UpdateOrder)
	e.PUT("/api/v1/orders/:id/status", s.ChangeOrderStatus)
	e.DELETE("/api/v1/orders/:id", s.DeleteOrder)
}

// CreateOrder handles POST /api/v1/orders - creates a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	if !s.gate.CanCreate(reqCtx, nil) {
		return forbidden(ctx)
	}

	var req OrderWriteRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := s.customerFrom(reqCtx, req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer_id: "+err.Error())
	}

	items, err := itemsFromRequest(req.Items)
	if err != nil {
		return badRequest(ctx, "Invalid order items: "+err.Error())
	}

	discount, postageCost, postageTax, err := moneyFromRequest(req)
	if err != nil {
		return badRequest(ctx, "Invalid amount: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(
		customerID, items, discount, postageCost, postageTax,
		req.BillingAddress, req.DeliveryAddress,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	id, err := s.createOrderHandler.Handle(reqCtx, cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderCreatedResponse{ID: id})
}

// GetOrder handles GET /api/v1/orders/:id - returns the order's valuation.
func (s *Server) GetOrder(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, o, err := s.loadOrder(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	if !s.gate.CanView(reqCtx, nil, o) {
		return forbidden(ctx)
	}

	query, err := queries.NewGetOrderTotalsQuery(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	totals, err := s.getOrderTotalsHandler.Handle(reqCtx, query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderTotalsResponse{
		ID:            totals.OrderID,
		Number:        totals.Number,
		Status:        totals.Status,
		Subtotal:      totals.Subtotal.String(),
		Postage:       totals.Postage.String(),
		Discount:      totals.Discount.String(),
		TaxTotal:      totals.TaxTotal.String(),
		Total:         totals.Total.String(),
		ItemSummaries: totals.ItemSummaries,
	})
}

// GetOrdersByStatus handles GET /api/v1/orders?status=... - the status worklist.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	if !s.gate.CanViewAll(reqCtx, nil) {
		return forbidden(ctx)
	}

	query, err := queries.NewGetOrdersByStatusQuery(order.Status(ctx.QueryParam("status")))
	if err != nil {
		return badRequest(ctx, "Invalid status filter: "+err.Error())
	}

	rows, err := s.getOrdersByStatusHandler.Handle(reqCtx, query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderSummaryResponse, len(rows))
	for i, row := range rows {
		response[i] = OrderSummaryResponse{
			ID:         row.OrderID,
			Number:     row.Number,
			Status:     row.Status,
			CustomerID: row.CustomerID,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrder handles PUT /api/v1/orders/:id - replaces the order's contents.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, o, err := s.loadOrder(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	if !s.gate.CanEdit(reqCtx, nil, o) {
		return forbidden(ctx)
	}

	var req OrderWriteRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items, err := itemsFromRequest(req.Items)
	if err != nil {
		return badRequest(ctx, "Invalid order items: "+err.Error())
	}

	discount, postageCost, postageTax, err := moneyFromRequest(req)
	if err != nil {
		return badRequest(ctx, "Invalid amount: "+err.Error())
	}

	cmd, err := commands.NewUpdateOrderCommand(
		id, items, discount, postageCost, postageTax,
		req.BillingAddress, req.DeliveryAddress,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.updateOrderHandler.Handle(reqCtx, cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeOrderStatus handles PUT /api/v1/orders/:id/status - moves the order to
// a new lifecycle status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, o, err := s.loadOrder(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	if !s.gate.CanChangeStatus(reqCtx, nil, o) {
		return forbidden(ctx)
	}

	var req ChangeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, order.Status(req.Status))
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	if err = s.changeOrderStatusHandler.Handle(reqCtx, cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:id - removes the order and its
// line items.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, o, err := s.loadOrder(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	if !s.gate.CanDelete(reqCtx, nil, o) {
		return forbidden(ctx)
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.deleteOrderHandler.Handle(reqCtx, cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// loadOrder reads the :id path parameter and fetches the aggregate the gate
// decides against.
func (s *Server) loadOrder(ctx echo.Context) (int64, *order.Order, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, nil, errs.NewValueIsInvalidError("id")
	}

	o, err := s.orders.Get(ctx.Request().Context(), id)
	if err != nil {
		return 0, nil, err
	}

	return id, o, nil
}

// customerFrom resolves the order's customer: the explicit customer_id when
// given, otherwise the session actor. Guests place orders with no customer.
func (s *Server) customerFrom(reqCtx context.Context, raw string) (*kernel.ActorID, error) {
	if raw != "" {
		actorID, err := kernel.ActorIDFromString(raw)
		if err != nil {
			return nil, err
		}
		return &actorID, nil
	}
	return ContextActorResolver{}.CurrentActorID(reqCtx), nil
}

func itemsFromRequest(reqItems []LineItemRequest) ([]order.LineItem, error) {
	items := make([]order.LineItem, 0, len(reqItems))
	for _, reqItem := range reqItems {
		price, err := parseAmount(reqItem.Price)
		if err != nil {
			return nil, err
		}
		taxRate, err := parseAmount(reqItem.TaxRate)
		if err != nil {
			return nil, err
		}

		item, err := order.NewLineItem(reqItem.Title, price, reqItem.Quantity, taxRate)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func moneyFromRequest(req OrderWriteRequest) (discount, postageCost, postageTax decimal.Decimal, err error) {
	if discount, err = parseAmount(req.DiscountAmount); err != nil {
		return
	}
	if postageCost, err = parseAmount(req.PostageCost); err != nil {
		return
	}
	postageTax, err = parseAmount(req.PostageTax)
	return
}

// parseAmount parses a decimal string field, treating absence as zero.
func parseAmount(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(raw)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

func forbidden(ctx echo.Context) error {
	return ctx.JSON(http.StatusForbidden, Error{Code: http.StatusForbidden, Message: "Forbidden"})
}

// writeError maps application errors onto HTTP statuses: validation failures
// are 400s, missing objects 404s, everything else a 500.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{Code: http.StatusNotFound, Message: err.Error()})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: err.Error()})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
