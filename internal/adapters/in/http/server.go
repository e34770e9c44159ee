// Package http is the inbound REST adapter. Server implements
// openapi.ServerInterface by translating wire types into commands and
// queries and mapping the error taxonomy to status codes.
package http

import (
	"context"
	"errors"
	"net/http"

	"freight/internal/adapters/in/http/openapi"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/delivery"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type (
	RegisterClientHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterClientCommand) (kernel.UUID, error)
	}
	DeleteClientHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteClientCommand) error
	}
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.CreateOrderResult, error)
	}
	DeleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
	}
	AdvanceDeliveryStatusHandler interface {
		Handle(ctx context.Context, cmd commands.AdvanceDeliveryStatusCommand) error
	}

	ListClientsHandler interface {
		Handle(ctx context.Context, query queries.ListClientsQuery) ([]queries.ClientResponse, error)
	}
	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderSummary, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderDetails, error)
	}
	ListDeliveriesHandler interface {
		Handle(ctx context.Context, query queries.ListDeliveriesQuery) ([]queries.DeliveryResponse, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	RegisterClient        RegisterClientHandler
	DeleteClient          DeleteClientHandler
	CreateOrder           CreateOrderHandler
	DeleteOrder           DeleteOrderHandler
	AdvanceDeliveryStatus AdvanceDeliveryStatusHandler

	ListClients    ListClientsHandler
	ListOrders     ListOrdersHandler
	GetOrder       GetOrderHandler
	ListDeliveries ListDeliveriesHandler
}

type Server struct {
	h Handlers
}

var _ openapi.ServerInterface = (*Server)(nil)

func NewServer(h Handlers) *Server {
	return &Server{h: h}
}

// RegisterClient handles POST /api/v1/clients.
func (s *Server) RegisterClient(ctx echo.Context) error {
	var body openapi.NewClient
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	phone := ""
	if body.Phone != nil {
		phone = *body.Phone
	}

	cmd, err := commands.NewRegisterClientCommand(body.Name, body.Cpf, body.Email, phone, body.PostalCode)
	if err != nil {
		return err
	}

	id, err := s.h.RegisterClient.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, openapi.Created{Id: id.Google()})
}

// ListClients handles GET /api/v1/clients.
func (s *Server) ListClients(ctx echo.Context) error {
	clients, err := s.h.ListClients.Handle(ctx.Request().Context(), queries.NewListClientsQuery())
	if err != nil {
		return err
	}

	response := make([]openapi.Client, len(clients))
	for i, c := range clients {
		response[i] = openapi.Client{
			Id:    c.ID.Google(),
			Name:  c.Name,
			Cpf:   c.CPF,
			Email: c.Email,
			Phone: c.Phone,
			Address: openapi.Address{
				PostalCode:   c.PostalCode,
				Street:       c.Street,
				Neighborhood: c.Neighborhood,
				Complement:   c.Complement,
				City:         c.City,
				State:        c.State,
			},
			CreatedAt: c.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// DeleteClient handles DELETE /api/v1/clients/{clientId}. A client still
// referenced by orders is a conflict here rather than a missing reference.
func (s *Server) DeleteClient(ctx echo.Context, clientId openapi_types.UUID) error {
	id, err := kernel.UUIDFromGoogle(clientId)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteClientCommand(id)
	if err != nil {
		return err
	}

	err = s.h.DeleteClient.Handle(ctx.Request().Context(), cmd)
	switch {
	case errors.Is(err, errs.ErrReferenceNotFound):
		return echo.NewHTTPError(http.StatusConflict, "Client still has orders")
	case err != nil:
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body openapi.NewOrder
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	clientID, err := kernel.UUIDFromGoogle(body.ClientId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(
		clientID,
		body.DistanceRate, body.Distance,
		body.WeightRate, body.Weight,
		body.DeliveryTypeId,
	)
	if err != nil {
		return err
	}

	result, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, openapi.OrderCreated{
		OrderId:    result.OrderID.Google(),
		DeliveryId: result.DeliveryID.Google(),
		Cost:       toCost(result.Cost),
	})
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params openapi.ListOrdersParams) error {
	query := queries.NewListOrdersQuery()
	if params.ClientId != nil {
		clientID, err := kernel.UUIDFromGoogle(*params.ClientId)
		if err != nil {
			return err
		}
		if query, err = queries.NewListOrdersOfClientQuery(clientID); err != nil {
			return err
		}
	}

	orders, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]openapi.OrderSummary, len(orders))
	for i, o := range orders {
		response[i] = toOrderSummary(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return err
	}
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return err
	}

	details, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := openapi.OrderDetails{OrderSummary: toOrderSummary(details.OrderSummary)}
	if details.Delivery != nil {
		d := toDelivery(*details.Delivery)
		response.Delivery = &d
	}

	return ctx.JSON(http.StatusOK, response)
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId}.
func (s *Server) DeleteOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return err
	}

	if err = s.h.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListDeliveries handles GET /api/v1/deliveries.
func (s *Server) ListDeliveries(ctx echo.Context) error {
	deliveries, err := s.h.ListDeliveries.Handle(ctx.Request().Context(), queries.NewListDeliveriesQuery())
	if err != nil {
		return err
	}

	response := make([]openapi.Delivery, len(deliveries))
	for i, d := range deliveries {
		response[i] = toDelivery(d)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AdvanceDeliveryStatus handles PATCH /api/v1/deliveries/{deliveryId}/status.
func (s *Server) AdvanceDeliveryStatus(ctx echo.Context, deliveryId openapi_types.UUID) error {
	var body openapi.StatusChange
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	id, err := kernel.UUIDFromGoogle(deliveryId)
	if err != nil {
		return err
	}
	target, err := delivery.ParseStatus(body.Status)
	if err != nil {
		return err
	}
	cmd, err := commands.NewAdvanceDeliveryStatusCommand(id, target)
	if err != nil {
		return err
	}

	if err = s.h.AdvanceDeliveryStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func bindAndValidate(ctx echo.Context, body any) error {
	if err := ctx.Bind(body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	return ctx.Validate(body)
}
