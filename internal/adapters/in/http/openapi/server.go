package openapi

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface is implemented by the HTTP adapter, one method per operation.
type ServerInterface interface {
	// (GET /api/v1/clients)
	ListClients(ctx echo.Context) error
	// (POST /api/v1/clients)
	RegisterClient(ctx echo.Context) error
	// (DELETE /api/v1/clients/{clientId})
	DeleteClient(ctx echo.Context, clientId openapi_types.UUID) error
	// (GET /api/v1/orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderId openapi_types.UUID) error
	// (DELETE /api/v1/orders/{orderId})
	DeleteOrder(ctx echo.Context, orderId openapi_types.UUID) error
	// (GET /api/v1/deliveries)
	ListDeliveries(ctx echo.Context) error
	// (PATCH /api/v1/deliveries/{deliveryId}/status)
	AdvanceDeliveryStatus(ctx echo.Context, deliveryId openapi_types.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) ListClients(ctx echo.Context) error {
	return w.Handler.ListClients(ctx)
}

func (w *ServerInterfaceWrapper) RegisterClient(ctx echo.Context) error {
	return w.Handler.RegisterClient(ctx)
}

func (w *ServerInterfaceWrapper) DeleteClient(ctx echo.Context) error {
	clientID, err := bindUUIDPath(ctx, "clientId")
	if err != nil {
		return err
	}
	return w.Handler.DeleteClient(ctx, clientID)
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams

	err := runtime.BindQueryParameter("form", true, false, "clientId", ctx.QueryParams(), &params.ClientId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter clientId: %s", err))
	}

	return w.Handler.ListOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderID, err := bindUUIDPath(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) DeleteOrder(ctx echo.Context) error {
	orderID, err := bindUUIDPath(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.DeleteOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) ListDeliveries(ctx echo.Context) error {
	return w.Handler.ListDeliveries(ctx)
}

func (w *ServerInterfaceWrapper) AdvanceDeliveryStatus(ctx echo.Context) error {
	deliveryID, err := bindUUIDPath(ctx, "deliveryId")
	if err != nil {
		return err
	}
	return w.Handler.AdvanceDeliveryStatus(ctx, deliveryID)
}

func bindUUIDPath(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return id, nil
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	w := ServerInterfaceWrapper{Handler: si}

	router.GET(baseURL+"/api/v1/clients", w.ListClients)
	router.POST(baseURL+"/api/v1/clients", w.RegisterClient)
	router.DELETE(baseURL+"/api/v1/clients/:clientId", w.DeleteClient)
	router.GET(baseURL+"/api/v1/orders", w.ListOrders)
	router.POST(baseURL+"/api/v1/orders", w.CreateOrder)
	router.GET(baseURL+"/api/v1/orders/:orderId", w.GetOrder)
	router.DELETE(baseURL+"/api/v1/orders/:orderId", w.DeleteOrder)
	router.GET(baseURL+"/api/v1/deliveries", w.ListDeliveries)
	router.PATCH(baseURL+"/api/v1/deliveries/:deliveryId/status", w.AdvanceDeliveryStatus)
}
