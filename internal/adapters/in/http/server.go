// Package http provides the inbound HTTP adapter: route handlers, the
// session middleware that turns cookies into identities, and the mapping
// from domain errors to status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/identity"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	addItemToCartHandler     commands.AddItemToCartCommandHandler
	checkoutHandler          commands.CheckoutCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler

	// Query handlers
	getMenuHandler   queries.GetMenuQueryHandler
	getCartHandler   queries.GetCartQueryHandler
	getOrdersHandler queries.GetOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	addItemToCartHandler commands.AddItemToCartCommandHandler,
	checkoutHandler commands.CheckoutCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	getMenuHandler queries.GetMenuQueryHandler,
	getCartHandler queries.GetCartQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
) *Server {
	return &Server{
		addItemToCartHandler:     addItemToCartHandler,
		checkoutHandler:          checkoutHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		getMenuHandler:           getMenuHandler,
		getCartHandler:           getCartHandler,
		getOrdersHandler:         getOrdersHandler,
	}
}

// RegisterRoutes attaches all routes and middleware to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo, sessions *SessionMiddleware) {
	e.GET("/health", s.GetHealth)
	e.GET("/menu", s.GetMenu)

	withSession := e.Group("", sessions.Attach)
	withSession.GET("/cart", s.GetCart)
	withSession.POST("/cart/items", s.AddCartItem)
	withSession.POST("/checkout", s.Checkout)
	withSession.GET("/orders", s.GetOrders)

	admin := e.Group("/admin", sessions.Attach, RequireAdmin)
	admin.GET("/orders", s.GetAdminOrders)
	admin.POST("/orders/:id/status", s.ChangeOrderStatus)
}

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// MenuItemResponse represents one menu item.
type MenuItemResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Category string `json:"category"`
	ImageURL string `json:"image_url,omitempty"`
}

// CartLineResponse represents one cart line.
type CartLineResponse struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	Price      string `json:"price"`
	Quantity   int    `json:"quantity"`
	Subtotal   string `json:"subtotal"`
}

// CartResponse represents the current cart with its running total.
type CartResponse struct {
	Lines []CartLineResponse `json:"lines"`
	Total string             `json:"total"`
}

// OrderLineResponse represents one line of a placed order.
type OrderLineResponse struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	Price      string `json:"price"`
	Quantity   int    `json:"quantity"`
}

// OrderResponse represents one placed order.
type OrderResponse struct {
	ID         string              `json:"id"`
	CustomerID string              `json:"customer_id,omitempty"`
	Lines      []OrderLineResponse `json:"lines"`
	Total      string              `json:"total"`
	Status     string              `json:"status"`
	CreatedAt  time.Time           `json:"created_at"`
}

// CheckoutResponse carries the identifier of the freshly placed order.
type CheckoutResponse struct {
	OrderID string `json:"order_id"`
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetMenu handles GET /menu - retrieves the whole catalog.
func (s *Server) GetMenu(ctx echo.Context) error {
	query := queries.NewGetMenuQuery()

	items, err := s.getMenuHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]MenuItemResponse, len(items))
	for i, item := range items {
		response[i] = MenuItemResponse{
			ID:       item.ID.String(),
			Name:     item.Name,
			Price:    item.Price.String(),
			Category: item.Category,
			ImageURL: item.ImageURL,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCart handles GET /cart - retrieves the session's cart.
func (s *Server) GetCart(ctx echo.Context) error {
	query, err := queries.NewGetCartQuery(SessionID(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	snapshot, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := CartResponse{
		Lines: make([]CartLineResponse, len(snapshot.Lines)),
		Total: snapshot.Total.String(),
	}
	for i, line := range snapshot.Lines {
		response.Lines[i] = CartLineResponse{
			MenuItemID: line.MenuItemID.String(),
			Name:       line.Name,
			Price:      line.Price.String(),
			Quantity:   line.Quantity,
			Subtotal:   line.Subtotal.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// addCartItemRequest accepts both JSON bodies and classic form posts.
// Quantity is bound as a string: a missing or unparseable value means 1,
// matching the storefront's permissive add button.
type addCartItemRequest struct {
	ItemID   string `json:"item_id" form:"itemId"`
	Quantity string `json:"quantity" form:"quantity"`
}

// AddCartItem handles POST /cart/items - puts an item into the session's cart.
func (s *Server) AddCartItem(ctx echo.Context) error {
	var req addCartItemRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	itemID, err := kernel.UUIDFromString(req.ItemID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid item id",
		})
	}

	quantity, err := strconv.Atoi(req.Quantity)
	if err != nil {
		quantity = 1
	}

	cmd, err := commands.NewAddItemToCartCommand(SessionID(ctx), itemID, quantity)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.addItemToCartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Checkout handles POST /checkout - turns the session's cart into an order.
func (s *Server) Checkout(ctx echo.Context) error {
	orderID := kernel.NewUUID()

	cmd, err := commands.NewCheckoutCommand(orderID, SessionID(ctx), Actor(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.checkoutHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CheckoutResponse{OrderID: orderID.String()})
}

// GetOrders handles GET /orders - an authenticated customer's own history.
func (s *Server) GetOrders(ctx echo.Context) error {
	return s.listOrders(ctx)
}

// GetAdminOrders handles GET /admin/orders - every order, newest first.
// The admin guard already ran in middleware, so the same listing path serves
// both routes; the query handler widens the scope for admin actors.
func (s *Server) GetAdminOrders(ctx echo.Context) error {
	return s.listOrders(ctx)
}

func (s *Server) listOrders(ctx echo.Context) error {
	query := queries.NewGetOrdersQuery(Actor(ctx))

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		orderResp := OrderResponse{
			ID:        o.ID.String(),
			Lines:     make([]OrderLineResponse, len(o.Lines)),
			Total:     o.Total.String(),
			Status:    o.Status,
			CreatedAt: o.CreatedAt,
		}
		if o.CustomerID != nil {
			orderResp.CustomerID = o.CustomerID.String()
		}
		for j, line := range o.Lines {
			orderResp.Lines[j] = OrderLineResponse{
				MenuItemID: line.MenuItemID.String(),
				Name:       line.Name,
				Price:      line.Price.String(),
				Quantity:   line.Quantity,
			}
		}
		response[i] = orderResp
	}

	return ctx.JSON(http.StatusOK, response)
}

// changeOrderStatusRequest carries the target status for a transition.
type changeOrderStatusRequest struct {
	Status string `json:"status" form:"status"`
}

// ChangeOrderStatus handles POST /admin/orders/:id/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid order id",
		})
	}

	var req changeOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status, Actor(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// writeError maps domain errors onto status codes. Anything unclassified is
// a 500 with a generic message so storage details never leak to clients.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, identity.ErrUnauthorized):
		code = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrInvalidCartState),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, order.ErrIllegalStatusTransition),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, kernel.ErrUUIDIsNotConstructed):
		code = http.StatusBadRequest
		message = err.Error()
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}
