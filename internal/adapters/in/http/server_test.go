package http_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	httpadapter "foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/inmemory/cartstore"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/identity"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeIdentityProvider maps session tokens to fixed identities; unknown
// tokens resolve to guest, like the real provider.
type fakeIdentityProvider struct {
	identities map[string]identity.Identity
}

func (p *fakeIdentityProvider) Resolve(_ context.Context, sessionToken string) (identity.Identity, error) {
	if actor, ok := p.identities[sessionToken]; ok {
		return actor, nil
	}
	return identity.Guest(), nil
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) Get(ctx context.Context, id kernel.UUID) (*menu.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.Item), args.Error(1)
}

func (m *MockMenuRepository) GetAll(ctx context.Context) ([]*menu.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*menu.Item), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllForCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]*order.Order), args.Error(1)
}

// fakeOrderUoW records writes without a database.
type fakeOrderUoW struct {
	repo *MockOrderRepository
}

func (u *fakeOrderUoW) Begin(context.Context) error    { return nil }
func (u *fakeOrderUoW) Commit(context.Context) error   { return nil }
func (u *fakeOrderUoW) Rollback(context.Context) error { return nil }
func (u *fakeOrderUoW) OrderRepository() ports.OrderRepository {
	return u.repo
}

type fakeOrderUoWFactory struct {
	uow *fakeOrderUoW
}

func (f *fakeOrderUoWFactory) Create() commands.OrderUoW {
	return f.uow
}

type testEnv struct {
	echo      *echo.Echo
	menuRepo  *MockMenuRepository
	orderRepo *MockOrderRepository
	cartStore *cartstore.InMemoryCartStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	adminID := kernel.NewUUID()
	admin, err := identity.Authenticated(adminID, true)
	require.NoError(t, err)
	customerID := kernel.NewUUID()
	customer, err := identity.Authenticated(customerID, false)
	require.NoError(t, err)

	menuRepo := new(MockMenuRepository)
	orderRepo := new(MockOrderRepository)
	store := cartstore.NewInMemoryCartStore()
	factory := &fakeOrderUoWFactory{uow: &fakeOrderUoW{repo: orderRepo}}
	logger := slog.New(slog.DiscardHandler)

	server := httpadapter.NewServer(
		commands.NewAddItemToCartCommandHandler(menuRepo, store),
		commands.NewCheckoutCommandHandler(store, factory, nil, logger),
		commands.NewChangeOrderStatusCommandHandler(factory, nil, logger),
		queries.GetMenuQueryHandler{},
		queries.NewGetCartQueryHandler(store),
		queries.GetOrdersQueryHandler{},
	)

	e := echo.New()
	sessions := httpadapter.NewSessionMiddleware(&fakeIdentityProvider{
		identities: map[string]identity.Identity{
			"admin-session":    admin,
			"customer-session": customer,
		},
	})
	server.RegisterRoutes(e, sessions)

	return &testEnv{
		echo:      e,
		menuRepo:  menuRepo,
		orderRepo: orderRepo,
		cartStore: store,
	}
}

func (env *testEnv) request(method, target, sessionID string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: httpadapter.SessionCookieName, Value: sessionID})
	}

	rec := httptest.NewRecorder()
	env.echo.ServeHTTP(rec, req)
	return rec
}

func placedOrder(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()
	price, err := kernel.NewMoneyFromFloat(8.99)
	require.NoError(t, err)
	line, err := order.NewLine(kernel.NewUUID(), "Classic Burger", price, 1)
	require.NoError(t, err)
	aggregate, err := order.NewOrder(id, []order.Line{line}, nil, time.Now())
	require.NoError(t, err)
	return aggregate
}

func newBurger(t *testing.T) *menu.Item {
	t.Helper()
	price, err := kernel.NewMoneyFromFloat(8.99)
	require.NoError(t, err)
	item, err := menu.NewItem(kernel.NewUUID(), "Classic Burger", price, "mains", "")
	require.NoError(t, err)
	return item
}

func TestGetHealth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestSessionMiddleware_AssignsCookieToNewVisitor(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(http.MethodGet, "/cart", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, httpadapter.SessionCookieName, cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
}

func TestAddCartItem_ThenGetCart(t *testing.T) {
	env := newTestEnv(t)
	burger := newBurger(t)
	env.menuRepo.On("Get", mock.Anything, burger.ID()).Return(burger, nil)

	form := url.Values{"itemId": {burger.ID().String()}, "quantity": {"2"}}
	rec := env.request(http.MethodPost, "/cart/items", "visitor-1", form)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.request(http.MethodGet, "/cart", "visitor-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var cartResp httpadapter.CartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cartResp))
	require.Len(t, cartResp.Lines, 1)
	assert.Equal(t, 2, cartResp.Lines[0].Quantity)
	assert.Equal(t, "17.98", cartResp.Total)
}

func TestAddCartItem_UnparseableQuantityDefaultsToOne(t *testing.T) {
	env := newTestEnv(t)
	burger := newBurger(t)
	env.menuRepo.On("Get", mock.Anything, burger.ID()).Return(burger, nil)

	form := url.Values{"itemId": {burger.ID().String()}, "quantity": {"lots"}}
	rec := env.request(http.MethodPost, "/cart/items", "visitor-1", form)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.request(http.MethodGet, "/cart", "visitor-1", nil)
	var cartResp httpadapter.CartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cartResp))
	require.Len(t, cartResp.Lines, 1)
	assert.Equal(t, 1, cartResp.Lines[0].Quantity)
}

func TestAddCartItem_NegativeQuantityRejected(t *testing.T) {
	env := newTestEnv(t)
	burger := newBurger(t)

	form := url.Values{"itemId": {burger.ID().String()}, "quantity": {"-3"}}
	rec := env.request(http.MethodPost, "/cart/items", "visitor-1", form)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env.menuRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestAddCartItem_InvalidItemID(t *testing.T) {
	env := newTestEnv(t)

	form := url.Values{"itemId": {"not-a-uuid"}, "quantity": {"1"}}
	rec := env.request(http.MethodPost, "/cart/items", "visitor-1", form)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddCartItem_UnknownItemIs404(t *testing.T) {
	env := newTestEnv(t)
	unknownID := kernel.NewUUID()
	env.menuRepo.On("Get", mock.Anything, unknownID).
		Return(nil, errs.NewObjectNotFoundError("menu item", unknownID.String()))

	form := url.Values{"itemId": {unknownID.String()}, "quantity": {"1"}}
	rec := env.request(http.MethodPost, "/cart/items", "visitor-1", form)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckout_EmptyCartIs400(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(http.MethodPost, "/checkout", "visitor-1", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckout_Success(t *testing.T) {
	env := newTestEnv(t)
	burger := newBurger(t)
	env.menuRepo.On("Get", mock.Anything, burger.ID()).Return(burger, nil)
	env.orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	form := url.Values{"itemId": {burger.ID().String()}, "quantity": {"1"}}
	rec := env.request(http.MethodPost, "/cart/items", "visitor-1", form)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.request(http.MethodPost, "/checkout", "visitor-1", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var checkoutResp httpadapter.CheckoutResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &checkoutResp))
	assert.NotEmpty(t, checkoutResp.OrderID)

	// The cart is gone after a successful checkout.
	rec = env.request(http.MethodGet, "/cart", "visitor-1", nil)
	var cartResp httpadapter.CartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cartResp))
	assert.Empty(t, cartResp.Lines)

	env.orderRepo.AssertExpectations(t)
}

func TestAdminRoutes_GuestIs401(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(http.MethodGet, "/admin/orders", "visitor-1", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminRoutes_NonAdminIs403(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(http.MethodGet, "/admin/orders", "customer-session", nil)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestChangeOrderStatus_UnknownStatusIs400(t *testing.T) {
	env := newTestEnv(t)

	form := url.Values{"status": {"teleported"}}
	rec := env.request(http.MethodPost, "/admin/orders/"+kernel.NewUUID().String()+"/status", "admin-session", form)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChangeOrderStatus_IllegalTransitionIs400(t *testing.T) {
	env := newTestEnv(t)

	orderID := kernel.NewUUID()
	aggregate := placedOrder(t, orderID)
	env.orderRepo.On("Get", mock.Anything, orderID).Return(aggregate, nil)

	form := url.Values{"status": {"completed"}}
	rec := env.request(http.MethodPost, "/admin/orders/"+orderID.String()+"/status", "admin-session", form)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env.orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestChangeOrderStatus_Success(t *testing.T) {
	env := newTestEnv(t)

	orderID := kernel.NewUUID()
	aggregate := placedOrder(t, orderID)
	env.orderRepo.On("Get", mock.Anything, orderID).Return(aggregate, nil)
	env.orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once()

	form := url.Values{"status": {"confirmed"}}
	rec := env.request(http.MethodPost, "/admin/orders/"+orderID.String()+"/status", "admin-session", form)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, order.Confirmed, aggregate.Status())
}

func TestChangeOrderStatus_UnknownOrderIs404(t *testing.T) {
	env := newTestEnv(t)

	orderID := kernel.NewUUID()
	env.orderRepo.On("Get", mock.Anything, orderID).
		Return(nil, errs.NewObjectNotFoundError("order", orderID.String()))

	form := url.Values{"status": {"confirmed"}}
	rec := env.request(http.MethodPost, "/admin/orders/"+orderID.String()+"/status", "admin-session", form)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
