package cmd

import (
	"context"
	"log/slog"

	httpadapter "foodorder/internal/adapters/in/http"
	inmemorycart "foodorder/internal/adapters/out/inmemory/cartstore"
	"foodorder/internal/adapters/out/postgres"
	"foodorder/internal/adapters/out/postgres/menurepo"
	rediscart "foodorder/internal/adapters/out/redis/cartstore"
	"foodorder/internal/adapters/out/redis/sessionstore"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/identity"
	"foodorder/internal/core/ports"
	"foodorder/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	cartStore  ports.CartStore
	identities ports.IdentityProvider
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewCompositionRoot wires adapters to ports. A nil redis client selects the
// in-memory cart store and guest-only identities (single-process mode); a
// nil publisher disables order events.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	redisClient *redis.Client,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CompositionRoot {
	var cartStore ports.CartStore
	var identities ports.IdentityProvider

	if redisClient != nil {
		cartStore = rediscart.NewRedisCartStore(redisClient, config.CartExpiry)
		identities = sessionstore.NewRedisIdentityProvider(redisClient)
	} else {
		cartStore = inmemorycart.NewInMemoryCartStore()
		identities = guestIdentityProvider{}
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		cartStore:  cartStore,
		identities: identities,
		publisher:  publisher,
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAddItemToCartCommandHandler() commands.AddItemToCartCommandHandler {
	return commands.NewAddItemToCartCommandHandler(c.CreateMenuRepository(), c.cartStore)
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	return commands.NewCheckoutCommandHandler(c.cartStore, c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.cartStore)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateMenuRepository() ports.MenuRepository {
	return menurepo.NewGormMenuRepository(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateAddItemToCartCommandHandler(),
		c.CreateCheckoutCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateGetMenuQueryHandler(),
		c.CreateGetCartQueryHandler(),
		c.CreateGetOrdersQueryHandler(),
	)
}

func (c *CompositionRoot) CreateSessionMiddleware() *httpadapter.SessionMiddleware {
	return httpadapter.NewSessionMiddleware(c.identities)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.cartStore, c.config.CartExpiry, c.logger)
}

// guestIdentityProvider resolves every token to the guest identity.
// Used when no session backend is configured.
type guestIdentityProvider struct{}

func (guestIdentityProvider) Resolve(context.Context, string) (identity.Identity, error) {
	return identity.Guest(), nil
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
