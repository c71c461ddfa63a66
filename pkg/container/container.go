package container

import (
	"context"
	"fmt"

	"libreria-backend/internal/config"
	"libreria-backend/internal/infrastructure/database"
	"libreria-backend/internal/infrastructure/metadata"
	"libreria-backend/pkg/logger"

	catalogHandler "libreria-backend/internal/domains/catalog/handler"
	catalogRepo "libreria-backend/internal/domains/catalog/repository"
	catalogService "libreria-backend/internal/domains/catalog/service"
	clientHandler "libreria-backend/internal/domains/client/handler"
	clientRepo "libreria-backend/internal/domains/client/repository"
	clientService "libreria-backend/internal/domains/client/service"
	invHandler "libreria-backend/internal/domains/inventory/handler"
	invRepo "libreria-backend/internal/domains/inventory/repository"
	invService "libreria-backend/internal/domains/inventory/service"
	ledgerHandler "libreria-backend/internal/domains/ledger/handler"
	ledgerRepo "libreria-backend/internal/domains/ledger/repository"
	ledgerService "libreria-backend/internal/domains/ledger/service"
	reservationHandler "libreria-backend/internal/domains/reservation/handler"
	reservationRepo "libreria-backend/internal/domains/reservation/repository"
	reservationService "libreria-backend/internal/domains/reservation/service"
	returnsHandler "libreria-backend/internal/domains/returns/handler"
	returnsRepo "libreria-backend/internal/domains/returns/repository"
	returnsService "libreria-backend/internal/domains/returns/service"
	saleHandler "libreria-backend/internal/domains/sale/handler"
	saleRepo "libreria-backend/internal/domains/sale/repository"
	saleService "libreria-backend/internal/domains/sale/service"
)

// Container is the root of the dependency graph, built once at startup
// and handed to the router. No global state: every service gets what it
// needs through its constructor.
type Container struct {
	Config *config.Config
	DB     *database.DB
	Lookup *metadata.Lookup

	CatalogRepo     catalogRepo.RepositoryInterface
	InventoryRepo   invRepo.RepositoryInterface
	ClientRepo      clientRepo.RepositoryInterface
	LedgerRepo      ledgerRepo.RepositoryInterface
	SaleRepo        saleRepo.RepositoryInterface
	ReservationRepo reservationRepo.RepositoryInterface
	ReturnsRepo     returnsRepo.RepositoryInterface

	CatalogService     catalogService.ServiceInterface
	InventoryService   invService.ServiceInterface
	ClientService      clientService.ServiceInterface
	LedgerService      ledgerService.ServiceInterface
	SaleService        saleService.ServiceInterface
	ReservationService reservationService.ServiceInterface
	ReturnsService     returnsService.ServiceInterface

	CatalogHandler     *catalogHandler.Handler
	InventoryHandler   *invHandler.Handler
	ClientHandler      *clientHandler.Handler
	LedgerHandler      *ledgerHandler.Handler
	SaleHandler        *saleHandler.Handler
	ReservationHandler *reservationHandler.Handler
	ReturnsHandler     *returnsHandler.Handler
}

// NewContainer loads configuration, opens the store, bootstraps the schema
// and wires repositories, services and handlers in dependency order.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	db, err := database.Open(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := database.Bootstrap(context.Background(), db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to bootstrap schema: %w", err)
	}
	c.DB = db
	logger.Info("database ready", map[string]interface{}{"path": cfg.Database.Path})

	c.Lookup = metadata.NewLookup(cfg.Metadata)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	return c, nil
}

func (c *Container) initRepositories() {
	c.CatalogRepo = catalogRepo.NewRepository(c.DB)
	c.InventoryRepo = invRepo.NewRepository(c.DB)
	c.ClientRepo = clientRepo.NewRepository(c.DB)
	c.LedgerRepo = ledgerRepo.NewRepository(c.DB)
	c.SaleRepo = saleRepo.NewRepository(c.DB)
	c.ReservationRepo = reservationRepo.NewRepository(c.DB)
	c.ReturnsRepo = returnsRepo.NewRepository(c.DB)
}

func (c *Container) initServices() {
	c.CatalogService = catalogService.NewCatalogService(c.DB, c.CatalogRepo, c.InventoryRepo)
	c.InventoryService = invService.NewInventoryService(c.DB, c.InventoryRepo)
	c.ClientService = clientService.NewClientService(c.ClientRepo)
	c.LedgerService = ledgerService.NewLedgerService(c.DB, c.LedgerRepo)
	c.SaleService = saleService.NewSaleService(c.DB, c.SaleRepo, c.InventoryRepo, c.LedgerRepo)
	c.ReservationService = reservationService.NewReservationService(
		c.DB, c.ReservationRepo, c.ClientService, c.InventoryRepo, c.SaleRepo, c.LedgerRepo)
	c.ReturnsService = returnsService.NewReturnsService(
		c.DB, c.ReturnsRepo, c.InventoryRepo, c.SaleRepo, c.LedgerRepo)
}

func (c *Container) initHandlers() {
	c.CatalogHandler = catalogHandler.NewHandler(c.CatalogService, c.Lookup)
	c.InventoryHandler = invHandler.NewHandler(c.InventoryService)
	c.ClientHandler = clientHandler.NewHandler(c.ClientService)
	c.LedgerHandler = ledgerHandler.NewHandler(c.LedgerService)
	c.SaleHandler = saleHandler.NewHandler(c.SaleService)
	c.ReservationHandler = reservationHandler.NewHandler(c.ReservationService)
	c.ReturnsHandler = returnsHandler.NewHandler(c.ReturnsService)
}

// Cleanup releases container resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			logger.Warn("failed to close database", map[string]interface{}{"error": err.Error()})
		}
	}
}
