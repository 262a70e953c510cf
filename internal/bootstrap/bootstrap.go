package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	authoutadapter "ledgerdesk/internal/modules/auth/adapter/out"
	authusecase "ledgerdesk/internal/modules/auth/usecase"
	dashboardinadapter "ledgerdesk/internal/modules/dashboard/adapter/in"
	dashboardoutadapter "ledgerdesk/internal/modules/dashboard/adapter/out"
	dashboardservice "ledgerdesk/internal/modules/dashboard/service"
	dashboardusecase "ledgerdesk/internal/modules/dashboard/usecase"
	gatewayoutadapter "ledgerdesk/internal/modules/gateway/adapter/out"
	gatewayout "ledgerdesk/internal/modules/gateway/port/out"
	gatewayservice "ledgerdesk/internal/modules/gateway/service"
	invoiceinadapter "ledgerdesk/internal/modules/invoice/adapter/in"
	invoiceoutadapter "ledgerdesk/internal/modules/invoice/adapter/out"
	invoiceservice "ledgerdesk/internal/modules/invoice/service"
	invoiceusecase "ledgerdesk/internal/modules/invoice/usecase"
	purchaseinadapter "ledgerdesk/internal/modules/purchase/adapter/in"
	purchaseoutadapter "ledgerdesk/internal/modules/purchase/adapter/out"
	purchaseservice "ledgerdesk/internal/modules/purchase/service"
	purchaseusecase "ledgerdesk/internal/modules/purchase/usecase"
	sessioninadapter "ledgerdesk/internal/modules/session/adapter/in"
	sessionoutadapter "ledgerdesk/internal/modules/session/adapter/out"
	sessionout "ledgerdesk/internal/modules/session/port/out"
	sessionservice "ledgerdesk/internal/modules/session/service"
	sessionusecase "ledgerdesk/internal/modules/session/usecase"
	"ledgerdesk/internal/platform/clock"
	"ledgerdesk/internal/platform/config"
	"ledgerdesk/internal/platform/id"
	"ledgerdesk/internal/platform/logging"
	"ledgerdesk/internal/platform/tracing"
	uiapp "ledgerdesk/internal/ui/app"
)

type App struct {
	Config       config.Config
	Logger       zerolog.Logger
	SessionCLI   sessioninadapter.CLIHandler
	InvoiceCLI   invoiceinadapter.CLIHandler
	PurchaseCLI  purchaseinadapter.CLIHandler
	DashboardCLI dashboardinadapter.CLIHandler
	TUI          uiapp.Deps

	closers []io.Closer
}

// New wires every module and restores the stored session.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	logger, logCloser, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	app := &App{Config: cfg, Logger: logger, closers: []io.Closer{logCloser}}

	storage, err := openStorage(cfg.Storage)
	if err != nil {
		_ = app.Close()
		return nil, err
	}
	app.closers = append(app.closers, storage)

	tracer, err := tracing.New(ctx, cfg.Trace, logger)
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("init tracing: %w", err)
	}
	app.closers = append(app.closers, tracer)

	// The gateway reads the token from the store, which is built after it.
	var store *sessionservice.Store
	tokens := gatewayout.TokenSourceFunc(func() (string, bool) {
		if store == nil {
			return "", false
		}
		return store.AccessToken()
	})
	gateway := gatewayservice.NewClient(cfg.BaseURL, gatewayoutadapter.NewHTTPClient(tracer.Provider, tracer.Propagator), tokens, id.UUID{}, clock.SystemClock{}, logger)

	authUC := authusecase.NewInteractor(authoutadapter.NewGatewayAPI(gateway))
	store = sessionservice.NewStore(sessionoutadapter.NewAuthGatewayAdapter(authUC), storage, logger)
	sessionUC := sessionusecase.NewInteractor(store)
	sessionUC.Restore(ctx)

	invoiceUC := invoiceusecase.NewInteractor(invoiceservice.NewInvoiceService(
		invoiceoutadapter.NewGatewayAPI(gateway),
		invoiceoutadapter.NewSessionIdentity(sessionUC),
	))
	purchaseUC := purchaseusecase.NewInteractor(purchaseservice.NewPurchaseService(
		purchaseoutadapter.NewGatewayAPI(gateway),
		purchaseoutadapter.NewSessionIdentity(sessionUC),
	))
	dashboardUC := dashboardusecase.NewInteractor(dashboardservice.NewDashboardService(
		dashboardoutadapter.NewInvoiceSource(invoiceUC),
		dashboardoutadapter.NewPurchaseSource(purchaseUC),
		logger,
	))

	app.SessionCLI = sessioninadapter.NewCLIHandler(sessionUC)
	app.InvoiceCLI = invoiceinadapter.NewCLIHandler(invoiceUC)
	app.PurchaseCLI = purchaseinadapter.NewCLIHandler(purchaseUC)
	app.DashboardCLI = dashboardinadapter.NewCLIHandler(dashboardUC)
	app.TUI = uiapp.Deps{
		Session:   sessionUC,
		Invoices:  invoiceUC,
		Purchases: purchaseUC,
		Dashboard: dashboardUC,
	}
	logger.Debug().Str("base_url", cfg.BaseURL).Str("storage", cfg.Storage.Driver).Bool("tracing", cfg.Trace.Endpoint != "").Msg("app ready")
	return app, nil
}

func openStorage(cfg config.StorageConfig) (sessionout.Storage, error) {
	switch cfg.Driver {
	case config.DriverFile:
		return sessionoutadapter.NewFileStorage(cfg.Path), nil
	case config.DriverBolt:
		storage, err := sessionoutadapter.NewBoltStorage(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("open bolt storage: %w", err)
		}
		return storage, nil
	case config.DriverSQLite:
		storage, err := sessionoutadapter.NewSQLiteStorage(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("open sqlite storage: %w", err)
		}
		return storage, nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}

// Close flushes spans and releases storage and the log file, newest first.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.TUI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
