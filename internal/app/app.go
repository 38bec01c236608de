package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/Radek987976/hyperbare-manager/internal/closer"
	"github.com/Radek987976/hyperbare-manager/internal/config"
	"github.com/Radek987976/hyperbare-manager/internal/logger"
	"github.com/Radek987976/hyperbare-manager/internal/transport/http/health"
	"github.com/Radek987976/hyperbare-manager/internal/transport/http/middleware"
)

type app struct {
	di     *di
	server *http.Server
}

func New(ctx context.Context) (*app, error) {
	a := &app{}

	if err := a.init(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *app) Run(ctx context.Context) error { return a.run(ctx) }

func (a *app) init(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initConfig,
		a.initLogger,
		a.initDI,
		a.initServer,
	}

	for _, initFn := range inits {
		if err := initFn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) initConfig(_ context.Context) error {
	return config.Load()
}

func (a *app) initLogger(_ context.Context) error {
	return logger.Init(
		config.C().Logger.Level(),
		config.C().Logger.AsJSON(),
	)
}

func (a *app) initDI(_ context.Context) error {
	a.di = NewDI()
	return nil
}

func (a *app) initServer(ctx context.Context) error {
	cfg := config.C()

	r := a.di.Router(ctx)
	r.Use(
		chimw.Recoverer,
		chimw.Logger,
	)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/auth", a.di.AuthHandler(ctx).Routes())

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(a.di.AuthService(ctx)))

			r.Get("/auth/me", a.di.AuthHandler(ctx).Me)
			r.Mount("/users", a.di.AuthHandler(ctx).UserRoutes())
			r.Mount("/vessel", a.di.VesselHandler(ctx).Routes())
			r.Mount("/equipments", a.di.EquipmentHandler(ctx).Routes())
			r.Mount("/work-orders", a.di.WorkOrderHandler(ctx).Routes())
			r.Mount("/inspections", a.di.InspectionHandler(ctx).Routes())
			r.Mount("/interventions", a.di.InterventionHandler(ctx).Routes())
			r.Mount("/spare-parts", a.di.SparePartHandler(ctx).Routes())
			r.Mount("/dashboard", a.di.DashboardHandler(ctx).Routes())
		})
	})

	r.HandleFunc("/health", health.HealthCheck)

	a.server = &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           r,
		ReadHeaderTimeout: cfg.Server.ReadDBTimeout(),
	}

	closer.AddNamed("HTTP Server", func(ctx context.Context) error {
		return a.server.Shutdown(ctx)
	})

	return nil
}

func (a *app) run(ctx context.Context) error {
	defer gracefulShutdown()

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		logger.Info(egCtx,
			"🚀 hyperbare manager listening",
			logger.String("address", config.C().Server.Address()),
		)
		err := a.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	eg.Go(func() error {
		<-egCtx.Done()
		return nil
	})

	if err := eg.Wait(); err != nil {
		return err
	}
	return nil
}

//nolint:contextcheck
func gracefulShutdown() {
	ctx, cancel := context.WithTimeout(
		context.Background(), // do not inherit cancellation from ctx
		config.C().Server.ShutdownTimeout(),
	)
	defer cancel()

	closer.CloseAll(ctx)
	logger.Info(ctx, "✅ Server stopped")

	_ = logger.Sync()
}
