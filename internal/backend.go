package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/pprof"
	"os"
	"strconv"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tpfand/tpfand/internal/api"
	"github.com/tpfand/tpfand/internal/configuration"
	"github.com/tpfand/tpfand/internal/controller"
	"github.com/tpfand/tpfand/internal/fans"
	"github.com/tpfand/tpfand/internal/persistence"
	"github.com/tpfand/tpfand/internal/pidfile"
	"github.com/tpfand/tpfand/internal/profile"
	"github.com/tpfand/tpfand/internal/sensors"
	"github.com/tpfand/tpfand/internal/statistics"
	"github.com/tpfand/tpfand/internal/status"
	"github.com/tpfand/tpfand/internal/ui"
)

const shutdownTimeout = 5 * time.Second

type DaemonOptions struct {
	// SkipRootCheck allows running without root permissions, e.g. against file backends
	SkipRootCheck bool
}

// Components are the hardware gateways and the profile table built from the configuration.
type Components struct {
	Sensor   sensors.Gateway
	Actuator fans.Actuator
	Table    *profile.Table
}

func RunDaemon(options DaemonOptions) {
	config := configuration.CurrentConfig

	if !options.SkipRootCheck && os.Geteuid() != 0 {
		ui.Fatal("Fan control requires root permissions to be able to modify fan levels, please run tpfand as root")
	}

	pidFile, err := pidfile.Acquire(config.PidFile)
	if err != nil {
		ui.Fatal("Unable to start: %v", err)
	}

	err = runDaemon(config)

	if releaseErr := pidFile.Release(); releaseErr != nil {
		ui.Warning("Unable to remove pidfile %s: %v", pidFile.Path(), releaseErr)
	}

	if err != nil {
		ui.Error("%v", err)
		os.Exit(1)
	}
	ui.Info("Done.")
}

func runDaemon(config configuration.Configuration) error {
	components, err := InitializeObjects(config)
	if err != nil {
		ui.ErrorAndNotify("Configuration Error", "Unable to initialize: %v", err)
		return err
	}

	store := status.NewStore(config.Sensor.ZoneName)
	listeners := []controller.Listener{store}

	var history persistence.Persistence
	var journal *Journal
	if config.History.Enabled {
		history = persistence.NewPersistence(config.DbPath, config.History.Retention)
		err = history.Init()
		if err != nil {
			return fmt.Errorf("unable to initialize transition history: %w", err)
		}
		journal = NewJournal(history)
		listeners = append(listeners, journal)
	}

	registry, err := statistics.NewRegistry(
		statistics.NewSensorCollector(store),
		statistics.NewFanCollector(components.Actuator),
		statistics.NewControllerCollector(store),
	)
	if err != nil {
		return fmt.Errorf("unable to register metrics: %w", err)
	}

	loop := controller.NewController(
		components.Sensor,
		components.Actuator,
		components.Table,
		config.PrimaryZone,
		config.TickRate,
		listeners...,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var g run.Group
	if config.Statistics.Enabled {
		// === Prometheus Exporter
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))
		addHttpServer(&g, "statistics", &http.Server{
			Addr:    net.JoinHostPort("", strconv.Itoa(config.Statistics.Port)),
			Handler: mux,
		})
	}
	if config.Api.Enabled {
		// === REST API
		rest := api.CreateRestService(api.Sources{
			Store:      store,
			Table:      components.Table,
			History:    history,
			Registerer: registry,
		})
		addEchoServer(&g, rest, net.JoinHostPort(config.Api.Host, strconv.Itoa(config.Api.Port)))
	}
	if config.Profiling.Enabled {
		// === pprof
		addHttpServer(&g, "profiling", &http.Server{
			Addr:    net.JoinHostPort(config.Profiling.Host, strconv.Itoa(config.Profiling.Port)),
			Handler: profilingHandler(),
		})
	}
	if journal != nil {
		// === transition journal
		journalCtx, journalCancel := context.WithCancel(context.Background())
		g.Add(func() error {
			return journal.Run(journalCtx)
		}, func(err error) {
			journalCancel()
		})
	}
	{
		// === control loop
		g.Add(func() error {
			return controller.RunManaged(ctx, loop, components.Actuator)
		}, func(err error) {
			cancel()
		})
	}
	{
		g.Add(run.SignalHandler(ctx, os.Interrupt, syscall.SIGTERM))
	}

	err = g.Run()
	var signalErr run.SignalError
	if errors.As(err, &signalErr) {
		ui.Info("Received %s signal, exiting...", signalErr.Signal)
		return nil
	}
	if controller.IsSensorFailure(err) {
		ui.ErrorAndNotify("Sensor Error", "Fan control stopped, the fan was returned to automatic control: %v", err)
	}
	return err
}

// InitializeObjects creates the sensor and fan gateways and the profile table.
func InitializeObjects(config configuration.Configuration) (*Components, error) {
	table, err := CreateTable(config)
	if err != nil {
		return nil, err
	}

	sensor, err := sensors.NewGateway(config.Sensor)
	if err != nil {
		return nil, fmt.Errorf("unable to process sensor configuration: %w", err)
	}

	actuator, err := fans.NewActuator(config.Fan)
	if err != nil {
		return nil, fmt.Errorf("unable to process fan configuration: %w", err)
	}

	ui.Info("Using sensor %s with %d zones, primary zone: %s", sensor.GetId(), config.Sensor.Width, config.Sensor.ZoneName(config.PrimaryZone))
	ui.Info("Using fan %s", actuator.GetId())
	for _, p := range table.Profiles() {
		ui.Debug("Profile %s (stickMargin: %d, holdDelay: %d)", p, p.StickMargin, p.HoldDelay)
	}

	return &Components{
		Sensor:   sensor,
		Actuator: actuator,
		Table:    table,
	}, nil
}

func CreateTable(config configuration.Configuration) (*profile.Table, error) {
	return profile.NewTable(profile.FromConfig(config.Profiles, config.ProfileDefaults))
}

func addHttpServer(g *run.Group, name string, server *http.Server) {
	g.Add(func() error {
		ui.Info("Starting %s server on %s", name, server.Addr)
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("cannot start %s server: %w", name, err)
	}, func(err error) {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			ui.Warning("Error stopping %s server: %v", name, err)
		} else {
			ui.Info("Stopped %s server", name)
		}
	})
}

func addEchoServer(g *run.Group, rest *echo.Echo, addr string) {
	g.Add(func() error {
		ui.Info("Starting REST api server on %s", addr)
		err := rest.Start(addr)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("cannot start REST api server: %w", err)
	}, func(err error) {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := rest.Shutdown(ctx); err != nil {
			ui.Warning("Error stopping REST api server: %v", err)
		} else {
			ui.Info("Stopped REST api server")
		}
	})
}

func profilingHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	return mux
}
