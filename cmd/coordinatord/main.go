package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/revault/coordinatord/config"
	"github.com/revault/coordinatord/internal/coordinator"
	coordinatorsql "github.com/revault/coordinatord/internal/coordinator/store/sql"
	coordinatorLogger "github.com/revault/coordinatord/internal/logger"
	"github.com/revault/coordinatord/pkg/tracing"
)

const (
	serviceName      = "coordinatord"
	bootstrapTimeout = 30 * time.Second
	pingTimeout      = 5 * time.Second
)

func main() {
	err := run()
	if err != nil {
		log.Fatalf("failed to run coordinatord: %v", err)
	}

	os.Exit(0)
}

func run() error {
	configDir, dumpConfigFile := parseFlags()

	if dumpConfigFile != "" {
		return config.DumpConfig(dumpConfigFile)
	}

	coordinatorConfig, err := config.Load(configDir)
	if err != nil {
		return fmt.Errorf("failed to load app config: %w", err)
	}

	logger, err := coordinatorLogger.NewLogger(coordinatorConfig.LogLevel, coordinatorConfig.LogFormat, coordinatorLogger.WithService(serviceName))
	if err != nil {
		return fmt.Errorf("failed to create logger: %v", err)
	}

	hostname, err := os.Hostname()
	if err != nil {
		return fmt.Errorf("failed to get host name: %v", err)
	}

	logger = logger.With(slog.String("host", hostname))

	shutdownFns := make([]func(), 0)

	var storeOpts []func(*coordinatorsql.Store)
	if coordinatorConfig.Tracing.IsEnabled() {
		cleanup, err := tracing.Enable(logger, serviceName, coordinatorConfig.Tracing.DialAddr, coordinatorConfig.Tracing.Sample)
		if err != nil {
			return fmt.Errorf("failed to enable tracing: %v", err)
		}
		shutdownFns = append(shutdownFns, cleanup)

		storeOpts = append(storeOpts, coordinatorsql.WithTracer(tracing.AttributesFromMap(coordinatorConfig.Tracing.Attributes)...))
	}

	params, err := coordinatorConfig.Db.ConnectionParams()
	if err != nil {
		return fmt.Errorf("invalid db config: %v", err)
	}

	logger.Info("Starting coordinator", slog.String("db", params.Redacted()))

	coordinatorStore, err := coordinatorsql.New(params, logger, storeOpts...)
	if err != nil {
		return fmt.Errorf("failed to create store: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), bootstrapTimeout)
	_, err = coordinator.Bootstrap(ctx, coordinatorStore, coordinatorsql.SchemaVersion, logger)
	cancel()
	if err != nil {
		return fmt.Errorf("failed to bootstrap schema: %v", err)
	}

	if coordinatorConfig.Prometheus.IsEnabled() {
		server := &http.Server{
			Addr:              coordinatorConfig.Prometheus.Addr,
			ReadHeaderTimeout: 10 * time.Second,
		}
		mux := http.NewServeMux()
		mux.Handle(coordinatorConfig.Prometheus.Endpoint, promhttp.Handler())
		server.Handler = mux

		go func() {
			logger.Info("Starting prometheus", slog.String("endpoint", coordinatorConfig.Prometheus.Endpoint))
			err := server.ListenAndServe()
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("failed to start prometheus server", slog.String("err", err.Error()))
			}
		}()

		shutdownFns = append(shutdownFns, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				logger.Error("failed to shutdown prometheus server", slog.String("err", err.Error()))
			}
		})
	}

	workers := coordinator.NewBackgroundWorkers(coordinatorStore, logger)
	if coordinatorConfig.Db.HealthCheckInterval > 0 {
		workers.StartStoreHealthCheck(coordinatorConfig.Db.HealthCheckInterval, pingTimeout)
	}
	// workers stop before tracing is shut down
	shutdownFns = append([]func(){workers.GracefulStop}, shutdownFns...)

	// setup signal catching
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-signalChan
	logger.Info("Received shutdown signal", slog.String("reason", sig.String()))

	appCleanup(logger, shutdownFns)

	return nil
}

func appCleanup(logger *slog.Logger, shutdownFns []func()) {
	logger.Info("cleaning up")
	for _, fn := range shutdownFns {
		fn()
	}
}

func parseFlags() (string, string) {
	help := flag.Bool("help", false, "Show help")
	dumpConfigFile := flag.String("dump_config", "", "dump config to specified file and exit")
	configDir := flag.String("config", "", "path to configuration yaml file")

	flag.Parse()

	if *help {
		fmt.Println("Usage: coordinatord [options]")
		fmt.Println("")
		fmt.Println("Options:")
		fmt.Println("    -config=/location")
		fmt.Println("          directory to look for config.yaml (default='')")
		fmt.Println("    -dump_config=/file.yaml")
		fmt.Println("          dump default config to specified file and exit")
		os.Exit(0)
	}

	return *configDir, *dumpConfigFile
}
