// Package util holds the setup shared by the commands.
package util

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // by design
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	otlpruntime "go.opentelemetry.io/contrib/instrumentation/runtime"

	"github.com/mpapenbr/f1-telemetry-go/log"
	"github.com/mpapenbr/f1-telemetry-go/pkg/config"
	"github.com/mpapenbr/f1-telemetry-go/pkg/utils"
)

const defaultWaitForServices = 60 * time.Second

func parseLogLevel(l string, defaultVal log.Level) log.Level {
	level, err := log.ParseLevel(l)
	if err != nil {
		return defaultVal
	}
	return level
}

// SetupLogger creates the logger configured by the log flags and makes it
// the default logger
func SetupLogger() *log.Logger {
	var cfgOpts []log.ConfigOption
	if config.LogFilter != "" {
		cfgOpts = append(cfgOpts, log.WithFilter(config.LogFilter))
	}
	var logger *log.Logger
	switch config.LogFormat {
	case "json":
		logger = log.NewWithConfig(
			os.Stderr,
			parseLogLevel(config.LogLevel, log.InfoLevel),
			cfgOpts,
			log.WithCaller(true),
			log.AddCallerSkip(1))
	default:
		logger = log.DevLoggerWithConfig(
			os.Stderr,
			parseLogLevel(config.LogLevel, log.DebugLevel),
			cfgOpts,
			log.WithCaller(true),
			log.AddCallerSkip(1))
	}
	log.ResetDefault(logger)
	return logger
}

// SetupTelemetry returns nil if telemetry is disabled or could not be set up
func SetupTelemetry(ctx context.Context) *config.Telemetry {
	if !config.EnableTelemetry {
		return nil
	}
	log.Info("Enabling telemetry")
	telemetry, err := config.SetupTelemetry(ctx)
	if err != nil {
		log.Warn("Could not setup telemetry", log.ErrorField(err))
		return nil
	}
	err = otlpruntime.Start(otlpruntime.WithMinimumReadMemStatsInterval(time.Second))
	if err != nil {
		log.Warn("Could not start runtime metrics", log.ErrorField(err))
	}
	return telemetry
}

func StartProfiling() {
	if config.ProfilingPort <= 0 {
		return
	}
	log.Info("Starting profiling server on port", log.Int("port", config.ProfilingPort))
	go func() {
		//nolint:gosec // by design
		err := http.ListenAndServe(
			fmt.Sprintf("localhost:%d", config.ProfilingPort),
			nil)
		if err != nil {
			log.Error("Profiling server stopped", log.ErrorField(err))
		}
	}()
}

// WaitForServices blocks until every addr accepts tcp connections
func WaitForServices(ctx context.Context, addrs ...string) error {
	timeout, err := time.ParseDuration(config.WaitForServices)
	if err != nil {
		log.Warn("Invalid duration value. Setting default 60s", log.ErrorField(err))
		timeout = defaultWaitForServices
	}
	for _, addr := range addrs {
		if addr == "" {
			continue
		}
		if err := utils.WaitForTCP(ctx, addr, timeout); err != nil {
			return fmt.Errorf("required services not ready: %w", err)
		}
	}
	log.Debug("Required services are available")
	return nil
}

// SignalContext is cancelled on SIGINT or SIGTERM
func SignalContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}

func SetupGoRoutinesDump() {
	go func() {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGQUIT)
		buf := make([]byte, 1<<20)
		for {
			<-sigs
			stacklen := runtime.Stack(buf, true)
			fmt.Printf("=== received SIGQUIT ===\n*** goroutine dump...\n%s\n*** end\n",
				buf[:stacklen])
		}
	}()
}
