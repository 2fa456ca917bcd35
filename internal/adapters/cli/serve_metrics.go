package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/fantasy-manager-go/internal/adapters/metrics"
	"github.com/andrescamacho/fantasy-manager-go/internal/application/common"
	"github.com/andrescamacho/fantasy-manager-go/internal/infrastructure/pidfile"
)

// NewServeMetricsCommand creates the serve-metrics command
func NewServeMetricsCommand() *cobra.Command {
	var (
		pidPath  string
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve-metrics",
		Short: "Expose transfer queue metrics for Prometheus",
		Long: `Serve Prometheus metrics on metrics.host:metrics.port at metrics.path.

The queue depth of every manager is sampled from the database on an interval,
so the gauge stays accurate while transfers are made by other processes.
Only one instance runs per PID file.

Example:
  FM_METRICS_ENABLED=true fantasy-manager serve-metrics --interval 30s`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pf := pidfile.New(pidPath)
			if err := pf.Acquire(); err != nil {
				return err
			}
			defer func() {
				if err := pf.Release(); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
				}
			}()

			rt, err := newRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			if !rt.cfg.Metrics.Enabled {
				return fmt.Errorf("metrics are disabled: set metrics.enabled (FM_METRICS_ENABLED=true)")
			}

			ctx, stop := signal.NotifyContext(rt.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serveMetrics(ctx, rt, interval)
		},
	}

	cmd.Flags().StringVar(&pidPath, "pid-file", filepath.Join(os.TempDir(), "fantasy-manager-metrics.pid"),
		"PID file guarding against a second server")
	cmd.Flags().DurationVar(&interval, "interval", 15*time.Second, "Queue depth sampling interval")

	return cmd
}

func serveMetrics(ctx context.Context, rt *runtime, interval time.Duration) error {
	logger := common.LoggerFromContext(ctx)

	mux := http.NewServeMux()
	mux.Handle(rt.cfg.Metrics.Path, metrics.Handler())

	server := &http.Server{
		Addr:              rt.cfg.Metrics.Address(),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go metrics.SampleQueueDepths(ctx, interval, rt.queueDepths, func(err error) {
		logger.Log(common.LevelWarn, fmt.Sprintf("[Metrics] Failed to sample queue depths: %v", err), nil)
	})

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe()
	}()

	logger.Log(common.LevelInfo, fmt.Sprintf("[Metrics] Serving metrics on http://%s%s", server.Addr, rt.cfg.Metrics.Path), nil)

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Log(common.LevelInfo, "[Metrics] Shutting down metrics server", nil)
	return server.Shutdown(shutdownCtx)
}

// queueDepths counts the pending transfers of every registered manager
func (rt *runtime) queueDepths(ctx context.Context) (map[int]int, error) {
	managers, err := rt.managerRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list managers: %w", err)
	}

	queue := rt.registry.Queue()
	depths := make(map[int]int, len(managers))
	for _, m := range managers {
		count, err := queue.Count(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		depths[m.ID.Value()] = count
	}
	return depths, nil
}
