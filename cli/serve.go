package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mintgene/allocation-ledger/allocconfig"
	"github.com/mintgene/allocation-ledger/authenticator"
	"github.com/mintgene/allocation-ledger/controllers"
	ledgermiddleware "github.com/mintgene/allocation-ledger/middleware"
	"github.com/mintgene/allocation-ledger/scheduler"
)

const shutdownTimeout = 15 * time.Second

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the background scheduler",
	Long: `Starts the JSON API, the periodic unallocated-sweep scan and the audit
chain check. When ALLOCATION_CONFIG_PATH is set the file is watched and any
change is reported as drift; the running table is never reloaded.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(logger)
	if err != nil {
		return err
	}
	defer a.Close()

	sched := newScheduler(a)
	sched.Start(ctx)
	defer sched.Stop()

	if a.cfg.WatchAllocationFile && a.cfg.AllocationConfigPath != "" {
		go func() {
			if err := allocconfig.Watch(ctx, a.cfg.AllocationConfigPath, a.allocation, logger.Named("config"), nil); err != nil {
				logger.Error("Allocation config watcher stopped", zap.Error(err))
			}
		}()
	}

	var verifier authenticator.TokenVerifier
	if a.cfg.OIDCIssuer != "" {
		verifier, err = authenticator.NewOpenIDVerifier(ctx, authenticator.Config{
			IssuerURL: a.cfg.OIDCIssuer,
			Audience:  a.cfg.OIDCAudience,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize OIDC verifier: %w", err)
		}
	} else {
		logger.Warn("OIDC_ISSUER not set, API is unauthenticated")
	}

	ctrl := controllers.NewControllers(a.services, a.allocation, sched, logger.Named("http"))
	srv := &http.Server{
		Addr:              ":" + a.cfg.Port,
		Handler:           setupRouter(ctrl, verifier, logger.Named("http")),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Allocation ledger listening",
			zap.String("addr", srv.Addr),
			zap.String("database", a.cfg.DatabasePath),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// newScheduler registers the periodic allocation scan and audit chain check
func newScheduler(a *app) *scheduler.Scheduler {
	sched := scheduler.New(logger.Named("scheduler"))

	sched.Add(scheduler.TaskAllocateSweeps, a.cfg.ScanInterval, true, func(ctx context.Context) error {
		result, err := a.services.Allocation.ProcessUnallocatedSweeps(ctx)
		if err != nil {
			return err
		}
		if result.Processed > 0 {
			logger.Info("Unallocated sweep scan finished",
				zap.Int("processed", result.Processed),
				zap.Int("succeeded", result.Succeeded),
				zap.Int("failed", result.Failed),
			)
		}
		return nil
	})

	sched.Add(scheduler.TaskVerifyChain, a.cfg.ChainCheckInterval, false, func(ctx context.Context) error {
		result, err := a.services.Audit.VerifyChain(ctx)
		if err != nil {
			return err
		}
		if !result.Valid {
			logger.Error("Audit chain verification failed",
				zap.Int64("broken_at", result.BrokenAt),
				zap.String("reason", string(result.Reason)),
				zap.String("detail", result.Detail),
			)
			return nil
		}
		logger.Debug("Audit chain verified",
			zap.Int("entries", result.Entries),
			zap.Int64("head_id", result.HeadID),
			zap.String("head_digest", result.HeadDigest),
		)
		return nil
	})

	return sched
}

// setupRouter configures all routes. The API group requires a bearer token
// when verifier is not nil.
func setupRouter(ctrl *controllers.Controllers, verifier authenticator.TokenVerifier, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(ledgermiddleware.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// PUBLIC ROUTES (no authentication required)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "service": "allocation-ledger"}`)
	})

	// PROTECTED ROUTES (authentication required when configured)
	r.Route("/api", func(r chi.Router) {
		if verifier != nil {
			r.Use(ledgermiddleware.RequireAuth(verifier, logger))
		}
		ctrl.Register(r)
	})

	return r
}
