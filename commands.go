package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"todo-dashboard/config"
	"todo-dashboard/database"
	"todo-dashboard/handlers"
	"todo-dashboard/utilities"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

var envFile string

var rootCmd = &cobra.Command{
	Use:   "todo-dashboard",
	Short: "Task list with a status dashboard",
	Long: `todo-dashboard tracks tasks in PostgreSQL and renders a dashboard
with a status distribution pie chart and a status count bar chart.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Apply migrations and start the HTTP server",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	RunE:  runMigrate,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "todo-dashboard version %s\n", Version)
	},
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "path to the .env file")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration, starts logging and opens a migrated database.
func setup(ctx context.Context) (*config.Config, *sql.DB, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, nil, err
	}

	utilities.InitLogger(cfg.LogLevel)
	if !cfg.EnvFileLoaded {
		utilities.LogWarn("No %s file found, using process environment only", envFile)
	}

	if err := utilities.InitSentry(cfg.SentryDSN, cfg.SentryEnvironment, Version); err != nil {
		utilities.LogError(err, "Error initializing Sentry")
	}

	db, err := database.ConnectPostgres(ctx, cfg.DSN())
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := database.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("running migrations: %w", err)
	}
	utilities.LogInfo("Migrations complete")

	return cfg, db, nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	_, db, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	return db.Close()
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, db, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer db.Close()
	defer utilities.FlushSentry(2 * time.Second)

	taskHandler, err := handlers.NewTaskHandler(database.NewTaskRepository(db))
	if err != nil {
		return fmt.Errorf("loading templates: %w", err)
	}

	srv := &http.Server{
		Addr:         cfg.ListenAddr(),
		Handler:      NewRouter(taskHandler, cfg.AllowedOrigins),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		utilities.LogInfo("Server listening on %s", cfg.ListenAddr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-done:
	}

	utilities.LogInfo("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	utilities.LogInfo("Server stopped")
	return nil
}
