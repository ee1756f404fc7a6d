package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/frahmantamala/recruitment-service/internal"
	"github.com/frahmantamala/recruitment-service/internal/application"
	applicationPostgres "github.com/frahmantamala/recruitment-service/internal/application/postgres"
	"github.com/frahmantamala/recruitment-service/internal/auth"
	authPostgres "github.com/frahmantamala/recruitment-service/internal/auth/postgres"
	"github.com/frahmantamala/recruitment-service/internal/competence"
	competencePostgres "github.com/frahmantamala/recruitment-service/internal/competence/postgres"
	"github.com/frahmantamala/recruitment-service/internal/transport"
	"github.com/frahmantamala/recruitment-service/internal/transport/rest"
	"github.com/frahmantamala/recruitment-service/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

// Dependencies is the explicitly constructed service graph: built once at
// startup and handed to the router, no implicit singletons.
type Dependencies struct {
	Config             *internal.Config
	DB                 *sqlx.DB
	GormDB             *gorm.DB
	Router             *chi.Mux
	Logger             *slog.Logger
	AuthHandler        *auth.Handler
	ApplicationHandler *application.Handler
	CompetenceHandler  *competence.Handler
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	rest.RegisterAllRoutes(
		deps.Router,
		deps.DB.DB,
		deps.AuthHandler,
		deps.ApplicationHandler,
		deps.CompetenceHandler,
		deps.Config.Server.AllowedOrigins,
		deps.Logger,
	)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Logging.Level, config.Logging.Format)
	lg := logger.LoggerWrapper()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db.DB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm connection: %w", err)
	}

	tokenGen := auth.NewJWTTokenGenerator(config.Security.SessionSecret, config.Security.SessionDuration)
	authService := auth.NewService(authPostgres.NewRepository(gormDB), tokenGen, config.Security.BCryptCost, lg)
	authHandler := auth.NewHandler(authService)

	applicationService := application.NewService(applicationPostgres.NewApplicationRepository(gormDB), lg)
	applicationHandler := application.NewHandler(applicationService)

	competenceService := competence.NewService(competencePostgres.NewCompetenceRepository(gormDB), lg)
	competenceHandler := competence.NewHandler(transport.NewBaseHandler(lg), competenceService)

	return &Dependencies{
		Config:             config,
		DB:                 db,
		GormDB:             gormDB,
		Router:             chi.NewRouter(),
		Logger:             lg,
		AuthHandler:        authHandler,
		ApplicationHandler: applicationHandler,
		CompetenceHandler:  competenceHandler,
	}, nil
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)

	// verify connection; close underlying *sql.DB on failure
	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
