package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/Evowe/baseball-stats-api/internal/config"
	"github.com/Evowe/baseball-stats-api/internal/infrastructure/auth"
	"github.com/Evowe/baseball-stats-api/internal/infrastructure/repository/postgres"
	"github.com/Evowe/baseball-stats-api/internal/interfaces/httpapi"
	"github.com/Evowe/baseball-stats-api/internal/platform/cache"
	"github.com/Evowe/baseball-stats-api/internal/platform/logging"
	"github.com/Evowe/baseball-stats-api/internal/usecase"
)

// NewHTTPServer wires the database, repositories, services, and HTTP router.
// The returned cleanup func closes the database handle.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	db, err := openDB(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	peopleRepo := postgres.NewPeopleRepository(db)
	teamsRepo := postgres.NewTeamsRepository(db)
	battingRepo := postgres.NewBattingRepository(db)
	pitchingRepo := postgres.NewPitchingRepository(db)
	fieldingRepo := postgres.NewFieldingRepository(db)
	hofRepo := postgres.NewHallOfFameRepository(db)
	accountRepo := postgres.NewAccountRepository(db)
	feedRepo := postgres.NewFeedRepository(db)

	var suggestionCache *cache.Store
	if cfg.CacheEnabled {
		suggestionCache = cache.NewStore(cfg.CacheTTL)
	}

	sessions := auth.NewSessionStore(cache.NewStore(cfg.SessionTTL))

	statsSvc := usecase.NewStatsService(
		peopleRepo,
		teamsRepo,
		battingRepo,
		pitchingRepo,
		fieldingRepo,
		hofRepo,
		suggestionCache,
	)
	exportSvc := usecase.NewExportService()
	feedSvc := usecase.NewFeedService(feedRepo)
	accountSvc := usecase.NewAccountService(accountRepo, sessions)

	if err := accountSvc.EnsureDefaultAdmin(ctx, cfg.DefaultAdminUsername, cfg.DefaultAdminEmail, cfg.DefaultAdminPassword); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("bootstrap default admin: %w", err)
	}

	handler := httpapi.NewHandler(statsSvc, exportSvc, feedSvc, accountSvc, logger)
	router := httpapi.NewRouter(handler, accountSvc, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = db.Close()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, db.Close, nil
}

func openDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open("postgres", dbURL,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}
