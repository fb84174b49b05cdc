package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"docproc-backend/internal/batch"
	"docproc-backend/internal/classify"
	"docproc-backend/internal/documents"
	"docproc-backend/internal/persons"
	"docproc-backend/internal/pipeline"
	"docproc-backend/internal/shared/config"
	"docproc-backend/internal/shared/server"
	"docproc-backend/internal/shared/storage/db"
	"docproc-backend/internal/shared/storage/object"
	localstore "docproc-backend/internal/shared/storage/object/local"
)

// App holds the wired application dependencies.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	DB              *sql.DB
	Store           object.ObjectStore
	DocumentsRepo   documents.Repo
	PersonsRepo     persons.Repo
	Processor       *pipeline.Processor
	BatchHandler    *batch.Handler
	DocumentHandler *documents.Handler
	PersonHandler   *persons.Handler
}

// Build prepares all dependencies and the HTTP router. With an empty
// DATABASE_URL in a dev-like environment everything runs on in-memory
// repositories; in prod the database is required.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  localstore.New(cfg.LocalStoreDir),
	}

	if sqlDB != nil {
		app.DocumentsRepo = &documents.PGRepo{DB: sqlDB}
		app.PersonsRepo = &persons.PGRepo{DB: sqlDB}
	} else {
		app.DocumentsRepo = documents.NewMemoryRepo()
		app.PersonsRepo = persons.NewMemoryRepo()
	}

	app.Processor = &pipeline.Processor{
		Classifier: classify.New(),
		Documents:  app.DocumentsRepo,
		Persons:    app.PersonsRepo,
	}
	app.BatchHandler = &batch.Handler{
		Processor: app.Processor,
		Archive:   app.Store,
		MaxBytes:  cfg.MaxBatchBytes,
	}
	app.DocumentHandler = documents.NewHandler(app.DocumentsRepo)
	app.PersonHandler = persons.NewHandler(app.PersonsRepo)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		BatchHandler:    app.BatchHandler,
		DocumentHandler: app.DocumentHandler,
		PersonHandler:   app.PersonHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
