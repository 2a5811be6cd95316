package main

import (
	"context"
	stdLog "log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Astemirdum/school-library/library/app"
	"github.com/Astemirdum/school-library/library/config"
	"github.com/Astemirdum/school-library/library/internal/repository"
	"github.com/Astemirdum/school-library/library/internal/service"
	"github.com/Astemirdum/school-library/library/migrations"
	"github.com/Astemirdum/school-library/pkg/logger"
	"github.com/Astemirdum/school-library/pkg/postgres"
)

var rootCmd = &cobra.Command{
	Use:           "libctl",
	Short:         "Offline administration of the school library",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// env is what every subcommand needs: a migrated database and a service.
type env struct {
	log   *zap.Logger
	svc   *service.Service
	close func()
}

func newEnv(ctx context.Context) (*env, error) {
	cfg := config.NewConfig()
	log := logger.NewLogger(cfg.Log, "libctl")
	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return nil, err
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		db.Close()
		return nil, err
	}
	blobs, err := app.NewBlobStore(cfg.Storage, log)
	if err != nil {
		db.Close()
		return nil, err
	}
	svc := service.NewService(repo, log,
		service.WithBlobStore(blobs),
		service.WithEmailDomain(cfg.Library.EmailDomain),
	)
	return &env{log: log, svc: svc, close: db.Close}, nil
}

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		stdLog.Fatal("load envs from ", envFile, ": ", err)
	}
	rootCmd.AddCommand(migrateCmd, bootstrapCmd, importCmd)
	if err := rootCmd.Execute(); err != nil {
		stdLog.Println(err)
		os.Exit(1)
	}
}
