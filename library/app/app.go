package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/school-library/library/config"
	"github.com/Astemirdum/school-library/library/internal/handler"
	"github.com/Astemirdum/school-library/library/internal/repository"
	"github.com/Astemirdum/school-library/library/internal/server"
	"github.com/Astemirdum/school-library/library/internal/service"
	"github.com/Astemirdum/school-library/library/migrations"
	"github.com/Astemirdum/school-library/pkg/auth"
	"github.com/Astemirdum/school-library/pkg/blob"
	"github.com/Astemirdum/school-library/pkg/kafka"
	"github.com/Astemirdum/school-library/pkg/logger"
	"github.com/Astemirdum/school-library/pkg/postgres"
)

type eventLog interface {
	service.Publisher
	Close() error
}

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "library")
	if cfg.Auth.Secret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	var hOpts []handler.Option
	blobs, err := NewBlobStore(cfg.Storage, log)
	if err != nil {
		log.Fatal("blob store", zap.Error(err))
	}
	if local, ok := blobs.(*blob.Local); ok {
		hOpts = append(hOpts, handler.WithStatic(cfg.Storage.BaseURL, local.Root()))
	}

	events, err := newEventLog(cfg.Kafka, log)
	if err != nil {
		log.Fatal("kafka.NewAsyncProducer", zap.Error(err))
	}

	issuer := auth.NewIssuer(cfg.Auth)
	svc := service.NewService(repo, log,
		service.WithBlobStore(blobs),
		service.WithPublisher(events),
		service.WithTokenIssuer(issuer),
		service.WithEmailDomain(cfg.Library.EmailDomain),
	)

	h := handler.New(svc, issuer, log, hOpts...)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	if err = events.Close(); err != nil {
		log.Error("event log close", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}

// NewBlobStore picks the storage backend named in cfg.
func NewBlobStore(cfg config.Storage, log *zap.Logger) (service.BlobStore, error) {
	switch cfg.Driver {
	case config.StorageLocal, "":
		return blob.NewLocal(cfg.BasePath, cfg.BaseURL, log)
	case config.StorageSupabase:
		return blob.NewSupabase(cfg.Supabase, log), nil
	}
	return nil, errors.Errorf("unknown storage driver %q", cfg.Driver)
}

func newEventLog(cfg kafka.Config, log *zap.Logger) (eventLog, error) {
	if !cfg.Enabled() {
		log.Info("kafka disabled, borrow events are not published")
		return kafka.Nop{}, nil
	}
	producer, err := kafka.NewAsyncProducer(cfg)
	if err != nil {
		return nil, err
	}
	return kafka.NewEventLog(producer, kafka.BorrowTopic, log), nil
}
