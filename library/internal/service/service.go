package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Astemirdum/school-library/library/internal/policy"
	libraryRepo "github.com/Astemirdum/school-library/library/internal/repository"
	"github.com/Astemirdum/school-library/pkg/auth"
	"github.com/Astemirdum/school-library/pkg/kafka"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BlobStore interface {
	Store(ctx context.Context, folder, name string, data []byte) (string, error)
	Exists(ctx context.Context, path string) (bool, error)
	Delete(ctx context.Context, path string) (bool, error)
	URL(path string) string
}

type Publisher interface {
	Publish(ctx context.Context, ev kafka.BorrowEvent) error
}

type TokenIssuer interface {
	Issue(id auth.Identity) (string, time.Time, error)
}

const (
	DefaultEmailDomain = "libratech.com"
	learningFilesDir   = "learning_files"
)

type Service struct {
	log         *zap.Logger
	repo        libraryRepo.Repository
	policy      policy.Policy
	blobs       BlobStore
	events      Publisher
	tokens      TokenIssuer
	now         func() time.Time
	emailDomain string
}

type Option func(*Service)

func WithPolicy(p policy.Policy) Option {
	return func(s *Service) { s.policy = p }
}

func WithBlobStore(b BlobStore) Option {
	return func(s *Service) { s.blobs = b }
}

func WithPublisher(p Publisher) Option {
	return func(s *Service) { s.events = p }
}

func WithTokenIssuer(t TokenIssuer) Option {
	return func(s *Service) { s.tokens = t }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithEmailDomain(domain string) Option {
	return func(s *Service) {
		if domain != "" {
			s.emailDomain = domain
		}
	}
}

func NewService(repo libraryRepo.Repository, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:         log.Named("service"),
		repo:        repo,
		policy:      policy.Static{},
		events:      kafka.Nop{},
		now:         time.Now,
		emailDomain: DefaultEmailDomain,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) today() time.Time {
	return s.dateOf(s.now())
}

// dateOf drops the clock part of t, keeping its calendar date in the
// service clock's location.
func (s *Service) dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, s.now().Location())
}

// publish never fails the caller; the state change is already committed.
func (s *Service) publish(ctx context.Context, ev kafka.BorrowEvent) {
	ev.Timestamp = s.now()
	if err := s.events.Publish(ctx, ev); err != nil {
		s.log.Warn("publish borrow event",
			zap.String("type", string(ev.EventType)),
			zap.Int64("request_id", ev.RequestID),
			zap.Error(err))
	}
}
