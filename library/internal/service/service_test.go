package service

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"go.uber.org/zap"

	"github.com/Astemirdum/school-library/library/internal/model"
	mock_service "github.com/Astemirdum/school-library/library/internal/service/mocks"
)

var testNow = time.Date(2026, time.October, 18, 10, 0, 0, 0, time.UTC)

type testEnv struct {
	svc    *Service
	repo   *memRepo
	blobs  *mock_service.MockBlobStore
	events *mock_service.MockPublisher
	tokens *mock_service.MockTokenIssuer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	c := gomock.NewController(t)
	env := &testEnv{
		repo:   newMemRepo(),
		blobs:  mock_service.NewMockBlobStore(c),
		events: mock_service.NewMockPublisher(c),
		tokens: mock_service.NewMockTokenIssuer(c),
	}
	env.svc = NewService(env.repo, zap.NewNop(),
		WithBlobStore(env.blobs),
		WithPublisher(env.events),
		WithTokenIssuer(env.tokens),
		WithClock(func() time.Time { return testNow }),
		WithEmailDomain("school.test"),
	)
	return env
}

// quietEvents accepts any number of published events.
func (e *testEnv) quietEvents() {
	e.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func actorOf(u model.User) model.Actor {
	return model.Actor{ID: u.ID, Role: u.Role}
}

func intPtr(v int) *int { return &v }

func tomorrow() model.Date {
	return model.Date{Time: testNow.AddDate(0, 0, 1)}
}
