package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/school-library/library/internal/model"
	"github.com/Astemirdum/school-library/library/internal/policy"
)

type counter struct {
	key string
	fn  func(ctx context.Context) (int, error)
}

// collectStats runs counters concurrently.
func collectStats(ctx context.Context, counters []counter) (map[string]int, error) {
	values := make([]int, len(counters))
	g, gCtx := errgroup.WithContext(ctx)
	for i, c := range counters {
		i, c := i, c
		g.Go(func() error {
			n, err := c.fn(gCtx)
			values[i] = n
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	stats := make(map[string]int, len(counters))
	for i, c := range counters {
		stats[c.key] = values[i]
	}
	return stats, nil
}

func (s *Service) Dashboard(ctx context.Context, actor model.Actor) (model.Dashboard, error) {
	if err := policy.Require(s.policy, actor, model.CapViewLibrary); err != nil {
		return model.Dashboard{}, err
	}
	var (
		d   model.Dashboard
		err error
	)
	switch actor.Role {
	case model.RoleLibrarian:
		d, err = s.librarianDashboard(ctx)
	case model.RoleStudent:
		d, err = s.studentDashboard(ctx, actor)
	case model.RoleTeacher:
		d, err = s.teacherDashboard(ctx, actor)
	}
	if err != nil {
		return model.Dashboard{}, err
	}
	d.Role = actor.Role
	if d.RecentActivity == nil {
		d.RecentActivity = []model.Activity{}
	}
	return d, nil
}

func (s *Service) librarianDashboard(ctx context.Context) (model.Dashboard, error) {
	today := s.today()
	stats, err := collectStats(ctx, []counter{
		{model.StatTotalBooks, s.repo.CountBooks},
		{model.StatPendingRequests, func(ctx context.Context) (int, error) {
			return s.repo.CountRequests(ctx, 0, model.StatusPending)
		}},
		{model.StatActiveBorrows, func(ctx context.Context) (int, error) {
			return s.repo.CountOpenLogs(ctx, 0)
		}},
		{model.StatOverdueBooks, func(ctx context.Context) (int, error) {
			return s.repo.CountOverdue(ctx, today)
		}},
	})
	if err != nil {
		return model.Dashboard{}, err
	}
	reqs, err := s.repo.ListRequests(ctx, model.RequestQuery{Limit: model.RecentActivityLimit})
	if err != nil {
		return model.Dashboard{}, err
	}
	activity := make([]model.Activity, 0, len(reqs))
	for _, r := range reqs {
		activity = append(activity, model.Activity{
			ID:     r.ID,
			User:   r.UserName,
			Book:   r.BookTitle,
			Status: r.Status,
			Date:   r.CreatedAt,
		})
	}
	return model.Dashboard{Stats: stats, RecentActivity: activity}, nil
}

func (s *Service) studentDashboard(ctx context.Context, actor model.Actor) (model.Dashboard, error) {
	grade, _, err := s.studentGrade(ctx, actor)
	if err != nil {
		return model.Dashboard{}, err
	}
	stats, err := collectStats(ctx, []counter{
		{model.StatTotalBooks, s.repo.CountBooks},
		{model.StatMyActiveBooks, func(ctx context.Context) (int, error) {
			return s.repo.CountOpenLogs(ctx, actor.ID)
		}},
		{model.StatMyPendingRequests, func(ctx context.Context) (int, error) {
			return s.repo.CountRequests(ctx, actor.ID, model.StatusPending)
		}},
		{model.StatLearningFiles, func(ctx context.Context) (int, error) {
			if grade == 0 {
				return 0, nil
			}
			return s.repo.CountLearningFiles(ctx, model.LearningFileQuery{Grade: grade})
		}},
	})
	if err != nil {
		return model.Dashboard{}, err
	}
	reqs, err := s.repo.ListRequests(ctx, model.RequestQuery{UserID: actor.ID, Limit: model.RecentActivityLimit})
	if err != nil {
		return model.Dashboard{}, err
	}
	activity := make([]model.Activity, 0, len(reqs))
	for _, r := range reqs {
		activity = append(activity, model.Activity{
			ID:     r.ID,
			Book:   r.BookTitle,
			Status: r.Status,
			Date:   r.CreatedAt,
		})
	}
	return model.Dashboard{Stats: stats, RecentActivity: activity}, nil
}

func (s *Service) teacherDashboard(ctx context.Context, actor model.Actor) (model.Dashboard, error) {
	stats, err := collectStats(ctx, []counter{
		{model.StatTotalBooks, s.repo.CountBooks},
		{model.StatMyPendingRequests, func(ctx context.Context) (int, error) {
			return s.repo.CountRequests(ctx, actor.ID, model.StatusPending)
		}},
		{model.StatUploadedFiles, func(ctx context.Context) (int, error) {
			return s.repo.CountLearningFiles(ctx, model.LearningFileQuery{TeacherID: actor.ID})
		}},
	})
	if err != nil {
		return model.Dashboard{}, err
	}
	files, err := s.repo.ListLearningFiles(ctx, model.LearningFileQuery{TeacherID: actor.ID, Limit: model.RecentActivityLimit})
	if err != nil {
		return model.Dashboard{}, err
	}
	activity := make([]model.Activity, 0, len(files))
	for _, f := range files {
		activity = append(activity, model.Activity{
			ID:    f.ID,
			Title: f.Title,
			Grade: f.GradeLevel,
			Type:  "upload",
			Date:  f.CreatedAt,
		})
	}
	return model.Dashboard{Stats: stats, RecentActivity: activity}, nil
}
