package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/school-library/library/internal/errs"
	"github.com/Astemirdum/school-library/library/internal/model"
	"github.com/Astemirdum/school-library/library/internal/policy"
	libraryRepo "github.com/Astemirdum/school-library/library/internal/repository"
	"github.com/Astemirdum/school-library/pkg/kafka"
)

// RequestBorrow opens a pending request for bookID on behalf of the actor.
func (s *Service) RequestBorrow(ctx context.Context, actor model.Actor, bookID int64, in model.CreateBorrowRequest) (model.BorrowRequest, error) {
	if err := policy.Require(s.policy, actor, model.CapBorrowBooks); err != nil {
		return model.BorrowRequest{}, err
	}
	due := in.ExpectedReturnDate.Time
	if due.IsZero() {
		return model.BorrowRequest{}, errors.Wrap(errs.ErrValidation, "expected return date is required")
	}
	if !s.dateOf(due).After(s.today()) {
		return model.BorrowRequest{}, errors.Wrap(errs.ErrValidation, "expected return date must be after today")
	}

	var created model.BorrowRequest
	err := s.repo.WithTx(ctx, func(tx libraryRepo.Repository) error {
		if _, err := tx.GetBook(ctx, bookID); err != nil {
			return err
		}
		pending, err := tx.HasPendingRequest(ctx, actor.ID, bookID)
		if err != nil {
			return err
		}
		if pending {
			return errs.ErrDuplicateRequest
		}
		created, err = tx.CreateRequest(ctx, model.BorrowRequest{
			UserID:             actor.ID,
			BookID:             bookID,
			Status:             model.StatusPending,
			ExpectedReturnDate: s.dateOf(due),
		})
		return err
	})
	if err != nil {
		return model.BorrowRequest{}, err
	}

	s.publish(ctx, kafka.BorrowEvent{
		EventType: kafka.EventRequested,
		RequestID: created.ID,
		UserID:    actor.ID,
		BookID:    bookID,
		ActorID:   actor.ID,
	})
	return created, nil
}

// CancelRequest deletes a pending request. Only its creator may cancel it.
func (s *Service) CancelRequest(ctx context.Context, actor model.Actor, requestID int64) error {
	var req model.BorrowRequest
	err := s.repo.WithTx(ctx, func(tx libraryRepo.Repository) error {
		var err error
		req, err = tx.GetRequestForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if req.UserID != actor.ID {
			return errors.Wrap(errs.ErrForbidden, "only the requester can cancel")
		}
		if req.Status != model.StatusPending {
			return errors.Wrapf(errs.ErrInvalidState, "request is %s", req.Status)
		}
		return tx.DeleteRequest(ctx, requestID)
	})
	if err != nil {
		return err
	}

	s.publish(ctx, kafka.BorrowEvent{
		EventType: kafka.EventCancelled,
		RequestID: req.ID,
		UserID:    req.UserID,
		BookID:    req.BookID,
		ActorID:   actor.ID,
	})
	return nil
}

// ApproveRequest moves a pending request to approved and opens the
// custody log in the same transaction.
func (s *Service) ApproveRequest(ctx context.Context, actor model.Actor, requestID int64) (model.BorrowRequest, error) {
	if err := policy.Require(s.policy, actor, model.CapManageBorrows); err != nil {
		return model.BorrowRequest{}, err
	}

	var req model.BorrowRequest
	err := s.repo.WithTx(ctx, func(tx libraryRepo.Repository) error {
		var err error
		req, err = s.transition(ctx, tx, requestID, model.StatusApproved)
		if err != nil {
			return err
		}
		_, err = tx.GetOpenLogForUpdate(ctx, req.UserID, req.BookID)
		switch {
		case err == nil:
			return errors.Wrap(errs.ErrInvalidState, "borrower already holds this book")
		case !errors.Is(err, errs.ErrNotFound):
			return err
		}

		approver := actor.ID
		req.Status = model.StatusApproved
		req.ApprovedBy = &approver
		if err := tx.UpdateRequest(ctx, req); err != nil {
			return err
		}
		_, err = tx.CreateLog(ctx, model.BorrowLog{
			UserID:     req.UserID,
			BookID:     req.BookID,
			BorrowedAt: s.now(),
		})
		return err
	})
	if err != nil {
		return model.BorrowRequest{}, err
	}

	s.publish(ctx, kafka.BorrowEvent{
		EventType: kafka.EventApproved,
		RequestID: req.ID,
		UserID:    req.UserID,
		BookID:    req.BookID,
		ActorID:   actor.ID,
	})
	return req, nil
}

// RejectRequest closes a pending request with an optional reason.
func (s *Service) RejectRequest(ctx context.Context, actor model.Actor, requestID int64, reason string) (model.BorrowRequest, error) {
	if err := policy.Require(s.policy, actor, model.CapManageBorrows); err != nil {
		return model.BorrowRequest{}, err
	}

	var req model.BorrowRequest
	err := s.repo.WithTx(ctx, func(tx libraryRepo.Repository) error {
		var err error
		req, err = s.transition(ctx, tx, requestID, model.StatusRejected)
		if err != nil {
			return err
		}
		approver := actor.ID
		req.Status = model.StatusRejected
		req.ApprovedBy = &approver
		if reason = strings.TrimSpace(reason); reason != "" {
			req.RejectReason = &reason
		}
		return tx.UpdateRequest(ctx, req)
	})
	if err != nil {
		return model.BorrowRequest{}, err
	}

	s.publish(ctx, kafka.BorrowEvent{
		EventType: kafka.EventRejected,
		RequestID: req.ID,
		UserID:    req.UserID,
		BookID:    req.BookID,
		ActorID:   actor.ID,
	})
	return req, nil
}

func (s *Service) transition(ctx context.Context, tx libraryRepo.Repository, requestID int64, next model.BorrowStatus) (model.BorrowRequest, error) {
	req, err := tx.GetRequestForUpdate(ctx, requestID)
	if err != nil {
		return model.BorrowRequest{}, err
	}
	if !req.Status.CanTransitionTo(next) {
		return model.BorrowRequest{}, errors.Wrapf(errs.ErrInvalidState, "request is %s", req.Status)
	}
	return req, nil
}

// ReturnBook closes the actor's open log for bookID.
func (s *Service) ReturnBook(ctx context.Context, actor model.Actor, bookID int64) error {
	if err := policy.Require(s.policy, actor, model.CapBorrowBooks); err != nil {
		return err
	}
	return s.closeBorrow(ctx, actor, actor.ID, bookID)
}

// CheckIn lets a librarian record a return on the borrower's behalf.
func (s *Service) CheckIn(ctx context.Context, actor model.Actor, userID, bookID int64) error {
	if err := policy.Require(s.policy, actor, model.CapManageBorrows); err != nil {
		return err
	}
	return s.closeBorrow(ctx, actor, userID, bookID)
}

func (s *Service) closeBorrow(ctx context.Context, actor model.Actor, userID, bookID int64) error {
	err := s.repo.WithTx(ctx, func(tx libraryRepo.Repository) error {
		log, err := tx.GetOpenLogForUpdate(ctx, userID, bookID)
		if err != nil {
			return err
		}
		if err := tx.CloseLog(ctx, log.ID, s.now()); err != nil {
			return err
		}
		return tx.MarkReturned(ctx, userID, bookID)
	})
	if err != nil {
		return err
	}

	s.log.Info("book returned", zap.Int64("user_id", userID), zap.Int64("book_id", bookID), zap.Int64("actor_id", actor.ID))
	s.publish(ctx, kafka.BorrowEvent{
		EventType: kafka.EventReturned,
		UserID:    userID,
		BookID:    bookID,
		ActorID:   actor.ID,
	})
	return nil
}

// BorrowStatus reports the actor's live (pending or approved) request
// status for bookID, or nil.
func (s *Service) BorrowStatus(ctx context.Context, actor model.Actor, bookID int64) (*model.BorrowStatus, error) {
	if err := policy.Require(s.policy, actor, model.CapViewLibrary); err != nil {
		return nil, err
	}
	return s.repo.LatestRequestStatus(ctx, actor.ID, bookID)
}

func (s *Service) MyRequests(ctx context.Context, actor model.Actor) ([]model.RequestView, error) {
	if err := policy.Require(s.policy, actor, model.CapBorrowBooks); err != nil {
		return nil, err
	}
	return s.repo.ListRequests(ctx, model.RequestQuery{
		UserID:   actor.ID,
		Statuses: []model.BorrowStatus{model.StatusPending, model.StatusRejected, model.StatusApproved},
	})
}

func (s *Service) MyBooks(ctx context.Context, actor model.Actor) ([]model.LoanView, error) {
	if err := policy.Require(s.policy, actor, model.CapBorrowBooks); err != nil {
		return nil, err
	}
	return s.repo.ListOpenLoans(ctx, actor.ID)
}

func (s *Service) PendingRequests(ctx context.Context, actor model.Actor) ([]model.RequestView, error) {
	if err := policy.Require(s.policy, actor, model.CapManageBorrows); err != nil {
		return nil, err
	}
	return s.repo.ListRequests(ctx, model.RequestQuery{
		Statuses: []model.BorrowStatus{model.StatusPending},
	})
}

func (s *Service) ActiveBorrows(ctx context.Context, actor model.Actor, f model.ActiveBorrowFilter) (model.ListActiveBorrows, error) {
	if err := policy.Require(s.policy, actor, model.CapManageBorrows); err != nil {
		return model.ListActiveBorrows{}, err
	}
	return s.repo.ListActiveBorrows(ctx, f, s.today())
}
