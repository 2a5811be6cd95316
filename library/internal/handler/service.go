package handler

import (
	"context"
	"io"

	"github.com/Astemirdum/school-library/library/internal/model"
	"github.com/Astemirdum/school-library/library/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var _ LibraryService = (*service.Service)(nil)

type LibraryService interface {
	Authorize(ctx context.Context, in model.AuthorizeRequest) (model.AuthorizeResponse, error)
	ChangePassword(ctx context.Context, actor model.Actor, in model.ChangePasswordRequest) (model.AuthorizeResponse, error)
	Dashboard(ctx context.Context, actor model.Actor) (model.Dashboard, error)

	CreateBook(ctx context.Context, actor model.Actor, in model.CreateBookRequest) (model.Book, error)
	GetBook(ctx context.Context, actor model.Actor, id int64) (model.BookDetails, error)
	ListBooks(ctx context.Context, actor model.Actor, f model.BookFilter) (model.ListBooks, error)
	UpdateBook(ctx context.Context, actor model.Actor, id int64, upd model.BookUpdate) (model.Book, error)
	DeleteBook(ctx context.Context, actor model.Actor, id int64) error
	DeleteBooks(ctx context.Context, actor model.Actor, ids []int64) (int64, error)
	ImportBooks(ctx context.Context, actor model.Actor, r io.Reader, filename string) (model.ImportResult, error)

	RequestBorrow(ctx context.Context, actor model.Actor, bookID int64, in model.CreateBorrowRequest) (model.BorrowRequest, error)
	CancelRequest(ctx context.Context, actor model.Actor, requestID int64) error
	ApproveRequest(ctx context.Context, actor model.Actor, requestID int64) (model.BorrowRequest, error)
	RejectRequest(ctx context.Context, actor model.Actor, requestID int64, reason string) (model.BorrowRequest, error)
	ReturnBook(ctx context.Context, actor model.Actor, bookID int64) error
	CheckIn(ctx context.Context, actor model.Actor, userID, bookID int64) error
	BorrowStatus(ctx context.Context, actor model.Actor, bookID int64) (*model.BorrowStatus, error)
	MyRequests(ctx context.Context, actor model.Actor) ([]model.RequestView, error)
	MyBooks(ctx context.Context, actor model.Actor) ([]model.LoanView, error)
	PendingRequests(ctx context.Context, actor model.Actor) ([]model.RequestView, error)
	ActiveBorrows(ctx context.Context, actor model.Actor, f model.ActiveBorrowFilter) (model.ListActiveBorrows, error)

	ListUsers(ctx context.Context, actor model.Actor, f model.UserFilter) (model.ListUsers, error)
	GetUser(ctx context.Context, actor model.Actor, id int64) (model.User, error)
	CreateUser(ctx context.Context, actor model.Actor, in model.CreateUserRequest) (model.User, error)
	UpdateUser(ctx context.Context, actor model.Actor, id int64, upd model.UserUpdate) (model.User, error)
	DeleteUser(ctx context.Context, actor model.Actor, id int64) error
	DeleteUsers(ctx context.Context, actor model.Actor, ids []int64) (int64, error)
	ImportUsers(ctx context.Context, actor model.Actor, r io.Reader, filename string) (model.ImportResult, error)

	ListLearningFiles(ctx context.Context, actor model.Actor, f model.LearningFileFilter) ([]model.LearningFileView, error)
	UploadLearningFile(ctx context.Context, actor model.Actor, in model.UploadLearningFile) (model.LearningFile, error)
	DownloadLearningFile(ctx context.Context, actor model.Actor, id int64) (service.Download, error)
	UpdateLearningFile(ctx context.Context, actor model.Actor, id int64, upd model.LearningFileUpdate) (model.LearningFile, error)
	DeleteLearningFile(ctx context.Context, actor model.Actor, id int64) error
}
