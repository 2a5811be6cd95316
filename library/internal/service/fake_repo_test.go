package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/Astemirdum/school-library/library/internal/errs"
	"github.com/Astemirdum/school-library/library/internal/model"
	libraryRepo "github.com/Astemirdum/school-library/library/internal/repository"
)

type memState struct {
	seq      int64
	books    map[int64]model.Book
	users    map[int64]model.User
	requests map[int64]model.BorrowRequest
	logs     map[int64]model.BorrowLog
	files    map[int64]model.LearningFile
	codeSeqs map[string]int
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s memState) clone() memState {
	return memState{
		seq:      s.seq,
		books:    cloneMap(s.books),
		users:    cloneMap(s.users),
		requests: cloneMap(s.requests),
		logs:     cloneMap(s.logs),
		files:    cloneMap(s.files),
		codeSeqs: cloneMap(s.codeSeqs),
	}
}

// memRepo is an in-memory Repository. Transactions are serialised and
// rolled back by restoring a snapshot.
type memRepo struct {
	txMu sync.Mutex
	mu   sync.Mutex
	st   memState

	locks []string
}

var _ libraryRepo.Repository = (*memRepo)(nil)

func newMemRepo() *memRepo {
	return &memRepo{st: memState{
		books:    map[int64]model.Book{},
		users:    map[int64]model.User{},
		requests: map[int64]model.BorrowRequest{},
		logs:     map[int64]model.BorrowLog{},
		files:    map[int64]model.LearningFile{},
		codeSeqs: map[string]int{},
	}}
}

func (r *memRepo) nextID() int64 {
	r.st.seq++
	return r.st.seq
}

func (r *memRepo) WithTx(_ context.Context, fn func(libraryRepo.Repository) error) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()

	r.mu.Lock()
	snapshot := r.st.clone()
	r.mu.Unlock()

	if err := fn(r); err != nil {
		r.mu.Lock()
		r.st = snapshot
		r.mu.Unlock()
		return err
	}
	return nil
}

// AdvisoryLock only records the key: WithTx already serialises transactions.
func (r *memRepo) AdvisoryLock(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locks = append(r.locks, key)
	return nil
}

func (r *memRepo) NextCodeSequence(_ context.Context, prefix string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.st.codeSeqs[prefix]++
	return r.st.codeSeqs[prefix], nil
}

func (r *memRepo) CreateBook(_ context.Context, book model.Book) (model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.st.books {
		if b.BookCode == book.BookCode {
			return model.Book{}, errs.ErrConflict
		}
	}
	book.ID = r.nextID()
	book.CreatedAt = time.Now()
	r.st.books[book.ID] = book
	return book, nil
}

func (r *memRepo) GetBook(_ context.Context, id int64) (model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.st.books[id]
	if !ok {
		return model.Book{}, errs.ErrNotFound
	}
	return b, nil
}

func (r *memRepo) bookView(b model.Book, viewerID int64) model.BookView {
	v := model.BookView{Book: b, IsAvailable: true}
	for _, l := range r.st.logs {
		if l.BookID == b.ID && l.ReturnedAt == nil {
			v.IsAvailable = false
			if l.UserID == viewerID {
				v.CurrentUserHasBook = true
			}
		}
	}
	var latest int64
	for _, req := range r.st.requests {
		if req.BookID == b.ID && req.UserID == viewerID && req.ID > latest {
			latest = req.ID
			st := req.Status
			v.CurrentUserRequestStatus = &st
		}
	}
	return v
}

func (r *memRepo) GetBookView(_ context.Context, id, viewerID int64) (model.BookView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.st.books[id]
	if !ok {
		return model.BookView{}, errs.ErrNotFound
	}
	return r.bookView(b, viewerID), nil
}

func (r *memRepo) ListBooks(_ context.Context, f model.BookFilter, viewerID int64) (model.ListBooks, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	paging := f.Paging.Normalize()
	var all []model.BookView
	for _, b := range r.st.books {
		if f.Grade != 0 && b.GradeLevel != f.Grade {
			continue
		}
		if f.Subject != "" && !strings.EqualFold(b.Subject, f.Subject) {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(b.Title+" "+b.Author+" "+b.BookCode), strings.ToLower(f.Search)) {
			continue
		}
		all = append(all, r.bookView(b, viewerID))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	paging.TotalElements = len(all)
	from := min(paging.Offset(), len(all))
	to := min(from+paging.PageSize, len(all))
	return model.ListBooks{Paging: paging, Items: all[from:to]}, nil
}

func (r *memRepo) UpdateBook(_ context.Context, id int64, upd model.BookUpdate) (model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.st.books[id]
	if !ok {
		return model.Book{}, errs.ErrNotFound
	}
	b.Title, b.Author, b.Description = upd.Title, upd.Author, upd.Description
	b.GradeLevel, b.Competency, b.Type, b.FilePath = upd.GradeLevel, upd.Competency, upd.Type, upd.FilePath
	r.st.books[id] = b
	return b, nil
}

func (r *memRepo) DeleteBooks(_ context.Context, ids []int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, id := range ids {
		if _, ok := r.st.books[id]; ok {
			delete(r.st.books, id)
			n++
		}
	}
	return n, nil
}

func (r *memRepo) BookHistory(_ context.Context, bookID int64) ([]model.BorrowHistoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.BorrowHistoryItem
	for _, l := range r.st.logs {
		if l.BookID == bookID {
			out = append(out, model.BorrowHistoryItem{
				LogID: l.ID, UserID: l.UserID, UserName: r.st.users[l.UserID].Name,
				BorrowedAt: l.BorrowedAt, ReturnedAt: l.ReturnedAt,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LogID > out[j].LogID })
	return out, nil
}

func (r *memRepo) CreateUser(_ context.Context, user model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.st.users {
		if u.Email == user.Email {
			return model.User{}, errs.ErrConflict
		}
	}
	user.ID = r.nextID()
	user.CreatedAt = time.Now()
	r.st.users[user.ID] = user
	return user, nil
}

func (r *memRepo) GetUser(_ context.Context, id int64) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.st.users[id]
	if !ok {
		return model.User{}, errs.ErrNotFound
	}
	return u, nil
}

func (r *memRepo) GetUserByEmail(_ context.Context, email string) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.st.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, errs.ErrNotFound
}

func (r *memRepo) EmailTaken(_ context.Context, email string, exceptID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.st.users {
		if u.Email == email && u.ID != exceptID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memRepo) ListUsers(_ context.Context, f model.UserFilter) (model.ListUsers, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	paging := model.Paging{Page: f.Page, PageSize: model.DefaultPageSize}.Normalize()
	var all []model.User
	for _, u := range r.st.users {
		if f.Role != "" && u.Role != f.Role {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(u.Name+" "+u.Email), strings.ToLower(f.Search)) {
			continue
		}
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	paging.TotalElements = len(all)
	from := min(paging.Offset(), len(all))
	to := min(from+paging.PageSize, len(all))
	return model.ListUsers{Paging: paging, Items: all[from:to]}, nil
}

func (r *memRepo) UpdateUser(_ context.Context, user model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.st.users[user.ID]; !ok {
		return model.User{}, errs.ErrNotFound
	}
	for _, u := range r.st.users {
		if u.Email == user.Email && u.ID != user.ID {
			return model.User{}, errs.ErrConflict
		}
	}
	r.st.users[user.ID] = user
	return user, nil
}

func (r *memRepo) DeleteUsers(_ context.Context, ids []int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, id := range ids {
		if _, ok := r.st.users[id]; ok {
			delete(r.st.users, id)
			n++
		}
	}
	return n, nil
}

func (r *memRepo) CreateRequest(_ context.Context, req model.BorrowRequest) (model.BorrowRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.st.books[req.BookID]; !ok {
		return model.BorrowRequest{}, errs.ErrNotFound
	}
	for _, x := range r.st.requests {
		if x.UserID == req.UserID && x.BookID == req.BookID && x.Status == model.StatusPending {
			return model.BorrowRequest{}, errs.ErrDuplicateRequest
		}
	}
	req.ID = r.nextID()
	req.Status = model.StatusPending
	req.CreatedAt = time.Now()
	r.st.requests[req.ID] = req
	return req, nil
}

func (r *memRepo) GetRequestForUpdate(_ context.Context, id int64) (model.BorrowRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.st.requests[id]
	if !ok {
		return model.BorrowRequest{}, errs.ErrNotFound
	}
	return req, nil
}

func (r *memRepo) HasPendingRequest(_ context.Context, userID, bookID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, x := range r.st.requests {
		if x.UserID == userID && x.BookID == bookID && x.Status == model.StatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (r *memRepo) UpdateRequest(_ context.Context, req model.BorrowRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.st.requests[req.ID]; !ok {
		return errs.ErrNotFound
	}
	r.st.requests[req.ID] = req
	return nil
}

func (r *memRepo) DeleteRequest(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.st.requests[id]; !ok {
		return errs.ErrNotFound
	}
	delete(r.st.requests, id)
	return nil
}

func (r *memRepo) MarkReturned(_ context.Context, userID, bookID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, x := range r.st.requests {
		if x.UserID == userID && x.BookID == bookID && x.Status == model.StatusApproved {
			x.Status = model.StatusReturned
			r.st.requests[id] = x
		}
	}
	return nil
}

func (r *memRepo) LatestRequestStatus(_ context.Context, userID, bookID int64) (*model.BorrowStatus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var (
		latest int64
		st     *model.BorrowStatus
	)
	for _, x := range r.st.requests {
		if x.UserID == userID && x.BookID == bookID && x.ID > latest &&
			(x.Status == model.StatusPending || x.Status == model.StatusApproved) {
			latest = x.ID
			s := x.Status
			st = &s
		}
	}
	return st, nil
}

func (r *memRepo) ListRequests(_ context.Context, q model.RequestQuery) ([]model.RequestView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.RequestView
	for _, x := range r.st.requests {
		if q.UserID != 0 && x.UserID != q.UserID {
			continue
		}
		if len(q.Statuses) > 0 {
			match := false
			for _, st := range q.Statuses {
				match = match || st == x.Status
			}
			if !match {
				continue
			}
		}
		b := r.st.books[x.BookID]
		out = append(out, model.RequestView{
			BorrowRequest: x, BookTitle: b.Title, BookCode: b.BookCode, UserName: r.st.users[x.UserID].Name,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (r *memRepo) deleteBorrows(match func(userID, bookID int64) bool) {
	for id, l := range r.st.logs {
		if match(l.UserID, l.BookID) {
			delete(r.st.logs, id)
		}
	}
	for id, x := range r.st.requests {
		if match(x.UserID, x.BookID) {
			delete(r.st.requests, id)
		}
	}
}

func contains(ids []int64, id int64) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

func (r *memRepo) DeleteBorrowsByBooks(_ context.Context, bookIDs []int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleteBorrows(func(_, bookID int64) bool { return contains(bookIDs, bookID) })
	return nil
}

func (r *memRepo) DeleteBorrowsByUsers(_ context.Context, userIDs []int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleteBorrows(func(userID, _ int64) bool { return contains(userIDs, userID) })
	return nil
}

func (r *memRepo) CreateLog(_ context.Context, log model.BorrowLog) (model.BorrowLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.st.logs {
		if l.UserID == log.UserID && l.BookID == log.BookID && l.ReturnedAt == nil {
			return model.BorrowLog{}, errors.Wrap(errs.ErrInvalidState, "book is already held by this user")
		}
	}
	log.ID = r.nextID()
	r.st.logs[log.ID] = log
	return log, nil
}

func (r *memRepo) GetOpenLogForUpdate(_ context.Context, userID, bookID int64) (model.BorrowLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.st.logs {
		if l.UserID == userID && l.BookID == bookID && l.ReturnedAt == nil {
			return l, nil
		}
	}
	return model.BorrowLog{}, errs.ErrNotFound
}

func (r *memRepo) CloseLog(_ context.Context, id int64, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.st.logs[id]
	if !ok || l.ReturnedAt != nil {
		return errs.ErrNotFound
	}
	l.ReturnedAt = &at
	r.st.logs[id] = l
	return nil
}

func (r *memRepo) ListOpenLoans(_ context.Context, userID int64) ([]model.LoanView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.LoanView
	for _, l := range r.st.logs {
		if l.UserID == userID && l.ReturnedAt == nil {
			b := r.st.books[l.BookID]
			out = append(out, model.LoanView{BorrowLog: l, BookTitle: b.Title, BookCode: b.BookCode})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *memRepo) activeBorrows(f model.ActiveBorrowFilter, today time.Time) []model.ActiveBorrow {
	var out []model.ActiveBorrow
	for _, l := range r.st.logs {
		if l.ReturnedAt != nil {
			continue
		}
		item := model.ActiveBorrow{
			LogID: l.ID, UserID: l.UserID, UserName: r.st.users[l.UserID].Name,
			BookID: l.BookID, BookTitle: r.st.books[l.BookID].Title, BookCode: r.st.books[l.BookID].BookCode,
			BorrowedAt: l.BorrowedAt,
		}
		for _, x := range r.st.requests {
			if x.UserID == l.UserID && x.BookID == l.BookID && x.Status == model.StatusApproved {
				due := x.ExpectedReturnDate
				item.ExpectedReturnDate = &due
			}
		}
		overdue := item.ExpectedReturnDate != nil && item.ExpectedReturnDate.Before(today)
		if f.Filter == model.ActiveFilterOverdue && !overdue {
			continue
		}
		if f.Filter == model.ActiveFilterActive && overdue {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LogID > out[j].LogID })
	return out
}

func (r *memRepo) ListActiveBorrows(_ context.Context, f model.ActiveBorrowFilter, today time.Time) (model.ListActiveBorrows, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	paging := model.Paging{Page: f.Page, PageSize: model.DefaultPageSize}.Normalize()
	all := r.activeBorrows(f, today)
	paging.TotalElements = len(all)
	from := min(paging.Offset(), len(all))
	to := min(from+paging.PageSize, len(all))
	return model.ListActiveBorrows{Paging: paging, Items: all[from:to]}, nil
}

func (r *memRepo) CreateLearningFile(_ context.Context, f model.LearningFile) (model.LearningFile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.st.users[f.TeacherID]; !ok {
		return model.LearningFile{}, errs.ErrNotFound
	}
	f.ID = r.nextID()
	f.CreatedAt = time.Now()
	r.st.files[f.ID] = f
	return f, nil
}

func (r *memRepo) GetLearningFile(_ context.Context, id int64) (model.LearningFile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.st.files[id]
	if !ok {
		return model.LearningFile{}, errs.ErrNotFound
	}
	return f, nil
}

func (r *memRepo) ListLearningFiles(_ context.Context, q model.LearningFileQuery) ([]model.LearningFileView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.LearningFileView
	for _, f := range r.st.files {
		if q.Grade != 0 && f.GradeLevel != q.Grade {
			continue
		}
		if q.TeacherID != 0 && f.TeacherID != q.TeacherID {
			continue
		}
		out = append(out, model.LearningFileView{LearningFile: f, UploaderName: r.st.users[f.TeacherID].Name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (r *memRepo) LearningFileTitleTaken(_ context.Context, title string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.st.files {
		if f.Title == title {
			return true, nil
		}
	}
	return false, nil
}

func (r *memRepo) UpdateLearningFile(_ context.Context, id int64, upd model.LearningFileUpdate) (model.LearningFile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.st.files[id]
	if !ok {
		return model.LearningFile{}, errs.ErrNotFound
	}
	f.Title, f.Description, f.GradeLevel = upd.Title, upd.Description, upd.GradeLevel
	r.st.files[id] = f
	return f, nil
}

func (r *memRepo) DeleteLearningFile(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.st.files[id]; !ok {
		return errs.ErrNotFound
	}
	delete(r.st.files, id)
	return nil
}

func (r *memRepo) CountBooks(context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.st.books), nil
}

func (r *memRepo) CountRequests(_ context.Context, userID int64, status model.BorrowStatus) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, x := range r.st.requests {
		if x.Status == status && (userID == 0 || x.UserID == userID) {
			n++
		}
	}
	return n, nil
}

func (r *memRepo) CountOpenLogs(_ context.Context, userID int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, l := range r.st.logs {
		if l.ReturnedAt == nil && (userID == 0 || l.UserID == userID) {
			n++
		}
	}
	return n, nil
}

func (r *memRepo) CountOverdue(_ context.Context, today time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.activeBorrows(model.ActiveBorrowFilter{Filter: model.ActiveFilterOverdue}, today)), nil
}

func (r *memRepo) CountLearningFiles(_ context.Context, q model.LearningFileQuery) (int, error) {
	files, err := r.ListLearningFiles(context.Background(), model.LearningFileQuery{Grade: q.Grade, TeacherID: q.TeacherID})
	return len(files), err
}

// seedUser inserts a user directly, bypassing the service.
func (r *memRepo) seedUser(name string, role model.Role, grade *int) model.User {
	u, _ := r.CreateUser(context.Background(), model.User{
		Name: name, Email: strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@" + string(role) + ".test",
		Role: role, GradeLevel: grade,
	})
	return u
}

func (r *memRepo) openLogs(userID, bookID int64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, l := range r.st.logs {
		if l.UserID == userID && l.BookID == bookID && l.ReturnedAt == nil {
			n++
		}
	}
	return n
}
