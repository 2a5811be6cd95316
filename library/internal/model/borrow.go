package model

import "time"

type BorrowStatus string

const (
	StatusPending  BorrowStatus = "pending"
	StatusApproved BorrowStatus = "approved"
	StatusRejected BorrowStatus = "rejected"
	StatusReturned BorrowStatus = "returned"
)

var transitions = map[BorrowStatus][]BorrowStatus{
	StatusPending:  {StatusApproved, StatusRejected},
	StatusApproved: {StatusReturned},
}

func (s BorrowStatus) CanTransitionTo(next BorrowStatus) bool {
	for _, st := range transitions[s] {
		if st == next {
			return true
		}
	}
	return false
}

func (s BorrowStatus) Terminal() bool {
	return len(transitions[s]) == 0
}

type BorrowRequest struct {
	ID                 int64        `json:"id" db:"id"`
	UserID             int64        `json:"userId" db:"user_id"`
	BookID             int64        `json:"bookId" db:"book_id"`
	Status             BorrowStatus `json:"borrowStatus" db:"borrow_status"`
	ExpectedReturnDate time.Time    `json:"expectedReturnDate" db:"expected_return_date"`
	ApprovedBy         *int64       `json:"approvedBy" db:"approved_by"`
	RejectReason       *string      `json:"rejectReason" db:"reject_reason"`
	CreatedAt          time.Time    `json:"createdAt" db:"created_at"`
}

type BorrowLog struct {
	ID         int64      `json:"id" db:"id"`
	UserID     int64      `json:"userId" db:"user_id"`
	BookID     int64      `json:"bookId" db:"book_id"`
	BorrowedAt time.Time  `json:"borrowedAt" db:"borrowed_at"`
	ReturnedAt *time.Time `json:"returnedAt" db:"returned_at"`
}

type CreateBorrowRequest struct {
	ExpectedReturnDate Date `json:"expectedReturnDate" validate:"required"`
}

type RejectBorrowRequest struct {
	Reason string `json:"reason" validate:"max=1000"`
}

// RequestView is a request joined with its book and requester.
type RequestView struct {
	BorrowRequest
	BookTitle string `json:"bookTitle" db:"book_title"`
	BookCode  string `json:"bookCode" db:"book_code"`
	UserName  string `json:"userName" db:"user_name"`
}

type LoanView struct {
	BorrowLog
	BookTitle string `json:"bookTitle" db:"book_title"`
	BookCode  string `json:"bookCode" db:"book_code"`
}

type ActiveBorrow struct {
	LogID              int64      `json:"id" db:"id"`
	UserID             int64      `json:"userId" db:"user_id"`
	UserName           string     `json:"userName" db:"user_name"`
	BookID             int64      `json:"bookId" db:"book_id"`
	BookTitle          string     `json:"bookTitle" db:"book_title"`
	BookCode           string     `json:"bookCode" db:"book_code"`
	BorrowedAt         time.Time  `json:"borrowedAt" db:"borrowed_at"`
	ExpectedReturnDate *time.Time `json:"expectedReturnDate" db:"expected_return_date"`
}

const (
	ActiveFilterOverdue = "overdue"
	ActiveFilterActive  = "active"
)

type ActiveBorrowFilter struct {
	Search    string        `query:"search"`
	Filter    string        `query:"filter" validate:"omitempty,oneof=overdue active"`
	Sort      string        `query:"sort" validate:"omitempty,oneof=created_at borrowed_at user book due_date"`
	Direction SortDirection `query:"direction" validate:"omitempty,oneof=asc desc"`
	Page      int           `query:"page" validate:"omitempty,min=1"`
}

type ListActiveBorrows struct {
	Paging `json:",inline"`
	Items  []ActiveBorrow `json:"items"`
}

// RequestQuery selects requests; a zero UserID means every user.
type RequestQuery struct {
	UserID   int64
	Statuses []BorrowStatus
	Limit    int
}
