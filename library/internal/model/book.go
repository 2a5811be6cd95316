package model

import "time"

type BookType string

const (
	BookTypePDF      BookType = "pdf"
	BookTypeLink     BookType = "link"
	BookTypePhysical BookType = "physical"
)

type Book struct {
	ID          int64     `json:"id" db:"id"`
	BookCode    string    `json:"bookCode" db:"book_code"`
	Title       string    `json:"title" db:"title"`
	Author      string    `json:"author" db:"author"`
	Subject     string    `json:"subject" db:"subject"`
	Description string    `json:"description" db:"description"`
	GradeLevel  int       `json:"gradeLevel" db:"grade_level"`
	Competency  string    `json:"competency" db:"competency"`
	Type        BookType  `json:"type" db:"type"`
	FilePath    string    `json:"filePath" db:"file_path"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// BookView is a Book as seen by a particular caller.
type BookView struct {
	Book
	IsAvailable              bool          `json:"isAvailable" db:"is_available"`
	CurrentUserHasBook       bool          `json:"currentUserHasBook" db:"current_user_has_book"`
	CurrentUserRequestStatus *BorrowStatus `json:"currentUserRequestStatus" db:"current_user_request_status"`
}

type BookDetails struct {
	BookView
	BorrowHistory []BorrowHistoryItem `json:"borrowHistory"`
}

type BorrowHistoryItem struct {
	LogID      int64      `json:"logId" db:"id"`
	UserID     int64      `json:"userId" db:"user_id"`
	UserName   string     `json:"userName" db:"user_name"`
	BorrowedAt time.Time  `json:"borrowedAt" db:"borrowed_at"`
	ReturnedAt *time.Time `json:"returnedAt" db:"returned_at"`
}

type ListBooks struct {
	Paging `json:",inline"`
	Items  []BookView `json:"items"`
}

type BookFilter struct {
	Search  string
	Grade   int
	Subject string
	Paging  Paging
}

type CreateBookRequest struct {
	Title       string   `json:"title" validate:"notblank,max=50"`
	Author      string   `json:"author" validate:"notblank,max=50"`
	Subject     string   `json:"subject" validate:"notblank,max=50"`
	Description string   `json:"description" validate:"max=255"`
	GradeLevel  int      `json:"gradeLevel" validate:"min=1,max=12"`
	Competency  string   `json:"competency" validate:"max=255"`
	Type        BookType `json:"type" validate:"omitempty,oneof=pdf link physical"`
	FilePath    string   `json:"filePath" validate:"max=255"`
}

// BookUpdate lists the only fields an update may touch.
// BookCode and Subject stay fixed once assigned.
type BookUpdate struct {
	Title       string   `json:"title" validate:"notblank,max=50"`
	Author      string   `json:"author" validate:"notblank,max=50"`
	Description string   `json:"description" validate:"max=255"`
	GradeLevel  int      `json:"gradeLevel" validate:"min=1,max=12"`
	Competency  string   `json:"competency" validate:"max=255"`
	Type        BookType `json:"type" validate:"oneof=pdf link physical"`
	FilePath    string   `json:"filePath" validate:"max=255"`
}
