package model

import "time"

const RecentActivityLimit = 5

type Dashboard struct {
	Role           Role           `json:"role"`
	Stats          map[string]int `json:"stats"`
	RecentActivity []Activity     `json:"recentActivity"`
}

type Activity struct {
	ID     int64        `json:"id"`
	User   string       `json:"user,omitempty"`
	Book   string       `json:"book,omitempty"`
	Title  string       `json:"title,omitempty"`
	Status BorrowStatus `json:"status,omitempty"`
	Grade  int          `json:"grade,omitempty"`
	Type   string       `json:"type,omitempty"`
	Date   time.Time    `json:"date"`
}

const (
	StatTotalBooks        = "total_books"
	StatPendingRequests   = "pending_requests"
	StatActiveBorrows     = "active_borrows"
	StatOverdueBooks      = "overdue_books"
	StatMyActiveBooks     = "my_active_books"
	StatMyPendingRequests = "my_pending_requests"
	StatLearningFiles     = "learning_files"
	StatUploadedFiles     = "uploaded_files"
)
