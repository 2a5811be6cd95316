package model

import "time"

const (
	MinFileGrade = 7
	MaxFileGrade = 12
)

type LearningFile struct {
	ID          int64     `json:"id" db:"id"`
	TeacherID   int64     `json:"teacherId" db:"teacher_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	GradeLevel  int       `json:"gradeLevel" db:"grade_level"`
	FilePath    string    `json:"-" db:"file_path"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

type LearningFileView struct {
	LearningFile
	UploaderName string `json:"uploaderName" db:"uploader_name"`
	URL          string `json:"url" db:"-"`
	CanDelete    bool   `json:"canDelete" db:"-"`
}

type UploadLearningFile struct {
	Title       string `form:"title" validate:"notblank,max=255"`
	Description string `form:"description" validate:"max=1000"`
	GradeLevel  int    `form:"gradeLevel" validate:"min=7,max=12"`
	FileName    string `validate:"required"`
	Data        []byte `validate:"required"`
}

type LearningFileUpdate struct {
	Title       string `json:"title" validate:"notblank,max=255"`
	Description string `json:"description" validate:"max=1000"`
	GradeLevel  int    `json:"gradeLevel" validate:"min=7,max=12"`
}

type LearningFileFilter struct {
	Grade int `query:"grade" validate:"omitempty,min=7,max=12"`
}

// LearningFileQuery narrows listings; zero values are ignored.
type LearningFileQuery struct {
	Grade     int
	TeacherID int64
	Limit     int
}
