// Package importer reads bulk-import sheets (CSV or XLSX) into typed rows.
package importer

import (
	"bytes"
	"embed"
	"encoding/csv"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

var ErrUnsupportedFormat = errors.New("unsupported file format")

type Kind string

const (
	KindBooks Kind = "books"
	KindUsers Kind = "users"
)

//go:embed templates/*.csv
var templates embed.FS

// Template returns the CSV template for kind.
func Template(kind Kind) ([]byte, error) {
	return templates.ReadFile("templates/" + string(kind) + ".csv")
}

// ReadRows returns the data rows of a sheet, header excluded. The format
// is chosen by the file extension.
func ReadRows(r io.Reader, filename string) ([][]string, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".txt":
		rows, err = readCSV(r)
	case ".xlsx":
		rows, err = readXLSX(r)
	default:
		return nil, errors.Wrap(ErrUnsupportedFormat, filepath.Ext(filename))
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[1:], nil
}

func readCSV(r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	cr := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "read csv")
	}
	return rows, nil
}

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "open xlsx")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrapf(err, "read sheet %s", sheets[0])
	}
	return rows, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

// BookRow is one line of title, author, grade_level, description,
// quantity, subject.
type BookRow struct {
	Title       string
	Author      string
	GradeLevel  int
	Description string
	Quantity    int
	Subject     string
}

// ParseBookRow reports false for rows that must be skipped.
func ParseBookRow(row []string) (BookRow, bool) {
	b := BookRow{
		Title:       cell(row, 0),
		Author:      cell(row, 1),
		Description: cell(row, 3),
		Subject:     strings.ToUpper(cell(row, 5)),
		Quantity:    1,
	}
	gradeRaw := cell(row, 2)
	if b.Title == "" || b.Author == "" || gradeRaw == "" {
		return BookRow{}, false
	}
	grade, err := strconv.Atoi(gradeRaw)
	if err != nil || grade < 1 || grade > 12 {
		return BookRow{}, false
	}
	b.GradeLevel = grade
	if q, err := strconv.Atoi(cell(row, 4)); err == nil && q > 0 {
		b.Quantity = q
	}
	return b, true
}

// UserRow is one line of first_name, middle_name, last_name, role,
// grade_level.
type UserRow struct {
	FirstName  string
	MiddleName string
	LastName   string
	Role       string
	GradeLevel *int
}

const DefaultStudentGrade = 7

// ParseUserRow reports false for rows that must be skipped. Students
// without a usable grade get DefaultStudentGrade; others get none.
func ParseUserRow(row []string) (UserRow, bool) {
	u := UserRow{
		FirstName:  cell(row, 0),
		MiddleName: cell(row, 1),
		LastName:   cell(row, 2),
		Role:       strings.ToLower(cell(row, 3)),
	}
	if u.FirstName == "" || u.LastName == "" || u.Role == "" {
		return UserRow{}, false
	}
	switch u.Role {
	case "student":
		grade, err := strconv.Atoi(cell(row, 4))
		if err != nil || grade < 1 || grade > 12 {
			grade = DefaultStudentGrade
		}
		u.GradeLevel = &grade
	case "teacher", "librarian":
	default:
		return UserRow{}, false
	}
	return u, true
}

func (u UserRow) FullName() string {
	parts := []string{u.FirstName}
	if u.MiddleName != "" {
		parts = append(parts, u.MiddleName)
	}
	return strings.Join(append(parts, u.LastName), " ")
}
