// Package responses parses student response CSV files into the mapping
// form the CTT engine consumes. Two layouts are auto-detected from the
// header row:
//
//	wide: student_id, 1, 2, 3, ...   (one row per student)
//	long: student_id, question_id, answer   (one row per answer)
package responses

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/examforge/examforge/internal/exam"
)

// ParseCSV reads a response CSV in either layout.
func ParseCSV(r io.Reader) ([]exam.StudentResponse, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.New("csv has no headers; expected either wide or long format")
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		// Excel exports often carry a BOM on the first header.
		headers[i] = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF")))
	}
	body := rows[1:]

	switch {
	case indexOf(headers, "question_id") >= 0 && indexOf(headers, "answer") >= 0:
		return parseLong(headers, body)
	case indexOf(headers, "student_id") >= 0 || headers[0] == "id" || headers[0] == "student":
		return parseWide(headers, body)
	default:
		return nil, errors.New("cannot detect csv format: expected wide (student_id, 1, 2, ...) or long (student_id, question_id, answer) columns")
	}
}

func parseWide(headers []string, rows [][]string) ([]exam.StudentResponse, error) {
	idCol := 0
	for i, h := range headers {
		if h == "student_id" || h == "id" || h == "student" {
			idCol = i
			break
		}
	}
	if len(headers) < 2 {
		return nil, errors.New("wide csv has no question columns after student_id")
	}

	var out []exam.StudentResponse
	for _, row := range rows {
		sid := field(row, idCol)
		if sid == "" {
			continue
		}
		resp := map[string]string{}
		for i, h := range headers {
			if i == idCol {
				continue
			}
			if ans := strings.ToUpper(field(row, i)); ans != "" {
				resp[h] = ans
			}
		}
		out = append(out, exam.StudentResponse{StudentID: sid, Responses: resp})
	}
	if len(out) == 0 {
		return nil, errors.New("csv parsed but no student rows found")
	}
	return out, nil
}

func parseLong(headers []string, rows [][]string) ([]exam.StudentResponse, error) {
	idCol := indexOf(headers, "student_id")
	qCol := indexOf(headers, "question_id")
	ansCol := indexOf(headers, "answer")
	if idCol < 0 {
		return nil, errors.New("long csv is missing a student_id column")
	}

	byStudent := map[string]map[string]string{}
	var order []string
	for _, row := range rows {
		sid := field(row, idCol)
		qid := field(row, qCol)
		ans := strings.ToUpper(field(row, ansCol))
		if sid == "" || qid == "" || ans == "" {
			continue
		}
		if _, ok := byStudent[sid]; !ok {
			byStudent[sid] = map[string]string{}
			order = append(order, sid)
		}
		byStudent[sid][qid] = ans
	}

	if len(order) == 0 {
		return nil, errors.New("long csv parsed but no valid rows found")
	}
	out := make([]exam.StudentResponse, len(order))
	for i, sid := range order {
		out[i] = exam.StudentResponse{StudentID: sid, Responses: byStudent[sid]}
	}
	return out, nil
}

func indexOf(headers []string, name string) int {
	for i, h := range headers {
		if h == name {
			return i
		}
	}
	return -1
}

func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
