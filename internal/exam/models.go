package exam

import "github.com/google/uuid"

// Option is one answer choice on a multiple-choice question.
// Labels are stored uppercased ("A", "B", ... or roman "I", "II").
type Option struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Question is a single exam item. The id is the numeral recognized in
// the source text, kept as-is; duplicate numerals from the source are
// possible. The metric fields are populated by the CTT engine on derived
// reports, never by mutating a normalized exam in place.
type Question struct {
	ID                  int      `json:"id"`
	Text                string   `json:"text"`
	Options             []Option `json:"options"`
	CorrectOption       string   `json:"correct_option,omitempty"`
	SubjectTag          string   `json:"subject_tag,omitempty"`
	DifficultyIndex     *float64 `json:"difficulty_index,omitempty"`
	DiscriminationIndex *float64 `json:"discrimination_index,omitempty"`
	IsFlagged           bool     `json:"is_flagged"`
	FlagReason          string   `json:"flag_reason,omitempty"`
}

type Exam struct {
	ExamID         string     `json:"exam_id"`
	Title          string     `json:"title,omitempty"`
	SourceFile     string     `json:"source_file,omitempty"`
	TotalQuestions int        `json:"total_questions"`
	Questions      []Question `json:"questions"`
}

// New builds an Exam around a normalized question list with a fresh id.
func New(sourceFile string, questions []Question) Exam {
	return Exam{
		ExamID:         uuid.NewString(),
		Title:          "Untitled Exam",
		SourceFile:     sourceFile,
		TotalQuestions: len(questions),
		Questions:      questions,
	}
}

// NormalizationResult is the payload returned by the upload pipeline.
type NormalizationResult struct {
	Exam           Exam     `json:"exam"`
	Warnings       []string `json:"warnings"`
	RawTextPreview string   `json:"raw_text_preview,omitempty"`
}

// StudentResponse holds one student's answers keyed by question id in
// string form, as produced by the response CSV parser.
type StudentResponse struct {
	StudentID string            `json:"student_id"`
	Responses map[string]string `json:"responses"`
}
