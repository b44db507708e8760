// Package ctt implements Classical Test Theory analysis of exam
// responses: per-item difficulty and discrimination indices, distractor
// efficiency, and Cronbach's alpha for exam-level reliability.
package ctt

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/examforge/examforge/internal/exam"
)

// ErrTooFewStudents is returned when fewer than two response records
// are supplied; discrimination grouping needs at least two students.
var ErrTooFewStudents = errors.New("at least 2 student responses required for statistical analysis")

func difficultyLabel(p float64) string {
	switch {
	case p >= 0.80:
		return "Easy"
	case p >= 0.40:
		return "Moderate"
	default:
		return "Hard"
	}
}

func discriminationLabel(d float64) string {
	switch {
	case d >= 0.40:
		return "Excellent"
	case d >= 0.30:
		return "Good"
	case d >= 0.20:
		return "Fair"
	case d >= 0.10:
		return "Poor"
	default:
		return "Remove" // near-zero or negative, item should be reviewed
	}
}

func reliabilityLabel(alpha float64) string {
	switch {
	case alpha >= 0.90:
		return "Excellent"
	case alpha >= 0.80:
		return "Good"
	case alpha >= 0.70:
		return "Acceptable"
	case alpha >= 0.60:
		return "Questionable"
	case alpha >= 0.50:
		return "Poor"
	default:
		return "Unacceptable"
	}
}

// Analyze runs the full CTT pipeline over one exam and its student
// responses. correctAnswers maps question id (string form) to the
// correct option label.
func Analyze(ex exam.Exam, responses []exam.StudentResponse, correctAnswers map[string]string) (ExamStats, error) {
	n := len(responses)
	if n < 2 {
		return ExamStats{}, ErrTooFewStudents
	}

	qIDs := make([]string, len(ex.Questions))
	for i, q := range ex.Questions {
		qIDs[i] = strconv.Itoa(q.ID)
	}

	matrix := buildScoreMatrix(responses, correctAnswers, qIDs)

	totals := make([]float64, n)
	for i, row := range matrix {
		for _, v := range row {
			totals[i] += v
		}
	}

	// Rank students by total score, ascending. The sort must be stable
	// so that ties keep original input order.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return totals[order[a]] < totals[order[b]] })
	cutoff := int(math.Ceil(0.27 * float64(n)))
	if cutoff < 1 {
		cutoff = 1
	}
	bottom := order[:cutoff]
	top := order[n-cutoff:]

	diffDist := map[string]int{"Easy": 0, "Moderate": 0, "Hard": 0}
	flaggedCount := 0
	stats := make([]QuestionStat, 0, len(ex.Questions))

	for i, q := range ex.Questions {
		qID := qIDs[i]

		p := columnMean(matrix, i, nil)
		dLabel := difficultyLabel(p)
		diffDist[dLabel]++

		disc := round(columnMean(matrix, i, top)-columnMean(matrix, i, bottom), 4)

		distractors := distractorStats(responses, q.Options, cleanLabel(correctAnswers[qID]), qID)

		var reasons []string
		if p < 0.20 {
			reasons = append(reasons, "Extremely difficult (p < 0.20)")
		}
		if p > 0.90 {
			reasons = append(reasons, "Trivially easy (p > 0.90)")
		}
		if disc < 0.10 {
			reasons = append(reasons, fmt.Sprintf("Poor discrimination (D=%.2f)", disc))
		}
		if disc < 0 {
			reasons = append(reasons, "Negative discrimination — review item immediately")
		}
		ineffective := 0
		for _, d := range distractors {
			if !d.IsCorrect && !d.IsEffective {
				ineffective++
			}
		}
		if ineffective >= 2 {
			reasons = append(reasons, fmt.Sprintf("%d ineffective distractors (chosen by < 5%%)", ineffective))
		}
		if len(reasons) > 0 {
			flaggedCount++
		}

		stats = append(stats, QuestionStat{
			QuestionID:          q.ID,
			QuestionText:        q.Text,
			DifficultyIndex:     round(p, 4),
			DifficultyLabel:     dLabel,
			DiscriminationIndex: disc,
			DiscriminationLabel: discriminationLabel(disc),
			Distractors:         distractors,
			IsFlagged:           len(reasons) > 0,
			FlagReasons:         reasons,
		})
	}

	alpha := cronbachAlpha(matrix)

	return ExamStats{
		ExamID:                 ex.ExamID,
		TotalQuestions:         ex.TotalQuestions,
		TotalStudents:          n,
		AverageScore:           round(mean(totals), 2),
		ScoreStdDev:            round(math.Sqrt(sampleVariance(totals)), 2),
		CronbachAlpha:          round(alpha, 4),
		ReliabilityLabel:       reliabilityLabel(alpha),
		DifficultyDistribution: diffDist,
		FlaggedQuestionCount:   flaggedCount,
		QuestionStats:          stats,
	}, nil
}

// buildScoreMatrix returns an n-students by k-questions binary matrix:
// 1 where the student's trimmed, uppercased answer equals the key.
func buildScoreMatrix(responses []exam.StudentResponse, correctAnswers map[string]string, qIDs []string) [][]float64 {
	matrix := make([][]float64, len(responses))
	for i, sr := range responses {
		row := make([]float64, len(qIDs))
		for j, qID := range qIDs {
			got := cleanLabel(sr.Responses[qID])
			want := cleanLabel(correctAnswers[qID])
			if got != "" && want != "" && got == want {
				row[j] = 1
			}
		}
		matrix[i] = row
	}
	return matrix
}

func distractorStats(responses []exam.StudentResponse, options []exam.Option, correctLabel, qID string) []DistractorStat {
	n := len(responses)
	counts := map[string]int{}
	for _, sr := range responses {
		if r := cleanLabel(sr.Responses[qID]); r != "" {
			counts[r]++
		}
	}

	stats := make([]DistractorStat, 0, len(options))
	for _, opt := range options {
		label := strings.ToUpper(opt.Label)
		chosen := counts[label]
		pct := 0.0
		if n > 0 {
			pct = round(float64(chosen)/float64(n)*100, 1)
		}
		isCorrect := label == correctLabel
		stats = append(stats, DistractorStat{
			Label:       label,
			Text:        opt.Text,
			ChosenCount: chosen,
			ChosenPct:   pct,
			IsCorrect:   isCorrect,
			IsEffective: isCorrect || pct >= 5.0,
		})
	}
	return stats
}

// cronbachAlpha computes internal consistency over a binary score
// matrix: alpha = (k/(k-1)) * (1 - sum(item variances)/total variance),
// clamped to [-1, 1]. Degenerate inputs (fewer than 2 items or 2
// students, zero total variance) yield 0.
func cronbachAlpha(matrix [][]float64) float64 {
	n := len(matrix)
	if n < 2 {
		return 0
	}
	k := len(matrix[0])
	if k < 2 {
		return 0
	}

	totals := make([]float64, n)
	itemVarSum := 0.0
	for j := 0; j < k; j++ {
		col := make([]float64, n)
		for i := 0; i < n; i++ {
			col[i] = matrix[i][j]
			totals[i] += matrix[i][j]
		}
		itemVarSum += sampleVariance(col)
	}

	totalVar := sampleVariance(totals)
	if totalVar == 0 {
		return 0
	}

	alpha := (float64(k) / float64(k-1)) * (1 - itemVarSum/totalVar)
	return math.Max(-1, math.Min(1, alpha))
}

func cleanLabel(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// columnMean averages column j over the given row subset, or over all
// rows when idx is nil. An empty subset yields 0.
func columnMean(matrix [][]float64, j int, idx []int) float64 {
	if idx == nil {
		sum := 0.0
		for _, row := range matrix {
			sum += row[j]
		}
		if len(matrix) == 0 {
			return 0
		}
		return sum / float64(len(matrix))
	}
	if len(idx) == 0 {
		return 0
	}
	sum := 0.0
	for _, i := range idx {
		sum += matrix[i][j]
	}
	return sum / float64(len(idx))
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// sampleVariance uses the n-1 divisor.
func sampleVariance(xs []float64) float64 {
	n := len(xs)
	if n < 2 {
		return 0
	}
	m := mean(xs)
	sum := 0.0
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return sum / float64(n-1)
}

func round(x float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(x*pow) / pow
}
