package ctt

// DistractorStat describes how one answer option performed. A
// non-correct option counts as effective when at least 5% of students
// chose it.
type DistractorStat struct {
	Label       string  `json:"label"`
	Text        string  `json:"text"`
	ChosenCount int     `json:"chosen_count"`
	ChosenPct   float64 `json:"chosen_pct"`
	IsCorrect   bool    `json:"is_correct"`
	IsEffective bool    `json:"is_effective"`
}

// QuestionStat holds the classical test theory metrics for one item.
type QuestionStat struct {
	QuestionID          int              `json:"question_id"`
	QuestionText        string           `json:"question_text"`
	DifficultyIndex     float64          `json:"difficulty_index"`
	DifficultyLabel     string           `json:"difficulty_label"`
	DiscriminationIndex float64          `json:"discrimination_index"`
	DiscriminationLabel string           `json:"discrimination_label"`
	Distractors         []DistractorStat `json:"distractors"`
	IsFlagged           bool             `json:"is_flagged"`
	FlagReasons         []string         `json:"flag_reasons"`
}

// ExamStats is the full analysis report for one exam.
type ExamStats struct {
	ExamID                 string         `json:"exam_id"`
	TotalQuestions         int            `json:"total_questions"`
	TotalStudents          int            `json:"total_students"`
	AverageScore           float64        `json:"average_score"`
	ScoreStdDev            float64        `json:"score_std_dev"`
	CronbachAlpha          float64        `json:"cronbach_alpha"`
	ReliabilityLabel       string         `json:"reliability_label"`
	DifficultyDistribution map[string]int `json:"difficulty_distribution"`
	FlaggedQuestionCount   int            `json:"flagged_question_count"`
	QuestionStats          []QuestionStat `json:"question_stats"`
}
