package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

// lineKind is the classification of a single non-blank input line.
type lineKind int

const (
	lineOther lineKind = iota
	lineAnswer
	lineQuestionStart
	lineOptionStart
)

// lineMatch carries the captures of a classified line.
type lineMatch struct {
	kind  lineKind
	num   int    // question number, for lineQuestionStart
	label string // option or answer label, uppercased
	text  string // trailing remainder on the same line
}

// Patterns is the compiled pattern table driving line classification.
// A single instance is built at init and shared; it is read-only after
// construction and safe for concurrent use.
type Patterns struct {
	answer    *regexp.Regexp
	qPrefixed *regexp.Regexp
	qBare     *regexp.Regexp
	option    *regexp.Regexp
}

// defaultPatterns is the process-wide pattern table.
var defaultPatterns = NewPatterns()

func NewPatterns() *Patterns {
	return &Patterns{
		// "Answer: C", "Ans: (b)", "Correct Answer - A", "Key. D"
		answer: regexp.MustCompile(`(?i)^(?:answer|ans|correct\s+answer|key)[\s:.\-]+\(?([A-Ea-e])\)?`),
		// "Q1. ...", "Question 1: ...", "Q.1 ..."
		qPrefixed: regexp.MustCompile(`(?i)^q(?:uestion)?[\s.]*(\d{1,3})[\s.)\-:]+(.*)$`),
		// "1. ...", "12) ...". The terminator must be followed by
		// whitespace or end of line so that embedded numerics such as
		// "3.14" never open a new question.
		qBare: regexp.MustCompile(`^(\d{1,3})[.)\-:](?:\s+(.*))?$`),
		// "(a) Paris", "A. Paris", "B) Berlin", "i) first"
		option: regexp.MustCompile(`^\(?([A-Ea-e]|[ivxIVX]{1,4})\)?[\s.)\-:]+(.+)$`),
	}
}

// classify resolves a trimmed, non-blank line in strict priority order:
// answer, question start, option start, continuation. Answer and option
// lines are only meaningful while a question is open, so the caller's
// state gates those two checks.
func (p *Patterns) classify(line string, questionOpen bool) lineMatch {
	if questionOpen {
		if m := p.answer.FindStringSubmatch(line); m != nil {
			return lineMatch{kind: lineAnswer, label: strings.ToUpper(m[1])}
		}
	}
	if m := p.qPrefixed.FindStringSubmatch(line); m != nil {
		num, _ := strconv.Atoi(m[1])
		return lineMatch{kind: lineQuestionStart, num: num, text: strings.TrimSpace(m[2])}
	}
	if m := p.qBare.FindStringSubmatch(line); m != nil {
		num, _ := strconv.Atoi(m[1])
		return lineMatch{kind: lineQuestionStart, num: num, text: strings.TrimSpace(m[2])}
	}
	if questionOpen {
		if m := p.option.FindStringSubmatch(line); m != nil {
			return lineMatch{kind: lineOptionStart, label: strings.ToUpper(m[1]), text: strings.TrimSpace(m[2])}
		}
	}
	return lineMatch{kind: lineOther, text: line}
}
