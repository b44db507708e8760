package normalize

import (
	"fmt"
	"strings"

	"github.com/examforge/examforge/internal/exam"
)

// parser state while a question buffer is open.
type state int

const (
	stateRoot   state = iota // no question open yet
	stateStem                // accumulating question text
	stateOption              // accumulating the latest option's text
)

// parser assembles questions from classified lines. One parser per call;
// nothing is shared between invocations.
type parser struct {
	pats *Patterns

	st      state
	open    bool
	num     int
	stem    []string
	options []exam.Option
	answer  string

	questions []exam.Question
	warnings  []string
}

// Normalize runs the full pipeline on raw extracted text: clean,
// segment into questions, and wrap the result in an Exam.
func Normalize(raw, sourceFile string) exam.NormalizationResult {
	cleaned := Clean(raw)
	questions, warnings := Questions(cleaned)
	return exam.NormalizationResult{
		Exam:           exam.New(sourceFile, questions),
		Warnings:       warnings,
		RawTextPreview: preview(cleaned, 500),
	}
}

// Questions segments already-cleaned text into structured questions.
// It is a pure function of its input; warnings report per-question
// parse ambiguities (no options detected, too few options).
func Questions(text string) ([]exam.Question, []string) {
	p := &parser{pats: defaultPatterns, questions: []exam.Question{}, warnings: []string{}}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		p.feed(line)
	}
	p.flush()
	return p.questions, p.warnings
}

func (p *parser) feed(line string) {
	m := p.pats.classify(line, p.open)
	switch m.kind {
	case lineAnswer:
		// Sets the open question's key without closing it.
		p.answer = m.label

	case lineQuestionStart:
		p.flush()
		p.open = true
		p.num = m.num
		if m.text != "" {
			p.stem = append(p.stem, m.text)
		}
		p.st = stateStem

	case lineOptionStart:
		p.options = append(p.options, exam.Option{Label: m.label, Text: m.text})
		p.st = stateOption

	case lineOther:
		if !p.open {
			return // stray text before the first question
		}
		switch p.st {
		case stateOption:
			// Continuations extend the latest option, never the stem.
			last := &p.options[len(p.options)-1]
			last.Text = last.Text + " " + m.text
		default:
			p.stem = append(p.stem, m.text)
		}
	}
}

// flush commits the open buffer. Numeral-only false positives (an empty
// assembled stem) are dropped silently rather than emitted.
func (p *parser) flush() {
	if !p.open {
		return
	}
	defer p.reset()

	text := strings.TrimSpace(strings.Join(p.stem, " "))
	if text == "" {
		return
	}

	q := exam.Question{
		ID:            p.num,
		Text:          text,
		Options:       append([]exam.Option{}, p.options...),
		CorrectOption: p.answer,
	}
	if len(p.options) == 0 {
		p.warnings = append(p.warnings, fmt.Sprintf("Q%d: No options detected.", p.num))
	}
	if len(p.options) < 2 {
		q.IsFlagged = true
		q.FlagReason = "Fewer than 2 options found."
	}
	p.questions = append(p.questions, q)
}

func (p *parser) reset() {
	p.st = stateRoot
	p.open = false
	p.num = 0
	p.stem = nil
	p.options = nil
	p.answer = ""
}

func preview(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
