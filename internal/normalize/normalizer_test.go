package normalize

import (
	"strings"
	"testing"
)

const samplePaper = `
Page 1

1. What is the capital of France?
(A) London
(B) Berlin
(C) Paris
(D) Madrid
Answer: C

2. Which planet is closest to the Sun?
A. Earth
B. Venus
C. Mercury
D. Mars

3. The speed of light is approximately:
(a) 3 x 10^8 m/s
(b) 3 x 10^6 m/s
(c) 3 x 10^10 m/s
(d) 3 x 10^4 m/s
Ans: a

4. Who wrote Hamlet?
A) Charles Dickens
B) William Shakespeare
C) Leo Tolstoy
D) Mark Twain
`

func TestQuestionsSamplePaper(t *testing.T) {
	qs, warnings := Questions(Clean(samplePaper))
	if len(qs) != 4 {
		t.Fatalf("got %d questions, want 4", len(qs))
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	q1 := qs[0]
	if q1.ID != 1 || q1.Text != "What is the capital of France?" {
		t.Errorf("q1 = %d %q", q1.ID, q1.Text)
	}
	if len(q1.Options) != 4 {
		t.Fatalf("q1 has %d options, want 4", len(q1.Options))
	}
	if q1.Options[2].Label != "C" || q1.Options[2].Text != "Paris" {
		t.Errorf("q1 option 3 = %+v", q1.Options[2])
	}
	if q1.CorrectOption != "C" {
		t.Errorf("q1 correct = %q, want C", q1.CorrectOption)
	}
	if q1.IsFlagged {
		t.Errorf("q1 unexpectedly flagged: %s", q1.FlagReason)
	}

	// Lowercase labels are uppercased, as is the "Ans: a" key.
	q3 := qs[2]
	if q3.Options[0].Label != "A" {
		t.Errorf("q3 option label = %q, want A", q3.Options[0].Label)
	}
	if q3.CorrectOption != "A" {
		t.Errorf("q3 correct = %q, want A", q3.CorrectOption)
	}

	// No answer line for q2 and q4.
	if qs[1].CorrectOption != "" || qs[3].CorrectOption != "" {
		t.Errorf("q2/q4 correct = %q/%q, want empty", qs[1].CorrectOption, qs[3].CorrectOption)
	}
}

func TestQuestionsWorkedExample(t *testing.T) {
	text := strings.Join([]string{
		"1. What is the capital of France?",
		"(A) London",
		"(B) Paris",
		"Answer: B",
	}, "\n")

	qs, _ := Questions(text)
	if len(qs) != 1 {
		t.Fatalf("got %d questions, want 1", len(qs))
	}
	q := qs[0]
	if q.ID != 1 || len(q.Options) != 2 || q.CorrectOption != "B" {
		t.Fatalf("q = %+v", q)
	}
	if q.IsFlagged {
		t.Errorf("question flagged: %s", q.FlagReason)
	}
}

func TestEmptyStemDropped(t *testing.T) {
	// A bare numeral line with no trailing or continuation text must be
	// discarded, not emitted as an empty question.
	qs, _ := Questions("7.\n8. Real question here\n(A) yes\n(B) no")
	if len(qs) != 1 {
		t.Fatalf("got %d questions, want 1", len(qs))
	}
	if qs[0].ID != 8 {
		t.Errorf("id = %d, want 8", qs[0].ID)
	}
}

func TestBareNumeralWithContinuationKept(t *testing.T) {
	qs, _ := Questions("7.\nWhat is water made of?\n(A) H2O\n(B) CO2")
	if len(qs) != 1 {
		t.Fatalf("got %d questions, want 1", len(qs))
	}
	if qs[0].ID != 7 || qs[0].Text != "What is water made of?" {
		t.Errorf("q = %+v", qs[0])
	}
}

func TestDecimalDoesNotOpenQuestion(t *testing.T) {
	qs, _ := Questions("1. A rod measures\n3.14 meters. What is its length in cm?\n(A) 314\n(B) 31.4")
	if len(qs) != 1 {
		t.Fatalf("got %d questions, want 1", len(qs))
	}
	want := "A rod measures 3.14 meters. What is its length in cm?"
	if qs[0].Text != want {
		t.Errorf("stem = %q, want %q", qs[0].Text, want)
	}
}

func TestOptionContinuationExtendsOption(t *testing.T) {
	qs, _ := Questions("1. Pick one\n(A) a very long option\nthat wraps onto the next line\n(B) short")
	if len(qs) != 1 {
		t.Fatalf("got %d questions, want 1", len(qs))
	}
	q := qs[0]
	if q.Text != "Pick one" {
		t.Errorf("stem grew: %q", q.Text)
	}
	if got := q.Options[0].Text; got != "a very long option that wraps onto the next line" {
		t.Errorf("option text = %q", got)
	}
}

func TestStemContinuationBeforeOptions(t *testing.T) {
	qs, _ := Questions("1. The first line of the stem\nand the second line\n(A) x\n(B) y")
	if qs[0].Text != "The first line of the stem and the second line" {
		t.Errorf("stem = %q", qs[0].Text)
	}
}

func TestTextBeforeFirstQuestionDiscarded(t *testing.T) {
	qs, _ := Questions("Instructions: answer all questions.\nAnswer: C\n1. Only question\n(A) x\n(B) y")
	if len(qs) != 1 {
		t.Fatalf("got %d questions, want 1", len(qs))
	}
	if qs[0].Text != "Only question" || qs[0].CorrectOption != "" {
		t.Errorf("q = %+v", qs[0])
	}
}

func TestWarningsAndFlags(t *testing.T) {
	qs, warnings := Questions("1. No options at all\n2. One option only\n(A) lonely\n3. Fine\n(A) x\n(B) y")
	if len(qs) != 3 {
		t.Fatalf("got %d questions, want 3", len(qs))
	}

	if len(warnings) != 1 || warnings[0] != "Q1: No options detected." {
		t.Errorf("warnings = %v", warnings)
	}
	if !qs[0].IsFlagged || qs[0].FlagReason != "Fewer than 2 options found." {
		t.Errorf("q1 flag = %v %q", qs[0].IsFlagged, qs[0].FlagReason)
	}
	if !qs[1].IsFlagged {
		t.Error("one-option question not flagged")
	}
	if qs[2].IsFlagged {
		t.Error("two-option question flagged")
	}
}

func TestQPrefixedStarts(t *testing.T) {
	for _, line := range []string{"Q1. Stem here", "Question 1: Stem here", "Q.1 Stem here", "q1) Stem here"} {
		qs, _ := Questions(line + "\n(A) x\n(B) y")
		if len(qs) != 1 || qs[0].ID != 1 || qs[0].Text != "Stem here" {
			t.Errorf("%q parsed as %+v", line, qs)
		}
	}
}

func TestNormalizeWrapsExam(t *testing.T) {
	res := Normalize(samplePaper, "paper.pdf")
	if res.Exam.ExamID == "" {
		t.Error("exam id not generated")
	}
	if res.Exam.SourceFile != "paper.pdf" {
		t.Errorf("source file = %q", res.Exam.SourceFile)
	}
	if res.Exam.TotalQuestions != 4 || len(res.Exam.Questions) != 4 {
		t.Errorf("total = %d, len = %d", res.Exam.TotalQuestions, len(res.Exam.Questions))
	}
	if res.RawTextPreview == "" {
		t.Error("preview empty")
	}
}
