package normalize

import (
	"regexp"
	"strings"
)

// Lines that are very likely noise in extracted exam text: page numbers,
// dividers, section headings, boilerplate. Compiled once, read-only.
var noisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\s*page\s+\d+\s*$`),
	regexp.MustCompile(`^\s*\d+\s*$`), // standalone numbers (page numbers)
	regexp.MustCompile(`^\s*-+\s*$`),
	regexp.MustCompile(`^\s*={3,}\s*$`),
	regexp.MustCompile(`(?i)^\s*(section|part|unit)\s+[ivxlcdm\d]+\s*$`),
	regexp.MustCompile(`(?i)^\s*(answer\s+key|answer\s+sheet)\s*$`),
	regexp.MustCompile(`(?i)^\s*\(?\s*continued\s*\)?\s*$`),
	regexp.MustCompile(`(?i)^\s*www\.\S+\s*$`),
	regexp.MustCompile(`^\s*©.*$`),
}

var (
	innerSpaceRe = regexp.MustCompile(`[ \t]+`)
	blankRunRe   = regexp.MustCompile(`\n{3,}`)
)

// Clean strips noise lines from raw extracted text and collapses
// whitespace, producing the input the normalizer expects.
func Clean(raw string) string {
	var kept []string
	for _, line := range strings.Split(raw, "\n") {
		if isNoise(line) {
			continue
		}
		line = strings.TrimSpace(innerSpaceRe.ReplaceAllString(line, " "))
		if line != "" {
			kept = append(kept, line)
		}
	}
	text := strings.Join(kept, "\n")
	text = blankRunRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

func isNoise(line string) bool {
	line = strings.TrimSpace(line)
	for _, re := range noisePatterns {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}
