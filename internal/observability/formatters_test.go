package observability

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/stretchr/testify/assert"
)

func TestPrintAssessment(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	a := &analysis.Assessment{
		Score:           72,
		Summary:         "Local heuristic analysis",
		Pros:            []string{"Includes a Skills section", "Uses quantified achievements"},
		Cons:            []string{"Missing contact information"},
		Recommendations: []string{"Add a LinkedIn profile URL"},
		Jobs: []analysis.JobMatch{
			{Title: "Backend Engineer", MatchPercentage: 80, Reason: "strong skills match"},
		},
	}

	p.PrintAssessment("resume.pdf", a)
	output := buf.String()

	assert.Contains(t, output, "RESUME ASSESSMENT")
	assert.Contains(t, output, "resume.pdf")
	assert.Contains(t, output, "Score:    72")
	assert.Contains(t, output, "Local heuristic analysis")
	assert.Contains(t, output, "Strengths:")
	assert.Contains(t, output, "Includes a Skills section")
	assert.Contains(t, output, "Weaknesses:")
	assert.Contains(t, output, "Recommendations:")
	assert.Contains(t, output, "Backend Engineer (80%)")
}

func TestPrintAssessment_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAssessment("resume.pdf", nil)

	assert.Empty(t, buf.String())
}

func TestPrintAssessment_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	a := &analysis.Assessment{
		Score:   50,
		Summary: "Local heuristic analysis",
		Pros: []string{
			"one", "two", "three", "four", "five", "six", "seven",
		},
	}

	p.PrintAssessment("resume.docx", a)
	output := buf.String()

	assert.Contains(t, output, "five")
	assert.NotContains(t, output, "six")
	assert.Contains(t, output, "... and 2 more")
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintError("broken.pdf", errors.New("failed to read file"))
	output := buf.String()

	assert.Contains(t, output, "ANALYSIS FAILED")
	assert.Contains(t, output, "broken.pdf")
	assert.Contains(t, output, "failed to read file")
}

func TestPrintBox_BordersAndTruncation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	longLine := strings.Repeat("x", boxWidth*2)
	p.printBox("TITLE", "short\n"+longLine)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "┌"))
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "└"))
	assert.Contains(t, buf.String(), "...")
	assert.NotContains(t, buf.String(), longLine)
}
