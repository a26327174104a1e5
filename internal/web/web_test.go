package web

import (
	"strings"
	"testing"

	"github.com/tsmithofficiating/rules-backend/internal/dto"
	"github.com/tsmithofficiating/rules-backend/internal/version"
)

func TestLookupPageRendersChrome(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer error: %v", err)
	}

	var buf strings.Builder
	err = r.LookupPage(&buf, PageData{
		Query:  "8-5-3d",
		Answer: "It is a safety.",
	})
	if err != nil {
		t.Fatalf("LookupPage error: %v", err)
	}

	html := buf.String()
	for _, want := range []string{
		version.Watermark,
		version.Footer(),
		version.Copyright,
		version.Attribution,
		version.Disclaimer,
		"It is a safety.",
		`value="8-5-3d"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("lookup page missing %q", want)
		}
	}
	if strings.Contains(html, "Token usage") {
		t.Error("debug section rendered without debug info")
	}
}

func TestLookupPageDebugSection(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer error: %v", err)
	}

	var buf strings.Builder
	err = r.LookupPage(&buf, PageData{
		Query:  "8-5-3d",
		Answer: "It is a safety.",
		Debug: &dto.LookupDebugInfo{
			InputTokens:       1000,
			OutputTokens:      500,
			CachedInputTokens: 200,
			TotalCostUSD:      0.00114,
		},
	})
	if err != nil {
		t.Fatalf("LookupPage error: %v", err)
	}

	html := buf.String()
	for _, want := range []string{"Token usage", "1000", "$0.001140"} {
		if !strings.Contains(html, want) {
			t.Errorf("debug section missing %q", want)
		}
	}
}

func TestLookupPageEscapesAnswer(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer error: %v", err)
	}

	var buf strings.Builder
	err = r.LookupPage(&buf, PageData{Answer: `<script>alert("x")</script>`})
	if err != nil {
		t.Fatalf("LookupPage error: %v", err)
	}
	if strings.Contains(buf.String(), "<script>alert") {
		t.Error("answer not escaped")
	}
}

func TestQAPageRendersReply(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer error: %v", err)
	}

	var buf strings.Builder
	err = r.QAPage(&buf, PageData{
		SessionID: "session-1",
		Question:  "Can Team A recover their own punt after a muff?",
		Answer:    "Yes, but they cannot advance it.",
	})
	if err != nil {
		t.Fatalf("QAPage error: %v", err)
	}

	html := buf.String()
	for _, want := range []string{
		`value="session-1"`,
		"Can Team A recover their own punt after a muff?",
		"Yes, but they cannot advance it.",
		"Assistant Reply",
		version.Footer(),
	} {
		if !strings.Contains(html, want) {
			t.Errorf("qa page missing %q", want)
		}
	}
}

func TestPagesRenderWarning(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer error: %v", err)
	}

	var buf strings.Builder
	if err := r.LookupPage(&buf, PageData{Warning: "Please enter a rule ID to look up or enter a question or scenario."}); err != nil {
		t.Fatalf("LookupPage error: %v", err)
	}
	if !strings.Contains(buf.String(), "Please enter a rule ID") {
		t.Error("warning not rendered")
	}
}
