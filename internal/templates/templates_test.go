package templates

import (
	"strings"
	"testing"
)

// --- NewRenderer ---

func TestNewRenderer_Succeeds(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() failed: %v", err)
	}
	if r == nil {
		t.Fatal("NewRenderer() returned nil")
	}
}

// --- Render: DeepResearch ---

func TestRender_DeepResearch(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	question := "Is X better than Y?"
	result, err := r.Render(DeepResearch, DeepResearchData{ResearchQuestion: question})
	if err != nil {
		t.Fatalf("Render(DeepResearch) failed: %v", err)
	}

	if !strings.HasPrefix(result, "You are an expert research analyst") {
		t.Errorf("rendered prompt should start with the fixed preamble, got: %.80q", result)
	}

	// The question lands verbatim inside the research_question tags.
	want := "<research_question>\n" + question + "\n</research_question>"
	if !strings.Contains(result, want) {
		t.Errorf("rendered prompt missing %q", want)
	}

	// Key phase headings from the methodology survive rendering.
	checks := []string{
		"PHASE 1: PRELIMINARY ANALYSIS & RESEARCH DESIGN",
		"PHASE 2: HIERARCHICAL QUESTION DECOMPOSITION",
		"PHASE 3: LAYERED INFORMATION GATHERING",
		"PHASE 4: CRITICAL ANALYSIS & SYNTHESIS",
		"PHASE 5: COMPREHENSIVE REPORT GENERATION",
		"CRITICAL RESEARCH ETHICS & COPYRIGHT GUIDELINES",
	}
	for _, c := range checks {
		if !strings.Contains(result, c) {
			t.Errorf("rendered prompt missing %q", c)
		}
	}
}

func TestRender_EmptyQuestion(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	result, err := r.Render(DeepResearch, DeepResearchData{})
	if err != nil {
		t.Fatalf("Render with empty question failed: %v", err)
	}
	if !strings.Contains(result, "<research_question>\n\n</research_question>") {
		t.Error("empty question should render empty tags")
	}
}

func TestRender_LongQuestion(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	question := strings.Repeat("Why? ", 10_000)
	result, err := r.Render(DeepResearch, DeepResearchData{ResearchQuestion: question})
	if err != nil {
		t.Fatalf("Render with long question failed: %v", err)
	}
	if !strings.Contains(result, question) {
		t.Error("long question should pass through verbatim")
	}
}

func TestRender_TrimsWhitespace(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	result, err := r.Render(DeepResearch, DeepResearchData{ResearchQuestion: "q"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if result != strings.TrimSpace(result) {
		t.Error("rendered prompt should have no leading/trailing whitespace")
	}
}

func TestRender_NoPlaceholderLeftovers(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	result, err := r.Render(DeepResearch, DeepResearchData{ResearchQuestion: "q"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(result, "{{") || strings.Contains(result, "ResearchQuestion") {
		t.Error("rendered prompt contains unexpanded template syntax")
	}
}

func TestRender_UnknownKind(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	if _, err := r.Render(Kind("nonexistent"), nil); err == nil {
		t.Error("rendering an unknown template kind should fail")
	}
}
