package prompts

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mvaldez/deep-research-mcp/internal/research"
	"github.com/mvaldez/deep-research-mcp/internal/templates"
)

func newTestPrompt(t *testing.T) (*DeepResearchPrompt, *research.Tracker) {
	t.Helper()
	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("setup: renderer: %v", err)
	}
	tracker := research.NewTracker()
	return NewDeepResearchPrompt(tracker, renderer, nil, nil), tracker
}

func promptRequest(args map[string]string) mcp.GetPromptRequest {
	req := mcp.GetPromptRequest{}
	req.Params.Name = "deep-research"
	req.Params.Arguments = args
	return req
}

// --- Definition ---

func TestDefinition(t *testing.T) {
	p, _ := newTestPrompt(t)
	def := p.Definition()

	if def.Name != "deep-research" {
		t.Errorf("Name = %q", def.Name)
	}
	if len(def.Arguments) != 1 {
		t.Fatalf("expected 1 argument, got %d", len(def.Arguments))
	}
	arg := def.Arguments[0]
	if arg.Name != "research_question" {
		t.Errorf("argument name = %q", arg.Name)
	}
	if !arg.Required {
		t.Error("research_question should be required")
	}
}

// --- Handle ---

func TestHandle_Success(t *testing.T) {
	p, tracker := newTestPrompt(t)

	result, err := p.Handle(context.Background(), promptRequest(map[string]string{
		"research_question": "How do tides work?",
	}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}

	if result.Description != "Deep research template for: How do tides work?" {
		t.Errorf("Description = %q", result.Description)
	}
	if len(result.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(result.Messages))
	}

	msg := result.Messages[0]
	if msg.Role != mcp.RoleUser {
		t.Errorf("Role = %q, want user", msg.Role)
	}
	tc, ok := msg.Content.(mcp.TextContent)
	if !ok {
		t.Fatalf("Content should be TextContent, got %T", msg.Content)
	}
	if !strings.Contains(tc.Text, "<research_question>\nHow do tides work?\n</research_question>") {
		t.Error("message should embed the question inside the research_question tags")
	}
	if tc.Text != strings.TrimSpace(tc.Text) {
		t.Error("message text should be stripped of surrounding whitespace")
	}

	// State effects mirror the tool path, with the prompt wording.
	if got := tracker.Snapshot().Question; got != "How do tides work?" {
		t.Errorf("tracker question = %q", got)
	}
	if !strings.Contains(tracker.Notes(), "Research initiated on question: How do tides work?") {
		t.Errorf("notes missing initiation line: %q", tracker.Notes())
	}
}

func TestHandle_MissingArgument(t *testing.T) {
	p, tracker := newTestPrompt(t)

	_, err := p.Handle(context.Background(), promptRequest(map[string]string{}))
	if err == nil {
		t.Fatal("missing research_question should fail")
	}
	if !strings.Contains(err.Error(), "research_question") {
		t.Errorf("error should name the missing argument: %v", err)
	}
	if tracker.Notes() != "" {
		t.Error("failed call should not mutate state")
	}
}

func TestHandle_NilArguments(t *testing.T) {
	p, _ := newTestPrompt(t)

	_, err := p.Handle(context.Background(), promptRequest(nil))
	if err == nil {
		t.Fatal("nil arguments should fail")
	}
}

func TestHandle_EmptyQuestionAccepted(t *testing.T) {
	p, tracker := newTestPrompt(t)

	result, err := p.Handle(context.Background(), promptRequest(map[string]string{
		"research_question": "",
	}))
	if err != nil {
		t.Fatalf("empty question should be accepted verbatim: %v", err)
	}
	if len(result.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(result.Messages))
	}
	if got := tracker.Snapshot().Question; got != "" {
		t.Errorf("tracker question = %q, want empty", got)
	}
}
