// Package tools implements the MCP tool handlers.
//
// Each tool receives its dependencies via its struct and exposes a
// Definition for registration plus a Handle compatible with mcp-go's
// CallToolRequest signature.
package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/mvaldez/deep-research-mcp/internal/archive"
	"github.com/mvaldez/deep-research-mcp/internal/research"
	"github.com/mvaldez/deep-research-mcp/internal/templates"
)

// StartResearchTool handles the start_deep_research MCP tool.
// It records the research question and returns the rendered
// methodology prompt for the caller to execute.
type StartResearchTool struct {
	tracker  *research.Tracker
	renderer *templates.Renderer
	arch     *archive.Store
	log      *zap.Logger
}

// NewStartResearchTool creates a StartResearchTool. The archive may be
// nil, in which case sessions are not archived.
func NewStartResearchTool(tracker *research.Tracker, renderer *templates.Renderer, arch *archive.Store, log *zap.Logger) *StartResearchTool {
	if log == nil {
		log = zap.NewNop()
	}
	return &StartResearchTool{tracker: tracker, renderer: renderer, arch: arch, log: log}
}

// Definition returns the MCP tool definition for registration.
func (t *StartResearchTool) Definition() mcp.Tool {
	return mcp.NewTool("start_deep_research",
		mcp.WithDescription(
			"Start a comprehensive deep research process on a specific question. "+
				"This tool initiates a structured research workflow that guides the AI "+
				"through question elaboration, subquestion generation, web searching, "+
				"content analysis, and report generation. Use this when you need to "+
				"conduct thorough research on a complex topic.",
		),
		mcp.WithString("research_question",
			mcp.Required(),
			mcp.Description("The research question to investigate in depth"),
		),
	)
}

// Handle processes the start_deep_research tool call.
func (t *StartResearchTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	raw, ok := args["research_question"]
	if !ok {
		return mcp.NewToolResultError("Missing required argument: research_question"), nil
	}
	question, ok := raw.(string)
	if !ok {
		return mcp.NewToolResultError("'research_question' must be a string"), nil
	}

	t.log.Debug("handling start_deep_research", zap.String("research_question", question))

	// Empty questions are accepted verbatim; the record just mirrors
	// whatever the caller sent.
	if err := t.tracker.Update(research.FieldQuestion, question); err != nil {
		return nil, err
	}
	initiation := "Research initiated via tool on question: " + question
	t.tracker.AddNote(initiation)

	// Archive failures never fail the request — the archive is an
	// audit trail, not part of the protocol contract.
	sessionID, err := t.arch.StartSession(question)
	if err != nil {
		t.log.Warn("archive session not recorded", zap.Error(err))
	} else {
		for _, note := range []string{"Updated research data: question", initiation} {
			if err := t.arch.AddNote(sessionID, note); err != nil {
				t.log.Warn("archive note not recorded", zap.Error(err))
			}
		}
	}

	prompt, err := t.renderer.Render(templates.DeepResearch, templates.DeepResearchData{
		ResearchQuestion: question,
	})
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(prompt), nil
}
