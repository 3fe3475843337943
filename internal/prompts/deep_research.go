// Package prompts implements the MCP prompt handlers.
//
// MCP prompts are user-triggered workflows: the host asks for a prompt
// by name and relays the returned message to the model. The
// deep-research prompt is the user-facing twin of the
// start_deep_research tool — same state effects, same rendered text.
package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/mvaldez/deep-research-mcp/internal/archive"
	"github.com/mvaldez/deep-research-mcp/internal/research"
	"github.com/mvaldez/deep-research-mcp/internal/templates"
)

// DeepResearchPrompt handles the deep-research MCP prompt.
type DeepResearchPrompt struct {
	tracker  *research.Tracker
	renderer *templates.Renderer
	arch     *archive.Store
	log      *zap.Logger
}

// NewDeepResearchPrompt creates a DeepResearchPrompt. The archive may
// be nil, in which case sessions are not archived.
func NewDeepResearchPrompt(tracker *research.Tracker, renderer *templates.Renderer, arch *archive.Store, log *zap.Logger) *DeepResearchPrompt {
	if log == nil {
		log = zap.NewNop()
	}
	return &DeepResearchPrompt{tracker: tracker, renderer: renderer, arch: arch, log: log}
}

// Definition returns the MCP prompt definition for registration.
func (p *DeepResearchPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("deep-research",
		mcp.WithPromptDescription("A prompt to conduct deep research on a question"),
		mcp.WithArgument("research_question",
			mcp.ArgumentDescription("The research question to investigate"),
			mcp.RequiredArgument(),
		),
	)
}

// Handle processes the deep-research prompt request. A missing
// research_question is a hard error for this exchange; the transport
// surfaces it as a protocol-level failure.
func (p *DeepResearchPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	question, ok := req.Params.Arguments["research_question"]
	if !ok {
		return nil, fmt.Errorf("missing required argument: research_question")
	}

	p.log.Debug("handling deep-research prompt", zap.String("research_question", question))

	if err := p.tracker.Update(research.FieldQuestion, question); err != nil {
		return nil, err
	}
	initiation := "Research initiated on question: " + question
	p.tracker.AddNote(initiation)

	sessionID, err := p.arch.StartSession(question)
	if err != nil {
		p.log.Warn("archive session not recorded", zap.Error(err))
	} else {
		for _, note := range []string{"Updated research data: question", initiation} {
			if err := p.arch.AddNote(sessionID, note); err != nil {
				p.log.Warn("archive note not recorded", zap.Error(err))
			}
		}
	}

	prompt, err := p.renderer.Render(templates.DeepResearch, templates.DeepResearchData{
		ResearchQuestion: question,
	})
	if err != nil {
		return nil, err
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Deep research template for: %s", question),
		Messages: []mcp.PromptMessage{
			{
				Role:    mcp.RoleUser,
				Content: mcp.NewTextContent(prompt),
			},
		},
	}, nil
}
