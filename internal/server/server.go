// Package server wires all MCP components and creates the server
// instance. This is the composition root: it creates the tracker,
// renderer, and archive and injects them into the handlers. No
// business logic lives here.
package server

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/mvaldez/deep-research-mcp/internal/archive"
	"github.com/mvaldez/deep-research-mcp/internal/config"
	"github.com/mvaldez/deep-research-mcp/internal/prompts"
	"github.com/mvaldez/deep-research-mcp/internal/research"
	"github.com/mvaldez/deep-research-mcp/internal/resources"
	"github.com/mvaldez/deep-research-mcp/internal/templates"
	"github.com/mvaldez/deep-research-mcp/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with the tool, prompt, and
// resource handlers registered.
//
// The returned cleanup function closes the archive's database
// connection and must be called on shutdown (typically via defer). It
// is always non-nil and safe to call even when the archive is disabled.
func New(cfg config.Config, log *zap.Logger) (*server.MCPServer, func(), error) {
	if log == nil {
		log = zap.NewNop()
	}

	tracker := research.NewTracker()

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, noop, fmt.Errorf("creating template renderer: %w", err)
	}

	// The archive is an independent subsystem: if it fails to
	// initialize, the research handlers keep working without it.
	cleanup := noop
	var arch *archive.Store
	if cfg.Archive.Enabled {
		arch, err = archive.New(archive.Config{DataDir: cfg.Archive.DataDir})
		if err != nil {
			log.Warn("session archive disabled", zap.Error(err))
			arch = nil
		} else {
			cleanup = func() {
				if err := arch.Close(); err != nil {
					log.Warn("archive close", zap.Error(err))
				}
			}
		}
	}

	s := server.NewMCPServer(
		"deep-research-server",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	startTool := tools.NewStartResearchTool(tracker, renderer, arch, log)
	s.AddTool(startTool.Definition(), startTool.Handle)

	researchPrompt := prompts.NewDeepResearchPrompt(tracker, renderer, arch, log)
	s.AddPrompt(researchPrompt.Definition(), researchPrompt.Handle)

	resourceHandler := resources.NewHandler(tracker)
	s.AddResource(resourceHandler.NotesResource(), resourceHandler.HandleNotes)
	s.AddResource(resourceHandler.DataResource(), resourceHandler.HandleData)

	return s, cleanup, nil
}

// noop is the default cleanup when the archive is disabled.
func noop() {}

// serverInstructions tells the host how to use the server.
func serverInstructions() string {
	return `This server provides a structured deep-research workflow.

## How to use it

- Call the start_deep_research tool (or the deep-research prompt) with
  the research_question to investigate. The response is a multi-phase
  research methodology prompt: follow it step by step — question
  elaboration, subquestion decomposition, layered information
  gathering, critical analysis, and report generation.
- The server tracks the current question and a log of process notes.
  Read research://notes for the notes log and research://data for the
  structured research record as JSON.

The server performs no searching or synthesis itself; it provides the
methodology and records your progress.`
}
