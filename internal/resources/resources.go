// Package resources implements the MCP resource handlers.
//
// Two read-only endpoints expose the research state: the notes log as
// plain text and the full record as a JSON document. Both are
// snapshot reads — there is no subscription or change notification.
package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mvaldez/deep-research-mcp/internal/research"
)

// Resource URIs, fixed by the protocol contract.
const (
	NotesURI = "research://notes"
	DataURI  = "research://data"
)

// Handler serves the research resource endpoints.
type Handler struct {
	tracker *research.Tracker
}

// NewHandler creates a resource Handler backed by the given tracker.
func NewHandler(tracker *research.Tracker) *Handler {
	return &Handler{tracker: tracker}
}

// NotesResource returns the MCP resource definition for the notes log.
func (h *Handler) NotesResource() mcp.Resource {
	return mcp.NewResource(
		NotesURI,
		"Research Process Notes",
		mcp.WithResourceDescription("Notes generated during the research process"),
		mcp.WithMIMEType("text/plain"),
	)
}

// DataResource returns the MCP resource definition for the record.
func (h *Handler) DataResource() mcp.Resource {
	return mcp.NewResource(
		DataURI,
		"Research Data",
		mcp.WithResourceDescription("Structured data collected during the research process"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleNotes returns the notes log as plain text, in insertion order.
func (h *Handler) HandleNotes(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	if req.Params.URI != NotesURI {
		return nil, fmt.Errorf("unknown resource: %s", req.Params.URI)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     h.tracker.Notes(),
		},
	}, nil
}

// HandleData returns the full research record as indented JSON.
func (h *Handler) HandleData(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	if req.Params.URI != DataURI {
		return nil, fmt.Errorf("unknown resource: %s", req.Params.URI)
	}

	data, err := json.MarshalIndent(h.tracker.Snapshot(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling research data: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
