// Package research holds the in-memory state for an ongoing research
// session: the current question, the structured fields the research
// workflow fills in, and an append-only log of process notes.
//
// The record lives for the lifetime of the process. It is created once
// at startup, mutated only by the prompt and tool handlers, and never
// persisted or reloaded.
package research

import (
	"fmt"
	"strings"
	"sync"
)

// Field identifies one of the fixed fields of the research record.
// Keeping this a closed enumeration makes "set field by name" a
// checked operation — an unknown field is an error, never a silent
// insert into an open map.
type Field string

const (
	FieldQuestion         Field = "question"
	FieldElaboration      Field = "elaboration"
	FieldSubquestions     Field = "subquestions"
	FieldSearchResults    Field = "search_results"
	FieldExtractedContent Field = "extracted_content"
	FieldFinalReport      Field = "final_report"
)

// ParseField maps a field name to its Field value.
func ParseField(name string) (Field, error) {
	switch Field(name) {
	case FieldQuestion, FieldElaboration, FieldSubquestions,
		FieldSearchResults, FieldExtractedContent, FieldFinalReport:
		return Field(name), nil
	}
	return "", fmt.Errorf("unknown research field: %q", name)
}

// Record is the structured research state. The JSON shape matches the
// research://data resource document.
type Record struct {
	Question         string            `json:"question"`
	Elaboration      string            `json:"elaboration"`
	Subquestions     []string          `json:"subquestions"`
	SearchResults    map[string]string `json:"search_results"`
	ExtractedContent map[string]string `json:"extracted_content"`
	FinalReport      string            `json:"final_report"`
}

// newRecord returns a Record with all fields empty but non-nil, so the
// serialized document always carries the full six-field shape.
func newRecord() Record {
	return Record{
		Subquestions:     []string{},
		SearchResults:    map[string]string{},
		ExtractedContent: map[string]string{},
	}
}

// Tracker owns the research record and its notes log. Each field holds
// the most recent value written to it; notes order reflects call order.
//
// The MCP stdio transport dispatches one request at a time, so there is
// no real contention; the mutex just keeps the tracker safe to share.
type Tracker struct {
	mu     sync.Mutex
	record Record
	notes  []string
}

// NewTracker creates a Tracker with an empty record and no notes.
func NewTracker() *Tracker {
	return &Tracker{record: newRecord()}
}

// Update overwrites the named field and appends a note recording the
// update. The value must match the field's type.
func (t *Tracker) Update(field Field, value any) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch field {
	case FieldQuestion, FieldElaboration, FieldFinalReport:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("field %s expects a string, got %T", field, value)
		}
		switch field {
		case FieldQuestion:
			t.record.Question = s
		case FieldElaboration:
			t.record.Elaboration = s
		case FieldFinalReport:
			t.record.FinalReport = s
		}
	case FieldSubquestions:
		qs, ok := value.([]string)
		if !ok {
			return fmt.Errorf("field %s expects []string, got %T", field, value)
		}
		t.record.Subquestions = qs
	case FieldSearchResults, FieldExtractedContent:
		m, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("field %s expects map[string]string, got %T", field, value)
		}
		if field == FieldSearchResults {
			t.record.SearchResults = m
		} else {
			t.record.ExtractedContent = m
		}
	default:
		return fmt.Errorf("unknown research field: %q", field)
	}

	t.notes = append(t.notes, fmt.Sprintf("Updated research data: %s", field))
	return nil
}

// AddNote appends a free-text note to the research log.
func (t *Tracker) AddNote(note string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.notes = append(t.notes, note)
}

// Notes returns all notes joined by newline, in insertion order.
func (t *Tracker) Notes() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return strings.Join(t.notes, "\n")
}

// Snapshot returns a copy of the current record. Mutating the copy
// does not affect the tracker.
func (t *Tracker) Snapshot() Record {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := t.record
	out.Subquestions = append([]string{}, t.record.Subquestions...)
	out.SearchResults = make(map[string]string, len(t.record.SearchResults))
	for k, v := range t.record.SearchResults {
		out.SearchResults[k] = v
	}
	out.ExtractedContent = make(map[string]string, len(t.record.ExtractedContent))
	for k, v := range t.record.ExtractedContent {
		out.ExtractedContent[k] = v
	}
	return out
}
