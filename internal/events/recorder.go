package events

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/chriserin/ftreport/internal/formatter"
	"github.com/chriserin/ftreport/internal/model"
)

// Recorder writes every callback it receives as one event log line.
type Recorder struct {
	enc *json.Encoder
}

func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{enc: json.NewEncoder(w)}
}

var (
	_ formatter.Formatter = (*Recorder)(nil)
	_ formatter.Reporter  = (*Recorder)(nil)
)

func (r *Recorder) write(ev Event) error {
	if err := r.enc.Encode(ev); err != nil {
		return fmt.Errorf("recording %s event: %w", ev.Kind, err)
	}
	return nil
}

func (r *Recorder) URI(uri string) error {
	return r.write(Event{Kind: KindURI, URI: uri})
}

func (r *Recorder) Feature(f *model.Feature) error {
	return r.write(Event{Kind: KindFeature, Feature: f})
}

func (r *Recorder) Background(b *model.Background) error {
	return r.write(Event{Kind: KindBackground, Background: b})
}

func (r *Recorder) Scenario(s *model.Scenario) error {
	return r.write(Event{Kind: KindScenario, Scenario: s})
}

func (r *Recorder) ScenarioOutline(o *model.ScenarioOutline) error {
	return r.write(Event{Kind: KindScenarioOutline, ScenarioOutline: o})
}

func (r *Recorder) Examples(e *model.Examples) error {
	return r.write(Event{Kind: KindExamples, Examples: e})
}

func (r *Recorder) Step(s *model.Step) error {
	return r.write(Event{Kind: KindStep, Step: s})
}

func (r *Recorder) Match(m *model.Match) error {
	return r.write(Event{Kind: KindMatch, Match: m})
}

func (r *Recorder) Result(res *model.Result) error {
	return r.write(Event{Kind: KindResult, Result: res})
}

func (r *Recorder) Embedding(mimeType string, data []byte) error {
	return r.write(Event{Kind: KindEmbedding, MimeType: mimeType, Data: data})
}

func (r *Recorder) EOF() error {
	return r.write(Event{Kind: KindEOF})
}

// SyntaxError is recorded nowhere; the log format has no event for it.
func (r *Recorder) SyntaxError(state, event string, legalEvents []string, uri string, line int) error {
	return fmt.Errorf("event log: syntax error at %s:%d: %w", uri, line, formatter.ErrUnsupported)
}
