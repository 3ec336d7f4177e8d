package formatter

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"github.com/chriserin/ftreport/internal/model"
	"github.com/chriserin/ftreport/internal/value"
)

// JSONFormatter accumulates one feature's events into a document and writes
// it as JSON on EOF.
//
//	{ ...feature, "elements": [ { ...element, "steps": [ { ...step,
//	  "match": {...}, "result": {...}, "embeddings": [...] } ],
//	  "examples": [...] } ] }
type JSONFormatter struct {
	out    io.Writer
	prefix string
	indent string
	root   *value.Map
}

type Option func(*JSONFormatter)

// WithIndent pretty prints the document the way json.Indent does.
func WithIndent(prefix, indent string) Option {
	return func(f *JSONFormatter) {
		f.prefix = prefix
		f.indent = indent
	}
}

func NewJSONFormatter(out io.Writer, opts ...Option) *JSONFormatter {
	f := &JSONFormatter{out: out}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var (
	_ Formatter = (*JSONFormatter)(nil)
	_ Reporter  = (*JSONFormatter)(nil)
)

// Document returns the root built so far, nil before Feature.
func (f *JSONFormatter) Document() *value.Map {
	return f.root
}

func (f *JSONFormatter) URI(uri string) error {
	return nil
}

func (f *JSONFormatter) Feature(feature *model.Feature) error {
	f.root = feature.ToMap()
	return nil
}

func (f *JSONFormatter) Background(b *model.Background) error {
	return f.addElement(b.ToMap())
}

func (f *JSONFormatter) Scenario(s *model.Scenario) error {
	return f.addElement(s.ToMap())
}

func (f *JSONFormatter) ScenarioOutline(o *model.ScenarioOutline) error {
	return f.addElement(o.ToMap())
}

func (f *JSONFormatter) Examples(e *model.Examples) error {
	el, err := f.currentElement()
	if err != nil {
		return fmt.Errorf("examples: %w", err)
	}
	el.GetOrCreateList("examples").Append(value.Of(e.ToMap()))
	return nil
}

func (f *JSONFormatter) Step(s *model.Step) error {
	el, err := f.currentElement()
	if err != nil {
		return fmt.Errorf("step: %w", err)
	}
	el.GetOrCreateList("steps").Append(value.Of(s.ToMap()))
	return nil
}

func (f *JSONFormatter) Match(m *model.Match) error {
	step, err := f.currentStep()
	if err != nil {
		return fmt.Errorf("match: %w", err)
	}
	step.Set("match", value.Of(m.ToMap()))
	return nil
}

func (f *JSONFormatter) Result(r *model.Result) error {
	step, err := f.currentStep()
	if err != nil {
		return fmt.Errorf("result: %w", err)
	}
	step.Set("result", value.Of(r.ToMap()))
	return nil
}

func (f *JSONFormatter) Embedding(mimeType string, data []byte) error {
	step, err := f.currentStep()
	if err != nil {
		return fmt.Errorf("embedding: %w", err)
	}
	encoded := base64.StdEncoding.EncodeToString(data)
	step.GetOrCreateList("embeddings").Append(value.Of(value.Embedding(mimeType, encoded)))
	return nil
}

// EOF writes the document to the sink and flushes it. A root that was never
// set is written as null.
func (f *JSONFormatter) EOF() error {
	doc, err := json.Marshal(value.Of(f.root))
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	if f.indent != "" || f.prefix != "" {
		var buf bytes.Buffer
		if err := json.Indent(&buf, doc, f.prefix, f.indent); err != nil {
			return fmt.Errorf("indenting document: %w", err)
		}
		doc = buf.Bytes()
	}

	if _, err := f.out.Write(doc); err != nil {
		return &WriteError{Sink: sinkName(f.out), Err: err}
	}
	if fl, ok := f.out.(interface{ Flush() error }); ok {
		if err := fl.Flush(); err != nil {
			return &WriteError{Sink: sinkName(f.out), Err: err}
		}
	}
	return nil
}

func (f *JSONFormatter) SyntaxError(state, event string, legalEvents []string, uri string, line int) error {
	return fmt.Errorf("json formatter: syntax error at %s:%d: %w", uri, line, ErrUnsupported)
}

func (f *JSONFormatter) addElement(el *value.Map) error {
	if f.root == nil {
		return ErrNoFeature
	}
	f.elements().Append(value.Of(el))
	return nil
}

// elements returns the root's "elements" list, creating it on first use.
// Requires a feature.
func (f *JSONFormatter) elements() *value.List {
	return f.root.GetOrCreateList("elements")
}

// currentElement is the last background, scenario or outline added.
// Requires at least one element.
func (f *JSONFormatter) currentElement() (*value.Map, error) {
	if f.root == nil {
		return nil, ErrNoFeature
	}
	last, ok := lastEntry(f.root, "elements")
	if !ok {
		return nil, ErrNoElement
	}
	return last, nil
}

// currentStep is the last step of the current element. Requires at least
// one step on that element.
func (f *JSONFormatter) currentStep() (*value.Map, error) {
	el, err := f.currentElement()
	if err != nil {
		return nil, err
	}
	last, ok := lastEntry(el, "steps")
	if !ok {
		return nil, ErrNoStep
	}
	return last, nil
}

// lastEntry returns the final map in the list under key without creating
// the list.
func lastEntry(m *value.Map, key string) (*value.Map, bool) {
	v, ok := m.Get(key)
	if !ok || v.AsList() == nil {
		return nil, false
	}
	last, ok := v.AsList().Last()
	if !ok || last.AsMap() == nil {
		return nil, false
	}
	return last.AsMap(), true
}

func sinkName(w io.Writer) string {
	if n, ok := w.(interface{ Name() string }); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", w)
}
