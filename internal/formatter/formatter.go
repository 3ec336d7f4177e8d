// Package formatter receives the events of a behaviour-driven test run and
// turns them into reports.
package formatter

import "github.com/chriserin/ftreport/internal/model"

// Formatter receives the structure of a feature file in source order:
// uri, feature, then for each element its steps and examples, then eof.
type Formatter interface {
	URI(uri string) error
	Feature(f *model.Feature) error
	Background(b *model.Background) error
	Scenario(s *model.Scenario) error
	ScenarioOutline(o *model.ScenarioOutline) error
	Examples(e *model.Examples) error
	Step(s *model.Step) error
	EOF() error
	SyntaxError(state, event string, legalEvents []string, uri string, line int) error
}

// Reporter receives the outcome of executing the most recent step.
type Reporter interface {
	Match(m *model.Match) error
	Result(r *model.Result) error
	Embedding(mimeType string, data []byte) error
}
