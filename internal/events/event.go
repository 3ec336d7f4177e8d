// Package events reads and writes test-run event logs: newline-delimited
// JSON, one formatter or reporter callback per line.
package events

import "github.com/chriserin/ftreport/internal/model"

const (
	KindURI             = "uri"
	KindFeature         = "feature"
	KindBackground      = "background"
	KindScenario        = "scenario"
	KindScenarioOutline = "scenario_outline"
	KindExamples        = "examples"
	KindStep            = "step"
	KindMatch           = "match"
	KindResult          = "result"
	KindEmbedding       = "embedding"
	KindEOF             = "eof"
)

// Event is one line of an event log. Kind selects which payload is set.
type Event struct {
	Kind string `json:"event"`

	URI             string                 `json:"uri,omitempty"`
	Feature         *model.Feature         `json:"feature,omitempty"`
	Background      *model.Background      `json:"background,omitempty"`
	Scenario        *model.Scenario        `json:"scenario,omitempty"`
	ScenarioOutline *model.ScenarioOutline `json:"scenario_outline,omitempty"`
	Examples        *model.Examples        `json:"examples,omitempty"`
	Step            *model.Step            `json:"step,omitempty"`
	Match           *model.Match           `json:"match,omitempty"`
	Result          *model.Result          `json:"result,omitempty"`

	MimeType string `json:"mime_type,omitempty"`
	Data     []byte `json:"data,omitempty"` // base64 in the log
}
