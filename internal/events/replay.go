package events

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chriserin/ftreport/internal/formatter"
)

// maxLineSize bounds one event line; embeddings can be large.
const maxLineSize = 64 << 20

var ErrUnknownEvent = errors.New("unknown event")

// Replay reads an event log from r and dispatches every event to f and rep.
// It stops at the first error, reporting the offending line.
func Replay(r io.Reader, f formatter.Formatter, rep formatter.Reporter) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var ev Event
		if err := json.Unmarshal([]byte(line), &ev); err != nil {
			return fmt.Errorf("line %d: decoding event: %w", lineNo, err)
		}
		if err := Dispatch(ev, f, rep); err != nil {
			return fmt.Errorf("line %d: %s: %w", lineNo, ev.Kind, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading events: %w", err)
	}
	return nil
}

// Dispatch calls the callback matching ev.Kind.
func Dispatch(ev Event, f formatter.Formatter, rep formatter.Reporter) error {
	switch ev.Kind {
	case KindURI:
		return f.URI(ev.URI)
	case KindFeature:
		if ev.Feature == nil {
			return errMissing("feature")
		}
		return f.Feature(ev.Feature)
	case KindBackground:
		if ev.Background == nil {
			return errMissing("background")
		}
		return f.Background(ev.Background)
	case KindScenario:
		if ev.Scenario == nil {
			return errMissing("scenario")
		}
		return f.Scenario(ev.Scenario)
	case KindScenarioOutline:
		if ev.ScenarioOutline == nil {
			return errMissing("scenario_outline")
		}
		return f.ScenarioOutline(ev.ScenarioOutline)
	case KindExamples:
		if ev.Examples == nil {
			return errMissing("examples")
		}
		return f.Examples(ev.Examples)
	case KindStep:
		if ev.Step == nil {
			return errMissing("step")
		}
		return f.Step(ev.Step)
	case KindMatch:
		if ev.Match == nil {
			return errMissing("match")
		}
		return rep.Match(ev.Match)
	case KindResult:
		if ev.Result == nil {
			return errMissing("result")
		}
		return rep.Result(ev.Result)
	case KindEmbedding:
		return rep.Embedding(ev.MimeType, ev.Data)
	case KindEOF:
		return f.EOF()
	}
	return fmt.Errorf("%w %q", ErrUnknownEvent, ev.Kind)
}

func errMissing(field string) error {
	return fmt.Errorf("missing %q payload", field)
}
