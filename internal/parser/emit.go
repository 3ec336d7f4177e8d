package parser

import (
	"github.com/chriserin/ftreport/internal/formatter"
)

// Emit sends a parsed document to f in the order formatters expect:
// uri, feature, each element followed by its steps and examples, eof.
// If the file had parse errors the first one goes to f.SyntaxError instead.
func Emit(doc *Document, errors []ParseError, uri string, f formatter.Formatter) error {
	if len(errors) > 0 {
		pe := errors[0]
		return f.SyntaxError("feature", pe.Message, nil, uri, pe.Line)
	}

	if err := f.URI(uri); err != nil {
		return err
	}
	if err := f.Feature(doc.Feature); err != nil {
		return err
	}

	for _, el := range doc.Elements {
		var err error
		switch {
		case el.Background != nil:
			err = f.Background(el.Background)
		case el.Scenario != nil:
			err = f.Scenario(el.Scenario)
		default:
			err = f.ScenarioOutline(el.Outline)
		}
		if err != nil {
			return err
		}

		for _, s := range el.Steps {
			if err := f.Step(s); err != nil {
				return err
			}
		}
		for _, ex := range el.Examples {
			if err := f.Examples(ex); err != nil {
				return err
			}
		}
	}

	return f.EOF()
}
