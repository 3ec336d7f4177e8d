package parser

import "github.com/chriserin/ftreport/internal/model"

// Document is a parsed feature file with its elements in source order.
type Document struct {
	Feature  *model.Feature
	Elements []*Element
}

// Element is a background, scenario or scenario outline with the steps and
// examples that belong to it. Exactly one of the first three fields is set.
type Element struct {
	Background *model.Background
	Scenario   *model.Scenario
	Outline    *model.ScenarioOutline
	Steps      []*model.Step
	Examples   []*model.Examples
}

func (e *Element) statement() *model.Statement {
	switch {
	case e.Background != nil:
		return &e.Background.Statement
	case e.Scenario != nil:
		return &e.Scenario.Statement
	default:
		return &e.Outline.Statement
	}
}

type ParseError struct {
	Line    int
	Message string
}
