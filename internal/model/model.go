// Package model defines the entities a behaviour-driven test run reports
// (features, scenarios, steps and their outcomes) and their document form.
package model

type Comment struct {
	Value string `json:"value"`
	Line  int    `json:"line"`
}

type Tag struct {
	Name string `json:"name"` // e.g. "@smoke"
	Line int    `json:"line"`
}

// Statement holds the fields shared by every keyword block.
type Statement struct {
	Comments    []Comment `json:"comments,omitempty"`
	Tags        []Tag     `json:"tags,omitempty"`
	Keyword     string    `json:"keyword"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Line        int       `json:"line"`
	ID          string    `json:"id,omitempty"`
}

type Feature struct {
	Statement
}

type Background struct {
	Statement
}

type Scenario struct {
	Statement
}

type ScenarioOutline struct {
	Statement
}

type Row struct {
	Comments []Comment `json:"comments,omitempty"`
	Cells    []string  `json:"cells"`
	Line     int       `json:"line"`
	ID       string    `json:"id,omitempty"`
}

type Examples struct {
	Statement
	Rows []Row `json:"rows,omitempty"`
}

type DocString struct {
	ContentType string `json:"content_type,omitempty"`
	Value       string `json:"value"`
	Line        int    `json:"line"`
}

type Step struct {
	Comments  []Comment  `json:"comments,omitempty"`
	Keyword   string     `json:"keyword"`
	Name      string     `json:"name"`
	Line      int        `json:"line"`
	Rows      []Row      `json:"rows,omitempty"`
	DocString *DocString `json:"doc_string,omitempty"`
}

// Argument is a captured group of a step definition match.
type Argument struct {
	Val    string `json:"val"`
	Offset int    `json:"offset"`
}

type Match struct {
	Arguments []Argument `json:"arguments,omitempty"`
	Location  string     `json:"location,omitempty"`
}

const (
	StatusPassed    = "passed"
	StatusFailed    = "failed"
	StatusSkipped   = "skipped"
	StatusPending   = "pending"
	StatusUndefined = "undefined"
)

type Result struct {
	Status       string `json:"status"`
	Duration     int64  `json:"duration,omitempty"` // nanoseconds
	ErrorMessage string `json:"error_message,omitempty"`
}
