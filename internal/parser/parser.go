package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/chriserin/ftreport/internal/model"
)

var (
	tagPattern = regexp.MustCompile(`@[^@\s]+`)
	idPattern  = regexp.MustCompile(`[\s_]`)

	stepKeywords = []string{"Given ", "When ", "Then ", "And ", "But ", "* "}
)

// parseState tracks what the next line may attach to.
type parseState struct {
	filename string
	doc      *Document
	errors   []ParseError
	comments []model.Comment
	tags     []model.Tag

	element  *Element
	step     *model.Step
	examples *model.Examples
	rows     *[]model.Row

	// description collects free text after a keyword line until the first
	// step, table or keyword.
	description *model.Statement
	descLines   []string
}

// Parse parses a .feature file and returns a Document and any parse errors.
// A file without a Feature: line gets a feature named after the file.
func Parse(filename string, content []byte) (*Document, []ParseError) {
	lines := strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")
	p := &parseState{filename: filename, doc: &Document{}}

	i := 0
	for i < len(lines) {
		raw := lines[i]
		trimmed := strings.TrimSpace(raw)
		lineNo := i + 1

		switch {
		case trimmed == "":
			if p.description != nil {
				p.descLines = append(p.descLines, "")
			}
			i++

		case strings.HasPrefix(trimmed, "#"):
			p.endDescription()
			p.comments = append(p.comments, model.Comment{Value: trimmed, Line: lineNo})
			i++

		case isTagLine(trimmed):
			p.endDescription()
			p.tags = append(p.tags, parseTags(trimmed, lineNo)...)
			i++

		case isDocStringDelimiter(trimmed):
			p.endDescription()
			i = p.docString(lines, i)

		case strings.HasPrefix(trimmed, "|"):
			p.endDescription()
			p.row(trimmed, lineNo)
			i++

		case strings.HasPrefix(trimmed, "Feature:"):
			p.feature(keywordName(trimmed, "Feature:"), lineNo)
			i++

		case strings.HasPrefix(trimmed, "Background:"):
			p.background(keywordName(trimmed, "Background:"), lineNo)
			i++

		case strings.HasPrefix(trimmed, "Scenario Outline:"):
			p.outline("Scenario Outline", keywordName(trimmed, "Scenario Outline:"), lineNo)
			i++

		case strings.HasPrefix(trimmed, "Scenario Template:"):
			p.outline("Scenario Template", keywordName(trimmed, "Scenario Template:"), lineNo)
			i++

		case strings.HasPrefix(trimmed, "Scenario:"):
			p.scenario("Scenario", keywordName(trimmed, "Scenario:"), lineNo)
			i++

		case strings.HasPrefix(trimmed, "Example:"):
			p.scenario("Example", keywordName(trimmed, "Example:"), lineNo)
			i++

		case strings.HasPrefix(trimmed, "Examples:"):
			p.examplesBlock("Examples", keywordName(trimmed, "Examples:"), lineNo)
			i++

		case strings.HasPrefix(trimmed, "Scenarios:"):
			p.examplesBlock("Scenarios", keywordName(trimmed, "Scenarios:"), lineNo)
			i++

		case strings.HasPrefix(trimmed, "Rule:"):
			p.endDescription()
			p.fail(lineNo, "Rule is not supported")
			i++
			i = consumeBlock(lines, i)

		default:
			if kw, ok := stepKeyword(trimmed); ok {
				p.addStep(kw, strings.TrimSpace(strings.TrimPrefix(trimmed, kw)), lineNo)
			} else if p.description != nil {
				p.descLines = append(p.descLines, trimmed)
			} else {
				p.fail(lineNo, fmt.Sprintf("unexpected line: %s", trimmed))
			}
			i++
		}
	}
	p.endDescription()

	if p.doc.Feature == nil {
		p.ensureFeature()
		p.doc.Feature.Tags = p.tags
	}

	return p.doc, p.errors
}

func (p *parseState) fail(line int, msg string) {
	p.errors = append(p.errors, ParseError{Line: line, Message: msg})
}

// statement builds the common fields, consuming pending comments and tags.
func (p *parseState) statement(keyword, name string, line int) model.Statement {
	st := model.Statement{
		Comments: p.comments,
		Tags:     p.tags,
		Keyword:  keyword,
		Name:     name,
		Line:     line,
	}
	p.comments = nil
	p.tags = nil
	return st
}

func (p *parseState) feature(name string, line int) {
	p.endDescription()
	if p.doc.Feature != nil {
		p.fail(line, "only one Feature is allowed per file")
		return
	}
	st := p.statement("Feature", name, line)
	st.ID = idFor(name)
	p.doc.Feature = &model.Feature{Statement: st}
	p.description = &p.doc.Feature.Statement
}

// ensureFeature names a missing feature after the file.
func (p *parseState) ensureFeature() {
	if p.doc.Feature != nil {
		return
	}
	name := filenameWithoutExt(p.filename)
	p.doc.Feature = &model.Feature{Statement: model.Statement{Keyword: "Feature", Name: name, ID: idFor(name)}}
}

func (p *parseState) background(name string, line int) {
	p.endDescription()
	p.ensureFeature()
	if len(p.doc.Elements) > 0 {
		p.fail(line, "Background must come before any scenario")
	}
	p.tags = nil // Background doesn't get tags
	st := p.statement("Background", name, line)
	p.startElement(&Element{Background: &model.Background{Statement: st}})
}

func (p *parseState) scenario(keyword, name string, line int) {
	p.endDescription()
	p.ensureFeature()
	st := p.statement(keyword, name, line)
	st.ID = p.doc.Feature.ID + ";" + idFor(name)
	p.startElement(&Element{Scenario: &model.Scenario{Statement: st}})
}

func (p *parseState) outline(keyword, name string, line int) {
	p.endDescription()
	p.ensureFeature()
	st := p.statement(keyword, name, line)
	st.ID = p.doc.Feature.ID + ";" + idFor(name)
	p.startElement(&Element{Outline: &model.ScenarioOutline{Statement: st}})
}

func (p *parseState) startElement(el *Element) {
	p.doc.Elements = append(p.doc.Elements, el)
	p.element = el
	p.step = nil
	p.examples = nil
	p.rows = nil
	p.description = el.statement()
}

func (p *parseState) examplesBlock(keyword, name string, line int) {
	p.endDescription()
	if p.element == nil || p.element.Outline == nil {
		p.fail(line, fmt.Sprintf("%s is only allowed after a Scenario Outline", keyword))
		p.comments, p.tags = nil, nil
		p.examples, p.step, p.rows = nil, nil, nil
		return
	}
	st := p.statement(keyword, name, line)
	st.ID = p.element.Outline.ID + ";" + idFor(name)
	ex := &model.Examples{Statement: st}
	p.element.Examples = append(p.element.Examples, ex)
	p.examples = ex
	p.step = nil
	p.rows = &ex.Rows
	p.description = &ex.Statement
}

func (p *parseState) addStep(keyword, name string, line int) {
	p.endDescription()
	if p.element == nil || p.examples != nil {
		p.fail(line, "step must belong to a Background, Scenario or Scenario Outline")
		p.comments = nil
		p.rows = nil
		return
	}
	s := &model.Step{Comments: p.comments, Keyword: keyword, Name: name, Line: line}
	p.comments = nil
	p.element.Steps = append(p.element.Steps, s)
	p.step = s
	p.rows = &s.Rows
}

func (p *parseState) row(trimmed string, line int) {
	if p.rows == nil || (p.step != nil && p.step.DocString != nil) {
		p.fail(line, "table row must follow a step or Examples")
		return
	}
	r := model.Row{Comments: p.comments, Cells: parseCells(trimmed), Line: line}
	p.comments = nil
	if p.examples != nil {
		r.ID = fmt.Sprintf("%s;%d", p.examples.ID, len(*p.rows)+1)
	}
	*p.rows = append(*p.rows, r)
}

// docString reads a doc string starting at lines[i] and attaches it to the
// current step. Returns the index of the line after the closing delimiter.
func (p *parseState) docString(lines []string, i int) int {
	opener := lines[i]
	indent := len(opener) - len(strings.TrimLeft(opener, " \t"))
	trimmed := strings.TrimSpace(opener)
	delimiter := `"""`
	if strings.HasPrefix(trimmed, "```") {
		delimiter = "```"
	}
	ds := &model.DocString{
		ContentType: strings.TrimSpace(strings.TrimPrefix(trimmed, delimiter)),
		Line:        i + 1,
	}

	end := skipDocString(lines, i)
	closed := end <= len(lines) && end-1 > i && strings.TrimSpace(lines[end-1]) == delimiter
	bodyEnd := end
	if closed {
		bodyEnd = end - 1
	}
	var body []string
	for _, l := range lines[i+1 : bodyEnd] {
		body = append(body, unindent(l, indent))
	}
	ds.Value = strings.ReplaceAll(strings.Join(body, "\n"), `\"\"\"`, `"""`)

	switch {
	case !closed:
		p.fail(i+1, "unterminated doc string")
	case p.step == nil || p.step.DocString != nil || len(p.step.Rows) > 0:
		p.fail(i+1, "doc string must follow a step")
	default:
		p.step.DocString = ds
		p.rows = nil
	}
	return end
}

func (p *parseState) endDescription() {
	if p.description == nil {
		return
	}
	for len(p.descLines) > 0 && p.descLines[len(p.descLines)-1] == "" {
		p.descLines = p.descLines[:len(p.descLines)-1]
	}
	for len(p.descLines) > 0 && p.descLines[0] == "" {
		p.descLines = p.descLines[1:]
	}
	p.description.Description = strings.Join(p.descLines, "\n")
	p.description = nil
	p.descLines = nil
}

func parseTags(line string, lineNo int) []model.Tag {
	matches := tagPattern.FindAllString(line, -1)
	var tags []model.Tag
	for _, m := range matches {
		tags = append(tags, model.Tag{Name: m, Line: lineNo})
	}
	return tags
}

// parseCells splits "| a | b\|c |" into cells, honouring \|, \\ and \n.
func parseCells(trimmed string) []string {
	var cells []string
	var cur strings.Builder
	body := strings.TrimPrefix(trimmed, "|")
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case c == '\\' && i+1 < len(body):
			i++
			switch body[i] {
			case '|':
				cur.WriteByte('|')
			case 'n':
				cur.WriteByte('\n')
			case '\\':
				cur.WriteByte('\\')
			default:
				cur.WriteByte('\\')
				cur.WriteByte(body[i])
			}
		case c == '|':
			cells = append(cells, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	return cells
}

func keywordName(trimmed, keyword string) string {
	return strings.TrimSpace(strings.TrimPrefix(trimmed, keyword))
}

func stepKeyword(trimmed string) (string, bool) {
	for _, kw := range stepKeywords {
		if strings.HasPrefix(trimmed, kw) {
			return kw, true
		}
	}
	return "", false
}

func idFor(name string) string {
	return strings.ToLower(idPattern.ReplaceAllString(name, "-"))
}

func unindent(line string, indent int) string {
	n := 0
	for n < indent && n < len(line) && (line[n] == ' ' || line[n] == '\t') {
		n++
	}
	return line[n:]
}

func filenameWithoutExt(filename string) string {
	name := filename
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[:idx]
	}
	return name
}

func isTagLine(trimmed string) bool {
	return strings.HasPrefix(trimmed, "@")
}

func isKeyword(trimmed string) bool {
	return strings.HasPrefix(trimmed, "Feature:") ||
		strings.HasPrefix(trimmed, "Background:") ||
		strings.HasPrefix(trimmed, "Scenario:") ||
		strings.HasPrefix(trimmed, "Scenario Outline:") ||
		strings.HasPrefix(trimmed, "Rule:") ||
		strings.HasPrefix(trimmed, "Examples:")
}

func isDocStringDelimiter(trimmed string) bool {
	return strings.HasPrefix(trimmed, `"""`) || strings.HasPrefix(trimmed, "```")
}

// skipDocString advances past a doc string block. i points at the opening delimiter.
// Returns the index of the line after the closing delimiter.
func skipDocString(lines []string, i int) int {
	opener := strings.TrimSpace(lines[i])
	delimiter := `"""`
	if strings.HasPrefix(opener, "```") {
		delimiter = "```"
	}
	i++ // move past opening delimiter
	for i < len(lines) {
		if strings.TrimSpace(lines[i]) == delimiter {
			return i + 1 // past the closing delimiter
		}
		i++
	}
	return i // EOF without closing delimiter
}

// consumeBlock advances past content lines, skipping over doc strings,
// until the next keyword, tag line, or EOF.
func consumeBlock(lines []string, i int) int {
	for i < len(lines) {
		t := strings.TrimSpace(lines[i])
		if isDocStringDelimiter(t) {
			i = skipDocString(lines, i)
			continue
		}
		if isKeyword(t) || isTagLine(t) {
			break
		}
		i++
	}
	return i
}
