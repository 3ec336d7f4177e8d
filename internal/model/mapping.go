package model

import "github.com/chriserin/ftreport/internal/value"

const (
	TypeBackground      = "background"
	TypeScenario        = "scenario"
	TypeScenarioOutline = "scenario_outline"
)

func (c Comment) ToMap() *value.Map {
	m := value.NewMap()
	m.SetString("value", c.Value)
	m.SetInt("line", int64(c.Line))
	return m
}

func (t Tag) ToMap() *value.Map {
	m := value.NewMap()
	m.SetString("name", t.Name)
	m.SetInt("line", int64(t.Line))
	return m
}

func (r Row) ToMap() *value.Map {
	m := value.NewMap()
	setComments(m, r.Comments)
	cells := value.NewList()
	for _, c := range r.Cells {
		cells.Append(value.Str(c))
	}
	m.Set("cells", value.OfList(cells))
	m.SetInt("line", int64(r.Line))
	if r.ID != "" {
		m.SetString("id", r.ID)
	}
	return m
}

func (d DocString) ToMap() *value.Map {
	m := value.NewMap()
	m.SetString("value", d.Value)
	if d.ContentType != "" {
		m.SetString("content_type", d.ContentType)
	}
	m.SetInt("line", int64(d.Line))
	return m
}

func (s Statement) toMap(typ string) *value.Map {
	m := value.NewMap()
	setComments(m, s.Comments)
	if len(s.Tags) > 0 {
		tags := value.NewList()
		for _, t := range s.Tags {
			tags.Append(value.Of(t.ToMap()))
		}
		m.Set("tags", value.OfList(tags))
	}
	m.SetString("keyword", s.Keyword)
	m.SetString("name", s.Name)
	m.SetString("description", s.Description)
	m.SetInt("line", int64(s.Line))
	if s.ID != "" {
		m.SetString("id", s.ID)
	}
	if typ != "" {
		m.SetString("type", typ)
	}
	return m
}

func (f *Feature) ToMap() *value.Map { return f.toMap("") }

func (b *Background) ToMap() *value.Map { return b.toMap(TypeBackground) }

func (s *Scenario) ToMap() *value.Map { return s.toMap(TypeScenario) }

func (o *ScenarioOutline) ToMap() *value.Map { return o.toMap(TypeScenarioOutline) }

func (e *Examples) ToMap() *value.Map {
	m := e.toMap("")
	setRows(m, e.Rows)
	return m
}

func (s *Step) ToMap() *value.Map {
	m := value.NewMap()
	setComments(m, s.Comments)
	m.SetString("keyword", s.Keyword)
	m.SetString("name", s.Name)
	m.SetInt("line", int64(s.Line))
	setRows(m, s.Rows)
	if s.DocString != nil {
		m.Set("doc_string", value.Of(s.DocString.ToMap()))
	}
	return m
}

func (mt *Match) ToMap() *value.Map {
	m := value.NewMap()
	if len(mt.Arguments) > 0 {
		args := value.NewList()
		for _, a := range mt.Arguments {
			am := value.NewMap()
			am.SetString("val", a.Val)
			am.SetInt("offset", int64(a.Offset))
			args.Append(value.Of(am))
		}
		m.Set("arguments", value.OfList(args))
	}
	if mt.Location != "" {
		m.SetString("location", mt.Location)
	}
	return m
}

func (r *Result) ToMap() *value.Map {
	m := value.NewMap()
	m.SetString("status", r.Status)
	if r.Duration != 0 {
		m.SetInt("duration", r.Duration)
	}
	if r.ErrorMessage != "" {
		m.SetString("error_message", r.ErrorMessage)
	}
	return m
}

func setComments(m *value.Map, comments []Comment) {
	if len(comments) == 0 {
		return
	}
	l := value.NewList()
	for _, c := range comments {
		l.Append(value.Of(c.ToMap()))
	}
	m.Set("comments", value.OfList(l))
}

func setRows(m *value.Map, rows []Row) {
	if len(rows) == 0 {
		return
	}
	l := value.NewList()
	for _, r := range rows {
		l.Append(value.Of(r.ToMap()))
	}
	m.Set("rows", value.OfList(l))
}
