package xmlkit

import "encoding/xml"

// Multiplicity constrains how many times a child element may occur.
type Multiplicity int

const (
	// ZeroOrOne: absent invokes the entry's default-setter; more than one
	// occurrence emits DuplicateChildElement for every occurrence past the
	// first.
	ZeroOrOne Multiplicity = iota
	// One: absent emits MissingChildElement; more than one occurrence emits
	// DuplicateChildElement for every occurrence past the first.
	One
	// ZeroOrMore: any number of occurrences, each handled.
	ZeroOrMore
	// OneOrMore: absent emits MissingChildElement; any number of
	// occurrences above zero, each handled.
	OneOrMore
)

func (m Multiplicity) single() bool {
	return m == ZeroOrOne || m == One
}

func (m Multiplicity) required() bool {
	return m == One || m == OneOrMore
}

// Handler parses one occurrence of a child element: dec is positioned just
// after start was read, and the handler must consume exactly its element's
// subtree (eg. by delegating to another AttrParser/ChildParser pair, or by
// calling dec.Skip()).
type Handler func(dec *xml.Decoder, start xml.StartElement) []Issue

type childEntry struct {
	name       string
	mult       Multiplicity
	handle     Handler
	setDefault func()
	seen       int
}

// ChildParser is a reusable, declarative mapping from one XML element's
// child elements onto Go fields or vector appends. Build one with
// NewChildParser, register entries with Element, then call Parse once per
// occurrence of the enclosing element.
type ChildParser struct {
	element string
	entries map[string]*childEntry
	order   []string
}

// NewChildParser creates a child-element parser for the named enclosing
// element, used only to tag emitted Issues.
func NewChildParser(element string) *ChildParser {
	return &ChildParser{element: element, entries: make(map[string]*childEntry)}
}

// Element registers a child element entry. setDefault may be nil for
// ZeroOrMore/OneOrMore entries, which have no single field to default.
func (p *ChildParser) Element(name string, mult Multiplicity, handle Handler, setDefault func()) *ChildParser {
	p.entries[name] = &childEntry{name: name, mult: mult, handle: handle, setDefault: setDefault}
	p.order = append(p.order, name)
	return p
}

// Parse consumes tokens from dec until the end element matching start,
// dispatching each direct child start-element to its registered Handler.
// Unknown child elements are skipped with an UnexpectedChildElement warning.
// Entries are reset before parsing, so a single ChildParser value can be
// reused across many occurrences of the enclosing element.
func (p *ChildParser) Parse(dec *xml.Decoder, start xml.StartElement) []Issue {
	for _, e := range p.entries {
		e.seen = 0
	}

	var issues []Issue

	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				issues = append(issues, p.finish()...)
				return issues
			}
		case xml.StartElement:
			name := t.Name.Local
			entry, ok := p.entries[name]
			if !ok {
				issues = append(issues, Issue{Kind: UnexpectedChildElement, Element: p.element, Name: name})
				dec.Skip()
				continue
			}
			entry.seen++
			if entry.mult.single() && entry.seen > 1 {
				issues = append(issues, Issue{Kind: DuplicateChildElement, Element: p.element, Name: name})
				dec.Skip()
				continue
			}
			issues = append(issues, entry.handle(dec, t)...)
		}
	}

	issues = append(issues, p.finish()...)
	return issues
}

func (p *ChildParser) finish() []Issue {
	var issues []Issue
	for _, name := range p.order {
		e := p.entries[name]
		if e.seen > 0 {
			continue
		}
		if e.mult.required() {
			issues = append(issues, Issue{Kind: MissingChildElement, Element: p.element, Name: e.name})
		} else if e.setDefault != nil {
			e.setDefault()
		}
	}
	return issues
}

// Skip is a Handler that discards the child element's subtree without
// binding anything, used for elements this repo recognizes but intentionally
// doesn't interpret further.
func Skip(dec *xml.Decoder, start xml.StartElement) []Issue {
	dec.Skip()
	return nil
}
