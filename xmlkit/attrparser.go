package xmlkit

import (
	"encoding/xml"
	"sort"
)

type attrEntry struct {
	name       string
	required   bool
	bind       func(string) error
	setDefault func()
}

// AttrParser is a reusable, declarative mapping from one XML element's
// attribute list onto Go fields. Build one with NewAttrParser, register
// entries with Field/OptionalField, call Finalize once, then Parse it
// against every occurrence of the element.
type AttrParser struct {
	element  string
	entries  []attrEntry
	final    bool
}

// NewAttrParser creates an attribute parser for the named element, used only
// to tag emitted Issues.
func NewAttrParser(element string) *AttrParser {
	return &AttrParser{element: element}
}

// Field registers a required attribute: if it's absent, Parse emits
// MissingAttribute. bind is invoked with the attribute's text value; if it
// returns an error, Parse emits InvalidAttributeValue.
func (p *AttrParser) Field(name string, bind func(string) error) *AttrParser {
	p.entries = append(p.entries, attrEntry{name: name, required: true, bind: bind})
	return p
}

// OptionalField registers an optional attribute. If absent, setDefault is
// invoked instead of bind.
func (p *AttrParser) OptionalField(name string, bind func(string) error, setDefault func()) *AttrParser {
	p.entries = append(p.entries, attrEntry{name: name, required: false, bind: bind, setDefault: setDefault})
	return p
}

// Finalize sorts the entry list by name so Parse can binary-search it. It is
// idempotent; Parse calls it automatically if it hasn't been called yet.
func (p *AttrParser) Finalize() *AttrParser {
	if p.final {
		return p
	}
	sort.Slice(p.entries, func(i, j int) bool { return p.entries[i].name < p.entries[j].name })
	p.final = true
	return p
}

func (p *AttrParser) find(name string) (int, bool) {
	i := sort.Search(len(p.entries), func(i int) bool { return p.entries[i].name >= name })
	if i < len(p.entries) && p.entries[i].name == name {
		return i, true
	}
	return -1, false
}

// Parse walks attrs, invoking each registered binding at most once, then
// fills in defaults for every optional entry not seen and reports every
// required entry not seen. It returns every Issue found; a caller decides
// how to weigh UnexpectedAttribute against the rest.
func (p *AttrParser) Parse(attrs []xml.Attr) []Issue {
	p.Finalize()

	seen := make([]bool, len(p.entries))
	var issues []Issue

	for _, a := range attrs {
		name := a.Name.Local
		idx, ok := p.find(name)
		if !ok {
			issues = append(issues, Issue{Kind: UnexpectedAttribute, Element: p.element, Name: name})
			continue
		}
		if seen[idx] {
			continue
		}
		seen[idx] = true
		if err := p.entries[idx].bind(a.Value); err != nil {
			issues = append(issues, Issue{Kind: InvalidAttributeValue, Element: p.element, Name: name, Detail: err.Error()})
		}
	}

	for i, e := range p.entries {
		if seen[i] {
			continue
		}
		if e.required {
			issues = append(issues, Issue{Kind: MissingAttribute, Element: p.element, Name: e.name})
		} else if e.setDefault != nil {
			e.setDefault()
		}
	}

	return issues
}
