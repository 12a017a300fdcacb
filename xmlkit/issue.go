// Package xmlkit is a small declarative framework for mapping XML elements
// onto Go structs: a typed attribute parser and a typed child-element
// parser, both built on encoding/xml's streaming Decoder. Neither parser
// stops at the first problem; both walk their whole entry list and input and
// return every Issue found, so a caller always gets the most complete
// partial result the input supports.
package xmlkit

import "fmt"

// IssueKind identifies which parsing rule an Issue reports a violation of.
type IssueKind int

const (
	// MissingAttribute: a required attribute entry was never visited.
	MissingAttribute IssueKind = iota
	// UnexpectedAttribute: an attribute was present with no matching entry.
	// Never fatal to the caller; it's a forward-compatibility warning.
	UnexpectedAttribute
	// InvalidAttributeValue: an attribute's bound parse function returned an
	// error.
	InvalidAttributeValue
	// MissingChildElement: a required (One or OneOrMore) child entry was
	// never visited.
	MissingChildElement
	// UnexpectedChildElement: a child element was present with no matching
	// entry. Never fatal; its subtree is skipped.
	UnexpectedChildElement
	// DuplicateChildElement: a ZeroOrOne/One entry's element appeared more
	// than once.
	DuplicateChildElement
)

func (k IssueKind) String() string {
	switch k {
	case MissingAttribute:
		return "MissingAttribute"
	case UnexpectedAttribute:
		return "UnexpectedAttribute"
	case InvalidAttributeValue:
		return "InvalidAttributeValue"
	case MissingChildElement:
		return "MissingChildElement"
	case UnexpectedChildElement:
		return "UnexpectedChildElement"
	case DuplicateChildElement:
		return "DuplicateChildElement"
	default:
		return "unknown"
	}
}

// Fatal reports whether this kind of issue should be treated as more than a
// forward-compatibility warning. Callers translating Issues into their own
// error taxonomy can use this as a starting default.
func (k IssueKind) Fatal() bool {
	return k != UnexpectedAttribute && k != UnexpectedChildElement
}

// Issue is one problem found while running an AttrParser or ChildParser
// against one XML element.
type Issue struct {
	Kind    IssueKind
	Element string // the element being parsed, eg. "geometry"
	Name    string // the attribute or child-element name involved
	Detail  string // set for InvalidAttributeValue: the underlying parse error
}

func (i Issue) String() string {
	if i.Detail != "" {
		return fmt.Sprintf("%s: <%s %s>: %s", i.Kind, i.Element, i.Name, i.Detail)
	}
	return fmt.Sprintf("%s: <%s %s>", i.Kind, i.Element, i.Name)
}
