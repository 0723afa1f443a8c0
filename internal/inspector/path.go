package inspector

import "strings"

// PropertyPath is the dot-separated location of a property inside a
// component, e.g. "lights.Array.data[2].color".
type PropertyPath struct {
	raw      string
	segments []string
}

// ParsePath splits path on dots. An empty path has no segments.
func ParsePath(path string) PropertyPath {
	if path == "" {
		return PropertyPath{}
	}
	return PropertyPath{raw: path, segments: strings.Split(path, ".")}
}

// Segments returns a copy of the path segments.
func (p PropertyPath) Segments() []string {
	out := make([]string, len(p.segments))
	copy(out, p.segments)
	return out
}

// Leaf is the last segment, or "" for an empty path.
func (p PropertyPath) Leaf() string {
	if len(p.segments) == 0 {
		return ""
	}
	return p.segments[len(p.segments)-1]
}

// Len is the number of segments.
func (p PropertyPath) Len() int { return len(p.segments) }

// String returns the path as it was parsed.
func (p PropertyPath) String() string { return p.raw }

// Placement says where a property sits relative to collections.
type Placement int

const (
	// PlacementField is a plain field of a component.
	PlacementField Placement = iota
	// PlacementElement is an element of a collection. The host labels these.
	PlacementElement
	// PlacementElementMember is a field nested inside a collection element.
	PlacementElementMember
)

func (p Placement) String() string {
	switch p {
	case PlacementField:
		return "field"
	case PlacementElement:
		return "element"
	case PlacementElementMember:
		return "element member"
	default:
		return "unknown"
	}
}

// Classifier decides a property's placement from its path. Path encodings
// belong to the host, so hosts that show collections supply their own.
type Classifier interface {
	Classify(path PropertyPath) Placement
}

// ClassifierFunc adapts a function to a Classifier.
type ClassifierFunc func(path PropertyPath) Placement

func (f ClassifierFunc) Classify(path PropertyPath) Placement { return f(path) }

// FieldClassifier treats every path as a plain field.
type FieldClassifier struct{}

func (FieldClassifier) Classify(PropertyPath) Placement { return PlacementField }
