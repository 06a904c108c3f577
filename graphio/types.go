package graphio

import "errors"

var (
	// ErrBadDocument indicates a malformed or inconsistent graph document.
	ErrBadDocument = errors.New("graphio: bad graph document")
	// ErrGraphNotFound indicates no stored graph has the requested name.
	ErrGraphNotFound = errors.New("graphio: graph not found")
)

// Document is the serialized form of a core.Graph.
//
// Weighted may be omitted; the graph is then weighted iff some edge has a
// non-zero weight. Edge.Directed overrides Directed for one edge and
// requires Mixed.
type Document struct {
	Directed bool      `yaml:"directed"`
	Weighted *bool     `yaml:"weighted,omitempty"`
	Loops    bool      `yaml:"loops,omitempty"`
	Multi    bool      `yaml:"multi,omitempty"`
	Mixed    bool      `yaml:"mixed,omitempty"`
	Vertices []string  `yaml:"vertices,omitempty"`
	Edges    []EdgeDoc `yaml:"edges"`
}

// EdgeDoc is one serialized edge.
type EdgeDoc struct {
	From     string             `yaml:"from"`
	To       string             `yaml:"to"`
	Weight   float64            `yaml:"weight,omitempty"`
	Directed *bool              `yaml:"directed,omitempty"`
	Attrs    map[string]float64 `yaml:"attrs,omitempty"`
}
