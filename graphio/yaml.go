package graphio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/edgestar/core"
)

// DecodeYAML reads one YAML Document from r and builds the graph.
// Unknown keys are rejected.
func DecodeYAML(r io.Reader) (*core.Graph, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var d Document
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", ErrBadDocument)
		}
		return nil, fmt.Errorf("%w: %w", ErrBadDocument, err)
	}

	return d.Build()
}

// LoadYAMLFile opens path and decodes it with DecodeYAML.
func LoadYAMLFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening graph file: %w", err)
	}
	defer f.Close()

	g, err := DecodeYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// EncodeYAML writes g to w as a Document.
func EncodeYAML(w io.Writer, g *core.Graph) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromGraph(g)); err != nil {
		return fmt.Errorf("encoding graph: %w", err)
	}

	return enc.Close()
}
