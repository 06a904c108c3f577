// Package graphio loads and stores core.Graph values.
//
// Two formats share one intermediate Document:
//
//   - YAML documents (gopkg.in/yaml.v3): DecodeYAML, LoadYAMLFile, EncodeYAML.
//   - SQLite databases (modernc.org/sqlite, pure Go): OpenSQLite,
//     EnsureSchema, SaveSQLite, LoadSQLite. One database holds many graphs
//     keyed by name.
//
// Edges are written and read back in insertion order, so a reloaded graph
// assigns the same edge IDs (e1, e2, ...) and searches identically.
//
// Errors:
//
//   - ErrBadDocument: malformed YAML or a document core.Graph rejects.
//   - ErrGraphNotFound: LoadSQLite was asked for an unknown name.
package graphio
