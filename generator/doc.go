// Package generator runs the complete maze pipeline behind one call:
// builder -> named carving algorithm -> optional braid and trim passes ->
// maze snapshot -> metrics -> Report.
//
// Reports serialise to JSON or YAML (Encode) and carry the ASCII rendering
// as rows, so the CLI and the HTTP service share one output format.
package generator
