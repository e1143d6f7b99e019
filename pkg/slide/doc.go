// Package slide defines the slide content tree exchanged between content
// generators, the repair engine, and downstream layout tooling. Decoding is
// deliberately lax: generator output is frequently malformed, so unknown
// component properties, stringified sub-documents, and wrongly typed fields
// are captured rather than rejected. The repair engine (pkg/repair) is the
// component that turns a captured tree into the canonical shape.
package slide
