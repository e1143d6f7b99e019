// Package repair implements the deterministic repair/normalization engine
// for generated slide trees. It runs a fixed cascade of pure stages - type
// normalization, top-level field repair, pre-repair layout feasibility,
// per-kind content repair, consolidation, post-repair layout feasibility -
// and is total: any component-bearing input, including an empty or entirely
// garbage one, produces a structurally valid slide. The engine performs no
// I/O and no network calls; its only reporting channel is the slide's
// warning log.
package repair
