// Package report renders the generation record embedded in an image as a
// fixed-order, human-readable text report.
//
// # Report Shape
//
// The report is a newline-joined sequence of sections between a 60-column
// header and footer rule:
//
//	============================================================
//	MFLUX Image Information
//	============================================================
//
//	Prompt: a cat in a hat
//
//	Model: dev
//	Width: 1024
//	Height: 768
//
//	Seed: 42
//	Steps: 20
//	Guidance: 3.5
//
//	LoRAs (1):
//	  - style.safetensors (scale: 0.8)
//
//	Generation Time: 12.30s
//	Created: 2024-03-05 10:15:30
//	MFLUX Version: 0.4.1
//	============================================================
//
// # Presence Rules
//
// Every field is optional and checked for truthiness: a zero number, empty
// string or empty list is treated exactly like an absent field and emits no
// line. Three groups (model/dimensions, sampler parameters, closing
// metadata) always contribute their leading blank line even when all their
// fields are absent; the remaining groups disappear entirely. Existing
// reports were produced under these rules, so they are a compatibility
// surface, not a style choice.
//
// # Purity
//
// Format is a pure function over the attribute record: no I/O, no error
// paths, byte-identical output for identical input. An empty record yields
// the NoMetadataMessage literal.
package report
