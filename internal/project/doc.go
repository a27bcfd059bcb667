// Package project implements the slideshow configuration core: the form
// snapshot model, the pure form-to-config reader, validation, the
// deterministic document serializer, and the best-effort document parser.
//
// # Data Flow
//
// The interactive builder owns a FormState holding raw control values.
// On every edit it runs, synchronously and in order:
//
//	ReadConfig -> validation -> Serialize -> preview highlighting
//
// ReadConfig is pure: identical FormState values always yield an identical
// Config. Validation only inspects values and never performs I/O; discovered
// directory contents are supplied via FileInventory, which is informational
// only and never authoritative for generation.
//
// # Document Format
//
// Serialize emits the YAML-shaped document consumed by the external
// generator with a fixed section order: project, paths, special images,
// video settings, sequences, style, text overlays. Strings are
// double-quoted without escaping embedded quotes; this is a documented
// limitation of the format, not a defect.
//
// ParseDocument is the single load entry point for externally supplied
// documents. Parsing is best-effort and non-atomic: it returns a
// ParseResult with the recognized fields and the unrecognized leftovers,
// and recognized fields are applied even when others fail.
package project
