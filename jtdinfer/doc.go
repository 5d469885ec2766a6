// Package jtdinfer infers a JSON Type Definition (JTD, RFC 8927) schema
// from a sequence of example JSON documents. Given one or more example
// values, it produces the narrowest JTD schema that accepts every
// example: usable downstream for validation, code generation, or
// synthetic-data production.
//
// # Design Principles
//
// Three principles, carried over from the upstream jsontypedef/jtd-infer
// project this package reimplements, guide every design decision:
//
//  1. Narrowest-accepting schema: the inferred schema must validate every
//     example folded into it, and should not be any wider than the
//     examples require (see [InferredSchema.Infer]).
//
//  2. Total, not best-effort: unlike a comment-annotation scanner, the
//     core here never fails and never skips input. Every
//     (current-inference, incoming-value) pair has a defined result;
//     [InferredSchema.Infer] has no error return. "Bad" input (a hint
//     that doesn't match the data) degrades gracefully to a wider
//     inference rather than erroring; see the package-level note on
//     hint mismatches below.
//
//  3. Sequential, not statistical: examples are folded one at a time, in
//     the order supplied. A property present in every example folded so
//     far is required; the moment an example omits it, it becomes
//     optional and stays optional. This makes the result order-dependent
//     (not commutative) by design; see [InferredSchema.Infer].
//
// # Inference Pipeline
//
// [InferredSchema] starts at [UnknownSchema] (the lattice bottom) and is
// folded forward one JSON value at a time via [InferredSchema.Infer].
// Each fold is a join: the new value either confirms the current shape
// (widening a number's range, adding an enum member, moving a missing
// property from required to optional) or widens it toward Any (the
// lattice top, meaning "incompatible examples seen"). Once a position
// reaches Any it never narrows again.
//
// [Hints] steer three forms the join would otherwise never produce
// (enum, values as dictionary-of-T, and discriminator as tagged union),
// plus a preferred numeric type that [InferredSchema.Project] emits for a
// numeric position whenever that type holds every number seen there, even
// when a narrower type would too (a deliberate user override). The three
// form hints are consumed only when folding from [UnknownSchema]: once a
// position has committed to a shape, form hints for that position are
// inert. A hint that never matches its data (an enum hint over a position
// that never holds a string, say) is not an error; the inference at that
// position simply proceeds as if the hint were absent.
//
// [InferredSchema.Project] is the terminal step: it walks the lattice one
// time and emits a concrete [jtd.Schema], collapsing nested Nullable
// wrappers and converting each numeric domain to the preferred numeric type
// if it contains every observation, else to the narrowest JTD numeric type
// that does (see [InferredNumber.Project]).
//
// # Hint Paths
//
// A hint path is a sequence of literal segments and/or the wildcard
// segment ("-"), matched against a position in the document by
// [HintSet.Sub] descending one segment at a time. [ParseHintPath] decodes
// the JSON-Pointer-like string syntax the CLI accepts (see cmd/jtdinfer):
// split on "/", decoding "~1" to "/" and (preserving a faithfully
// reproduced upstream quirk) "!0" to "~" rather than the standard "~0".
//
// # Basic Usage
//
//	hints := jtdinfer.NewHints(jtdinfer.NumFloat64, jtdinfer.NewHintSet(nil), jtdinfer.NewHintSet(nil), jtdinfer.NewHintSet(nil))
//	inference := jtdinfer.UnknownSchema()
//	for _, doc := range examples {
//	    inference = inference.Infer(doc, hints)
//	}
//	schema := inference.Project(hints)
//
// # CLI Integration
//
// [Config] bridges CLI flags to this package, following the
// RegisterFlags / RegisterCompletions / NewDriver convention used
// throughout this repository (see also the log and profile packages).
// [Driver] streams JSON documents from one or more readers through
// [InferredSchema.Infer] and emits the final [jtd.Schema].
//
// [jtd.Schema]: https://pkg.go.dev/github.com/jsontypedef/json-typedef-go#Schema
package jtdinfer
