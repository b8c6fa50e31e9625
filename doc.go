// Package lvlearn is a set of small, runnable lessons on classic
// software-engineering patterns and algorithms.
//
// 🚀 What is inside?
//
//	Four independent lessons, each a library package plus a narrated demo:
//		• docfactory — Factory Method: documents built by factories, driven by a manager
//		• search     — linear vs. binary search over a synthetic product catalog
//		• forecast   — recursive vs. memoized financial forecasting formulas
//		• applog     — Singleton: one lazily created logger shared by every goroutine
//
// ✨ Why?
//
//   - Each lesson models only the mechanics of its pattern or algorithm.
//   - Every claim the narration makes (comparison counts, call counts,
//     same instance) is computed, not asserted, and covered by tests.
//   - Deterministic sample data: same seed, same output.
//
// Layout:
//
//	docfactory/ search/ forecast/ applog/  — the lessons
//	internal/demo/    — narrated scenario sequences and the interactive menu
//	internal/config/  — YAML overrides for the sample data
//	internal/console/ — styled console output
//	cmd/lvlearn/      — the CLI
//
// Run:
//
//	go run ./cmd/lvlearn          # pick a lesson
//	go run ./cmd/lvlearn all      # run every lesson
//
// None of the lessons is production software: not a document store, not a
// search index, not a forecasting engine, not a logging framework.
package lvlearn
