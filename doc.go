// Package bmssp is an in-memory toolkit for bounded multi-source
// shortest-path search on directed weighted graphs.
//
// 🚀 What is bmssp?
//
//	A modern, thread-safe, zero-dependency library built from two pieces:
//		• Core primitives: create vertices & edges, attach numeric
//		  attributes, mutate safely under locks
//		• BMSSP engine: recursive bounded multi-source shortest paths with
//		  deterministic tie-breaking and exact path reconstruction
//
// ✨ Why choose bmssp?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – R/W locks, reproducible results, in-code docs
//   - Pure Go – no cgo, no hidden deps
//   - Tunable – functional options for precision, weight attributes,
//     weight callbacks (edge masking), and early-stop targets
//
// Under the hood, everything is organized under two subpackages:
//
//	core/  — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	bmssp/ — the Bounded Multi-Source Shortest Path algorithm
//
// Quick ASCII example:
//
//	    A──▶B
//	    │   │
//	    ▼   ▼
//	    C──▶D
//
//	a directed square: BMSSP from {A} settles B, C, D in cost order.
//
// Dive into the package docs for full examples and the algorithm's
// recursion, pivoting, and tie-breaking design.
//
//	go get github.com/katalvlaran/bmssp
package bmssp
