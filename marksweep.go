// ABOUTME: Main marksweep package providing version information and package documentation
// ABOUTME: This is the root package for the mark-and-sweep collector library

// Package marksweep provides a mark-and-sweep garbage collector for a small
// stack-based virtual machine that manipulates integers and pairs. It
// includes the collector core (package vm), snapshot export of live heaps
// (package snapshot), and offline heap graph diagnostics such as
// paths-to-roots (package analysis).
package marksweep

// Version is the semantic version of the marksweep library
const Version = "0.1.0-dev"
