// Package files provides discovery and small filesystem helpers for
// the export pipeline: locating instrument text files in an input
// directory and reading their raw contents.
package files
