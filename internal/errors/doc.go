// Package errors provides structured, actionable error messages for
// the sitewinder toolchain.
//
// Each error has a unique code (e.g., "E101") that maps to a short
// message, a detailed explanation, and a documentation URL. Errors can
// carry a source location, a fix suggestion, and a code example.
//
// # Error Categories
//
//   - runtime: framework runtime errors (collector misuse, bad mounts)
//   - config: sitewinder.yaml problems
//   - build: production build failures
//   - dev: development server and watcher failures
//   - deploy: upload and deploy-target failures
//   - cli: command-line usage problems
//
// # Usage
//
//	err := errors.New("E101").
//	    WithSuggestion("Run 'sitewinder create' to scaffold a project")
//
//	errors.PrintError(err)
package errors
