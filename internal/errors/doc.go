// Package errors provides structured, actionable error values for starter.
//
// Each error carries a registered code (e.g., "E101") that maps to a
// category, a short message and an optional longer explanation. Builders add
// a detail line, a fix hint and a wrapped cause.
//
// # Error Categories
//
//   - contract: a caller passed a value a typed helper does not accept
//   - render: writing markup to an output failed
//   - config: the configuration file or environment is invalid
//   - export: writing or publishing exported pages failed
//   - cli: invalid command line usage
//
// # Usage
//
//	err := errors.New("E201").
//	    WithDetailf("server.port %d is outside 1..65535", port).
//	    WithSuggestion("Set server.port in starter.yaml or STARTER_SERVER_PORT")
//
//	errors.Print(os.Stderr, err)
//
// Contract violations are programming errors in page code. Helpers such as
// markup.Heading panic with an *Error instead of returning one.
package errors
