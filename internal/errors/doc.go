// Package errors provides structured, coded errors for reactkit.
//
// Every error carries a short code that maps to a registered template with a
// category, a one-line message and a longer explanation. Errors can wrap an
// underlying cause, so errors.Is and errors.As keep working through them.
//
// # Error Categories
//
// Errors are organized into categories:
//   - runtime: misuse of the reactive engine (nested tracking passes)
//   - config: bad arguments or configuration files
//   - storage: snapshot persistence failures
//   - protocol: inspector HTTP/WebSocket failures
//   - cli: command line usage errors
//
// # Usage
//
//	err := errors.New("R001").
//	    Wrap(reactive.ErrNilGetter).
//	    WithSuggestion("Pass a function that reads the reactive values to watch")
//
//	fmt.Print(err.Format())
//	// Output:
//	// ERROR R001: Getter is nil
//	//
//	//   Watch and NewComputed need a getter function to discover
//	//   dependencies.
//	//
//	//   Hint: Pass a function that reads the reactive values to watch
package errors
