// Package errors provides structured error types for the recyclerlistview library.
//
// Errors are categorized by Stage (where the error occurred) and Kind (error
// category). The Error type includes the item index involved, a human-readable
// detail message and a cause chain.
//
// Use the convenience constructors for common patterns:
//
//	err := errors.Unsupported(errors.StageLayout, "horizontal grid flow")
//	err := errors.OutOfBounds(errors.StageLayout, index, length)
//
// All errors implement the standard error interface and support errors.Is/As.
// Matching with errors.Is compares Stage and Kind only, so callers can test
// for a category without reproducing the message:
//
//	if stderrors.Is(err, &errors.Error{Stage: errors.StageLayout, Kind: errors.KindUnsupported}) {
//	    // configuration error, fix the integration
//	}
package errors
