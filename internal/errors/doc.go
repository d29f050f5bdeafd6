// Package errors provides coded errors for the save editor.
//
// Every failure that crosses a package boundary carries a Code so the
// presentation layer can decide how loudly to report it without string
// matching:
//
//	err := errors.NotFound("items catalog not found").
//	    WithMeta("path", path)
//
// Wrapping keeps the original code:
//
//	if err := repo.Load(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to open save file")
//	}
//
// Changing the code while keeping the cause:
//
//	if os.IsPermission(err) {
//	    return errors.WrapWithCode(err, errors.CodePermissionDenied, "cannot write save file")
//	}
//
// # Layer guidelines
//
// Repositories return NotFound for missing files or keys, InvalidArgument
// (or DataLoss) for content that does not parse, and Internal for anything
// else. Orchestrators return FailedPrecondition when no save is open and
// OutOfRange for bad skill indexes. The CLI and TUI turn any error into a
// notification with UserMessage; none of them terminate the TUI.
package errors
