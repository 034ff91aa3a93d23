// Package pipeline orchestrates a full extraction run: discover PNG files,
// invoke the OCR engine once per image, concatenate the per-image results
// into one combined file, report a summary and preview, and clean up the
// intermediate text files.
//
// Execution is strictly sequential. Each engine invocation blocks until it
// completes; no timeout is applied, so a hung engine hangs the run (a known
// limitation of the tool, not a silent one). Context cancellation is checked
// between images, never mid-invocation.
//
// # Failure policy
//
// Only environment problems are fatal: an input path that is not a directory,
// an engine that cannot be resolved, or an output directory that cannot be
// created. A failing engine invocation for one image is reported and the run
// continues; that image's text is simply absent from the combined output.
//
// # File ownership
//
// Before any processing, the set of ".txt" file names already present in the
// output directory is snapshotted. Cleanup at the end of the run deletes only
// per-image files generated by this run whose names are NOT in that snapshot,
// so user files that happen to share a name with a generated output survive
// (their content may still be overwritten by the engine mid-run, exactly as
// the external tesseract binary would do).
package pipeline
