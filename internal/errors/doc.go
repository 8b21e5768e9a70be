// Package errors provides the structured error type used across the spell converter.
//
// Every failure carries a Code, a message and optional metadata. The converter
// maps its error taxonomy onto codes:
//   - decode errors (unknown short code, missing or malformed field): InvalidArgument
//   - serialization errors (a decoded spell cannot be rendered): Internal
//   - I/O errors (an output cannot be written): Internal for disk, Unavailable for Redis
//   - missing input paths: NotFound
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.Decode("school", "X")
//	err := errors.NotFoundf("input file %s does not exist", path)
//
// Adding metadata:
//
//	err := errors.Wrapf(err, "failed to decode spell %q", name).
//	    WithMeta(errors.MetaSpell, name)
//
// Extracting information:
//
//	code := errors.GetCode(err)
//	meta := errors.GetMeta(err)
//
// # Validation Errors
//
// Configuration is checked with the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("output", cfg.Output, vb)
//	errors.ValidateRange("workers", cfg.Workers, 1, 64, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
