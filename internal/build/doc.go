// Package build produces a deployable static site from a project's
// static directory.
//
// A build cleans the output directory, copies every static file into
// it, and rewrites HTML pages so their asset references match the
// output. With fingerprinting enabled, non-HTML assets are renamed
// with a content hash and a manifest.json records the mapping.
//
// Usage:
//
//	builder := build.New(cfg, build.Options{Fingerprint: true})
//	result, err := builder.Build(ctx)
package build
