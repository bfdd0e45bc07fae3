// Package manifest implements the service manifest model and its
// resolution pipeline: implicit defaulting from the global config,
// region override merging, and secret placeholder injection, followed
// by structural verification of the resolved result.
//
// A Manifest is loaded from services/<name>/manifest.yml, mutated in
// place through the pipeline stages, verified, and then either
// serialized to helm values or projected into a template context by
// the render package. The resolved form is ephemeral and recomputed
// per invocation.
package manifest
