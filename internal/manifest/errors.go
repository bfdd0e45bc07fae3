package manifest

import "errors"

// Pipeline and verification errors.
var (
	// ErrMissingSource indicates an expected manifest file is absent.
	ErrMissingSource = errors.New("manifest file not found")

	// ErrMalformedSource indicates a manifest file failed to parse.
	ErrMalformedSource = errors.New("malformed manifest")

	// ErrIdentityMismatch indicates a manifest name disagrees with the
	// service identity it was loaded for.
	ErrIdentityMismatch = errors.New("manifest name does not match service")

	// ErrUnknownRegion indicates a region absent from the global config.
	ErrUnknownRegion = errors.New("unknown region")

	// ErrUnsupportedRegion indicates the service's own regions list does
	// not include the requested region.
	ErrUnsupportedRegion = errors.New("region not supported by service")

	// ErrMissingOverride indicates a region override file that a caller
	// expected to exist is absent.
	ErrMissingOverride = errors.New("override file not found")

	// ErrInvalidHostAlias indicates a malformed host alias in an override.
	ErrInvalidHostAlias = errors.New("invalid host alias")

	// ErrValidation indicates a hard verification failure.
	ErrValidation = errors.New("manifest validation failed")
)
