package domain

import "errors"

// Sentinel errors. Callers wrap them with context and test with errors.Is.
var (
	ErrNotFound       = errors.New("not found")
	ErrAlreadyExists  = errors.New("already exists")
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotImplemented = errors.New("not implemented")

	// ErrMalformed: the bytes fit no known manifest schema.
	ErrMalformed = errors.New("malformed manifest")
	// ErrUnsupportedVersion: manifestVersion is newer than LatestSchemaVersion.
	ErrUnsupportedVersion = errors.New("unsupported manifest version")

	// ErrIndexOutOfRange covers both pin and recent-location indices.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrDanglingAsset: a pin names an image missing from Document.Assets.
	ErrDanglingAsset = errors.New("dangling asset reference")

	// ErrOracleUnavailable means no world could be built for the generator
	// version and seed. Searches still answer coordinates and pins.
	ErrOracleUnavailable = errors.New("world oracle unavailable")
)
