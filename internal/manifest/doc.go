// Package manifest models the Buddy.toml package descriptor. It provides
// loading with graceful handling of a missing file, canonical rendering with
// a lossless round trip, and JSON-Schema validation of descriptor contents.
package manifest
