// Package scaffold materializes a Buddy package skeleton on disk: manifest,
// lock file, Bazel workspace descriptor with rendered plugin rules, and
// source/test stubs generated from embedded templates. CreateNew refuses an
// existing destination outright; InitInPlace always rewrites the manifest
// but never clobbers an existing skeleton file.
package scaffold
