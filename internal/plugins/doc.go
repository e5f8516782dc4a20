// Package plugins holds the fixed catalogue of dependencies Buddy knows how
// to wire into a Bazel workspace. Each plugin maps supported version strings
// to content checksums and carries a build-rule template; resolving a
// dependency renders the template with every placeholder substituted.
//
// The catalogue's declaration order is significant: rendered rules may rely
// on a rule that appears earlier in the generated workspace file, so
// iteration order is always declaration order, never alphabetical.
package plugins
