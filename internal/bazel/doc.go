// Package bazel spawns the external Bazel launcher for build, run, and test
// invocations. The child's stdout stays connected to the parent; its
// diagnostic stream is forwarded line by line while the child runs, with
// recognized informational lines restyled. After the child exits, whatever
// the outcome, the transient output-symlink directory is removed.
package bazel
