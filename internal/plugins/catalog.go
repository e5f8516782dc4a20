package plugins

// Build-rule templates, keyed by plugin name. Kept apart from the catalogue
// entries so substitution logic and template content stay independently
// testable.
var ruleTemplates = map[string]string{
	"google-test": `http_archive(
  name = "com_google_googletest",
  urls = ["https://github.com/google/googletest/archive/{version}.zip"],
  strip_prefix = "googletest-{version}",
)`,

	// The toolchain stanzas are emitted fully expanded rather than leaning on
	// Starlark-level .format() calls, so the rendered file contains no brace
	// tokens the totality check would trip over.
	"bazel-toolchain": `BAZEL_TOOLCHAIN_TAG = "{tag}"
BAZEL_TOOLCHAIN_SHA = "{sha}"

http_archive(
    name = "com_grail_bazel_toolchain",
    sha256 = BAZEL_TOOLCHAIN_SHA,
    strip_prefix = "bazel-toolchain-{tag}",
    canonical_id = BAZEL_TOOLCHAIN_TAG,
    url = "https://github.com/grailbio/bazel-toolchain/archive/refs/tags/{tag}.tar.gz",
)

load("@com_grail_bazel_toolchain//toolchain:deps.bzl", "bazel_toolchain_dependencies")

bazel_toolchain_dependencies()

load("@com_grail_bazel_toolchain//toolchain:rules.bzl", "llvm_toolchain")

llvm_toolchain(
    name = "llvm_toolchain",
    llvm_version = "15.0.6",
)

load("@llvm_toolchain//:toolchains.bzl", "llvm_register_toolchains")

llvm_register_toolchains()`,
}

// Default returns the built-in catalogue. google-test is declared before
// bazel-toolchain; both rely on the http_archive load emitted in the
// workspace file header, and the declaration order here is reproduced
// verbatim in that file.
func Default() *Registry {
	return New(
		Plugin{
			Name:      "google-test",
			SourceURL: "https://github.com/google/googletest",
			Versions: []VersionPin{
				{Version: "1.13.0", Checksum: "b796f7d44681514f58a683a3a71ff17c94edb0c1"},
				{Version: "1.12.1", Checksum: "58d77fa8070e8cec2dc1ed015d66b454c8d78850"},
			},
			Rule: ruleTemplates["google-test"],
		},
		Plugin{
			Name:      "bazel-toolchain",
			SourceURL: "https://github.com/grailbio/bazel-toolchain",
			Versions: []VersionPin{
				// 0.8.0 is the pin written into fresh manifests; every pin
				// renders the same 0.8.2-tagged toolchain stanzas, so no
				// per-version checksum is substituted.
				{Version: "0.8.0"},
				{Version: "0.8.2"},
				{Version: "1.12.1"},
			},
			Rule: ruleTemplates["bazel-toolchain"],
			Tags: map[string]string{
				"tag": "0.8.2",
				"sha": "0fc3a2b0c9c929920f4bed8f2b446a8274cad41f5ee823fd3faa0d7641f20db0",
			},
		},
	)
}
