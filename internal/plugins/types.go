package plugins

// VersionPin associates a supported version string with the content checksum
// substituted for the {version} placeholder.
type VersionPin struct {
	Version  string
	Checksum string
}

// Plugin is one catalogued dependency definition.
type Plugin struct {
	Name      string
	SourceURL string            // recorded in the lock file
	Versions  []VersionPin      // exact-string matched, declaration order
	Rule      string            // build-rule template with {placeholder}s
	Tags      map[string]string // constant placeholder literals beyond {version}
}

// pin returns the checksum for an exact version string match.
func (p Plugin) pin(version string) (VersionPin, bool) {
	for _, v := range p.Versions {
		if v.Version == version {
			return v, true
		}
	}
	return VersionPin{}, false
}

// RenderedRule is a fully substituted build-configuration fragment.
type RenderedRule struct {
	PluginName string
	Version    string
	Text       string
}

// Registry is an immutable, ordered plugin catalogue. Construct one with
// Default (or New in tests) and pass it explicitly; there is no ambient
// global catalogue.
type Registry struct {
	plugins []Plugin
}

// New builds a registry preserving the given declaration order.
func New(plugins ...Plugin) *Registry {
	return &Registry{plugins: plugins}
}

// Plugins returns the catalogue in declaration order. Callers must not
// mutate the returned slice.
func (r *Registry) Plugins() []Plugin {
	return r.plugins
}

// Lookup returns the plugin with the given name.
func (r *Registry) Lookup(name string) (Plugin, bool) {
	for _, p := range r.plugins {
		if p.Name == name {
			return p, true
		}
	}
	return Plugin{}, false
}
