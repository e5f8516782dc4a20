package plugins

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Lookup failures are user errors; an unresolved placeholder is a bug in
// the catalogue itself and can only be fixed by a new release.
var (
	ErrUnknownDependency     = errors.New("unknown dependency")
	ErrUnsupportedVersion    = errors.New("unsupported dependency version")
	ErrUnresolvedPlaceholder = errors.New("unresolved placeholder in build rule")
)

var placeholderPattern = regexp.MustCompile(`\{[a-z_]+\}`)

// Resolve renders the build rule for a dependency pinned to an exact
// version string. No range matching is performed: "1.13.0" matches only
// "1.13.0".
func (r *Registry) Resolve(name, version string) (RenderedRule, error) {
	p, ok := r.Lookup(name)
	if !ok {
		return RenderedRule{}, fmt.Errorf("%w: %s", ErrUnknownDependency, name)
	}

	pin, ok := p.pin(version)
	if !ok {
		return RenderedRule{}, fmt.Errorf("%w: %s %s", ErrUnsupportedVersion, name, version)
	}

	text := strings.ReplaceAll(p.Rule, "{version}", pin.Checksum)
	for tag, literal := range p.Tags {
		text = strings.ReplaceAll(text, "{"+tag+"}", literal)
	}

	if leftover := placeholderPattern.FindString(text); leftover != "" {
		return RenderedRule{}, fmt.Errorf("%w: %s in plugin %s", ErrUnresolvedPlaceholder, leftover, name)
	}

	return RenderedRule{PluginName: p.Name, Version: version, Text: text}, nil
}

// RenderAll renders the rule for every dependency pin present in deps, in
// registry declaration order regardless of map iteration or caller order.
// Any dependency name absent from the catalogue fails the whole render,
// since the workspace file could not be completed.
func (r *Registry) RenderAll(deps map[string]string) ([]RenderedRule, error) {
	for name := range deps {
		if _, ok := r.Lookup(name); !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownDependency, name)
		}
	}

	rules := make([]RenderedRule, 0, len(deps))
	for _, p := range r.plugins {
		version, ok := deps[p.Name]
		if !ok {
			continue
		}
		rule, err := r.Resolve(p.Name, version)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}
