package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sarchlab/esobox/core"
)

// Names of the built-in languages.
const (
	Brainfuck        = "brainfuck"
	BrainfuckClassic = "brainfuck-classic"
)

// ErrUnknownLanguage is returned by Lookup for a name with no profile.
var ErrUnknownLanguage = errors.New("unknown language")

// Registry maps language names and aliases to profiles.
type Registry struct {
	profiles map[string]Profile
	aliases  map[string]string
}

// NewRegistry returns a registry holding the built-in languages.
func NewRegistry() *Registry {
	r := &Registry{
		profiles: make(map[string]Profile),
		aliases:  make(map[string]string),
	}

	r.Register(Profile{Name: Brainfuck, Tape: core.RingTape})
	r.Register(Profile{Name: BrainfuckClassic, Tape: core.ClassicTape})
	r.Alias("bf", Brainfuck)

	return r
}

// Register adds or replaces a profile.
func (r *Registry) Register(p Profile) {
	r.profiles[p.Name] = p
	delete(r.aliases, p.Name)
}

// Alias makes name resolve to the profile called target.
func (r *Registry) Alias(name, target string) {
	r.aliases[name] = target
}

// Merge registers every profile in ps, replacing profiles of the same name.
func (r *Registry) Merge(ps []Profile) {
	for _, p := range ps {
		r.Register(p)
	}
}

// Lookup returns the profile for a language name or alias.
func (r *Registry) Lookup(name string) (Profile, error) {
	if target, ok := r.aliases[name]; ok {
		name = target
	}

	p, ok := r.profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %s", ErrUnknownLanguage, name)
	}

	return p, nil
}

// Names lists the registered languages and aliases in order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.profiles)+len(r.aliases))
	for name := range r.profiles {
		names = append(names, name)
	}
	for name := range r.aliases {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
