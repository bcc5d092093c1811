// Package config provides the language profiles that select a tape for the
// interpreter.
package config

import (
	"fmt"

	"github.com/sarchlab/esobox/core"
)

// Profile names a tape configuration that a language runs on.
type Profile struct {
	Name string
	Tape core.Tape
}

func (p Profile) String() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.Tape)
}

// ProfileBuilder can build profiles.
type ProfileBuilder struct {
	length int
	policy core.Policy
}

// NewProfileBuilder returns a builder that starts from the ring tape.
func NewProfileBuilder() ProfileBuilder {
	return ProfileBuilder{
		length: core.RingTape.Length,
		policy: core.RingTape.Policy,
	}
}

// WithLength sets the number of cells on the tape.
func (b ProfileBuilder) WithLength(length int) ProfileBuilder {
	b.length = length
	return b
}

// WithPolicy sets the tape addressing policy.
func (b ProfileBuilder) WithPolicy(policy core.Policy) ProfileBuilder {
	b.policy = policy
	return b
}

// Build creates a profile.
func (b ProfileBuilder) Build(name string) (Profile, error) {
	p := Profile{
		Name: name,
		Tape: core.Tape{Length: b.length, Policy: b.policy},
	}

	if name == "" {
		return Profile{}, fmt.Errorf("profile has no name")
	}
	if err := p.Tape.Validate(); err != nil {
		return Profile{}, fmt.Errorf("profile %s: %w", name, err)
	}

	return p, nil
}
