package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/sarchlab/esobox/core"
)

// File is a profile file: extra languages and aliases on top of the
// built-ins.
//
//	languages:
//	  tiny:
//	    tape_length: 16
//	    tape_policy: bounds_checked
//	aliases:
//	  t: tiny
type File struct {
	Path     string
	Profiles []Profile
	Aliases  map[string]string
}

type fileDisk struct {
	Languages map[string]profileDisk `yaml:"languages" toml:"languages"`
	Aliases   map[string]string      `yaml:"aliases" toml:"aliases"`
}

type profileDisk struct {
	TapeLength int    `yaml:"tape_length" toml:"tape_length"`
	TapePolicy string `yaml:"tape_policy" toml:"tape_policy"`
}

// LoadFile reads a YAML (.yaml, .yml) or TOML (.toml) profile file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var raw fileDisk
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = decodeYAML(data, &raw)
	case ".toml":
		err = decodeTOML(data, &raw)
	default:
		return nil, fmt.Errorf("config: %s: unsupported file type %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	f, err := raw.toFile()
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	f.Path = path

	return f, nil
}

func decodeYAML(data []byte, raw *fileDisk) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	err := decoder.Decode(raw)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func decodeTOML(data []byte, raw *fileDisk) error {
	md, err := toml.Decode(string(data), raw)
	if err != nil {
		return err
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown field %s", undecoded[0])
	}
	return nil
}

func (raw fileDisk) toFile() (*File, error) {
	f := &File{Aliases: make(map[string]string)}

	names := make([]string, 0, len(raw.Languages))
	for name := range raw.Languages {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		p, err := raw.Languages[name].toProfile(name)
		if err != nil {
			return nil, err
		}
		f.Profiles = append(f.Profiles, p)
	}

	for alias, target := range raw.Aliases {
		f.Aliases[alias] = target
	}

	return f, nil
}

func (d profileDisk) toProfile(name string) (Profile, error) {
	b := NewProfileBuilder()

	if d.TapeLength != 0 {
		b = b.WithLength(d.TapeLength)
	}

	if d.TapePolicy != "" {
		policy, err := core.ParsePolicy(d.TapePolicy)
		if err != nil {
			return Profile{}, fmt.Errorf("profile %s: %w", name, err)
		}
		b = b.WithPolicy(policy)
	}

	return b.Build(name)
}

// Apply registers the profiles and aliases of f. Aliases must name a
// profile known after the profiles are registered.
func (r *Registry) Apply(f *File) error {
	r.Merge(f.Profiles)

	for alias, target := range f.Aliases {
		p, err := r.Lookup(target)
		if err != nil {
			return fmt.Errorf("config: alias %s: %w", alias, err)
		}
		r.Alias(alias, p.Name)
	}

	return nil
}
