// Package chainspec holds the network parameters that some encodings depend
// on, such as the number of validators or cores.
//
// A *ChainSpec is the context value handed to codec.EncodeWithContext and
// codec.DecodeWithContext; descriptors built with codec.Select read it to
// pick their shape.
//
// Specs come from one of the built-in presets or from a single YAML file
// named explicitly by the caller. There is no discovery or environment
// fallback.
package chainspec

import (
	"bytes"
	"fmt"
	"os"

	"github.com/wippyai/jam-codec/errors"
	"gopkg.in/yaml.v3"
)

// ChainSpec is a set of network parameters.
type ChainSpec struct {
	// Name identifies the parameter set.
	Name string `yaml:"name"`

	// ValidatorsCount is the number of validators.
	ValidatorsCount int `yaml:"validators_count"`

	// CoresCount is the number of cores.
	CoresCount int `yaml:"cores_count"`

	// EpochLength is the number of slots in an epoch.
	EpochLength int `yaml:"epoch_length"`

	// ContestLength is the number of slots in which tickets may be submitted.
	ContestLength int `yaml:"contest_length"`

	// TicketsPerValidator is the number of ticket entries per validator.
	TicketsPerValidator int `yaml:"tickets_per_validator"`

	// MaxTicketsPerExtrinsic bounds the tickets carried by one block.
	MaxTicketsPerExtrinsic int `yaml:"max_tickets_per_extrinsic"`

	// RotationPeriod is the number of slots between core assignment rotations.
	RotationPeriod int `yaml:"rotation_period"`
}

// Tiny is the small parameter set used in tests and local networks.
var Tiny = ChainSpec{
	Name:                   "tiny",
	ValidatorsCount:        6,
	CoresCount:             2,
	EpochLength:            12,
	ContestLength:          10,
	TicketsPerValidator:    3,
	MaxTicketsPerExtrinsic: 3,
	RotationPeriod:         4,
}

// Full is the production parameter set.
var Full = ChainSpec{
	Name:                   "full",
	ValidatorsCount:        1023,
	CoresCount:             341,
	EpochLength:            600,
	ContestLength:          500,
	TicketsPerValidator:    2,
	MaxTicketsPerExtrinsic: 16,
	RotationPeriod:         10,
}

var presets = map[string]ChainSpec{
	Tiny.Name: Tiny,
	Full.Name: Full,
}

// Preset returns a copy of the named built-in parameter set.
func Preset(name string) (*ChainSpec, error) {
	spec, ok := presets[name]
	if !ok {
		return nil, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Value(name).
			Detail("unknown preset %q", name).
			Build()
	}
	return &spec, nil
}

// file is the on-disk layout: an optional preset to start from, overridden by
// any parameters set explicitly.
type file struct {
	Preset    string `yaml:"preset"`
	ChainSpec `yaml:",inline"`
}

// Load reads a spec from the YAML file at path. If the file names a preset,
// the preset's values are used for every parameter the file does not set.
func Load(path string) (*ChainSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "read chain spec")
	}
	return Parse(data)
}

// Parse reads a spec from YAML bytes. Unknown keys are rejected.
func Parse(data []byte) (*ChainSpec, error) {
	var head struct {
		Preset string `yaml:"preset"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "parse chain spec")
	}

	var f file
	if head.Preset != "" {
		base, err := Preset(head.Preset)
		if err != nil {
			return nil, err
		}
		f.ChainSpec = *base
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "parse chain spec")
	}

	spec := f.ChainSpec
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate checks that every parameter is usable.
func (c *ChainSpec) Validate() error {
	checks := []struct {
		name  string
		value int
	}{
		{"validators_count", c.ValidatorsCount},
		{"cores_count", c.CoresCount},
		{"epoch_length", c.EpochLength},
		{"contest_length", c.ContestLength},
		{"tickets_per_validator", c.TicketsPerValidator},
		{"max_tickets_per_extrinsic", c.MaxTicketsPerExtrinsic},
		{"rotation_period", c.RotationPeriod},
	}
	for _, check := range checks {
		if check.value <= 0 {
			return errors.New(errors.PhaseConfig, errors.KindInvalidInput).
				Path(check.name).
				Value(check.value).
				Detail("must be positive, got %d", check.value).
				Build()
		}
	}
	if c.ContestLength > c.EpochLength {
		return errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Path("contest_length").
			Detail("contest length %d exceeds epoch length %d", c.ContestLength, c.EpochLength).
			Build()
	}
	return nil
}

// SuperMajority is the number of validators forming a two-thirds majority.
func (c *ChainSpec) SuperMajority() int {
	return c.ValidatorsCount*2/3 + 1
}

// String returns the spec name and its main dimensions.
func (c *ChainSpec) String() string {
	return fmt.Sprintf("%s (validators=%d cores=%d epoch=%d)", c.Name, c.ValidatorsCount, c.CoresCount, c.EpochLength)
}

// Marshal renders the spec as YAML.
func (c *ChainSpec) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
