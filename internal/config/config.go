// Package config loads the kernel's optional tuning knobs. None of them
// change operation semantics; they only pick which walker variant handles a
// given call.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds kernel tuning knobs.
type Config struct {
	// StrictShapeChecks makes the façade's binary ops reject operands whose
	// shapes differ (unless one is a scalar) instead of broadcasting them.
	// Off by default. The kernel itself does not read it, so Op descriptors
	// built by hand are not checked.
	StrictShapeChecks bool `yaml:"strictShapeChecks"`

	// SmallTensorThreshold is the element count below which pairwise,
	// transform and reduction ops skip the rank-0/1/2 specialized loops and
	// go straight to the general walker, on the theory that the specialization's setup cost is not
	// worth it for a handful of elements.
	SmallTensorThreshold int `yaml:"smallTensorThreshold"`
}

// Default returns the configuration used when no file is loaded.
func Default() Config {
	return Config{
		StrictShapeChecks:    false,
		SmallTensorThreshold: 0,
	}
}

// Load reads a YAML config file, falling back to Default() for any field
// the file does not set.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "config: reading %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "config: parsing %s", path)
	}
	return cfg, nil
}
