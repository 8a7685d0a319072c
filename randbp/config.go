package randbp

import (
	"github.com/reddit/twister.go/configbp"
	"github.com/reddit/twister.go/errorsbp"
)

// Config is the configuration of a generator.
//
// It can be parsed from YAML:
//
//	profile: fastest-int32
//	seed: "5489"
//
// When seed is omitted the generator is seeded from crypto/rand.
type Config struct {
	// Profile defaults to WellBalanced when omitted.
	Profile Profile `yaml:"profile"`

	// Seed must be quoted, see configbp.Int64String.
	Seed *configbp.Int64String `yaml:"seed"`
}

// Validate returns every problem found in cfg, combined into one error.
func (cfg Config) Validate() error {
	var batch errorsbp.Batch
	batch.AddPrefix("profile", cfg.Profile.Validate())
	return batch.Compile()
}
