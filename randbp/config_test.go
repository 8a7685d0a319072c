package randbp_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/reddit/twister.go/configbp"
	"github.com/reddit/twister.go/randbp"
)

func TestConfigYAML(t *testing.T) {
	const input = `
profile: compatible
seed: "5489"
`
	var cfg randbp.Config
	if err := configbp.ParseStrictYAML(strings.NewReader(input), &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Profile != randbp.Compatible {
		t.Errorf("Profile got %v, want %v", cfg.Profile, randbp.Compatible)
	}
	if cfg.Seed == nil || *cfg.Seed != 5489 {
		t.Fatalf("Seed got %v, want 5489", cfg.Seed)
	}

	r, err := randbp.NewFromConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := r.Uint32(), referenceOutputs[0]; got != want {
		t.Errorf("First draw got %d, want %d", got, want)
	}
}

func TestConfigDefaults(t *testing.T) {
	var cfg randbp.Config
	if err := configbp.ParseStrictYAML(strings.NewReader("{}"), &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != nil {
		t.Errorf("Seed got %v, want nil", *cfg.Seed)
	}
	r, err := randbp.NewFromConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got := r.Profile(); got != randbp.WellBalanced {
		t.Errorf("Profile got %v, want %v", got, randbp.WellBalanced)
	}
}

func TestConfigUnknownProfile(t *testing.T) {
	var cfg randbp.Config
	err := configbp.ParseStrictYAML(strings.NewReader("profile: fastest-quantum"), &cfg)
	if !errors.Is(err, randbp.ErrInvalidArgument) {
		t.Errorf("Got error %v, want %v", err, randbp.ErrInvalidArgument)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := randbp.Config{Profile: randbp.Profile(9)}
	err := cfg.Validate()
	if !errors.Is(err, randbp.ErrInvalidArgument) {
		t.Fatalf("Validate got error %v, want %v", err, randbp.ErrInvalidArgument)
	}
	if !strings.HasPrefix(err.Error(), "profile: ") {
		t.Errorf("Expected error to be prefixed with the field name, got %q", err.Error())
	}

	if _, err := randbp.NewFromConfig(cfg); !errors.Is(err, randbp.ErrInvalidArgument) {
		t.Errorf("NewFromConfig got error %v, want %v", err, randbp.ErrInvalidArgument)
	}
}
