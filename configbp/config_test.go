package configbp_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reddit/twister.go/configbp"
	"github.com/reddit/twister.go/log"
)

func init() {
	log.InitLogger(log.DebugLevel)
}

type testConfig struct {
	Profile string               `yaml:"profile"`
	Seed    *configbp.Int64String `yaml:"seed"`
	Log     log.Config           `yaml:"log"`
}

func seedPtr(i int64) *configbp.Int64String {
	s := configbp.Int64String(i)
	return &s
}

func TestParseStrictFile(t *testing.T) {
	t.Setenv("TWISTER_PROFILE", "fastest-int32")
	t.Setenv("TWISTER_SEED", "5489")

	tests := []struct {
		desc    string
		content string
		want    testConfig
	}{
		{
			desc: "basic_env",
			content: `
profile: $TWISTER_PROFILE
seed: ${TWISTER_SEED}
log:
  level: debug
`,
			want: testConfig{
				Profile: "fastest-int32",
				Seed:    seedPtr(5489),
				Log: log.Config{
					Level: log.DebugLevel,
				},
			},
		},
		{
			desc: "large_seed",
			content: `
profile: compatible
seed: "-8608480567731124087"
`,
			want: testConfig{
				Profile: "compatible",
				Seed:    seedPtr(-8608480567731124087),
			},
		},
		{
			desc:    "no_seed",
			content: "profile: well-balanced\n",
			want: testConfig{
				Profile: "well-balanced",
			},
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			dir := t.TempDir() // automatically cleaned up
			filename := filepath.Join(dir, "test.yaml")
			if err := os.WriteFile(filename, []byte(test.content), 0600); err != nil {
				t.Fatalf("SETUP: failed to write file: %s", err)
			}
			var got testConfig
			if err := configbp.ParseStrictFile(filename, &got); err != nil {
				t.Fatalf("ParseStrictFile(%q): %s", filename, err)
			}
			if diff := cmp.Diff(got, test.want); diff != "" {
				t.Errorf("Parsed config incorrect: (-got +want)\n%s", diff)
			}
		})
	}
}

func TestParseStrictYAMLUnknownKey(t *testing.T) {
	var cfg testConfig
	err := configbp.ParseStrictYAML(strings.NewReader("profile: compatible\nsalt: 1\n"), &cfg)
	if err == nil {
		t.Error("Expected error for unknown key, got nil")
	}
}

func TestParseStrictFileExtension(t *testing.T) {
	var cfg testConfig
	if err := configbp.ParseStrictFile("config.json", &cfg); err == nil {
		t.Error("Expected error for unsupported extension, got nil")
	}
}
