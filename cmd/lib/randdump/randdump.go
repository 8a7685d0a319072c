package randdump

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/reddit/twister.go/configbp"
	"github.com/reddit/twister.go/errorsbp"
	"github.com/reddit/twister.go/log"
	"github.com/reddit/twister.go/randbp"
)

const (
	defaultCount  = 10
	defaultFormat = "int"
)

// Run runs randdump.
//
// It returns 0 to indicate success,
// and non-zero to indicate failure.
//
// Your main function usually should look like:
//
//	func main() {
//	  os.Exit(randdump.Run())
//	}
func Run() int {
	if err := RunArgs(os.Args, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// formatter writes count values drawn from r to w.
type formatter func(w io.Writer, r *randbp.Rand, count int) error

func perLine(draw func(r *randbp.Rand) interface{}) formatter {
	return func(w io.Writer, r *randbp.Rand, count int) error {
		for i := 0; i < count; i++ {
			if _, err := fmt.Fprintln(w, draw(r)); err != nil {
				return err
			}
		}
		return nil
	}
}

func dumpHex(w io.Writer, r *randbp.Rand, count int) error {
	buf := make([]byte, count)
	r.Read(buf)
	_, err := fmt.Fprintln(w, hex.EncodeToString(buf))
	return err
}

// Actual value type: formatter
var formats = map[string]interface{}{
	"int": perLine(func(r *randbp.Rand) interface{} {
		return r.Int()
	}),
	"uint32": perLine(func(r *randbp.Rand) interface{} {
		return r.Uint32()
	}),
	"uint64": perLine(func(r *randbp.Rand) interface{} {
		return r.Uint64()
	}),
	"float64": perLine(func(r *randbp.Rand) interface{} {
		return strconv.FormatFloat(r.Float64(), 'g', -1, 64)
	}),
	"hex": formatter(dumpHex),
}

// Actual value type: randbp.Profile
func profileChoices() map[string]interface{} {
	choices := make(map[string]interface{})
	for _, p := range randbp.Profiles() {
		choices[p.String()] = p
	}
	return choices
}

// Actual value type: log.Level
var logLevels = map[string]interface{}{
	string(log.NopLevel):   log.NopLevel,
	string(log.DebugLevel): log.DebugLevel,
	string(log.InfoLevel):  log.InfoLevel,
	string(log.WarnLevel):  log.WarnLevel,
	string(log.ErrorLevel): log.ErrorLevel,
}

// Config is the YAML file read with -config.
//
// Example:
//
//	profile: compatible
//	seed: "5489"
//	count: 3
//	format: uint32
//	log:
//	  level: debug
//
// Flags given explicitly on the command line override the file.
type Config struct {
	Generator randbp.Config `yaml:",inline"`

	// Number of values to print, or number of bytes for the hex format.
	Count int `yaml:"count"`

	// One of int, uint32, uint64, float64, hex.
	Format string `yaml:"format"`

	Log log.Config `yaml:"log"`
}

func defaultConfig() Config {
	return Config{
		Count:  defaultCount,
		Format: defaultFormat,
		Log: log.Config{
			Level: log.WarnLevel,
		},
	}
}

// Validate returns every problem found in cfg, combined into one error.
func (cfg Config) Validate() error {
	var batch errorsbp.Batch
	batch.Add(cfg.Generator.Validate())
	if cfg.Count < 0 {
		batch.AddPrefix("count", fmt.Errorf("must not be negative, got %d", cfg.Count))
	}
	if _, ok := formats[cfg.Format]; !ok {
		batch.AddPrefix("format", fmt.Errorf(
			"%q is not one of the choices of %s",
			cfg.Format,
			oneof{choices: formats}.choicesString(),
		))
	}
	if _, ok := logLevels[string(cfg.Log.Level)]; !ok && cfg.Log.Level != "" {
		batch.AddPrefix("log.level", fmt.Errorf(
			"%q is not one of the choices of %s",
			cfg.Log.Level,
			oneof{choices: logLevels}.choicesString(),
		))
	}
	return batch.Compile()
}

// RunArgs is the more customizable/testable version of Run.
//
// In production code it expects you to pass in os.Args and os.Stdout.
func RunArgs(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	configPath := fs.String(
		"config",
		"",
		"Path to a YAML config file. Flags given explicitly override it.",
	)
	profile := oneof{
		choices: profileChoices(),
		value:   randbp.WellBalanced.String(),
	}
	fs.Var(
		&profile,
		"profile",
		fmt.Sprintf("The generator profile, one of %s.", profile.choicesString()),
	)
	seed := fs.String(
		"seed",
		"",
		"The int64 seed. When omitted the generator is seeded from crypto/rand.",
	)
	count := fs.Int(
		"count",
		defaultCount,
		"The number of values to print, or the number of bytes for the hex format.",
	)
	format := oneof{
		choices: formats,
		value:   defaultFormat,
	}
	fs.Var(
		&format,
		"format",
		fmt.Sprintf("The output format, one of %s.", format.choicesString()),
	)
	level := oneof{
		choices: logLevels,
		value:   string(log.WarnLevel),
	}
	fs.Var(
		&level,
		"log-level",
		fmt.Sprintf("The log level, one of %s.", level.choicesString()),
	)
	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("failed to parse args: %w", err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected positional args: %q", fs.Args())
	}

	cfg := defaultConfig()
	if *configPath != "" {
		if err := configbp.ParseStrictFile(*configPath, &cfg); err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "profile":
			cfg.Generator.Profile = profile.Get().(randbp.Profile)
		case "seed":
			s, err := strconv.ParseInt(*seed, 10, 64)
			if err != nil {
				flagErr = fmt.Errorf("invalid -seed %q: %w", *seed, err)
				return
			}
			v := configbp.Int64String(s)
			cfg.Generator.Seed = &v
		case "count":
			cfg.Count = *count
		case "format":
			cfg.Format = format.String()
		case "log-level":
			cfg.Log.Level = level.Get().(log.Level)
		}
	})
	if flagErr != nil {
		return flagErr
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	log.InitFromConfig(cfg.Log)
	defer log.Sync()

	r, err := randbp.NewFromConfig(cfg.Generator)
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}
	log.Debugw(
		"Dumping generator output",
		"profile", cfg.Generator.Profile,
		"count", cfg.Count,
		"format", cfg.Format,
	)

	w := bufio.NewWriter(stdout)
	if err := formats[cfg.Format].(formatter)(w, r, cfg.Count); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return w.Flush()
}
