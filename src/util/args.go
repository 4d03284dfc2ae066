package util

import (
	"fmt"
	"os"

	"dtostr/src/xtoa"

	"github.com/iver-wharf/wharf-core/v2/pkg/config"
	"gopkg.in/yaml.v3"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Options holds all configurable settings for dtostr.
//
// The options are read in the following order, latter sources overriding
// former ones:
//
// 1. Defaults: DefaultOptions
//
// 2. File: ~/.config/dtostr/dtostr.yml
//
// 3. File: ./.dtostr.yml
//
// 4. File from environment variable: DTOSTR_CONFIG
//
// 5. Environment variables, prefixed with DTOSTR, such as DTOSTR_PRECISION
//
// Command line flags are applied on top by the commands themselves.
type Options struct {
	Precision  int    `yaml:"precision"`  // Number of fraction digits written by decimal formatting.
	Threads    int    `yaml:"threads"`    // Number of workers formatting batch input in parallel.
	BufferSize int    `yaml:"bufferSize"` // Size of the output buffer handed to every formatting call.
	Src        string `yaml:"src"`        // Path to batch input file. Stdin is read if empty.
	Out        string `yaml:"out"`        // Path to output file. Stdout is written if empty.
}

// ---------------------
// ----- Constants -----
// ---------------------

const maxThreads = 64       // Maximum workers allowed executing in parallel.
const maxBufferSize = 4096  // Upper bound for Options.BufferSize.
const AppVersion = "v1.0.0" // Reported by --version.

// DefaultOptions is the hard-coded default values for dtostr's options.
var DefaultOptions = Options{
	Precision:  4,
	Threads:    1,
	BufferSize: xtoa.DecimalBufferSize,
}

// ---------------------
// ----- functions -----
// ---------------------

// LoadOptions looks for, parses and validates the config files and
// environment variables and returns the merged Options.
func LoadOptions() (Options, error) {
	b := config.NewBuilder(DefaultOptions)
	b.AddConfigYAMLFile("~/.config/dtostr/dtostr.yml")
	b.AddConfigYAMLFile(".dtostr.yml")
	if cfgFile, ok := os.LookupEnv("DTOSTR_CONFIG"); ok {
		b.AddConfigYAMLFile(cfgFile)
	}
	b.AddEnvironmentVariables("DTOSTR")

	var opt Options
	if err := b.Unmarshal(&opt); err != nil {
		return Options{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := opt.Validate(); err != nil {
		return Options{}, err
	}
	return opt, nil
}

// Validate returns an error if any option is out of its allowed range.
func (o Options) Validate() error {
	if o.Precision < 0 || o.Precision > xtoa.MaxPrecision {
		return fmt.Errorf("precision must be integer in range [0, %d], got: %d", xtoa.MaxPrecision, o.Precision)
	}
	if o.Threads < 1 || o.Threads > maxThreads {
		return fmt.Errorf("thread count must be integer in range [1, %d], got: %d", maxThreads, o.Threads)
	}
	if o.BufferSize < 1 || o.BufferSize > maxBufferSize {
		return fmt.Errorf("buffer size must be integer in range [1, %d], got: %d", maxBufferSize, o.BufferSize)
	}
	return nil
}

// YAML returns the options marshalled as YAML.
func (o Options) YAML() (string, error) {
	data, err := yaml.Marshal(&o)
	if err != nil {
		return "", fmt.Errorf("marshal options: %w", err)
	}
	return string(data), nil
}
