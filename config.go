package sexpr

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/xiam/sexpr-calc/parser"
)

// TokenizerConfig holds the tokenizer settings.
type TokenizerConfig struct {
	// Compat selects the historical tokenizer, see lexer.Compat.
	Compat bool `yaml:"compat"`
}

// ParserConfig holds the parser settings.
type ParserConfig struct {
	// MaxDepth limits expression nesting, 0 disables the limit.
	MaxDepth int `yaml:"max_depth"`
}

// EvalConfig holds the settings of batch evaluation.
type EvalConfig struct {
	// Workers is the number of concurrent evaluations, 0 means one per CPU.
	Workers int `yaml:"workers"`
}

// LogConfig holds the logging settings.
type LogConfig struct {
	Verbose bool `yaml:"verbose"`
}

// Config is the YAML configuration of the pipeline.
//
//	tokenizer:
//	  compat: false
//	parser:
//	  max_depth: 512
//	eval:
//	  workers: 4
//	log:
//	  verbose: true
type Config struct {
	Tokenizer TokenizerConfig `yaml:"tokenizer"`
	Parser    ParserConfig    `yaml:"parser"`
	Eval      EvalConfig      `yaml:"eval"`
	Log       LogConfig       `yaml:"log"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Parser: ParserConfig{
			MaxDepth: parser.DefaultMaxDepth,
		},
	}
}

// ParseConfig reads a YAML document. Missing keys keep their default
// values.
func ParseConfig(in []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(in, cfg); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig reads the YAML configuration file at path.
func LoadConfig(path string) (*Config, error) {
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %q", path)
	}
	cfg, err := ParseConfig(buf)
	if err != nil {
		return nil, errors.Wrapf(err, "loading config %q", path)
	}
	return cfg, nil
}

// Validate checks the values of the configuration.
func (cfg *Config) Validate() error {
	if cfg.Parser.MaxDepth < 0 {
		return errors.Errorf("parser.max_depth can't be negative: %d", cfg.Parser.MaxDepth)
	}
	if cfg.Eval.Workers < 0 {
		return errors.Errorf("eval.workers can't be negative: %d", cfg.Eval.Workers)
	}
	return nil
}

// Options converts the configuration into context options.
func (cfg *Config) Options() []ContextOption {
	opts := []ContextOption{
		WithMaxDepth(cfg.Parser.MaxDepth),
	}
	if cfg.Tokenizer.Compat {
		opts = append(opts, WithCompatTokenizer())
	}
	return opts
}
