package configloader

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Validator interface {
	Validate() error
}

type options struct {
	defaults   map[string]any
	configFile string
	envFile    string
}

// Option customizes Load.
type Option func(*options)

// WithDefaults sets values used when no other source provides them.
// Keys are dot-delimited koanf paths, e.g. "client.timeout".
func WithDefaults(defaults map[string]any) Option {
	return func(o *options) {
		o.defaults = defaults
	}
}

// WithConfigFile overrides the yaml file name (config.yaml by default).
func WithConfigFile(name string) Option {
	return func(o *options) {
		o.configFile = name
	}
}

// WithEnvFile overrides the dotenv file name (.env by default).
func WithEnvFile(name string) Option {
	return func(o *options) {
		o.envFile = name
	}
}

// Load builds T from defaults, the yaml config file, the .env file and <SERVICE>_* environment variables,
// each source overriding the previous one. The result is checked against its `validate` struct tags and
// then by its Validate method.
func Load[T Validator](serviceName string, opts ...Option) (T, error) {
	var cfg T
	o := options{
		configFile: "config.yaml",
		envFile:    ".env",
	}
	for _, opt := range opts {
		opt(&o)
	}
	// Create a new Koanf instance
	k := koanf.New(".")

	// envPrefix is set to <SERVICE_NAME>_ to match environment variables.
	envPrefix := fmt.Sprintf("%s_", strings.ToUpper(serviceName))

	// 0. Defaults, the lowest priority
	if len(o.defaults) > 0 {
		if err := k.Load(confmap.Provider(o.defaults, "."), nil); err != nil {
			return cfg, fmt.Errorf("error loading default config: %w", err)
		}
	}

	// 1. Load configuration from yaml file
	if err := k.Load(file.Provider(o.configFile), yaml.Parser()); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("WARN: error loading YAML config file '%s': %v", o.configFile, err)
		}
	}

	// 2. Load environment variables from .env file
	envTransformer := func(key string) string {
		key = strings.ToLower(key)
		key = strings.TrimPrefix(key, strings.ToLower(envPrefix))
		return strings.ReplaceAll(key, "_", ".")
	}
	if envFileMap, err := godotenv.Read(o.envFile); err == nil {
		envMap := make(map[string]any)
		for key, value := range envFileMap {
			envMap[envTransformer(key)] = value
		}
		// Load the envMap into Koanf
		if err := k.Load(confmap.Provider(envMap, "."), nil); err != nil {
			log.Printf("WARN: error loading .env config: %v", err)
		}
	} else if !os.IsNotExist(err) {
		log.Printf("WARN: error reading .env file: %v", err)
	}

	// 3. Load environment variables from the system, the highest priority
	if err := k.Load(env.Provider(envPrefix, ".", envTransformer), nil); err != nil {
		log.Printf("WARN: error loading system env vars: %v", err)
	}

	// 4. Unmarshal the configuration into the Config struct
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// 5. Validate struct tags, then the config's own rules
	if err := validator.New().Struct(cfg); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}
