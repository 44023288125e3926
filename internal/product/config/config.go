// Package config holds the configuration of the product service.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/abgdnv/productstore/pkg/config"
	"github.com/abgdnv/productstore/pkg/config/configloader"
)

var _ configloader.Validator = (*Config)(nil)

type Config struct {
	HTTPServer config.HTTPConfig       `koanf:"server"`
	GRPC       config.GrpcServerConfig `koanf:"grpc"`
	Log        config.LogConfig        `koanf:"log"`
	PProf      config.PProfConfig      `koanf:"pprof"`
	Shutdown   config.ShutdownConfig   `koanf:"shutdown"`
	Telemetry  config.TelemetryConfig  `koanf:"telemetry"`
	Store      StoreConfig             `koanf:"store"`
}

// StoreConfig controls the in-memory product store.
type StoreConfig struct {
	// Seed pre-populates the store with the sample products.
	Seed bool `koanf:"seed"`
	// StampCreated makes the service set Created to the current time on insert.
	StampCreated bool `koanf:"stampcreated"`
}

// Defaults returns the values used when neither config.yaml nor the environment sets a key.
func Defaults() map[string]any {
	return map[string]any{
		"server.port":               8080,
		"server.maxHeaderBytes":     1 << 20,
		"server.timeout.read":       "5s",
		"server.timeout.write":      "10s",
		"server.timeout.idle":       "120s",
		"server.timeout.readHeader": "2s",
		"grpc.port":                 "50051",
		"grpc.reflection":           false,
		"log.level":                 "info",
		"pprof.enabled":             false,
		"pprof.addr":                "localhost:6060",
		"shutdown.timeout":          "10s",
		"telemetry.enabled":         false,
		"store.seed":                true,
		"store.stampcreated":        false,
	}
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString(c.HTTPServer.String())
	b.WriteString(c.GRPC.String())
	b.WriteString(c.Log.String())
	b.WriteString(c.PProf.String())
	b.WriteString(c.Shutdown.String())
	b.WriteString(c.Telemetry.String())
	b.WriteString("\n--- Store ---\n")
	b.WriteString(fmt.Sprintf("  store.seed: %t\n", c.Store.Seed))
	b.WriteString(fmt.Sprintf("  store.stampcreated: %t\n", c.Store.StampCreated))
	return b.String()
}

// Validate checks if the configuration values are valid.
func (c *Config) Validate() error {
	return errors.Join(
		c.HTTPServer.Validate(),
		c.GRPC.Validate(),
		c.Log.Validate(),
		c.PProf.Validate(),
		c.Shutdown.Validate(),
		c.Telemetry.Validate(),
	)
}

// UTCNow is the clock used for Created stamping.
func UTCNow() time.Time {
	return time.Now().UTC()
}
