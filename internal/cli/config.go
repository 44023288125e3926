package cli

import (
	"errors"
	"strings"

	"github.com/abgdnv/productstore/pkg/config"
	"github.com/abgdnv/productstore/pkg/config/configloader"
)

var _ configloader.Validator = (*Config)(nil)

type Config struct {
	Client     config.GrpcClientConfig `koanf:"client"`
	Resilience config.ResilienceConfig `koanf:"resilience"`
	Log        config.LogConfig        `koanf:"log"`
}

// Defaults returns values for a locally running product service.
func Defaults() map[string]any {
	return map[string]any{
		"client.addr":                                   "localhost:50051",
		"client.timeout":                                "3s",
		"resilience.retry.maxattempts":                  3,
		"resilience.retry.initialbackoff":               "100ms",
		"resilience.circuitbreaker.consecutivefailures": 5,
		"resilience.circuitbreaker.errorratepercent":    60,
		"resilience.circuitbreaker.opentimeout":         "5s",
		"log.level":                                     "warn",
	}
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString(c.Client.String())
	b.WriteString(c.Resilience.String())
	b.WriteString(c.Log.String())
	return b.String()
}

func (c *Config) Validate() error {
	return errors.Join(
		c.Client.Validate(),
		c.Resilience.Validate(),
		c.Log.Validate(),
	)
}
