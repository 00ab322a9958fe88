package config

import (
	"strings"

	"github.com/caarlos0/env/v11"
)

// portEnv carries PORT, which hosting platforms set to the port alone.
type portEnv struct {
	Port string `env:"PORT"`
}

// parseEnv overlays Config fields whose environment variables are set.
// PORT is honored as ":<PORT>" unless HTTP_ADDR is also set. Malformed
// values (e.g. a bad duration) panic, like malformed JSON or flags.
func parseEnv(config *Config) {
	var p portEnv
	if err := env.Parse(&p); err != nil {
		panic(err)
	}
	if port := strings.TrimSpace(p.Port); port != "" {
		config.EndpointAddrHTTP = ":" + port
	}

	if err := env.Parse(config); err != nil {
		panic(err)
	}
}
