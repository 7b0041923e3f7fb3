package banbridge

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config represents a configuration object.
//
// Every field can be overridden by an environment variable prefixed with BANBRIDGE_,
// e.g. BANBRIDGE_DEBUG=true or BANBRIDGE_CALL_EVENTS=player_join,player_leave.
type Config struct {
	Disabled    bool     `koanf:"disabled" env:"DISABLED"`                        // Disables the bridge entirely.
	Debug       bool     `koanf:"debug" env:"DEBUG"`                              // Enables debug logging.
	Pretty      bool     `koanf:"pretty" env:"PRETTY"`                            // Enables human readable log output.
	Provider    string   `koanf:"provider" env:"PROVIDER"`                        // Registry name of the punishment service.
	CallEvents  []string `koanf:"call_events" env:"CALL_EVENTS" envSeparator:","` // Host events the extension is called on.
	UnknownName string   `koanf:"unknown_name" env:"UNKNOWN_NAME"`                // Display name of players without a known name.
}

// ParseCallEvents returns the configured call events.
//
// Returns:
//   - []CallEvent: The call events, in configuration order.
//   - error: An error wrapping [ErrUnknownCallEvent] for an unknown name.
func (c *Config) ParseCallEvents() ([]CallEvent, error) {
	events := make([]CallEvent, 0, len(c.CallEvents))
	for _, name := range c.CallEvents {
		event, err := ParseCallEvent(name)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}

// LoadConfig loads the configuration from the specified TOML file and the environment.
//
// An empty filename skips the file and only reads the environment.
//
// Args:
//   - filename: The name of the configuration file.
//
// Returns:
//   - *Config: A pointer to the Config struct.
//   - error: An error if the loading fails.
func LoadConfig(filename string) (*Config, error) {
	k := koanf.New(".")

	if filename != "" {
		if err := k.Load(file.Provider(filename), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := k.Unmarshal("", &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config data: %w", err)
	}

	if err := env.ParseWithOptions(&config, env.Options{Prefix: ENV_PREFIX}); err != nil {
		return nil, fmt.Errorf("failed to parse config environment: %w", err)
	}

	return &config, nil
}
