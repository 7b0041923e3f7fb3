package banbridge

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Bridge wires the punishment service to the analytics host.
//
// It acquires the service handle once during [Bridge.Initialize] and hands it to every component,
// so nothing resolves the service lazily afterwards.
type Bridge struct {
	Config *Config // Config holds the configuration for the bridge.

	service     PunishmentService // service is the punishment service handle.
	lookup      *Lookup           // lookup is the synchronous punishment lookup.
	formatter   *Formatter        // formatter renders punishment issuers.
	extension   *Extension        // extension is the builder style reporter.
	legacy      *LegacyExtension  // legacy is the per-field reporter.
	listener    *Listener         // listener refreshes players on punishment events.
	callEvents  []CallEvent       // callEvents overrides the configured call events.
	initialized bool              // initialized indicates whether the bridge has been initialized.
	started     bool              // started indicates whether the listener has been registered.
	mu          sync.Mutex        // mu guards the lifecycle.
}

// Initialize acquires the punishment service handle and builds the components.
//
// When the service has not published itself yet, [ErrNotReady] is returned and the bridge stays
// uninitialized; the host is expected to call Initialize again later. Calling Initialize on an
// initialized bridge does nothing.
//
// Args:
//   - registry: The registry the punishment service publishes itself in.
//   - names: The host's name resolution service.
//   - caller: The host's refresh notification.
//
// Returns:
//   - error: [ErrNotReady], [ErrDisabled] or a configuration error.
func (b *Bridge) Initialize(registry *Registry, names NameResolver, caller Caller) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}

	b.checkConfig()
	SetupLogging(b.Config)

	if b.Config.Disabled {
		log.Info().Str("Name", PLUGIN_NAME).Msg("Disabled by configuration")
		return ErrDisabled
	}

	callEvents := b.callEvents
	if callEvents == nil {
		var err error
		if callEvents, err = b.Config.ParseCallEvents(); err != nil {
			return err
		}
	}

	if b.service == nil {
		if registry == nil {
			return ErrNotReady
		}

		service, err := registry.Provider(b.Config.Provider)
		if err != nil {
			log.Debug().Str("Name", b.Config.Provider).Err(err).Msg("Service not ready")
			return err
		}
		b.service = service
	}

	b.lookup = NewLookup(b.service.Selector())
	b.formatter = NewFormatter(names, b.Config.UnknownName)
	b.extension = NewExtension(b.lookup, b.formatter, callEvents...)
	b.legacy = NewLegacyExtension(b.lookup, b.formatter, callEvents...)
	b.listener = NewListener(b.service.EventBus(), caller)
	b.initialized = true

	log.Debug().Str("Name", PLUGIN_NAME).Msg("Initialized")

	return nil
}

// checkConfig checks certain configurations and assigns default values if they are left unset.
func (b *Bridge) checkConfig() {
	if b.Config.Provider == "" {
		b.Config.Provider = DEFAULT_PROVIDER
	}
	if len(b.Config.CallEvents) == 0 {
		b.Config.CallEvents = []string{CallPlayerJoin.String(), CallPlayerLeave.String()}
	}
	if b.Config.UnknownName == "" {
		b.Config.UnknownName = DEFAULT_UNKNOWN_NAME
	}
}

// Start registers the event listener. Calling Start again does nothing.
//
// Returns:
//   - *Bridge: The bridge instance for method chaining.
func (b *Bridge) Start() *Bridge {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		panic("the bridge is not initialized")
	}
	if b.started {
		return b
	}

	b.listener.Register()
	b.started = true

	return b
}

// Initialized reports whether the bridge has been initialized.
func (b *Bridge) Initialized() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.initialized
}

// Service returns the punishment service handle, nil before initialization.
func (b *Bridge) Service() PunishmentService {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.service
}

// Lookup returns the punishment lookup, nil before initialization.
func (b *Bridge) Lookup() *Lookup {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.lookup
}

// Extension returns the builder style reporter, nil before initialization.
func (b *Bridge) Extension() *Extension {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.extension
}

// Legacy returns the per-field reporter, nil before initialization.
func (b *Bridge) Legacy() *LegacyExtension {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.legacy
}

// Listener returns the event listener, nil before initialization.
func (b *Bridge) Listener() *Listener {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.listener
}

// New creates a new instance of the [Bridge] with the provided configuration.
//
// Args:
//   - config: The configuration for the bridge, defaults are used when nil.
//   - options: The options applied to the bridge.
//
// Returns:
//   - *Bridge: A new instance of the [Bridge].
func New(config *Config, options ...Option) *Bridge {
	if config == nil {
		config = &Config{}
	}

	b := &Bridge{Config: config}
	for _, option := range options {
		option(b)
	}

	return b
}
