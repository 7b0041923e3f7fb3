package banbridge

// Option represents a configurable parameter for the Bridge.
type Option func(*Bridge)

// WithDebug enables debug mode for the bridge.
//
// Returns:
//   - Option: A function that enables debug logging for the Bridge.
func WithDebug() Option {
	return func(b *Bridge) {
		b.Config.Debug = true
	}
}

// WithProvider sets the registry name the punishment service is published under.
//
// Args:
//   - name: The registry name of the punishment service.
//
// Returns:
//   - Option: A function that sets the provider name of the Bridge.
func WithProvider(name string) Option {
	return func(b *Bridge) {
		b.Config.Provider = name
	}
}

// WithCallEvents sets the host events the extensions are called on, overriding the configuration.
//
// Args:
//   - events: The host events.
//
// Returns:
//   - Option: A function that sets the call events of the Bridge.
func WithCallEvents(events ...CallEvent) Option {
	return func(b *Bridge) {
		b.callEvents = events
	}
}

// WithService hands the bridge a service handle the host already holds, bypassing the registry.
//
// Args:
//   - service: The punishment service handle.
//
// Returns:
//   - Option: A function that sets the service handle of the Bridge.
func WithService(service PunishmentService) Option {
	return func(b *Bridge) {
		b.service = service
	}
}
