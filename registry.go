package banbridge

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
)

// Registry is the process-wide directory through which the punishment service publishes its handle.
type Registry struct {
	providers SyncMap[string, PunishmentService]
}

// Register publishes a service handle under the given name, replacing any previous one.
func (r *Registry) Register(name string, service PunishmentService) {
	r.providers.Set(name, service)

	log.Debug().Str("Name", name).Msg("Provider registered")
}

// Unregister removes the service handle published under the given name.
func (r *Registry) Unregister(name string) {
	r.providers.Del(name)

	log.Debug().Str("Name", name).Msg("Provider unregistered")
}

// Provider returns the service handle published under the given name.
//
// Returns:
//   - PunishmentService: The service handle.
//   - error: [ErrNotReady] if the service has not registered itself yet.
func (r *Registry) Provider(name string) (PunishmentService, error) {
	service, ok := r.providers.Get(name)
	if !ok || service == nil {
		return nil, fmt.Errorf("%w: no provider named %q", ErrNotReady, name)
	}

	return service, nil
}

// Names returns the sorted names of the registered providers.
func (r *Registry) Names() []string {
	names := r.providers.Keys()
	sort.Strings(names)

	return names
}

// NewRegistry creates a new empty [Registry].
func NewRegistry() *Registry {
	return &Registry{providers: NewSyncMap[string, PunishmentService]()}
}
