// banbridge package bridges a punishment tracking service to a player analytics host.
//
// Key Features:
//   - Punishment Lookup: A synchronous facade over the service's asynchronous selector.
//   - Reporting: Ban and mute state mapped into labeled, prioritized report fields, in a builder style and a per-field style.
//   - Event Listener: Refreshes a player's data whenever one of their punishments is applied or revoked.
//   - Event Dispatch: An in-process event bus with prioritized handlers, composable filters and failure isolation.
//
// Usage Example:
//
//	package main
//
//	import (
//	    "context"
//
//	    "github.com/n0h4rt/banbridge"
//	)
//
//	func main() {
//	    config, err := banbridge.LoadConfig("banbridge.toml")
//	    if err != nil {
//	        panic(err)
//	    }
//
//	    bridge := banbridge.New(config)
//
//	    // The punishment service publishes itself in the registry when it is ready.
//	    if err := bridge.Initialize(registry, names, caller); err != nil {
//	        panic(err)
//	    }
//	    bridge.Start()
//
//	    report, err := bridge.Extension().PunishmentData(context.Background(), playerID)
//	}
//
// Every lookup blocks until the service answers, so the reporting methods must be called from
// goroutines the host dedicates to data collection.
package banbridge
