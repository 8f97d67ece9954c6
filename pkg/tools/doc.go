// Package tools provides an explicit, statically visible registry that maps
// tool names to callables, giving an external runtime (agent, RPC layer, or
// HTTP shim) a single dispatch point for invoking validators by name.
//
// The registry is built once at startup by passing the Registry handle into
// registration functions; there is no module-level singleton and no
// import-time side effect. Dispatch through Call carries no logic beyond
// name lookup and raw-argument hand-off, so calling a tool through the
// registry is observably identical to calling the underlying function
// directly.
//
// # Usage
//
//	registry := tools.NewRegistry()
//	if err := tools.RegisterValidators(registry); err != nil {
//	    // duplicate or malformed tool definition
//	}
//
//	out, err := registry.Call(ctx, "validate_email",
//	    json.RawMessage(`{"email":"user@example.com"}`))
package tools
