// Package main runs the plugin host: an HTTP server that lists the bundled
// contract plugins and compiles contracts from their arguments.
//
// HTTP API
//
//	GET /healthz
//	    Liveness probe. Returns {"status":"ok"}.
//
//	GET /plugins
//	    Manifests of every registered plugin, sorted by name.
//
//	GET /plugins/{name}
//	GET /plugins/{name}/schema
//	GET /plugins/{name}/logo
//	    One plugin's manifest, JSON argument schema, or logo bytes.
//
//	POST /plugins/{name}/contracts?funds=N
//	    Compile the JSON body as the plugin's arguments with N satoshis and
//	    store the record. Returns 201 and the record.
//
//	GET /contracts
//	GET /contracts/{id}
//	    Stored contract records.
//
// Behaviour
//
//   - With -memory, records are held in memory and lost on process exit.
//     Otherwise they are kept in <home>/contracts.json.
//   - Responses are JSON. Non-2xx statuses carry {"error": "..."}.
//   - A lightweight access log records method, path, remote, status, bytes and
//     duration for each request.
//   - The listen address comes from -addr, STAKEPLUG_LISTEN_ADDR or
//     config.toml, defaulting to :8080.
package main
