// Package host serves the plugin registry and contract service over HTTP.
//
// Routes:
//
//	GET  /healthz
//	GET  /plugins
//	GET  /plugins/{name}
//	GET  /plugins/{name}/schema
//	GET  /plugins/{name}/logo
//	POST /plugins/{name}/contracts?funds=N
//	GET  /contracts
//	GET  /contracts/{id}
//
// Errors are JSON objects of the form {"error": "..."}.
package host
