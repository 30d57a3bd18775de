// Package httpapi exposes the batch analyzer over HTTP.
//
//	GET /?urls=a,b,c   analyze up to maxUrls articles, 200 {"results": [...]}
//	GET /healthz       liveness probe
//
// Malformed requests are rejected with 400 and {"error", "message"}; article
// failures are data inside "results", never an error status.
package httpapi
