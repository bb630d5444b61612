// Package http implements the HTTP transport layer of the data service.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as authentication, request tracing, and
// access logging are handled in this package before requests are delegated to
// the service layer.
//
// Error responses carry canonical message bodies from the internal/app
// package; the client gateway matches on them together with the status code,
// so handlers must not improvise wording.
package http
