// Package catalogsdk provides a Go client for the PrepDeck catalog service.
//
// The SDKClient covers unauthenticated operations (registration, login, the
// password reset flow, and browsing the course catalog). Login returns a
// Session, which carries the bearer token for the bookmark endpoints.
//
// All request and response types in this package mirror the service's JSON
// wire format and are shared with the server's HTTP handlers.
package catalogsdk
