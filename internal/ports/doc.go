// Package ports holds the interfaces connecting the layers. Handlers call
// service ports implemented by the application layer; the application layer
// calls repository and client ports implemented by outbound adapters.
package ports
