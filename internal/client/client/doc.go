// Package client talks to the remote users store.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) covering the
//     four calls the screen needs: List, Create, Update and Delete.
//  2. A concrete JSON-over-HTTP implementation (see RESTClient) for
//     mockapi.io-style endpoints: GET/POST /Users, PUT/DELETE /Users/{id}.
//
// # Error Handling
//
// Every network or HTTP failure is returned as a *TransportError, which
// matches ErrTransport with errors.Is. Bodies that do not match the user
// schema surface as *models.DecodeError (models.ErrDecode). A 404 on Delete is
// treated as success because the record is already gone.
//
// Each request carries a fresh X-Request-Id header; the id is logged together
// with failures so client and server logs can be correlated.
package client
