// Package http serves the notes REST API: registration and login, the
// current user and profile, owner-scoped note CRUD, HTML rendering of a note
// and the service version.
//
// Every request passes the trace id, access log and gzip middleware. Write
// routes additionally check the HashSHA256 body signature, and note routes
// require a bearer token whose subject becomes the owner of every query.
package http
