// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. The only
// distinction this API makes is "referenced row absent" versus a real
// store failure; invalid input is deliberately not a category of its own.
package repository

import "errors"

// ErrSpaceNotFound is returned when an availability update matches no
// parking space row. Handlers should translate this into an HTTP 404
// response.
var ErrSpaceNotFound = errors.New("space not found")

// ErrTicketNotFound is returned when a ticket lookup matches no row, or
// when a close matches no open row. An already-closed ticket and a
// missing ticket are intentionally indistinguishable: the conditional
// update affects zero rows in both cases and no extra read is performed
// to tell them apart. Handlers should translate this into an HTTP 404
// response.
var ErrTicketNotFound = errors.New("ticket not found")
