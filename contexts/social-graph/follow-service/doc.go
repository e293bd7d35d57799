// Package followservice owns the directed follow graph between users.
//
// Layering:
// - domain: the Follow edge entity, self-edge check, sentinel errors
// - application: list/create behind explicit ports; no update or delete
// - ports: persistence, user directory, clock, id generation boundaries
// - adapters: concrete HTTP, memory, and postgres implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - Keep this module self-contained under the social-graph context.
// - The user directory is read-only; identities are owned elsewhere.
package followservice
