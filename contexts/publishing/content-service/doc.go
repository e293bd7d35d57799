// Package contentservice owns posts, their comments, and read-only groups.
//
// Layering:
// - domain: entities, author-only ownership checks, sentinel errors
// - application: post/comment/group services behind explicit ports
// - ports: stable boundaries for persistence, clock, id generation
// - adapters: concrete HTTP, memory, and postgres implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - Keep this module self-contained under the publishing context.
// - Do not import other context adapters into domain/application.
package contentservice
