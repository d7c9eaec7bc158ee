// Package models defines the core domain models for Superlists.
//
// # Models
//
//   - User: a registered account, identified solely by email (no password —
//     login is passwordless via emailed tokens)
//   - List: an ordered collection of items with an optional owner and a set
//     of sharees
//   - Item: a single line of text belonging to exactly one list
//   - Token: a one-time login credential mapping an opaque uid to an email
//
// # Design Principles
//
//  1. **Email as identity**: users have no numeric id; the email address is
//     the primary key everywhere a user is referenced
//  2. **Lists never exist empty**: a list is created together with its first
//     item and a persisted list always has at least one
//  3. **Avoid circular references**: relationships use id/email strings
//     instead of pointers
package models
