package models

// Token is a one-time login credential.
//
// Issuing a token stores (email, uid) and mails the uid to the address as a
// login link. Redeeming the uid authenticates the email's user, creating
// the account if it does not exist yet. A token is consumed on redemption;
// a second redemption of the same uid yields no identity.
type Token struct {
	// UID is the opaque unique identifier (UUID format) sent in the login
	// link. Infeasible to guess.
	UID string

	// Email is the address the token was issued for.
	Email string

	// IssuedAt is the Unix timestamp when the token was created.
	IssuedAt int64

	// RedeemedAt is the Unix timestamp when the token was redeemed, or 0
	// while the token is still outstanding.
	RedeemedAt int64
}

// Redeemed reports whether the token has already been consumed.
func (t *Token) Redeemed() bool {
	return t.RedeemedAt != 0
}
