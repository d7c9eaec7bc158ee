package models

// User represents a registered account.
//
// There is no password: identity is bootstrapped through emailed login
// tokens (see Token). Users are provisioned implicitly the first time a
// token for their email is redeemed.
type User struct {
	// Email is the user's email address and sole identity key.
	Email string

	// CreatedAt is the Unix timestamp when the account was provisioned.
	CreatedAt int64
}
