package models

import "time"

// Registration is a pending invite created by signup. The token is the
// primary key; ConsumedAt is stamped when the token is redeemed so a
// token can only ever produce one account.
type Registration struct {
	Token      string     `json:"token"`
	Email      string     `json:"email"`
	ConsumedAt *time.Time `json:"consumed_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
