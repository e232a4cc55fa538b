package dto

// RequestAccount is the inbound payload for creating or updating an account.
// ID is accepted for compatibility but never used: the store assigns identities
// and updates take the id from the path.
type RequestAccount struct {
	ID     *int64 `json:"id,omitempty"`
	Name   string `json:"name"`
	Number string `json:"number"`
	Owner  string `json:"owner"`
}

// ReceiveAccount is the outbound representation of a stored account
type ReceiveAccount struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Number string `json:"number"`
	Owner  string `json:"owner"`
}
