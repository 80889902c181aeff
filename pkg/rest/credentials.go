package rest

// Credentials holds the API key pair used to sign private requests.
// Clients keep credentials in memory only; nothing is persisted.
type Credentials struct {
	// APIKey is the public API key identifier.
	APIKey string
	// APISecret is the secret used for HMAC signing.
	APISecret string
}

// IsZero returns true if no credentials are set.
func (c Credentials) IsZero() bool {
	return c.APIKey == "" && c.APISecret == ""
}
