package domain

// APIKeyStatus is the provider key as the server reports it (masked).
type APIKeyStatus struct {
	MaskedKey string
	Provider  string
}

type APIKeyTestResult struct {
	OK      bool
	Message string
}
