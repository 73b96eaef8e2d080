package domain

import "strings"

// Credentials is the access/refresh token pair issued by sign-in.
type Credentials struct {
	Access  string
	Refresh string
}

func (c Credentials) HasAccess() bool {
	return strings.TrimSpace(c.Access) != ""
}

// HasRefresh reports whether a 401 can be recovered by minting a new access token.
func (c Credentials) HasRefresh() bool {
	return strings.TrimSpace(c.Refresh) != ""
}

func (c Credentials) IsZero() bool {
	return !c.HasAccess() && !c.HasRefresh()
}
