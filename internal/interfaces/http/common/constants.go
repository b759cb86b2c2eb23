package common

const (
	// MaxRequestBody limits JSON request bodies for place/account endpoints.
	MaxRequestBody = 1 << 20
	// MinPasswordLength is the minimum accepted password length on signup.
	MinPasswordLength = 6
)
