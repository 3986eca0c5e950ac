package fetcher

import "github.com/quantmind-br/cargo-navigate/pkg/version"

// DefaultUserAgent identifies this tool to the registry. crates.io rejects
// API requests that do not carry an identifying User-Agent.
func DefaultUserAgent() string {
	return version.UserAgent()
}

// Headers returns the request headers sent with every GET
func Headers(userAgent, accept string) map[string]string {
	if userAgent == "" {
		userAgent = DefaultUserAgent()
	}
	headers := map[string]string{
		"User-Agent": userAgent,
	}
	if accept != "" {
		headers["Accept"] = accept
	}
	return headers
}
