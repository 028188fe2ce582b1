package constants

import "time"

// API endpoint defaults.
const (
	// DefaultBaseURL is the production API host.
	DefaultBaseURL = "https://www.teamleader.be"

	// DefaultUserAgent identifies this client library.
	DefaultUserAgent = "teamleader-go/1.0"
)

// HTTP timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Status codes with vendor-specific meaning.
const (
	// StatusRateLimited is the status Teamleader uses to signal throttling.
	// This is 505 in the vendor's convention, not the standard 429.
	StatusRateLimited = 505
)

// Pagination.
const (
	// DefaultPageSize is the fixed number of records requested per page.
	DefaultPageSize = 100
)
