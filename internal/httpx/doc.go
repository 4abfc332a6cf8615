// Package httpx provides the HTTP client used for all remote catalog
// traffic: structured API queries, storefront page fetches, and artwork
// downloads.
//
// The Client sets a stable User-Agent, applies a single request timeout,
// and treats any non-200 response as a failure. There are no automatic
// retries; callers surface failures instead of masking them.
package httpx
