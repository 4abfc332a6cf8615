package catalog

import "errors"

// ErrSourceUnavailable is returned when a catalog source cannot complete a
// network call: timeout, non-2xx status, or an unparsable response body.
var ErrSourceUnavailable = errors.New("catalog source unavailable")

// ErrScrapeStructureMismatch is returned when a scraped page was fetched
// successfully but its structure no longer matches the documented
// assumptions. This is deliberately distinct from an empty result so that
// a site redesign never masquerades as "no such album".
var ErrScrapeStructureMismatch = errors.New("scraped page structure mismatch")
