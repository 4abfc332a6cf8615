// Package catalog implements the remote search client: structured queries
// against the iTunes Search API and scraped queries against the Tower
// Records storefront, both normalized into the same Candidate shape.
//
// # Sources
//
// The structured source returns JSON album records including a per-track
// listing and an artwork URL. The scraped source parses HTML result pages
// under fixed, documented structure assumptions and additionally exposes
// per-track songwriter credits on product detail pages.
//
// # Failure kinds
//
// A source that cannot be reached, returns a non-200 status, or sends an
// undecodable body fails with ErrSourceUnavailable. A scraped page that
// was fetched but no longer matches the expected structure fails with
// ErrScrapeStructureMismatch, so callers can tell "the site is down" from
// "the site layout changed" from "the album isn't listed". A source that
// affirmatively reports zero matches returns an empty candidate slice and
// no error.
//
// No call in this package retries automatically.
package catalog
