// Package model defines the domain types shared by the enrichment engine:
// album queries, remote catalog candidates, local tracks with their tag
// field snapshots, artwork assets, scraped credit records, and the run
// summary reported back to the caller.
//
// All types in this package are plain data. They are created for a single
// enrichment run and discarded afterwards; only the artwork cache files
// referenced by ArtworkAsset outlive a run.
package model
