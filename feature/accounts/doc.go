// Package accounts turns user-supplied account names into inventories the engine can use.
//
// An account is given either as a 64-bit id (anything starting with 17 digits) or as a
// custom profile name that is resolved through the Steam API. Names that do not resolve are
// dropped with a warning rather than failing the run.
//
// Inventories are built by joining each owned item with its catalog definition. Items the
// catalog does not know are skipped, which happens when the cached catalog is older than a
// newly released item.
//
// Need returns the reference-set items an inventory lacks, in catalog order. The engine uses
// it to decide which surplus items a recipient should receive.
package accounts
