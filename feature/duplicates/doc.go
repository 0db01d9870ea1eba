// Package duplicates finds redundant weapons across a set of accounts and reports what could be
// done with them.
//
// A run resolves the given accounts, merges their weapons, and hands them to the reconcile
// engine. Optional stages reserve surplus copies for friends who lack them and pair the rest
// into crafts. The Report can be served as JSON or rendered as the plain-text report the
// command line prints.
//
// # Routes
//
//   - GET /duplicates?accounts=a,b&friends=c&list=true&scrap=true[&format=text]
//   - POST /catalog/refresh
package duplicates
