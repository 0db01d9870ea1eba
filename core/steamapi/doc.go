// Package steamapi is a small client for the parts of the Steam Web API the backpack tools use.
//
// Every call is a GET against
//
//	{base}/{interface}/{method}/v{version}/?key=KEY&format=json&param=value
//
// where version is zero-padded to four digits. Responses are decoded with json-iterator.
//
// # Calls
//
//   - ResolveVanityURL: turns a custom profile name into a 64-bit account id.
//   - GetPlayerSummary: profile data of one account, cached in memory per client.
//   - GetPlayerItems: the backpack of one account. Private or unavailable backpacks
//     come back empty rather than failing.
//   - GetSchema: the full item schema, following the pagination cursor.
//
// # Logging
//
// When Config.LogRequests is set, every request URL is logged at info level with the API
// key masked, tagged with a per-request id.
package steamapi
