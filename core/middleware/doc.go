// Package middleware contains HTTP middleware for the Fiber application.
//
//   - auth: rejects requests whose X-API-Key header does not match the configured key.
//   - rayid: gives every request an id, stored in the context as "ray_id" and echoed
//     in the X-Ray-ID response header.
//
// rayid is registered first so that every later log line can carry the id.
package middleware
