// Package objects exposes the object store over HTTP.
//
// Keys are taken from the wildcard part of the route, so nested keys such as
// "reports/2024/q1.pdf" need no escaping. Every route accepts an optional
// "bucket" query parameter, which is ignored when a default bucket is
// configured.
//
// # HTTP Endpoints
//
//   - PUT    /objects/*  : Store the raw request body.
//   - GET    /objects/*  : Download an object.
//   - DELETE /objects/*  : Delete an object (always 204).
//   - GET    /exists/*   : Report whether an object exists.
//   - GET    /stat/*     : Object metadata.
//   - GET    /presign/*  : Presigned download URL (?expires=<seconds>).
//   - GET    /list       : List objects (?dir=&recursive=).
package objects
