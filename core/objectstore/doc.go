// Package objectstore is the gateway's storage adapter.
//
// A Store binds a small, fixed operation surface to a vendor client from
// core/storage:
//
//   - Put / Get / Remove / Exists / Stat / List
//   - PresignedURL: time-limited download links
//   - Health: writes a fixed marker object into the default bucket
//
// # Addressing
//
// Keys are prefixed with the configured prefix path ("<prefix>/<name>").
// The configured default bucket always wins over the bucket a caller passes;
// the caller's bucket is only used when no default is configured.
//
// # Failure handling
//
// Put, Get and PresignedURL retry a bounded number of times with a fixed
// pause, reopening the client handle after each failed attempt. Get and
// PresignedURL report exhaustion as an absent result rather than an error.
// Remove logs and swallows failures. Exists treats every error as "absent".
//
// # Observers
//
// Observers (metrics, the operation journal) are notified after every
// operation and every reopen.
//
// # Usage
//
//	store, err := objectstore.New(cfg.Storage, storage.NewClient, logg)
//	if err := store.Put(ctx, "", "docs/a.txt", data); err != nil { ... }
//	data, ok := store.Get(ctx, "", "docs/a.txt")
package objectstore
