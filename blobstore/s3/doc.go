// Package s3 provides an Amazon S3 implementation of the blobstore.Store
// interface.
//
// Small snapshots are written with a single PutObject carrying a CRC32C
// checksum; snapshots larger than the configured part size go through the
// multipart uploader of feature/s3/manager.
//
//	store, err := s3.New(ctx, "my-bucket", "lists/")
//	if err != nil { ... }
//	err = snapshot.Save(ctx, store, "orders.sgl", l)
package s3
