// Package snapshot persists a seglist.List as a framed, checksummed stream.
//
// A snapshot starts with a small header (magic "SGL1", version, compression,
// codec name, segment capacity and element count) followed by one frame per
// segment. Each frame carries the element count, the codec payload and a
// CRC32C of the payload. The frame body may be compressed with zstd or lz4.
//
// Write and Read work on io streams; Save and Load go through a
// blobstore.Store:
//
//	store := blobstore.NewLocalStore("/var/lib/app")
//	if err := snapshot.Save(ctx, store, "queue.sgl", l,
//		snapshot.WithCompression(snapshot.CompressionZstd)); err != nil {
//		return err
//	}
//
//	restored, err := snapshot.Load[Job](ctx, store, "queue.sgl")
//
// Readers validate every frame and never return a partially decoded list.
package snapshot
