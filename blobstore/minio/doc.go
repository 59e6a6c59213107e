// Package minio provides a blobstore.Store implementation using the MinIO client.
//
// MinIO is an S3-compatible object storage system. This package uses the
// official MinIO Go client library, so it also works with other
// S3-compatible servers like Ceph, SeaweedFS and Garage.
//
// # Basic Usage
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := minioblob.NewStore(client, "my-bucket", "lists/")
//	err = snapshot.Save(ctx, store, "orders.sgl", l)
//
// # Configuration Options
//
// The MinIO client supports various configuration options:
//
//	client, _ := minio.New("s3.example.com:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
//	    Secure: true,                    // Use HTTPS
//	    Region: "us-east-1",             // Optional region
//	})
package minio
