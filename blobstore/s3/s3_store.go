package s3

import (
	"context"
	"io"
	"slices"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/hupe1980/seglist/blobstore"
)

// Store implements blobstore.Store for S3.
type Store struct {
	client   Client
	uploader *manager.Uploader
	cfg      UploadConfig
	bucket   string
	prefix   string
}

// Option configures a Store.
type Option func(*UploadConfig)

// WithUploadConfig replaces the upload settings.
func WithUploadConfig(cfg UploadConfig) Option {
	return func(c *UploadConfig) {
		*c = cfg
	}
}

// WithoutChecksum disables CRC32C validation on upload.
func WithoutChecksum() Option {
	return func(c *UploadConfig) {
		c.EnableChecksum = false
	}
}

// NewStore creates a new S3 blob store.
// rootPrefix is prepended to all keys (e.g. "my-lists/").
func NewStore(client Client, bucket, rootPrefix string, opts ...Option) *Store {
	cfg := DefaultUploadConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Store{
		client:   client,
		uploader: newUploader(client, cfg),
		cfg:      cfg,
		bucket:   bucket,
		prefix:   normalizePrefix(rootPrefix),
	}
}

// New creates a Store from the default AWS configuration chain
// (environment, shared config files, instance roles).
func New(ctx context.Context, bucket, rootPrefix string, opts ...Option) (*Store, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	return NewStore(s3.NewFromConfig(cfg), bucket, rootPrefix, opts...), nil
}

func normalizePrefix(p string) string {
	p = strings.Trim(p, "/")
	if p == "" {
		return ""
	}
	return p + "/"
}

func (s *Store) key(name string) string {
	return s.prefix + strings.TrimPrefix(name, "/")
}

// Put uploads a blob. Blobs below the part size go out in one request with
// an explicit CRC32C; larger ones use multipart upload.
func (s *Store) Put(ctx context.Context, name string, data []byte) error {
	key := s.key(name)
	if s.cfg.EnableChecksum && int64(len(data)) < s.cfg.PartSize {
		return putWithChecksum(ctx, s.client, s.bucket, key, data)
	}
	return upload(ctx, s.uploader, s.bucket, key, data, s.cfg.EnableChecksum)
}

// Get reads the whole blob.
func (s *Store) Get(ctx context.Context, name string) ([]byte, error) {
	resp, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, blobstore.ErrNotFound
		}
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	return io.ReadAll(resp.Body)
}

// Delete removes a blob. S3 reports success for missing keys.
func (s *Store) Delete(ctx context.Context, name string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil && !isNotFound(err) {
		return err
	}
	return nil
}

// List returns all blob names with the given prefix, following pagination.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	var keys []string

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(s.key(prefix)),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, obj := range page.Contents {
			// Strip our root prefix
			if name := strings.TrimPrefix(aws.ToString(obj.Key), s.prefix); name != "" {
				keys = append(keys, name)
			}
		}
	}
	slices.Sort(keys)
	return keys, nil
}
