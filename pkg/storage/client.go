package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ErrDisabled is returned by every operation when no endpoint is configured.
var ErrDisabled = errors.New("storage service not configured")

// Config holds MinIO connection settings.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Object is a downloaded blob. Callers must close Body.
type Object struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

//go:generate mockery --name Storage
type Storage interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Get(ctx context.Context, key string) (Object, error)
	Remove(ctx context.Context, key string) error
	Enabled() bool
}

type minioStorage struct {
	mc     *minio.Client
	bucket string
}

type disabled struct{}

// New creates a MinIO-backed Storage. An empty endpoint yields a disabled client.
func New(cfg Config) (Storage, error) {
	if cfg.Endpoint == "" {
		return disabled{}, nil
	}
	if cfg.Bucket == "" {
		return nil, errors.New("storage: bucket is required")
	}
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}
	return &minioStorage{mc: mc, bucket: cfg.Bucket}, nil
}

// EnsureBucket creates the bucket if it does not exist.
func EnsureBucket(ctx context.Context, s Storage) error {
	ms, ok := s.(*minioStorage)
	if !ok {
		return ErrDisabled
	}
	exists, err := ms.mc.BucketExists(ctx, ms.bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return ms.mc.MakeBucket(ctx, ms.bucket, minio.MakeBucketOptions{})
}

func (s *minioStorage) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	_, err := s.mc.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})
	return err
}

func (s *minioStorage) Get(ctx context.Context, key string) (Object, error) {
	obj, err := s.mc.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return Object{}, err
	}
	info, err := obj.Stat()
	if err != nil {
		obj.Close()
		return Object{}, err
	}
	return Object{Body: obj, ContentType: info.ContentType, Size: info.Size}, nil
}

func (s *minioStorage) Remove(ctx context.Context, key string) error {
	return s.mc.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}

func (s *minioStorage) Enabled() bool { return true }

func (disabled) Put(context.Context, string, io.Reader, int64, string) error { return ErrDisabled }
func (disabled) Get(context.Context, string) (Object, error)                 { return Object{}, ErrDisabled }
func (disabled) Remove(context.Context, string) error                        { return ErrDisabled }
func (disabled) Enabled() bool                                               { return false }
