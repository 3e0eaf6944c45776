package waveshade

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

const uploadTimeout = 10 * time.Second

// UploadConfig comes from the environment (S3_* variables); see
// UploadConfigFromEnv.
type UploadConfig struct {
	AccessKey string
	SecretKey string
	Endpoint  string
	Region    string
	Bucket    string
	Prefix    string
}

// UploadConfigFromEnv reads the S3 settings. Returns nil when no bucket is
// configured, which disables uploading.
func UploadConfigFromEnv() *UploadConfig {
	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		return nil
	}
	return &UploadConfig{
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
		Endpoint:  os.Getenv("S3_ENDPOINT"),
		Region:    os.Getenv("S3_REGION"),
		Bucket:    bucket,
		Prefix:    os.Getenv("S3_PREFIX"),
	}
}

// Uploader pushes rendered outputs to an S3-compatible bucket.
type Uploader struct {
	cfg *UploadConfig
	s3  *s3.S3
}

func NewUploader(cfg *UploadConfig) (*Uploader, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:           aws.String(cfg.Region),
		Endpoint:         aws.String(cfg.Endpoint),
		Credentials:      credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
		S3ForcePathStyle: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 session: %w", err)
	}
	return &Uploader{cfg: cfg, s3: s3.New(sess)}, nil
}

// UploadFile reads a local file and puts it under the configured prefix.
func (u *Uploader) UploadFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	key := filepath.Base(path)
	if u.cfg.Prefix != "" {
		key = u.cfg.Prefix + "/" + key
	}

	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	size := int64(len(data))
	_, err = u.s3.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.cfg.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentTypeOf(path)),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	log.Printf("Uploaded %s to S3 (%d bytes)", key, size)
	return nil
}

func contentTypeOf(path string) string {
	switch filepath.Ext(path) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	default:
		return "application/octet-stream"
	}
}
