package publish

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/hashicorp/go-hclog"
)

// S3Destination uploads report artifacts to an S3 bucket.
type S3Destination struct {
	bucket string
	region string
	logger hclog.Logger
}

// NewS3Destination creates an S3 uploader for the given bucket.
func NewS3Destination(bucket, region string, logger hclog.Logger) *S3Destination {
	return &S3Destination{
		bucket: bucket,
		region: region,
		logger: logger,
	}
}

// Upload puts the file at path under key in the bucket. An empty key
// defaults to the file's base name.
func (d *S3Destination) Upload(path, key string) (string, error) {
	if key == "" {
		key = filepath.Base(path)
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(d.region),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create AWS session: %w", err)
	}
	uploader := s3manager.NewUploader(sess)

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open report file %q: %w", path, err)
	}
	defer f.Close()

	result, err := uploader.Upload(&s3manager.UploadInput{
		Bucket: aws.String(d.bucket),
		Key:    aws.String(key),
		Body:   f,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %q to s3://%s/%s: %w", path, d.bucket, key, err)
	}

	d.logger.Info("uploaded report", "bucket", d.bucket, "key", key, "location", result.Location)
	return result.Location, nil
}
