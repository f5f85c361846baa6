package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Uploader writes objects to an S3-compatible store and derives the public
// CDN URL each object is served under.
type Uploader struct {
	client    *s3.Client
	bucket    string
	cdnBase   string
	projectID string
}

// New builds an Uploader against a custom S3 endpoint with static credentials.
// The access key id doubles as the project segment of generated CDN URLs.
func New(accessKey, secretKey, endpoint, region, bucket, cdnBase string) (*Uploader, error) {
	creds := credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")

	cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithCredentialsProvider(creds),
		awsconfig.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("load s3 config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	return &Uploader{
		client:    client,
		bucket:    bucket,
		cdnBase:   cdnBase,
		projectID: accessKey,
	}, nil
}

// Put uploads body under key with the given content type.
func (u *Uploader) Put(ctx context.Context, key string, body []byte, contentType string) error {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("put object %s: %w", key, err)
	}
	return nil
}

// PublicURL returns the CDN URL for a bucket-relative key.
func (u *Uploader) PublicURL(key string) string {
	return fmt.Sprintf("%s/projects/%s/bucket/%s", u.cdnBase, u.projectID, key)
}
