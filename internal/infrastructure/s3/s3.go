package s3

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"marketplace-api/config"
)

type putter interface {
	PutObject(ctx context.Context, in *awss3.PutObjectInput, optFns ...func(*awss3.Options)) (*awss3.PutObjectOutput, error)
}

// Client stores objects in the uploads bucket and resolves their public URLs.
type Client struct {
	logger   *zap.Logger
	api      putter
	region   string
	bucket   string
	endpoint string
}

// New loads AWS credentials from the default chain. A non-empty endpoint
// switches to path-style addressing for S3 compatible stores.
func New(ctx context.Context, logger *zap.Logger, cfg config.S3) (*Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	endpoint := strings.TrimRight(cfg.Endpoint, "/")
	api := awss3.NewFromConfig(awsCfg, func(o *awss3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return newClient(logger, api, cfg.Region, cfg.BucketUploads, endpoint), nil
}

func newClient(logger *zap.Logger, api putter, region, bucket, endpoint string) *Client {
	return &Client{
		logger:   logger,
		api:      api,
		region:   region,
		bucket:   bucket,
		endpoint: endpoint,
	}
}

func (c *Client) PutObject(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	_, err := c.api.PutObject(ctx, &awss3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		c.logger.Error("s3 put object failed",
			zap.String("bucket", c.bucket),
			zap.String("key", key),
			zap.Error(err),
		)
		return fmt.Errorf("put object %s: %w", key, err)
	}

	c.logger.Debug("s3 object stored",
		zap.String("bucket", c.bucket),
		zap.String("key", key),
		zap.Int64("size", size),
	)

	return nil
}

func (c *Client) GetPublicURL(key string) string {
	if c.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", c.endpoint, c.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.bucket, c.region, key)
}
