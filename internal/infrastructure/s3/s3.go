package s3

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"food-delivery-api/config"
)

type Client struct {
	logger *zap.Logger
	region string
	bucket string
}

func New(
	ctx context.Context,
	logger *zap.Logger,
	cfg config.S3,
) (*Client, error) {
	if cfg.BucketUploads == "" {
		logger.Warn("S3 bucket is not configured, image keys are returned unresolved")
	}

	return &Client{
		logger: logger,
		region: cfg.Region,
		bucket: cfg.BucketUploads,
	}, nil
}

func (c *Client) GetPublicURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.bucket, c.region, strings.TrimPrefix(key, "/"))
}

func (c *Client) GetBucket() string { return c.bucket }

// ResolveURL turns a storage key into a public URL; absolute URLs pass through.
func (c *Client) ResolveURL(ref string) string {
	switch {
	case ref == "":
		return ""
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return ref
	case c.bucket == "":
		return ref
	}
	return c.GetPublicURL(ref)
}
