package storage

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3PhotoStore keeps meal photos under meals/<user>/.
type S3PhotoStore struct {
	Client    ObjectPutter
	Bucket    string
	Region    string
	PublicURL string
}

func NewS3PhotoStore(client ObjectPutter, bucket, region, publicURL string) *S3PhotoStore {
	return &S3PhotoStore{Client: client, Bucket: bucket, Region: region, PublicURL: strings.TrimRight(publicURL, "/")}
}

func (s *S3PhotoStore) Upload(ctx context.Context, userID uuid.UUID, image []byte, contentType string) (string, error) {
	key := fmt.Sprintf("meals/%s/%s%s", userID, uuid.NewString(), extensionFor(contentType))

	_, err := s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(image),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	if s.PublicURL != "" {
		return s.PublicURL + "/" + key, nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.Bucket, s.Region, key), nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	}
	if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
		return exts[0]
	}
	return ""
}
