// Package storage provides blob storage for course videos and attachments.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"academy/config"
	"academy/internal/domain/service"
)

// videoStorage implements service.VideoStorage on S3 presigned URLs.
type videoStorage struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
}

// NewVideoStorage is the constructor for videoStorage.
func NewVideoStorage(ctx context.Context, cfg *config.Config) (service.VideoStorage, error) {
	if cfg.Storage == nil || cfg.Storage.VideoBucket == "" {
		return nil, errors.New("storage config must be provided")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Storage.Region))
	if err != nil {
		return nil, errors.Wrap(err, "load aws config")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Storage.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Storage.Endpoint)
			// Local S3 stand-ins only route path-style requests.
			o.UsePathStyle = true
		}
	})

	return &videoStorage{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  cfg.Storage.VideoBucket,
	}, nil
}

// PresignUpload returns a URL the client can PUT the video to. The object key
// embeds a fresh asset ID so re-uploads never collide.
func (s *videoStorage) PresignUpload(ctx context.Context, courseID, chapterID string, ttl time.Duration) (string, string, error) {
	key := fmt.Sprintf("courses/%s/chapters/%s/%s", courseID, chapterID, uuid.NewString())

	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", "", errors.Wrap(err, "presign upload")
	}

	return req.URL, key, nil
}

// PresignPlayback returns a URL for streaming the stored object.
func (s *videoStorage) PresignPlayback(ctx context.Context, key string, ttl time.Duration) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", errors.Wrap(err, "presign playback")
	}

	return req.URL, nil
}

// Delete removes the stored object. S3 treats deleting a missing key as success.
func (s *videoStorage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return errors.Wrap(err, "delete object")
	}

	return nil
}
