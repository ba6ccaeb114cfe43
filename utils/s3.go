package utils

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Catalog images live in an S3-compatible bucket; the URL stored on
// laptop_models.image_url is derived from the object key.

func s3Config() (aws.Config, error) {
	accessKey := os.Getenv("S3_ACCESS_KEY_ID")
	secretKey := os.Getenv("S3_SECRET_ACCESS_KEY")
	if accessKey == "" || secretKey == "" {
		return aws.Config{}, fmt.Errorf("S3_ACCESS_KEY_ID or S3_SECRET_ACCESS_KEY is not set")
	}
	region := os.Getenv("S3_REGION")
	if region == "" {
		region = "auto"
	}
	return config.LoadDefaultConfig(context.Background(),
		config.WithRegion(region),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		),
	)
}

func s3ClientAndBucket() (*s3.Client, string, error) {
	bucket := os.Getenv("S3_BUCKET_NAME")
	if bucket == "" {
		return nil, "", fmt.Errorf("S3_BUCKET_NAME is not set")
	}
	cfg, err := s3Config()
	if err != nil {
		return nil, "", err
	}
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint := os.Getenv("S3_ENDPOINT"); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
	return client, bucket, nil
}

// UploadImage stores a catalog image under the given object key.
func UploadImage(ctx context.Context, objectKey string, body io.Reader) error {
	client, bucket, err := s3ClientAndBucket()
	if err != nil {
		return err
	}
	contentType := mime.TypeByExtension(path.Ext(objectKey))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(objectKey),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("image upload failed: %w", err)
	}
	return nil
}

// SignedImageURL returns a presigned GET URL for a stored catalog image.
func SignedImageURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error) {
	client, bucket, err := s3ClientAndBucket()
	if err != nil {
		return "", err
	}
	presigner := s3.NewPresignClient(client)
	presigned, err := presigner.PresignGetObject(ctx,
		&s3.GetObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(objectKey),
		},
		func(po *s3.PresignOptions) {
			po.Expires = expiry
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to presign image URL: %w", err)
	}
	return presigned.URL, nil
}

// DeleteImage removes a stored catalog image.
func DeleteImage(ctx context.Context, objectKey string) error {
	client, bucket, err := s3ClientAndBucket()
	if err != nil {
		return err
	}
	_, err = client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return fmt.Errorf("image delete failed: %w", err)
	}
	return nil
}
