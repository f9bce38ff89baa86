package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/foodgram/backend/config"
)

// ImageService stores recipe images submitted as base64 data URIs and
// hands back an opaque reference. S3 is used when configured, a local
// media directory otherwise. Everything downstream treats the reference
// as opaque.
type ImageService struct {
	s3Config *config.S3Config
	mediaDir string
}

// NewImageService creates a new ImageService instance. s3Config may be
// nil, in which case images land in mediaDir.
func NewImageService(s3Config *config.S3Config, mediaDir string) *ImageService {
	return &ImageService{s3Config: s3Config, mediaDir: mediaDir}
}

// Store persists an image payload. Payloads that are not data URIs are
// assumed to be references to already-stored images and returned
// unchanged, which lets updates resubmit the reference they were served.
func (s *ImageService) Store(ctx context.Context, payload string) (string, error) {
	if payload == "" || !strings.HasPrefix(payload, "data:") {
		return payload, nil
	}

	marker := ";base64,"
	idx := strings.Index(payload, marker)
	if idx < 0 {
		return "", fmt.Errorf("malformed image data URI")
	}

	mediaType := strings.TrimPrefix(payload[:idx], "data:")
	data, err := base64.StdEncoding.DecodeString(payload[idx+len(marker):])
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	ext := "png"
	if parts := strings.SplitN(mediaType, "/", 2); len(parts) == 2 && parts[1] != "" {
		ext = parts[1]
	}
	fileName := fmt.Sprintf("recipes/%s.%s", uuid.New().String(), ext)

	if s.s3Config != nil {
		return s.uploadToS3(ctx, data, fileName, mediaType)
	}
	return s.writeLocal(data, fileName)
}

// uploadToS3 uploads image data to S3 and returns the public URL.
func (s *ImageService) uploadToS3(ctx context.Context, data []byte, fileName, contentType string) (string, error) {
	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(fileName),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, fileName)
	log.Debug().Str("url", publicURL).Msg("uploaded recipe image to S3")
	return publicURL, nil
}

func (s *ImageService) writeLocal(data []byte, fileName string) (string, error) {
	fullPath := filepath.Join(s.mediaDir, fileName)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", err
	}
	return fileName, nil
}
