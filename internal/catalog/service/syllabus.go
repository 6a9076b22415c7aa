package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/prepdeck/prepdeck/internal/catalog/store"
	"github.com/prepdeck/prepdeck/pkg/idx"
)

// ErrNoSyllabus is returned when a course has no uploaded syllabus document.
var ErrNoSyllabus = errors.New("no_syllabus")

// presignTTL bounds how long an issued upload or download URL stays usable.
const presignTTL = 15 * time.Minute

// S3Config holds the object storage settings for syllabus documents.
// Endpoint may point at any S3-compatible server (MinIO in dev).
type S3Config struct {
	Region    string
	Endpoint  string
	Bucket    string
	AccessKey string
	SecretKey string
}

// SyllabusService stores course syllabus documents in S3-compatible object
// storage. The API never proxies file bytes; clients upload and download
// through presigned URLs and the course record keeps only the storage key.
type SyllabusService struct {
	Store store.Store
	S3    S3Config
}

func (s *SyllabusService) presignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(s.S3.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.S3.AccessKey,
			s.S3.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load s3 config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if s.S3.Endpoint != "" {
			o.BaseEndpoint = aws.String(s.S3.Endpoint)
		}
	})

	return s3.NewPresignClient(client), nil
}

// PresignUpload issues a presigned PUT URL for the course syllabus and
// records the storage key on the course. A re-upload overwrites the key; the
// previous object is left for bucket lifecycle rules to reap.
func (s *SyllabusService) PresignUpload(ctx context.Context, courseID string) (string, error) {
	if _, err := s.Store.Courses().GetCourseByID(ctx, courseID); err != nil {
		return "", err
	}

	presign, err := s.presignClient(ctx)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("syllabus/%s/%s.pdf", courseID, idx.New())

	req, err := presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.S3.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(presignTTL))
	if err != nil {
		return "", fmt.Errorf("presign put: %w", err)
	}

	if err := s.Store.Courses().SetSyllabusKey(ctx, courseID, key); err != nil {
		return "", err
	}

	return req.URL, nil
}

// PresignDownload issues a presigned GET URL for the course syllabus.
func (s *SyllabusService) PresignDownload(ctx context.Context, courseID string) (string, error) {
	course, err := s.Store.Courses().GetCourseByID(ctx, courseID)
	if err != nil {
		return "", err
	}
	if course.SyllabusKey == "" {
		return "", ErrNoSyllabus
	}

	presign, err := s.presignClient(ctx)
	if err != nil {
		return "", err
	}

	req, err := presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.S3.Bucket),
		Key:    aws.String(course.SyllabusKey),
	}, s3.WithPresignExpires(presignTTL))
	if err != nil {
		return "", fmt.Errorf("presign get: %w", err)
	}

	return req.URL, nil
}
