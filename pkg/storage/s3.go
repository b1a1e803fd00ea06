package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	signerv4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"

	"github.com/Jacobisaldana/signature-mail/pkg/icons"
)

// Config contains S3 storage configuration, loaded from the environment.
type Config struct {
	Bucket         string        `env:"S3_BUCKET,required"`
	Region         string        `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID    string        `env:"AWS_ACCESS_KEY_ID"`
	SecretKey      string        `env:"AWS_SECRET_ACCESS_KEY"`
	Endpoint       string        `env:"S3_ENDPOINT"`
	PublicBaseURL  string        `env:"S3_PUBLIC_BASE"`
	ForcePathStyle bool          `env:"S3_FORCE_PATH_STYLE"`
	PresignTTL     time.Duration `env:"S3_PRESIGN_TTL" envDefault:"15m"`
}

// S3Client defines the S3 operations used by S3Storage.
type S3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// PresignClient defines the presign operation used by PresignPut.
type PresignClient interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*signerv4.PresignedHTTPRequest, error)
}

// S3Storage stores avatar uploads in a single bucket and serves them from
// a public base URL. It is safe for concurrent use.
type S3Storage struct {
	client     S3Client
	presigner  PresignClient
	bucket     string
	baseURL    string
	presignTTL time.Duration
}

// Option configures S3Storage.
type Option func(*s3Options)

type s3Options struct {
	httpClient    *http.Client
	s3Client      S3Client
	presignClient PresignClient
}

// WithS3Client sets a custom pre-configured S3 client.
// Useful for testing with mocks.
func WithS3Client(client S3Client) Option {
	return func(o *s3Options) {
		o.s3Client = client
	}
}

// WithPresignClient sets a custom presign client.
func WithPresignClient(client PresignClient) Option {
	return func(o *s3Options) {
		o.presignClient = client
	}
}

// WithHTTPClient sets a custom HTTP client for S3 requests.
func WithHTTPClient(client *http.Client) Option {
	return func(o *s3Options) {
		o.httpClient = client
	}
}

// New creates an S3Storage from the configuration.
func New(ctx context.Context, cfg Config, opts ...Option) (*S3Storage, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, fmt.Errorf("%w: bucket and region are required", ErrInvalidConfig)
	}

	options := &s3Options{}
	for _, opt := range opts {
		opt(options)
	}

	client := options.s3Client
	presigner := options.presignClient
	if client == nil {
		awsOptions := []func(*config.LoadOptions) error{
			config.WithRegion(cfg.Region),
		}
		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			awsOptions = append(awsOptions,
				config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
					cfg.AccessKeyID,
					cfg.SecretKey,
					"",
				)),
			)
		}
		if options.httpClient != nil {
			awsOptions = append(awsOptions, config.WithHTTPClient(options.httpClient))
		}

		awsConfig, err := config.LoadDefaultConfig(ctx, awsOptions...)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToLoadConfig, err)
		}

		realClient := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
			if cfg.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			o.UsePathStyle = cfg.ForcePathStyle
		})
		client = realClient
		if presigner == nil {
			presigner = s3.NewPresignClient(realClient)
		}
	}

	baseURL := cfg.PublicBaseURL
	if baseURL == "" {
		if cfg.Endpoint != "" {
			baseURL = fmt.Sprintf("%s/%s", strings.TrimSuffix(cfg.Endpoint, "/"), cfg.Bucket)
		} else {
			baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
		}
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	presignTTL := cfg.PresignTTL
	if presignTTL <= 0 {
		presignTTL = 15 * time.Minute
	}

	return &S3Storage{
		client:     client,
		presigner:  presigner,
		bucket:     cfg.Bucket,
		baseURL:    baseURL,
		presignTTL: presignTTL,
	}, nil
}

var contentTypeExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// objectKey builds a collision-free upload key: uploads/YYYY/MM/DD/<id>.<ext>.
func objectKey(now time.Time, ext string) string {
	return fmt.Sprintf("uploads/%s/%s.%s", now.UTC().Format("2006/01/02"), uuid.NewString(), ext)
}

// Upload stores the bytes under a fresh date-based key and returns the
// public URL of the object.
func (s *S3Storage) Upload(ctx context.Context, data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyUpload
	}
	ext, ok := contentTypeExtensions[contentType]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedContentType, contentType)
	}

	key := objectKey(time.Now(), ext)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", classifyS3Error(err, "upload avatar")
	}

	return s.URL(key), nil
}

// Delete removes an uploaded object by key.
func (s *S3Storage) Delete(ctx context.Context, key string) error {
	key = strings.TrimPrefix(key, "/")
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return classifyS3Error(err, "delete avatar")
	}
	return nil
}

// PresignedUpload describes a direct browser upload: PUT the file to
// UploadURL before ExpiresAt, then reference it by PublicURL.
type PresignedUpload struct {
	Method    string    `json:"method"`
	UploadURL string    `json:"uploadUrl"`
	PublicURL string    `json:"publicUrl"`
	Key       string    `json:"key"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// PresignPut returns a time-limited URL for uploading one object of the
// given content type directly to the bucket.
func (s *S3Storage) PresignPut(ctx context.Context, contentType string) (*PresignedUpload, error) {
	if s.presigner == nil {
		return nil, ErrPresignNotConfigured
	}
	ext, ok := contentTypeExtensions[contentType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedContentType, contentType)
	}

	key := objectKey(time.Now(), ext)
	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(s.presignTTL))
	if err != nil {
		return nil, classifyS3Error(err, "presign upload")
	}

	return &PresignedUpload{
		Method:    req.Method,
		UploadURL: req.URL,
		PublicURL: s.URL(key),
		Key:       key,
		ExpiresAt: time.Now().Add(s.presignTTL),
	}, nil
}

// URL returns the public URL for an object key.
func (s *S3Storage) URL(key string) string {
	return s.baseURL + strings.TrimPrefix(key, "/")
}

// IconURLs returns the candidate icon URLs hosted under the given bucket
// prefix of the public base. It implements the icons source interface.
func (s *S3Storage) IconURLs(bucket string) icons.Set {
	u := func(n icons.Name) string {
		return s.baseURL + bucket + "/" + string(n) + ".png"
	}
	return icons.Set{
		LinkedIn:  u(icons.LinkedIn),
		Twitter:   u(icons.Twitter),
		Instagram: u(icons.Instagram),
		Facebook:  u(icons.Facebook),
		Calendar:  u(icons.Calendar),
		Phone:     u(icons.Phone),
		Email:     u(icons.Email),
		Website:   u(icons.Website),
	}
}

// classifyS3Error converts S3 errors to domain-specific errors.
func classifyS3Error(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s operation", ErrOperationTimeout, operation)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %s operation", ErrOperationCanceled, operation)
	}

	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return fmt.Errorf("%w: %s", ErrObjectNotFound, err)
	}

	var nsb *types.NoSuchBucket
	if errors.As(err, &nsb) {
		return ErrBucketNotFound
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch code := apiErr.ErrorCode(); code {
		case "AccessDenied":
			return fmt.Errorf("%w: %s operation", ErrAccessDenied, operation)
		case "RequestTimeout":
			return fmt.Errorf("%w: %s operation", ErrRequestTimeout, operation)
		case "SlowDown", "ServiceUnavailable":
			return fmt.Errorf("%w: %s operation", ErrServiceUnavailable, operation)
		case "NoSuchKey":
			return fmt.Errorf("%w: %s", ErrObjectNotFound, err)
		case "NoSuchBucket":
			return ErrBucketNotFound
		default:
			return fmt.Errorf("%s operation failed (code: %s): %w", operation, code, err)
		}
	}

	return fmt.Errorf("%s operation failed: %w", operation, err)
}
