package services

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rentalkita/rentalkita-backend/internal/models"
)

var (
	uploader  *s3manager.Uploader
	useS3     bool
	baseURL   string
	uploadDir string
)

// MaxDocumentSize is the upload ceiling: 5 MiB.
const MaxDocumentSize = 5 * 1024 * 1024

// Upload validation failures, user-correctable at the form.
var (
	ErrUnknownDocumentKind = errors.New("tipe dokumen tidak didukung")
	ErrFileTooLarge        = errors.New("ukuran file maksimal 5MB")
	ErrUnsupportedFormat   = errors.New("format file tidak didukung")
)

var allowedDocumentTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/heic": true,
	"image/heif": true,
	"image/webp": true,
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]`)

// InitStorage initializes either S3 or local storage based on configuration
func InitStorage() error {
	awsRegion := os.Getenv("AWS_REGION")
	awsAccessKey := os.Getenv("AWS_ACCESS_KEY_ID")
	awsSecretKey := os.Getenv("AWS_SECRET_ACCESS_KEY")

	if awsRegion != "" && awsAccessKey != "" && awsSecretKey != "" {
		sess, err := session.NewSession(&aws.Config{
			Region: aws.String(awsRegion),
			Credentials: credentials.NewStaticCredentials(
				awsAccessKey,
				awsSecretKey,
				"",
			),
		})
		if err != nil {
			return fmt.Errorf("failed to create AWS session: %v", err)
		}

		uploader = s3manager.NewUploader(sess)
		useS3 = true

		zap.S().Info("AWS S3 storage initialized")
		return nil
	}

	// Fallback to local storage
	useS3 = false
	uploadDir = os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "/app/uploads"
	}
	baseURL = os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %v", err)
	}

	zap.S().Warn("AWS S3 not configured, using local file storage")
	return nil
}

// UploadDocument validates an identity-document upload and stores it under a
// fresh collision-resistant key scoped by document kind. Nothing is written
// when validation fails. Returns the publicly resolvable URL of the object.
func UploadDocument(kind string, file *multipart.FileHeader) (string, error) {
	if !models.IsValidDocumentKind(kind) {
		return "", ErrUnknownDocumentKind
	}

	if file.Size > MaxDocumentSize {
		return "", ErrFileTooLarge
	}

	contentType := file.Header.Get("Content-Type")
	if contentType != "" && !allowedDocumentTypes[strings.ToLower(contentType)] {
		return "", ErrUnsupportedFormat
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	// New UUID per attempt: re-uploads never overwrite an existing object.
	safeName := unsafeFilenameChars.ReplaceAllString(file.Filename, "_")
	key := fmt.Sprintf("%s/%s-%s-%s", kind, kind, uuid.NewString(), safeName)

	if useS3 {
		return uploadDocumentToS3(file, key, contentType)
	}
	return uploadDocumentLocally(file, key)
}

func uploadDocumentToS3(file *multipart.FileHeader, key, contentType string) (string, error) {
	bucketName := os.Getenv("AWS_S3_BUCKET")
	if bucketName == "" {
		return "", fmt.Errorf("S3 bucket name not configured")
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %v", err)
	}
	defer src.Close()

	buffer := bytes.NewBuffer(nil)
	if _, err := io.Copy(buffer, src); err != nil {
		return "", fmt.Errorf("failed to read file: %v", err)
	}

	_, err = uploader.Upload(&s3manager.UploadInput{
		Bucket:      aws.String(bucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buffer.Bytes()),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %v", err)
	}

	awsRegion := os.Getenv("AWS_REGION")
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucketName, awsRegion, key), nil
}

func uploadDocumentLocally(file *multipart.FileHeader, key string) (string, error) {
	fullPath := filepath.Join(uploadDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create folder directory: %v", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %v", err)
	}
	defer src.Close()

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %v", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to save file: %v", err)
	}

	return fmt.Sprintf("%s/uploads/%s", baseURL, key), nil
}

// IsUsingS3 returns true if S3 storage is being used
func IsUsingS3() bool {
	return useS3
}
