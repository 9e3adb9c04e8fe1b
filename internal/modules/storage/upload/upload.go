// Package upload stores admin-submitted images in an S3-compatible bucket and
// returns the public URL to reference from prompts, blogs and categories.
package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rohitgunthal18/pixico-core/internal/config"
	"github.com/rohitgunthal18/pixico-core/internal/pkg/response"
)

// MaxUploadSize caps a single image at 8 MiB.
const MaxUploadSize = 8 << 20

// ErrNotConfigured means no bucket credential is present.
var ErrNotConfigured = errors.New("upload: storage is not configured")

var allowedTypes = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/webp":    ".webp",
	"image/gif":     ".gif",
	"image/svg+xml": ".svg",
}

type Service struct {
	cfg    config.StorageConfig
	client *s3.Client
}

func NewService(cfg config.StorageConfig) *Service {
	s := &Service{cfg: cfg}
	if !cfg.Configured() {
		return s
	}

	opts := s3.Options{
		Region:      cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
	}
	if endpoint := strings.TrimSpace(cfg.Endpoint); endpoint != "" {
		opts.BaseEndpoint = aws.String(strings.TrimRight(endpoint, "/"))
		// Custom endpoints are S3-compatible stores that usually only speak
		// path-style addressing.
		opts.UsePathStyle = true
	}
	s.client = s3.New(opts)
	return s
}

// Configured reports whether uploads can be served.
func (s *Service) Configured() bool { return s.client != nil }

// Store writes the image under a date-partitioned random key and returns its
// public URL.
func (s *Service) Store(ctx context.Context, data []byte, contentType string) (string, error) {
	if s.client == nil {
		return "", ErrNotConfigured
	}

	ext, ok := allowedTypes[strings.ToLower(strings.TrimSpace(contentType))]
	if !ok {
		return "", fmt.Errorf("unsupported content type %q", contentType)
	}

	key := fmt.Sprintf("uploads/%s/%s%s", time.Now().UTC().Format("2006/01"), uuid.NewString(), ext)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.cfg.Bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=31536000, immutable"),
	})
	if err != nil {
		return "", err
	}
	return s.publicURL(key), nil
}

func (s *Service) publicURL(key string) string {
	if base := strings.TrimRight(s.cfg.PublicBaseURL, "/"); base != "" {
		return base + "/" + key
	}
	if endpoint := strings.TrimRight(s.cfg.Endpoint, "/"); endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", endpoint, s.cfg.Bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key)
}

func readUpload(file *multipart.FileHeader) ([]byte, string, error) {
	if file.Size > MaxUploadSize {
		return nil, "", fmt.Errorf("file exceeds %d bytes", MaxUploadSize)
	}

	f, err := file.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxUploadSize+1))
	if err != nil {
		return nil, "", err
	}
	if len(data) > MaxUploadSize {
		return nil, "", fmt.Errorf("file exceeds %d bytes", MaxUploadSize)
	}

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = extFallbackType(file.Filename)
	}
	return data, contentType, nil
}

func extFallbackType(filename string) string {
	switch strings.ToLower(path.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	case ".svg":
		return "image/svg+xml"
	default:
		return ""
	}
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminMW gin.HandlerFunc) {
	authed := rg.Group("/admin/uploads", adminMW)
	authed.POST("", h.upload)
}

func (h *Handler) upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}

	data, contentType, err := readUpload(file)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	url, err := h.svc.Store(c.Request.Context(), data, contentType)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotConfigured):
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"ok": 0, "code": http.StatusInternalServerError, "message": "uploads are not configured",
			})
		case strings.HasPrefix(err.Error(), "unsupported content type"):
			response.UnprocessableEntity(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.Created(c, gin.H{"url": url})
}
