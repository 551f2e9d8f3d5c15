package minio

import (
	"SocialDash/internal/api/config"
	"context"
	"fmt"
	log "log/slog"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Store 基于 MinIO 的对象存储
type Store struct {
	client           *minio.Client
	bucket           string
	externalEndpoint string
}

// NewStore 初始化 MinIO 客户端并确保主存储桶存在
func NewStore(ctx context.Context, cfg config.MinIOConfig) (*Store, error) {
	var endpoint string
	var useSSL bool
	if cfg.InternalEndpoint != "" {
		endpoint = cfg.InternalEndpoint
		useSSL = cfg.InternalUseSSL
	} else {
		endpoint = cfg.ExternalEndpoint
		useSSL = true
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.MainBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to minio server: %w", err)
	}
	if !exists {
		if err = client.MakeBucket(ctx, cfg.MainBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.MainBucket, err)
		}
		log.Info("MinIO bucket created", "bucket", cfg.MainBucket)
	}

	external := cfg.ExternalEndpoint
	switch {
	case external == "":
		scheme := "http"
		if useSSL {
			scheme = "https"
		}
		external = scheme + "://" + endpoint
	case !strings.Contains(external, "://"):
		external = "https://" + external
	}

	return &Store{
		client:           client,
		bucket:           cfg.MainBucket,
		externalEndpoint: external,
	}, nil
}
