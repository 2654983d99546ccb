package assetService

import (
	"AnatomyOverlay/internal/api/asset"
	"AnatomyOverlay/pkg/redis"
	"AnatomyOverlay/pkg/s3"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IAssetService interface {
	ListModels(ctx context.Context) ([]string, error)
	ModelURL(ctx context.Context, name string) (asset.ModelURLResponse, error)
}

type assetService struct {
	log   *logrus.Logger
	s3    s3.ItfS3
	cache redis.IRedis
}

// New accepts nil storage and cache. Without storage every call fails with
// ErrAssetsUnavailable.
func New(log *logrus.Logger, storage s3.ItfS3, cache redis.IRedis) IAssetService {
	return &assetService{
		log:   log,
		s3:    storage,
		cache: cache,
	}
}
