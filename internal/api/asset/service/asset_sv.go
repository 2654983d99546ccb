package assetService

import (
	"AnatomyOverlay/internal/api/asset"
	"AnatomyOverlay/pkg/response"
	"AnatomyOverlay/pkg/s3"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// A cached URL is handed out only while it has at least this long to live.
const urlCacheMargin = time.Minute

func modelURLKey(name string) string {
	return "asset:model-url:" + name
}

// ValidModelName accepts a bare file name ending in .glb.
func ValidModelName(name string) bool {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return false
	}
	base := strings.TrimSuffix(strings.ToLower(name), ".glb")
	return base != "" && base != strings.ToLower(name)
}

func (s *assetService) ListModels(ctx context.Context) ([]string, error) {
	if s.s3 == nil {
		return nil, asset.ErrAssetsUnavailable
	}

	models, err := s.s3.ListModels()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to list models")
		return nil, response.WithDetails(asset.ErrAssetStorage, err.Error())
	}
	if models == nil {
		models = []string{}
	}
	return models, nil
}

func (s *assetService) ModelURL(ctx context.Context, name string) (asset.ModelURLResponse, error) {
	if !ValidModelName(name) {
		return asset.ModelURLResponse{}, asset.ErrInvalidModelName
	}
	if s.s3 == nil {
		return asset.ModelURLResponse{}, asset.ErrAssetsUnavailable
	}

	if s.cache != nil {
		var cached asset.ModelURLResponse
		if err := s.cache.GetJSON(ctx, modelURLKey(name), &cached); err == nil &&
			time.Until(cached.ExpiresAt) > urlCacheMargin {
			return cached, nil
		}
	}

	url, expiresAt, err := s.s3.PresignUrl(s3.ModelPrefix + name)
	if err != nil {
		if errors.Is(err, s3.ErrObjectNotFound) {
			return asset.ModelURLResponse{}, asset.ErrModelNotFound
		}
		s.log.WithFields(logrus.Fields{
			"model": name,
			"error": err.Error(),
		}).Error("Failed to presign model url")
		return asset.ModelURLResponse{}, response.WithDetails(asset.ErrAssetStorage, err.Error())
	}

	resp := asset.ModelURLResponse{Name: name, URL: url, ExpiresAt: expiresAt}

	if s.cache != nil {
		ttl := time.Until(expiresAt) - urlCacheMargin
		if ttl > 0 {
			if err := s.cache.SetJSON(ctx, modelURLKey(name), resp, ttl); err != nil {
				s.log.WithFields(logrus.Fields{
					"model": name,
					"error": err.Error(),
				}).Warn("Failed to cache model url")
			}
		}
	}

	return resp, nil
}
