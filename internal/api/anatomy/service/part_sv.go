package anatomyService

import (
	"AnatomyOverlay/internal/api/anatomy"
	"AnatomyOverlay/internal/entity"
	contextPkg "AnatomyOverlay/pkg/context"
	"AnatomyOverlay/pkg/nlp"
	"AnatomyOverlay/pkg/response"
	"errors"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	sourcePartAPI = "part_api"
	sourceOpenAI  = "openai"
)

func partKey(id nlp.PartID) string {
	return "anatomy:part:" + id.Key()
}

// LookupPart resolves a part document through the cache, the document
// store, the upstream part API and finally the language model.
func (s *anatomyService) LookupPart(ctx context.Context, rawID string) (map[string]interface{}, error) {
	requestID := contextPkg.GetRequestID(ctx)

	id := nlp.NormalizePartID(rawID)
	if id.Part == "" {
		return nil, anatomy.ErrPartIDRequired
	}

	fields := logrus.Fields{
		"request_id": requestID,
		"part_id":    id.Key(),
	}

	if s.Cache != nil {
		doc := map[string]interface{}{}
		if err := s.Cache.GetJSON(ctx, partKey(id), &doc); err == nil {
			return doc, nil
		}
	}

	if s.Repository != nil {
		if doc, err := s.storedPart(ctx, id); err == nil {
			s.cachePart(ctx, id, doc)
			return doc, nil
		} else if !errors.Is(err, anatomy.ErrPartDocumentNotFound) {
			s.log.WithFields(fields).WithError(err).Warn("Part document lookup failed")
		}
	}

	var lastErr error

	if s.PartAPI != nil {
		doc, err := s.PartAPI.Fetch(id.Key())
		if err == nil {
			s.savePart(ctx, id, sourcePartAPI, doc)
			return doc, nil
		}
		lastErr = err
		s.log.WithFields(fields).WithError(err).Info("Part API not available, using language model fallback")
	}

	if s.ChatGPT != nil {
		doc, err := s.ChatGPT.DescribePart(ctx, id.DisplayName())
		if err == nil {
			s.savePart(ctx, id, sourceOpenAI, doc)
			return doc, nil
		}
		lastErr = err
	}

	if lastErr == nil {
		lastErr = errors.New("no part source is configured")
	}

	s.log.WithFields(fields).WithError(lastErr).Error("Error fetching bone data")
	return nil, response.WithDetails(anatomy.ErrPartLookup, lastErr.Error())
}

func (s *anatomyService) storedPart(ctx context.Context, id nlp.PartID) (map[string]interface{}, error) {
	repo, err := s.Repository.NewClient(false)
	if err != nil {
		return nil, err
	}

	stored, err := repo.Parts.GetPartDocument(ctx, id.Key())
	if err != nil {
		return nil, err
	}

	doc := map[string]interface{}{}
	if err := jsoniter.Unmarshal(stored.Document, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *anatomyService) cachePart(ctx context.Context, id nlp.PartID, doc map[string]interface{}) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.SetJSON(ctx, partKey(id), doc, partCacheTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"part_id":    id.Key(),
			"error":      err.Error(),
		}).Warn("Failed to cache part document")
	}
}

func (s *anatomyService) savePart(ctx context.Context, id nlp.PartID, source string, doc map[string]interface{}) {
	s.cachePart(ctx, id, doc)

	if s.Repository == nil {
		return
	}

	payload, err := jsoniter.Marshal(doc)
	if err != nil {
		return
	}

	repo, err := s.Repository.NewClient(false)
	if err != nil {
		return
	}

	if err := repo.Parts.UpsertPartDocument(ctx, entity.PartDocument{
		PartID:   id.Key(),
		Source:   source,
		Document: payload,
	}); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"part_id":    id.Key(),
			"error":      err.Error(),
		}).Warn("Failed to store part document")
	}
}
