package anatomyService

import (
	"AnatomyOverlay/internal/api/anatomy"
	"AnatomyOverlay/internal/entity"
	contextPkg "AnatomyOverlay/pkg/context"
	"AnatomyOverlay/pkg/response"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const generationPrompt = `You are an anatomy instructor. In one paragraph of four to six sentences, describe the human anatomical structure "%s": its location, what it articulates or connects with, its function and its most common clinical problems. Answer in plain text without headings or lists.`

// FallbackDescription is returned with 200 for names nothing can answer.
func FallbackDescription(structure string) string {
	return fmt.Sprintf("Detailed anatomical information for \"%s\" is not available in the current database. This bone may require additional research or may be referenced by a different anatomical name.", structure)
}

func descriptionKey(name string) string {
	return "anatomy:description:" + strings.ToLower(name)
}

// canonical maps free text onto a table name. Unmatched text is returned trimmed.
func (s *anatomyService) canonical(structure string) (string, bool) {
	if match, ok := s.matcher.Resolve(structure); ok {
		return match.Name, true
	}
	return structure, false
}

func (s *anatomyService) Describe(ctx context.Context, structure string) (anatomy.AnatomyResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	structure = strings.TrimSpace(structure)
	if structure == "" {
		return anatomy.AnatomyResponse{}, anatomy.ErrStructureRequired
	}

	name, known := s.canonical(structure)

	if s.Repository != nil {
		if override, err := s.getOverride(ctx, name); err == nil {
			return anatomy.AnatomyResponse{Description: override.Description, BoneName: name}, nil
		} else if !errors.Is(err, anatomy.ErrOverrideNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"structure":  name,
				"error":      err.Error(),
			}).Warn("Override lookup failed, continuing with the static table")
		}
	}

	if known {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"structure":  structure,
			"resolved":   name,
		}).Debug("Found static description")
		return anatomy.AnatomyResponse{Description: descriptions[name], BoneName: name}, nil
	}

	if s.Cache != nil {
		var cached anatomy.AnatomyResponse
		if err := s.Cache.GetJSON(ctx, descriptionKey(structure), &cached); err == nil {
			return cached, nil
		}
	}

	if s.Generator == nil {
		return anatomy.AnatomyResponse{Description: FallbackDescription(structure), BoneName: structure}, nil
	}

	text, err := s.Generator.GenerateText(ctx, fmt.Sprintf(generationPrompt, structure))
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"structure":  structure,
			"error":      err.Error(),
		}).Error("Failed to generate description")
		return anatomy.AnatomyResponse{}, response.WithDetails(anatomy.ErrAnatomyUpstream, err.Error())
	}

	resp := anatomy.AnatomyResponse{Description: text, BoneName: structure}

	if s.Cache != nil {
		if err := s.Cache.SetJSON(ctx, descriptionKey(structure), resp, descriptionCacheTTL); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to cache generated description")
		}
	}

	return resp, nil
}

func (s *anatomyService) Structures() []string {
	mappings := s.matcher.GetAllMappings()
	names := make([]string, 0, len(mappings))
	for _, m := range mappings {
		names = append(names, m.Name)
	}
	return names
}

func (s *anatomyService) getOverride(ctx context.Context, name string) (entity.DescriptionOverride, error) {
	repo, err := s.Repository.NewClient(false)
	if err != nil {
		return entity.DescriptionOverride{}, err
	}
	return repo.Overrides.GetOverride(ctx, name)
}

func (s *anatomyService) PutOverride(ctx context.Context, structure string, description string, admin string) (entity.DescriptionOverride, error) {
	requestID := contextPkg.GetRequestID(ctx)

	structure = strings.TrimSpace(structure)
	if structure == "" {
		return entity.DescriptionOverride{}, anatomy.ErrStructureRequired
	}
	if s.Repository == nil {
		return entity.DescriptionOverride{}, anatomy.ErrStorageUnavailable
	}

	name, _ := s.canonical(structure)

	repo, err := s.Repository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.DescriptionOverride{}, err
	}

	saved, err := repo.Overrides.UpsertOverride(ctx, entity.DescriptionOverride{
		Structure:   name,
		Description: strings.TrimSpace(description),
		UpdatedBy:   admin,
	})
	if err != nil {
		_ = repo.Rollback()
		return entity.DescriptionOverride{}, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit override")
		return entity.DescriptionOverride{}, err
	}

	s.invalidate(ctx, name)

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"structure":  name,
		"admin":      admin,
	}).Info("Description override saved")

	return saved, nil
}

func (s *anatomyService) DeleteOverride(ctx context.Context, structure string) error {
	requestID := contextPkg.GetRequestID(ctx)

	structure = strings.TrimSpace(structure)
	if structure == "" {
		return anatomy.ErrStructureRequired
	}
	if s.Repository == nil {
		return anatomy.ErrStorageUnavailable
	}

	name, _ := s.canonical(structure)

	repo, err := s.Repository.NewClient(false)
	if err != nil {
		return err
	}

	if err := repo.Overrides.DeleteOverride(ctx, name); err != nil {
		return err
	}

	s.invalidate(ctx, name)

	admin, _ := contextPkg.GetAdmin(ctx)
	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"structure":  name,
		"deleted_by": admin,
	}).Info("Description override removed")

	return nil
}

func (s *anatomyService) invalidate(ctx context.Context, name string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Delete(ctx, descriptionKey(name)); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"structure":  name,
			"error":      err.Error(),
		}).Warn("Failed to invalidate cached description")
	}
}
