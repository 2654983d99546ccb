package anatomyService

import (
	"AnatomyOverlay/internal/api/anatomy"
	anatomyRepository "AnatomyOverlay/internal/api/anatomy/repository"
	"AnatomyOverlay/internal/entity"
	"AnatomyOverlay/pkg/gemini"
	"AnatomyOverlay/pkg/nlp"
	"AnatomyOverlay/pkg/openai"
	"AnatomyOverlay/pkg/partapi"
	"AnatomyOverlay/pkg/redis"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	descriptionCacheTTL = 24 * time.Hour
	partCacheTTL        = 7 * 24 * time.Hour
)

type IAnatomyService interface {
	Describe(ctx context.Context, structure string) (anatomy.AnatomyResponse, error)
	Structures() []string
	PutOverride(ctx context.Context, structure string, description string, admin string) (entity.DescriptionOverride, error)
	DeleteOverride(ctx context.Context, structure string) error
	LookupPart(ctx context.Context, rawID string) (map[string]interface{}, error)
	Chat(ctx context.Context, message string) (string, error)
}

// Backends groups the optional collaborators. Any of them may be nil.
type Backends struct {
	Repository anatomyRepository.Repository
	Cache      redis.IRedis
	Generator  gemini.IGemini
	ChatGPT    openai.IChatGPT
	PartAPI    partapi.IPartAPI
}

type anatomyService struct {
	log     *logrus.Logger
	matcher nlp.INLPProcessor
	Backends
}

func New(log *logrus.Logger, backends Backends) IAnatomyService {
	return &anatomyService{
		log:      log,
		matcher:  nlp.NewProcessor(Mappings()),
		Backends: backends,
	}
}
