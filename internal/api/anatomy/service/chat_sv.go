package anatomyService

import (
	"AnatomyOverlay/internal/api/anatomy"
	contextPkg "AnatomyOverlay/pkg/context"
	"AnatomyOverlay/pkg/response"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *anatomyService) Chat(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", anatomy.ErrMessageRequired
	}
	if s.ChatGPT == nil {
		return "", anatomy.ErrChatUnavailable
	}

	reply, err := s.ChatGPT.Chat(ctx, message)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("Chat completion failed")
		return "", response.WithDetails(anatomy.ErrChatUpstream, err.Error())
	}

	return reply, nil
}
