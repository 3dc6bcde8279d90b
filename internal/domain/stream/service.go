package stream

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrNotYouTube indicates the link is not a YouTube URL.
var ErrNotYouTube = errors.New("link is not a youtube url")

// Service validates and formats livestream announcements.
type Service struct {
	logger *slog.Logger
}

// NewService creates a new stream service.
func NewService(logger *slog.Logger) *Service {
	return &Service{logger: logger}
}

// Validate rejects links that are not YouTube. Checked before any channel
// lookup so a bad link never touches config.
func (s *Service) Validate(link string) error {
	lower := strings.ToLower(link)
	if strings.Contains(lower, "youtube.com") || strings.Contains(lower, "youtu.be") {
		return nil
	}
	return ErrNotYouTube
}

// Announcement composes the broadcast message for a stream link.
func (s *Service) Announcement(link, userID string) string {
	return fmt.Sprintf("🔴 <@%s> is live now!\n%s", userID, link)
}
