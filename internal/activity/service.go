package activity

import (
	"context"
	"time"

	"github.com/google/uuid"

	"castlog/internal/constants"
	"castlog/internal/logger"
	"castlog/internal/models"
	"castlog/internal/storage"
	"castlog/internal/utils"
	"castlog/internal/validation"
)

// Publisher is the external social-post collaborator. Implementations post a
// cast and return its hash. Publish failures never affect the local ledger.
type Publisher interface {
	PublishCast(ctx context.Context, text, imageURL, channel string) (string, error)
}

// PublishResult is the completion signal for an asynchronous cast publish.
type PublishResult struct {
	CastHash string
	Err      error
}

// Service orchestrates ledger mutations and exposes the derived views. The
// local ledger is the source of truth: the external publish runs only after a
// successful append and its outcome is reported, never rolled back into the
// ledger.
type Service struct {
	store     storage.Provider
	publisher Publisher
}

// NewService creates a Service. publisher may be nil, in which case entries
// are only recorded locally.
func NewService(store storage.Provider, publisher Publisher) *Service {
	return &Service{
		store:     store,
		publisher: publisher,
	}
}

// AppendInput is a new entry before an id and date are assigned.
type AppendInput struct {
	Text     string
	ImageURL string
	Channel  string

	// Publish requests a cast publish after the local append. It is ignored
	// when no publisher is configured.
	Publish bool
}

// Append validates the input, persists a new entry, and, when requested,
// fires the external cast publish. The returned channel (nil when nothing is
// published) delivers exactly one PublishResult; the publish is bounded by a
// best-effort timeout and its failure does not undo the local append.
func (s *Service) Append(ctx context.Context, in AppendInput) (models.Entry, <-chan PublishResult, error) {
	if err := validation.ValidateEntry(validation.EntryInput{
		Text:     in.Text,
		ImageURL: in.ImageURL,
		Channel:  in.Channel,
	}); err != nil {
		return models.Entry{}, nil, err
	}

	settings, err := s.store.GetSettings()
	if err != nil {
		settings = storage.DefaultSettings()
	}

	now, err := utils.NowInTimezone(settings.Timezone)
	if err != nil {
		now = time.Now()
	}

	channel := in.Channel
	if channel == "" {
		channel = settings.DefaultChannel
	}

	entry := models.Entry{
		ID:        uuid.New().String(),
		Text:      in.Text,
		Date:      now.Format(constants.DateFormat),
		ImageURL:  in.ImageURL,
		Channel:   channel,
		CreatedAt: now,
	}

	if err := s.store.AddEntry(entry); err != nil {
		return models.Entry{}, nil, err
	}

	if s.publisher == nil || !in.Publish {
		return entry, nil, nil
	}

	results := make(chan PublishResult, 1)
	go func() {
		pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), constants.PublishTimeout)
		defer cancel()

		hash, err := s.publisher.PublishCast(pubCtx, entry.Text, entry.ImageURL, entry.Channel)
		if err != nil {
			logger.Warn("Cast publish failed", "entry", entry.ID, "error", err)
		}
		results <- PublishResult{CastHash: hash, Err: err}
	}()

	return entry, results, nil
}

// Entries returns the full ledger, most recent insertion first.
func (s *Service) Entries() ([]models.Entry, error) {
	return s.store.GetEntries()
}

// Streak recomputes the streak for the given policy from the current ledger.
func (s *Service) Streak(policy StreakPolicy, today time.Time) (int, error) {
	entries, err := s.store.GetEntries()
	if err != nil {
		return 0, err
	}
	return Streak(policy, entries, today), nil
}

// Grid recomputes the contribution grid from the current ledger.
func (s *Service) Grid(today time.Time) ([][]models.GridCell, error) {
	entries, err := s.store.GetEntries()
	if err != nil {
		return nil, err
	}
	return BuildGrid(entries, today), nil
}

// Today returns the current date string in the configured timezone.
func (s *Service) Today() (time.Time, error) {
	settings, err := s.store.GetSettings()
	if err != nil {
		settings = storage.DefaultSettings()
	}
	return utils.NowInTimezone(settings.Timezone)
}
