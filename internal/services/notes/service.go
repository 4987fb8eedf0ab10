package notes

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"leadbook/internal/domain"
	"leadbook/internal/ports"
	"leadbook/internal/services/activity"
)

// NoteAddedDescription is the fixed text of every note_added activity. It never
// embeds the note body.
const NoteAddedDescription = "New note added"

type Service struct {
	store    ports.Store
	activity *activity.Logger
	clock    func() time.Time
	log      logrus.FieldLogger
}

type Option func(*Service)

func WithClock(clock func() time.Time) Option { return func(s *Service) { s.clock = clock } }

func WithLogger(log logrus.FieldLogger) Option { return func(s *Service) { s.log = log } }

func New(store ports.Store, logger *activity.Logger, opts ...Option) *Service {
	s := &Service{store: store, activity: logger, clock: time.Now, log: logrus.StandardLogger()}
	for _, o := range opts {
		o(s)
	}
	return s
}

type input struct {
	Content string `json:"content" validate:"notblank,max=10000"`
}

// Create persists a note and its note_added activity atomically. Blank content
// is rejected before anything is written.
func (s *Service) Create(ctx context.Context, leadID int64, content string) (domain.Note, error) {
	if err := domain.Validate(input{Content: content}); err != nil {
		return domain.Note{}, err
	}
	content = strings.TrimSpace(content)
	var note domain.Note
	err := s.store.InTx(ctx, func(r ports.Repositories) error {
		var err error
		note, err = r.InsertNote(ctx, leadID, content, s.clock())
		if err != nil {
			return fmt.Errorf("insert note: %w", err)
		}
		_, err = s.activity.Bind(r).Append(ctx, leadID, domain.ActivityNoteAdded, NoteAddedDescription)
		return err
	})
	if err != nil {
		return domain.Note{}, err
	}
	s.log.WithFields(logrus.Fields{"lead_id": leadID, "note_id": note.ID}).Info("note added")
	return note, nil
}

// List returns a lead's notes, newest first.
func (s *Service) List(ctx context.Context, leadID int64) ([]domain.Note, error) {
	return s.store.ListNotes(ctx, leadID)
}
