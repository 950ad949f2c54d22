package consultation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"opd-scribe/internal/pipeline"
)

// ErrNotFound is returned for operations on an unknown or already
// closed consultation.
var ErrNotFound = errors.New("consultation not found")

// Repository archives finalized consultations. Defined here, on the
// consumer side, so storage stays swappable.
type Repository interface {
	Save(ctx context.Context, rec *Record) error
	GetByID(ctx context.Context, id uuid.UUID) (*Record, error)
}

// Deliverer sends a finalized record to the doctor (PDF over Telegram
// in the default wiring). Delivery is best-effort and never blocks
// finalization.
type Deliverer interface {
	Deliver(ctx context.Context, rec Record) error
}

type Service interface {
	Create(ctx context.Context) (uuid.UUID, error)
	Append(ctx context.Context, id uuid.UUID, text string) (*TranscriptEvent, error)
	Transcript(ctx context.Context, id uuid.UUID) ([]pipeline.Utterance, error)
	Subscribe(id uuid.UUID) (<-chan TranscriptEvent, func(), error)
	Finalize(ctx context.Context, id uuid.UUID) (pipeline.Report, error)
	Close(id uuid.UUID)
	ArchivedReport(ctx context.Context, id uuid.UUID) (*Record, error)
}

// session is the mutable per-consultation state. Each consultation owns
// its transcript and its speaker detector; nothing here is shared
// across consultations, which is what keeps concurrent consultations
// isolated. The mutex makes append, finalize and reset atomic with
// respect to each other and to readers.
type session struct {
	mu          sync.Mutex
	transcript  []pipeline.Utterance
	detector    *pipeline.SpeakerDetector
	subscribers map[int]chan TranscriptEvent
	nextSubID   int
}

type service struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*session

	repo      Repository // may be nil when running without a database
	deliverer Deliverer  // may be nil when delivery is not configured
}

func NewService(repo Repository, deliverer Deliverer) Service {
	return &service{
		sessions:  make(map[uuid.UUID]*session),
		repo:      repo,
		deliverer: deliverer,
	}
}

func (s *service) Create(ctx context.Context) (uuid.UUID, error) {
	id := uuid.New()

	s.mu.Lock()
	s.sessions[id] = &session{
		detector:    pipeline.NewSpeakerDetector(),
		subscribers: make(map[int]chan TranscriptEvent),
	}
	s.mu.Unlock()

	log.Printf("Created consultation %s", id)
	return id, nil
}

// Append attributes a speaker to the utterance and records it. Empty or
// whitespace-only text is ignored and returns a nil event, not an
// error: silence from the transcriber is normal.
func (s *service) Append(ctx context.Context, id uuid.UUID, text string) (*TranscriptEvent, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	sess.mu.Lock()
	speaker := sess.detector.Detect(text)
	sess.transcript = append(sess.transcript, pipeline.Utterance{
		Speaker: speaker,
		Text:    text,
		Seq:     len(sess.transcript),
	})

	event := TranscriptEvent{
		Type:    "transcript",
		Time:    time.Now().Format("15:04:05"),
		Speaker: speaker,
		Text:    text,
	}
	for _, ch := range sess.subscribers {
		select {
		case ch <- event:
		default: // slow subscriber; drop rather than stall the consultation
		}
	}
	sess.mu.Unlock()

	return &event, nil
}

func (s *service) Transcript(ctx context.Context, id uuid.UUID) ([]pipeline.Utterance, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	out := make([]pipeline.Utterance, len(sess.transcript))
	copy(out, sess.transcript)
	return out, nil
}

// Subscribe registers a live listener for transcript events. The
// returned cancel func must be called when the listener goes away.
func (s *service) Subscribe(id uuid.UUID) (<-chan TranscriptEvent, func(), error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, nil, err
	}

	sess.mu.Lock()
	subID := sess.nextSubID
	sess.nextSubID++
	ch := make(chan TranscriptEvent, 16)
	sess.subscribers[subID] = ch
	sess.mu.Unlock()

	cancel := func() {
		sess.mu.Lock()
		if _, ok := sess.subscribers[subID]; ok {
			delete(sess.subscribers, subID)
			close(ch)
		}
		sess.mu.Unlock()
	}
	return ch, cancel, nil
}

// Finalize assembles the structured report over the accumulated
// transcript, archives it, hands it to the deliverer in the background,
// and resets the session for the next consultation. Assembly and reset
// happen under the session lock, so a concurrent Append lands either
// fully before or fully after this consultation boundary.
func (s *service) Finalize(ctx context.Context, id uuid.UUID) (pipeline.Report, error) {
	sess, err := s.session(id)
	if err != nil {
		return pipeline.Report{}, err
	}

	sess.mu.Lock()
	transcript := sess.transcript
	sess.transcript = nil
	sess.detector.Reset()
	sess.mu.Unlock()

	report := pipeline.Assemble(transcript)

	var fullText strings.Builder
	for _, u := range transcript {
		fullText.WriteString(u.Text)
		fullText.WriteByte('\n')
	}

	rec := Record{
		ID:          id,
		PatientName: pipeline.ExtractPatientName(fullText.String()),
		PatientAge:  pipeline.ExtractPatientAge(fullText.String()),
		Report:      report,
		Transcript:  transcript,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if s.repo != nil {
		if err := s.repo.Save(ctx, &rec); err != nil {
			return pipeline.Report{}, fmt.Errorf("archive consultation: %w", err)
		}
	} else {
		log.Printf("No repository configured; consultation %s not archived", id)
	}

	if s.deliverer != nil {
		go func(rec Record) {
			if err := s.deliverer.Deliver(context.Background(), rec); err != nil {
				log.Printf("Report delivery failed for %s: %v", rec.ID, err)
			}
		}(rec)
	}

	return report, nil
}

// Close removes the consultation and disconnects its subscribers.
func (s *service) Close(id uuid.UUID) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}
	s.mu.Unlock()
	if !ok {
		return
	}

	sess.mu.Lock()
	for subID, ch := range sess.subscribers {
		delete(sess.subscribers, subID)
		close(ch)
	}
	sess.mu.Unlock()
	log.Printf("Closed consultation %s", id)
}

func (s *service) ArchivedReport(ctx context.Context, id uuid.UUID) (*Record, error) {
	if s.repo == nil {
		return nil, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) session(id uuid.UUID) (*session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return sess, nil
}
