package consultation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"opd-scribe/internal/pipeline"
)

type fakeRepo struct {
	mu    sync.Mutex
	saved map[uuid.UUID]*Record
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{saved: make(map[uuid.UUID]*Record)}
}

func (r *fakeRepo) Save(ctx context.Context, rec *Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *rec
	r.saved[rec.ID] = &copied
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.saved[id]
	if !ok {
		return nil, ErrNotFound
	}
	return rec, nil
}

func TestService_AppendAttributesSpeaker(t *testing.T) {
	svc := NewService(nil, nil)
	ctx := context.Background()

	id, err := svc.Create(ctx)
	if err != nil {
		t.Fatal(err)
	}

	event, err := svc.Append(ctx, id, "मुझे बुखार है")
	if err != nil {
		t.Fatal(err)
	}
	if event == nil || event.Speaker != pipeline.SpeakerPatient {
		t.Fatalf("event = %+v, want patient attribution", event)
	}

	event, err = svc.Append(ctx, id, "दवा लिख रहा हूं")
	if err != nil {
		t.Fatal(err)
	}
	if event.Speaker != pipeline.SpeakerDoctor {
		t.Fatalf("event = %+v, want doctor attribution", event)
	}

	transcript, err := svc.Transcript(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if len(transcript) != 2 || transcript[0].Seq != 0 || transcript[1].Seq != 1 {
		t.Fatalf("transcript = %+v, want two utterances in arrival order", transcript)
	}
}

func TestService_EmptyUtteranceIgnored(t *testing.T) {
	svc := NewService(nil, nil)
	ctx := context.Background()
	id, _ := svc.Create(ctx)

	event, err := svc.Append(ctx, id, "   ")
	if err != nil {
		t.Fatalf("Append(blank) = %v, want nil error", err)
	}
	if event != nil {
		t.Fatalf("event = %+v, want nil for blank text", event)
	}

	transcript, _ := svc.Transcript(ctx, id)
	if len(transcript) != 0 {
		t.Fatalf("transcript = %+v, want empty", transcript)
	}
}

func TestService_FinalizeArchivesAndResets(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)
	ctx := context.Background()
	id, _ := svc.Create(ctx)

	svc.Append(ctx, id, "मेरा नाम समर्थ है")
	svc.Append(ctx, id, "मुझे तीन दिन से बुखार है")
	svc.Append(ctx, id, "यह बुखार का केस लग रहा है")

	rpt, err := svc.Finalize(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if rpt.ChiefComplaint == nil || *rpt.ChiefComplaint != "बुखार" {
		t.Errorf("chief_complaint = %v, want बुखार", rpt.ChiefComplaint)
	}

	rec, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("archived record: %v", err)
	}
	if rec.PatientName != "समर्थ" {
		t.Errorf("patient name = %q, want समर्थ", rec.PatientName)
	}
	if len(rec.Transcript) != 3 {
		t.Errorf("archived transcript = %+v, want three utterances", rec.Transcript)
	}

	// The session is reset for the next consultation.
	transcript, err := svc.Transcript(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if len(transcript) != 0 {
		t.Fatalf("transcript after finalize = %+v, want empty", transcript)
	}

	rpt, err = svc.Finalize(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if rpt.ChiefComplaint != nil || len(rpt.Symptoms) != 0 {
		t.Errorf("second finalize = %+v, want all-empty report", rpt)
	}
}

func TestService_UnknownConsultation(t *testing.T) {
	svc := NewService(nil, nil)
	ctx := context.Background()

	if _, err := svc.Append(ctx, uuid.New(), "कुछ"); err != ErrNotFound {
		t.Errorf("Append = %v, want ErrNotFound", err)
	}
	if _, err := svc.Finalize(ctx, uuid.New()); err != ErrNotFound {
		t.Errorf("Finalize = %v, want ErrNotFound", err)
	}
	if _, err := svc.Transcript(ctx, uuid.New()); err != ErrNotFound {
		t.Errorf("Transcript = %v, want ErrNotFound", err)
	}
}

func TestService_SubscribeReceivesEvents(t *testing.T) {
	svc := NewService(nil, nil)
	ctx := context.Background()
	id, _ := svc.Create(ctx)

	events, cancel, err := svc.Subscribe(id)
	if err != nil {
		t.Fatal(err)
	}
	defer cancel()

	if _, err := svc.Append(ctx, id, "मुझे खांसी है"); err != nil {
		t.Fatal(err)
	}

	select {
	case event := <-events:
		if event.Text != "मुझे खांसी है" || event.Speaker != pipeline.SpeakerPatient {
			t.Fatalf("event = %+v", event)
		}
	case <-time.After(time.Second):
		t.Fatal("no transcript event received")
	}
}

func TestService_CloseDisconnectsSubscribers(t *testing.T) {
	svc := NewService(nil, nil)
	ctx := context.Background()
	id, _ := svc.Create(ctx)

	events, cancel, err := svc.Subscribe(id)
	if err != nil {
		t.Fatal(err)
	}
	defer cancel()

	svc.Close(id)

	select {
	case _, open := <-events:
		if open {
			t.Fatal("expected closed channel")
		}
	case <-time.After(time.Second):
		t.Fatal("subscriber channel not closed")
	}

	if _, err := svc.Append(ctx, id, "कुछ और"); err != ErrNotFound {
		t.Errorf("Append after Close = %v, want ErrNotFound", err)
	}
}

func TestService_ConsultationsAreIsolated(t *testing.T) {
	svc := NewService(nil, nil)
	ctx := context.Background()

	a, _ := svc.Create(ctx)
	b, _ := svc.Create(ctx)

	// Doctor context in one consultation must not leak into another:
	// the ambiguous "जी" inherits per-consultation state.
	svc.Append(ctx, a, "दवा लिख रहा हूं")

	eventA, _ := svc.Append(ctx, a, "जी")
	eventB, _ := svc.Append(ctx, b, "जी")

	if eventA.Speaker != pipeline.SpeakerDoctor {
		t.Errorf("consultation A: speaker = %q, want doctor", eventA.Speaker)
	}
	if eventB.Speaker != pipeline.SpeakerPatient {
		t.Errorf("consultation B: speaker = %q, want patient (fresh detector)", eventB.Speaker)
	}
}
