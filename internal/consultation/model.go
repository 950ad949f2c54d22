package consultation

import (
	"time"

	"github.com/google/uuid"

	"opd-scribe/internal/pipeline"
)

// Record is the persisted outcome of one finished consultation: the
// structured report plus the raw transcript it was built from and the
// extracted demographics. Demographics stay out of the report JSON
// itself; its field set is fixed by the downstream contract.
type Record struct {
	ID          uuid.UUID            `json:"id" db:"id"`
	PatientName string               `json:"patient_name,omitempty" db:"patient_name"`
	PatientAge  int                  `json:"patient_age,omitempty" db:"patient_age"`
	Report      pipeline.Report      `json:"report" db:"report"`
	Transcript  []pipeline.Utterance `json:"transcript" db:"transcript"`
	CreatedAt   time.Time            `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at" db:"updated_at"`
}

// TranscriptEvent is what live subscribers receive for every utterance
// appended to a consultation.
type TranscriptEvent struct {
	Type    string           `json:"type"`
	Time    string           `json:"time"`
	Speaker pipeline.Speaker `json:"speaker"`
	Text    string           `json:"text"`
}
