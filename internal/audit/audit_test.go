package audit

import (
	"testing"
	"time"

	dbpkg "github.com/chairman-shop/chairman/internal/db"
	"github.com/chairman-shop/chairman/internal/models"
)

func TestLoggerLog(t *testing.T) {
	db, err := dbpkg.Open(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	id := uint(7)
	ev := Event{
		EventID:  "evt-1",
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &id,
		Outcome:  OutcomeSuccess,
		Metadata: map[string]any{"start": "09:00"},
	}

	if err := New(db).Log(ev); err != nil {
		t.Fatalf("log: %v", err)
	}

	var row models.AuditLog
	if err := db.First(&row, "event_id = ?", "evt-1").Error; err != nil {
		t.Fatalf("read back: %v", err)
	}
	if row.Action != "appointment_booked" || row.Outcome != OutcomeSuccess {
		t.Fatalf("row = %+v", row)
	}
	if row.EntityID == nil || *row.EntityID != 7 {
		t.Fatalf("entity id = %v", row.EntityID)
	}
	if row.Metadata != `{"start":"09:00"}` {
		t.Fatalf("metadata = %q", row.Metadata)
	}
}

func TestDispatcherPersists(t *testing.T) {
	db, err := dbpkg.Open(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	d := NewDispatcher(New(db))
	d.Dispatch(Event{Action: "client_created", Entity: "client"})

	// The write is asynchronous; poll briefly.
	deadline := time.Now().Add(2 * time.Second)
	for {
		var row models.AuditLog
		err := db.First(&row, "action = ?", "client_created").Error
		if err == nil {
			if row.EventID == "" {
				t.Fatal("event id not assigned")
			}
			if row.Outcome != OutcomeSuccess {
				t.Fatalf("outcome = %q", row.Outcome)
			}
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("audit row never appeared: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}
}
