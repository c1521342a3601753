package usecase

import (
	"testing"

	"planner-backend/internal/note/domain"
	"planner-backend/pkg/datekey"
)

// fakeNoteRepo is an in-memory NoteRepository for usecase tests.
type fakeNoteRepo struct {
	notes map[string]map[datekey.Key]*domain.CalendarNote
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: make(map[string]map[datekey.Key]*domain.CalendarNote)}
}

func (r *fakeNoteRepo) FindByDay(userID string, day datekey.Key) (*domain.CalendarNote, error) {
	note, ok := r.notes[userID][day]
	if !ok {
		return nil, nil
	}
	copied := *note
	return &copied, nil
}

func (r *fakeNoteRepo) FindByUser(userID string) ([]*domain.CalendarNote, error) {
	var out []*domain.CalendarNote
	for _, note := range r.notes[userID] {
		copied := *note
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeNoteRepo) Upsert(note *domain.CalendarNote) error {
	if r.notes[note.UserID] == nil {
		r.notes[note.UserID] = make(map[datekey.Key]*domain.CalendarNote)
	}
	copied := *note
	r.notes[note.UserID][note.Day] = &copied
	return nil
}

func (r *fakeNoteRepo) Delete(userID string, day datekey.Key) error {
	delete(r.notes[userID], day)
	return nil
}

type countingNotifier struct {
	calls int
}

func (n *countingNotifier) NotesChanged(userID string) {
	n.calls++
}

func TestAppendTaskLine_TwoAppendsInCallOrder(t *testing.T) {
	uc := NewNoteUsecase(newFakeNoteRepo())
	day := datekey.Key("2025-03-05")

	if err := uc.AppendTaskLine("u1", day, "Buy milk"); err != nil {
		t.Fatalf("first append failed: %v", err)
	}
	if err := uc.AppendTaskLine("u1", day, "Call dentist"); err != nil {
		t.Fatalf("second append failed: %v", err)
	}

	note, err := uc.GetNote("u1", day)
	if err != nil {
		t.Fatalf("GetNote failed: %v", err)
	}
	want := "• Buy milk\n• Call dentist"
	if note != want {
		t.Fatalf("note: want %q, got %q", want, note)
	}
}

func TestAppendTaskLine_MergesWithManualNote(t *testing.T) {
	uc := NewNoteUsecase(newFakeNoteRepo())
	day := datekey.Key("2025-03-05")

	if err := uc.SaveNote("u1", day, "Doctor at 9"); err != nil {
		t.Fatalf("SaveNote failed: %v", err)
	}
	if err := uc.AppendTaskLine("u1", day, "Buy milk"); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	note, _ := uc.GetNote("u1", day)
	if note != "Doctor at 9\n• Buy milk" {
		t.Fatalf("unexpected note: %q", note)
	}
}

func TestSaveNote_EmptyDeletesDocument(t *testing.T) {
	repo := newFakeNoteRepo()
	uc := NewNoteUsecase(repo)
	day := datekey.Key("2025-03-05")

	if err := uc.SaveNote("u1", day, "something"); err != nil {
		t.Fatalf("SaveNote failed: %v", err)
	}
	if err := uc.SaveNote("u1", day, "   \n "); err != nil {
		t.Fatalf("empty SaveNote failed: %v", err)
	}

	stored, _ := repo.FindByDay("u1", day)
	if stored != nil {
		t.Fatal("whitespace-only save must delete the note document")
	}
}

func TestSaveNote_PublishesSnapshot(t *testing.T) {
	uc := NewNoteUsecase(newFakeNoteRepo())
	notifier := &countingNotifier{}
	uc.SetNotifier(notifier)

	day := datekey.Key("2025-03-05")
	_ = uc.SaveNote("u1", day, "note")
	_ = uc.AppendTaskLine("u1", day, "line")
	_ = uc.SaveNote("u1", day, "")

	if notifier.calls != 3 {
		t.Fatalf("expected 3 snapshot notifications, got %d", notifier.calls)
	}
}

func TestNotesByDay(t *testing.T) {
	uc := NewNoteUsecase(newFakeNoteRepo())
	_ = uc.SaveNote("u1", datekey.Key("2025-03-05"), "a")
	_ = uc.SaveNote("u1", datekey.Key("2025-03-06"), "b")
	_ = uc.SaveNote("u2", datekey.Key("2025-03-05"), "other user")

	byDay, err := uc.NotesByDay("u1")
	if err != nil {
		t.Fatalf("NotesByDay failed: %v", err)
	}
	if len(byDay) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(byDay))
	}
	if byDay[datekey.Key("2025-03-05")] != "a" {
		t.Errorf("unexpected note: %q", byDay[datekey.Key("2025-03-05")])
	}
}
