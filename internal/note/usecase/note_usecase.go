package usecase

import (
	"strings"

	"planner-backend/internal/note/domain"
	"planner-backend/internal/note/repository"
	"planner-backend/pkg/datekey"
)

const bullet = "• "

// noteUsecase implements NoteUsecase interface
type noteUsecase struct {
	noteRepo repository.NoteRepository
	notifier Notifier
}

// NewNoteUsecase creates a new instance of noteUsecase
func NewNoteUsecase(noteRepo repository.NoteRepository) NoteUsecase {
	return &noteUsecase{
		noteRepo: noteRepo,
	}
}

func (u *noteUsecase) SetNotifier(n Notifier) {
	u.notifier = n
}

func (u *noteUsecase) GetNote(userID string, day datekey.Key) (string, error) {
	note, err := u.noteRepo.FindByDay(userID, day)
	if err != nil {
		return "", err
	}
	if note == nil {
		return "", nil
	}
	return note.Note, nil
}

func (u *noteUsecase) SaveNote(userID string, day datekey.Key, note string) error {
	if strings.TrimSpace(note) == "" {
		// An empty note has no document.
		if err := u.noteRepo.Delete(userID, day); err != nil {
			return err
		}
		u.notesChanged(userID)
		return nil
	}

	err := u.noteRepo.Upsert(&domain.CalendarNote{
		UserID: userID,
		Day:    day,
		Note:   note,
	})
	if err != nil {
		return err
	}
	u.notesChanged(userID)
	return nil
}

// AppendTaskLine is a read-modify-write without concurrency control: two
// near-simultaneous appends to the same day race and the loser's line is
// lost. Acceptable for single-user use.
func (u *noteUsecase) AppendTaskLine(userID string, day datekey.Key, line string) error {
	existing, err := u.GetNote(userID, day)
	if err != nil {
		return err
	}

	note := bullet + line
	if existing != "" {
		note = existing + "\n" + bullet + line
	}

	err = u.noteRepo.Upsert(&domain.CalendarNote{
		UserID: userID,
		Day:    day,
		Note:   note,
	})
	if err != nil {
		return err
	}
	u.notesChanged(userID)
	return nil
}

func (u *noteUsecase) NotesByDay(userID string) (map[datekey.Key]string, error) {
	notes, err := u.noteRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	byDay := make(map[datekey.Key]string, len(notes))
	for _, n := range notes {
		byDay[n.Day] = n.Note
	}
	return byDay, nil
}

func (u *noteUsecase) notesChanged(userID string) {
	if u.notifier != nil {
		u.notifier.NotesChanged(userID)
	}
}
