package usecase

import (
	"errors"
	"strings"

	memodomain "planner-backend/internal/memo/domain"
	"planner-backend/internal/memo/repository"
	taskdomain "planner-backend/internal/task/domain"
)

var (
	ErrMemoNotFound = errors.New("memo not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrEmptyText    = errors.New("memo text must not be empty")
)

// memoUsecase implements MemoUsecase interface
type memoUsecase struct {
	memoRepo    repository.MemoRepository
	taskCreator TaskCreator
	notifier    Notifier
}

// NewMemoUsecase creates a new instance of memoUsecase
func NewMemoUsecase(memoRepo repository.MemoRepository) MemoUsecase {
	return &memoUsecase{
		memoRepo: memoRepo,
	}
}

func (u *memoUsecase) SetTaskCreator(c TaskCreator) {
	u.taskCreator = c
}

func (u *memoUsecase) SetNotifier(n Notifier) {
	u.notifier = n
}

func (u *memoUsecase) CreateMemo(userID, text string) (*memodomain.Memo, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	memo := &memodomain.Memo{
		UserID: userID,
		Text:   text,
	}
	if err := u.memoRepo.Create(memo); err != nil {
		return nil, err
	}
	u.memosChanged(userID)

	return memo, nil
}

func (u *memoUsecase) GetUserMemos(userID string) ([]*memodomain.Memo, error) {
	return u.memoRepo.FindByUser(userID)
}

func (u *memoUsecase) UpdateMemo(userID, memoID, text string) (*memodomain.Memo, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	memo, err := u.getOwnedMemo(userID, memoID)
	if err != nil {
		return nil, err
	}

	memo.Text = text
	if err := u.memoRepo.Update(memo); err != nil {
		return nil, err
	}
	u.memosChanged(userID)

	return memo, nil
}

func (u *memoUsecase) DeleteMemo(userID, memoID string) error {
	memo, err := u.getOwnedMemo(userID, memoID)
	if err != nil {
		return err
	}
	if err := u.memoRepo.Delete(memo.ID); err != nil {
		return err
	}
	u.memosChanged(userID)

	return nil
}

// AddAsTask hands the memo text to the task pipeline, so an embedded
// date token is extracted and mirrored exactly as with typed entry.
func (u *memoUsecase) AddAsTask(userID, memoID string, list taskdomain.List) (*taskdomain.Task, error) {
	if u.taskCreator == nil {
		return nil, errors.New("task creation not configured")
	}

	memo, err := u.getOwnedMemo(userID, memoID)
	if err != nil {
		return nil, err
	}
	return u.taskCreator.CreateTask(userID, list, memo.Text)
}

func (u *memoUsecase) getOwnedMemo(userID, memoID string) (*memodomain.Memo, error) {
	memo, err := u.memoRepo.FindByID(memoID)
	if err != nil {
		return nil, err
	}
	if memo == nil {
		return nil, ErrMemoNotFound
	}
	if memo.UserID != userID {
		return nil, ErrUnauthorized
	}
	return memo, nil
}

func (u *memoUsecase) memosChanged(userID string) {
	if u.notifier != nil {
		u.notifier.MemosChanged(userID)
	}
}
