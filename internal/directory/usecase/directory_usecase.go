package usecase

import (
	"errors"
	"strings"

	"planner-backend/internal/directory/domain"
	"planner-backend/internal/directory/repository"
)

var (
	ErrLinkNotFound = errors.New("link not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidLink  = errors.New("link name and url must not be empty")
)

// DirectoryUsecase defines the interface for housing directory logic
type DirectoryUsecase interface {
	// GetColumns returns the user's links grouped per column, seeding
	// the built-in defaults on first access
	GetColumns(userID string) (map[domain.Column][]*domain.Link, error)

	// CreateLink adds a link to the end of a column
	CreateLink(userID string, column domain.Column, name, url, description string) (*domain.Link, error)

	// UpdateLink replaces a link's name, url and description
	UpdateLink(userID, linkID, name, url, description string) (*domain.Link, error)

	// DeleteLink deletes a link
	DeleteLink(userID, linkID string) error
}

// directoryUsecase implements DirectoryUsecase interface
type directoryUsecase struct {
	linkRepo repository.LinkRepository
}

// NewDirectoryUsecase creates a new instance of directoryUsecase
func NewDirectoryUsecase(linkRepo repository.LinkRepository) DirectoryUsecase {
	return &directoryUsecase{
		linkRepo: linkRepo,
	}
}

func (u *directoryUsecase) GetColumns(userID string) (map[domain.Column][]*domain.Link, error) {
	count, err := u.linkRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		if err := u.seedDefaults(userID); err != nil {
			return nil, err
		}
	}

	links, err := u.linkRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	columns := make(map[domain.Column][]*domain.Link, len(domain.Columns))
	for _, col := range domain.Columns {
		columns[col] = []*domain.Link{}
	}
	for _, link := range links {
		columns[link.Column] = append(columns[link.Column], link)
	}
	return columns, nil
}

func (u *directoryUsecase) CreateLink(userID string, column domain.Column, name, url, description string) (*domain.Link, error) {
	name = strings.TrimSpace(name)
	url = strings.TrimSpace(url)
	if name == "" || url == "" {
		return nil, ErrInvalidLink
	}

	links, err := u.linkRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	position := 0
	for _, l := range links {
		if l.Column == column && l.Position >= position {
			position = l.Position + 1
		}
	}

	link := &domain.Link{
		UserID:      userID,
		Column:      column,
		Name:        name,
		URL:         url,
		Description: strings.TrimSpace(description),
		Position:    position,
	}
	if err := u.linkRepo.Create(link); err != nil {
		return nil, err
	}
	return link, nil
}

func (u *directoryUsecase) UpdateLink(userID, linkID, name, url, description string) (*domain.Link, error) {
	name = strings.TrimSpace(name)
	url = strings.TrimSpace(url)
	if name == "" || url == "" {
		return nil, ErrInvalidLink
	}

	link, err := u.getOwnedLink(userID, linkID)
	if err != nil {
		return nil, err
	}

	link.Name = name
	link.URL = url
	link.Description = strings.TrimSpace(description)
	if err := u.linkRepo.Update(link); err != nil {
		return nil, err
	}
	return link, nil
}

func (u *directoryUsecase) DeleteLink(userID, linkID string) error {
	link, err := u.getOwnedLink(userID, linkID)
	if err != nil {
		return err
	}
	return u.linkRepo.Delete(link.ID)
}

func (u *directoryUsecase) seedDefaults(userID string) error {
	var seeded []*domain.Link
	for _, col := range domain.Columns {
		for i, def := range domain.Defaults[col] {
			seeded = append(seeded, &domain.Link{
				UserID:      userID,
				Column:      col,
				Name:        def.Name,
				URL:         def.URL,
				Description: def.Description,
				Position:    i,
			})
		}
	}
	return u.linkRepo.CreateAll(seeded)
}

func (u *directoryUsecase) getOwnedLink(userID, linkID string) (*domain.Link, error) {
	link, err := u.linkRepo.FindByID(linkID)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, ErrLinkNotFound
	}
	if link.UserID != userID {
		return nil, ErrUnauthorized
	}
	return link, nil
}
