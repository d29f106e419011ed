package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/inkwellhq/inkwell_backend/internal/apperrors"
	"github.com/inkwellhq/inkwell_backend/internal/core/domain"
	portsrepo "github.com/inkwellhq/inkwell_backend/internal/core/ports/repositories"
	portssvc "github.com/inkwellhq/inkwell_backend/internal/core/ports/services"
	"github.com/inkwellhq/inkwell_backend/internal/dto"
)

// journalService owns journal CRUD. Writes are author-only; reads apply the
// visibility rule against close-circle membership.
type journalService struct {
	journalRepo portsrepo.JournalRepositoryFacade
	circleRepo  portsrepo.CircleRepositoryFacade
}

// NewJournalService creates a new journalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, circleRepo portsrepo.CircleRepositoryFacade) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo: journalRepo,
		circleRepo:  circleRepo,
	}
}

// CreateJournal creates the author's entry for one calendar date. A second
// entry on the same date is a duplicate.
func (s *journalService) CreateJournal(ctx context.Context, authorID string, req dto.CreateJournalRequest) (*domain.Journal, error) {
	visibility := req.Visibility
	if visibility == "" {
		visibility = domain.VisibilityPrivate
	}
	if !visibility.Valid() {
		return nil, apperrors.ErrValidation
	}

	now := time.Now()
	journal := domain.Journal{
		JournalID:   uuid.NewString(),
		AuthorID:    authorID,
		Title:       req.Title,
		Content:     req.Content,
		JournalDate: req.JournalDate,
		Visibility:  visibility,
		IsAnonymous: req.IsAnonymous,
		Images:      []string{},
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.journalRepo.SaveJournal(ctx, journal); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to create journal: %w", err)
	}
	return &journal, nil
}

// canView applies the visibility rule: authors see their own entries, public
// is open, close-circle needs the viewer in the author's circle.
func (s *journalService) canView(ctx context.Context, viewerID string, journal *domain.Journal) (bool, error) {
	if journal.AuthorID == viewerID {
		return true, nil
	}
	switch journal.Visibility {
	case domain.VisibilityPublic:
		return true, nil
	case domain.VisibilityCloseCircle:
		return s.circleRepo.IsMember(ctx, journal.AuthorID, viewerID)
	default:
		return false, nil
	}
}

func (s *journalService) GetJournal(ctx context.Context, viewerID, journalID string) (*domain.Journal, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return nil, err
	}
	ok, err := s.canView(ctx, viewerID, journal)
	if err != nil {
		return nil, fmt.Errorf("failed to check journal visibility: %w", err)
	}
	if !ok {
		return nil, apperrors.ErrForbidden
	}
	return journal, nil
}

// ownedJournal loads the journal and verifies authorship for mutations.
func (s *journalService) ownedJournal(ctx context.Context, authorID, journalID string) (*domain.Journal, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return nil, err
	}
	if journal.AuthorID != authorID {
		return nil, apperrors.ErrForbidden
	}
	return journal, nil
}

func (s *journalService) UpdateJournal(ctx context.Context, authorID, journalID string, req dto.UpdateJournalRequest) (*domain.Journal, error) {
	journal, err := s.ownedJournal(ctx, authorID, journalID)
	if err != nil {
		return nil, err
	}

	journal.Title = req.Title
	journal.Content = req.Content
	if req.Visibility != nil {
		if !req.Visibility.Valid() {
			return nil, apperrors.ErrValidation
		}
		journal.Visibility = *req.Visibility
	}
	if req.IsAnonymous != nil {
		journal.IsAnonymous = *req.IsAnonymous
	}
	if req.RemoveImages {
		journal.Images = []string{}
	}
	journal.UpdatedAt = time.Now()

	if err := s.journalRepo.UpdateJournal(ctx, *journal); err != nil {
		return nil, fmt.Errorf("failed to update journal: %w", err)
	}
	return journal, nil
}

func (s *journalService) DeleteJournal(ctx context.Context, authorID, journalID string) error {
	if _, err := s.ownedJournal(ctx, authorID, journalID); err != nil {
		return err
	}
	return s.journalRepo.DeleteJournal(ctx, journalID)
}

func (s *journalService) ListOwn(ctx context.Context, authorID string) ([]domain.Journal, error) {
	return s.journalRepo.FindJournalsByAuthor(ctx, authorID, nil)
}

// ListByAuthor returns targetID's entries restricted to the tiers the viewer
// may see: everything for the author, public plus close-circle for circle
// members, public only otherwise.
func (s *journalService) ListByAuthor(ctx context.Context, viewerID, targetID string) ([]domain.Journal, error) {
	if viewerID == targetID {
		return s.journalRepo.FindJournalsByAuthor(ctx, targetID, nil)
	}

	visibilities := []domain.Visibility{domain.VisibilityPublic}
	inCircle, err := s.circleRepo.IsMember(ctx, targetID, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check circle membership: %w", err)
	}
	if inCircle {
		visibilities = append(visibilities, domain.VisibilityCloseCircle)
	}
	return s.journalRepo.FindJournalsByAuthor(ctx, targetID, visibilities)
}

func (s *journalService) GetOwnByDate(ctx context.Context, authorID, date string) (*domain.Journal, error) {
	return s.journalRepo.FindJournalByAuthorAndDate(ctx, authorID, date)
}

// ListMonth returns the caller's entries for one calendar month using a
// [first-of-month, first-of-next-month) range.
func (s *journalService) ListMonth(ctx context.Context, authorID string, year, month int) ([]domain.Journal, error) {
	if month < 1 || month > 12 {
		return nil, apperrors.ErrValidation
	}
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	return s.journalRepo.FindJournalsByAuthorInRange(ctx, authorID, from.Format("2006-01-02"), to.Format("2006-01-02"))
}

func (s *journalService) AttachImage(ctx context.Context, authorID, journalID, imageURL string) error {
	if _, err := s.ownedJournal(ctx, authorID, journalID); err != nil {
		return err
	}
	return s.journalRepo.AppendImage(ctx, journalID, imageURL)
}

func (s *journalService) ReplaceImages(ctx context.Context, authorID, journalID string, images []string) (*domain.Journal, error) {
	journal, err := s.ownedJournal(ctx, authorID, journalID)
	if err != nil {
		return nil, err
	}
	if images == nil {
		images = []string{}
	}
	journal.Images = images
	journal.UpdatedAt = time.Now()
	if err := s.journalRepo.UpdateJournal(ctx, *journal); err != nil {
		return nil, fmt.Errorf("failed to replace journal images: %w", err)
	}
	return journal, nil
}
