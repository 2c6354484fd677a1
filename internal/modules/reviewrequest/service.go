package reviewrequest

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"safelogist/internal/domain"
	"safelogist/internal/notify"

	"gorm.io/gorm"
)

// MinCommentLength is the minimum review text length accepted for moderation.
const MinCommentLength = 30

type Service struct {
	requests  RequestRepository
	users     UserReader
	reviews   ReviewWriter
	companies CompanyStats
	files     AttachmentStore
	notifs    NotificationSender
}

func NewService(
	requests RequestRepository,
	users UserReader,
	reviews ReviewWriter,
	companies CompanyStats,
	files AttachmentStore,
	notifs NotificationSender,
) *Service {
	return &Service{
		requests:  requests,
		users:     users,
		reviews:   reviews,
		companies: companies,
		files:     files,
		notifs:    notifs,
	}
}

// Create validates and persists a new pending review request. The author's
// company name is snapshotted into the request: later profile edits do not
// change what an already submitted request says. An attachment failure aborts
// the whole operation — no partial request is created.
func (s *Service) Create(ctx context.Context, userID int64, in CreateRequestInput, att *AttachmentUpload) (*domain.ReviewRequest, error) {
	if userID <= 0 || strings.TrimSpace(in.TargetCompany) == "" || in.Rating < 1 || in.Rating > 5 {
		return nil, ErrInvalidRequest
	}
	if len(strings.TrimSpace(in.Comment)) < MinCommentLength {
		return nil, ErrCommentTooShort
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if strings.TrimSpace(user.CompanyName) == "" {
		return nil, ErrMissingCompanyProfile
	}

	rq := &domain.ReviewRequest{
		UserID:        user.ID,
		FromCompany:   user.CompanyName,
		TargetCompany: strings.TrimSpace(in.TargetCompany),
		Rating:        in.Rating,
		Comment:       strings.TrimSpace(in.Comment),
		Status:        domain.StatusPending,
	}

	if att != nil {
		path, name, err := s.files.Save(att.Body, att.ContentType, att.FileName)
		if err != nil {
			return nil, err
		}
		rq.AttachmentPath = path
		rq.AttachmentName = name
	}

	if err := s.requests.Create(ctx, rq); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		s.notifs.Notify(ctx, notify.EventReviewRequestCreated, map[string]any{
			"request_id":     rq.ID,
			"from_company":   rq.FromCompany,
			"target_company": rq.TargetCompany,
			"rating":         rq.Rating,
		})
	}

	return rq, nil
}

// Approve moves a pending request to approved and publishes the review.
// The pending→approved transition is a conditional update: when two approvals
// race, exactly one wins and creates the review, the other gets
// ErrInvalidStateTransition. The published review keeps the original
// submission time as its review date.
func (s *Service) Approve(ctx context.Context, requestID int64, adminComment string) (*domain.Review, error) {
	rq, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	ok, err := s.requests.TransitionStatus(ctx, rq.ID, domain.StatusPending, domain.StatusApproved, adminComment)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidStateTransition
	}

	rv := &domain.Review{
		Subject:    rq.TargetCompany,
		ReviewID:   fmt.Sprintf("USER-%d-%d", rq.UserID, rq.ID),
		Comment:    rq.Comment,
		Reviewer:   rq.FromCompany,
		Rating:     rq.Rating,
		Status:     domain.ReviewStatusPublished,
		ReviewDate: rq.CreatedAt,
		Source:     domain.SourceInternal,
	}
	if err := s.reviews.Create(ctx, rv); err != nil {
		return nil, err
	}

	if err := s.companies.RecomputeStats(ctx, rq.TargetCompany); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		s.notifs.Notify(ctx, notify.EventReviewRequestApproved, map[string]any{
			"request_id":     rq.ID,
			"review_id":      rv.ReviewID,
			"target_company": rq.TargetCompany,
		})
	}

	return rv, nil
}

// Reject marks a pending request rejected. No review is ever created and
// company aggregates are untouched; rejection is terminal.
func (s *Service) Reject(ctx context.Context, requestID int64, adminComment string) error {
	rq, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	ok, err := s.requests.TransitionStatus(ctx, rq.ID, domain.StatusPending, domain.StatusRejected, adminComment)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidStateTransition
	}

	if s.notifs != nil {
		s.notifs.Notify(ctx, notify.EventReviewRequestRejected, map[string]any{
			"request_id":     rq.ID,
			"target_company": rq.TargetCompany,
		})
	}

	return nil
}

// Delete removes a request in any status. The attachment cleanup is
// best-effort and a review already published from this request stays —
// the two records are decoupled once the review exists.
func (s *Service) Delete(ctx context.Context, requestID int64) error {
	rq, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	s.files.Remove(rq.AttachmentPath)

	ok, err := s.requests.Delete(ctx, rq.ID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, requestID int64) (*domain.ReviewRequest, error) {
	rq, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rq, nil
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]domain.ReviewRequest, error) {
	if userID <= 0 {
		return nil, ErrInvalidRequest
	}
	return s.requests.GetByUser(ctx, userID)
}

func (s *Service) ListPending(ctx context.Context, page, limit int) ([]domain.ReviewRequest, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit
	return s.requests.GetByStatus(ctx, domain.StatusPending, limit, offset)
}
