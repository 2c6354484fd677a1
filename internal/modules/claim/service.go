package claim

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"safelogist/internal/domain"
	"safelogist/internal/notify"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct {
	claims    ClaimRepository
	users     UserStore
	companies CompanyStore
	reviews   ReviewReader
	files     AttachmentStore
	notifs    NotificationSender
}

func NewService(
	claims ClaimRepository,
	users UserStore,
	companies CompanyStore,
	reviews ReviewReader,
	files AttachmentStore,
	notifs NotificationSender,
) *Service {
	return &Service{
		claims:    claims,
		users:     users,
		companies: companies,
		reviews:   reviews,
		files:     files,
		notifs:    notifs,
	}
}

// Create validates and stores the ownership document, then persists a pending
// claim. The claimant does not need an account: identity lives on the claim
// itself until approval.
func (s *Service) Create(ctx context.Context, in CreateClaimInput, doc *DocumentUpload) (*domain.CompanyClaim, error) {
	if strings.TrimSpace(in.FullName) == "" ||
		strings.TrimSpace(in.Email) == "" ||
		strings.TrimSpace(in.Phone) == "" ||
		strings.TrimSpace(in.CompanyName) == "" {
		return nil, ErrInvalidRequest
	}
	if doc == nil {
		return nil, ErrMissingDocument
	}

	path, name, err := s.files.Save(doc.Body, doc.ContentType, doc.FileName)
	if err != nil {
		return nil, err
	}

	cl := &domain.CompanyClaim{
		FullName:     strings.TrimSpace(in.FullName),
		Phone:        strings.TrimSpace(in.Phone),
		Position:     strings.TrimSpace(in.Position),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		CompanyName:  strings.TrimSpace(in.CompanyName),
		DocumentPath: path,
		DocumentName: name,
		Status:       domain.StatusPending,
	}

	if err := s.claims.Create(ctx, cl); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		s.notifs.Notify(ctx, notify.EventClaimCreated, map[string]any{
			"claim_id":     cl.ID,
			"company_name": cl.CompanyName,
			"email":        cl.Email,
		})
	}

	return cl, nil
}

// Approve confirms ownership of a company. Heaviest operation in the system:
// it may provision a user account for the claimant, it links the company
// profile to that user and marks it verified, and it copies registry fields
// from the earliest review once. A company can have at most one confirmed
// owner; a claim against an already-owned company fails and stays pending for
// manual follow-up.
func (s *Service) Approve(ctx context.Context, claimID int64) (*domain.Company, error) {
	cl, err := s.claims.GetByID(ctx, claimID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	switch cl.Status {
	case domain.StatusApproved:
		return nil, ErrAlreadyApproved
	case domain.StatusRejected:
		return nil, ErrInvalidStateTransition
	}

	user, err := s.resolveUser(ctx, cl)
	if err != nil {
		return nil, err
	}

	company, err := s.attachOwner(ctx, cl, user)
	if err != nil {
		return nil, err
	}

	ok, err := s.claims.TransitionStatus(ctx, cl.ID, domain.StatusPending, domain.StatusApproved, "", "")
	if err != nil {
		return nil, err
	}
	if !ok {
		// a concurrent approval won the conditional update
		return nil, ErrAlreadyApproved
	}

	if s.notifs != nil {
		s.notifs.Notify(ctx, notify.EventClaimApproved, map[string]any{
			"claim_id":     cl.ID,
			"company_name": company.Name,
			"owner_id":     user.ID,
		})
	}

	return company, nil
}

// resolveUser finds the claimant by email or provisions a fresh account with
// a random password. Credentials reach the claimant out of band; the password
// is never shown anywhere.
func (s *Service) resolveUser(ctx context.Context, cl *domain.CompanyClaim) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, cl.Email)
	if err == nil {
		if user.CompanyName == "" {
			user.CompanyName = cl.CompanyName
			if err := s.users.Update(ctx, user); err != nil {
				return nil, err
			}
		}
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	pw, err := randomPassword()
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user = &domain.User{
		Email:        cl.Email,
		Phone:        cl.Phone,
		PasswordHash: string(hash),
		Role:         domain.RoleShipper,
		IsActive:     true,
		CompanyName:  cl.CompanyName,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// attachOwner links the company profile to the resolved user, creating the
// profile when none exists yet.
func (s *Service) attachOwner(ctx context.Context, cl *domain.CompanyClaim, user *domain.User) (*domain.Company, error) {
	company, err := s.companies.GetByName(ctx, cl.CompanyName)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		company = &domain.Company{Name: cl.CompanyName}
	}

	if company.OwnerUserID != nil && *company.OwnerUserID != user.ID {
		return nil, ErrOwnershipConflict
	}

	company.OwnerUserID = &user.ID
	company.IsVerified = true
	s.enrichFromReview(ctx, company)

	if err := s.companies.Save(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// enrichFromReview copies registry-derived fields from the earliest review
// for the company name. One-time enrichment, not an ongoing sync: fields
// already present on the profile are left alone.
func (s *Service) enrichFromReview(ctx context.Context, company *domain.Company) {
	rv, err := s.reviews.EarliestBySubject(ctx, company.Name)
	if err != nil {
		return
	}
	if company.LegalForm == "" {
		company.LegalForm = rv.LegalForm
	}
	if company.TaxID == "" {
		company.TaxID = rv.TaxID
	}
	if company.RegistrationID == "" {
		company.RegistrationID = rv.RegistrationID
	}
	if company.Jurisdiction == "" {
		company.Jurisdiction = rv.Jurisdiction
	}
	if company.LegalAddress == "" {
		company.LegalAddress = rv.LegalAddress
	}
}

// Reject marks a pending claim rejected with the moderator's reason.
func (s *Service) Reject(ctx context.Context, claimID int64, in RejectInput) error {
	cl, err := s.claims.GetByID(ctx, claimID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	ok, err := s.claims.TransitionStatus(ctx, cl.ID, domain.StatusPending, domain.StatusRejected, in.AdminComment, in.RejectReason)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidStateTransition
	}

	if s.notifs != nil {
		s.notifs.Notify(ctx, notify.EventClaimRejected, map[string]any{
			"claim_id":     cl.ID,
			"company_name": cl.CompanyName,
		})
	}

	return nil
}

// Delete removes a claim in any status. The document file is cleaned up
// best-effort; a company profile created by an earlier approval stays.
func (s *Service) Delete(ctx context.Context, claimID int64) error {
	cl, err := s.claims.GetByID(ctx, claimID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	s.files.Remove(cl.DocumentPath)

	ok, err := s.claims.Delete(ctx, cl.ID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, claimID int64) (*domain.CompanyClaim, error) {
	cl, err := s.claims.GetByID(ctx, claimID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return cl, nil
}

func (s *Service) ListPending(ctx context.Context, page, limit int) ([]domain.CompanyClaim, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit
	return s.claims.GetByStatus(ctx, domain.StatusPending, limit, offset)
}

func randomPassword() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate password: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
