package reviewrequest

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"safelogist/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock request repository implementing the interface
type mockRequestRepo struct {
	mock.Mock
}

func (m *mockRequestRepo) Create(ctx context.Context, rq *domain.ReviewRequest) error {
	args := m.Called(ctx, rq)
	return args.Error(0)
}

func (m *mockRequestRepo) GetByID(ctx context.Context, id int64) (*domain.ReviewRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReviewRequest), args.Error(1)
}

func (m *mockRequestRepo) GetByUser(ctx context.Context, userID int64) ([]domain.ReviewRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReviewRequest), args.Error(1)
}

func (m *mockRequestRepo) GetByStatus(ctx context.Context, status domain.RequestStatus, limit, offset int) ([]domain.ReviewRequest, int64, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.ReviewRequest), args.Get(1).(int64), args.Error(2)
}

func (m *mockRequestRepo) TransitionStatus(ctx context.Context, id int64, from, to domain.RequestStatus, adminComment string) (bool, error) {
	args := m.Called(ctx, id, from, to, adminComment)
	return args.Bool(0), args.Error(1)
}

func (m *mockRequestRepo) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockUserReader struct {
	mock.Mock
}

func (m *mockUserReader) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type mockReviewWriter struct {
	mock.Mock
}

func (m *mockReviewWriter) Create(ctx context.Context, rv *domain.Review) error {
	args := m.Called(ctx, rv)
	return args.Error(0)
}

type mockCompanyStats struct {
	mock.Mock
}

func (m *mockCompanyStats) RecomputeStats(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

type mockAttachmentStore struct {
	mock.Mock
}

func (m *mockAttachmentStore) Save(r io.Reader, contentType, originalName string) (string, string, error) {
	args := m.Called(r, contentType, originalName)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *mockAttachmentStore) Remove(path string) {
	m.Called(path)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Notify(ctx context.Context, event string, fields map[string]any) bool {
	args := m.Called(ctx, event, fields)
	return args.Bool(0)
}

func newTestService() (*Service, *mockRequestRepo, *mockUserReader, *mockReviewWriter, *mockCompanyStats, *mockAttachmentStore, *mockNotifier) {
	requests := new(mockRequestRepo)
	users := new(mockUserReader)
	reviews := new(mockReviewWriter)
	companies := new(mockCompanyStats)
	files := new(mockAttachmentStore)
	notifs := new(mockNotifier)
	svc := NewService(requests, users, reviews, companies, files, notifs)
	return svc, requests, users, reviews, companies, files, notifs
}

func validInput() CreateRequestInput {
	return CreateRequestInput{
		TargetCompany: "ТрансЛогистик",
		Rating:        4,
		Comment:       strings.Repeat("груз доставлен вовремя ", 3),
	}
}

func TestService_Create_Success(t *testing.T) {
	svc, requests, users, _, _, _, notifs := newTestService()

	users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{
		ID:          7,
		CompanyName: "КаргоЭкспресс",
	}, nil)
	requests.On("Create", mock.Anything, mock.Anything).Return(nil)
	notifs.On("Notify", mock.Anything, mock.Anything, mock.Anything).Return(true)

	rq, err := svc.Create(context.Background(), 7, validInput(), nil)

	assert.NoError(t, err)
	assert.Equal(t, "КаргоЭкспресс", rq.FromCompany)
	assert.Equal(t, domain.StatusPending, rq.Status)
	requests.AssertExpectations(t)
}

func TestService_Create_MissingCompanyProfile(t *testing.T) {
	svc, _, users, _, _, _, _ := newTestService()

	users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7}, nil)

	_, err := svc.Create(context.Background(), 7, validInput(), nil)

	assert.ErrorIs(t, err, ErrMissingCompanyProfile)
}

func TestService_Create_CommentTooShort(t *testing.T) {
	svc, _, _, _, _, _, _ := newTestService()

	in := validInput()
	in.Comment = "коротко"
	_, err := svc.Create(context.Background(), 7, in, nil)

	assert.ErrorIs(t, err, ErrCommentTooShort)
}

func TestService_Create_AttachmentFailureAborts(t *testing.T) {
	svc, requests, users, _, _, files, _ := newTestService()

	users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{
		ID: 7, CompanyName: "КаргоЭкспресс",
	}, nil)
	files.On("Save", mock.Anything, "application/zip", "evidence.zip").
		Return("", "", assert.AnError)

	_, err := svc.Create(context.Background(), 7, validInput(), &AttachmentUpload{
		Body:        strings.NewReader("zip"),
		ContentType: "application/zip",
		FileName:    "evidence.zip",
	})

	assert.Error(t, err)
	requests.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Approve_PublishesReview(t *testing.T) {
	svc, requests, _, reviews, companies, _, notifs := newTestService()

	submittedAt := time.Date(2026, 3, 12, 10, 0, 0, 0, time.UTC)
	requests.On("GetByID", mock.Anything, int64(42)).Return(&domain.ReviewRequest{
		ID:            42,
		UserID:        7,
		FromCompany:   "КаргоЭкспресс",
		TargetCompany: "ТрансЛогистик",
		Rating:        4,
		Comment:       "всё хорошо, рекомендую как надёжного партнёра",
		Status:        domain.StatusPending,
		CreatedAt:     submittedAt,
	}, nil)
	requests.On("TransitionStatus", mock.Anything, int64(42), domain.StatusPending, domain.StatusApproved, "ok").
		Return(true, nil)
	reviews.On("Create", mock.Anything, mock.Anything).Return(nil)
	companies.On("RecomputeStats", mock.Anything, "ТрансЛогистик").Return(nil)
	notifs.On("Notify", mock.Anything, mock.Anything, mock.Anything).Return(true)

	rv, err := svc.Approve(context.Background(), 42, "ok")

	assert.NoError(t, err)
	assert.Equal(t, "USER-7-42", rv.ReviewID)
	assert.Equal(t, "ТрансЛогистик", rv.Subject)
	assert.Equal(t, "КаргоЭкспресс", rv.Reviewer)
	assert.Equal(t, domain.ReviewStatusPublished, rv.Status)
	assert.Equal(t, domain.SourceInternal, rv.Source)
	// review keeps the submission time, not the approval time
	assert.Equal(t, submittedAt, rv.ReviewDate)
	companies.AssertExpectations(t)
}

func TestService_Approve_NonPendingFails(t *testing.T) {
	svc, requests, _, reviews, _, _, _ := newTestService()

	requests.On("GetByID", mock.Anything, int64(42)).Return(&domain.ReviewRequest{
		ID:     42,
		Status: domain.StatusRejected,
	}, nil)
	requests.On("TransitionStatus", mock.Anything, int64(42), domain.StatusPending, domain.StatusApproved, "").
		Return(false, nil)

	_, err := svc.Approve(context.Background(), 42, "")

	assert.ErrorIs(t, err, ErrInvalidStateTransition)
	reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Approve_NotFound(t *testing.T) {
	svc, requests, _, _, _, _, _ := newTestService()

	requests.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Approve(context.Background(), 404, "")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Reject_NoSideEffects(t *testing.T) {
	svc, requests, _, reviews, companies, _, notifs := newTestService()

	requests.On("GetByID", mock.Anything, int64(42)).Return(&domain.ReviewRequest{
		ID:            42,
		TargetCompany: "ТрансЛогистик",
		Status:        domain.StatusPending,
	}, nil)
	requests.On("TransitionStatus", mock.Anything, int64(42), domain.StatusPending, domain.StatusRejected, "недостаточно документов").
		Return(true, nil)
	notifs.On("Notify", mock.Anything, mock.Anything, mock.Anything).Return(true)

	err := svc.Reject(context.Background(), 42, "недостаточно документов")

	assert.NoError(t, err)
	reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	companies.AssertNotCalled(t, "RecomputeStats", mock.Anything, mock.Anything)
}

func TestService_Delete_RemovesAttachment(t *testing.T) {
	svc, requests, _, _, _, files, _ := newTestService()

	requests.On("GetByID", mock.Anything, int64(42)).Return(&domain.ReviewRequest{
		ID:             42,
		Status:         domain.StatusApproved,
		AttachmentPath: "uploads/doc.pdf",
	}, nil)
	files.On("Remove", "uploads/doc.pdf").Return()
	requests.On("Delete", mock.Anything, int64(42)).Return(true, nil)

	err := svc.Delete(context.Background(), 42)

	assert.NoError(t, err)
	files.AssertExpectations(t)
}
