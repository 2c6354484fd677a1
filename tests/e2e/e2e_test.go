package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"safelogist/internal/database"
	"safelogist/internal/domain"
	"safelogist/internal/middleware"
	"safelogist/internal/modules/admin"
	"safelogist/internal/modules/attachment"
	"safelogist/internal/modules/auth"
	"safelogist/internal/modules/claim"
	"safelogist/internal/modules/company"
	"safelogist/internal/modules/landing"
	"safelogist/internal/modules/review"
	"safelogist/internal/modules/reviewrequest"
	"safelogist/internal/modules/sitemap"
	"safelogist/internal/notify"
	jwtsvc "safelogist/internal/pkg/jwt"
	"safelogist/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type testSuite struct {
	router *gin.Engine
	db     *gorm.DB
	jwt    *jwtsvc.Service
}

type apiResponse struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data,omitempty"`
	Error   *errorDetail   `json:"error,omitempty"`
	Message string         `json:"message,omitempty"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func setupSuite(t *testing.T) *testSuite {
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Company{},
		&domain.Review{},
		&domain.ReviewRequest{},
		&domain.CompanyClaim{},
		&domain.LandingBlock{},
	))

	userRepo := repository.NewUserRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	requestRepo := repository.NewReviewRequestRepository(db)
	claimRepo := repository.NewClaimRepository(db)
	landingRepo := repository.NewLandingRepository(db)

	j := jwtsvc.New("test-secret", time.Hour)
	files := attachment.NewService(t.TempDir())
	notifier := notify.NewTelegramNotifier("", "", zap.NewNop().Sugar())

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	requestHandler := reviewrequest.NewHandler(reviewrequest.NewService(requestRepo, userRepo, reviewRepo, companyRepo, files, notifier))
	claimHandler := claim.NewHandler(claim.NewService(claimRepo, userRepo, companyRepo, reviewRepo, files, notifier))
	companyHandler := company.NewHandler(company.NewService(companyRepo))
	reviewHandler := review.NewHandler(review.NewService(reviewRepo))
	adminHandler := admin.NewHandler(admin.NewService(userRepo))
	landingHandler := landing.NewHandler(landing.NewService(landingRepo))
	sitemapHandler := sitemap.NewHandler(sitemap.NewService(companyRepo, "https://safelogist.net"))

	r := gin.New()
	sitemapHandler.RegisterRoutes(r)

	v1 := r.Group("/api/v1")
	authHandler.RegisterPublicRoutes(v1)
	reviewHandler.RegisterRoutes(v1)
	landingHandler.RegisterPublicRoutes(v1)

	protected := v1.Group("/")
	protected.Use(middleware.Auth(j))

	adminGroup := protected.Group("/admin")
	adminGroup.Use(middleware.AdminOnly())

	authHandler.RegisterProtectedRoutes(protected)
	companyHandler.RegisterRoutes(v1, protected)
	requestHandler.RegisterRoutes(protected, adminGroup)
	claimHandler.RegisterRoutes(v1, adminGroup)
	adminHandler.RegisterRoutes(adminGroup)
	landingHandler.RegisterAdminRoutes(adminGroup)

	return &testSuite{router: r, db: db, jwt: j}
}

func (s *testSuite) createUser(t *testing.T, email, companyName string, role domain.UserRole) (*domain.User, string) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	u := &domain.User{
		Email:        email,
		Phone:        fmt.Sprintf("+7%010d", time.Now().UnixNano()%10000000000),
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
		CompanyName:  companyName,
	}
	require.NoError(t, s.db.Create(u).Error)

	token, err := s.jwt.GenerateToken(u.ID, string(u.Role))
	require.NoError(t, err)
	return u, token
}

func (s *testSuite) do(t *testing.T, method, path, token string, body io.Reader, contentType string) (*httptest.ResponseRecorder, apiResponse) {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var resp apiResponse
	if w.Body.Len() > 0 && strings.Contains(w.Header().Get("Content-Type"), "json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func (s *testSuite) doJSON(t *testing.T, method, path, token string, payload any) (*httptest.ResponseRecorder, apiResponse) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	return s.do(t, method, path, token, body, "application/json")
}

func multipartForm(t *testing.T, fields map[string]string, fileField, fileName, fileType, fileBody string) (*bytes.Buffer, string) {
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileField != "" {
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, fileField, fileName))
		hdr.Set("Content-Type", fileType)
		part, err := mw.CreatePart(hdr)
		require.NoError(t, err)
		_, err = part.Write([]byte(fileBody))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

const longComment = "Перевозка выполнена в срок, документы оформлены правильно, рекомендуем."

func TestRegisterAndLogin(t *testing.T) {
	s := setupSuite(t)

	w, resp := s.doJSON(t, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"email":        "new@cargoexpress.ru",
		"password":     "password123",
		"phone":        "+79001112233",
		"role":         "shipper",
		"company_name": "КаргоЭкспресс",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Data["token"])

	w, resp = s.doJSON(t, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"email":    "new@cargoexpress.ru",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, resp.Data["token"])

	// duplicate email
	w, resp = s.doJSON(t, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"email":    "new@cargoexpress.ru",
		"password": "password123",
		"phone":    "+79001112299",
		"role":     "carrier",
	})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "EMAIL_EXISTS", resp.Error.Code)
}

func TestReviewRequestModeration(t *testing.T) {
	s := setupSuite(t)

	_, userToken := s.createUser(t, "user@cargoexpress.ru", "КаргоЭкспресс", domain.RoleShipper)
	_, adminToken := s.createUser(t, "admin@safelogist.net", "", domain.RoleAdmin)

	body, ct := multipartForm(t, map[string]string{
		"target_company": "ТрансЛогистик",
		"rating":         "4",
		"comment":        longComment,
	}, "attachment", "proof.pdf", "application/pdf", "%PDF-1.7 data")

	w, resp := s.do(t, http.MethodPost, "/api/v1/requests", userToken, body, ct)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	requestID := int64(resp.Data["id"].(float64))

	// approve publishes the review
	w, resp = s.doJSON(t, http.MethodPost, fmt.Sprintf("/api/v1/admin/requests/%d/approve", requestID), adminToken, map[string]any{"admin_comment": "ok"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	reviewID := resp.Data["review_id"].(string)
	assert.True(t, strings.HasPrefix(reviewID, "USER-"))
	assert.Equal(t, "published", resp.Data["status"])
	assert.Equal(t, "SafeLogist", resp.Data["source"])

	// company stats derived from the published review
	var c domain.Company
	require.NoError(t, s.db.Where("name = ?", "ТрансЛогистик").First(&c).Error)
	assert.Equal(t, int64(1), c.ReviewsCount)

	// double approval is a state conflict
	w, resp = s.doJSON(t, http.MethodPost, fmt.Sprintf("/api/v1/admin/requests/%d/approve", requestID), adminToken, nil)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "INVALID_STATE", resp.Error.Code)

	// only one review exists
	var count int64
	require.NoError(t, s.db.Model(&domain.Review{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// deleting the approved request keeps the review
	w, _ = s.doJSON(t, http.MethodDelete, fmt.Sprintf("/api/v1/admin/requests/%d", requestID), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, s.db.Model(&domain.Review{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestReviewRequestRequiresCompanyProfile(t *testing.T) {
	s := setupSuite(t)

	_, token := s.createUser(t, "empty@example.com", "", domain.RoleCarrier)

	body, ct := multipartForm(t, map[string]string{
		"target_company": "ТрансЛогистик",
		"rating":         "5",
		"comment":        longComment,
	}, "", "", "", "")

	w, resp := s.do(t, http.MethodPost, "/api/v1/requests", token, body, ct)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "MISSING_COMPANY_PROFILE", resp.Error.Code)
}

func TestReviewRequestRejectsBadAttachment(t *testing.T) {
	s := setupSuite(t)

	_, token := s.createUser(t, "user2@cargoexpress.ru", "КаргоЭкспресс", domain.RoleShipper)

	body, ct := multipartForm(t, map[string]string{
		"target_company": "ТрансЛогистик",
		"rating":         "4",
		"comment":        longComment,
	}, "attachment", "malware.exe", "application/x-msdownload", "MZ")

	w, resp := s.do(t, http.MethodPost, "/api/v1/requests", token, body, ct)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_FILE_TYPE", resp.Error.Code)
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	s := setupSuite(t)

	_, userToken := s.createUser(t, "plain@example.com", "Компания", domain.RoleShipper)

	w, _ := s.doJSON(t, http.MethodGet, "/api/v1/admin/requests", userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = s.doJSON(t, http.MethodGet, "/api/v1/admin/requests", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestClaimApprovalFlow(t *testing.T) {
	s := setupSuite(t)

	_, adminToken := s.createUser(t, "admin2@safelogist.net", "", domain.RoleAdmin)

	// published review brings the company into the catalog with registry data
	require.NoError(t, s.db.Create(&domain.Review{
		Subject:    "БелТрансСервис",
		ReviewID:   "IMP-1",
		Rating:     4,
		Status:     domain.ReviewStatusPublished,
		ReviewDate: time.Now(),
		Source:     "import",
		LegalForm:  "ООО",
		TaxID:      "191234567",
	}).Error)

	body, ct := multipartForm(t, map[string]string{
		"full_name":    "Сидоров Пётр",
		"phone":        "+375291234567",
		"position":     "директор",
		"email":        "sidorov@beltrans.by",
		"company_name": "БелТрансСервис",
	}, "document", "ustav.pdf", "application/pdf", "%PDF-доказательство")

	w, resp := s.do(t, http.MethodPost, "/api/v1/claims", "", body, ct)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	claimID := int64(resp.Data["id"].(float64))

	w, resp = s.doJSON(t, http.MethodPost, fmt.Sprintf("/api/v1/admin/claims/%d/approve", claimID), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, true, resp.Data["is_verified"])
	assert.Equal(t, "ООО", resp.Data["legal_form"])

	// the claimant got a provisioned account
	var u domain.User
	require.NoError(t, s.db.Where("email = ?", "sidorov@beltrans.by").First(&u).Error)
	assert.Equal(t, "БелТрансСервис", u.CompanyName)
	assert.True(t, u.IsActive)
	assert.NotEmpty(t, u.PasswordHash)

	// approving the same claim again conflicts
	w, resp = s.doJSON(t, http.MethodPost, fmt.Sprintf("/api/v1/admin/claims/%d/approve", claimID), adminToken, nil)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "ALREADY_APPROVED", resp.Error.Code)
}

func TestClaimOwnershipConflict(t *testing.T) {
	s := setupSuite(t)

	_, adminToken := s.createUser(t, "admin3@safelogist.net", "", domain.RoleAdmin)
	owner, _ := s.createUser(t, "owner@translog.ru", "ТрансЛогистик", domain.RoleCarrier)

	require.NoError(t, s.db.Create(&domain.Company{
		Name:        "ТрансЛогистик",
		OwnerUserID: &owner.ID,
		IsVerified:  true,
	}).Error)

	body, ct := multipartForm(t, map[string]string{
		"full_name":    "Самозванец Иван",
		"phone":        "+79005556677",
		"email":        "fake@example.com",
		"company_name": "ТрансЛогистик",
	}, "document", "doc.pdf", "application/pdf", "%PDF-")

	w, resp := s.do(t, http.MethodPost, "/api/v1/claims", "", body, ct)
	require.Equal(t, http.StatusCreated, w.Code)
	claimID := int64(resp.Data["id"].(float64))

	w, resp = s.doJSON(t, http.MethodPost, fmt.Sprintf("/api/v1/admin/claims/%d/approve", claimID), adminToken, nil)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "OWNERSHIP_CONFLICT", resp.Error.Code)

	// claim stays pending for manual follow-up
	var cl domain.CompanyClaim
	require.NoError(t, s.db.First(&cl, claimID).Error)
	assert.Equal(t, domain.StatusPending, cl.Status)
}

func TestPublicReviewListingAndCompanyCard(t *testing.T) {
	s := setupSuite(t)

	for i := 1; i <= 3; i++ {
		require.NoError(t, s.db.Create(&domain.Review{
			Subject:    "КаргоЭкспресс",
			ReviewID:   fmt.Sprintf("IMP-%d", i),
			Rating:     3 + i%2,
			Status:     domain.ReviewStatusPublished,
			ReviewDate: time.Now(),
			Source:     "import",
		}).Error)
	}
	require.NoError(t, repository.NewCompanyRepository(s.db).RecomputeStats(context.Background(), "КаргоЭкспресс"))

	w, resp := s.doJSON(t, http.MethodGet, "/api/v1/reviews?company=КаргоЭкспресс", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(3), resp.Data["total"])

	var c domain.Company
	require.NoError(t, s.db.Where("name = ?", "КаргоЭкспресс").First(&c).Error)

	w, resp = s.doJSON(t, http.MethodGet, fmt.Sprintf("/api/v1/companies/%d", c.MinReviewID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "КаргоЭкспресс", resp.Data["name"])
	assert.Equal(t, float64(3), resp.Data["reviews_count"])
}

func TestSitemap(t *testing.T) {
	s := setupSuite(t)

	require.NoError(t, s.db.Create(&domain.Review{
		Subject: "ТрансЛогистик", ReviewID: "IMP-9", Rating: 5,
		Status: domain.ReviewStatusPublished, ReviewDate: time.Now(), Source: "import",
	}).Error)
	require.NoError(t, repository.NewCompanyRepository(s.db).RecomputeStats(context.Background(), "ТрансЛогистик"))

	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "xml")
	assert.Contains(t, w.Body.String(), "safelogist.net/company/")
}

func TestLandingCMS(t *testing.T) {
	s := setupSuite(t)

	_, adminToken := s.createUser(t, "admin4@safelogist.net", "", domain.RoleAdmin)

	w, resp := s.doJSON(t, http.MethodPost, "/api/v1/admin/landing", adminToken, map[string]any{
		"slug":         "hero",
		"title":        "Проверяйте контрагентов",
		"body":         "до сделки",
		"position":     1,
		"is_published": true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// draft block stays invisible publicly
	w, _ = s.doJSON(t, http.MethodPost, "/api/v1/admin/landing", adminToken, map[string]any{
		"slug":  "draft",
		"title": "Черновик",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, resp = s.doJSON(t, http.MethodGet, "/api/v1/landing", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	blocks := resp.Data["blocks"].([]any)
	assert.Len(t, blocks, 1)

	// duplicate slug conflicts
	w, resp = s.doJSON(t, http.MethodPost, "/api/v1/admin/landing", adminToken, map[string]any{
		"slug":  "hero",
		"title": "Дубль",
	})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "SLUG_EXISTS", resp.Error.Code)
}
