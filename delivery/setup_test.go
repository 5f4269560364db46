package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"luxefurnish/config"
	"luxefurnish/domain"
	"luxefurnish/middleware"
	"luxefurnish/repository"
	"luxefurnish/service"
	"luxefurnish/utils"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "0123456789abcdef0123456789abcdef"

var setupOnce sync.Once

type stubMailer struct {
	mu   sync.Mutex
	err  error
	sent int
}

func (m *stubMailer) SendEmail(ctx context.Context, to, subject, htmlBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent++
	return nil
}

type testServer struct {
	app     *gin.Engine
	jwt     *utils.JWTManager
	otpRepo domain.OTPRepository
	mailer  *stubMailer
	admin   string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	setupOnce.Do(func() {
		gin.SetMode(gin.TestMode)
		binding.EnableDecoderDisallowUnknownFields = true
		decimal.MarshalJSONWithoutQuotes = true
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			utils.RegisterCustomValidations(v, domain.OrderStatuses)
		}
	})

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, config.Migrate(db))

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	otpRepo := repository.NewOTPMemoryRepository()
	events := repository.NewNoopOrderPublisher()
	mailer := &stubMailer{}

	storage, err := repository.NewDiskStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	authService := service.NewAuthService(userRepo, testSecret, time.Hour, 10)
	jwt := authService.GetAccessTokenManager()

	app := gin.New()
	app.Use(config.BodyLimit(1 << 20))
	var limiter middleware.RateLimiter
	limit := middleware.RateLimiterConfig{RequestsPerWindow: 100, WindowDuration: time.Minute, KeyPrefix: "test"}

	NewHealthHandler(app)
	NewAuthHandler(app, authService, limiter, limit)
	NewProductHandler(app, service.NewProductService(productRepo), jwt)
	NewUserHandler(app, service.NewUserService(userRepo), jwt)
	NewOrderHandler(app, service.NewOrderService(orderRepo, productRepo, events),
		service.NewOTPService(otpRepo, orderRepo, mailer, events, time.Minute), jwt, limiter, limit)
	NewUploadHandler(app, service.NewUploadService(storage), jwt)

	admin, err := jwt.GenerateToken("00000000-0000-0000-0000-000000000001", domain.RoleAdmin)
	require.NoError(t, err)

	return &testServer{app: app, jwt: jwt, otpRepo: otpRepo, mailer: mailer, admin: admin}
}

func (s *testServer) customerToken(t *testing.T, userID string) string {
	t.Helper()
	token, err := s.jwt.GenerateToken(userID, domain.RoleCustomer)
	require.NoError(t, err)
	return token
}

// do sends body (a string is sent verbatim, anything else as JSON) and
// returns the recorder.
func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.app.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func (s *testServer) mustCreateProduct(t *testing.T, name string, price, stock int) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/products", s.admin, map[string]any{"name": name, "price": price, "stock": stock})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	res := decode[struct {
		Product domain.Product `json:"product"`
	}](t, w)
	return res.Product.ID
}
