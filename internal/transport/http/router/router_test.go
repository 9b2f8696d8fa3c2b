package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"quebrada-backend/internal/core/auth"
	"quebrada-backend/internal/core/config"
	"quebrada-backend/internal/domain"
	"quebrada-backend/internal/repo"
	"quebrada-backend/pkg/utils"
)

func init() { gin.SetMode(gin.TestMode) }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&domain.User{}, &domain.Product{}, &domain.Category{},
		&domain.ContactMessage{}, &domain.Task{},
	))
	return db
}

func newTestJWT() *auth.JWTer {
	return &auth.JWTer{Secret: []byte("test-secret"), Issuer: "quebrada", TTL: time.Hour}
}

// memCarts is an in-process stand-in for the redis cart store.
type memCarts struct {
	mu    sync.Mutex
	items map[string][]domain.CartItem
}

func newMemCarts() *memCarts { return &memCarts{items: map[string][]domain.CartItem{}} }

func (m *memCarts) Get(_ context.Context, cartID string) ([]domain.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.CartItem, len(m.items[cartID]))
	copy(out, m.items[cartID])
	return out, nil
}

func (m *memCarts) Save(_ context.Context, cartID string, items []domain.CartItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]domain.CartItem, len(items))
	copy(cp, items)
	m.items[cartID] = cp
	return nil
}

func (m *memCarts) Delete(_ context.Context, cartID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, cartID)
	return nil
}

func seedUser(t *testing.T, db *gorm.DB, email, password, role string) *domain.User {
	t.Helper()
	u := &domain.User{
		ID:           utils.NewID(),
		Email:        email,
		Name:         "Test " + role,
		PasswordHash: utils.HashPassword(password),
		Role:         role,
	}
	require.NoError(t, repo.NewUserRepo(db).Create(u))
	return u
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int, featured bool) *domain.Product {
	t.Helper()
	p := &domain.Product{
		ID:       utils.NewID(),
		Name:     name,
		Price:    price,
		Category: "drinks",
		Stock:    stock,
		Featured: featured,
	}
	require.NoError(t, repo.NewProductRepo(db).Create(p))
	return p
}

func tokenFor(t *testing.T, j *auth.JWTer, u *domain.User) string {
	t.Helper()
	tok, err := j.Issue(u.ID, u.Email, u.Role)
	require.NoError(t, err)
	return tok
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}

func newAPI(t *testing.T) (*gin.Engine, *gorm.DB, *auth.JWTer, *memCarts) {
	t.Helper()
	db := newTestDB(t)
	j := newTestJWT()
	carts := newMemCarts()
	e := NewAPIEngine(APIDeps{
		Log:   zap.NewNop(),
		DB:    db,
		JWT:   j,
		Carts: carts,
		Store: config.Store{Name: "Quebrada 1914", WhatsApp: "5511999999999"},
	})
	return e, db, j, carts
}

func newAdmin(t *testing.T) (*gin.Engine, *gorm.DB, *auth.JWTer) {
	t.Helper()
	db := newTestDB(t)
	j := newTestJWT()
	e := NewAdminEngine(AdminDeps{Log: zap.NewNop(), DB: db, JWT: j})
	return e, db, j
}
