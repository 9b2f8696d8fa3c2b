package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"quebrada-backend/internal/core/auth"
	"quebrada-backend/internal/domain"
	"quebrada-backend/internal/repo"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&domain.User{}))
	return db
}

func newAccountFixture(t *testing.T) *AccountService {
	t.Helper()
	jwter := &auth.JWTer{Secret: []byte("test"), Issuer: "test", TTL: time.Hour}
	return NewAccountService(repo.NewUserRepo(newTestDB(t)), jwter, zap.NewNop())
}

func TestRegisterHashesPassword(t *testing.T) {
	svc := newAccountFixture(t)

	u, err := svc.Register(RegisterInput{Name: "A", Email: "a@x.com", Password: "p"})
	require.NoError(t, err)
	assert.NotEqual(t, "p", u.PasswordHash)
	assert.Equal(t, auth.RoleUser, u.Role)
}

func TestRegisterDuplicateEmailKeepsFirstRecord(t *testing.T) {
	svc := newAccountFixture(t)

	first, err := svc.Register(RegisterInput{Name: "A", Email: "a@x.com", Password: "p"})
	require.NoError(t, err)

	_, err = svc.Register(RegisterInput{Name: "B", Email: "a@x.com", Password: "q"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, u, err := svc.Login("a@x.com", "p")
	require.NoError(t, err)
	assert.Equal(t, first.ID, u.ID)
	assert.Equal(t, "A", u.Name)
}

func TestLoginGenericFailure(t *testing.T) {
	svc := newAccountFixture(t)
	_, err := svc.Register(RegisterInput{Name: "A", Email: "a@x.com", Password: "p"})
	require.NoError(t, err)

	_, _, errUnknown := svc.Login("nobody@x.com", "p")
	_, _, errWrongPw := svc.Login("a@x.com", "wrong")

	// unknown user and bad password are indistinguishable to the caller
	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
}

func TestLoginIssuesTokenWithIdentity(t *testing.T) {
	jwter := &auth.JWTer{Secret: []byte("test"), Issuer: "test", TTL: time.Hour}
	svc := NewAccountService(repo.NewUserRepo(newTestDB(t)), jwter, zap.NewNop())

	u, err := svc.Register(RegisterInput{Name: "A", Email: "a@x.com", Password: "p", Role: auth.RoleAdmin})
	require.NoError(t, err)

	tok, _, err := svc.Login("a@x.com", "p")
	require.NoError(t, err)

	claims, err := jwter.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, auth.RoleAdmin, claims.Role)
}
