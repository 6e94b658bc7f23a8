package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"testing"
	"time"

	"fitness_tracker/internal/apperr"
	"fitness_tracker/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

const (
	testSigningKey = "test-signing-key"
	testAdminEmail = "admin@fit.io"
)

func newTestAuth(users *memUsers) *AuthService {
	return NewAuthService(users, testSigningKey, time.Hour, []string{testAdminEmail})
}

// --- SignUp tests ---

func TestAuthService_SignUp_SuccessHashesPassword(t *testing.T) {
	users := newMemUsers()
	svc := newTestAuth(users)

	id, err := svc.SignUp(context.Background(), SignUpInput{Email: " Alice@Example.com ", Nickname: "alice", Password: "s3cr3tpass"})
	if err != nil {
		t.Fatalf("SignUp returned error: %v", err)
	}
	if id != 1 {
		t.Fatalf("expected id 1, got %d", id)
	}

	u, _ := users.GetByID(context.Background(), id)
	if u.Email != "alice@example.com" {
		t.Errorf("expected normalized email, got %q", u.Email)
	}
	if u.Role != models.RoleUser || u.Provider != models.ProviderLocal {
		t.Errorf("unexpected role/provider: %q/%q", u.Role, u.Provider)
	}
	if u.PasswordHash == "s3cr3tpass" {
		t.Errorf("expected hashed password not equal to raw password")
	}
	if err := verifyPassword(u.PasswordHash, "s3cr3tpass"); err != nil {
		t.Errorf("stored hash does not verify with original password: %v", err)
	}
}

func TestAuthService_SignUp_Validation(t *testing.T) {
	svc := newTestAuth(newMemUsers())

	tests := []struct {
		name string
		in   SignUpInput
	}{
		{"empty password", SignUpInput{Email: "a@b.c", Nickname: "a", Password: "   "}},
		{"short password", SignUpInput{Email: "a@b.c", Nickname: "a", Password: "short"}},
		{"bad email", SignUpInput{Email: "not-an-email", Nickname: "a", Password: "longenough"}},
		{"empty nickname", SignUpInput{Email: "a@b.c", Nickname: " ", Password: "longenough"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SignUp(context.Background(), tt.in)
			if !errors.Is(err, apperr.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestAuthService_SignUp_Conflicts(t *testing.T) {
	users := newMemUsers()
	svc := newTestAuth(users)
	ctx := context.Background()

	if _, err := svc.SignUp(ctx, SignUpInput{Email: "a@b.c", Nickname: "alice", Password: "longenough"}); err != nil {
		t.Fatalf("seed SignUp: %v", err)
	}

	_, err := svc.SignUp(ctx, SignUpInput{Email: "A@B.C", Nickname: "other", Password: "longenough"})
	if !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected conflict on email, got %v", err)
	}
	_, err = svc.SignUp(ctx, SignUpInput{Email: "x@y.z", Nickname: "alice", Password: "longenough"})
	if !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected conflict on nickname, got %v", err)
	}
}

func TestAuthService_SignUp_RepoError(t *testing.T) {
	users := newMemUsers()
	users.err = errors.New("db down")
	svc := newTestAuth(users)

	_, err := svc.SignUp(context.Background(), SignUpInput{Email: "c@d.e", Nickname: "carl", Password: "pass12345"})
	if err == nil {
		t.Fatalf("expected repo error, got nil")
	}
	if apperr.GetCode(err) != apperr.CodeInternal {
		t.Fatalf("expected internal code, got %s", apperr.GetCode(err))
	}
}

// --- GenerateToken tests ---

func TestAuthService_GenerateToken_Success(t *testing.T) {
	users := newMemUsers()
	svc := newTestAuth(users)
	ctx := context.Background()
	id, err := svc.SignUp(ctx, SignUpInput{Email: "diana@x.io", Nickname: "diana", Password: "letmein123"})
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	token, err := svc.GenerateToken(ctx, "diana@x.io", "letmein123")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	ident, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if ident.UserID != id || ident.Role != models.RoleUser {
		t.Fatalf("unexpected identity %+v", ident)
	}
}

func TestAuthService_AdminEmails(t *testing.T) {
	users := newMemUsers()
	svc := newTestAuth(users)
	ctx := context.Background()

	id, err := svc.SignUp(ctx, SignUpInput{Email: "Admin@Fit.io", Nickname: "boss", Password: "adminpass"})
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	u, _ := users.GetByID(ctx, id)
	if u.Role != models.RoleAdmin {
		t.Fatalf("listed e-mail should sign up as admin, got %q", u.Role)
	}

	// an account created before the e-mail was listed is promoted on sign-in
	hash, _ := hashPassword("latecomer1")
	lateID, _ := users.Create(ctx, models.User{Email: "late@fit.io", Nickname: "late", Provider: models.ProviderLocal, ProviderID: "late@fit.io", PasswordHash: hash, Role: models.RoleUser})
	promoting := NewAuthService(users, testSigningKey, time.Hour, []string{" LATE@fit.io "})
	token, err := promoting.GenerateToken(ctx, "late@fit.io", "latecomer1")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	ident, err := promoting.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if ident.UserID != lateID || ident.Role != models.RoleAdmin {
		t.Fatalf("expected promoted admin identity, got %+v", ident)
	}
	if late, _ := users.GetByID(ctx, lateID); late.Role != models.RoleAdmin {
		t.Fatalf("promotion should be stored, got %q", late.Role)
	}

	// unlisted accounts stay regular users
	if _, err := svc.SignUp(ctx, SignUpInput{Email: "joe@fit.io", Nickname: "joe", Password: "joepass12"}); err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	token, _ = svc.GenerateToken(ctx, "joe@fit.io", "joepass12")
	if ident, _ := svc.ParseToken(token); ident.Role != models.RoleUser {
		t.Fatalf("expected user role, got %+v", ident)
	}
}

func TestAuthService_GenerateToken_Unauthorized(t *testing.T) {
	users := newMemUsers()
	svc := newTestAuth(users)
	ctx := context.Background()
	if _, err := svc.SignUp(ctx, SignUpInput{Email: "eve@x.io", Nickname: "eve", Password: "correct123"}); err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	// oauth users have no password
	_, _ = users.Create(ctx, models.User{Email: "g@x.io", Nickname: "g", Provider: "google", ProviderID: "1", Role: models.RoleUser})

	for _, tc := range []struct{ email, pw string }{
		{"ghost@x.io", "whatever1"},
		{"eve@x.io", "wrong-password"},
		{"g@x.io", ""},
	} {
		_, err := svc.GenerateToken(ctx, tc.email, tc.pw)
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("%s: expected ErrInvalidCredentials, got %v", tc.email, err)
		}
		if !errors.Is(err, apperr.ErrUnauthorized) {
			t.Fatalf("%s: expected unauthorized code, got %v", tc.email, err)
		}
	}
}

func TestAuthService_GenerateToken_RepoError(t *testing.T) {
	users := newMemUsers()
	users.err = errors.New("query failed")
	svc := newTestAuth(users)

	_, err := svc.GenerateToken(context.Background(), "john@x.io", "pw")
	if err == nil {
		t.Fatalf("expected repo error, got nil")
	}
}

// --- ParseToken tests ---

func TestAuthService_ParseToken_Success(t *testing.T) {
	svc := newTestAuth(newMemUsers())
	token, err := svc.IssueToken(99, models.RoleAdmin)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	ident, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken returned error: %v", err)
	}
	if ident.UserID != 99 || ident.Role != models.RoleAdmin {
		t.Fatalf("unexpected identity %+v", ident)
	}
}

func TestAuthService_ParseToken_Malformed(t *testing.T) {
	svc := newTestAuth(newMemUsers())
	_, err := svc.ParseToken("not-a-jwt")
	if !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("expected unauthorized error for malformed token, got %v", err)
	}
}

func TestAuthService_ParseToken_InvalidSignature(t *testing.T) {
	svc := newTestAuth(newMemUsers())

	now := time.Now()
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: 5,
	})
	badToken, err := tk.SignedString([]byte("different-key"))
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}

	if _, err := svc.ParseToken(badToken); err == nil {
		t.Fatalf("expected signature verification error")
	}
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	svc := newTestAuth(newMemUsers())

	past := time.Now().Add(-2 * time.Hour)
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(past),
			IssuedAt:  jwt.NewNumericDate(past.Add(-time.Minute)),
		},
		UserID: 11,
	})
	expiredToken, err := tk.SignedString([]byte(testSigningKey))
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}

	if _, err := svc.ParseToken(expiredToken); err == nil {
		t.Fatalf("expected error for expired token")
	}
}

func TestAuthService_ParseToken_UnexpectedAlg(t *testing.T) {
	svc := newTestAuth(newMemUsers())

	now := time.Now()
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("rsa.GenerateKey failed: %v", err)
	}

	tk := jwt.NewWithClaims(jwt.SigningMethodRS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: 12,
	})
	tokenStr, err := tk.SignedString(privateKey)
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}

	if _, err := svc.ParseToken(tokenStr); err == nil {
		t.Fatalf("expected error due to unexpected signing method")
	}
}
