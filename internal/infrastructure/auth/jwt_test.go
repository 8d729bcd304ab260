package auth

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/evanfuller/learntrack/internal/user"
)

func TestSignValidateRoundTrip(t *testing.T) {
	ju := NewJWTUtil("HS256", "secret", "token", 30*time.Minute)

	tokenStr, err := ju.GenerateTokenStr(&user.UserModel{
		ID:       "u1",
		Username: "learner",
		Email:    "learner@example.com",
	})
	if err != nil {
		t.Fatalf("failed to sign: %v", err)
	}

	claims, err := ju.Validate(tokenStr)
	if err != nil {
		t.Fatalf("failed to validate: %v", err)
	}
	if claims.UID != "u1" || claims.Name != "learner" {
		t.Fatalf("claims do not match: %+v", claims)
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	ju := NewJWTUtil("HS256", "secret", "token", 30*time.Minute)
	other := NewJWTUtil("HS256", "different", "token", 30*time.Minute)

	tokenStr, err := ju.GenerateTokenStr(&user.UserModel{ID: "u1"})
	if err != nil {
		t.Fatalf("failed to sign: %v", err)
	}
	if _, err := other.Validate(tokenStr); err == nil {
		t.Fatal("validation should fail with a different secret")
	}
}

func TestTimeRemaining(t *testing.T) {
	expired := &AppTokenClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Minute).Unix(),
		},
	}
	if expired.TimeRemaining() != 0 {
		t.Fatal("expired token should report zero time remaining")
	}

	live := &AppTokenClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}
	if live.TimeRemaining() <= 0 {
		t.Fatal("live token should report positive time remaining")
	}
}
