package auth

import (
	"testing"

	"github.com/rohitgunthal18/pixico-core/internal/gateway"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordRoundtrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash equals the plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret-pass")); err != nil {
		t.Errorf("correct password rejected: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("wrong")); err == nil {
		t.Error("wrong password accepted")
	}
}

func TestLoginUnavailableGateway(t *testing.T) {
	svc := NewService(gateway.NewInert())
	_, err := svc.Login(&LoginDTO{Email: "a@b.co", Password: "x"}, "127.0.0.1", "test")
	if err == nil {
		t.Fatal("Login succeeded against an inert gateway")
	}
	if err == ErrBadCredentials || err == ErrNotAdmin {
		t.Errorf("infrastructure failure misreported as %v", err)
	}
}
