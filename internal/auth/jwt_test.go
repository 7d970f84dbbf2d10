package auth_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/washbay-pos/api/internal/auth"
)

func TestGenerateAndValidateToken(t *testing.T) {
	secret := "test-secret"
	workerID := uuid.New()

	token, err := auth.GenerateToken(secret, workerID, "Fatima", "RECEPTION")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	claims, err := auth.ValidateToken(secret, token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}

	if claims.WorkerID != workerID {
		t.Errorf("worker ID: got %v, want %v", claims.WorkerID, workerID)
	}
	if claims.Name != "Fatima" {
		t.Errorf("name: got %v, want Fatima", claims.Name)
	}
	if claims.Role != "RECEPTION" {
		t.Errorf("role: got %v, want RECEPTION", claims.Role)
	}
}

func TestValidateTokenWithWrongSecret(t *testing.T) {
	token, err := auth.GenerateToken("secret-a", uuid.New(), "Fatima", "CASHIER")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err = auth.ValidateToken("secret-b", token); err == nil {
		t.Fatal("expected error validating with wrong secret")
	}
}

func TestValidateTokenWithInvalidString(t *testing.T) {
	if _, err := auth.ValidateToken("secret", "not-a-jwt"); err == nil {
		t.Fatal("expected error validating invalid token string")
	}
}
