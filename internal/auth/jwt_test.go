package auth

import (
	"testing"
	"time"
)

func TestCreateAndParseToken(t *testing.T) {
	token, err := CreateToken("secret", 42, time.Hour)
	if err != nil {
		t.Fatalf("CreateToken failed: %v", err)
	}

	personID, err := ParseToken("secret", token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if personID != 42 {
		t.Errorf("Expected person id 42, got %d", personID)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := CreateToken("secret", 42, time.Hour)
	if err != nil {
		t.Fatalf("CreateToken failed: %v", err)
	}

	if _, err := ParseToken("other-secret", token); err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken, got %v", err)
	}
}

func TestParseToken_Expired(t *testing.T) {
	token, err := CreateToken("secret", 42, -time.Minute)
	if err != nil {
		t.Fatalf("CreateToken failed: %v", err)
	}

	if _, err := ParseToken("secret", token); err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	if _, err := ParseToken("secret", "not-a-token"); err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken, got %v", err)
	}
}
