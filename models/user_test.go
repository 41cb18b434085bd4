package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestPublic_OmitsDigest(t *testing.T) {
	now := time.Now()
	login := now.Add(-time.Hour)
	u := &User{
		ID:            "u-1",
		Email:         "alice@example.com",
		Username:      "alice",
		PasswordHash:  "$2a$10$abcdefghijklmnopqrstuv",
		FirstName:     "Alice",
		LastName:      "Smith",
		Role:          RoleAdmin,
		IsActive:      true,
		EmailVerified: true,
		CreatedAt:     now,
		UpdatedAt:     now,
		LastLoginAt:   &login,
	}

	p := u.Public()
	if p.ID != u.ID || p.Email != u.Email || p.Role != RoleAdmin || p.LastLoginAt != u.LastLoginAt {
		t.Fatalf("projection lost fields: %+v", p)
	}

	raw, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	if strings.Contains(string(raw), "$2a$") || strings.Contains(string(raw), "password") {
		t.Fatalf("serialized projection must not carry the digest: %s", raw)
	}
}
