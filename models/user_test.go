package models

import (
	"strings"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("hashing failed: %v", err)
	}
	if hash == "correct horse battery" {
		t.Fatal("hash should not equal the plaintext")
	}

	if !CheckPassword("correct horse battery", hash) {
		t.Error("correct password should verify")
	}
	if CheckPassword("wrong password", hash) {
		t.Error("wrong password should not verify")
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("short"); err == nil {
		t.Error("short passwords should be rejected")
	}
	if err := ValidatePassword("long enough password"); err != nil {
		t.Errorf("valid password rejected: %v", err)
	}
}

func TestValidateUsername(t *testing.T) {
	testCases := []struct {
		username string
		wantErr  bool
	}{
		{"editor_1", false},
		{"Editor", false},
		{"ab", true},                       // too short
		{strings.Repeat("a", 51), true},    // too long
		{"bad name", true},                 // space
		{"bad-name", true},                 // hyphen
		{"good_name_123", false},
	}

	for _, tc := range testCases {
		err := ValidateUsername(tc.username)
		if tc.wantErr && err == nil {
			t.Errorf("username %q should be rejected", tc.username)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("username %q rejected: %v", tc.username, err)
		}
	}
}
