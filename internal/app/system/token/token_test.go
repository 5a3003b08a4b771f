package token

import (
	"testing"
	"time"
)

func TestIssueAndParse(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)

	tok, err := issuer.Issue("64f0c2a9e1b2c3d4e5f60718")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if tok == "" {
		t.Fatal("expected a non-empty token")
	}

	claims, err := issuer.Parse(tok)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if claims.ID != "64f0c2a9e1b2c3d4e5f60718" {
		t.Errorf("id claim: got %q, want %q", claims.ID, "64f0c2a9e1b2c3d4e5f60718")
	}
}

func TestIssue_DefaultTTLIs150Days(t *testing.T) {
	issuer := NewIssuer("test-secret", 0)

	tok, err := issuer.Issue("u1")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	claims, err := issuer.Parse(tok)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := time.Now().Add(DefaultTTL)
	got := claims.ExpiresAt.Time
	if got.Before(want.Add(-time.Minute)) || got.After(want.Add(time.Minute)) {
		t.Errorf("expiry: got %v, want about %v", got, want)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	tok, err := NewIssuer("secret-a", time.Hour).Issue("u1")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := NewIssuer("secret-b", time.Hour).Parse(tok); err == nil {
		t.Error("expected Parse to fail with a different secret")
	}
}

func TestParse_Expired(t *testing.T) {
	issuer := NewIssuer("test-secret", -time.Minute)

	tok, err := issuer.Issue("u1")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := issuer.Parse(tok); err == nil {
		t.Error("expected Parse to reject an expired token")
	}
}

func TestParse_Garbage(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	if _, err := issuer.Parse("not.a.token"); err == nil {
		t.Error("expected Parse to reject a malformed token")
	}
}
