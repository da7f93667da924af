package utils

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseDecimal(t *testing.T) {
	dec, err := ParseDecimal("  1500.00 ")
	if err != nil {
		t.Fatalf("ParseDecimal: %v", err)
	}
	if !dec.Equal(decimal.RequireFromString("1500.00")) {
		t.Errorf("parsed %s, want 1500.00", dec)
	}

	if _, err := ParseDecimal(""); err == nil {
		t.Error("empty string must be rejected")
	}
	if _, err := ParseDecimal("abc"); err == nil {
		t.Error("non-numeric string must be rejected")
	}
}

func TestJwtRoundTrip(t *testing.T) {
	token, err := JwtGenerate(42, "admin")
	if err != nil {
		t.Fatalf("JwtGenerate: %v", err)
	}

	parsed, err := JwtValidate(token)
	if err != nil {
		t.Fatalf("JwtValidate: %v", err)
	}
	if !parsed.Valid {
		t.Fatal("token should validate")
	}

	claims, ok := parsed.Claims.(*JwtCustomClaim)
	if !ok {
		t.Fatal("claims should be JwtCustomClaim")
	}
	if claims.ID != 42 || claims.Role != "admin" {
		t.Errorf("claims = %d/%q, want 42/admin", claims.ID, claims.Role)
	}
}

func TestJwtValidateRejectsGarbage(t *testing.T) {
	if _, err := JwtValidate("not-a-token"); err == nil {
		t.Error("garbage token must not validate")
	}
}
