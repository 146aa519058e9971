package entities

import (
	"errors"
	"strings"
	"testing"
	"time"

	domainerrors "folio/contexts/market-core/listing-service/domain/errors"
)

func TestNewMarketplaceValidation(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name     string
		market   string
		rate     int
		treasury string
		wantErr  error
	}{
		{"valid", "folio-market", 2, "treasury", nil},
		{"zero rate", "folio-market", 0, "treasury", nil},
		{"full rate", "folio-market", 100, "treasury", nil},
		{"empty name", "", 2, "treasury", domainerrors.ErrInvalidMarketplace},
		{"blank name", "   ", 2, "treasury", domainerrors.ErrInvalidMarketplace},
		{"name too long", strings.Repeat("m", 33), 2, "treasury", domainerrors.ErrInvalidMarketplace},
		{"empty treasury", "folio-market", 2, "", domainerrors.ErrInvalidMarketplace},
		{"negative rate", "folio-market", -1, "treasury", domainerrors.ErrInvalidFeeRate},
		{"rate above 100", "folio-market", 101, "treasury", domainerrors.ErrInvalidFeeRate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewMarketplace(tc.market, tc.rate, tc.treasury, now)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("NewMarketplace(%q, %d, %q): err = %v, want %v", tc.market, tc.rate, tc.treasury, err, tc.wantErr)
			}
		})
	}
}

func TestNewMarketplaceTrimsAndNormalizes(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))

	m, err := NewMarketplace("  folio-market  ", 5, "  treasury  ", now)
	if err != nil {
		t.Fatalf("NewMarketplace: %v", err)
	}
	if m.Name != "folio-market" || m.Treasury != "treasury" {
		t.Fatalf("expected trimmed fields, got name=%q treasury=%q", m.Name, m.Treasury)
	}
	if m.CreatedAt.Location() != time.UTC {
		t.Fatalf("expected UTC timestamp, got %v", m.CreatedAt.Location())
	}
}

func TestNameAtBoundaryLength(t *testing.T) {
	name := strings.Repeat("m", 32)
	if _, err := NewMarketplace(name, 2, "treasury", time.Now()); err != nil {
		t.Fatalf("32-char name should be accepted: %v", err)
	}
}
