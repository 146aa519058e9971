package services

import "testing"

func TestSplitConservesValue(t *testing.T) {
	prices := []int64{0, 1, 7, 99, 100, 101, 999_999, 1_000_000, 123_456_789}
	for _, price := range prices {
		for rate := 0; rate <= 100; rate++ {
			treasury, seller := Split(price, rate)
			if treasury+seller != price {
				t.Fatalf("split(%d, %d) lost value: treasury=%d seller=%d", price, rate, treasury, seller)
			}
			if treasury < 0 || seller < 0 {
				t.Fatalf("split(%d, %d) produced negative share: treasury=%d seller=%d", price, rate, treasury, seller)
			}
		}
	}
}

func TestSplitFloorsTreasuryCut(t *testing.T) {
	treasury, seller := Split(101, 10)
	if treasury != 10 || seller != 91 {
		t.Fatalf("expected remainder to stay with seller, got treasury=%d seller=%d", treasury, seller)
	}
}

func TestSplitTenPercentOfOneMillion(t *testing.T) {
	treasury, seller := Split(1_000_000, 10)
	if treasury != 100_000 || seller != 900_000 {
		t.Fatalf("unexpected split: treasury=%d seller=%d", treasury, seller)
	}
}

func TestSplitBoundaryRates(t *testing.T) {
	if treasury, seller := Split(500, 0); treasury != 0 || seller != 500 {
		t.Fatalf("zero rate should route everything to seller, got treasury=%d seller=%d", treasury, seller)
	}
	if treasury, seller := Split(500, 100); treasury != 500 || seller != 0 {
		t.Fatalf("full rate should route everything to treasury, got treasury=%d seller=%d", treasury, seller)
	}
}
