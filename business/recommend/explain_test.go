package recommend

import (
	"context"
	"strings"
	"testing"

	"gulhajiPlaza/domain"
)

func TestExplainAlwaysGivesAtLeastOneReason(t *testing.T) {
	// identical laptops: nobody beats the median, no budget, no gpu wish
	laptops := []domain.Laptop{
		testLaptop(1, "A", nil),
		testLaptop(2, "B", nil),
	}
	offers := map[uint64]domain.LiveOffer{
		1: {Price: 100000, StockCount: 1},
		2: {Price: 100000, StockCount: 1},
	}

	snap := mustSnapshot(t, laptops)
	profile, weights := BuildProfile(domain.RecommendationRequest{})

	got, err := Rank(context.Background(), profile, weights, snap, offers, 5, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	for _, c := range got {
		if len(c.Reasons) != 1 || c.Reasons[0] != genericReason {
			t.Errorf("laptop %d reasons = %v, want the single generic reason", c.LaptopID, c.Reasons)
		}
	}
}

func TestExplainCapsReasonCount(t *testing.T) {
	laptops := []domain.Laptop{
		testLaptop(1, "Monster", func(l *domain.Laptop) {
			l.RAMGB = 64
			l.StorageGB = 4096
			l.ProcessorCores = 24
			l.GPUType = domain.GPUClassDedicated
			l.VRAMGB = 12
			l.RefreshRateHz = 240
		}),
		testLaptop(2, "Modest", nil),
		testLaptop(3, "Middling", func(l *domain.Laptop) { l.RAMGB = 24 }),
	}
	offers := map[uint64]domain.LiveOffer{
		1: {Price: 300000, StockCount: 1},
		2: {Price: 100000, StockCount: 1},
		3: {Price: 150000, StockCount: 1},
	}

	snap := mustSnapshot(t, laptops)
	profile, weights := BuildProfile(domain.RecommendationRequest{Usage: "gaming"})

	got, err := Rank(context.Background(), profile, weights, snap, offers, 5, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	for _, c := range got {
		if len(c.Reasons) == 0 || len(c.Reasons) > maxReasons {
			t.Errorf("laptop %d has %d reasons, want 1..%d", c.LaptopID, len(c.Reasons), maxReasons)
		}
	}
}

func TestExplainBudgetComfort(t *testing.T) {
	cfg := DefaultConfig()
	snap := mustSnapshot(t, studentCatalog())

	profile, _ := BuildProfile(domain.RecommendationRequest{
		Budget: domain.BudgetRange{Max: floatPtr(200000)},
	})

	comfortable := domain.LiveOffer{Price: 150000, StockCount: 1} // under 0.95 * 200000
	atCeiling := domain.LiveOffer{Price: 195000, StockCount: 1}   // over 0.95 * 200000

	if r, ok := reasonFor(FeatPrice, snap.Items[0], comfortable, profile, snap, cfg); !ok || !strings.Contains(r, "comfortably") {
		t.Errorf("comfortable price reason = %q (%v)", r, ok)
	}
	if r, ok := reasonFor(FeatPrice, snap.Items[0], atCeiling, profile, snap, cfg); !ok || !strings.Contains(r, "ceiling") {
		t.Errorf("near-ceiling price reason = %q (%v)", r, ok)
	}

	noBudget, _ := BuildProfile(domain.RecommendationRequest{})
	if _, ok := reasonFor(FeatPrice, snap.Items[0], comfortable, noBudget, snap, cfg); ok {
		t.Error("price reason emitted although no budget was declared")
	}
}

func TestExplainGPUClassMatch(t *testing.T) {
	laptops := []domain.Laptop{
		testLaptop(1, "GamerBox", func(l *domain.Laptop) {
			l.GPUType = domain.GPUClassDedicated
			l.VRAMGB = 8
		}),
		testLaptop(2, "OfficeBox", nil),
	}
	offers := map[uint64]domain.LiveOffer{
		1: {Price: 200000, StockCount: 1},
		2: {Price: 100000, StockCount: 1},
	}

	snap := mustSnapshot(t, laptops)
	profile, weights := BuildProfile(domain.RecommendationRequest{
		Usage:             "gaming",
		PreferredGPUClass: "dedicated",
	})

	got, err := Rank(context.Background(), profile, weights, snap, offers, 5, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	if got[0].LaptopID != 1 {
		t.Fatalf("dedicated-GPU laptop should rank first, got %v", got)
	}

	found := false
	for _, r := range got[0].Reasons {
		if strings.Contains(r, "dedicated graphics") {
			found = true
		}
	}
	if !found {
		t.Errorf("reasons %v missing the gpu class match", got[0].Reasons)
	}
}

func TestOrderedFeaturesIsStable(t *testing.T) {
	weights := WeightVector{
		FeatRAM:     0.3,
		FeatCores:   0.3,
		FeatStorage: 0.2,
		FeatPrice:   0,
	}

	first := orderedFeatures(weights)
	second := orderedFeatures(weights)

	if len(first) != 3 {
		t.Fatalf("zero-weight features must be excluded, got %v", first)
	}
	// equal weights fall back to name order
	if first[0] != FeatCores || first[1] != FeatRAM {
		t.Errorf("tie order = %v, want processor_cores before ram_gb", first)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("ordering not reproducible: %v vs %v", first, second)
		}
	}
}
