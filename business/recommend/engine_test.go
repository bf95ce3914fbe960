package recommend

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"gulhajiPlaza/domain"
)

func studentCatalog() []domain.Laptop {
	return []domain.Laptop{
		testLaptop(1, "BudgetBook 15", func(l *domain.Laptop) {
			l.RAMGB = 8
			l.StorageGB = 512
		}),
		testLaptop(2, "ProBook 16", func(l *domain.Laptop) {
			l.RAMGB = 16
			l.StorageGB = 1024
		}),
		testLaptop(3, "UltraStation 17", func(l *domain.Laptop) {
			l.RAMGB = 32
			l.StorageGB = 2048
		}),
	}
}

func studentOffers() map[uint64]domain.LiveOffer {
	return map[uint64]domain.LiveOffer{
		1: {Price: 150000, StockCount: 5},
		2: {Price: 190000, StockCount: 3},
		3: {Price: 250000, StockCount: 2},
	}
}

func mustSnapshot(t *testing.T, laptops []domain.Laptop) *Snapshot {
	t.Helper()
	snap, err := BuildSnapshot(laptops)
	if err != nil {
		t.Fatal(err)
	}
	return snap
}

func TestRankStudentWithinBudgetPrefersCheaper(t *testing.T) {
	snap := mustSnapshot(t, studentCatalog())

	profile, weights := BuildProfile(domain.RecommendationRequest{
		Usage:  "student",
		Budget: domain.BudgetRange{Max: floatPtr(200000)},
	})

	got, err := Rank(context.Background(), profile, weights, snap, studentOffers(), 5, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 2 {
		t.Fatalf("got %d candidates, want 2 (the 250000 PKR laptop is over budget)", len(got))
	}
	if got[0].LaptopID != 1 || got[1].LaptopID != 2 {
		t.Errorf("order = [%d %d], want [1 2]: price carries half the student weight",
			got[0].LaptopID, got[1].LaptopID)
	}
	if got[0].RelevanceScore <= got[1].RelevanceScore {
		t.Errorf("scores not strictly ordered: %v then %v",
			got[0].RelevanceScore, got[1].RelevanceScore)
	}
	for _, c := range got {
		if c.RelevanceScore < 0 || c.RelevanceScore > 1 {
			t.Errorf("laptop %d score %v outside [0,1]", c.LaptopID, c.RelevanceScore)
		}
		if len(c.Reasons) == 0 {
			t.Errorf("laptop %d has no reasons", c.LaptopID)
		}
	}
}

func TestRankIsDeterministic(t *testing.T) {
	snap := mustSnapshot(t, studentCatalog())
	profile, weights := BuildProfile(domain.RecommendationRequest{Usage: "gaming"})

	first, err := Rank(context.Background(), profile, weights, snap, studentOffers(), 5, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	second, err := Rank(context.Background(), profile, weights, snap, studentOffers(), 5, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs produced different rankings:\n%v\n%v", first, second)
	}
}

func TestRankTieBreaksOnStockThenModelName(t *testing.T) {
	// identical hardware, identical price: scores tie exactly
	laptops := []domain.Laptop{
		testLaptop(1, "Gamma", nil),
		testLaptop(2, "Beta", nil),
		testLaptop(3, "Alpha", nil),
	}
	offers := map[uint64]domain.LiveOffer{
		1: {Price: 100000, StockCount: 5},
		2: {Price: 100000, StockCount: 9},
		3: {Price: 100000, StockCount: 5},
	}

	snap := mustSnapshot(t, laptops)
	profile, weights := BuildProfile(domain.RecommendationRequest{})

	got, err := Rank(context.Background(), profile, weights, snap, offers, 5, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	want := []uint64{2, 3, 1} // stock desc, then model name asc
	for i, id := range want {
		if got[i].LaptopID != id {
			t.Fatalf("position %d = laptop %d, want %d (order %v)", i, got[i].LaptopID, id, got)
		}
	}
}

func TestRankHardFilters(t *testing.T) {
	snap := mustSnapshot(t, studentCatalog())
	cfg := DefaultConfig()

	run := func(req domain.RecommendationRequest, offers map[uint64]domain.LiveOffer) []uint64 {
		t.Helper()
		profile, weights := BuildProfile(req)
		got, err := Rank(context.Background(), profile, weights, snap, offers, 20, cfg)
		if err != nil {
			t.Fatal(err)
		}
		ids := make([]uint64, 0, len(got))
		for _, c := range got {
			ids = append(ids, c.LaptopID)
		}
		return ids
	}

	ids := run(domain.RecommendationRequest{Budget: domain.BudgetRange{Min: floatPtr(180000)}}, studentOffers())
	if len(ids) != 2 || (ids[0] != 2 && ids[0] != 3) || (ids[1] != 2 && ids[1] != 3) || ids[0] == ids[1] {
		t.Errorf("budget floor: got %v, want laptops 2 and 3", ids)
	}

	if ids := run(domain.RecommendationRequest{MinRAMGB: intPtr(16)}, studentOffers()); len(ids) != 2 {
		t.Errorf("min ram: got %v, want the two >=16GB laptops", ids)
	}

	outOfStock := studentOffers()
	outOfStock[1] = domain.LiveOffer{Price: 150000, StockCount: 0}
	if ids := run(domain.RecommendationRequest{}, outOfStock); len(ids) != 2 {
		t.Errorf("zero stock: got %v, want laptop 1 excluded", ids)
	}

	noOffer := studentOffers()
	delete(noOffer, 2)
	if ids := run(domain.RecommendationRequest{}, noOffer); len(ids) != 2 {
		t.Errorf("missing offer: got %v, want laptop 2 excluded", ids)
	}
}

func TestRankMaxWeightFilter(t *testing.T) {
	laptops := []domain.Laptop{
		testLaptop(1, "Feather", func(l *domain.Laptop) { l.WeightKg = 1.2 }),
		testLaptop(2, "Brick", func(l *domain.Laptop) { l.WeightKg = 3.4 }),
	}
	offers := map[uint64]domain.LiveOffer{
		1: {Price: 100000, StockCount: 1},
		2: {Price: 100000, StockCount: 1},
	}

	snap := mustSnapshot(t, laptops)
	profile, weights := BuildProfile(domain.RecommendationRequest{MaxWeightKg: floatPtr(2.0)})

	got, err := Rank(context.Background(), profile, weights, snap, offers, 5, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 1 || got[0].LaptopID != 1 {
		t.Errorf("got %v, want only the 1.2kg laptop", got)
	}
}

func TestRankNoSurvivorsReturnsEmptyList(t *testing.T) {
	snap := mustSnapshot(t, studentCatalog())
	profile, weights := BuildProfile(domain.RecommendationRequest{
		Budget: domain.BudgetRange{Max: floatPtr(1000)},
	})

	got, err := Rank(context.Background(), profile, weights, snap, studentOffers(), 5, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("got %v, want an empty non-nil list", got)
	}
}

func TestRankTopKCut(t *testing.T) {
	snap := mustSnapshot(t, studentCatalog())
	profile, weights := BuildProfile(domain.RecommendationRequest{})

	got, err := Rank(context.Background(), profile, weights, snap, studentOffers(), 2, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("got %d candidates, want topK=2", len(got))
	}

	// asking for more than survive returns what survives
	got, err = Rank(context.Background(), profile, weights, snap, studentOffers(), 20, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Errorf("got %d candidates, want all 3", len(got))
	}
}

func TestRankNilSnapshotIsScoringUnavailable(t *testing.T) {
	profile, weights := BuildProfile(domain.RecommendationRequest{})

	_, err := Rank(context.Background(), profile, weights, nil, studentOffers(), 5, DefaultConfig())
	if !errors.Is(err, ErrScoringUnavailable) {
		t.Errorf("got %v, want ErrScoringUnavailable", err)
	}
}

func TestRankStaleSnapshotIsScoringUnavailable(t *testing.T) {
	snap := mustSnapshot(t, studentCatalog())

	restore := nowFunc
	nowFunc = func() time.Time { return snap.BuiltAt.Add(time.Hour) }
	defer func() { nowFunc = restore }()

	profile, weights := BuildProfile(domain.RecommendationRequest{})

	_, err := Rank(context.Background(), profile, weights, snap, studentOffers(), 5, DefaultConfig())
	if !errors.Is(err, ErrScoringUnavailable) {
		t.Errorf("got %v, want ErrScoringUnavailable for a stale snapshot", err)
	}
}

func TestRankCancelledContextIsScoringUnavailable(t *testing.T) {
	snap := mustSnapshot(t, studentCatalog())
	profile, weights := BuildProfile(domain.RecommendationRequest{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Rank(ctx, profile, weights, snap, studentOffers(), 5, DefaultConfig())
	if !errors.Is(err, ErrScoringUnavailable) {
		t.Errorf("got %v, want ErrScoringUnavailable for a cancelled context", err)
	}
}

func TestRankWeightMonotonicity(t *testing.T) {
	// laptop 1 strictly dominates laptop 2 on RAM, all else equal;
	// raising the ram weight must never push laptop 1 below laptop 2
	laptops := []domain.Laptop{
		testLaptop(1, "BigRAM", func(l *domain.Laptop) { l.RAMGB = 32 }),
		testLaptop(2, "SmallRAM", func(l *domain.Laptop) { l.RAMGB = 8 }),
	}
	offers := map[uint64]domain.LiveOffer{
		1: {Price: 100000, StockCount: 1},
		2: {Price: 100000, StockCount: 1},
	}

	snap := mustSnapshot(t, laptops)
	profile := domain.PreferenceProfile{Usage: UsageGeneral}

	rankOf := func(ramWeight float64) int {
		t.Helper()
		weights := WeightsForUsage(UsageGeneral)
		weights[FeatRAM] = ramWeight

		got, err := Rank(context.Background(), profile, weights, snap, offers, 5, DefaultConfig())
		if err != nil {
			t.Fatal(err)
		}
		for i, c := range got {
			if c.LaptopID == 1 {
				return i
			}
		}
		t.Fatal("laptop 1 missing from ranking")
		return -1
	}

	base := rankOf(0.125)
	for _, w := range []float64{0.25, 0.5, 0.9} {
		if pos := rankOf(w); pos > base {
			t.Errorf("ram weight %v dropped the dominating laptop from position %d to %d", w, base, pos)
		}
	}
}

func TestRankAndFallbackAgreeOnSurvivors(t *testing.T) {
	// no declared preferences: both paths apply the same hard filters,
	// so the returned item sets must match even if the order differs
	offers := studentOffers()
	offers[3] = domain.LiveOffer{Price: 250000, StockCount: 0}

	snap := mustSnapshot(t, studentCatalog())
	profile, weights := BuildProfile(domain.RecommendationRequest{})

	primary, err := Rank(context.Background(), profile, weights, snap, offers, 20, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	fallback := FallbackRank(profile, studentCatalog(), offers, 20, DefaultConfig())

	if len(primary) != len(fallback) {
		t.Fatalf("primary returned %d items, fallback %d", len(primary), len(fallback))
	}

	seen := make(map[uint64]bool, len(primary))
	for _, c := range primary {
		seen[c.LaptopID] = true
	}
	for _, c := range fallback {
		if !seen[c.LaptopID] {
			t.Errorf("laptop %d in fallback but not primary", c.LaptopID)
		}
	}
}

func TestRankDeclaredMinimumSaturates(t *testing.T) {
	// with a declared RAM minimum, exceeding it further must not change
	// the ram satisfaction between two otherwise-identical survivors
	laptops := []domain.Laptop{
		testLaptop(1, "Sixteen", func(l *domain.Laptop) { l.RAMGB = 16 }),
		testLaptop(2, "SixtyFour", func(l *domain.Laptop) { l.RAMGB = 64 }),
	}
	offers := map[uint64]domain.LiveOffer{
		1: {Price: 100000, StockCount: 1},
		2: {Price: 100000, StockCount: 1},
	}

	snap := mustSnapshot(t, laptops)
	profile, weights := BuildProfile(domain.RecommendationRequest{MinRAMGB: intPtr(8)})

	got, err := Rank(context.Background(), profile, weights, snap, offers, 5, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d candidates, want 2", len(got))
	}
	if got[0].RelevanceScore != got[1].RelevanceScore {
		t.Errorf("scores differ (%v vs %v) although both meet the declared minimum",
			got[0].RelevanceScore, got[1].RelevanceScore)
	}
}
