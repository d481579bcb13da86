package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testBusiness struct {
	Name      string
	Category  string
	Rating    float64
	HasRating bool
	IsActive  bool
	CreatedAt time.Time
}

type testOrder struct {
	ID    string
	Total float64
}

func ratingKey(b testBusiness) (float64, bool) {
	return b.Rating, b.HasRating
}

func sampleBusinesses() []testBusiness {
	return []testBusiness{
		{Name: "Sharma Tiffins", Category: "food", Rating: 4.5, HasRating: true, IsActive: true},
		{Name: "FreshMart", Category: "grocery", Rating: 4.0, HasRating: true, IsActive: true},
		{Name: "Annapurna Kitchen", Category: "food", Rating: 3.8, HasRating: true, IsActive: false},
	}
}

func TestApply_CategoryMatch_PreservesOriginalOrder(t *testing.T) {
	items := sampleBusinesses()

	got := Apply(items, Criteria[testBusiness]{
		Filters: []Filter[testBusiness]{
			Match[testBusiness]{Value: "food", Key: func(b testBusiness) string { return b.Category }},
		},
	})

	require.Len(t, got, 2)
	assert.Equal(t, "Sharma Tiffins", got[0].Name)
	assert.Equal(t, "Annapurna Kitchen", got[1].Name)
}

func TestApply_AllSentinelDisablesMatch(t *testing.T) {
	items := sampleBusinesses()

	got := Apply(items, Criteria[testBusiness]{
		Filters: []Filter[testBusiness]{
			Match[testBusiness]{Value: MatchAll, Key: func(b testBusiness) string { return b.Category }},
		},
	})

	assert.Equal(t, items, got)
}

func TestApply_DisabledCriteria_ReturnsAllInOriginalOrder(t *testing.T) {
	items := sampleBusinesses()

	got := Apply(items, Criteria[testBusiness]{})

	assert.Equal(t, items, got)
	// Derivation must hand back a fresh slice, not the input.
	got[0].Name = "mutated"
	assert.Equal(t, "Sharma Tiffins", items[0].Name)
}

func TestApply_IsIdempotent(t *testing.T) {
	items := sampleBusinesses()
	criteria := Criteria[testBusiness]{
		Filters: []Filter[testBusiness]{
			Match[testBusiness]{Value: "food", Key: func(b testBusiness) string { return b.Category }},
			Flag[testBusiness]{State: True, Key: func(b testBusiness) bool { return b.IsActive }},
		},
		Sort: ByNumber(ratingKey, true),
	}

	once := Apply(items, criteria)
	twice := Apply(once, criteria)

	assert.Equal(t, once, twice)
	assert.LessOrEqual(t, len(once), len(items))
}

func TestApply_SearchMatchesAnyDesignatedField(t *testing.T) {
	type customer struct{ Name, Email string }
	customers := []customer{
		{Name: "Rajesh Kumar", Email: "rajesh@example.com"},
		{Name: "Priya Sharma", Email: "priya@example.com"},
	}
	fields := []func(customer) string{
		func(c customer) string { return c.Name },
		func(c customer) string { return c.Email },
	}

	got := Apply(customers, Criteria[customer]{
		Search: &Search[customer]{Term: "raj", Fields: fields},
	})

	require.Len(t, got, 1)
	assert.Equal(t, "Rajesh Kumar", got[0].Name)

	none := Apply(customers, Criteria[customer]{
		Search: &Search[customer]{Term: "zzz", Fields: fields},
	})
	assert.Empty(t, none)

	all := Apply(customers, Criteria[customer]{
		Search: &Search[customer]{Term: "  ", Fields: fields},
	})
	assert.Len(t, all, 2)
}

func TestApply_SearchIsANDedWithFilters(t *testing.T) {
	items := sampleBusinesses()

	got := Apply(items, Criteria[testBusiness]{
		Filters: []Filter[testBusiness]{
			Match[testBusiness]{Value: "food", Key: func(b testBusiness) string { return b.Category }},
		},
		Search: &Search[testBusiness]{
			Term:   "kitchen",
			Fields: []func(testBusiness) string{func(b testBusiness) string { return b.Name }},
		},
	})

	require.Len(t, got, 1)
	assert.Equal(t, "Annapurna Kitchen", got[0].Name)
}

func TestApply_AmountSort_BothDirections(t *testing.T) {
	orders := []testOrder{
		{ID: "a", Total: 600},
		{ID: "b", Total: 223},
	}
	totalKey := func(o testOrder) (float64, bool) { return o.Total, true }

	high := Apply(orders, Criteria[testOrder]{Sort: ByNumber(totalKey, true)})
	require.Len(t, high, 2)
	assert.Equal(t, float64(600), high[0].Total)
	assert.Equal(t, float64(223), high[1].Total)

	low := Apply(orders, Criteria[testOrder]{Sort: ByNumber(totalKey, false)})
	assert.Equal(t, float64(223), low[0].Total)
	assert.Equal(t, float64(600), low[1].Total)
}

func TestApply_AscendingThenDescending_AreExactReversals(t *testing.T) {
	orders := []testOrder{
		{ID: "a", Total: 450}, {ID: "b", Total: 120}, {ID: "c", Total: 990}, {ID: "d", Total: 15},
	}
	totalKey := func(o testOrder) (float64, bool) { return o.Total, true }

	asc := Apply(orders, Criteria[testOrder]{Sort: ByNumber(totalKey, false)})
	desc := Apply(orders, Criteria[testOrder]{Sort: ByNumber(totalKey, true)})

	require.Len(t, asc, len(orders))
	for i := range asc {
		assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
	}
}

func TestApply_StableSort_TiesKeepOriginalOrder(t *testing.T) {
	orders := []testOrder{
		{ID: "first", Total: 100},
		{ID: "second", Total: 100},
		{ID: "third", Total: 100},
	}
	totalKey := func(o testOrder) (float64, bool) { return o.Total, true }

	got := Apply(orders, Criteria[testOrder]{Sort: ByNumber(totalKey, true)})

	assert.Equal(t, []testOrder{{ID: "first", Total: 100}, {ID: "second", Total: 100}, {ID: "third", Total: 100}}, got)
}

func TestApply_MissingNumericKey_SortsToOneEnd(t *testing.T) {
	items := []testBusiness{
		{Name: "rated", Rating: 4.2, HasRating: true},
		{Name: "unrated", HasRating: false},
		{Name: "top", Rating: 4.9, HasRating: true},
	}

	desc := Apply(items, Criteria[testBusiness]{Sort: ByNumber(ratingKey, true)})
	require.Len(t, desc, 3)
	assert.Equal(t, "unrated", desc[2].Name)

	asc := Apply(items, Criteria[testBusiness]{Sort: ByNumber(ratingKey, false)})
	assert.Equal(t, "unrated", asc[0].Name)
}

func TestApply_MissingNumericKey_ExcludedFromThreshold(t *testing.T) {
	items := []testBusiness{
		{Name: "rated", Rating: 4.2, HasRating: true},
		{Name: "unrated", HasRating: false},
	}

	got := Apply(items, Criteria[testBusiness]{
		Filters: []Filter[testBusiness]{Threshold[testBusiness]{Min: Float(1), Key: ratingKey}},
	})

	require.Len(t, got, 1)
	assert.Equal(t, "rated", got[0].Name)
}

func TestApply_RangeIsInclusive(t *testing.T) {
	type product struct {
		Name  string
		Price float64
	}
	products := []product{
		{Name: "cheap", Price: 50},
		{Name: "mid", Price: 100},
		{Name: "dear", Price: 250},
	}
	priceKey := func(p product) (float64, bool) { return p.Price, true }

	got := Apply(products, Criteria[product]{
		Filters: []Filter[product]{Range[product]{Min: Float(50), Max: Float(100), Key: priceKey}},
	})

	require.Len(t, got, 2)
	assert.Equal(t, "cheap", got[0].Name)
	assert.Equal(t, "mid", got[1].Name)
}

func TestApply_TriStateFlag(t *testing.T) {
	items := sampleBusinesses()
	activeKey := func(b testBusiness) bool { return b.IsActive }

	active := Apply(items, Criteria[testBusiness]{
		Filters: []Filter[testBusiness]{Flag[testBusiness]{State: True, Key: activeKey}},
	})
	assert.Len(t, active, 2)

	inactive := Apply(items, Criteria[testBusiness]{
		Filters: []Filter[testBusiness]{Flag[testBusiness]{State: False, Key: activeKey}},
	})
	assert.Len(t, inactive, 1)

	either := Apply(items, Criteria[testBusiness]{
		Filters: []Filter[testBusiness]{Flag[testBusiness]{State: Either, Key: activeKey}},
	})
	assert.Len(t, either, 3)
}

func TestApply_NoMatches_ReturnsEmptyNotNil(t *testing.T) {
	items := sampleBusinesses()

	got := Apply(items, Criteria[testBusiness]{
		Filters: []Filter[testBusiness]{
			Match[testBusiness]{Value: "pharmacy", Key: func(b testBusiness) string { return b.Category }},
		},
	})

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestApply_EmptyInput(t *testing.T) {
	got := Apply(nil, Criteria[testBusiness]{Sort: ByNumber(ratingKey, true)})

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestByTime_NewestFirst(t *testing.T) {
	now := time.Now()
	items := []testBusiness{
		{Name: "older", CreatedAt: now.Add(-2 * time.Hour)},
		{Name: "newest", CreatedAt: now},
		{Name: "oldest", CreatedAt: now.Add(-24 * time.Hour)},
	}

	got := Apply(items, Criteria[testBusiness]{
		Sort: ByTime(func(b testBusiness) time.Time { return b.CreatedAt }, true),
	})

	require.Len(t, got, 3)
	assert.Equal(t, "newest", got[0].Name)
	assert.Equal(t, "oldest", got[2].Name)
}

func TestByString_CaseInsensitive(t *testing.T) {
	items := []testBusiness{
		{Name: "zebra cafe"},
		{Name: "Annapurna Kitchen"},
		{Name: "breadBasket"},
	}

	got := Apply(items, Criteria[testBusiness]{
		Sort: ByString(func(b testBusiness) string { return b.Name }, false),
	})

	require.Len(t, got, 3)
	assert.Equal(t, "Annapurna Kitchen", got[0].Name)
	assert.Equal(t, "breadBasket", got[1].Name)
	assert.Equal(t, "zebra cafe", got[2].Name)
}

func TestParseTriState(t *testing.T) {
	assert.Equal(t, True, ParseTriState("true"))
	assert.Equal(t, True, ParseTriState("1"))
	assert.Equal(t, False, ParseTriState("false"))
	assert.Equal(t, False, ParseTriState("no"))
	assert.Equal(t, Either, ParseTriState(""))
	assert.Equal(t, Either, ParseTriState("all"))
	assert.Equal(t, Either, ParseTriState("garbage"))
}

func TestPage(t *testing.T) {
	orders := []testOrder{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}, {ID: "e"}}

	first := Page(orders, 1, 2)
	require.Len(t, first, 2)
	assert.Equal(t, "a", first[0].ID)

	last := Page(orders, 3, 2)
	require.Len(t, last, 1)
	assert.Equal(t, "e", last[0].ID)

	beyond := Page(orders, 4, 2)
	assert.NotNil(t, beyond)
	assert.Empty(t, beyond)

	clamped := Page(orders, 0, 2)
	assert.Equal(t, first, clamped)
}
