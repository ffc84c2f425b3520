package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeProductCode(t *testing.T) {
	assert.Equal(t, "GEN_Trà sữa", SynthesizeProductCode("Trà sữa"))
	// truncation counts runes, not bytes
	long := "Bánh tráng trộn đặc biệt loại lớn"
	assert.Equal(t, "GEN_"+string([]rune(long)[:20]), SynthesizeProductCode(long))
}

func TestSynthesizeOrderCode(t *testing.T) {
	assert.Equal(t, "GEN-0", SynthesizeOrderCode(0))
	assert.Equal(t, "GEN-41", SynthesizeOrderCode(41))
}

func TestUpsertSegmentEmptyCode(t *testing.T) {
	repos, store := newFakeRepos()
	imp := New(repos)

	segment, err := imp.upsertSegment("", "ignored")
	require.NoError(t, err)
	assert.Nil(t, segment)
	assert.Empty(t, store.segments)
}

func TestUpsertSegmentFirstSeenWins(t *testing.T) {
	repos, store := newFakeRepos()
	imp := New(repos)

	first, err := imp.upsertSegment("S1", "first description")
	require.NoError(t, err)

	second, err := imp.upsertSegment("S1", "different description")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "first description", second.Description)
	assert.Len(t, store.segments, 1)
}

func TestUpsertCustomerLinksSegment(t *testing.T) {
	repos, _ := newFakeRepos()
	imp := New(repos)

	segment, err := imp.upsertSegment("S1", "desc")
	require.NoError(t, err)

	customer, err := imp.upsertCustomer("KH01", "Nguyễn Văn A", segment)
	require.NoError(t, err)
	require.NotNil(t, customer.SegmentID)
	assert.Equal(t, segment.ID, *customer.SegmentID)

	// a later row with the same code but no segment does not unlink it
	again, err := imp.upsertCustomer("KH01", "other name", nil)
	require.NoError(t, err)
	assert.Equal(t, customer.ID, again.ID)
	assert.Equal(t, "Nguyễn Văn A", again.Name)
	require.NotNil(t, again.SegmentID)
}

func TestUpsertProductByCode(t *testing.T) {
	repos, store := newFakeRepos()
	imp := New(repos)

	category, err := imp.upsertCategory("NH1", "Đồ uống")
	require.NoError(t, err)

	product, err := imp.upsertProduct("MH1", "Trà sữa", category, 12000)
	require.NoError(t, err)
	assert.Equal(t, "MH1", product.Code)
	require.NotNil(t, product.ImportPrice)
	assert.Equal(t, int64(12000), *product.ImportPrice)

	again, err := imp.upsertProduct("MH1", "renamed", nil, 99)
	require.NoError(t, err)
	assert.Equal(t, product.ID, again.ID)
	assert.Equal(t, "Trà sữa", again.Name)
	assert.Len(t, store.products, 1)
}

func TestUpsertProductByNameFallback(t *testing.T) {
	repos, store := newFakeRepos()
	imp := New(repos)

	product, err := imp.upsertProduct("", "Cà phê sữa đá", nil, 0)
	require.NoError(t, err)
	assert.Equal(t, "GEN_Cà phê sữa đá", product.Code)

	again, err := imp.upsertProduct("", "Cà phê sữa đá", nil, 5000)
	require.NoError(t, err)
	assert.Equal(t, product.ID, again.ID)
	assert.Len(t, store.products, 1)
}

func TestUpsertProductNothingToKeyOn(t *testing.T) {
	repos, store := newFakeRepos()
	imp := New(repos)

	product, err := imp.upsertProduct("", "", nil, 100)
	require.NoError(t, err)
	assert.Nil(t, product)
	assert.Empty(t, store.products)
}
