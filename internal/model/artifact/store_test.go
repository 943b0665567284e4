package artifact

import (
	"encoding/json"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedHasUniqueIDsAndFacts(t *testing.T) {
	seen := map[string]bool{}
	for _, item := range Seed() {
		require.False(t, seen[item.ID], "duplicate id %s", item.ID)
		seen[item.ID] = true
		assert.NotEmpty(t, item.Name)
		assert.NotEmpty(t, item.Period)
		assert.NotEmpty(t, item.Material)
		assert.NotEmpty(t, item.FunFacts, "artifact %s has no fun facts", item.ID)
		require.NotNil(t, item.Quiz, "artifact %s has no curated quiz", item.ID)
		assert.NotEmpty(t, item.Quiz.Question)
		assert.Len(t, item.Quiz.Options, 4)
		assert.True(t, item.Quiz.Answer >= 0 && item.Quiz.Answer < len(item.Quiz.Options))
	}
	assert.Len(t, seen, 15)
}

func TestMemoryStoreFindByID(t *testing.T) {
	store := NewMemoryStore(Seed())

	got, ok := store.FindByID("NMK-007")
	require.True(t, ok)
	assert.Equal(t, "백자 달항아리", got.Name)

	_, ok = store.FindByID("missing")
	assert.False(t, ok)
}

func TestMemoryStoreSkipsDuplicates(t *testing.T) {
	store := NewMemoryStore([]Artifact{
		{ID: "a", Name: "first"},
		{ID: "a", Name: "second"},
		{ID: "", Name: "blank"},
	})
	items := store.List()
	require.Len(t, items, 1)
	assert.Equal(t, "first", items[0].Name)
}

func TestMemoryStoreSample(t *testing.T) {
	store := NewMemoryStore(Seed(), WithRand(rand.New(rand.NewPCG(1, 2))))

	sample := store.Sample(5)
	require.Len(t, sample, 5)
	ids := map[string]bool{}
	for _, item := range sample {
		ids[item.ID] = true
	}
	assert.Len(t, ids, 5, "sample must not repeat artifacts")

	assert.Len(t, store.Sample(0), 15)
	assert.Len(t, store.Sample(100), 15)
}

func TestListReturnsCopy(t *testing.T) {
	store := NewMemoryStore(Seed())
	items := store.List()
	items[0].Name = "changed"

	got, _ := store.FindByID(items[0].ID)
	assert.NotEqual(t, "changed", got.Name)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	raw, err := json.Marshal(Seed()[:3])
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	items, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, items, 3)

	empty := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte("[]"), 0o600))
	_, err = LoadFile(empty)
	assert.Error(t, err)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestDisplayName(t *testing.T) {
	a := Artifact{Name: "금동미륵보살반가사유상", Designation: "국보 제78호"}
	assert.Equal(t, "금동미륵보살반가사유상 (국보 제78호)", a.DisplayName())
	assert.Equal(t, "수월관음도", Artifact{Name: "수월관음도", Designation: "국보"}.DisplayName())
}
