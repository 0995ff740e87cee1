package cache_test

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"emoji-catalog/core/cache"
	"emoji-catalog/core/decode"
	"emoji-catalog/core/errdefs"
	"emoji-catalog/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEmojiCache(categories model.CategoryResolver) *cache.RecordCache[*model.Emoji] {
	return cache.NewRecordCache("emoji", func() *model.Emoji { return model.NewEmoji(categories) })
}

func emojiFields(id int, title string) decode.FieldMap {
	return decode.FieldMap{
		"id":       json.Number(fmt.Sprint(id)),
		"title":    title,
		"image":    fmt.Sprintf("http://x/%d.png", id),
		"category": json.Number("0"),
		"faves":    json.Number("1"),
	}
}

func TestRecordCache_ReconcileCreates(t *testing.T) {
	c := newEmojiCache(nil)

	e, err := c.Reconcile(emojiFields(1, "Smile"))
	require.NoError(t, err)
	assert.Equal(t, 1, e.ID())
	assert.Equal(t, "Smile", e.Title())
	assert.Equal(t, 1, c.Len())

	got, ok := c.Lookup(1)
	require.True(t, ok)
	assert.Same(t, e, got)
}

func TestRecordCache_IdentityStability(t *testing.T) {
	c := newEmojiCache(nil)

	first, err := c.Reconcile(emojiFields(7, "Smile"))
	require.NoError(t, err)

	second, err := c.Reconcile(decode.FieldMap{"id": json.Number("7"), "faves": json.Number("99")})
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 99, first.Faves())
	assert.Equal(t, "Smile", first.Title(), "untouched fields are retained")
	assert.Equal(t, 1, c.Len())
}

func TestRecordCache_Idempotent(t *testing.T) {
	once := newEmojiCache(nil)
	twice := newEmojiCache(nil)

	a, err := once.Reconcile(emojiFields(3, "Wink"))
	require.NoError(t, err)
	_, err = twice.Reconcile(emojiFields(3, "Wink"))
	require.NoError(t, err)
	b, err := twice.Reconcile(emojiFields(3, "Wink"))
	require.NoError(t, err)

	ja, err := json.Marshal(a)
	require.NoError(t, err)
	jb, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, string(ja), string(jb))
}

func TestRecordCache_MissingID(t *testing.T) {
	c := newEmojiCache(nil)

	_, err := c.Reconcile(decode.FieldMap{"title": "Smile"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errdefs.ErrDecoding)

	var decErr *errdefs.DecodingError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, "id", decErr.Field)
	assert.Equal(t, 0, c.Len())
}

func TestRecordCache_FailedApplyStoresNothing(t *testing.T) {
	c := newEmojiCache(nil)

	fields := emojiFields(4, "Broken")
	fields["image"] = "::bad"
	_, err := c.Reconcile(fields)
	assert.ErrorIs(t, err, errdefs.ErrDecoding)

	_, ok := c.Lookup(4)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestRecordCache_FailedApplyKeepsExisting(t *testing.T) {
	c := newEmojiCache(nil)
	e, err := c.Reconcile(emojiFields(4, "Fine"))
	require.NoError(t, err)

	fields := emojiFields(4, "Renamed")
	fields["image"] = "relative/path.png"
	_, err = c.Reconcile(fields)
	assert.ErrorIs(t, err, errdefs.ErrDecoding)

	got, ok := c.Lookup(4)
	require.True(t, ok)
	assert.Same(t, e, got)
	assert.Equal(t, "Fine", got.Title())
}

func TestRecordCache_LookupMiss(t *testing.T) {
	c := newEmojiCache(nil)
	_, ok := c.Lookup(12345)
	assert.False(t, ok)
}

func TestRecordCache_Snapshot(t *testing.T) {
	c := newEmojiCache(nil)
	for _, id := range []int{5, 1, 3} {
		_, err := c.Reconcile(emojiFields(id, "e"))
		require.NoError(t, err)
	}

	var ids []int
	for _, e := range c.Snapshot() {
		ids = append(ids, e.ID())
	}
	assert.Equal(t, []int{1, 3, 5}, ids)
}

func TestRecordCache_ConcurrentReconcileSameKey(t *testing.T) {
	c := newEmojiCache(nil)

	const workers = 32
	results := make([]*model.Emoji, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			e, err := c.Reconcile(emojiFields(9, fmt.Sprintf("title-%d", i)))
			assert.NoError(t, err)
			results[i] = e
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, c.Len())
	for _, e := range results {
		assert.Same(t, results[0], e)
	}
}

func TestRecordCache_Packs(t *testing.T) {
	c := cache.NewRecordCache("pack", model.NewEmojiPack)

	p, err := c.Reconcile(decode.FieldMap{
		"id":       json.Number("2"),
		"name":     "Cats",
		"download": "https://emoji.gg/packs/cats.zip",
		"amount":   json.Number("12"),
	})
	require.NoError(t, err)
	assert.Equal(t, "pack", c.Kind())
	assert.Equal(t, 12, p.Size())

	_, err = c.Reconcile(decode.FieldMap{"id": json.Number("8"), "name": "No download"})
	assert.ErrorIs(t, err, errdefs.ErrDecoding)
	assert.Contains(t, err.Error(), "pack 8")
}
