package catalog_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"emoji-catalog/core/catalog"
	"emoji-catalog/core/errdefs"
	"emoji-catalog/core/transport"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// stubFetcher serves canned bodies per endpoint.
type stubFetcher struct {
	mu     sync.Mutex
	bodies map[transport.Endpoint]string
	errs   map[transport.Endpoint]error
	calls  map[transport.Endpoint]int
	block  chan struct{}
}

func newStubFetcher() *stubFetcher {
	return &stubFetcher{
		bodies: make(map[transport.Endpoint]string),
		errs:   make(map[transport.Endpoint]error),
		calls:  make(map[transport.Endpoint]int),
	}
}

func (s *stubFetcher) set(endpoint transport.Endpoint, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bodies[endpoint] = body
}

func (s *stubFetcher) fail(endpoint transport.Endpoint, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs[endpoint] = err
}

func (s *stubFetcher) count(endpoint transport.Endpoint) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[endpoint]
}

func (s *stubFetcher) Fetch(ctx context.Context, endpoint transport.Endpoint) (string, error) {
	if s.block != nil {
		select {
		case <-s.block:
		case <-ctx.Done():
			return "", &errdefs.TransportError{Endpoint: endpoint.String(), Err: ctx.Err()}
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[endpoint]++
	if err := s.errs[endpoint]; err != nil {
		return "", err
	}
	return s.bodies[endpoint], nil
}

const smileBody = `[{"id":1,"title":"Smile","slug":"smile","image":"http://x/a.png","description":"",
"category":0,"license":"0","source":"","faves":3,"submitted_by":"me","width":0,"height":0,"filesize":0}]`

func TestRefreshEmojis_EndToEnd(t *testing.T) {
	f := newStubFetcher()
	f.set(transport.ListAllEmojis, smileBody)
	client := catalog.New(f)

	emojis, err := client.RefreshEmojis(context.Background())
	require.NoError(t, err)
	require.Len(t, emojis, 1)

	e := emojis[0]
	assert.Equal(t, 1, e.ID())
	assert.Equal(t, "Smile", e.Title())
	assert.Equal(t, 0, e.Category().Index())
	_, ok := e.Category().Resolve()
	assert.False(t, ok, "unresolved until categories are refreshed")

	f.set(transport.ListAllCategories, `["Animals","Faces"]`)
	_, err = client.RefreshCategories(context.Background())
	require.NoError(t, err)

	cat, ok := e.Category().Resolve()
	require.True(t, ok)
	assert.Equal(t, "Animals", cat.Name())
}

func TestRefreshEmojis_KeepsIdentityAcrossRefreshes(t *testing.T) {
	f := newStubFetcher()
	f.set(transport.ListAllEmojis, smileBody)
	client := catalog.New(f)

	first, err := client.RefreshEmojis(context.Background())
	require.NoError(t, err)

	f.set(transport.ListAllEmojis, `[{"id":1,"faves":42}]`)
	second, err := client.RefreshEmojis(context.Background())
	require.NoError(t, err)

	assert.Same(t, first[0], second[0])
	assert.Equal(t, 42, first[0].Faves())
	assert.Equal(t, "Smile", first[0].Title())
}

func TestRefreshCategories_Reorder(t *testing.T) {
	f := newStubFetcher()
	f.set(transport.ListAllCategories, `["Animals","Faces"]`)
	client := catalog.New(f)

	first, err := client.RefreshCategories(context.Background())
	require.NoError(t, err)

	f.set(transport.ListAllCategories, `["Faces","Animals"]`)
	second, err := client.RefreshCategories(context.Background())
	require.NoError(t, err)

	cat0, ok := client.LookupCategory(0)
	require.True(t, ok)
	cat1, ok := client.LookupCategory(1)
	require.True(t, ok)
	assert.Equal(t, "Faces", cat0.Name())
	assert.Equal(t, "Animals", cat1.Name())
	assert.Same(t, first[1], cat0)
	assert.Same(t, first[0], cat1)
	assert.Equal(t, []string{"Faces", "Animals"}, []string{second[0].Name(), second[1].Name()})

	_, ok = client.LookupCategory(2)
	assert.False(t, ok)
}

func TestRefreshPacks(t *testing.T) {
	f := newStubFetcher()
	f.set(transport.ListAllPacks, `[{"id":5,"name":"Cats","description":"d","slug":"cats",
"image":"https://emoji.gg/cats.png","download":"https://emoji.gg/cats.zip","amount":"20"}]`)
	client := catalog.New(f)

	packs, err := client.RefreshPacks(context.Background())
	require.NoError(t, err)
	require.Len(t, packs, 1)
	assert.Equal(t, 20, packs[0].Size())

	p, ok := client.LookupPack(5)
	require.True(t, ok)
	assert.Same(t, packs[0], p)
}

func TestRequestStats(t *testing.T) {
	f := newStubFetcher()
	f.set(transport.ListWebsiteStats, `{"emoji":100,"users":20,"faves":300,"pending_approvals":4}`)
	client := catalog.New(f)

	stats, err := client.RequestStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 100, stats.EmojiCount)
	assert.Equal(t, 20, stats.UserCount)
	assert.Equal(t, 300, stats.TotalFaves)
	assert.Equal(t, 4, stats.PendingApprovals)

	f.set(transport.ListWebsiteStats, `[1,2]`)
	_, err = client.RequestStats(context.Background())
	assert.ErrorIs(t, err, errdefs.ErrDecoding)
}

func TestRefresh_TransportFailure(t *testing.T) {
	f := newStubFetcher()
	f.fail(transport.ListAllEmojis, &errdefs.TransportError{Endpoint: "https://emoji.gg/api", Status: 500})
	client := catalog.New(f)

	emojis, err := client.RefreshEmojis(context.Background())
	assert.Nil(t, emojis)
	assert.ErrorIs(t, err, errdefs.ErrTransport)
	assert.NotErrorIs(t, err, errdefs.ErrDecoding)
}

func TestRefresh_DecodingFailureKeepsEarlierElements(t *testing.T) {
	f := newStubFetcher()
	f.set(transport.ListAllEmojis, `[{"id":1,"title":"ok","image":"http://x/1.png"},{"title":"no id"},{"id":3,"image":"http://x/3.png"}]`)
	client := catalog.New(f)

	emojis, err := client.RefreshEmojis(context.Background())
	assert.Nil(t, emojis, "no partial results")
	assert.ErrorIs(t, err, errdefs.ErrDecoding)

	_, ok := client.LookupEmoji(1)
	assert.True(t, ok, "earlier elements stay reconciled")
	_, ok = client.LookupEmoji(3)
	assert.False(t, ok, "later elements are not processed")
}

func TestRefresh_MalformedJSON(t *testing.T) {
	f := newStubFetcher()
	f.set(transport.ListAllCategories, `["Animals",`)
	client := catalog.New(f)

	_, err := client.RefreshCategories(context.Background())
	assert.ErrorIs(t, err, errdefs.ErrDecoding)
}

func TestRequestEmojiByID(t *testing.T) {
	f := newStubFetcher()
	f.set(transport.ListAllEmojis, smileBody)
	client := catalog.New(f)

	e, err := client.RequestEmojiByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Smile", e.Title())

	_, err = client.RequestEmojiByID(context.Background(), 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, errdefs.ErrNotFound)
	assert.NotErrorIs(t, err, errdefs.ErrTransport)

	var nf *errdefs.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, 99, nf.ID)
	assert.Equal(t, 2, f.count(transport.ListAllEmojis), "every request refreshes")

	// Lookup alone never fails.
	_, ok := client.LookupEmoji(99)
	assert.False(t, ok)
}

func TestRequestPackByID(t *testing.T) {
	f := newStubFetcher()
	f.set(transport.ListAllPacks, `[]`)
	client := catalog.New(f)

	_, err := client.RequestPackByID(context.Background(), 1)
	assert.ErrorIs(t, err, errdefs.ErrNotFound)

	f.fail(transport.ListAllPacks, &errdefs.TransportError{Endpoint: "x", Err: errors.New("boom")})
	_, err = client.RequestPackByID(context.Background(), 1)
	assert.ErrorIs(t, err, errdefs.ErrTransport)
	assert.NotErrorIs(t, err, errdefs.ErrNotFound)
}

func TestAsync(t *testing.T) {
	f := newStubFetcher()
	f.set(transport.ListAllEmojis, smileBody)
	f.set(transport.ListAllCategories, `["Animals"]`)
	f.set(transport.ListAllPacks, `[]`)
	f.set(transport.ListWebsiteStats, `{"emoji":1}`)
	client := catalog.New(f)
	ctx := context.Background()

	emojis := client.RefreshEmojisAsync(ctx)
	categories := client.RefreshCategoriesAsync(ctx)
	packs := client.RefreshPacksAsync(ctx)
	stats := client.RequestStatsAsync(ctx)

	<-emojis.Done()
	e, err := emojis.Wait(ctx)
	require.NoError(t, err)
	assert.Len(t, e, 1)

	c, err := categories.Wait(ctx)
	require.NoError(t, err)
	assert.Len(t, c, 1)

	p, err := packs.Wait(ctx)
	require.NoError(t, err)
	assert.Empty(t, p)

	s, err := stats.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, s.EmojiCount)
}

func TestAsync_WaitGivesUp(t *testing.T) {
	f := newStubFetcher()
	f.block = make(chan struct{})
	f.set(transport.ListAllEmojis, smileBody)
	client := catalog.New(f)

	pending := client.RefreshEmojisAsync(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := pending.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(f.block)
	emojis, err := pending.Wait(context.Background())
	require.NoError(t, err)
	assert.Len(t, emojis, 1)
}

func TestRefreshAll(t *testing.T) {
	f := newStubFetcher()
	f.set(transport.ListAllEmojis, smileBody)
	f.set(transport.ListAllCategories, `["Animals","Faces"]`)
	f.set(transport.ListAllPacks, `[{"id":5,"download":"https://x/5.zip"}]`)
	client := catalog.New(f)

	summary, err := client.RefreshAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalog.Summary{Emojis: 1, Packs: 1, Categories: 2}, summary)

	snap := client.Snapshot()
	assert.Len(t, snap.Emojis, 1)
	assert.Len(t, snap.Packs, 1)
	assert.Len(t, snap.Categories, 2)

	f.fail(transport.ListAllPacks, &errdefs.TransportError{Endpoint: "x", Status: 502})
	_, err = client.RefreshAll(context.Background())
	assert.ErrorIs(t, err, errdefs.ErrTransport)
}

func TestMetricsAndLogging(t *testing.T) {
	f := newStubFetcher()
	f.set(transport.ListAllEmojis, smileBody)
	f.fail(transport.ListAllPacks, &errdefs.TransportError{Endpoint: "x", Status: 500})

	reg := prometheus.NewRegistry()
	metrics := catalog.NewMetrics(reg)
	core, logs := observer.New(zapcore.DebugLevel)
	client := catalog.New(f, catalog.WithMetrics(metrics), catalog.WithLogger(zap.New(core)))

	_, err := client.RefreshEmojis(context.Background())
	require.NoError(t, err)
	_, err = client.RefreshPacks(context.Background())
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Refreshes.WithLabelValues("emojis", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Refreshes.WithLabelValues("packs", "transport")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.CacheSize.WithLabelValues("emoji")))

	failed := logs.FilterMessage("Refresh failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, "packs", failed[0].ContextMap()["endpoint"])
	assert.Len(t, logs.FilterMessage("Refresh finished").All(), 1)
}

func TestRefreshFailureLogsBodyExcerpt(t *testing.T) {
	f := newStubFetcher()
	long := `[{"id":1,"image":"::not a url::","title":"` + strings.Repeat("x", 500) + `"}]`
	f.set(transport.ListAllEmojis, long)

	core, logs := observer.New(zapcore.WarnLevel)
	client := catalog.New(f, catalog.WithLogger(zap.New(core)))

	_, err := client.RefreshEmojis(context.Background())
	require.ErrorIs(t, err, errdefs.ErrDecoding)

	failed := logs.FilterMessage("Refresh failed").All()
	require.Len(t, failed, 1)
	excerpt, ok := failed[0].ContextMap()["body"].(string)
	require.True(t, ok)
	assert.Less(t, len(excerpt), len(long))
	assert.Contains(t, excerpt, "...")
	assert.True(t, strings.HasPrefix(excerpt, `[{"id":1`))
}
