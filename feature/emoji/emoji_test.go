package emoji

import (
	"context"
	"sync"
	"testing"

	"emoji-catalog/core/catalog"
	"emoji-catalog/core/errdefs"
	"emoji-catalog/core/transport"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	emojisBody = `[
{"id":1,"title":"Smile","slug":"smile","image":"https://emoji.gg/assets/emoji/smile.png","description":"",
"category":1,"license":"0","source":"","faves":3,"submitted_by":"ana","width":64,"height":64,"filesize":2048},
{"id":2,"title":"Cat","slug":"cat","image":"https://emoji.gg/assets/emoji/cat.png","description":"meow",
"category":0,"license":"1","source":"","faves":10,"submitted_by":"bo","width":0,"height":0,"filesize":0}]`
	packsBody      = `[{"id":7,"name":"Blobs","description":"blob pack","slug":"blobs","image":"","download":"https://emoji.gg/pack/blobs.zip","amount":12}]`
	categoriesBody = `["Animals","Faces"]`
	statsBody      = `{"emoji":"100","users":20,"faves":300,"pending_approvals":4}`
)

// stubFetcher serves canned bodies and records how often each endpoint was hit.
type stubFetcher struct {
	mu     sync.Mutex
	bodies map[transport.Endpoint]string
	errs   map[transport.Endpoint]error
	calls  map[transport.Endpoint]int
}

func newStubFetcher() *stubFetcher {
	return &stubFetcher{
		bodies: map[transport.Endpoint]string{
			transport.ListAllEmojis:     emojisBody,
			transport.ListAllPacks:      packsBody,
			transport.ListAllCategories: categoriesBody,
			transport.ListWebsiteStats:  statsBody,
		},
		errs:  make(map[transport.Endpoint]error),
		calls: make(map[transport.Endpoint]int),
	}
}

func (s *stubFetcher) Fetch(_ context.Context, endpoint transport.Endpoint) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[endpoint]++
	if err := s.errs[endpoint]; err != nil {
		return "", err
	}
	return s.bodies[endpoint], nil
}

func (s *stubFetcher) fail(endpoint transport.Endpoint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs[endpoint] = &errdefs.TransportError{Endpoint: endpoint.String(), Status: 503}
}

func (s *stubFetcher) count(endpoint transport.Endpoint) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[endpoint]
}

func setupTestApp(t *testing.T) (*fiber.App, *stubFetcher, *Service) {
	t.Helper()
	f := newStubFetcher()
	client := catalog.New(f)
	feature := NewFeature(client, zap.NewNop())

	app := fiber.New()
	if err := feature.Load(app); err != nil {
		t.Fatalf("load feature: %v", err)
	}
	return app, f, feature.Service()
}
