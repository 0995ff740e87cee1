package loader_test

import (
	"errors"
	"testing"

	"emoji-catalog/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type fakeFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }
func (f *fakeFeature) Load(fiber.Router) error {
	f.loaded = true
	return f.err
}

func TestManager_LoadAll(t *testing.T) {
	on := &fakeFeature{name: "emoji", enabled: true}
	off := &fakeFeature{name: "snapshot"}

	mgr := loader.NewManager()
	mgr.Register(on)
	mgr.Register(off)

	assert.NoError(t, mgr.LoadAll(fiber.New()))
	assert.True(t, on.loaded)
	assert.False(t, off.loaded)
	assert.Equal(t, []string{"emoji"}, mgr.Names())
}

func TestManager_LoadAllStopsOnError(t *testing.T) {
	broken := &fakeFeature{name: "emoji", enabled: true, err: errors.New("boom")}
	next := &fakeFeature{name: "snapshot", enabled: true}

	mgr := loader.NewManager()
	mgr.Register(broken)
	mgr.Register(next)

	err := mgr.LoadAll(fiber.New())
	assert.ErrorContains(t, err, "load feature emoji")
	assert.False(t, next.loaded)
}
