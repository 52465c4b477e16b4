package loader

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type mockFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (f *mockFeature) Name() string    { return f.name }
func (f *mockFeature) IsEnabled() bool { return f.enabled }

func (f *mockFeature) Load(app fiber.Router) error {
	f.loaded = true
	return f.err
}

func TestManager_LoadAll(t *testing.T) {
	enabled := &mockFeature{name: "batches", enabled: true}
	disabled := &mockFeature{name: "journal"}

	mgr := NewManager(zap.NewNop())
	mgr.Register(enabled)
	mgr.Register(disabled)

	assert.NoError(t, mgr.LoadAll(fiber.New()))
	assert.True(t, enabled.loaded)
	assert.False(t, disabled.loaded)
	assert.Len(t, mgr.Features(), 2)
}

func TestManager_LoadAllError(t *testing.T) {
	mgr := NewManager(nil)
	mgr.Register(&mockFeature{name: "batches", enabled: true, err: errors.New("bad route")})

	err := mgr.LoadAll(fiber.New())
	assert.ErrorContains(t, err, "failed to load feature batches: bad route")
}

func TestManager_DuplicateFeature(t *testing.T) {
	mgr := NewManager(nil)
	mgr.Register(&mockFeature{name: "batches", enabled: true})
	mgr.Register(&mockFeature{name: "batches", enabled: true})

	assert.ErrorContains(t, mgr.LoadAll(fiber.New()), "registered twice")
}
