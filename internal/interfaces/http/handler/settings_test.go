package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	settingsapp "github.com/medigas/backend/internal/application/settings"
	"github.com/medigas/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memSettingsRepo is an in-memory settings.Repository for handler tests
type memSettingsRepo struct {
	mu    sync.Mutex
	value []byte
}

func (r *memSettingsRepo) Load(ctx context.Context) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.value == nil {
		return nil, shared.ErrNotFound
	}
	return r.value, nil
}

func (r *memSettingsRepo) Save(ctx context.Context, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.value = value
	return nil
}

func newSettingsRouter(t *testing.T) *gin.Engine {
	t.Helper()
	svc := settingsapp.NewService(&memSettingsRepo{}, zap.NewNop())
	return newTestRouter(t, NewSettingsHandler(svc))
}

func TestGetSettings_Defaults(t *testing.T) {
	engine := newSettingsRouter(t)

	w := doJSON(t, engine, "GET", "/api/v1/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	prefs := data["preferences"].(map[string]any)
	assert.Equal(t, false, prefs["darkMode"])
	assert.Equal(t, "medium", prefs["fontSize"])
	assert.Equal(t, true, prefs["animationsEnabled"])
}

func TestUpdateSettings_PartialMerge(t *testing.T) {
	engine := newSettingsRouter(t)

	w := doJSON(t, engine, "PATCH", "/api/v1/settings", map[string]any{"darkMode": true})
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	prefs := data["preferences"].(map[string]any)
	assert.Equal(t, true, prefs["darkMode"])
	// Untouched fields keep their defaults
	assert.Equal(t, "medium", prefs["fontSize"])

	visual := data["visual"].(map[string]any)
	assert.Contains(t, visual["body_classes"], "dark-theme")
}

func TestUpdateSettings_InvalidFontSize(t *testing.T) {
	engine := newSettingsRouter(t)

	w := doJSON(t, engine, "PATCH", "/api/v1/settings", map[string]any{"fontSize": "enormous"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateSettings_EmptyUpdateRejected(t *testing.T) {
	engine := newSettingsRouter(t)

	w := doJSON(t, engine, "PATCH", "/api/v1/settings", map[string]any{})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "ERR_VALIDATION", envelope.Error.Code)
}

func TestTogglePanel(t *testing.T) {
	engine := newSettingsRouter(t)

	w := doJSON(t, engine, "POST", "/api/v1/settings/panel/toggle", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeData(t, w)["open"])

	w = doJSON(t, engine, "POST", "/api/v1/settings/panel/toggle", nil)
	assert.Equal(t, false, decodeData(t, w)["open"])
}
