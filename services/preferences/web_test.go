package preferences

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarcGrol/grocerystore/lib/mykv"
	"github.com/MarcGrol/grocerystore/lib/mylog"
)

func TestThemeWebService(t *testing.T) {

	t.Run("Default theme", func(t *testing.T) {
		// setup
		router, _ := setup(t, mykv.NewMemoryStore())

		// when
		theme, code := call(t, router, http.MethodGet, "/api/preference/theme")

		// then
		assert.Equal(t, 200, code)
		assert.Equal(t, Theme{Mode: ModeSystem, SystemTheme: AppearanceLight, IsDark: false}, theme)
	})

	t.Run("Follow dark system theme", func(t *testing.T) {
		// setup
		router, _ := setup(t, mykv.NewMemoryStore())

		// when
		theme, code := call(t, router, http.MethodPut, "/api/preference/theme/system/dark")

		// then
		assert.Equal(t, 200, code)
		assert.Equal(t, ModeSystem, theme.Mode)
		assert.True(t, theme.IsDark)
	})

	t.Run("Explicit mode overrides system theme", func(t *testing.T) {
		// setup
		router, _ := setup(t, mykv.NewMemoryStore())

		// given
		_, _ = call(t, router, http.MethodPut, "/api/preference/theme/system/dark")

		// when
		theme, code := call(t, router, http.MethodPut, "/api/preference/theme/mode/light")

		// then
		assert.Equal(t, 200, code)
		assert.False(t, theme.IsDark)
		assert.Equal(t, AppearanceDark, theme.SystemTheme)
	})

	t.Run("Toggle", func(t *testing.T) {
		// setup
		router, _ := setup(t, mykv.NewMemoryStore())

		// system goes to light, then light goes to dark, then dark goes to light
		theme, _ := call(t, router, http.MethodPut, "/api/preference/theme/toggle")
		assert.Equal(t, ModeLight, theme.Mode)
		theme, _ = call(t, router, http.MethodPut, "/api/preference/theme/toggle")
		assert.Equal(t, ModeDark, theme.Mode)
		assert.True(t, theme.IsDark)
		theme, _ = call(t, router, http.MethodPut, "/api/preference/theme/toggle")
		assert.Equal(t, ModeLight, theme.Mode)
	})

	t.Run("Unknown mode", func(t *testing.T) {
		// setup
		router, _ := setup(t, mykv.NewMemoryStore())

		// when
		_, code := call(t, router, http.MethodPut, "/api/preference/theme/mode/sepia")

		// then
		assert.Equal(t, 400, code)
	})

	t.Run("Survives restart", func(t *testing.T) {
		// setup
		store := mykv.NewMemoryStore()
		router, _ := setup(t, store)

		// given
		_, _ = call(t, router, http.MethodPut, "/api/preference/theme/mode/dark")

		// when
		restarted, _ := setup(t, store)
		theme, _ := call(t, restarted, http.MethodGet, "/api/preference/theme")

		// then
		assert.Equal(t, ModeDark, theme.Mode)
		assert.True(t, theme.IsDark)
	})
}

type brokenStore struct {
	mykv.Store
}

func (brokenStore) Put(c context.Context, key string, value []byte) error {
	return errors.New("read-only")
}

func TestThemeStorageFailures(t *testing.T) {
	c := context.TODO()

	t.Run("failed write keeps previous theme", func(t *testing.T) {
		sut := newService(c, brokenStore{Store: mykv.NewMemoryStore()}, mylog.New("preferences-test"))

		_, err := sut.setMode(c, ModeDark)
		assert.Error(t, err)
		assert.Equal(t, ModeSystem, sut.getTheme(c).Mode)
	})

	t.Run("corrupt or invalid stored theme falls back to default", func(t *testing.T) {
		for _, stored := range []string{`{"mode":`, `{"mode":"sepia","systemTheme":"light"}`} {
			store := mykv.NewMemoryStore()
			require.NoError(t, store.Put(c, StorageKey, []byte(stored)))

			sut := newService(c, store, mylog.New("preferences-test"))
			assert.Equal(t, defaultTheme(), sut.getTheme(c))
		}
	})

	t.Run("derived flag is recomputed on load", func(t *testing.T) {
		store := mykv.NewMemoryStore()
		require.NoError(t, store.Put(c, StorageKey, []byte(`{"mode":"system","systemTheme":"dark","isDark":false}`)))

		sut := newService(c, store, mylog.New("preferences-test"))
		assert.True(t, sut.getTheme(c).IsDark)
	})
}

func setup(t *testing.T, store mykv.Store) (*mux.Router, *webService) {
	sut := NewWebService(context.TODO(), store)
	router := mux.NewRouter()
	err := sut.RegisterEndpoints(context.TODO(), router)
	assert.NoError(t, err)
	return router, sut
}

func call(t *testing.T, router *mux.Router, method string, url string) (Theme, int) {
	request, err := http.NewRequest(method, url, nil)
	require.NoError(t, err)
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)

	theme := Theme{}
	if response.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(response.Body.Bytes(), &theme))
	}
	return theme, response.Code
}
