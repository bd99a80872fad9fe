package preferences

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/MarcGrol/grocerystore/lib/myerrors"
	"github.com/MarcGrol/grocerystore/lib/mykv"
	"github.com/MarcGrol/grocerystore/lib/mylog"
)

const StorageKey = "theme-storage"

type service struct {
	sync.Mutex
	store  mykv.Store
	logger mylog.Logger
	theme  Theme
}

func newService(c context.Context, store mykv.Store, logger mylog.Logger) *service {
	return &service{
		store:  store,
		logger: logger,
		theme:  loadTheme(c, store, logger),
	}
}

func loadTheme(c context.Context, store mykv.Store, logger mylog.Logger) Theme {
	data, found, err := store.Get(c, StorageKey)
	if err != nil {
		logger.Log(c, StorageKey, mylog.SeverityError, "Error reading theme, using default: %s", err)
		return defaultTheme()
	}
	if !found {
		return defaultTheme()
	}

	stored := Theme{}
	err = json.Unmarshal(data, &stored)
	if err != nil {
		logger.Log(c, StorageKey, mylog.SeverityWarn, "Persisted theme unusable, using default: %s", err)
		return defaultTheme()
	}
	mode, modeOK := ParseMode(string(stored.Mode))
	systemTheme, systemOK := ParseAppearance(string(stored.SystemTheme))
	if !modeOK || !systemOK {
		logger.Log(c, StorageKey, mylog.SeverityWarn, "Persisted theme invalid (%s/%s), using default", stored.Mode, stored.SystemTheme)
		return defaultTheme()
	}
	return newTheme(mode, systemTheme)
}

func (s *service) getTheme(c context.Context) Theme {
	s.Lock()
	defer s.Unlock()

	return s.theme
}

func (s *service) setMode(c context.Context, mode Mode) (Theme, error) {
	s.Lock()
	defer s.Unlock()

	s.logger.Log(c, "", mylog.SeverityInfo, "Set theme mode to %s", mode)

	return s.save(c, newTheme(mode, s.theme.SystemTheme))
}

// toggleTheme flips to dark only from light; dark and system both go to light.
func (s *service) toggleTheme(c context.Context) (Theme, error) {
	s.Lock()
	defer s.Unlock()

	mode := ModeLight
	if s.theme.Mode == ModeLight {
		mode = ModeDark
	}

	s.logger.Log(c, "", mylog.SeverityInfo, "Toggle theme mode from %s to %s", s.theme.Mode, mode)

	return s.save(c, newTheme(mode, s.theme.SystemTheme))
}

func (s *service) setSystemTheme(c context.Context, systemTheme Appearance) (Theme, error) {
	s.Lock()
	defer s.Unlock()

	s.logger.Log(c, "", mylog.SeverityInfo, "Device reports %s appearance", systemTheme)

	return s.save(c, newTheme(s.theme.Mode, systemTheme))
}

// save must be called with the lock held. The in-memory theme only changes once stored.
func (s *service) save(c context.Context, theme Theme) (Theme, error) {
	data, err := json.Marshal(theme)
	if err != nil {
		return s.theme, myerrors.NewInternalError(fmt.Errorf("error encoding theme: %s", err))
	}

	err = s.store.Put(c, StorageKey, data)
	if err != nil {
		return s.theme, myerrors.NewInternalError(fmt.Errorf("error storing theme: %s", err))
	}

	s.theme = theme
	return theme, nil
}
