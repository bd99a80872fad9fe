package preferences

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/grocerystore/lib/mycontext"
	"github.com/MarcGrol/grocerystore/lib/myerrors"
	"github.com/MarcGrol/grocerystore/lib/myhttp"
	"github.com/MarcGrol/grocerystore/lib/mykv"
	"github.com/MarcGrol/grocerystore/lib/mylog"
)

type webService struct {
	logger  mylog.Logger
	service *service
}

func NewWebService(c context.Context, store mykv.Store) *webService {
	logger := mylog.New("preferences")
	return &webService{
		logger:  logger,
		service: newService(c, store, logger),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/preference/theme", s.getTheme()).Methods("GET")
	router.HandleFunc("/api/preference/theme/toggle", s.toggleTheme()).Methods("PUT")
	router.HandleFunc("/api/preference/theme/mode/{mode}", s.setMode()).Methods("PUT")
	router.HandleFunc("/api/preference/theme/system/{theme}", s.setSystemTheme()).Methods("PUT")

	return nil
}

func (s *webService) getTheme() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		responseWriter.Write(c, w, http.StatusOK, s.service.getTheme(c))
	}
}

func (s *webService) toggleTheme() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		theme, err := s.service.toggleTheme(c)
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, theme)
	}
}

func (s *webService) setMode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		mode, ok := ParseMode(mux.Vars(r)["mode"])
		if !ok {
			responseWriter.WriteError(c, w, 1, myerrors.NewInvalidInputErrorf("unknown theme mode '%s'", mux.Vars(r)["mode"]))
			return
		}

		theme, err := s.service.setMode(c, mode)
		if err != nil {
			responseWriter.WriteError(c, w, 2, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, theme)
	}
}

func (s *webService) setSystemTheme() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		systemTheme, ok := ParseAppearance(mux.Vars(r)["theme"])
		if !ok {
			responseWriter.WriteError(c, w, 1, myerrors.NewInvalidInputErrorf("unknown system theme '%s'", mux.Vars(r)["theme"]))
			return
		}

		theme, err := s.service.setSystemTheme(c, systemTheme)
		if err != nil {
			responseWriter.WriteError(c, w, 2, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, theme)
	}
}
