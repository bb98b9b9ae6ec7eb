package api

import (
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/kami8ma8810/next-architecture-learning/internal/api/middleware"
	"github.com/kami8ma8810/next-architecture-learning/internal/api/shared"
)

// requestTimeout bounds handler execution; uploads share the same budget.
const requestTimeout = 60 * time.Second

// RouterDeps collects the handlers and middleware mounted by NewRouter.
type RouterDeps struct {
	Auth          *AuthHandler
	Texts         *TextHandler
	Audio         *AudioHandler
	Authenticator middleware.TokenAuthenticator
	Logger        *slog.Logger

	// FilesDir, when set, is served read-only under /files for the local
	// storage backend. Only regular files are served; directories are 404.
	FilesDir string
}

// NewRouter builds the HTTP routing tree.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewTraceMiddleware(deps.Logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(requestTimeout))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: "ok"})
	})

	if deps.FilesDir != "" {
		r.Handle("/files/*", http.StripPrefix("/files/", http.FileServer(filesOnly{http.Dir(deps.FilesDir)})))
	}

	authMiddleware := middleware.NewAuthMiddleware(deps.Authenticator)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/signup", deps.Auth.SignUp)
		r.Post("/auth/signin", deps.Auth.SignIn)

		r.Get("/texts", deps.Texts.ListTexts)
		r.Get("/texts/{id}", deps.Texts.GetText)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Post("/auth/signout", deps.Auth.SignOut)
			r.Get("/auth/me", deps.Auth.Me)
			r.Patch("/auth/me", deps.Auth.UpdateMe)

			r.Post("/texts", deps.Texts.CreateText)
			r.Put("/texts/{id}", deps.Texts.UpdateText)
			r.Delete("/texts/{id}", deps.Texts.DeleteText)

			r.Post("/texts/{id}/records", deps.Texts.CreateRecord)
			r.Get("/texts/{id}/records", deps.Texts.ListRecords)
			r.Get("/records/{id}", deps.Texts.GetRecord)
			r.Patch("/records/{id}", deps.Texts.UpdateRecordScore)
			r.Delete("/records/{id}", deps.Texts.DeleteRecord)

			r.Post("/audio", deps.Audio.UploadAudio)
			r.Get("/audio", deps.Audio.ListAudio)
			r.Get("/audio/{id}", deps.Audio.GetAudio)
			r.Delete("/audio/{id}", deps.Audio.DeleteAudio)
			r.Post("/audio/{id}/evaluations", deps.Audio.EvaluateAudio)
			r.Get("/audio/{id}/evaluations", deps.Audio.ListEvaluations)

			r.Get("/evaluations", deps.Audio.ListUserEvaluations)
		})
	})

	return r
}

// filesOnly hides directories so object keys cannot be enumerated.
type filesOnly struct {
	root http.FileSystem
}

func (f filesOnly) Open(name string) (http.File, error) {
	file, err := f.root.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = file.Close()
		return nil, fs.ErrNotExist
	}
	return file, nil
}
