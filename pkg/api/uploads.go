package api

import (
	"fmt"
	"net/http"

	"github.com/devfoliohq/devfolio-api/pkg/uploads"
	"github.com/devfoliohq/devfolio-api/pkg/users"
	"github.com/getsentry/sentry-go"
	"github.com/go-chi/chi/v5"
)

func UploadRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(EnsureUser)
		r.Post("/{type:avatar|image}", upload)
	})
	r.Get("/{id}", download)

	return r
}

func upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(5e6); err != nil {
		http.Error(w, "Image exceeds 5 mb", http.StatusBadRequest)
		return
	}

	user := r.Context().Value(User).(*users.User)

	file, header, err := r.FormFile("file")
	if err != nil {
		if err != http.ErrMissingFile {
			sentry.CaptureException(err)
		}
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	defer file.Close()

	objectType := chi.URLParam(r, "type")
	bucket := "images"
	if objectType == "avatar" {
		bucket = "avatars"
	}

	obj, err := uploads.IngestImage(bucket, file, header, user)
	if err != nil {
		if err == uploads.ErrUnsupported {
			http.Error(w, "Unsupported file type", http.StatusBadRequest)
			return
		}
		sentry.CaptureException(err)
		http.Error(w, "Failed to upload", http.StatusInternalServerError)
		return
	}

	fmt.Fprint(w, obj.Id)
}

func download(w http.ResponseWriter, r *http.Request) {
	uploads.Download(chi.URLParam(r, "id"), w, r)
}
