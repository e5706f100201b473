package uploads

import (
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/devfoliohq/devfolio-api/pkg/db"
	"github.com/getsentry/sentry-go"
)

func Download(id string, w http.ResponseWriter, r *http.Request) {
	file, err := db.GetFile(id)

	if err != nil {
		if err != sql.ErrNoRows {
			sentry.CaptureException(err)
		}
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	if r.Header.Get("If-None-Match") == file.Id {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	obj, info, err := GetObject(file.Bucket, file.Hash)
	if err != nil {
		sentry.CaptureException(err)
		http.Error(w, "Failed to get file", http.StatusInternalServerError)
		return
	}

	dispos := "attachment"
	if strings.HasPrefix(file.Mime, "image/") {
		dispos = "inline"
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf(`%s; filename=%s`, dispos, file.Filename))
	w.Header().Set("Content-Type", file.Mime)
	w.Header().Set("Content-Length", strconv.FormatInt(info.Size, 10))
	w.Header().Set("ETag", file.Id)
	w.Header().Set("Cache-Control", "public, max-age=31536000")

	_, err = io.Copy(w, obj)
	if err != nil {
		sentry.CaptureException(err)
	}
}
