package uploads

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/devfoliohq/devfolio-api/pkg/db"
	"github.com/devfoliohq/devfolio-api/pkg/users"
	"github.com/devfoliohq/devfolio-api/pkg/util"
	"github.com/minio/minio-go/v7"
)

var ErrUnsupported = errors.New("unsupported file type")

// IngestImage stores an uploaded image in the given bucket and indexes it.
// Avatar uploads also repoint the uploader's profile at the new file.
func IngestImage(bucket string, file multipart.File, header *multipart.FileHeader, user *users.User) (db.File, error) {
	id, err := util.GenerateId(16)
	if err != nil {
		return db.File{}, err
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return db.File{}, err
	}

	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return db.File{}, ErrUnsupported
	}

	sum := sha256.Sum256(data)

	f := db.File{
		Id:       id,
		Bucket:   bucket,
		Hash:     hex.EncodeToString(sum[:]),
		Filename: header.Filename,
		Mime:     mime,
		Uploader: user.Id,
	}

	if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		f.Width = &cfg.Width
		f.Height = &cfg.Height
	}

	if _, err := db.Uploads.PutObject(
		ctx,
		f.Bucket,
		f.Hash,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: f.Mime},
	); err != nil {
		return db.File{}, err
	}

	if err := f.Index(); err != nil {
		return db.File{}, err
	}

	if bucket == "avatars" {
		tx, err := db.Db.Begin()
		if err != nil {
			return db.File{}, err
		}
		defer tx.Rollback()

		if _, err := tx.Exec(
			"UPDATE users SET avatar = ? WHERE id = ?",
			fmt.Sprint("/uploads/", f.Id),
			user.Id,
		); err != nil {
			return db.File{}, err
		}

		if err := tx.Commit(); err != nil {
			return db.File{}, err
		}
	}

	return f, nil
}
