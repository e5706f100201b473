package comments

import (
	"github.com/devfoliohq/devfolio-api/pkg/db"
)

// ToggleLike mirrors the project like toggle: flip membership, refresh
// like_count from the like table, all in one transaction.
func ToggleLike(commentId, userId int64) (bool, int64, error) {
	tx, err := db.Db.Begin()
	if err != nil {
		return false, 0, err
	}
	defer tx.Rollback()

	var liked bool
	if err := tx.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM comment_likes WHERE comment = ? AND user = ?)",
		commentId,
		userId,
	).Scan(&liked); err != nil {
		return false, 0, err
	}

	if liked {
		if _, err := tx.Exec(
			"DELETE FROM comment_likes WHERE comment = ? AND user = ?", commentId, userId,
		); err != nil {
			return false, 0, err
		}
	} else {
		if _, err := tx.Exec(
			"INSERT INTO comment_likes (user, comment) VALUES (?, ?)", userId, commentId,
		); err != nil {
			return false, 0, err
		}
	}

	if _, err := tx.Exec(
		"UPDATE comments SET like_count = (SELECT COUNT(*) FROM comment_likes WHERE comment = ?) WHERE id = ?",
		commentId,
		commentId,
	); err != nil {
		return false, 0, err
	}

	var count int64
	if err := tx.QueryRow("SELECT like_count FROM comments WHERE id = ?", commentId).Scan(&count); err != nil {
		return false, 0, err
	}

	if err := tx.Commit(); err != nil {
		return false, 0, err
	}

	return !liked, count, nil
}
