package projects

import (
	"github.com/devfoliohq/devfolio-api/pkg/db"
)

// ToggleLike flips the user's membership in the project's like set and
// refreshes like_count from the like table before committing, so the stored
// count always matches the post-mutation set. Toggling twice is a no-op.
func ToggleLike(projectId, userId int64) (bool, int64, error) {
	tx, err := db.Db.Begin()
	if err != nil {
		return false, 0, err
	}
	defer tx.Rollback()

	var liked bool
	if err := tx.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM project_likes WHERE project = ? AND user = ?)",
		projectId,
		userId,
	).Scan(&liked); err != nil {
		return false, 0, err
	}

	if liked {
		if _, err := tx.Exec(
			"DELETE FROM project_likes WHERE project = ? AND user = ?", projectId, userId,
		); err != nil {
			return false, 0, err
		}
	} else {
		if _, err := tx.Exec(
			"INSERT INTO project_likes (user, project) VALUES (?, ?)", userId, projectId,
		); err != nil {
			return false, 0, err
		}
	}

	if _, err := tx.Exec(
		"UPDATE projects SET like_count = (SELECT COUNT(*) FROM project_likes WHERE project = ?) WHERE id = ?",
		projectId,
		projectId,
	); err != nil {
		return false, 0, err
	}

	var count int64
	if err := tx.QueryRow("SELECT like_count FROM projects WHERE id = ?", projectId).Scan(&count); err != nil {
		return false, 0, err
	}

	if err := tx.Commit(); err != nil {
		return false, 0, err
	}

	return !liked, count, nil
}
