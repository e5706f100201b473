package users

import (
	"database/sql"
	"errors"
	"time"

	"github.com/devfoliohq/devfolio-api/pkg/db"
	"github.com/devfoliohq/devfolio-api/pkg/models"
)

var ErrNameTaken = errors.New("username is taken")

// UpdateProfile applies a partial profile update. The username uniqueness
// check only runs when the name actually changes; the password is not
// reachable through this path.
func UpdateProfile(user *User, form *models.ProfileForm) error {
	name := user.Name
	if form.Username != nil && *form.Username != user.Name {
		other, err := UserByName(*form.Username)
		if err != nil && err != sql.ErrNoRows {
			return err
		}
		if other != nil && other.Id != user.Id {
			return ErrNameTaken
		}
		name = *form.Username
	}

	bio := user.Bio
	if form.Bio != nil {
		bio = form.Bio
	}

	avatar := user.Avatar
	if form.Avatar != nil {
		avatar = form.Avatar
	}

	githubUrl := user.GithubUrl
	if form.GithubUrl != nil {
		githubUrl = form.GithubUrl
	}

	websiteUrl := user.WebsiteUrl
	if form.WebsiteUrl != nil {
		websiteUrl = form.WebsiteUrl
	}

	tx, err := db.Db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"UPDATE users SET name = ?, bio = ?, avatar = ?, github_url = ?, website_url = ?, update_ts = ? WHERE id = ?",
		name,
		bio,
		avatar,
		githubUrl,
		websiteUrl,
		time.Now().Unix(),
		user.Id,
	); err != nil {
		return err
	}

	return tx.Commit()
}
