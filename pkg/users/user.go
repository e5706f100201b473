package users

import (
	"database/sql"
	"time"

	"github.com/devfoliohq/devfolio-api/pkg/db"
)

type User struct {
	Id         int64
	Name       string
	Email      string
	Pw         string
	Avatar     *string
	Bio        *string
	GithubUrl  *string
	WebsiteUrl *string
	JoinTs     int64
	UpdateTs   int64
}

func UserByName(name string) (*User, error) {
	row := db.Db.QueryRow("SELECT * FROM users WHERE name = ? COLLATE nocase LIMIT 1", name)
	return UserFromRow(row)
}

func UserById(id int64) (*User, error) {
	row := db.Db.QueryRow("SELECT * FROM users WHERE id = ?", id)
	return UserFromRow(row)
}

func UserByEmail(email string) (*User, error) {
	row := db.Db.QueryRow("SELECT * FROM users WHERE email = ? LIMIT 1", email)
	return UserFromRow(row)
}

func UserByToken(token string) (*User, error) {
	row := db.Db.QueryRow(
		"SELECT * FROM users WHERE id = (SELECT user FROM auth_tokens WHERE token = ? AND expiration_ts > ?)",
		token,
		time.Now().Unix(),
	)
	return UserFromRow(row)
}

func UserFromRow(row *sql.Row) (*User, error) {
	var user User

	if err := row.Scan(&user.Id, &user.Name, &user.Email, &user.Pw, &user.Avatar, &user.Bio, &user.GithubUrl, &user.WebsiteUrl, &user.JoinTs, &user.UpdateTs); err != nil {
		return nil, err
	}

	return &user, nil
}

func (u *User) Insert() (int64, error) {
	tx, err := db.Db.Begin()
	if err != nil {
		return -1, err
	}
	defer tx.Rollback()

	now := time.Now().Unix()

	insert, err := tx.Exec(
		"INSERT INTO users (name, email, pw, avatar, bio, github_url, website_url, join_ts, update_ts) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		u.Name,
		u.Email,
		u.Pw,
		u.Avatar,
		u.Bio,
		u.GithubUrl,
		u.WebsiteUrl,
		now,
		now,
	)
	if err != nil {
		return -1, err
	}

	if err := tx.Commit(); err != nil {
		return -1, err
	}

	return insert.LastInsertId()
}

func ProjectCount(userId int64) (int64, error) {
	row := db.Db.QueryRow("SELECT COUNT(*) FROM projects WHERE author = ?", userId)

	var projectCount int64
	if err := row.Scan(&projectCount); err != nil {
		return 0, err
	}

	return projectCount, nil
}
