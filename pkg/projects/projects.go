package projects

import (
	"database/sql"
	"time"

	"github.com/devfoliohq/devfolio-api/pkg/db"
)

type Project struct {
	Id           int64
	Author       int64
	Title        string
	Description  string
	Image        *string
	RepoUrl      string
	DemoUrl      *string
	Tags         *string
	LikeCount    int64
	CommentCount int64
	CreateTs     int64
	UpdateTs     int64
}

func ProjectById(id int64) (*Project, error) {
	row := db.Db.QueryRow("SELECT * FROM projects WHERE id = ?", id)

	var p Project
	if err := row.Scan(&p.Id, &p.Author, &p.Title, &p.Description, &p.Image, &p.RepoUrl, &p.DemoUrl, &p.Tags, &p.LikeCount, &p.CommentCount, &p.CreateTs, &p.UpdateTs); err != nil {
		return nil, err
	}

	return &p, nil
}

func ProjectsFromRows(rows *sql.Rows) ([]Project, error) {
	projects := []Project{}

	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.Id, &p.Author, &p.Title, &p.Description, &p.Image, &p.RepoUrl, &p.DemoUrl, &p.Tags, &p.LikeCount, &p.CommentCount, &p.CreateTs, &p.UpdateTs); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}

// List returns one newest-first page of projects plus the total row count.
// An author of 0 means all authors.
func List(author int64, page, limit int) ([]Project, int64, error) {
	where := ""
	args := []any{}
	if author != 0 {
		where = "WHERE author = ?"
		args = append(args, author)
	}

	var total int64
	if err := db.Db.QueryRow("SELECT COUNT(*) FROM projects "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit, (page-1)*limit)

	rows, err := db.Db.Query(
		"SELECT * FROM projects "+where+" ORDER BY create_ts DESC, id DESC LIMIT ? OFFSET ?",
		args...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	projects, err := ProjectsFromRows(rows)
	if err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

func (p *Project) Insert() (int64, error) {
	tx, err := db.Db.Begin()
	if err != nil {
		return -1, err
	}
	defer tx.Rollback()

	now := time.Now().Unix()

	insert, err := tx.Exec(
		"INSERT INTO projects (author, title, description, image, repo_url, demo_url, tags, like_count, comment_count, create_ts, update_ts) VALUES (?, ?, ?, ?, ?, ?, ?, 0, 0, ?, ?)",
		p.Author,
		p.Title,
		p.Description,
		p.Image,
		p.RepoUrl,
		p.DemoUrl,
		p.Tags,
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

func (p *Project) Update() error {
	tx, err := db.Db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"UPDATE projects SET title = ?, description = ?, image = ?, repo_url = ?, demo_url = ?, tags = ?, update_ts = ? WHERE id = ?",
		p.Title,
		p.Description,
		p.Image,
		p.RepoUrl,
		p.DemoUrl,
		p.Tags,
		time.Now().Unix(),
		p.Id,
	); err != nil {
		return err
	}

	return tx.Commit()
}

// Delete removes the project together with every comment on it, the
// comment like rows, and the project like rows, in one transaction.
func Delete(id int64) error {
	tx, err := db.Db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"DELETE FROM comment_likes WHERE comment IN (SELECT id FROM comments WHERE project = ?)", id,
	); err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM comments WHERE project = ?", id); err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM project_likes WHERE project = ?", id); err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM projects WHERE id = ?", id); err != nil {
		return err
	}

	return tx.Commit()
}
