package comments

import (
	"database/sql"
	"errors"
	"time"

	"github.com/devfoliohq/devfolio-api/pkg/db"
	"github.com/devfoliohq/devfolio-api/pkg/models"
	"github.com/devfoliohq/devfolio-api/pkg/users"
)

var (
	ErrParentNotFound = errors.New("parent comment not found")
	ErrNestedReply    = errors.New("cannot reply to a reply")
)

type Comment struct {
	Id        int64
	Content   string
	Author    int64
	Project   int64
	ReplyTo   *int64
	LikeCount int64
	CreateTs  int64
	UpdateTs  int64
}

func CommentById(id int64) (*Comment, error) {
	row := db.Db.QueryRow("SELECT * FROM comments WHERE id = ?", id)

	var c Comment
	if err := row.Scan(&c.Id, &c.Content, &c.Author, &c.Project, &c.ReplyTo, &c.LikeCount, &c.CreateTs, &c.UpdateTs); err != nil {
		return nil, err
	}

	return &c, nil
}

// Insert adds a comment to its project and refreshes the project's
// comment_count in the same transaction. Replies must name an existing
// top-level comment on the same project; replies to replies are rejected
// so the tree never grows past two levels.
func (c *Comment) Insert() (int64, error) {
	tx, err := db.Db.Begin()
	if err != nil {
		return -1, err
	}
	defer tx.Rollback()

	if c.ReplyTo != nil {
		var parentProject int64
		var parentReplyTo *int64

		err := tx.QueryRow("SELECT project, reply_to FROM comments WHERE id = ?", *c.ReplyTo).Scan(&parentProject, &parentReplyTo)
		if err == sql.ErrNoRows {
			return -1, ErrParentNotFound
		}
		if err != nil {
			return -1, err
		}

		if parentProject != c.Project {
			return -1, ErrParentNotFound
		}
		if parentReplyTo != nil {
			return -1, ErrNestedReply
		}
	}

	now := time.Now().Unix()

	insert, err := tx.Exec(
		"INSERT INTO comments (content, author, project, reply_to, like_count, create_ts, update_ts) VALUES (?, ?, ?, ?, 0, ?, ?)",
		c.Content,
		c.Author,
		c.Project,
		c.ReplyTo,
		now,
		now,
	)
	if err != nil {
		return -1, err
	}

	if err := refreshCommentCount(tx, c.Project); err != nil {
		return -1, err
	}

	if err := tx.Commit(); err != nil {
		return -1, err
	}

	return insert.LastInsertId()
}

func (c *Comment) UpdateContent(content string) error {
	tx, err := db.Db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"UPDATE comments SET content = ?, update_ts = ? WHERE id = ?",
		content,
		time.Now().Unix(),
		c.Id,
	); err != nil {
		return err
	}

	return tx.Commit()
}

// Delete removes the comment, its replies and all their like rows, then
// refreshes the project's comment_count from the comments table. One
// transaction, so the counter cannot drift from the cascade.
func (c *Comment) Delete() error {
	tx, err := db.Db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"DELETE FROM comment_likes WHERE comment = ? OR comment IN (SELECT id FROM comments WHERE reply_to = ?)",
		c.Id,
		c.Id,
	); err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM comments WHERE reply_to = ?", c.Id); err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM comments WHERE id = ?", c.Id); err != nil {
		return err
	}

	if err := refreshCommentCount(tx, c.Project); err != nil {
		return err
	}

	return tx.Commit()
}

func refreshCommentCount(tx *sql.Tx, projectId int64) error {
	_, err := tx.Exec(
		"UPDATE projects SET comment_count = (SELECT COUNT(*) FROM comments WHERE project = ?) WHERE id = ?",
		projectId,
		projectId,
	)
	return err
}

// CommentsForProject returns one page of top-level comments, newest first,
// with replies fully expanded. The total counts top-level comments only.
func CommentsForProject(projectId int64, page, limit int) ([]models.CommentResp, int64, error) {
	var total int64
	if err := db.Db.QueryRow(
		"SELECT COUNT(*) FROM comments WHERE project = ? AND reply_to IS NULL", projectId,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := db.Db.Query(
		"SELECT * FROM comments WHERE project = ? AND reply_to IS NULL ORDER BY create_ts DESC, id DESC LIMIT ? OFFSET ?",
		projectId,
		limit,
		(page-1)*limit,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	comments, err := commentsFromRows(rows)
	if err != nil {
		return nil, 0, err
	}

	resp := []models.CommentResp{}

	for _, c := range comments {
		cr, err := toResp(&c)
		if err != nil {
			return nil, 0, err
		}

		replies, err := Replies(c.Id)
		if err != nil {
			return nil, 0, err
		}
		cr.Replies = replies

		resp = append(resp, *cr)
	}

	return resp, total, nil
}

// Replies expands a top-level comment's reply set, oldest first.
func Replies(commentId int64) ([]models.CommentResp, error) {
	rows, err := db.Db.Query(
		"SELECT * FROM comments WHERE reply_to = ? ORDER BY create_ts ASC, id ASC",
		commentId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments, err := commentsFromRows(rows)
	if err != nil {
		return nil, err
	}

	resp := []models.CommentResp{}

	for _, c := range comments {
		cr, err := toResp(&c)
		if err != nil {
			return nil, err
		}
		resp = append(resp, *cr)
	}

	return resp, nil
}

func commentsFromRows(rows *sql.Rows) ([]Comment, error) {
	comments := []Comment{}

	for rows.Next() {
		var c Comment
		if err := rows.Scan(&c.Id, &c.Content, &c.Author, &c.Project, &c.ReplyTo, &c.LikeCount, &c.CreateTs, &c.UpdateTs); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	return comments, rows.Err()
}

func toResp(c *Comment) (*models.CommentResp, error) {
	author, err := users.UserById(c.Author)
	if err != nil {
		return nil, err
	}

	return &models.CommentResp{
		Id:      c.Id,
		Content: c.Content,
		Author: models.Author{
			Id:       author.Id,
			Username: author.Name,
			Avatar:   author.Avatar,
		},
		ReplyTo:    c.ReplyTo,
		LikesCount: c.LikeCount,
		CreatedAt:  c.CreateTs,
	}, nil
}
