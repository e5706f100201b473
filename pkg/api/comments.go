package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/devfoliohq/devfolio-api/pkg/comments"
	"github.com/devfoliohq/devfolio-api/pkg/models"
	"github.com/devfoliohq/devfolio-api/pkg/projects"
	"github.com/devfoliohq/devfolio-api/pkg/users"
	"github.com/devfoliohq/devfolio-api/pkg/util"
	"github.com/getsentry/sentry-go"
	"github.com/go-chi/chi/v5"
)

func CommentRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(EnsureUser)
		r.Post("/{id}", updateComment)
		r.Post("/{id}/delete", deleteComment)
		r.Post("/{id}/like", likeComment)
	})

	return r
}

func commentId(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return 0, false
	}
	return int64(id), true
}

func projectComments(w http.ResponseWriter, r *http.Request) {
	id, ok := projectId(w, r)
	if !ok {
		return
	}

	if _, err := projects.ProjectById(id); err != nil {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}

	page, limit := util.Pagination(r)

	list, total, err := comments.CommentsForProject(id, page, limit)
	if err != nil {
		sentry.CaptureException(err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	resp, _ := json.Marshal(models.CommentListResp{
		Comments: list,
		Page:     page,
		Limit:    limit,
		Total:    total,
		Pages:    util.Pages(total, limit),
	})

	w.Header().Add("Content-Type", "application/json")
	fmt.Fprintln(w, string(resp))
}

func addComment(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(User).(*users.User)

	id, ok := projectId(w, r)
	if !ok {
		return
	}

	if _, err := projects.ProjectById(id); err != nil {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}

	var form models.CommentForm

	body := util.HttpBody(r)
	if body == nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	if err := json.Unmarshal(body, &form); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	if form.Content == "" || len(form.Content) > 500 {
		badRequest(w, []string{"content must be 1-500 characters"})
		return
	}

	c := comments.Comment{
		Content: form.Content,
		Author:  user.Id,
		Project: id,
		ReplyTo: form.ReplyTo,
	}

	cid, err := c.Insert()
	if err != nil {
		if errors.Is(err, comments.ErrParentNotFound) {
			http.Error(w, "Comment not found", http.StatusNotFound)
			return
		}
		if errors.Is(err, comments.ErrNestedReply) {
			badRequest(w, []string{"cannot reply to a reply"})
			return
		}
		sentry.CaptureException(err)
		http.Error(w, "Failed to post comment", http.StatusInternalServerError)
		return
	}

	created, err := comments.CommentById(cid)
	if err != nil {
		sentry.CaptureException(err)
		http.Error(w, "Failed to post comment", http.StatusInternalServerError)
		return
	}

	resp, _ := json.Marshal(models.CommentResp{
		Id:      created.Id,
		Content: created.Content,
		Author: models.Author{
			Id:       user.Id,
			Username: user.Name,
			Avatar:   user.Avatar,
		},
		ReplyTo:    created.ReplyTo,
		LikesCount: created.LikeCount,
		CreatedAt:  created.CreateTs,
	})

	w.Header().Add("Content-Type", "application/json")
	fmt.Fprintln(w, string(resp))
}

func updateComment(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(User).(*users.User)

	id, ok := commentId(w, r)
	if !ok {
		return
	}

	c, err := comments.CommentById(id)
	if err != nil {
		http.Error(w, "Comment not found", http.StatusNotFound)
		return
	}

	if c.Author != user.Id {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	var form models.CommentForm

	body := util.HttpBody(r)
	if body == nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	if err := json.Unmarshal(body, &form); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	if form.Content == "" || len(form.Content) > 500 {
		badRequest(w, []string{"content must be 1-500 characters"})
		return
	}

	if err := c.UpdateContent(form.Content); err != nil {
		sentry.CaptureException(err)
		http.Error(w, "Failed to update comment", http.StatusInternalServerError)
		return
	}

	fmt.Fprint(w, "Comment updated")
}

func deleteComment(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(User).(*users.User)

	id, ok := commentId(w, r)
	if !ok {
		return
	}

	c, err := comments.CommentById(id)
	if err != nil {
		http.Error(w, "Comment not found", http.StatusNotFound)
		return
	}

	if c.Author != user.Id {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	if err := c.Delete(); err != nil {
		sentry.CaptureException(err)
		http.Error(w, "Failed to delete comment", http.StatusInternalServerError)
		return
	}

	fmt.Fprint(w, "Comment deleted")
}

func likeComment(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(User).(*users.User)

	id, ok := commentId(w, r)
	if !ok {
		return
	}

	if _, err := comments.CommentById(id); err != nil {
		http.Error(w, "Comment not found", http.StatusNotFound)
		return
	}

	liked, count, err := comments.ToggleLike(id, user.Id)
	if err != nil {
		sentry.CaptureException(err)
		http.Error(w, "Failed to like comment", http.StatusInternalServerError)
		return
	}

	resp, _ := json.Marshal(models.LikeResp{Liked: liked, LikesCount: count})
	w.Header().Add("Content-Type", "application/json")
	fmt.Fprintln(w, string(resp))
}
