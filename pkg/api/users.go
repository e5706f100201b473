package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/devfoliohq/devfolio-api/pkg/models"
	"github.com/devfoliohq/devfolio-api/pkg/projects"
	"github.com/devfoliohq/devfolio-api/pkg/uploads"
	"github.com/devfoliohq/devfolio-api/pkg/users"
	"github.com/devfoliohq/devfolio-api/pkg/util"
	"github.com/getsentry/sentry-go"
	"github.com/go-chi/chi/v5"
)

func UserRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(EnsureUser)
		r.Post("/", updateProfile)
	})
	r.Get("/{username}", user)
	r.Get("/{username}/projects", userProjects)
	r.Get("/{username}/avatar", userAvatar)

	return r
}

func user(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	user, err := users.UserByName(username)
	if err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	projectCount, err := users.ProjectCount(user.Id)
	if err != nil {
		sentry.CaptureException(err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	resp, _ := json.Marshal(models.UserResp{
		Id:           user.Id,
		Username:     user.Name,
		Avatar:       user.Avatar,
		Bio:          user.Bio,
		GithubUrl:    user.GithubUrl,
		WebsiteUrl:   user.WebsiteUrl,
		JoinDate:     user.JoinTs,
		ProjectCount: projectCount,
	})

	w.Header().Add("Content-Type", "application/json")
	fmt.Fprintln(w, string(resp))
}

func userProjects(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	user, err := users.UserByName(username)
	if err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	page, limit := util.Pagination(r)

	list, total, err := projects.List(user.Id, page, limit)
	if err != nil {
		sentry.CaptureException(err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	writeProjectPage(w, list, page, limit, total)
}

func userAvatar(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	user, err := users.UserByName(username)
	if err != nil || user.Avatar == nil {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	uploads.Download(strings.TrimPrefix(*user.Avatar, "/uploads/"), w, r)
}

func updateProfile(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(User).(*users.User)

	var form models.ProfileForm

	body := util.HttpBody(r)
	if body == nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	if err := json.Unmarshal(body, &form); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	violations := []string{}
	if form.Username != nil && !validUsername.MatchString(*form.Username) {
		violations = append(violations, "username must be 3-30 word characters")
	}
	if form.Bio != nil && len(*form.Bio) > 500 {
		violations = append(violations, "bio must be at most 500 characters")
	}
	if form.GithubUrl != nil && *form.GithubUrl != "" && !validUrl(*form.GithubUrl) {
		violations = append(violations, "invalid github url")
	}
	if form.WebsiteUrl != nil && *form.WebsiteUrl != "" && !validUrl(*form.WebsiteUrl) {
		violations = append(violations, "invalid website url")
	}
	if len(violations) > 0 {
		badRequest(w, violations)
		return
	}

	if err := users.UpdateProfile(user, &form); err != nil {
		if errors.Is(err, users.ErrNameTaken) {
			http.Error(w, "That username already exists", http.StatusConflict)
			return
		}
		sentry.CaptureException(err)
		http.Error(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}

	fmt.Fprint(w, "Profile updated")
}
