package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/devfoliohq/devfolio-api/pkg/models"
	"github.com/devfoliohq/devfolio-api/pkg/projects"
	"github.com/devfoliohq/devfolio-api/pkg/uploads"
	"github.com/devfoliohq/devfolio-api/pkg/users"
	"github.com/devfoliohq/devfolio-api/pkg/util"
	"github.com/getsentry/sentry-go"
	"github.com/go-chi/chi/v5"
)

func ProjectRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Get("/", listProjects)
	r.Get("/{id}", project)
	r.Get("/{id}/image", projectImage)
	r.Get("/{id}/comments", projectComments)

	r.Group(func(r chi.Router) {
		r.Use(EnsureUser)
		r.Post("/", createProject)
		r.Post("/{id}", updateProject)
		r.Post("/{id}/delete", deleteProject)
		r.Post("/{id}/like", likeProject)
		r.Post("/{id}/comments", addComment)
	})

	return r
}

func projectId(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return 0, false
	}
	return int64(id), true
}

func tags(p *projects.Project) []string {
	if p.Tags == nil {
		return []string{}
	}
	return util.SplitTags(*p.Tags)
}

func projectResp(p *projects.Project) (*models.ProjectResp, error) {
	author, err := users.UserById(p.Author)
	if err != nil {
		return nil, err
	}

	return &models.ProjectResp{
		Id: p.Id,
		Author: models.Author{
			Id:       author.Id,
			Username: author.Name,
			Avatar:   author.Avatar,
		},
		Title:         p.Title,
		Description:   p.Description,
		Image:         p.Image,
		RepoUrl:       p.RepoUrl,
		DemoUrl:       p.DemoUrl,
		Tags:          tags(p),
		LikesCount:    p.LikeCount,
		CommentsCount: p.CommentCount,
		CreatedAt:     p.CreateTs,
		UpdatedAt:     p.UpdateTs,
	}, nil
}

func writeProjectPage(w http.ResponseWriter, list []projects.Project, page, limit int, total int64) {
	resps := []models.ProjectResp{}
	for _, p := range list {
		pr, err := projectResp(&p)
		if err != nil {
			sentry.CaptureException(err)
			http.Error(w, "Something went wrong", http.StatusInternalServerError)
			return
		}
		resps = append(resps, *pr)
	}

	resp, _ := json.Marshal(models.ProjectListResp{
		Projects: resps,
		Page:     page,
		Limit:    limit,
		Total:    total,
		Pages:    util.Pages(total, limit),
	})

	w.Header().Add("Content-Type", "application/json")
	fmt.Fprintln(w, string(resp))
}

func listProjects(w http.ResponseWriter, r *http.Request) {
	page, limit := util.Pagination(r)

	list, total, err := projects.List(0, page, limit)
	if err != nil {
		sentry.CaptureException(err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	writeProjectPage(w, list, page, limit, total)
}

func project(w http.ResponseWriter, r *http.Request) {
	id, ok := projectId(w, r)
	if !ok {
		return
	}

	p, err := projects.ProjectById(id)
	if err != nil {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}

	author, err := users.UserById(p.Author)
	if err != nil {
		sentry.CaptureException(err)
		http.Error(w, "Failed to get project", http.StatusInternalServerError)
		return
	}

	resp, _ := json.Marshal(models.ProjectDetailResp{
		Id: p.Id,
		Author: models.AuthorProfile{
			Id:         author.Id,
			Username:   author.Name,
			Avatar:     author.Avatar,
			Bio:        author.Bio,
			GithubUrl:  author.GithubUrl,
			WebsiteUrl: author.WebsiteUrl,
		},
		Title:         p.Title,
		Description:   p.Description,
		Image:         p.Image,
		RepoUrl:       p.RepoUrl,
		DemoUrl:       p.DemoUrl,
		Tags:          tags(p),
		LikesCount:    p.LikeCount,
		CommentsCount: p.CommentCount,
		CreatedAt:     p.CreateTs,
		UpdatedAt:     p.UpdateTs,
	})

	w.Header().Add("Content-Type", "application/json")
	fmt.Fprintln(w, string(resp))
}

func projectForm(w http.ResponseWriter, r *http.Request) *models.ProjectForm {
	var form models.ProjectForm

	body := util.HttpBody(r)
	if body == nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return nil
	}
	if err := json.Unmarshal(body, &form); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return nil
	}

	violations := []string{}
	if form.Title == "" || len(form.Title) > 100 {
		violations = append(violations, "title must be 1-100 characters")
	}
	if form.Description == "" || len(form.Description) > 1000 {
		violations = append(violations, "description must be 1-1000 characters")
	}
	if !validUrl(form.RepoUrl) {
		violations = append(violations, "invalid repo url")
	}
	if form.DemoUrl != nil && *form.DemoUrl != "" && !validUrl(*form.DemoUrl) {
		violations = append(violations, "invalid demo url")
	}
	if len(violations) > 0 {
		badRequest(w, violations)
		return nil
	}

	return &form
}

func createProject(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(User).(*users.User)

	form := projectForm(w, r)
	if form == nil {
		return
	}

	tagList := strings.Join(util.SplitTags(form.Tags), ",")

	p := projects.Project{
		Author:      user.Id,
		Title:       form.Title,
		Description: form.Description,
		Image:       form.Image,
		RepoUrl:     form.RepoUrl,
		DemoUrl:     form.DemoUrl,
		Tags:        &tagList,
	}

	id, err := p.Insert()
	if err != nil {
		sentry.CaptureException(err)
		http.Error(w, "Failed to create project", http.StatusInternalServerError)
		return
	}

	created, err := projects.ProjectById(id)
	if err != nil {
		sentry.CaptureException(err)
		http.Error(w, "Failed to create project", http.StatusInternalServerError)
		return
	}

	pr, err := projectResp(created)
	if err != nil {
		sentry.CaptureException(err)
		http.Error(w, "Failed to create project", http.StatusInternalServerError)
		return
	}

	resp, _ := json.Marshal(pr)
	w.Header().Add("Content-Type", "application/json")
	fmt.Fprintln(w, string(resp))
}

func updateProject(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(User).(*users.User)

	id, ok := projectId(w, r)
	if !ok {
		return
	}

	p, err := projects.ProjectById(id)
	if err != nil {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}

	if p.Author != user.Id {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	form := projectForm(w, r)
	if form == nil {
		return
	}

	tagList := strings.Join(util.SplitTags(form.Tags), ",")

	p.Title = form.Title
	p.Description = form.Description
	p.Image = form.Image
	p.RepoUrl = form.RepoUrl
	p.DemoUrl = form.DemoUrl
	p.Tags = &tagList

	if err := p.Update(); err != nil {
		sentry.CaptureException(err)
		http.Error(w, "Failed to update project", http.StatusInternalServerError)
		return
	}

	updated, err := projects.ProjectById(id)
	if err != nil {
		sentry.CaptureException(err)
		http.Error(w, "Failed to update project", http.StatusInternalServerError)
		return
	}

	pr, err := projectResp(updated)
	if err != nil {
		sentry.CaptureException(err)
		http.Error(w, "Failed to update project", http.StatusInternalServerError)
		return
	}

	resp, _ := json.Marshal(pr)
	w.Header().Add("Content-Type", "application/json")
	fmt.Fprintln(w, string(resp))
}

func deleteProject(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(User).(*users.User)

	id, ok := projectId(w, r)
	if !ok {
		return
	}

	p, err := projects.ProjectById(id)
	if err != nil {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}

	if p.Author != user.Id {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	if err := projects.Delete(id); err != nil {
		sentry.CaptureException(err)
		http.Error(w, "Failed to delete project", http.StatusInternalServerError)
		return
	}

	fmt.Fprint(w, "Project deleted")
}

func likeProject(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(User).(*users.User)

	id, ok := projectId(w, r)
	if !ok {
		return
	}

	if _, err := projects.ProjectById(id); err != nil {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}

	liked, count, err := projects.ToggleLike(id, user.Id)
	if err != nil {
		sentry.CaptureException(err)
		http.Error(w, "Failed to like project", http.StatusInternalServerError)
		return
	}

	resp, _ := json.Marshal(models.LikeResp{Liked: liked, LikesCount: count})
	w.Header().Add("Content-Type", "application/json")
	fmt.Fprintln(w, string(resp))
}

func projectImage(w http.ResponseWriter, r *http.Request) {
	id, ok := projectId(w, r)
	if !ok {
		return
	}

	p, err := projects.ProjectById(id)
	if err != nil || p.Image == nil {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	uploads.Download(strings.TrimPrefix(*p.Image, "/uploads/"), w, r)
}
