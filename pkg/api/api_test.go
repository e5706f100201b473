package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/devfoliohq/devfolio-api/pkg/db"
	"github.com/devfoliohq/devfolio-api/pkg/users"
	"github.com/devfoliohq/devfolio-api/pkg/util"
	"golang.org/x/crypto/bcrypt"
)

func setupServer(t *testing.T) *httptest.Server {
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "test.db"))
	util.InitConfig()
	if err := db.InitDB(); err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(Router())
	t.Cleanup(srv.Close)
	return srv
}

func newUserToken(t *testing.T, name string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse battery"), 10)
	if err != nil {
		t.Fatal(err)
	}

	u := users.User{Name: name, Email: name + "@example.com", Pw: string(hash)}
	id, err := u.Insert()
	if err != nil {
		t.Fatal(err)
	}

	token, err := users.GetOrCreateToken(id)
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func do(t *testing.T, method, url, token string, body any) (*http.Response, []byte) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}

	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatal(err)
	}
	if token != "" {
		req.Header.Set("Token", token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var out bytes.Buffer
	if _, err := out.ReadFrom(resp.Body); err != nil {
		t.Fatal(err)
	}
	return resp, out.Bytes()
}

func decode(t *testing.T, body []byte, v any) {
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("bad json %q: %v", body, err)
	}
}

func TestRegisterValidationList(t *testing.T) {
	srv := setupServer(t)

	resp, body := do(t, "POST", srv.URL+"/auth/register", "", map[string]string{
		"username": "x",
		"email":    "not-an-email",
		"password": "weak",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", resp.StatusCode)
	}

	var out struct {
		Errors []string `json:"errors"`
	}
	decode(t, body, &out)
	if len(out.Errors) != 3 {
		t.Errorf("got %d violations, want all 3: %v", len(out.Errors), out.Errors)
	}
}

func TestRegisterLoginMe(t *testing.T) {
	srv := setupServer(t)

	resp, _ := do(t, "POST", srv.URL+"/auth/register", "", map[string]string{
		"username": "alice",
		"email":    "Alice@Example.com",
		"password": "correct horse battery",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("register: got %d", resp.StatusCode)
	}

	// duplicate username is a conflict, checked before any write
	resp, _ = do(t, "POST", srv.URL+"/auth/register", "", map[string]string{
		"username": "ALICE",
		"email":    "other@example.com",
		"password": "correct horse battery",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("duplicate register: got %d, want 409", resp.StatusCode)
	}

	resp, body := do(t, "POST", srv.URL+"/auth/login", "", map[string]string{
		"username": "alice",
		"password": "correct horse battery",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: got %d", resp.StatusCode)
	}

	var login struct {
		Token string `json:"token"`
	}
	decode(t, body, &login)
	if login.Token == "" {
		t.Fatal("no token")
	}

	resp, body = do(t, "GET", srv.URL+"/auth/me", login.Token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("me: got %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), "alice@example.com") {
		t.Error("me should include the lowercased email")
	}

	resp, _ = do(t, "GET", srv.URL+"/auth/me", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("me without token: got %d, want 401", resp.StatusCode)
	}

	// public profile never leaks email or password hash
	_, body = do(t, "GET", srv.URL+"/users/alice", "", nil)
	if strings.Contains(string(body), "email") || strings.Contains(string(body), "pw") {
		t.Errorf("public profile leaks credentials: %s", body)
	}
}

func TestProjectLifecycle(t *testing.T) {
	srv := setupServer(t)

	alice := newUserToken(t, "alice")
	bob := newUserToken(t, "bob")

	resp, body := do(t, "POST", srv.URL+"/projects", alice, map[string]any{
		"title":       "devfolio",
		"description": "portfolio app",
		"repoUrl":     "https://example.com/repo",
		"tags":        "web, api , ",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create: got %d: %s", resp.StatusCode, body)
	}

	var created struct {
		Id   int64    `json:"id"`
		Tags []string `json:"tags"`
	}
	decode(t, body, &created)
	if len(created.Tags) != 2 || created.Tags[0] != "web" || created.Tags[1] != "api" {
		t.Errorf("tags not split/trimmed: %v", created.Tags)
	}

	// pagination envelope
	_, body = do(t, "GET", srv.URL+"/projects", "", nil)
	var list struct {
		Projects []json.RawMessage `json:"projects"`
		Page     int               `json:"page"`
		Limit    int               `json:"limit"`
		Total    int64             `json:"total"`
		Pages    int64             `json:"pages"`
	}
	decode(t, body, &list)
	if list.Page != 1 || list.Limit != 10 || list.Total != 1 || list.Pages != 1 || len(list.Projects) != 1 {
		t.Errorf("bad envelope: %+v", list)
	}

	resp, _ = do(t, "GET", srv.URL+"/projects/999", "", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("missing project: got %d, want 404", resp.StatusCode)
	}

	// like toggle round trip
	url := fmt.Sprintf("%s/projects/%d/like", srv.URL, created.Id)
	var like struct {
		Liked      bool  `json:"liked"`
		LikesCount int64 `json:"likesCount"`
	}
	_, body = do(t, "POST", url, bob, nil)
	decode(t, body, &like)
	if !like.Liked || like.LikesCount != 1 {
		t.Errorf("first toggle: %+v", like)
	}
	_, body = do(t, "POST", url, bob, nil)
	decode(t, body, &like)
	if like.Liked || like.LikesCount != 0 {
		t.Errorf("second toggle: %+v", like)
	}

	// only the author may update or delete
	resp, _ = do(t, "POST", fmt.Sprintf("%s/projects/%d", srv.URL, created.Id), bob, map[string]any{
		"title":       "stolen",
		"description": "x",
		"repoUrl":     "https://example.com/repo",
	})
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("non-author update: got %d, want 403", resp.StatusCode)
	}

	resp, _ = do(t, "POST", fmt.Sprintf("%s/projects/%d/delete", srv.URL, created.Id), bob, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("non-author delete: got %d, want 403", resp.StatusCode)
	}

	resp, body = do(t, "POST", fmt.Sprintf("%s/projects/%d/delete", srv.URL, created.Id), alice, nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("author delete: got %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), "deleted") {
		t.Errorf("expected a plain success message, got %s", body)
	}
}

func TestCommentEndpoints(t *testing.T) {
	srv := setupServer(t)

	alice := newUserToken(t, "alice")
	bob := newUserToken(t, "bob")

	_, body := do(t, "POST", srv.URL+"/projects", alice, map[string]any{
		"title":       "devfolio",
		"description": "portfolio app",
		"repoUrl":     "https://example.com/repo",
	})
	var project struct {
		Id int64 `json:"id"`
	}
	decode(t, body, &project)

	commentsUrl := fmt.Sprintf("%s/projects/%d/comments", srv.URL, project.Id)

	resp, body := do(t, "POST", commentsUrl, bob, map[string]any{"content": "nice"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("comment: got %d: %s", resp.StatusCode, body)
	}
	var comment struct {
		Id int64 `json:"id"`
	}
	decode(t, body, &comment)

	resp, body = do(t, "POST", commentsUrl, alice, map[string]any{"content": "thanks", "replyTo": comment.Id})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("reply: got %d: %s", resp.StatusCode, body)
	}
	var reply struct {
		Id int64 `json:"id"`
	}
	decode(t, body, &reply)

	// reply to a reply is rejected
	resp, _ = do(t, "POST", commentsUrl, bob, map[string]any{"content": "no", "replyTo": reply.Id})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("nested reply: got %d, want 400", resp.StatusCode)
	}

	// reply to a missing parent is NotFound
	resp, _ = do(t, "POST", commentsUrl, bob, map[string]any{"content": "no", "replyTo": 9999})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("missing parent: got %d, want 404", resp.StatusCode)
	}

	_, body = do(t, "GET", fmt.Sprintf("%s/projects/%d", srv.URL, project.Id), "", nil)
	var detail struct {
		CommentsCount int64 `json:"commentsCount"`
	}
	decode(t, body, &detail)
	if detail.CommentsCount != 2 {
		t.Errorf("got commentsCount %d, want 2", detail.CommentsCount)
	}

	_, body = do(t, "GET", commentsUrl, "", nil)
	var list struct {
		Comments []struct {
			Id      int64 `json:"id"`
			Replies []struct {
				Id int64 `json:"id"`
			} `json:"replies"`
		} `json:"comments"`
		Total int64 `json:"total"`
	}
	decode(t, body, &list)
	if list.Total != 1 || len(list.Comments) != 1 {
		t.Fatalf("bad comment list: %s", body)
	}
	if len(list.Comments[0].Replies) != 1 || list.Comments[0].Replies[0].Id != reply.Id {
		t.Errorf("replies not expanded: %s", body)
	}

	// only the author may delete, cascade takes the reply with it
	resp, _ = do(t, "POST", fmt.Sprintf("%s/comments/%d/delete", srv.URL, comment.Id), alice, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("non-author comment delete: got %d, want 403", resp.StatusCode)
	}

	resp, _ = do(t, "POST", fmt.Sprintf("%s/comments/%d/delete", srv.URL, comment.Id), bob, nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("comment delete: got %d", resp.StatusCode)
	}

	_, body = do(t, "GET", fmt.Sprintf("%s/projects/%d", srv.URL, project.Id), "", nil)
	decode(t, body, &detail)
	if detail.CommentsCount != 0 {
		t.Errorf("after cascade: commentsCount %d, want 0", detail.CommentsCount)
	}
}
