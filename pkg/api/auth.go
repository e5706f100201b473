package api

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/mail"
	"strings"

	"github.com/devfoliohq/devfolio-api/pkg/emails"
	"github.com/devfoliohq/devfolio-api/pkg/models"
	"github.com/devfoliohq/devfolio-api/pkg/users"
	"github.com/devfoliohq/devfolio-api/pkg/util"
	"github.com/getsentry/sentry-go"
	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"
)

func AuthRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Post("/register", register)
	r.Post("/login", login)

	r.Group(func(r chi.Router) {
		r.Use(EnsureUser)
		r.Get("/me", me)
		r.Get("/logout", logout)
	})

	return r
}

const registerMessage = "*%s has registered.* 👤"

func register(w http.ResponseWriter, r *http.Request) {
	var form models.RegisterForm

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
	if !validUsername.MatchString(form.Username) {
		violations = append(violations, "username must be 3-30 word characters")
	}
	if _, err := mail.ParseAddress(form.Email); err != nil {
		violations = append(violations, "invalid email")
	}
	if util.Entropy(form.Password) < 28 {
		violations = append(violations, "password is too weak")
	}
	if len(violations) > 0 {
		badRequest(w, violations)
		return
	}

	email := strings.ToLower(form.Email)

	if _, err := users.UserByName(form.Username); err != sql.ErrNoRows {
		if err != nil {
			sentry.CaptureException(err)
			http.Error(w, "Something went wrong", http.StatusInternalServerError)
			return
		}
		http.Error(w, "That username already exists", http.StatusConflict)
		return
	}

	if _, err := users.UserByEmail(email); err != sql.ErrNoRows {
		if err != nil {
			sentry.CaptureException(err)
			http.Error(w, "Something went wrong", http.StatusInternalServerError)
			return
		}
		http.Error(w, "That email is already registered", http.StatusConflict)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), 10)
	if err != nil {
		sentry.CaptureException(err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	u := users.User{
		Name:  form.Username,
		Email: email,
		Pw:    string(hash),
	}

	if _, err := u.Insert(); err != nil {
		sentry.CaptureException(err)
		http.Error(w, "Failed to register", http.StatusInternalServerError)
		return
	}

	go func() {
		util.LogMessage(fmt.Sprintf(registerMessage, form.Username))
		if err := emails.SendWelcomeEmail(form.Username, email); err != nil {
			sentry.CaptureException(err)
		}
	}()

	fmt.Fprint(w, "Welcome")
}

func login(w http.ResponseWriter, r *http.Request) {
	var form models.LoginForm

	body := util.HttpBody(r)
	if body == nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	if err := json.Unmarshal(body, &form); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	u, err := users.UserByName(form.Username)
	if err != nil {
		http.Error(w, "Invalid username/password", http.StatusBadRequest)
		return
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(u.Pw),
		[]byte(form.Password),
	); err != nil {
		if err != bcrypt.ErrMismatchedHashAndPassword {
			sentry.CaptureException(err)
		}
		http.Error(w, "Invalid username/password", http.StatusBadRequest)
		return
	}

	token, err := users.GetOrCreateToken(u.Id)
	if err != nil {
		sentry.CaptureException(err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	fmt.Fprintf(w, `{"token": "%s"}`, token)
}

func logout(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(User).(*users.User)

	if err := users.RemoveTokens(user.Id); err != nil {
		sentry.CaptureException(err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	fmt.Fprint(w, "Logged out")
}

func me(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(User).(*users.User)

	resp, _ := json.Marshal(models.MeResp{
		Id:         user.Id,
		Username:   user.Name,
		Email:      user.Email,
		Avatar:     user.Avatar,
		Bio:        user.Bio,
		GithubUrl:  user.GithubUrl,
		WebsiteUrl: user.WebsiteUrl,
		JoinDate:   user.JoinTs,
	})

	w.Header().Add("Content-Type", "application/json")
	fmt.Fprint(w, string(resp))
}
