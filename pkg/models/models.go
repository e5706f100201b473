package models

type RegisterForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type LoginForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ProfileForm struct {
	Username   *string `json:"username"`
	Bio        *string `json:"bio"`
	Avatar     *string `json:"avatar"`
	GithubUrl  *string `json:"githubUrl"`
	WebsiteUrl *string `json:"websiteUrl"`
}

// ProjectForm doubles as the create and update payload. Tags come in as a
// comma separated string.
type ProjectForm struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       *string `json:"image"`
	RepoUrl     string  `json:"repoUrl"`
	DemoUrl     *string `json:"demoUrl"`
	Tags        string  `json:"tags"`
}

type CommentForm struct {
	Content string `json:"content"`
	ReplyTo *int64 `json:"replyTo"`
}
