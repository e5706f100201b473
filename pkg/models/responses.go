package models

// Author is the identity summary attached to projects and comments.
type Author struct {
	Id       int64   `json:"id"`
	Username string  `json:"username"`
	Avatar   *string `json:"avatar"`
}

// AuthorProfile is the extended author block on single project fetches.
type AuthorProfile struct {
	Id         int64   `json:"id"`
	Username   string  `json:"username"`
	Avatar     *string `json:"avatar"`
	Bio        *string `json:"bio"`
	GithubUrl  *string `json:"githubUrl"`
	WebsiteUrl *string `json:"websiteUrl"`
}

// UserResp is a public profile. Email and password hash never appear here;
// email is only present on /auth/me (see MeResp).
type UserResp struct {
	Id           int64   `json:"id"`
	Username     string  `json:"username"`
	Avatar       *string `json:"avatar"`
	Bio          *string `json:"bio"`
	GithubUrl    *string `json:"githubUrl"`
	WebsiteUrl   *string `json:"websiteUrl"`
	JoinDate     int64   `json:"joinDate"`
	ProjectCount int64   `json:"projectCount"`
}

type MeResp struct {
	Id         int64   `json:"id"`
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	Avatar     *string `json:"avatar"`
	Bio        *string `json:"bio"`
	GithubUrl  *string `json:"githubUrl"`
	WebsiteUrl *string `json:"websiteUrl"`
	JoinDate   int64   `json:"joinDate"`
}

type ProjectResp struct {
	Id            int64    `json:"id"`
	Author        Author   `json:"author"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Image         *string  `json:"image"`
	RepoUrl       string   `json:"repoUrl"`
	DemoUrl       *string  `json:"demoUrl"`
	Tags          []string `json:"tags"`
	LikesCount    int64    `json:"likesCount"`
	CommentsCount int64    `json:"commentsCount"`
	CreatedAt     int64    `json:"createdAt"`
	UpdatedAt     int64    `json:"updatedAt"`
}

// ProjectDetailResp swaps the author summary for the extended profile.
type ProjectDetailResp struct {
	Id            int64         `json:"id"`
	Author        AuthorProfile `json:"author"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Image         *string       `json:"image"`
	RepoUrl       string        `json:"repoUrl"`
	DemoUrl       *string       `json:"demoUrl"`
	Tags          []string      `json:"tags"`
	LikesCount    int64         `json:"likesCount"`
	CommentsCount int64         `json:"commentsCount"`
	CreatedAt     int64         `json:"createdAt"`
	UpdatedAt     int64         `json:"updatedAt"`
}

type ProjectListResp struct {
	Projects []ProjectResp `json:"projects"`
	Page     int           `json:"page"`
	Limit    int           `json:"limit"`
	Total    int64         `json:"total"`
	Pages    int64         `json:"pages"`
}

type CommentResp struct {
	Id         int64         `json:"id"`
	Content    string        `json:"content"`
	Author     Author        `json:"author"`
	ReplyTo    *int64        `json:"replyTo"`
	LikesCount int64         `json:"likesCount"`
	Replies    []CommentResp `json:"replies,omitempty"`
	CreatedAt  int64         `json:"createdAt"`
}

type CommentListResp struct {
	Comments []CommentResp `json:"comments"`
	Page     int           `json:"page"`
	Limit    int           `json:"limit"`
	Total    int64         `json:"total"`
	Pages    int64         `json:"pages"`
}

type LikeResp struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likesCount"`
}
