package api

// MessageResponse is returned by the health check
// @Description Health check response
type MessageResponse struct {
	Message string `json:"message" example:"Hello World"`
}

// ErrorResponse represents an API error
// @Description Error response from the API
type ErrorResponse struct {
	// Human readable description of the failure
	Detail string `json:"detail" example:"failed to fetch repos for octocat"`
}

// CommitRecordDoc documents models.CommitRecord for swagger
// @Description A commit collected from a user's repository
type CommitRecordDoc struct {
	RepositoryName    string  `json:"repository_name" example:"hello-world"`
	RepositoryOwner   string  `json:"repository_owner" example:"octocat"`
	CommitUserLogin   *string `json:"commit_user_login" example:"octocat"`
	CommitAuthorName  string  `json:"commit_author_name" example:"The Octocat"`
	CommitAuthorEmail string  `json:"commit_author_email" example:"octocat@github.com"`
	CommitMessage     string  `json:"commit_message" example:"Fix typo"`
	CommitSHA         string  `json:"commit_sha" example:"7fd1a60b01f91b314f59955a4e4d4e80d8edf11d"`
	CommitURL         string  `json:"commit_url" example:"https://github.com/octocat/hello-world/commit/7fd1a60"`
	CommitDate        string  `json:"commit_date" example:"2024-01-02"`
	CommitCreatedAt   string  `json:"commit_created_at" example:"2024-01-02T09:00:00-03:00"`
}

// CommitDataResponseDoc documents models.CommitDataResponse for swagger
type CommitDataResponseDoc struct {
	CommitsData []CommitRecordDoc `json:"commits_data"`
}
