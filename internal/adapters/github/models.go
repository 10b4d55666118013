package github

import (
	"encoding/json"
	"time"
)

// Account is a partial GitHub user or org document. The extended fields
// (Name, Bio, counters) are only populated by the single-account endpoint;
// search results carry the basic shape. Accounts are immutable once decoded,
// a fresher fetch supersedes rather than mutates
type Account struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Type      string `json:"type"`
	HTMLURL   string `json:"html_url"`
	AvatarURL string `json:"avatar_url"`

	Name        string `json:"name,omitempty"`
	Bio         string `json:"bio,omitempty"`
	PublicRepos int    `json:"public_repos,omitempty"`
	Followers   int    `json:"followers,omitempty"`
	Following   int    `json:"following,omitempty"`
}

// Repository is a partial GitHub repository document with the fields we use.
// Listings keep the server's order (updated descending)
type Repository struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	Description string    `json:"description,omitempty"`
	HTMLURL     string    `json:"html_url"`
	Stargazers  int       `json:"stargazers_count"`
	Watchers    int       `json:"watchers_count"`
	Forks       int       `json:"forks_count"`
	Language    string    `json:"language,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
	Topics      []string  `json:"topics,omitempty"`
	Private     bool      `json:"private"`
	Fork        bool      `json:"fork"`
}

// Event is one public timeline event. Type is an open-ended tag
// ("PushEvent", "PullRequestEvent", "IssuesEvent", anything else passes
// through); the payload stays raw, only PushEvent payloads are interpreted
type Event struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	CreatedAt time.Time       `json:"created_at"`
	Repo      *EventRepo      `json:"repo,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// EventRepo is the repository reference embedded in an event
type EventRepo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// searchResponse is the /search/users envelope
type searchResponse struct {
	TotalCount        int       `json:"total_count"`
	IncompleteResults bool      `json:"incomplete_results"`
	Items             []Account `json:"items"`
}

// apiMessage is the error body GitHub sends on non-success responses
type apiMessage struct {
	Message string `json:"message"`
}
