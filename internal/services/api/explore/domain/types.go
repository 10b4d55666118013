// Package domain holds the explore API types and ports
package domain

import (
	"gitscout/internal/adapters/github"
	"gitscout/internal/core/contrib"
)

// Account re-exports the remote account shape for handlers and docs
type Account = github.Account

// Repository re-exports the remote repository shape
type Repository = github.Repository

// Event re-exports the remote event shape
type Event = github.Event

// ContributionSummary re-exports the aggregated stats shape
type ContributionSummary = contrib.Summary

// SearchInput carries the search query parameters
type SearchInput struct {
	Query string `json:"q"`
	Limit int    `json:"limit" validate:"omitempty,min=1,max=100"`
}

// SearchResp wraps search results with the effective query
type SearchResp struct {
	Query    string    `json:"query"`
	Accounts []Account `json:"accounts"`
}
