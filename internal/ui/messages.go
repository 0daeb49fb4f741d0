package ui

import (
	"hnsearch/internal/domain"
	"hnsearch/internal/session"
)

// fetchResultMsg carries the outcome of one FetchEffect back into Update
type fetchResultMsg struct {
	effect session.FetchEffect
	page   domain.Page
	err    error
}

// dismissMsg is produced by the result list's dismiss trigger
type dismissMsg struct {
	id string
}

// pagerMsg contains the result of a pager command
type pagerMsg struct {
	title   string
	content string // shown in a popup when the pager failed
	err     error
}

// pauseRenderingMsg signals that the pager owns the terminal
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals that the pager has exited
type resumeRenderingMsg struct{}
