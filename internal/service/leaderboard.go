// Package service provides cross-cutting services over the shared
// document store.
package service

import (
	"vibecore-bot/internal/model"
	"vibecore-bot/internal/store"
)

// LeaderboardService reads and mutates the global point totals. Points
// are fed in by the trivia engine's correct-answer path and displayed
// by the /score command and the dashboard.
type LeaderboardService struct {
	store *store.Store
}

// NewLeaderboardService creates a LeaderboardService instance.
func NewLeaderboardService(st *store.Store) *LeaderboardService {
	return &LeaderboardService{store: st}
}

// Credit adds points to a user's running total, defaulting to 0 for
// users not seen before.
func (s *LeaderboardService) Credit(userID string, points int) error {
	return s.store.Update(func(doc *model.Document) error {
		doc.Leaderboard.Credit(userID, points)
		return nil
	})
}

// Score returns a user's total, 0 if absent.
func (s *LeaderboardService) Score(userID string) int {
	var score int
	s.store.View(func(doc *model.Document) {
		score = doc.Leaderboard.Score(userID)
	})
	return score
}

// Top returns up to n entries sorted by descending total, ties broken
// by insertion order.
func (s *LeaderboardService) Top(n int) []model.ScoreEntry {
	var entries []model.ScoreEntry
	s.store.View(func(doc *model.Document) {
		entries = doc.Leaderboard.Top(n)
	})
	return entries
}
