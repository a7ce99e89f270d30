package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Leaderboard maps a sender identity to an integer point total while
// remembering insertion order. The order matters: Top breaks ties by
// who scored first, and the JSON form is a plain identity→points object
// in that same order (the dashboard contract).
type Leaderboard struct {
	order  []string
	points map[string]int
}

// ScoreEntry is one leaderboard row.
type ScoreEntry struct {
	UserID string
	Points int
}

// NewLeaderboard returns an empty leaderboard.
func NewLeaderboard() *Leaderboard {
	return &Leaderboard{points: make(map[string]int)}
}

// Credit adds points to a user's running total, starting from 0 for
// users not seen before. Totals are never decremented by the bot, but
// negative credits are not rejected here.
func (l *Leaderboard) Credit(userID string, points int) {
	if _, ok := l.points[userID]; !ok {
		l.order = append(l.order, userID)
	}
	l.points[userID] += points
}

// Score returns a user's total, 0 if absent.
func (l *Leaderboard) Score(userID string) int {
	return l.points[userID]
}

// Len returns the number of users on the board.
func (l *Leaderboard) Len() int {
	return len(l.order)
}

// Top returns up to n entries sorted by descending total. The sort is
// stable over insertion order, so ties go to whoever scored first.
func (l *Leaderboard) Top(n int) []ScoreEntry {
	entries := make([]ScoreEntry, 0, len(l.order))
	for _, id := range l.order {
		entries = append(entries, ScoreEntry{UserID: id, Points: l.points[id]})
	}
	// Insertion sort keeps equal totals in insertion order.
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j].Points > entries[j-1].Points; j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}
	if n >= 0 && n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

// MarshalJSON renders the leaderboard as an identity→points object in
// insertion order.
func (l *Leaderboard) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range l.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		fmt.Fprintf(&buf, ":%d", l.points[id])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the object form back, preserving key order via the
// token stream (a plain map would scramble it).
func (l *Leaderboard) UnmarshalJSON(data []byte) error {
	l.order = nil
	l.points = make(map[string]int)

	// A hand-edited or partially written document may hold null here;
	// treat it like a missing leaderboard.
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("leaderboard: expected object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("leaderboard: expected string key, got %v", keyTok)
		}
		var pts int
		if err := dec.Decode(&pts); err != nil {
			return fmt.Errorf("leaderboard: value for %q: %w", key, err)
		}
		if _, seen := l.points[key]; !seen {
			l.order = append(l.order, key)
		}
		l.points[key] = pts
	}
	_, err = dec.Token() // closing brace
	return err
}
