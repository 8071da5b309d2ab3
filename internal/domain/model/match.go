package model

import "time"

// Match is the undirected pairing created when both directed likes exist.
// User1 is the user whose like completed the pair, User2 the one who liked
// first. The storage layer additionally keys matches on the canonicalized
// (min, max) id pair so two racing reciprocal likes cannot create two rows.
type Match struct {
	ID        int64     `json:"id"`
	User1ID   int64     `json:"user1_id"`
	User2ID   int64     `json:"user2_id"`
	CreatedAt time.Time `json:"created_at"`
}

// OtherUser returns the match participant that is not userID.
func (m Match) OtherUser(userID int64) int64 {
	if m.User1ID == userID {
		return m.User2ID
	}
	return m.User1ID
}
