package model

import "time"

// Block hides the blocked user from the blocker's candidate pool. The edge
// is directed: it does not hide the blocker from the blocked user's feed.
type Block struct {
	ID        int64     `json:"id"`
	BlockerID int64     `json:"blocker_id"`
	BlockedID int64     `json:"blocked_id"`
	CreatedAt time.Time `json:"created_at"`
}
