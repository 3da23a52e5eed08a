package like

import "context"

// ToggleResult reports which branch of the toggle ran.
type ToggleResult string

const (
	Added   ToggleResult = "Like added"
	Removed ToggleResult = "Like removed"
)

// LikeStorage is implemented by the persistence layer.
type LikeStorage interface {
	// Toggle removes the (userID, postID) like when it exists and creates it
	// otherwise. The target post must exist and be published. Both branches
	// run in one transaction; the unique index on likes(user_id, post_id)
	// guards against concurrent double-insert.
	Toggle(ctx context.Context, userID, postID uint) (ToggleResult, error)
}
