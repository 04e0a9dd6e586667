package store

// Tier selects where a value lives.
type Tier int

const (
	// TierDurable survives restarts.
	TierDurable Tier = iota + 1
	// TierSession lives as long as the running process.
	TierSession
)

func (t Tier) String() string {
	switch t {
	case TierDurable:
		return "durable"
	case TierSession:
		return "session"
	default:
		return "unknown"
	}
}

// Durable tier keys.
const (
	KeyAccounts         = "accounts"
	KeyRecipes          = "recipes"
	KeyUpvotedRecipeIDs = "upvotedRecipeIds"
)

// Session tier keys.
const (
	KeyCurrentUser         = "currentUser"
	KeyPendingReturnTarget = "pendingReturnTarget"
)
