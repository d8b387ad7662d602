package models

import "time"

// SkillKind tags a skill as something the user teaches or seeks.
type SkillKind string

const (
	SkillOffered SkillKind = "OFFERED"
	SkillWanted  SkillKind = "WANTED"
)

// SwapStatus is the lifecycle state of a swap.
type SwapStatus string

const (
	SwapPending  SwapStatus = "PENDING"
	SwapActive   SwapStatus = "ACTIVE"
	SwapCanceled SwapStatus = "CANCELED"
	SwapPast     SwapStatus = "PAST"
)

// Valid reports whether s is one of the declared swap states.
func (s SwapStatus) Valid() bool {
	switch s {
	case SwapPending, SwapActive, SwapCanceled, SwapPast:
		return true
	}
	return false
}

// User represents a member of the marketplace.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Bio          string    `json:"bio,omitempty"`
	Location     string    `json:"location,omitempty"`
	Availability []string  `json:"availability"`
	IsPublic     bool      `json:"is_public"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	RatingAvg    float64   `json:"rating_avg"`
	CreatedAt    time.Time `json:"created_at"`
}

// Skill is a named capability a user offers or wants.
type Skill struct {
	ID     int64     `json:"id"`
	UserID int64     `json:"user_id"`
	Name   string    `json:"name"`
	Kind   SkillKind `json:"kind"`
}

// Swap is a directed exchange relationship between two users. The skills
// being traded are not carried on the record; callers pair them up from the
// two users' skill lists.
type Swap struct {
	ID          int64      `json:"id"`
	RequesterID int64      `json:"requester_id"`
	TargetID    int64      `json:"target_id"`
	Status      SwapStatus `json:"status"`
	RequestedAt time.Time  `json:"requested_at"`
	AcceptedAt  *time.Time `json:"accepted_at,omitempty"`

	// Resolved at read time, never stored.
	Requester *User `json:"requester,omitempty"`
	Target    *User `json:"target,omitempty"`
}

// Message is a chat message within a swap.
type Message struct {
	ID       int64     `json:"id"`
	SwapID   int64     `json:"swap_id"`
	SenderID int64     `json:"sender_id"`
	Body     string    `json:"body"`
	SentAt   time.Time `json:"sent_at"`

	// Resolved at read time, never stored.
	Sender *User `json:"sender,omitempty"`
}

// Identity is the minimal identity embedded in an auth token, distinct from
// the full User profile.
type Identity struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin,omitempty"`
}

// LoginCredentials is the input to auth login.
type LoginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterCredentials is the input to auth registration.
type RegisterCredentials struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserUpdate holds the profile fields that may be patched. Nil fields are
// left untouched.
type UserUpdate struct {
	Name         *string  `json:"name,omitempty"`
	Bio          *string  `json:"bio,omitempty"`
	Location     *string  `json:"location,omitempty"`
	Availability []string `json:"availability,omitempty"`
	IsPublic     *bool    `json:"is_public,omitempty"`
	AvatarURL    *string  `json:"avatar_url,omitempty"`
}
