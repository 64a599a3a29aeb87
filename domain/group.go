package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PersonalChatSize is the member count of a personal chat.
const PersonalChatSize = 2

type GroupID uuid.UUID

func NewGroupID() GroupID {
	return GroupID(uuid.New())
}

func (id GroupID) String() string {
	return uuid.UUID(id).String()
}

type Kind int

const (
	PersonalChat Kind = iota
	CustomGroup
)

func (k Kind) String() string {
	switch k {
	case PersonalChat:
		return "personal"
	case CustomGroup:
		return "group"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Group is the descriptive part of a group.
// Membership, admin and messages are owned by the directory.
type Group struct {
	ID        GroupID
	Name      string
	Size      int // current member count
	Kind      Kind
	CreatedAt time.Time
}

// KindOf returns PersonalChat for exactly two members and CustomGroup otherwise.
func KindOf(size int) Kind {
	if size == PersonalChatSize {
		return PersonalChat
	}
	return CustomGroup
}

// CustomGroupName names the n-th custom group, starting at 1.
func CustomGroupName(n int) string {
	return fmt.Sprintf("Group %d", n)
}
