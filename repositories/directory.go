//go:generate go run go.uber.org/mock/mockgen -source=directory.go -destination=../mocks/mock_directory_repository.go -package=mocks
package repositories

import (
	"chat-directory/domain"
	"chat-directory/errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/samber/lo"
)

type IDirectoryRepository interface {
	CreateUser(name, mobile string) (domain.User, error)
	CreateGroup(members []domain.User) (domain.Group, error)
	CreateMessage(content string) (int, error)
	SendMessage(message domain.Message, sender domain.User, groupID domain.GroupID) (int, error)
	ChangeAdmin(approver, user domain.User, groupID domain.GroupID) error
	RemoveUser(user domain.User) (int, error)
	FindMessage(start, end time.Time, k int) (string, error)

	GetUser(mobile string) (domain.User, error)
	GetMessage(id int) (domain.Message, error)
	GetGroup(groupID domain.GroupID) (domain.Group, error)
	Members(groupID domain.GroupID) ([]domain.User, error)
	Admin(groupID domain.GroupID) (domain.User, error)
	GroupMessages(groupID domain.GroupID) ([]domain.Message, error)
	ListGroups() []domain.Group
	Stats() domain.DirectoryStats
}

// DirectoryRepository keeps users, groups and messages in memory.
// Relations are indexed by identifiers only: mobile numbers for users,
// GroupID for groups and the sequential id for messages.
// A single RWMutex serializes mutations; reads share the lock.
type DirectoryRepository struct {
	mu    sync.RWMutex
	log   *slog.Logger
	clock func() time.Time

	users         map[string]domain.User          // mobile -> user
	groups        map[domain.GroupID]domain.Group // group descriptors
	groupOrder    []domain.GroupID                // creation order
	members       map[domain.GroupID][]string     // group -> member mobiles, ordered
	admins        map[domain.GroupID]string       // group -> admin mobile
	groupMessages map[domain.GroupID][]int        // group -> message ids, insertion order
	senders       map[int]string                  // message id -> sender mobile
	messages      map[int]domain.Message          // every created message
	guests        map[string]domain.User          // group members never registered

	messageID        int
	customGroupCount int
}

func NewDirectoryRepository(log *slog.Logger, clock func() time.Time) *DirectoryRepository {
	if clock == nil {
		clock = time.Now
	}
	return &DirectoryRepository{
		log:           log,
		clock:         clock,
		users:         make(map[string]domain.User),
		groups:        make(map[domain.GroupID]domain.Group),
		members:       make(map[domain.GroupID][]string),
		admins:        make(map[domain.GroupID]string),
		groupMessages: make(map[domain.GroupID][]int),
		senders:       make(map[int]string),
		messages:      make(map[int]domain.Message),
		guests:        make(map[string]domain.User),
	}
}

// CreateUser registers a user under its mobile number.
// It fails with ErrDuplicateUser when the mobile is already taken.
func (d *DirectoryRepository) CreateUser(name, mobile string) (domain.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.users[mobile]; exists {
		return domain.User{}, fmt.Errorf("%w: %s", errors.ErrDuplicateUser, mobile)
	}
	user := domain.NewUser(name, mobile)
	d.users[mobile] = user
	d.log.Debug("User created", "mobile", mobile, "name", name)
	return user, nil
}

// CreateGroup records a new group whose admin is the first member.
// Two members make a personal chat named after the second one.
// More than two make a custom group named after the global custom group counter.
func (d *DirectoryRepository) CreateGroup(members []domain.User) (domain.Group, error) {
	if len(members) < domain.PersonalChatSize {
		return domain.Group{}, fmt.Errorf("%w: a group needs at least %d members, got %d",
			errors.ErrInvalidArgument, domain.PersonalChatSize, len(members))
	}
	mobiles := lo.Map(members, func(u domain.User, _ int) string { return u.Mobile })
	if len(lo.Uniq(mobiles)) != len(mobiles) {
		return domain.Group{}, fmt.Errorf("%w: duplicate members", errors.ErrInvalidArgument)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	kind := domain.KindOf(len(members))
	var name string
	switch kind {
	case domain.PersonalChat:
		name = members[1].Name
	default:
		d.customGroupCount++
		name = domain.CustomGroupName(d.customGroupCount)
	}

	group := domain.Group{
		ID:        domain.NewGroupID(),
		Name:      name,
		Size:      len(members),
		Kind:      kind,
		CreatedAt: d.clock(),
	}
	for _, member := range members {
		if _, registered := d.users[member.Mobile]; !registered {
			d.guests[member.Mobile] = member
		}
	}
	d.groups[group.ID] = group
	d.groupOrder = append(d.groupOrder, group.ID)
	d.members[group.ID] = mobiles
	d.admins[group.ID] = mobiles[0]
	d.log.Debug("Group created", "group", group.ID.String(), "name", name, "kind", kind.String(), "size", group.Size)
	return group, nil
}

// CreateMessage allocates the next message id and stamps the message with the clock.
// The message is not attached to any group until SendMessage is called.
func (d *DirectoryRepository) CreateMessage(content string) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.messageID++
	d.messages[d.messageID] = domain.Message{
		ID:        d.messageID,
		Content:   content,
		CreatedAt: d.clock(),
	}
	return d.messageID, nil
}

// SendMessage appends the message to the group and records its sender.
// Only messages created through CreateMessage can be sent, each one once.
// It returns the number of messages in the group after the append.
func (d *DirectoryRepository) SendMessage(message domain.Message, sender domain.User, groupID domain.GroupID) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	members, ok := d.members[groupID]
	if !ok {
		return 0, fmt.Errorf("%w: %s", errors.ErrGroupNotFound, groupID)
	}
	if !lo.Contains(members, sender.Mobile) {
		return 0, fmt.Errorf("%w: you are not allowed to send message: %s", errors.ErrNotAMember, sender.Mobile)
	}
	if _, known := d.messages[message.ID]; !known {
		return 0, fmt.Errorf("%w: %d", errors.ErrMessageNotFound, message.ID)
	}
	if _, sent := d.senders[message.ID]; sent {
		return 0, fmt.Errorf("%w: %d", errors.ErrMessageAlreadySent, message.ID)
	}

	d.groupMessages[groupID] = append(d.groupMessages[groupID], message.ID)
	d.senders[message.ID] = sender.Mobile
	count := len(d.groupMessages[groupID])
	d.log.Debug("Message sent", "message", message.ID, "sender", sender.Mobile, "group", groupID.String(), "count", count)
	return count, nil
}

// ChangeAdmin hands the admin role of the group from approver to user.
func (d *DirectoryRepository) ChangeAdmin(approver, user domain.User, groupID domain.GroupID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	members, ok := d.members[groupID]
	if !ok {
		return fmt.Errorf("%w: %s", errors.ErrGroupNotFound, groupID)
	}
	if d.admins[groupID] != approver.Mobile {
		return fmt.Errorf("%w: %s", errors.ErrNotAuthorized, approver.Mobile)
	}
	if !lo.Contains(members, user.Mobile) {
		return fmt.Errorf("%w: %s", errors.ErrNotAMember, user.Mobile)
	}

	d.admins[groupID] = user.Mobile
	d.log.Debug("Admin changed", "group", groupID.String(), "from", approver.Mobile, "to", user.Mobile)
	return nil
}

// RemoveUser takes the user out of its group and deletes every message it authored.
// Admins must hand over their role with ChangeAdmin first.
// It returns remaining members + remaining group messages + remaining sent messages overall.
func (d *DirectoryRepository) RemoveUser(user domain.User) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	groupID, found := lo.Find(d.groupOrder, func(id domain.GroupID) bool {
		return lo.Contains(d.members[id], user.Mobile)
	})
	if !found {
		return 0, fmt.Errorf("%w: %s", errors.ErrUserNotFound, user.Mobile)
	}
	if d.admins[groupID] == user.Mobile {
		return 0, fmt.Errorf("%w: %s", errors.ErrCannotRemoveAdmin, user.Mobile)
	}

	d.members[groupID] = lo.Without(d.members[groupID], user.Mobile)

	var authored []int
	for id, mobile := range d.senders {
		if mobile == user.Mobile {
			authored = append(authored, id)
			delete(d.senders, id)
		}
	}
	if len(authored) > 0 {
		for id, messages := range d.groupMessages {
			d.groupMessages[id] = lo.Without(messages, authored...)
		}
	}

	remainingMembers := len(d.members[groupID])
	remainingGroupMessages := len(d.groupMessages[groupID])
	remainingMessages := len(d.senders)
	d.log.Debug("User removed",
		"mobile", user.Mobile,
		"group", groupID.String(),
		"deleted_messages", len(authored),
		"members", remainingMembers,
		"group_messages", remainingGroupMessages,
		"messages", remainingMessages,
	)
	return remainingMembers + remainingGroupMessages + remainingMessages, nil
}

// FindMessage returns the content of the k-th latest message created strictly
// between start and end, across every group.
// Messages sharing a timestamp are ordered by id.
func (d *DirectoryRepository) FindMessage(start, end time.Time, k int) (string, error) {
	if k < 1 {
		return "", fmt.Errorf("%w: k must be positive, got %d", errors.ErrInvalidArgument, k)
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	var selected []domain.Message
	for _, groupID := range d.groupOrder {
		for _, id := range d.groupMessages[groupID] {
			if message := d.messages[id]; message.Within(start, end) {
				selected = append(selected, message)
			}
		}
	}
	if len(selected) < k {
		return "", fmt.Errorf("%w: %d requested, %d found", errors.ErrInsufficientMessages, k, len(selected))
	}

	slices.SortFunc(selected, func(a, b domain.Message) int {
		switch {
		case a.Before(b):
			return -1
		case b.Before(a):
			return 1
		default:
			return 0
		}
	})
	return selected[len(selected)-k].Content, nil
}

// GetUser returns a user registered through CreateUser.
func (d *DirectoryRepository) GetUser(mobile string) (domain.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	user, ok := d.users[mobile]
	if !ok {
		return domain.User{}, fmt.Errorf("%w: %s", errors.ErrUserNotFound, mobile)
	}
	return user, nil
}

// GetMessage returns a created message, sent or not.
func (d *DirectoryRepository) GetMessage(id int) (domain.Message, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	message, ok := d.messages[id]
	if !ok {
		return domain.Message{}, fmt.Errorf("%w: %d", errors.ErrMessageNotFound, id)
	}
	return message, nil
}

func (d *DirectoryRepository) GetGroup(groupID domain.GroupID) (domain.Group, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if _, ok := d.groups[groupID]; !ok {
		return domain.Group{}, fmt.Errorf("%w: %s", errors.ErrGroupNotFound, groupID)
	}
	return d.group(groupID), nil
}

// Members returns the current members of the group in their original order.
func (d *DirectoryRepository) Members(groupID domain.GroupID) ([]domain.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	mobiles, ok := d.members[groupID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrGroupNotFound, groupID)
	}
	return lo.Map(mobiles, func(mobile string, _ int) domain.User {
		return d.user(mobile)
	}), nil
}

func (d *DirectoryRepository) Admin(groupID domain.GroupID) (domain.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	mobile, ok := d.admins[groupID]
	if !ok {
		return domain.User{}, fmt.Errorf("%w: %s", errors.ErrGroupNotFound, groupID)
	}
	return d.user(mobile), nil
}

// GroupMessages returns the messages of the group in the order they were sent.
func (d *DirectoryRepository) GroupMessages(groupID domain.GroupID) ([]domain.Message, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if _, ok := d.groups[groupID]; !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrGroupNotFound, groupID)
	}
	return lo.Map(d.groupMessages[groupID], func(id int, _ int) domain.Message {
		return d.messages[id]
	}), nil
}

// ListGroups returns every group in creation order.
func (d *DirectoryRepository) ListGroups() []domain.Group {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return lo.Map(d.groupOrder, func(id domain.GroupID, _ int) domain.Group {
		return d.group(id)
	})
}

func (d *DirectoryRepository) Stats() domain.DirectoryStats {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return domain.DirectoryStats{
		Users:        len(d.users),
		Groups:       len(d.groups),
		CustomGroups: d.customGroupCount,
		Messages:     len(d.messages),
		SentMessages: len(d.senders),
	}
}

// group returns the descriptor with Size reflecting the current membership.
func (d *DirectoryRepository) group(groupID domain.GroupID) domain.Group {
	group := d.groups[groupID]
	group.Size = len(d.members[groupID])
	return group
}

// user resolves a mobile number. Members never registered through CreateUser
// are known by the profile given at group creation.
func (d *DirectoryRepository) user(mobile string) domain.User {
	if user, ok := d.users[mobile]; ok {
		return user
	}
	if user, ok := d.guests[mobile]; ok {
		return user
	}
	return domain.User{Mobile: mobile}
}
