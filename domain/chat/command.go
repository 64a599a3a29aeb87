package chat

import (
	"chat-directory/domain"
	"time"
)

// Command is a request addressed to the directory service.
type Command interface {
	Name() string
}

type CreateUserCommand struct {
	UserName string `validate:"required"`
	Mobile   string `validate:"required"`
}

func (c CreateUserCommand) Name() string { return "create_user" }

// CreateGroupCommand lists the members of a new group, the first one being the admin.
type CreateGroupCommand struct {
	Members []domain.User `validate:"min=2,unique=Mobile,dive"`
}

func (c CreateGroupCommand) Name() string { return "create_group" }

type CreateMessageCommand struct {
	Content string `validate:"required"`
}

func (c CreateMessageCommand) Name() string { return "create_message" }

type SendMessageCommand struct {
	MessageID int `validate:"gte=1"`
	Sender    domain.User
	Group     domain.GroupID
}

func (c SendMessageCommand) Name() string { return "send_message" }

type ChangeAdminCommand struct {
	Approver domain.User
	User     domain.User
	Group    domain.GroupID
}

func (c ChangeAdminCommand) Name() string { return "change_admin" }

type RemoveUserCommand struct {
	User domain.User
}

func (c RemoveUserCommand) Name() string { return "remove_user" }

// FindMessageCommand selects the K-th latest message created strictly between Start and End.
type FindMessageCommand struct {
	Start time.Time
	End   time.Time
	K     int `validate:"gte=1"`
}

func (c FindMessageCommand) Name() string { return "find_message" }
