package services

import (
	"chat-directory/domain"
	"chat-directory/domain/chat"
	"chat-directory/errors"
	"chat-directory/repositories"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

type IDirectoryService interface {
	CreateUser(cmd chat.CreateUserCommand) (domain.User, error)
	CreateGroup(cmd chat.CreateGroupCommand) (domain.Group, error)
	CreateMessage(cmd chat.CreateMessageCommand) (int, error)
	SendMessage(cmd chat.SendMessageCommand) (int, error)
	ChangeAdmin(cmd chat.ChangeAdminCommand) error
	RemoveUser(cmd chat.RemoveUserCommand) (int, error)
	FindMessage(cmd chat.FindMessageCommand) (string, error)

	User(mobile string) (domain.User, error)
	Groups() []domain.Group
	Members(groupID domain.GroupID) ([]domain.User, error)
	GroupMessages(groupID domain.GroupID) ([]domain.Message, error)
	Admin(groupID domain.GroupID) (domain.User, error)
	Stats() domain.DirectoryStats
}

// ContentFilter rewrites message content before it is stored.
type ContentFilter interface {
	Censor(content string) (string, []string)
}

// Limits bounds the size of user supplied text. Zero disables a limit.
type Limits struct {
	MaxNameLength    int
	MaxContentLength int
}

type DirectoryService struct {
	repository repositories.IDirectoryRepository
	validator  *validator.Validate
	limits     Limits
	filter     ContentFilter
	log        *slog.Logger
}

// NewDirectoryService validates commands before handing them to the repository.
// filter may be nil, in which case content is stored as given.
func NewDirectoryService(repository repositories.IDirectoryRepository, limits Limits, filter ContentFilter, log *slog.Logger) *DirectoryService {
	return &DirectoryService{
		repository: repository,
		validator:  validator.New(),
		limits:     limits,
		filter:     filter,
		log:        log,
	}
}

func (s *DirectoryService) CreateUser(cmd chat.CreateUserCommand) (domain.User, error) {
	if err := s.validate(cmd); err != nil {
		return domain.User{}, err
	}
	if err := s.checkLength(cmd, "name", cmd.UserName, s.limits.MaxNameLength); err != nil {
		return domain.User{}, err
	}
	return s.repository.CreateUser(cmd.UserName, cmd.Mobile)
}

func (s *DirectoryService) CreateGroup(cmd chat.CreateGroupCommand) (domain.Group, error) {
	if err := s.validate(cmd); err != nil {
		return domain.Group{}, err
	}
	return s.repository.CreateGroup(cmd.Members)
}

func (s *DirectoryService) CreateMessage(cmd chat.CreateMessageCommand) (int, error) {
	if err := s.validate(cmd); err != nil {
		return 0, err
	}
	if err := s.checkLength(cmd, "content", cmd.Content, s.limits.MaxContentLength); err != nil {
		return 0, err
	}
	content := cmd.Content
	if s.filter != nil {
		var words []string
		if content, words = s.filter.Censor(content); len(words) > 0 {
			s.log.Info("Message censored", "words", len(words))
		}
	}
	return s.repository.CreateMessage(content)
}

// SendMessage resolves the created message by id before attaching it to the group.
func (s *DirectoryService) SendMessage(cmd chat.SendMessageCommand) (int, error) {
	if err := s.validate(cmd); err != nil {
		return 0, err
	}
	message, err := s.repository.GetMessage(cmd.MessageID)
	if err != nil {
		return 0, err
	}
	return s.repository.SendMessage(message, cmd.Sender, cmd.Group)
}

func (s *DirectoryService) ChangeAdmin(cmd chat.ChangeAdminCommand) error {
	if err := s.validate(cmd); err != nil {
		return err
	}
	return s.repository.ChangeAdmin(cmd.Approver, cmd.User, cmd.Group)
}

func (s *DirectoryService) RemoveUser(cmd chat.RemoveUserCommand) (int, error) {
	if err := s.validate(cmd); err != nil {
		return 0, err
	}
	return s.repository.RemoveUser(cmd.User)
}

func (s *DirectoryService) FindMessage(cmd chat.FindMessageCommand) (string, error) {
	if err := s.validate(cmd); err != nil {
		return "", err
	}
	return s.repository.FindMessage(cmd.Start, cmd.End, cmd.K)
}

func (s *DirectoryService) User(mobile string) (domain.User, error) {
	return s.repository.GetUser(mobile)
}

func (s *DirectoryService) Groups() []domain.Group {
	return s.repository.ListGroups()
}

func (s *DirectoryService) Members(groupID domain.GroupID) ([]domain.User, error) {
	return s.repository.Members(groupID)
}

func (s *DirectoryService) GroupMessages(groupID domain.GroupID) ([]domain.Message, error) {
	return s.repository.GroupMessages(groupID)
}

func (s *DirectoryService) Admin(groupID domain.GroupID) (domain.User, error) {
	return s.repository.Admin(groupID)
}

func (s *DirectoryService) Stats() domain.DirectoryStats {
	return s.repository.Stats()
}

func (s *DirectoryService) validate(cmd chat.Command) error {
	if err := s.validator.Struct(cmd); err != nil {
		s.log.Warn("Command rejected", "command", cmd.Name(), "error", err)
		return fmt.Errorf("%w: %v", errors.ErrInvalidArgument, err)
	}
	return nil
}

func (s *DirectoryService) checkLength(cmd chat.Command, field, value string, limit int) error {
	if limit > 0 && utf8.RuneCountInString(value) > limit {
		s.log.Warn("Command rejected", "command", cmd.Name(), "field", field, "limit", limit)
		return fmt.Errorf("%w: %s longer than %d characters", errors.ErrInvalidArgument, field, limit)
	}
	return nil
}
