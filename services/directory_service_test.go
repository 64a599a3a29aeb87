package services

import (
	"chat-directory/domain"
	"chat-directory/domain/chat"
	"chat-directory/errors"
	"chat-directory/mocks"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	alex    = domain.NewUser("Alex", "m1")
	bob     = domain.NewUser("Bob", "m2")
	charlie = domain.NewUser("Charlie", "m3")
)

func newService(t *testing.T, limits Limits) (*DirectoryService, *mocks.MockIDirectoryRepository) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockIDirectoryRepository(ctrl)
	return NewDirectoryService(mockRepo, limits, nil, logs.GetLoggerFromLevel(slog.LevelDebug)), mockRepo
}

func TestDirectoryService_CreateUser(t *testing.T) {
	t.Run("should create user when input is valid", func(t *testing.T) {
		req := require.New(t)
		svc, mockRepo := newService(t, Limits{})

		mockRepo.EXPECT().
			CreateUser("Alex", "m1").
			Return(alex, nil).
			Times(1)

		user, err := svc.CreateUser(chat.CreateUserCommand{UserName: "Alex", Mobile: "m1"})

		req.NoError(err)
		req.Equal(alex, user)
	})

	t.Run("should propagate duplicate user", func(t *testing.T) {
		req := require.New(t)
		svc, mockRepo := newService(t, Limits{})

		mockRepo.EXPECT().
			CreateUser("Alex", "m1").
			Return(domain.User{}, errors.ErrDuplicateUser).
			Times(1)

		_, err := svc.CreateUser(chat.CreateUserCommand{UserName: "Alex", Mobile: "m1"})

		req.ErrorIs(err, errors.ErrDuplicateUser)
	})

	t.Run("should reject missing fields before reaching the repository", func(t *testing.T) {
		svc, mockRepo := newService(t, Limits{})
		mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Times(0)

		for _, cmd := range []chat.CreateUserCommand{
			{UserName: "", Mobile: "m1"},
			{UserName: "Alex", Mobile: ""},
		} {
			_, err := svc.CreateUser(cmd)
			require.ErrorIs(t, err, errors.ErrInvalidArgument)
		}
	})

	t.Run("should accept mobiles written with punctuation or spaces", func(t *testing.T) {
		req := require.New(t)
		svc, mockRepo := newService(t, Limits{})

		for _, mobile := range []string{"+15551234567", "555-1234", "07700 900123"} {
			expected := domain.NewUser("Alex", mobile)
			mockRepo.EXPECT().CreateUser("Alex", mobile).Return(expected, nil).Times(1)

			user, err := svc.CreateUser(chat.CreateUserCommand{UserName: "Alex", Mobile: mobile})

			req.NoError(err)
			req.Equal(expected, user)
		}
	})

	t.Run("should reject names over the limit", func(t *testing.T) {
		req := require.New(t)
		svc, mockRepo := newService(t, Limits{MaxNameLength: 4})
		mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.CreateUser(chat.CreateUserCommand{UserName: "Alexander", Mobile: "m1"})

		req.ErrorIs(err, errors.ErrInvalidArgument)
	})
}

func TestDirectoryService_CreateGroup(t *testing.T) {
	t.Run("should create group", func(t *testing.T) {
		req := require.New(t)
		svc, mockRepo := newService(t, Limits{})
		members := []domain.User{alex, bob, charlie}
		expected := domain.Group{ID: domain.NewGroupID(), Name: "Group 1", Size: 3, Kind: domain.CustomGroup}

		mockRepo.EXPECT().
			CreateGroup(members).
			Return(expected, nil).
			Times(1)

		group, err := svc.CreateGroup(chat.CreateGroupCommand{Members: members})

		req.NoError(err)
		req.Equal(expected, group)
	})

	t.Run("should reject fewer than two members or duplicates", func(t *testing.T) {
		svc, mockRepo := newService(t, Limits{})
		mockRepo.EXPECT().CreateGroup(gomock.Any()).Times(0)

		for _, members := range [][]domain.User{
			nil,
			{alex},
			{alex, alex},
		} {
			_, err := svc.CreateGroup(chat.CreateGroupCommand{Members: members})
			require.ErrorIs(t, err, errors.ErrInvalidArgument)
		}
	})
}

func TestDirectoryService_CreateMessage(t *testing.T) {
	t.Run("should return the allocated id", func(t *testing.T) {
		req := require.New(t)
		svc, mockRepo := newService(t, Limits{MaxContentLength: 10})

		mockRepo.EXPECT().CreateMessage("hi").Return(1, nil).Times(1)

		id, err := svc.CreateMessage(chat.CreateMessageCommand{Content: "hi"})

		req.NoError(err)
		req.Equal(1, id)
	})

	t.Run("should reject empty or oversized content", func(t *testing.T) {
		svc, mockRepo := newService(t, Limits{MaxContentLength: 10})
		mockRepo.EXPECT().CreateMessage(gomock.Any()).Times(0)

		for _, content := range []string{"", strings.Repeat("a", 11)} {
			_, err := svc.CreateMessage(chat.CreateMessageCommand{Content: content})
			require.ErrorIs(t, err, errors.ErrInvalidArgument)
		}
	})
}

type spamFilter struct{}

func (spamFilter) Censor(content string) (string, []string) {
	if !strings.Contains(content, "spam") {
		return content, nil
	}
	return strings.ReplaceAll(content, "spam", "****"), []string{"spam"}
}

func TestDirectoryService_CreateMessage_Filters_Content(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockIDirectoryRepository(ctrl)
	svc := NewDirectoryService(mockRepo, Limits{}, spamFilter{}, logs.GetLoggerFromLevel(slog.LevelDebug))

	mockRepo.EXPECT().CreateMessage("no **** please").Return(1, nil)
	mockRepo.EXPECT().CreateMessage("hello").Return(2, nil)

	id, err := svc.CreateMessage(chat.CreateMessageCommand{Content: "no spam please"})
	req.NoError(err)
	req.Equal(1, id)

	id, err = svc.CreateMessage(chat.CreateMessageCommand{Content: "hello"})
	req.NoError(err)
	req.Equal(2, id)
}

func TestDirectoryService_SendMessage(t *testing.T) {
	groupID := domain.NewGroupID()
	message := domain.Message{ID: 3, Content: "hi", CreatedAt: time.Now()}

	t.Run("should resolve the message then send it", func(t *testing.T) {
		req := require.New(t)
		svc, mockRepo := newService(t, Limits{})

		gomock.InOrder(
			mockRepo.EXPECT().GetMessage(3).Return(message, nil),
			mockRepo.EXPECT().SendMessage(message, bob, groupID).Return(4, nil),
		)

		count, err := svc.SendMessage(chat.SendMessageCommand{MessageID: 3, Sender: bob, Group: groupID})

		req.NoError(err)
		req.Equal(4, count)
	})

	t.Run("should stop when the message is unknown", func(t *testing.T) {
		req := require.New(t)
		svc, mockRepo := newService(t, Limits{})

		mockRepo.EXPECT().GetMessage(9).Return(domain.Message{}, errors.ErrMessageNotFound)
		mockRepo.EXPECT().SendMessage(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.SendMessage(chat.SendMessageCommand{MessageID: 9, Sender: bob, Group: groupID})

		req.ErrorIs(err, errors.ErrMessageNotFound)
	})

	t.Run("should propagate membership errors", func(t *testing.T) {
		req := require.New(t)
		svc, mockRepo := newService(t, Limits{})

		mockRepo.EXPECT().GetMessage(3).Return(message, nil)
		mockRepo.EXPECT().SendMessage(message, bob, groupID).Return(0, errors.ErrNotAMember)

		_, err := svc.SendMessage(chat.SendMessageCommand{MessageID: 3, Sender: bob, Group: groupID})

		req.ErrorIs(err, errors.ErrNotAMember)
	})

	t.Run("should reject non positive ids", func(t *testing.T) {
		req := require.New(t)
		svc, mockRepo := newService(t, Limits{})
		mockRepo.EXPECT().GetMessage(gomock.Any()).Times(0)

		_, err := svc.SendMessage(chat.SendMessageCommand{MessageID: 0, Sender: bob, Group: groupID})

		req.ErrorIs(err, errors.ErrInvalidArgument)
	})
}

func TestDirectoryService_ChangeAdmin_And_RemoveUser(t *testing.T) {
	req := require.New(t)
	svc, mockRepo := newService(t, Limits{})
	groupID := domain.NewGroupID()

	mockRepo.EXPECT().ChangeAdmin(alex, bob, groupID).Return(nil)
	mockRepo.EXPECT().ChangeAdmin(alex, charlie, groupID).Return(errors.ErrNotAuthorized)
	mockRepo.EXPECT().RemoveUser(charlie).Return(4, nil)
	mockRepo.EXPECT().RemoveUser(bob).Return(0, errors.ErrCannotRemoveAdmin)

	req.NoError(svc.ChangeAdmin(chat.ChangeAdminCommand{Approver: alex, User: bob, Group: groupID}))
	req.ErrorIs(svc.ChangeAdmin(chat.ChangeAdminCommand{Approver: alex, User: charlie, Group: groupID}), errors.ErrNotAuthorized)

	combined, err := svc.RemoveUser(chat.RemoveUserCommand{User: charlie})
	req.NoError(err)
	req.Equal(4, combined)

	_, err = svc.RemoveUser(chat.RemoveUserCommand{User: bob})
	req.ErrorIs(err, errors.ErrCannotRemoveAdmin)
}

func TestDirectoryService_Rejects_Users_Without_Mobile(t *testing.T) {
	req := require.New(t)
	svc, mockRepo := newService(t, Limits{})
	groupID := domain.NewGroupID()
	mockRepo.EXPECT().ChangeAdmin(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	mockRepo.EXPECT().RemoveUser(gomock.Any()).Times(0)
	mockRepo.EXPECT().GetMessage(gomock.Any()).Times(0)

	req.ErrorIs(svc.ChangeAdmin(chat.ChangeAdminCommand{Approver: domain.User{}, User: bob, Group: groupID}), errors.ErrInvalidArgument)
	req.ErrorIs(svc.ChangeAdmin(chat.ChangeAdminCommand{Approver: alex, User: domain.User{Name: "Bob"}, Group: groupID}), errors.ErrInvalidArgument)

	_, err := svc.RemoveUser(chat.RemoveUserCommand{User: domain.User{}})
	req.ErrorIs(err, errors.ErrInvalidArgument)

	_, err = svc.SendMessage(chat.SendMessageCommand{MessageID: 1, Sender: domain.User{}, Group: groupID})
	req.ErrorIs(err, errors.ErrInvalidArgument)
}

func TestDirectoryService_FindMessage(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	t.Run("should forward the window", func(t *testing.T) {
		req := require.New(t)
		svc, mockRepo := newService(t, Limits{})

		mockRepo.EXPECT().FindMessage(start, end, 2).Return("hello", nil)

		content, err := svc.FindMessage(chat.FindMessageCommand{Start: start, End: end, K: 2})

		req.NoError(err)
		req.Equal("hello", content)
	})

	t.Run("should reject k below one", func(t *testing.T) {
		req := require.New(t)
		svc, mockRepo := newService(t, Limits{})
		mockRepo.EXPECT().FindMessage(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.FindMessage(chat.FindMessageCommand{Start: start, End: end, K: 0})

		req.ErrorIs(err, errors.ErrInvalidArgument)
	})
}
