// Package console drives the directory service from a line oriented text stream.
// Each line is one command; failures are printed and the loop carries on.
package console

import (
	"bufio"
	"chat-directory/domain"
	"chat-directory/domain/chat"
	"chat-directory/errors"
	"chat-directory/services"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

const success = "SUCCESS"

// ErrQuit is returned by Execute when the quit command is read.
var ErrQuit = stderrors.New("quit")

const usage = `commands:
  user <name> <mobile>
  group <mobile> <mobile> [<mobile>...]       first mobile is admin
  message <content...>
  send <messageID> <senderMobile> <groupName>
  admin <approverMobile> <userMobile> <groupName>
  remove <mobile>
  find <start> <end> <k>
  groups | members <groupName> | stats | help | quit`

type Console struct {
	service    services.IDirectoryService
	out        io.Writer
	log        *slog.Logger
	timeLayout string
	echo       bool
}

// NewConsole writes results to out. Timestamps given to find are parsed with timeLayout.
// When echo is true every command is printed before its result, which suits scripts.
func NewConsole(service services.IDirectoryService, out io.Writer, log *slog.Logger, timeLayout string, echo bool) *Console {
	if timeLayout == "" {
		timeLayout = time.RFC3339
	}
	return &Console{service: service, out: out, log: log, timeLayout: timeLayout, echo: echo}
}

// Run reads commands from in until it is exhausted, quit is read or ctx is done.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return ctx.Err()
				}
			}
			if c.echo && strings.TrimSpace(line) != "" {
				fmt.Fprintf(c.out, "> %s\n", line)
			}
			err := c.Execute(line)
			if stderrors.Is(err, ErrQuit) {
				return nil
			}
			if err != nil {
				c.log.Debug("Command failed", "line", line, "error", err)
				fmt.Fprintln(c.out, color.Red.Sprint("error: "+err.Error()))
			}
		}
	}
}

// Execute runs a single command line.
func (c *Console) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}
	name, args := strings.ToLower(fields[0]), fields[1:]

	switch name {
	case "user":
		return c.createUser(args)
	case "group":
		return c.createGroup(args)
	case "message":
		return c.createMessage(args)
	case "send":
		return c.sendMessage(args)
	case "admin":
		return c.changeAdmin(args)
	case "remove":
		return c.removeUser(args)
	case "find":
		return c.findMessage(args)
	case "groups":
		return c.listGroups()
	case "members":
		return c.listMembers(args)
	case "stats":
		return c.stats()
	case "help":
		fmt.Fprintln(c.out, usage)
		return nil
	case "quit", "exit":
		return ErrQuit
	default:
		return fmt.Errorf("%w: unknown command %q", errors.ErrInvalidArgument, name)
	}
}

func (c *Console) createUser(args []string) error {
	if err := arity(args, 2); err != nil {
		return err
	}
	if _, err := c.service.CreateUser(chat.CreateUserCommand{UserName: args[0], Mobile: args[1]}); err != nil {
		return err
	}
	c.ok(success)
	return nil
}

func (c *Console) createGroup(args []string) error {
	members := make([]domain.User, 0, len(args))
	for _, mobile := range args {
		user, err := c.service.User(mobile)
		if err != nil {
			return err
		}
		members = append(members, user)
	}
	group, err := c.service.CreateGroup(chat.CreateGroupCommand{Members: members})
	if err != nil {
		return err
	}
	c.ok(fmt.Sprintf("%s (%s, %d members, admin %s)", group.Name, group.Kind, group.Size, members[0].Mobile))
	return nil
}

func (c *Console) createMessage(args []string) error {
	id, err := c.service.CreateMessage(chat.CreateMessageCommand{Content: strings.Join(args, " ")})
	if err != nil {
		return err
	}
	c.ok(fmt.Sprintf("message %d", id))
	return nil
}

func (c *Console) sendMessage(args []string) error {
	args, err := withGroupName(args, 2)
	if err != nil {
		return err
	}
	id, convErr := strconv.Atoi(args[0])
	if convErr != nil {
		return fmt.Errorf("%w: message id %q", errors.ErrInvalidArgument, args[0])
	}
	group, err := c.group(args[2])
	if err != nil {
		return err
	}
	count, err := c.service.SendMessage(chat.SendMessageCommand{
		MessageID: id,
		Sender:    c.user(args[1]),
		Group:     group.ID,
	})
	if err != nil {
		return err
	}
	c.ok(fmt.Sprintf("%d messages in %s", count, group.Name))
	return nil
}

func (c *Console) changeAdmin(args []string) error {
	args, err := withGroupName(args, 2)
	if err != nil {
		return err
	}
	group, err := c.group(args[2])
	if err != nil {
		return err
	}
	err = c.service.ChangeAdmin(chat.ChangeAdminCommand{
		Approver: c.user(args[0]),
		User:     c.user(args[1]),
		Group:    group.ID,
	})
	if err != nil {
		return err
	}
	c.ok(success)
	return nil
}

func (c *Console) removeUser(args []string) error {
	if err := arity(args, 1); err != nil {
		return err
	}
	combined, err := c.service.RemoveUser(chat.RemoveUserCommand{User: c.user(args[0])})
	if err != nil {
		return err
	}
	c.ok(strconv.Itoa(combined))
	return nil
}

func (c *Console) findMessage(args []string) error {
	if err := arity(args, 3); err != nil {
		return err
	}
	start, err := time.Parse(c.timeLayout, args[0])
	if err != nil {
		return fmt.Errorf("%w: start: %v", errors.ErrInvalidArgument, err)
	}
	end, err := time.Parse(c.timeLayout, args[1])
	if err != nil {
		return fmt.Errorf("%w: end: %v", errors.ErrInvalidArgument, err)
	}
	k, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("%w: k %q", errors.ErrInvalidArgument, args[2])
	}
	content, err := c.service.FindMessage(chat.FindMessageCommand{Start: start, End: end, K: k})
	if err != nil {
		return err
	}
	c.ok(content)
	return nil
}

func (c *Console) listGroups() error {
	table := c.table("Name", "Kind", "Members", "Admin", "Messages")
	for _, group := range c.service.Groups() {
		members, err := c.service.Members(group.ID)
		if err != nil {
			return err
		}
		admin, err := c.service.Admin(group.ID)
		if err != nil {
			return err
		}
		messages, err := c.service.GroupMessages(group.ID)
		if err != nil {
			return err
		}
		table.Append([]string{
			group.Name,
			group.Kind.String(),
			strconv.Itoa(len(members)),
			admin.Mobile,
			strconv.Itoa(len(messages)),
		})
	}
	table.Render()
	return nil
}

func (c *Console) listMembers(args []string) error {
	args, err := withGroupName(args, 0)
	if err != nil {
		return err
	}
	group, err := c.group(args[0])
	if err != nil {
		return err
	}
	members, err := c.service.Members(group.ID)
	if err != nil {
		return err
	}
	admin, err := c.service.Admin(group.ID)
	if err != nil {
		return err
	}
	table := c.table("Mobile", "Name", "Role")
	for _, member := range members {
		role := "member"
		if member.Mobile == admin.Mobile {
			role = "admin"
		}
		table.Append([]string{member.Mobile, member.Name, role})
	}
	table.Render()
	return nil
}

func (c *Console) stats() error {
	s := c.service.Stats()
	table := c.table("Users", "Groups", "Custom groups", "Messages", "Sent")
	table.Append([]string{
		strconv.Itoa(s.Users),
		strconv.Itoa(s.Groups),
		strconv.Itoa(s.CustomGroups),
		strconv.Itoa(s.Messages),
		strconv.Itoa(s.SentMessages),
	})
	table.Render()
	return nil
}

// group resolves a group by name; the first created one wins on ambiguity.
func (c *Console) group(name string) (domain.Group, error) {
	group, ok := lo.Find(c.service.Groups(), func(g domain.Group) bool {
		return g.Name == name
	})
	if !ok {
		return domain.Group{}, fmt.Errorf("%w: %s", errors.ErrGroupNotFound, name)
	}
	return group, nil
}

// user resolves a mobile. Unknown mobiles still identify a user for membership checks.
func (c *Console) user(mobile string) domain.User {
	user, err := c.service.User(mobile)
	if err != nil {
		return domain.User{Mobile: mobile}
	}
	return user
}

func (c *Console) table(header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(c.out)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	return table
}

func (c *Console) ok(text string) {
	fmt.Fprintln(c.out, color.Green.Sprint(text))
}

// withGroupName joins every field from position into a single trailing group
// name, since custom group names contain a space.
func withGroupName(args []string, position int) ([]string, error) {
	if len(args) <= position {
		return nil, fmt.Errorf("%w: expected a group name after %d arguments", errors.ErrInvalidArgument, position)
	}
	return append(args[:position:position], strings.Join(args[position:], " ")), nil
}

func arity(args []string, expected int) error {
	if len(args) != expected {
		return fmt.Errorf("%w: expected %d arguments, got %d", errors.ErrInvalidArgument, expected, len(args))
	}
	return nil
}
