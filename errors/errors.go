package errors

import "fmt"

var (
	ErrDuplicateUser        = fmt.Errorf("user already exists")
	ErrGroupNotFound        = fmt.Errorf("group does not exist")
	ErrNotAMember           = fmt.Errorf("user is not a participant")
	ErrNotAuthorized        = fmt.Errorf("approver does not have rights")
	ErrCannotRemoveAdmin    = fmt.Errorf("cannot remove admin")
	ErrUserNotFound         = fmt.Errorf("user not found")
	ErrInsufficientMessages = fmt.Errorf("k is greater than the number of messages")
	ErrInvalidArgument      = fmt.Errorf("invalid argument")
	ErrMessageNotFound      = fmt.Errorf("message not found")
	ErrMessageAlreadySent   = fmt.Errorf("message already sent")
)
