package domain

// DirectoryStats is a point-in-time view of the directory counters.
type DirectoryStats struct {
	Users        int
	Groups       int
	CustomGroups int // value of the custom group counter
	Messages     int // created messages, sent or not
	SentMessages int // size of the sender relation
}
