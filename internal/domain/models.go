package domain

import "time"

// FileCategory classifies an entry by its extension for display purposes.
type FileCategory string

const (
	CategoryFolder   FileCategory = "folder"
	CategoryDocument FileCategory = "document"
	CategoryImage    FileCategory = "image"
	CategoryVideo    FileCategory = "video"
	CategoryAudio    FileCategory = "audio"
	CategoryArchive  FileCategory = "archive"
	CategoryCode     FileCategory = "code"
	CategoryOther    FileCategory = "other"
)

// FileEntry represents one entry of a directory listing. The Path is the
// entry's identifier: unique within a listing and stable for the lifetime
// of one snapshot.
type FileEntry struct {
	Path     string
	Name     string
	Ext      string
	Size     int64
	ModTime  time.Time
	IsDir    bool
	IsHidden bool
	Category FileCategory
}

// ID returns the entry's identifier within a listing.
func (e FileEntry) ID() string { return e.Path }

// OpKind names a batch file operation.
type OpKind string

const (
	OpMove   OpKind = "move"
	OpCopy   OpKind = "copy"
	OpDelete OpKind = "delete"
)

// OpFailure records one path that a batch operation could not process.
type OpFailure struct {
	Path string
	Err  error
}
