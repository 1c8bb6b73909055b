package comment

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyText = errors.New("comment text cannot be blank")

const MaxTextLength = 2000

var ErrTextTooLong = errors.New("comment text too long")

// Comment is feedback on an item, only creatable once the author's approved
// rental of that item has ended. The eligibility gate lives in the usecase
// layer; this aggregate validates shape.
type Comment struct {
	id        uuid.UUID
	itemID    uuid.UUID
	authorID  uuid.UUID
	text      string
	createdAt time.Time
}

func NewComment(now time.Time, itemID, authorID uuid.UUID, text string) (*Comment, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrEmptyText
	}
	if len(trimmed) > MaxTextLength {
		return nil, ErrTextTooLong
	}

	return &Comment{
		id:        uuid.New(),
		itemID:    itemID,
		authorID:  authorID,
		text:      trimmed,
		createdAt: now,
	}, nil
}

func ReconstructComment(id, itemID, authorID uuid.UUID, text string, createdAt time.Time) *Comment {
	return &Comment{id: id, itemID: itemID, authorID: authorID, text: text, createdAt: createdAt}
}

func (c *Comment) ID() uuid.UUID        { return c.id }
func (c *Comment) ItemID() uuid.UUID    { return c.itemID }
func (c *Comment) AuthorID() uuid.UUID  { return c.authorID }
func (c *Comment) Text() string         { return c.text }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }
