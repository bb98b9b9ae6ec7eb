package domain

import "time"

// ReadingText is a passage offered for read-aloud practice.
type ReadingText struct {
	id         ReadingTextID
	content    ReadingTextContent
	difficulty Difficulty
	category   Category
	createdAt  time.Time
	updatedAt  time.Time
}

// ReadingTextParams carries the raw fields for NewReadingText. Zero
// timestamps are stamped with the current time.
type ReadingTextParams struct {
	ID         string
	Content    string
	Difficulty string
	Category   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewReadingText validates p and returns a ReadingText.
func NewReadingText(p ReadingTextParams) (ReadingText, error) {
	id, err := NewReadingTextID(p.ID)
	if err != nil {
		return ReadingText{}, err
	}
	content, err := NewReadingTextContent(p.Content)
	if err != nil {
		return ReadingText{}, err
	}
	difficulty, err := ParseDifficulty(p.Difficulty)
	if err != nil {
		return ReadingText{}, err
	}
	category, err := ParseCategory(p.Category)
	if err != nil {
		return ReadingText{}, err
	}

	createdAt, updatedAt := stampTimes(p.CreatedAt, p.UpdatedAt)
	return ReadingText{
		id:         id,
		content:    content,
		difficulty: difficulty,
		category:   category,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (t ReadingText) ID() string             { return t.id.String() }
func (t ReadingText) Content() string        { return t.content.String() }
func (t ReadingText) Difficulty() Difficulty { return t.difficulty }
func (t ReadingText) Category() Category     { return t.category }
func (t ReadingText) CreatedAt() time.Time   { return t.createdAt }
func (t ReadingText) UpdatedAt() time.Time   { return t.updatedAt }

// UpdateContent returns a copy of t carrying the new content and a later
// UpdatedAt. t itself is unchanged.
func (t ReadingText) UpdateContent(content string) (ReadingText, error) {
	c, err := NewReadingTextContent(content)
	if err != nil {
		return ReadingText{}, err
	}
	next := t
	next.content = c
	next.updatedAt = nextUpdatedAt(t.updatedAt)
	return next, nil
}
