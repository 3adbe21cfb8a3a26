package tag

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"parley/internal/shared/biztime"
)

var (
	nameRegex  = regexp.MustCompile(`^[a-zA-Z0-9 _-]+$`)
	colorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// Tag is a label attachable to tickets. Names are unique case-insensitively;
// NormalizedName is the comparison key.
type Tag struct {
	id         uint
	name       string
	color      string
	usageCount int
	lastUsedAt *time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

func NewTag(name, color string) (*Tag, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateColor(color); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &Tag{
		name:      strings.TrimSpace(name),
		color:     strings.ToLower(color),
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructTag(
	id uint,
	name string,
	color string,
	usageCount int,
	lastUsedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Tag, error) {
	if id == 0 {
		return nil, fmt.Errorf("tag ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("tag name is required")
	}

	return &Tag{
		id:         id,
		name:       name,
		color:      color,
		usageCount: usageCount,
		lastUsedAt: lastUsedAt,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func validateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < 2 {
		return fmt.Errorf("tag name must be at least 2 characters")
	}
	if len(trimmed) > 30 {
		return fmt.Errorf("tag name exceeds maximum length of 30 characters")
	}
	if !nameRegex.MatchString(trimmed) {
		return fmt.Errorf("tag name may contain only letters, digits, spaces, dashes and underscores")
	}
	return nil
}

func validateColor(color string) error {
	if !colorRegex.MatchString(color) {
		return fmt.Errorf("tag color must be a hex value like #ff8800")
	}
	return nil
}

// NormalizeName produces the case-insensitive uniqueness key for a tag name.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (t *Tag) ID() uint {
	return t.id
}

func (t *Tag) Name() string {
	return t.name
}

// NormalizedName is the uniqueness key used by the store.
func (t *Tag) NormalizedName() string {
	return NormalizeName(t.name)
}

func (t *Tag) Color() string {
	return t.color
}

func (t *Tag) UsageCount() int {
	return t.usageCount
}

func (t *Tag) LastUsedAt() *time.Time {
	return t.lastUsedAt
}

func (t *Tag) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Tag) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Tag) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("tag ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("tag ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Tag) Rename(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	t.name = strings.TrimSpace(name)
	t.updatedAt = biztime.NowUTC()
	return nil
}

func (t *Tag) ChangeColor(color string) error {
	if err := validateColor(color); err != nil {
		return err
	}
	t.color = strings.ToLower(color)
	t.updatedAt = biztime.NowUTC()
	return nil
}

// RecordUsage bumps the usage counter and stamps the last-used time.
func (t *Tag) RecordUsage() {
	t.usageCount++
	now := biztime.NowUTC()
	t.lastUsedAt = &now
	t.updatedAt = now
}
