package value_objects

import "fmt"

// NoteVisibility controls which roles may read a ticket note.
type NoteVisibility string

const (
	// VisibilityPrivate notes are readable by the author only.
	VisibilityPrivate NoteVisibility = "private"
	// VisibilityTeam notes are readable by agents and admins.
	VisibilityTeam NoteVisibility = "team"
	// VisibilityPublic notes are readable by everyone with access to the ticket.
	VisibilityPublic NoteVisibility = "public"
)

var validNoteVisibilities = map[NoteVisibility]bool{
	VisibilityPrivate: true,
	VisibilityTeam:    true,
	VisibilityPublic:  true,
}

func (v NoteVisibility) String() string {
	return string(v)
}

func (v NoteVisibility) IsValid() bool {
	return validNoteVisibilities[v]
}

func (v NoteVisibility) IsPrivate() bool {
	return v == VisibilityPrivate
}

func (v NoteVisibility) IsTeam() bool {
	return v == VisibilityTeam
}

func (v NoteVisibility) IsPublic() bool {
	return v == VisibilityPublic
}

func NewNoteVisibility(s string) (NoteVisibility, error) {
	v := NoteVisibility(s)
	if !v.IsValid() {
		return "", fmt.Errorf("invalid note visibility: %s", s)
	}
	return v, nil
}
