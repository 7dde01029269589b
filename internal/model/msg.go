package model

// Bubble Tea message types

// ErrorMsg represents an error message.
type ErrorMsg struct {
	Err error
}

// TablesLoadedMsg is sent when the table source has been read.
type TablesLoadedMsg struct {
	Tables []Binding
}

// HeaderActivatedMsg asks the current table to sort by Column.
type HeaderActivatedMsg struct {
	Column int
}

// QueryChangedMsg carries the search box's current text.
type QueryChangedMsg struct {
	Query string
}

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNav Mode = iota
	ModeSearch
)
