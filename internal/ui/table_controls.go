package ui

type tableController interface {
	NextColumn()
	PrevColumn()
	JumpToColumn(number int) bool
	ActiveColumn() int
	TableMeta() string
}
