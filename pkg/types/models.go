package types

// LogEntry is one recorded day in the log list. Fields missing from the
// stored JSON decode to their zero values.
type LogEntry struct {
	ID      int64    `json:"id"`
	DateStr string   `json:"date_str"`
	Events  []string `json:"events"`
}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

func (s SortOrder) Valid() bool {
	return s == SortAsc || s == SortDesc
}

func (s SortOrder) String() string {
	return string(s)
}

const (
	DefaultIconPreference = "star"
	DefaultSortPreference = SortDesc
)

// Preferences are the scalar settings persisted next to the log list.
type Preferences struct {
	Icon string    `json:"icon_preference"`
	Sort SortOrder `json:"sort_preference"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		Icon: DefaultIconPreference,
		Sort: DefaultSortPreference,
	}
}
