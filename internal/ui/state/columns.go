package state

// Column names a sortable table column.
type Column string

const (
	ColumnNone       Column = ""
	ColumnName       Column = "name"
	ColumnHeight     Column = "height"
	ColumnWeight     Column = "weight"
	ColumnAbilities  Column = "abilities"
	ColumnExperience Column = "base_experience"
)

// PageSize is the number of rows shown per page.
const PageSize = 20

// Categories is the fixed list of type names offered by the filter selector.
var Categories = []string{
	"normal",
	"fire",
	"water",
	"grass",
	"electric",
	"ice",
	"fighting",
	"poison",
	"ground",
	"flying",
	"psychic",
	"bug",
	"rock",
	"ghost",
	"dark",
	"dragon",
	"steel",
	"fairy",
}

// AnyCategoryLabel is shown for the empty filter.
const AnyCategoryLabel = "any"

// CategoryOptions returns the selector entries: "any" followed by every
// category.
func CategoryOptions() []Option {
	opts := make([]Option, 0, len(Categories)+1)
	opts = append(opts, Option{Value: "", Label: AnyCategoryLabel})
	for _, c := range Categories {
		opts = append(opts, Option{Value: c, Label: c})
	}
	return opts
}

// CycleCategory returns the category delta steps away from current, wrapping
// through the "any" entry.
func CycleCategory(current string, delta int) string {
	opts := CategoryOptions()
	idx := 0
	for i, opt := range opts {
		if opt.Value == current {
			idx = i
			break
		}
	}
	n := len(opts)
	idx = ((idx+delta)%n + n) % n
	return opts[idx].Value
}
