package blueprint

// Built-in template names
const (
	SmallShuttle       = "Small shuttle"
	SmallShuttleLegacy = "Small shuttle (legacy)"
)

var smallShuttle = MustParse(SmallShuttle, `
...####...
...####...
...####...
..######..
..######..
.########.
.########.
.########.
##########
####E#####
`)

// Legacy numeric layout: seven entrances spread around the hull
var smallShuttleLegacy = mustLegacy(SmallShuttleLegacy, [][]int{
	{-1, -1, -1, -1, -1, 0, -2, 0, -1, -1, -1, -1, -1},
	{-1, -1, -1, -1, 0, 0, 0, 0, 0, -1, -1, -1, -1},
	{-1, -1, -1, -1, 0, 0, 0, 0, 0, -1, -1, -1, -1},
	{-1, -1, 0, -2, 0, 0, 0, 0, 0, -2, 0, -1, -1},
	{-1, -1, 0, 0, 0, 0, 0, 0, 0, 0, 0, -1, -1},
	{-1, -1, 0, 0, 0, 0, 0, 0, 0, 0, 0, -1, -1},
	{-1, -2, 0, 0, 0, 0, 0, 0, 0, 0, 0, -2, -1},
	{-1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, -1},
	{0, 0, 0, 0, -2, 0, 0, 0, -2, 0, 0, 0, 0},
})

// Builtins returns the shipped templates in a stable order. The templates are
// shared and must be treated as read-only
func Builtins() []*Template {
	return []*Template{smallShuttle, smallShuttleLegacy}
}

func mustLegacy(name string, layout [][]int) *Template {
	t, err := FromLegacy(name, layout)
	if err != nil {
		panic(err)
	}
	return t
}
