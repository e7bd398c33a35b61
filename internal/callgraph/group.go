package callgraph

import "strings"

// Group categorizes a function for coloring and filtering.
type Group int

// Groups, numbered as the viewer's legend expects.
const (
	GroupOther Group = iota
	GroupModule
	GroupSystem
	GroupEntry
	GroupUser
)

var systemFunctions = map[string]bool{
	"malloc":  true,
	"free":    true,
	"memset":  true,
	"memmove": true,
	"realloc": true,
}

var entryFunctions = map[string]bool{
	"main":     true,
	"MAIN__":   true,
	"sqrt":     true,
	"lround":   true,
	"copysign": true,
}

// Classify returns the group for a function id.
func Classify(id string) Group {
	switch {
	case strings.HasPrefix(id, "__mod_"):
		return GroupModule
	case strings.HasPrefix(id, "_gfortran_") || systemFunctions[id]:
		return GroupSystem
	case entryFunctions[id]:
		return GroupEntry
	default:
		return GroupUser
	}
}

// String returns the legend name of the group.
func (g Group) String() string {
	switch g {
	case GroupModule:
		return "module"
	case GroupSystem:
		return "system"
	case GroupEntry:
		return "entry"
	case GroupUser:
		return "user"
	default:
		return "other"
	}
}

// AllGroups lists the groups in legend order.
func AllGroups() []Group {
	return []Group{GroupOther, GroupModule, GroupSystem, GroupEntry, GroupUser}
}
