package repository

import "strings"

// likeEscape is the escape character used with containsPattern. A backslash
// would need doubling on MySQL.
const likeEscape = "!"

var likeEscaper = strings.NewReplacer(
	likeEscape, likeEscape+likeEscape,
	"%", likeEscape+"%",
	"_", likeEscape+"_",
)

// containsPattern builds a lower-cased LIKE pattern that matches s as a
// literal substring. Pair it with ESCAPE '!'.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}
