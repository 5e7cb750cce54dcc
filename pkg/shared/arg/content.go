package arg

import "strings"

// HandleContent joins positional arguments into a note body, so that
// `mdn new buy milk` and `mdn new "buy milk"` create the same note.
func HandleContent(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
