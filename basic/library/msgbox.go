package library

// MsgBox displays a message dialog and returns the button the user
// chose. In statement position the return value is discarded and the
// arguments are written without parentheses.
func init() {
	register(Builtin{
		Name:    "MsgBox",
		Kind:    KindFunction,
		Returns: "Integer",
		Summary: "message dialog; returns the chosen button",
	})
}
