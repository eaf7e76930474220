package library

// Trim$ returns a copy of a string without leading or trailing spaces.
func init() {
	register(Builtin{
		Name:    "Trim$",
		Kind:    KindFunction,
		Returns: "String",
		Summary: "string without leading or trailing spaces",
	})
}
