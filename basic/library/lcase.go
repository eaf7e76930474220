package library

// LCase$ returns a copy of a string with every letter converted to
// lower case. Non-letter characters pass through unchanged.
func init() {
	register(Builtin{
		Name:    "LCase$",
		Kind:    KindFunction,
		Returns: "String",
		Summary: "string converted to lower case",
	})
}
