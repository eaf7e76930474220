package library

// Second returns the seconds component of a time value as an Integer
// between 0 and 59. The argument is any expression that can represent
// a time; Null propagates.
func init() {
	register(Builtin{
		Name:    "Second",
		Kind:    KindFunction,
		Returns: "Integer",
		Summary: "seconds component of a time value, 0 through 59",
	})
}
