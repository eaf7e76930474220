package library

// Atn returns the arctangent of a number as a Double in radians,
// in the range -pi/2 to pi/2.
func init() {
	register(Builtin{
		Name:    "Atn",
		Kind:    KindFunction,
		Returns: "Double",
		Summary: "arctangent of a number, in radians",
	})
}
