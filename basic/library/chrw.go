package library

// ChrW$ returns the character for a Unicode code point as a String.
// Unlike Chr$, the argument is not interpreted through the active code
// page.
func init() {
	register(Builtin{
		Name:    "ChrW$",
		Kind:    KindFunction,
		Returns: "String",
		Summary: "character for a Unicode code point",
	})
}
