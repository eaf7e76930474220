package library

// RTrim$ returns a copy of a string without trailing spaces. Leading
// spaces are kept; use LTrim$ or Trim$ for the other sides.
func init() {
	register(Builtin{
		Name:    "RTrim$",
		Kind:    KindFunction,
		Returns: "String",
		Summary: "string without trailing spaces",
	})
}
