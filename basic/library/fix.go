package library

// Fix returns the integer portion of a number, truncating toward zero:
// Fix(-8.4) is -8 where Int(-8.4) is -9. The result type follows the
// argument type.
func init() {
	register(Builtin{
		Name:    "Fix",
		Kind:    KindFunction,
		Returns: "Variant",
		Summary: "integer portion of a number, truncated toward zero",
	})
}
