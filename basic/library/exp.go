package library

// Exp returns e raised to a power as a Double. The argument must not
// exceed 709.782712893, the largest exponent a Double can carry.
func init() {
	register(Builtin{
		Name:    "Exp",
		Kind:    KindFunction,
		Returns: "Double",
		Summary: "e raised to a power",
	})
}
