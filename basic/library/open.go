package library

// Open enables input and output to a file: a path, a mode (Input,
// Output, Append, Binary or Random), optional access and lock
// specifiers, and a file number introduced by #.
func init() {
	register(Builtin{
		Name:    "Open",
		Kind:    KindStatement,
		Summary: "opens a file for input or output under a file number",
	})
}
