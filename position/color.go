package position

// Color buckets a semitone interval into its family tag. The mapping
// is a pure function of the interval so identical degrees always
// render identically.
func Color(interval int) string {
	switch ((interval % 12) + 12) % 12 {
	case 0:
		return "root"
	case 3, 4:
		return "third"
	case 6, 7, 8:
		return "fifth"
	case 10, 11:
		return "seventh"
	}
	return "extension"
}
