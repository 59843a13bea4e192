package auth

// SafeEqual compares two strings in time proportional to the longer of
// the two, never to the position of the first mismatch. Missing bytes
// are folded in as zero and the length check happens only at the end.
// Every secret comparison must go through here.
func SafeEqual(a, b string) bool {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	var out byte
	for i := 0; i < n; i++ {
		var ca, cb byte
		if i < len(a) {
			ca = a[i]
		}
		if i < len(b) {
			cb = b[i]
		}
		out |= ca ^ cb
	}
	return out == 0 && len(a) == len(b)
}
