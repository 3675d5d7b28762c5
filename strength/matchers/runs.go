package matchers

// Runs matches a run of at least length identical consecutive bytes. RE2
// has no backreferences, so this cannot be a Format matcher.
func Runs(length int) Matcher {
	return &runsMatcher{
		length: length,
	}
}

type runsMatcher struct {
	length int
}

func (m *runsMatcher) Match(line []byte) (bool, int, int) {
	if m.length < 1 {
		return false, 0, 0
	}

	start := 0
	for i := 1; i <= len(line); i++ {
		if i < len(line) && line[i] == line[start] {
			continue
		}

		if i-start >= m.length {
			return true, start, start + m.length
		}

		start = i
	}

	return false, 0, 0
}
