package matchers

type Matcher interface {
	Match([]byte) (bool, int, int)
}
