package main

// UsageError represents a bad command line: wrong argument count, an
// unknown flag or an invalid flag value.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return "usage: " + e.Msg
}
