package tlog

// TestingPrinter wrapper over *testing.T to print data
type TestingPrinter interface {
	Helper()
	Log(a ...any)
	Error(a ...any)
	Fatal(a ...any)
}
