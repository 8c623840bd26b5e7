package log

// TB is the subset of testing.TB the test logger needs.
type TB interface {
	Errorf(string, ...interface{})
	Fatalf(string, ...interface{})
	Logf(string, ...interface{})
	Helper()
}

// Testing reports log output through a test, failing it on errors.
type Testing struct {
	TB
	Std
}

func (l *Testing) Debug(m string, s ...interface{}) {
	l.Helper()
	l.Logf(format("DEB", m, s, l.Tags))
}
func (l *Testing) Error(m string, s ...interface{}) {
	l.Helper()
	l.Errorf(format("ERR", m, s, l.Tags))
}
func (l *Testing) Crit(m string, s ...interface{}) {
	l.Helper()
	l.Fatalf(format("CRI", m, s, l.Tags))
}
func (l *Testing) With(tags ...interface{}) Logger {
	return &Testing{l.TB, *l.Std.with(tags)}
}
