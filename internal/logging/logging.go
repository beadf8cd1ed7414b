package logging

// Logger абстракция предназначенная для логирования в строго определённых ситуациях.
// Реализация логирования должна делаться пользователями библиотеки.
type Logger interface {
	// LineTruncated строка заняла весь буфер и была разрезана на его границе.
	// pos — позиция в потоке после выдачи куска, length — длина выданного куска.
	LineTruncated(pos int64, length int)

	// SourceCloseFailed не удалось закрыть файл источника после ошибки открытия читалки.
	SourceCloseFailed(name string, err error)
}

// Nop возвращает логгер, который ничего не делает.
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) LineTruncated(int64, int)        {}
func (nopLogger) SourceCloseFailed(string, error) {}
