package streamex

import (
	"github.com/rlittletht/streamex/internal/logging"
)

// DefaultBufferSize ёмкость каждого из двух буферов по умолчанию.
const DefaultBufferSize = 1024

// Меньше двух байт не поместить ни возврат CR, ни токен с прошлым байтом.
const minBufferSize = 2

// Logger логирование особых ситуаций, реализуется пользователем.
type Logger = logging.Logger

// Option определение опции читалки.
type Option func(c *config, _ optionRestriction)

type optionRestriction struct{}

type config struct {
	bufsize int
	logger  Logger
}

// WithBufferSize задаёт ёмкость каждого из двух буферов. Она же ограничивает
// длину токена и строки: более длинная строка выдаётся кусками.
func WithBufferSize(size int) Option {
	return func(c *config, _ optionRestriction) {
		c.bufsize = size
	}
}

// WithLogger задаёт логгер.
func WithLogger(logger Logger) Option {
	return func(c *config, _ optionRestriction) {
		c.logger = logger
	}
}

func newConfig(opts []Option) config {
	c := config{
		bufsize: DefaultBufferSize,
		logger:  logging.Nop(),
	}
	for _, opt := range opts {
		opt(&c, optionRestriction{})
	}

	return c
}
