package streamex

import (
	"github.com/sirkon/errors"

	"github.com/rlittletht/streamex/internal/mpio"
)

// ErrReaderClosed паника с этой ошибкой случается при использовании закрытой читалки.
var ErrReaderClosed = errors.Const("reader is closed")

// ErrShortRead поток вернул меньше данных, чем должен был иметь до предела чтения.
// Читалка паникует с ошибкой, оборачивающей это значение.
var ErrShortRead = mpio.ErrShortRead
