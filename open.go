package streamex

import (
	"os"

	"github.com/sirkon/errors"
)

// Open открывает файл name только на чтение и создаёт читалку окна [start, limit).
// Файл может одновременно быть открыт на запись другими процессами, читалка
// видит лишь то, что уже есть до limit.
func Open(name string, start, limit int64, opts ...Option) (_ *Reader, err error) {
	c := newConfig(opts)

	file, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "open source file")
	}

	defer func() {
		if err == nil {
			return
		}

		if cErr := file.Close(); cErr != nil {
			c.logger.SourceCloseFailed(name, cErr)
		}
	}()

	r, err := newReader(file, start, limit, c)
	if err != nil {
		return nil, errors.Wrap(err, "create reader").Str("file-name", name)
	}

	return r, nil
}
