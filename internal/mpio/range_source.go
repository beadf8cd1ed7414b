package mpio

import (
	"io"

	"github.com/sirkon/errors"
)

// RangeSource источник данных ограниченный логическим окном [start, limit)
// потока с произвольным доступом. Ведёт учёт позиции чтения сам: поток
// принадлежит источнику монопольно, поэтому учтённая позиция совпадает
// с настоящим смещением в потоке.
type RangeSource struct {
	src io.ReadSeeker
	pos int64
	lim int64
}

// NewRangeSource конструктор RangeSource. Поток сразу позиционируется на start.
func NewRangeSource(src io.ReadSeeker, start, limit int64) (*RangeSource, error) {
	if start < 0 {
		return nil, errors.New("negative read start position").
			Int64("invalid-read-start", start)
	}

	if limit < start {
		return nil, errors.New("got read limit below the read position").
			Int64("invalid-read-position", start).
			Int64("invalid-read-limit", limit)
	}

	pos, err := src.Seek(start, io.SeekStart)
	if err != nil {
		return nil, errors.Wrap(err, "seek to the read start").Int64("read-start", start)
	}

	if pos != start {
		return nil, errors.New("seek moved to an unexpected position").
			Int64("read-start", start).
			Int64("unexpected-position", pos)
	}

	return &RangeSource{
		src: src,
		pos: pos,
		lim: limit,
	}, nil
}

// Remaining количество байт, которые ещё можно вычитать до предела.
func (s *RangeSource) Remaining() int64 {
	if s.pos >= s.lim {
		return 0
	}

	return s.lim - s.pos
}

// ReadExact вычитывает ровно len(p) байт. Нехватка данных в потоке, когда
// по пределу они должны быть, отдаётся ошибкой оборачивающей ErrShortRead.
func (s *RangeSource) ReadExact(p []byte) error {
	if int64(len(p)) > s.Remaining() {
		return errReadBeyondLimit(s.pos, s.lim, len(p))
	}

	n, err := ReadFull(s.src, p)
	s.pos += int64(n)
	switch {
	case err == nil:
		return nil
	case err == io.EOF, err == io.ErrUnexpectedEOF, err == ErrUnexpectedEOD:
		return errors.Wrap(ErrShortRead, "read source").
			Int("expected-length", len(p)).
			Int("actual-length", n).
			Int64("read-position", s.pos)
	default:
		return errors.Wrap(err, "read source").Int64("read-position", s.pos)
	}
}

// Pos возврат позиции чтения в потоке.
func (s *RangeSource) Pos() int64 {
	return s.pos
}

// Limit возврат предела чтения.
func (s *RangeSource) Limit() int64 {
	return s.lim
}

// Close закрывает поток, если он это умеет.
func (s *RangeSource) Close() error {
	c, ok := s.src.(io.Closer)
	if !ok {
		return nil
	}

	return c.Close()
}
