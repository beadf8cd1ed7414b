package mpio

import "github.com/sirkon/errors"

// ErrUnexpectedEOD когда вместо данных при чтении получается пустой результат.
var ErrUnexpectedEOD = errors.Const("empty read when data was expected")

// ErrShortRead источник вернул меньше данных, чем обещал вычисленный
// остаток окна. Это нарушение целостности источника, после него учёт
// позиций в буферах становится недостоверным.
var ErrShortRead = errors.Const("source returned less data than the remaining length promised")

func errReadBeyondLimit(pos, lim int64, want int) error {
	return errors.New("read request goes beyond the read limit").
		Int64("read-position", pos).
		Int64("read-limit", lim).
		Int("read-length", want)
}
