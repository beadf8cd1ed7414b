package mpio

import "io"

// ReadFull вычитывает ровно len(buf) байт из r.
//
// В отличие от io.ReadFull пустое чтение без ошибки не повторяется,
// а сразу считается нарушением контракта источника: возвращается
// ErrUnexpectedEOD вместе с числом уже вычитанных байт. Конец данных
// посреди буфера даёт io.ErrUnexpectedEOF, конец данных до первого
// байта — io.EOF.
func ReadFull(r io.Reader, buf []byte) (n int, err error) {
	for n < len(buf) {
		var nn int
		nn, err = r.Read(buf[n:])
		n += nn
		if err != nil {
			break
		}
		if nn == 0 {
			return n, ErrUnexpectedEOD
		}
	}

	if n == len(buf) {
		return n, nil
	}

	if err == io.EOF && n > 0 {
		err = io.ErrUnexpectedEOF
	}

	return n, err
}
