// Package streamex буферизованная вычитка логического окна [start, limit)
// потока с произвольным доступом через два буфера фиксированной ёмкости.
//
// Кроме побайтового чтения поддерживаются вычитка строк с нормализацией
// CR/LF/CRLF и вычитка числовых ссылок на символы вида &#NNN;. Незаконченный
// токен закрепляется и переносится в другой буфер при его заполнении, так
// что токен может пересекать границу буферов, но не может быть длиннее буфера.
//
// Читалка не потокобезопасна. Нарушения протокола использования и нарушения
// целостности потока (поток отдал меньше данных, чем должен) приводят к панике
// с ошибкой из github.com/sirkon/errors.
package streamex

import (
	"io"

	"github.com/sirkon/errors"

	"github.com/rlittletht/streamex/internal/mpio"
	"github.com/rlittletht/streamex/internal/swapbuf"
)

// Reader читалка логического окна потока с двумя буферами.
type Reader struct {
	src    *mpio.RangeSource
	logger Logger

	main     *swapbuf.Window
	spare    *swapbuf.Window
	useSpare bool

	// Строка завершилась CR на границе буфера, LF после него ещё не вычитан.
	skipLF bool
}

// New конструктор Reader. Поток позиционируется на start, читать можно до limit.
func New(src io.ReadSeeker, start, limit int64, opts ...Option) (*Reader, error) {
	return newReader(src, start, limit, newConfig(opts))
}

func newReader(src io.ReadSeeker, start, limit int64, c config) (*Reader, error) {
	if c.bufsize < minBufferSize {
		return nil, errors.New("buffer size is too small").
			Int("invalid-buffer-size", c.bufsize).
			Int("least-buffer-size", minBufferSize)
	}

	rs, err := mpio.NewRangeSource(src, start, limit)
	if err != nil {
		return nil, errors.Wrap(err, "set up read range")
	}

	return &Reader{
		src:    rs,
		logger: c.logger,
		main:   swapbuf.New(rs, c.bufsize),
		spare:  swapbuf.New(rs, c.bufsize),
	}, nil
}

// Position текущее смещение в потоке. Это физическая позиция потока,
// а не позиция чтения внутри буферов.
func (r *Reader) Position() int64 {
	r.active()
	return r.src.Pos()
}

// Close закрывает поток, если он реализует io.Closer. После закрытия
// читалкой пользоваться нельзя.
func (r *Reader) Close() error {
	r.active()

	src := r.src
	r.src, r.main, r.spare = nil, nil, nil
	if err := src.Close(); err != nil {
		return errors.Wrap(err, "close source")
	}

	return nil
}

// ReadByte чтение очередного байта. Байт имеет смысл только при StatusSucceeded.
func (r *Reader) ReadByte() (byte, Status) {
	r.skipLF = false
	return r.readByte()
}

func (r *Reader) readByte() (byte, Status) {
	if r.active().NeedsFilled() {
		if status := r.refill(); status != StatusSucceeded {
			return 0, status
		}
	}

	c, ok := r.active().ReadByte()
	if !ok {
		return 0, StatusSourceDataExhausted
	}

	return c, StatusSucceeded
}

// PinTokenStartRelative закрепляет начало токена относительно позиции чтения:
// 0 — следующий байт, -1 — только что прочитанный и т.д. Закреплённый токен
// переносится в другой буфер при переключении.
func (r *Reader) PinTokenStartRelative(delta int) {
	r.active().PinTokenStartRelative(delta)
}

// ResetPinnedToken снимает закрепление токена.
func (r *Reader) ResetPinnedToken() {
	r.active().ResetPinnedToken()
}

func (r *Reader) active() *swapbuf.Window {
	if r.main == nil {
		panic(ErrReaderClosed)
	}

	if r.useSpare {
		return r.spare
	}

	return r.main
}

func (r *Reader) other() *swapbuf.Window {
	if r.useSpare {
		return r.main
	}

	return r.spare
}
