package swapbuf

import "github.com/sirkon/errors"

// Source источник данных для заполнения окна. Оба окна читалки
// разделяют один и тот же источник.
type Source interface {
	// Remaining сколько байт ещё можно вычитать до предела.
	Remaining() int64
	// ReadExact вычитывает ровно len(p) байт или возвращает ошибку.
	ReadExact(p []byte) error
}

const noToken = -1

// Window буфер фиксированной ёмкости с одной порцией данных потока.
//
// Инварианты: 0 <= cur <= filled <= len(buf), при наличии закреплённого
// начала токена 0 <= token <= cur. Окно никогда не читается дальше filled.
type Window struct {
	src    Source
	buf    []byte
	filled int
	cur    int
	token  int
}

// New создаёт пустое окно ёмкостью capacity поверх src.
func New(src Source, capacity int) *Window {
	if capacity <= 0 {
		panic(errors.New("window capacity must be positive").Int("invalid-capacity", capacity))
	}

	return &Window{
		src:   src,
		buf:   make([]byte, capacity),
		token: noToken,
	}
}

// Fill заполняет окно начиная со смещения start, всё что до него
// считается уже подготовленным вызывающим. Возвращает false, если
// источник исчерпан, в этом случае состояние окна не меняется.
// Ошибка означает нарушение целостности источника.
func (w *Window) Fill(start int) (bool, error) {
	if start < 0 || start >= len(w.buf) {
		panic(errors.New("fill start is out of the window").
			Int("invalid-fill-start", start).
			Int("window-capacity", len(w.buf)))
	}

	rest := w.src.Remaining()
	if rest <= 0 {
		return false, nil
	}

	n := len(w.buf) - start
	if int64(n) > rest {
		n = int(rest)
	}

	if err := w.src.ReadExact(w.buf[start : start+n]); err != nil {
		return false, errors.Wrap(err, "fill window").
			Int("fill-start", start).
			Int("fill-length", n)
	}

	w.cur = start
	w.filled = start + n
	return true, nil
}

// ReadByte возвращает очередной байт окна. false означает, что окно вычитано.
func (w *Window) ReadByte() (byte, bool) {
	if w.cur >= w.filled {
		return 0, false
	}

	c := w.buf[w.cur]
	w.cur++
	return c, true
}

// Unget возвращает последний прочитанный байт обратно.
func (w *Window) Unget() {
	if w.cur == 0 {
		panic(errors.New("cannot unget at the start of the window"))
	}

	w.cur--
}

// PinTokenStartRelative закрепляет начало токена на позиции курсора со
// сдвигом delta: 0 — текущая позиция, -1 — предыдущий байт и т.д.
func (w *Window) PinTokenStartRelative(delta int) {
	token := w.cur + delta
	if token < 0 || token >= w.filled {
		panic(errors.New("pinned token start is out of the window").
			Int("pin-delta", delta).
			Int("window-cursor", w.cur).
			Int("window-filled", w.filled))
	}

	w.token = token
}

// PinTokenStartAbsolute закрепляет начало токена на смещении ib без проверок.
// Используется только сразу после переключения окон.
func (w *Window) PinTokenStartAbsolute(ib int) {
	w.token = ib
}

// ResetPinnedToken снимает закрепление начала токена.
func (w *Window) ResetPinnedToken() {
	w.token = noToken
}

// TransferToken копирует байты закреплённого токена [token, filled) в начало dst
// и возвращает их количество. Без закреплённого токена ничего не копируется.
func (w *Window) TransferToken(dst *Window) int {
	if w.token == noToken {
		return 0
	}

	return copy(dst.buf, w.buf[w.token:w.filled])
}

// SetCursor переставляет курсор на смещение ib в пределах заполненной части.
func (w *Window) SetCursor(ib int) {
	if ib < 0 || ib > w.filled {
		panic(errors.New("cursor is out of the window").
			Int("invalid-cursor", ib).
			Int("window-filled", w.filled))
	}

	w.cur = ib
}

// Token возвращает байты от начала закреплённого токена до курсора.
// Срез указывает в буфер окна и годен только до следующего заполнения.
func (w *Window) Token() []byte {
	if w.token == noToken {
		panic(errors.New("no pinned token"))
	}

	return w.buf[w.token:w.cur]
}

// NeedsFilled окно вычитано полностью.
func (w *Window) NeedsFilled() bool {
	return w.cur >= w.filled
}

// HasPinnedToken есть закреплённое начало токена.
func (w *Window) HasPinnedToken() bool {
	return w.token != noToken
}

// TokenStart смещение начала закреплённого токена или -1.
func (w *Window) TokenStart() int {
	return w.token
}

// Cursor позиция следующего чтения.
func (w *Window) Cursor() int {
	return w.cur
}

// Filled верхняя граница загруженных данных.
func (w *Window) Filled() int {
	return w.filled
}
