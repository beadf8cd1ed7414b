package streamex

import "github.com/sirkon/errors"

// refill подготовка активного буфера к чтению, когда он вычитан.
func (r *Reader) refill() Status {
	if r.active().TokenStart() == 0 {
		// Токен уже занимает буфер целиком, переносить его некуда.
		return StatusPinnedTokenExceedsBufferLength
	}

	if !r.swap() {
		return StatusSourceDataExhausted
	}

	if r.active().NeedsFilled() {
		panic(errors.New("buffer is still empty after a successful swap").
			Int64("stream-position", r.src.Pos()))
	}

	return StatusSucceeded
}

// swap переключение на другой буфер с его заполнением. Закреплённый токен
// активного буфера копируется в начало другого, остаток дочитывается из
// потока. Возвращает false если данных до предела больше нет, тогда
// активным остаётся прежний буфер.
func (r *Reader) swap() bool {
	cur, next := r.active(), r.other()

	count := cur.TransferToken(next)
	filled, err := next.Fill(count)
	if err != nil {
		panic(errors.Wrap(err, "swap buffers").
			Int("carried-token-length", count).
			Int64("stream-position", r.src.Pos()))
	}
	if !filled {
		return false
	}

	if cur.HasPinnedToken() {
		cur.ResetPinnedToken()
		next.PinTokenStartAbsolute(0)
	}

	r.useSpare = !r.useSpare
	return true
}

// takeToken выдаёт закреплённый токен без последних trim байт и снимает закрепление.
func (r *Reader) takeToken(trim int) string {
	w := r.active()
	token := w.Token()
	res := string(token[:len(token)-trim])
	w.ResetPinnedToken()
	return res
}
