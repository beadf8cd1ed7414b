package streamex

// ReadNCR проверка, начинает ли только что прочитанный '&' числовую ссылку
// на символ &#digits;. При успехе возвращается вся ссылка целиком.
//
// При неудаче позиция чтения откатывается на сам '&' и возвращается false.
// Вызывающий не должен снова пытаться разобрать ссылку с этого '&', его
// нужно прочитать как обычный символ.
func (r *Reader) ReadNCR() (string, bool) {
	r.skipLF = false
	r.PinTokenStartRelative(-1)

	if c, status := r.readByte(); status != StatusSucceeded || c != '#' {
		return r.rewindToken()
	}

	var digits int
	for {
		c, status := r.readByte()
		if status != StatusSucceeded {
			return r.rewindToken()
		}

		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == ';' && digits > 0:
			return r.takeToken(0), true
		default:
			return r.rewindToken()
		}
	}
}

func (r *Reader) rewindToken() (string, bool) {
	w := r.active()
	w.SetCursor(w.TokenStart())
	w.ResetPinnedToken()
	return "", false
}
