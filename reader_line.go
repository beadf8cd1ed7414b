package streamex

const (
	lf = '\n'
	cr = '\r'
)

// ReadLine вычитка очередной строки. Строкой завершаются LF, CRLF и одиночный
// CR, сами завершители в результат не попадают. false возвращается когда
// данных больше нет, все последующие вызовы возвращают то же самое.
//
// Последняя строка может не иметь завершителя. Строка, не уместившаяся в
// буфер, выдаётся кусками по границе буфера. Если буфер закончился на CR,
// строка завершена им, а LF в начале следующего вызова считается его парой.
func (r *Reader) ReadLine() (string, bool) {
	r.ResetPinnedToken()

	if r.skipLF {
		r.skipLF = false
		if c, status := r.readByte(); status == StatusSucceeded && c != lf {
			r.active().Unget()
		}
	}

	if r.active().NeedsFilled() {
		if !r.swap() {
			return "", false
		}
	}

	r.PinTokenStartRelative(0)

	var awaitLF bool
	for {
		c, status := r.readByte()
		switch status {
		case StatusSucceeded:
		case StatusPinnedTokenExceedsBufferLength:
			if r.src.Remaining() > 0 {
				return r.truncatedLine(awaitLF), true
			}
			// Дальше данных всё равно нет, это просто последняя строка.
			fallthrough
		default:
			if awaitLF {
				// CR в самом конце данных.
				return r.takeToken(1), true
			}
			return r.takeToken(0), true
		}

		switch {
		case c == lf && awaitLF:
			return r.takeToken(2), true
		case c == lf:
			return r.takeToken(1), true
		case awaitLF:
			// Одиночный CR, текущий байт относится уже к следующей строке.
			r.active().Unget()
			return r.takeToken(1), true
		case c == cr:
			awaitLF = true
		}
	}
}

// truncatedLine выдача строки, занявшей весь буфер.
func (r *Reader) truncatedLine(awaitLF bool) string {
	if awaitLF {
		// Строка на самом деле закончилась.
		r.skipLF = true
		return r.takeToken(1)
	}

	line := r.takeToken(0)
	r.logger.LineTruncated(r.src.Pos(), len(line))
	return line
}
