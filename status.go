package streamex

// Status результат побайтового чтения.
type Status int

const (
	// StatusSucceeded байт прочитан.
	StatusSucceeded Status = iota
	// StatusPinnedTokenExceedsBufferLength закреплённый токен занимает весь
	// буфер, а конец токена так и не найден. Это структурный предел, а не сбой.
	StatusPinnedTokenExceedsBufferLength
	// StatusSourceDataExhausted логическое окно потока вычитано. Уже прочитанные
	// байты активного буфера остаются годными, например как последний токен.
	StatusSourceDataExhausted
)

func (s Status) String() string {
	switch s {
	case StatusSucceeded:
		return "succeeded"
	case StatusPinnedTokenExceedsBufferLength:
		return "pinned token exceeds buffer length"
	case StatusSourceDataExhausted:
		return "source data exhausted"
	default:
		return "unknown status"
	}
}
