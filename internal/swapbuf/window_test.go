package swapbuf_test

import (
	"bytes"
	"testing"

	"github.com/sirkon/errors"

	"github.com/rlittletht/streamex/internal/mpio"
	"github.com/rlittletht/streamex/internal/swapbuf"
	"github.com/rlittletht/streamex/internal/tlog"
)

func TestWindowFill(t *testing.T) {
	t.Run("fill-whole-window", func(t *testing.T) {
		w := swapbuf.New(rangeSource(t, "0123456789", 0, 10), 4)
		if !w.NeedsFilled() {
			t.Error("fresh window must need filling")
		}

		fillWindow(t, w, 0, true)
		checkInts(t, "filled", 4, w.Filled())
		checkInts(t, "cursor", 0, w.Cursor())
		checkRead(t, w, "0123")
		if !w.NeedsFilled() {
			t.Error("window must need filling after it was read out")
		}
	})

	t.Run("fill-from-offset", func(t *testing.T) {
		w := swapbuf.New(rangeSource(t, "0123456789", 2, 10), 4)
		fillWindow(t, w, 3, true)
		checkInts(t, "filled", 4, w.Filled())
		checkInts(t, "cursor", 3, w.Cursor())
		checkRead(t, w, "2")
	})

	t.Run("fill-limited-by-read-limit", func(t *testing.T) {
		w := swapbuf.New(rangeSource(t, "0123456789", 7, 9), 4)
		fillWindow(t, w, 0, true)
		checkInts(t, "filled", 2, w.Filled())
		checkRead(t, w, "78")
	})

	t.Run("fill-exhausted", func(t *testing.T) {
		src := rangeSource(t, "0123", 0, 4)
		w := swapbuf.New(src, 4)
		fillWindow(t, w, 0, true)
		checkRead(t, w, "0123")
		fillWindow(t, w, 0, false)
		if _, ok := w.ReadByte(); ok {
			t.Error("no data expected after a failed fill")
		}
		checkInts(t, "position", 4, int(src.Pos()))
	})

	t.Run("fill-short-read", func(t *testing.T) {
		w := swapbuf.New(rangeSource(t, "012", 0, 10), 4)
		ok, err := w.Fill(0)
		if err == nil {
			t.Errorf("short read error was expected, got ok=%v", ok)
			return
		}
		if !errors.Is(err, mpio.ErrShortRead) {
			tlog.Error(t, errors.Wrap(err, "unexpected fill error"))
			return
		}
		tlog.Log(t, err)
	})

	t.Run("fill-start-out-of-window", func(t *testing.T) {
		w := swapbuf.New(rangeSource(t, "0123", 0, 4), 4)
		expectPanic(t, func() {
			_, _ = w.Fill(4)
		})
	})
}

func TestWindowUnget(t *testing.T) {
	w := swapbuf.New(rangeSource(t, "ab", 0, 2), 4)
	expectPanic(t, w.Unget)

	fillWindow(t, w, 0, true)
	checkRead(t, w, "a")
	w.Unget()
	checkRead(t, w, "ab")
	w.Unget()
	w.Unget()
	expectPanic(t, w.Unget)
}

func TestWindowPinnedToken(t *testing.T) {
	t.Run("unfilled-window", func(t *testing.T) {
		w := swapbuf.New(rangeSource(t, "ab", 0, 2), 4)
		expectPanic(t, func() {
			w.PinTokenStartRelative(0)
		})
	})

	t.Run("relative-pins", func(t *testing.T) {
		w := swapbuf.New(rangeSource(t, "a&#1;", 0, 5), 8)
		fillWindow(t, w, 0, true)
		checkRead(t, w, "a&")
		w.PinTokenStartRelative(-1)
		checkInts(t, "token start", 1, w.TokenStart())
		checkRead(t, w, "#1;")
		checkString(t, "token", "&#1;", string(w.Token()))

		w.ResetPinnedToken()
		if w.HasPinnedToken() {
			t.Error("token must be reset")
		}
		expectPanic(t, func() {
			w.Token()
		})
	})

	t.Run("out-of-window", func(t *testing.T) {
		w := swapbuf.New(rangeSource(t, "abc", 0, 3), 4)
		fillWindow(t, w, 0, true)
		expectPanic(t, func() {
			w.PinTokenStartRelative(-1)
		})
		checkRead(t, w, "abc")
		expectPanic(t, func() {
			w.PinTokenStartRelative(0)
		})
		w.PinTokenStartRelative(-3)
		checkString(t, "token", "abc", string(w.Token()))
	})

	t.Run("transfer", func(t *testing.T) {
		src := rangeSource(t, "0123456789", 0, 10)
		cur := swapbuf.New(src, 4)
		next := swapbuf.New(src, 4)
		fillWindow(t, cur, 0, true)
		checkInts(t, "transfer without token", 0, cur.TransferToken(next))

		checkRead(t, cur, "012")
		cur.PinTokenStartRelative(-1)
		checkRead(t, cur, "3")

		count := cur.TransferToken(next)
		checkInts(t, "transferred", 2, count)
		fillWindow(t, next, count, true)
		next.PinTokenStartAbsolute(0)
		checkRead(t, next, "45")
		checkString(t, "token", "2345", string(next.Token()))

		next.SetCursor(0)
		checkRead(t, next, "2345")
		expectPanic(t, func() {
			next.SetCursor(5)
		})
	})
}

func rangeSource(t *testing.T, data string, start, limit int64) *mpio.RangeSource {
	t.Helper()

	src, err := mpio.NewRangeSource(bytes.NewReader([]byte(data)), start, limit)
	if err != nil {
		tlog.Fatal(t, errors.Wrap(err, "set up range source"))
	}

	return src
}

func fillWindow(t *testing.T, w *swapbuf.Window, start int, want bool) {
	t.Helper()

	ok, err := w.Fill(start)
	if err != nil {
		tlog.Fatal(t, errors.Wrap(err, "fill window"))
	}
	if ok != want {
		t.Fatalf("fill result %v, want %v", ok, want)
	}
}

func checkRead(t *testing.T, w *swapbuf.Window, want string) {
	t.Helper()

	got := make([]byte, 0, len(want))
	for range want {
		c, ok := w.ReadByte()
		if !ok {
			break
		}
		got = append(got, c)
	}

	checkString(t, "read", want, string(got))
}

func checkInts(t *testing.T, what string, want, got int) {
	t.Helper()

	if want != got {
		t.Errorf("unexpected %s: want %d, got %d", what, want, got)
	}
}

func checkString(t *testing.T, what string, want, got string) {
	t.Helper()

	if want != got {
		t.Errorf("unexpected %s: want %q, got %q", what, want, got)
	}
}

func expectPanic(t *testing.T, f func()) {
	t.Helper()

	err := tlog.Panic(f)
	if err == nil {
		t.Error("panic was expected")
		return
	}

	tlog.Log(t, err)
}
