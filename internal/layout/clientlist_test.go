package layout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClientListEmpty(t *testing.T) {
	t.Parallel()

	l := NewClientList()
	require.Equal(t, 0, l.Len())
	require.Equal(t, 0, l.CurrentIndex())
	require.Nil(t, l.Current())
	require.Nil(t, l.FocusFirst())
	require.Nil(t, l.FocusLast())
	require.Nil(t, l.At(0))
	require.Nil(t, l.Remove(newStubWindow("ghost")))
}

func TestClientListCursorInvariant(t *testing.T) {
	t.Parallel()

	// Arbitrary add/remove sequence: the cursor stays in [0, Len) while
	// non-empty and resets to the 0 sentinel when the list empties.
	l := NewClientList()
	ws := []*stubWindow{
		newStubWindow("a"), newStubWindow("b"), newStubWindow("c"),
		newStubWindow("d"), newStubWindow("e"),
	}
	check := func() {
		t.Helper()
		if l.Len() == 0 {
			require.Equal(t, 0, l.CurrentIndex())
			return
		}
		require.GreaterOrEqual(t, l.CurrentIndex(), 0)
		require.Less(t, l.CurrentIndex(), l.Len())
	}

	for i, w := range ws {
		l.Add(w, i%3-1, PositionNone)
		check()
	}
	for _, w := range []*stubWindow{ws[2], ws[0], ws[4], ws[1], ws[3]} {
		l.Remove(w)
		check()
	}
	require.Equal(t, 0, l.Len())
	require.Equal(t, 0, l.CurrentIndex())
}

func TestClientListAddPlacements(t *testing.T) {
	t.Parallel()

	a, b, c, d := newStubWindow("a"), newStubWindow("b"), newStubWindow("c"), newStubWindow("d")

	t.Run("after current", func(t *testing.T) {
		t.Parallel()
		l := listOf(a, b, c)
		require.NoError(t, l.SetCurrent(b))
		l.Add(d, 0, PositionAfterCurrent)
		require.Equal(t, []string{"a", "b", "d", "c"}, names(l.Clients()))
		require.Same(t, d, l.Current())
	})

	t.Run("before current", func(t *testing.T) {
		t.Parallel()
		l := listOf(a, b, c)
		require.NoError(t, l.SetCurrent(b))
		l.Add(d, 0, PositionBeforeCurrent)
		require.Equal(t, []string{"a", "d", "b", "c"}, names(l.Clients()))
		require.Same(t, d, l.Current())
	})

	t.Run("top and bottom ignore the cursor", func(t *testing.T) {
		t.Parallel()
		l := listOf(a, b)
		require.NoError(t, l.SetCurrent(b))
		l.Add(c, 0, PositionTop)
		require.Equal(t, []string{"c", "a", "b"}, names(l.Clients()))
		require.Same(t, c, l.Current())
		l.Add(d, 0, PositionBottom)
		require.Equal(t, []string{"c", "a", "b", "d"}, names(l.Clients()))
		require.Same(t, d, l.Current())
	})

	t.Run("offset clamps to append past the end", func(t *testing.T) {
		t.Parallel()
		l := listOf(a, b)
		require.NoError(t, l.SetCurrent(b))
		l.Add(c, 5, PositionNone)
		require.Equal(t, []string{"a", "b", "c"}, names(l.Clients()))
		require.Same(t, c, l.Current())
	})

	t.Run("negative offset floors at zero", func(t *testing.T) {
		t.Parallel()
		l := listOf(a, b)
		l.Add(c, -3, PositionNone)
		require.Equal(t, []string{"c", "a", "b"}, names(l.Clients()))
		require.Same(t, c, l.Current())
	})
}

func TestClientListRemove(t *testing.T) {
	t.Parallel()

	a, b, c := newStubWindow("a"), newStubWindow("b"), newStubWindow("c")

	t.Run("removing current at head focuses the new head", func(t *testing.T) {
		t.Parallel()
		l := listOf(a, b, c)
		next := l.Remove(a)
		require.Same(t, b, next)
		require.Equal(t, 0, l.CurrentIndex())
		require.Equal(t, []string{"b", "c"}, names(l.Clients()))
	})

	t.Run("removing before the cursor slides it back", func(t *testing.T) {
		t.Parallel()
		l := listOf(a, b, c)
		require.NoError(t, l.SetCurrent(c))
		next := l.Remove(a)
		require.Same(t, c, next)
		require.Equal(t, 1, l.CurrentIndex())
	})

	t.Run("removing after the cursor leaves it alone", func(t *testing.T) {
		t.Parallel()
		l := listOf(a, b, c)
		require.NoError(t, l.SetCurrent(a))
		next := l.Remove(c)
		require.Same(t, a, next)
		require.Equal(t, 0, l.CurrentIndex())
	})

	t.Run("removing the last window empties the list", func(t *testing.T) {
		t.Parallel()
		l := listOf(a)
		require.Nil(t, l.Remove(a))
		require.Equal(t, 0, l.Len())
		require.Equal(t, 0, l.CurrentIndex())
	})

	t.Run("non-member is a no-op", func(t *testing.T) {
		t.Parallel()
		l := listOf(a, b)
		require.Nil(t, l.Remove(c))
		require.Equal(t, 2, l.Len())
	})

	t.Run("remove then re-add restores length, not position", func(t *testing.T) {
		t.Parallel()
		l := listOf(a, b, c)
		l.Remove(a)
		l.Add(a, 0, PositionNone)
		require.Equal(t, 3, l.Len())
		require.Same(t, a, l.Current())
	})
}

func TestClientListFocusTraversal(t *testing.T) {
	t.Parallel()

	a, b, c := newStubWindow("a"), newStubWindow("b"), newStubWindow("c")
	l := listOf(a, b, c)

	next, err := l.FocusNext(a)
	require.NoError(t, err)
	require.Same(t, b, next)

	prev, err := l.FocusPrevious(b)
	require.NoError(t, err)
	require.Same(t, a, prev)

	// Boundary signals are nil results, never errors.
	next, err = l.FocusNext(c)
	require.NoError(t, err)
	require.Nil(t, next)

	prev, err = l.FocusPrevious(a)
	require.NoError(t, err)
	require.Nil(t, prev)

	// Non-members fail explicitly.
	_, err = l.FocusNext(newStubWindow("ghost"))
	require.ErrorIs(t, err, ErrClientNotFound)
	_, err = l.FocusPrevious(newStubWindow("ghost"))
	require.ErrorIs(t, err, ErrClientNotFound)
}

func TestClientListFocusNextPreviousInverse(t *testing.T) {
	t.Parallel()

	a, b, c, d := newStubWindow("a"), newStubWindow("b"), newStubWindow("c"), newStubWindow("d")
	l := listOf(a, b, c, d)

	for _, w := range []Window{b, c} {
		next, err := l.FocusNext(w)
		require.NoError(t, err)
		back, err := l.FocusPrevious(next)
		require.NoError(t, err)
		require.Same(t, w, back)

		prev, err := l.FocusPrevious(w)
		require.NoError(t, err)
		fwd, err := l.FocusNext(prev)
		require.NoError(t, err)
		require.Same(t, w, fwd)
	}
}

func TestClientListSetCurrentIndexWraps(t *testing.T) {
	t.Parallel()

	a, b, c := newStubWindow("a"), newStubWindow("b"), newStubWindow("c")
	l := listOf(a, b, c)

	for _, x := range []int{-7, -3, -1, 0, 1, 2, 3, 5, 42} {
		l.SetCurrentIndex(x)
		require.GreaterOrEqual(t, l.CurrentIndex(), 0, "x=%d", x)
		require.Less(t, l.CurrentIndex(), l.Len(), "x=%d", x)
	}

	// Wrapping, not clamping: one step back from the head lands on the tail.
	l.SetCurrentIndex(-1)
	require.Equal(t, 2, l.CurrentIndex())
	l.SetCurrentIndex(3)
	require.Equal(t, 0, l.CurrentIndex())

	empty := NewClientList()
	empty.SetCurrentIndex(9)
	require.Equal(t, 0, empty.CurrentIndex())
}

func TestClientListRotate(t *testing.T) {
	t.Parallel()

	t.Run("rotate up keeps the current window current", func(t *testing.T) {
		t.Parallel()
		a, b, c := newStubWindow("a"), newStubWindow("b"), newStubWindow("c")
		l := listOf(a, b, c)
		require.NoError(t, l.SetCurrent(c))

		l.RotateUp(true)
		require.Equal(t, []string{"b", "c", "a"}, names(l.Clients()))
		require.Equal(t, 1, l.CurrentIndex())
		require.Same(t, c, l.Current())
	})

	t.Run("rotate up at the head wraps the cursor", func(t *testing.T) {
		t.Parallel()
		a, b, c := newStubWindow("a"), newStubWindow("b"), newStubWindow("c")
		l := listOf(a, b, c)

		l.RotateUp(true)
		require.Equal(t, []string{"b", "c", "a"}, names(l.Clients()))
		require.Same(t, a, l.Current())
	})

	t.Run("rotate round trip restores order and current", func(t *testing.T) {
		t.Parallel()
		a, b, c := newStubWindow("a"), newStubWindow("b"), newStubWindow("c")
		l := listOf(a, b, c)
		require.NoError(t, l.SetCurrent(b))

		l.RotateUp(true)
		l.RotateDown(true)
		require.Equal(t, []string{"a", "b", "c"}, names(l.Clients()))
		require.Same(t, b, l.Current())
	})

	t.Run("no-op for short lists", func(t *testing.T) {
		t.Parallel()
		a := newStubWindow("a")
		l := listOf(a)
		l.RotateUp(true)
		l.RotateDown(true)
		require.Equal(t, []string{"a"}, names(l.Clients()))
	})

	t.Run("without maintain the cursor points at a new window", func(t *testing.T) {
		t.Parallel()
		a, b, c := newStubWindow("a"), newStubWindow("b"), newStubWindow("c")
		l := listOf(a, b, c)
		l.RotateUp(false)
		require.Equal(t, []string{"b", "c", "a"}, names(l.Clients()))
		require.Same(t, b, l.Current())
	})
}

func TestClientListSwap(t *testing.T) {
	t.Parallel()

	a, b, c := newStubWindow("a"), newStubWindow("b"), newStubWindow("c")

	t.Run("focus follows the first window", func(t *testing.T) {
		t.Parallel()
		l := listOf(a, b, c)
		require.NoError(t, l.Swap(a, c, 1))
		require.Equal(t, []string{"c", "b", "a"}, names(l.Clients()))
		// focus=1: cursor on a's new position.
		require.Same(t, a, l.Current())
	})

	t.Run("focus follows the second window", func(t *testing.T) {
		t.Parallel()
		l := listOf(a, b, c)
		require.NoError(t, l.Swap(a, c, 2))
		require.Same(t, c, l.Current())
	})

	t.Run("focus 0 leaves the index-based cursor alone", func(t *testing.T) {
		t.Parallel()
		l := listOf(a, b, c)
		require.NoError(t, l.SetCurrent(a))
		require.NoError(t, l.Swap(a, c, 0))
		// Index 0 now names c; the cursor tracks the index, not the window.
		require.Equal(t, 0, l.CurrentIndex())
		require.Same(t, c, l.Current())
	})

	t.Run("non-member fails", func(t *testing.T) {
		t.Parallel()
		l := listOf(a, b)
		require.ErrorIs(t, l.Swap(a, c, 1), ErrClientNotFound)
	})
}

func TestClientListShuffle(t *testing.T) {
	t.Parallel()

	a, b, c := newStubWindow("a"), newStubWindow("b"), newStubWindow("c")

	t.Run("shuffle up moves the current window toward the head", func(t *testing.T) {
		t.Parallel()
		l := listOf(a, b, c)
		require.NoError(t, l.SetCurrent(b))
		l.ShuffleUp(true)
		require.Equal(t, []string{"b", "a", "c"}, names(l.Clients()))
		require.Same(t, b, l.Current())
	})

	t.Run("shuffle down moves it toward the tail", func(t *testing.T) {
		t.Parallel()
		l := listOf(a, b, c)
		require.NoError(t, l.SetCurrent(b))
		l.ShuffleDown(true)
		require.Equal(t, []string{"a", "c", "b"}, names(l.Clients()))
		require.Same(t, b, l.Current())
	})

	t.Run("boundaries are no-ops", func(t *testing.T) {
		t.Parallel()
		l := listOf(a, b, c)
		l.ShuffleUp(true)
		require.Equal(t, []string{"a", "b", "c"}, names(l.Clients()))
		require.NoError(t, l.SetCurrent(c))
		l.ShuffleDown(true)
		require.Equal(t, []string{"a", "b", "c"}, names(l.Clients()))
	})
}

func TestClientListJoin(t *testing.T) {
	t.Parallel()

	a, b, c := newStubWindow("a"), newStubWindow("b"), newStubWindow("c")
	x, y := newStubWindow("x"), newStubWindow("y")

	t.Run("splices as a contiguous block at the cursor", func(t *testing.T) {
		t.Parallel()
		l := listOf(a, b, c)
		require.NoError(t, l.SetCurrent(b))
		other := listOf(x, y)

		l.Join(other, 0)
		require.Equal(t, []string{"a", "x", "y", "b", "c"}, names(l.Clients()))
		// other is read, never mutated.
		require.Equal(t, []string{"x", "y"}, names(other.Clients()))
	})

	t.Run("appends past the end", func(t *testing.T) {
		t.Parallel()
		l := listOf(a, b)
		require.NoError(t, l.SetCurrent(b))
		l.Join(listOf(x, y), 5)
		require.Equal(t, []string{"a", "b", "x", "y"}, names(l.Clients()))
	})

	t.Run("joining an empty list is a no-op", func(t *testing.T) {
		t.Parallel()
		l := listOf(a)
		l.Join(NewClientList(), 0)
		require.Equal(t, []string{"a"}, names(l.Clients()))
	})
}

func TestClientListAccessors(t *testing.T) {
	t.Parallel()

	a, b, c := newStubWindow("a"), newStubWindow("b"), newStubWindow("c")
	l := listOf(a, b, c)

	require.Same(t, b, l.At(1))
	require.Nil(t, l.At(-1))
	require.Nil(t, l.At(3))

	require.Equal(t, []string{"b", "c"}, names(l.Range(1, 3)))
	require.Empty(t, l.Range(2, 1))
	require.Equal(t, []string{"a", "b", "c"}, names(l.Range(-4, 99)))

	i, err := l.IndexOf(c)
	require.NoError(t, err)
	require.Equal(t, 2, i)
	_, err = l.IndexOf(newStubWindow("ghost"))
	require.ErrorIs(t, err, ErrClientNotFound)

	require.ErrorIs(t, l.SetCurrent(newStubWindow("ghost")), ErrClientNotFound)
	require.True(t, l.Contains(a))
	require.False(t, l.Contains(newStubWindow("ghost")))
}

func TestClientListInfo(t *testing.T) {
	t.Parallel()

	a, b := newStubWindow("a"), newStubWindow("b")
	l := listOf(a, b)
	require.NoError(t, l.SetCurrent(b))

	info := l.Info()
	require.Equal(t, []string{"a", "b"}, info["clients"])
	require.Equal(t, 1, info["current"])
}
