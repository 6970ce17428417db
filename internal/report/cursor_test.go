package report

import (
	"testing"

	"github.com/m-mizutani/gt"
)

func TestCursorEnsureSpaceWithinPage(t *testing.T) {
	s := NewSurface(A4())
	c := NewCursor(s)
	gt.Equal(t, c.Page(), 1)
	gt.Equal(t, c.Y(), A4().ContentTop())

	c.Advance(50)
	for i := 0; i < 5; i++ {
		gt.False(t, c.EnsureSpace(20))
		gt.Equal(t, c.Page(), 1)
	}
	gt.Equal(t, s.PageCount(), 1)
}

func TestCursorBreaksAtBottomMargin(t *testing.T) {
	cfg := A4()
	s := NewSurface(cfg)
	c := NewCursor(s)

	var broke []int
	c.OnBreak = func(page int) { broke = append(broke, page) }

	c.Advance(cfg.ContentBottom() - cfg.ContentTop() - 3)
	gt.False(t, c.EnsureSpace(3))
	gt.True(t, c.EnsureSpace(3.5))

	gt.Equal(t, c.Page(), 2)
	gt.Equal(t, c.Y(), cfg.ContentTop())
	gt.Equal(t, s.PageCount(), 2)
	gt.Equal(t, broke, []int{2})
}

func TestCursorOversizedBlockStaysOnFreshPage(t *testing.T) {
	cfg := A4()
	s := NewSurface(cfg)
	c := NewCursor(s)

	gt.False(t, c.EnsureSpace(cfg.Height*2))
	gt.Equal(t, c.Page(), 1)

	c.Advance(10)
	gt.True(t, c.EnsureSpace(cfg.Height*2))
	gt.False(t, c.EnsureSpace(cfg.Height*2))
	gt.Equal(t, s.PageCount(), 2)
}

func TestCursorRemaining(t *testing.T) {
	cfg := A4()
	c := NewCursor(NewSurface(cfg))
	c.Advance(100)
	gt.Equal(t, c.Remaining(), cfg.ContentBottom()-cfg.ContentTop()-100)
}
