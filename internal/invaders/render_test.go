package invaders

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestRenderMenu(t *testing.T) {
	g := newTestGame(t)
	dst := core.NewScreen(40, 20+HUDRows)

	g.Render(dst)

	hud := dst.Row(0)
	assert.Contains(t, hud, "Score: 0")
	assert.Contains(t, hud, "High: 0")
	assert.Contains(t, hud, "Ships: 3")

	assert.Contains(t, dst.Row(10), "Play")
	assert.Equal(t, '┌', dst.Get(13, 9))
	assert.Equal(t, core.ColorRed, dst.GetCell(13, 9).Color)

	ship := dst.Row(20)
	assert.Equal(t, 5, strings.Count(ship, string(ShipChar)))
	assert.NotContains(t, dst.String(), string(AlienChar))
}

func TestRenderActive(t *testing.T) {
	g := newTestGame(t)
	startGame(t, g)
	g.Step(frame(core.Event{Action: core.ActionFire}))
	dst := core.NewScreen(40, 20+HUDRows)

	g.Render(dst)

	assert.NotContains(t, dst.String(), "Play")
	assert.Equal(t, AlienChar, dst.Get(3, 2))
	assert.Equal(t, core.ColorGreen, dst.GetCell(3, 2).Color)
	assert.Equal(t, 6*3, strings.Count(dst.Row(2), string(AlienChar)))
	assert.Contains(t, dst.Row(19), string(ProjectileChar))
}

func TestRenderShipLostBanner(t *testing.T) {
	g := newTestGame(t)
	startGame(t, g)
	g.fleet.Aliens = []*Alien{{X: 2, Y: 19, W: 3, H: 1}}
	g.Step(frame())

	dst := core.NewScreen(40, 20+HUDRows)
	g.Render(dst)

	assert.Contains(t, dst.Row(HUDRows+10), "Ship lost")
	assert.Contains(t, dst.Row(0), "Ships: 2")
}
