package cooking

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/cooking-collisions/internal/core"
	"github.com/vovakirdan/cooking-collisions/internal/kitchen"
	"github.com/vovakirdan/cooking-collisions/internal/recipe"
)

// Screen layout, in cells.
const (
	tileW   = 7
	tileH   = 2
	hudH    = 2
	footerH = 3
	panelW  = 22
	mapX    = 1
	mapY    = hudH
)

func (g *Game) minSize() (int, int) {
	w, h := g.layout.Size()
	return mapX + w*tileW + 1 + panelW, hudH + h*tileH + footerH
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.round == nil {
		return
	}

	g.renderHUD(dst)

	if g.tooSmall {
		w, h := g.minSize()
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", w, h))
		return
	}

	g.renderKitchen(dst)
	g.renderPlayer(dst)
	g.renderOrders(dst)
	g.renderFooter(dst)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Time's up!",
			fmt.Sprintf("Score %d  Best %d  R to restart", g.round.board.Score, g.best))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	r := g.round
	var hud string
	if r.tutorial() {
		hud = fmt.Sprintf(" %s | Training: serve the orders on plates | K to skip", g.Title())
	} else {
		hud = fmt.Sprintf(" %s | Score: %d  Time: %.1f  Delivered: %d  Best: %d",
			g.Title(), r.board.Score, max(r.board.Timer, 0), r.board.Delivered, g.best)
	}
	timerColor := core.ColorDefault
	if !r.tutorial() && r.board.Timer < 20 {
		timerColor = core.ColorRed
	}
	dst.DrawTextColored(0, 0, hud, timerColor)

	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// renderKitchen draws every counter unit with what rests on it.
func (g *Game) renderKitchen(dst *core.Screen) {
	for y, row := range g.layout.Rows {
		for x := range []rune(row) {
			sx, sy := mapX+x*tileW, mapY+y*tileH
			i, ok := g.kitchen.UnitAt(kitchen.Point{X: x, Y: y})
			if !ok {
				dst.SetColored(sx+tileW/2, sy+1, '·', core.ColorGray)
				continue
			}
			u, _ := g.kitchen.Unit(i)
			g.renderUnit(dst, u, sx, sy)
		}
	}
}

func (g *Game) renderUnit(dst *core.Screen, u *kitchen.Unit, sx, sy int) {
	frame := core.ColorBrown
	if u.Selected {
		frame = core.ColorYellow
	}

	if u.Edges[kitchen.EdgeTop] {
		dst.FillRect(core.NewRect(sx, sy, tileW, 1), '‾', frame)
	}
	if u.Edges[kitchen.EdgeBottom] {
		dst.FillRect(core.NewRect(sx, sy+1, tileW, 1), '_', frame)
	}
	for dy := range tileH {
		if u.Edges[kitchen.EdgeLeft] || u.Selected {
			dst.SetColored(sx, sy+dy, '│', frame)
		}
		if u.Edges[kitchen.EdgeRight] || u.Selected {
			dst.SetColored(sx+tileW-1, sy+dy, '│', frame)
		}
	}

	label, labelColor := g.unitLabel(u)
	drawCentered(dst, sx+1, sy, tileW-2, label, labelColor)

	content, contentColor := g.stackLabel(u.Placed())
	if content == "" || content == label {
		return
	}
	drawCentered(dst, sx+1, sy+1, tileW-2, content, contentColor)
}

// unitLabel names the station.
func (g *Game) unitLabel(u *kitchen.Unit) (string, core.Color) {
	switch u.Type {
	case kitchen.UnitSource:
		return abbrev(u.Source, tileW-2), core.ColorGreen
	case kitchen.UnitBin:
		return "bin", core.ColorRed
	case kitchen.UnitDelivery:
		return "serve", core.ColorMagenta
	}
	if it, ok := g.kitchen.Item(u.Placed()); ok && it.Kind == kitchen.KindTool {
		return toolLabel(it.Type), core.ColorGray
	}
	return "", core.ColorDefault
}

// stackLabel describes an item and what rests on it in a few cells.
func (g *Game) stackLabel(h kitchen.Handle) (string, core.Color) {
	it, ok := g.kitchen.Item(h)
	if !ok {
		return "", core.ColorDefault
	}
	switch it.Kind {
	case kitchen.KindTool:
		inner, ok := g.kitchen.Item(it.Placed())
		if !ok {
			return toolLabel(it.Type), core.ColorGray
		}
		label := abbrev(inner.Type, 3)
		if it.Type == recipe.InputFry {
			label += fmt.Sprintf("%2.0f", it.Timer)
		}
		return label, stateColor(inner.State)
	case kitchen.KindPlate:
		inner, ok := g.kitchen.Item(it.Placed())
		if !ok {
			return "plate", core.ColorWhite
		}
		return "P:" + abbrev(inner.Type, 3), stateColor(inner.State)
	default:
		return abbrev(it.Type, tileW-2), stateColor(it.State)
	}
}

func (g *Game) renderPlayer(dst *core.Screen) {
	p := g.player
	sx, sy := mapX+p.pos.X*tileW, mapY+p.pos.Y*tileH
	dst.SetColored(sx+tileW/2-1, sy, '@', core.ColorBlue)
	dst.SetColored(sx+tileW/2, sy, p.facing.arrow(), core.ColorBlue)
	if held, ok := p.heldItem(g.kitchen); ok {
		label, color := g.stackLabel(p.held)
		if held.Kind == kitchen.KindIngredient {
			label = abbrev(held.Type, tileW-2)
		}
		drawCentered(dst, sx, sy+1, tileW, label, color)
	}
}

// renderOrders draws the order list to the right of the kitchen.
func (g *Game) renderOrders(dst *core.Screen) {
	w, _ := g.layout.Size()
	px := mapX + w*tileW + 1
	dst.DrawTextColored(px, mapY, "Orders", core.ColorWhite)

	y := mapY + 1
	orders := g.round.orders.Orders()
	if len(orders) == 0 {
		dst.DrawTextColored(px, y, "(none yet)", core.ColorGray)
	}
	for _, o := range orders {
		dst.DrawText(px, y, truncate(fmt.Sprintf("%d %s", o.Index+1, o.Dish), panelW))

		barW := panelW - 6
		filled := int(float64(barW)*(1-o.Progress()) + 0.5)
		color := core.ColorGreen
		switch {
		case o.Progress() > 0.75:
			color = core.ColorRed
		case o.Progress() > 0.5:
			color = core.ColorYellow
		}
		bar := strings.Repeat("█", filled) + strings.Repeat("░", barW-filled)
		dst.DrawTextColored(px+2, y+1, bar, color)
		dst.DrawText(px+2+barW+1, y+1, fmt.Sprintf("%2.0fs", max(o.Remaining, 0)))
		y += 2
	}
}

// renderFooter shows what the player holds and faces, and the key help.
func (g *Game) renderFooter(dst *core.Screen) {
	_, h := g.layout.Size()
	y := mapY + h*tileH

	holding := "nothing"
	if held, ok := g.player.heldItem(g.kitchen); ok {
		holding = describe(g.kitchen, held)
	}
	facing := "floor"
	if i, ok := g.kitchen.Selected(); ok {
		u, _ := g.kitchen.Unit(i)
		facing = string(u.Type)
		if u.Type == kitchen.UnitSource {
			facing = u.Source + " source"
		}
		if it, ok := g.kitchen.Item(u.Placed()); ok {
			facing += ": " + describe(g.kitchen, it)
		}
	}
	dst.DrawText(1, y, truncate("Holding: "+holding, dst.Width()-2))
	dst.DrawText(1, y+1, truncate("Facing:  "+facing, dst.Width()-2))
	dst.DrawTextColored(1, y+2,
		"WASD/arrows move  E use  Shift+E lift off plate  F chop  P pause  Q quit", core.ColorGray)
}

// describe spells out an item and its contents.
func describe(k *kitchen.Kitchen, it kitchen.Item) string {
	s := it.Type
	if it.Kind == kitchen.KindIngredient && it.State != kitchen.StateDefault {
		s += " (" + it.State + ")"
	}
	var inner []string
	for _, h := range it.Slots {
		if child, ok := k.Item(h); ok {
			inner = append(inner, describe(k, child))
		}
	}
	if len(inner) > 0 {
		s += " with " + strings.Join(inner, " + ")
	}
	if it.Type == recipe.InputFry && len(inner) > 0 {
		s += fmt.Sprintf(" %.1fs", it.Timer)
	}
	return s
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

func drawCentered(dst *core.Screen, x, y, width int, text string, c core.Color) {
	text = truncate(text, width)
	dst.DrawTextColored(x+(width-len([]rune(text)))/2, y, text, c)
}

// abbrev shortens a type name: single words are cut to n runes, longer
// names become their initials.
func abbrev(name string, n int) string {
	words := strings.Fields(name)
	if len(words) <= 1 {
		return truncate(name, n)
	}
	var b strings.Builder
	for _, w := range words {
		b.WriteString(strings.ToUpper(string([]rune(w)[0])))
	}
	return truncate(b.String(), n)
}

func toolLabel(typ string) string {
	switch typ {
	case recipe.InputChop:
		return "board"
	case recipe.InputFry:
		return "pan"
	case recipe.InputBoil:
		return "pot"
	default:
		return abbrev(typ, tileW-2)
	}
}

func stateColor(state string) core.Color {
	switch state {
	case kitchen.StateChopped:
		return core.ColorCyan
	case kitchen.StateCooked:
		return core.ColorOrange
	case kitchen.StateBurnt:
		return core.ColorRed
	default:
		return core.ColorWhite
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
