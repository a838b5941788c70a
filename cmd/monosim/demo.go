// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"

	"golang.org/x/exp/shiny/materialdesign/icons"

	"monoui.org/app"
	"monoui.org/f64"
	"monoui.org/layout"
	"monoui.org/nav"
	"monoui.org/paint"
	"monoui.org/view"
	"monoui.org/widget"
)

// demo is the application shown by the simulator: a settings style
// menu leading to an icon carousel, an about page and an alert.
type demo struct {
	rt   *app.Runtime
	root *nav.BasePage
	menu *widget.ListMenu

	invert   widget.Bool
	speed    widget.Enum
	features *widget.Flags
	contrast widget.Float
}

var tileIcons = []struct {
	label string
	data  []byte
}{
	{"Home", icons.ActionHome},
	{"Settings", icons.ActionSettings},
	{"Alarm", icons.ActionAlarm},
	{"Search", icons.ActionSearch},
	{"Info", icons.ActionInfo},
}

func newDemo(rt *app.Runtime) *demo {
	ctx := rt.Ctx
	d := &demo{
		rt:       rt,
		speed:    widget.Enum{Value: "normal"},
		features: widget.NewFlags(2),
		contrast: widget.Float{Value: 50, Min: 0, Max: 100, Step: 5},
	}
	actions := map[int]func(){}
	items := []*widget.Item{
		widget.Header("monoui"),
		widget.TextItem("Tiles"),
		widget.TextItem("Alert"),
		widget.TextItem("About"),
		widget.Separator(),
		widget.Toggle("Invert", &d.invert, func() {
			d.root.Polarity = paint.Polarity(d.invert.Value)
		}),
		widget.Header("Speed"),
		widget.Radio("Normal", &d.speed, "normal", nil),
		widget.Radio("Fast", &d.speed, "fast", nil),
		widget.Checkbox("Sound", d.features, 0, nil),
		widget.Checkbox("Vibrate", d.features, 1, nil),
		widget.Value("Contrast", &d.contrast, nil),
	}
	items[len(items)-1].Format = func(v float64) string { return fmt.Sprintf("%.0f%%", v) }
	actions[1] = d.showTiles
	actions[2] = func() { d.alert("Hello", "from monoui") }
	actions[3] = d.showAbout

	d.menu = widget.NewListMenu(ctx, ctx.Screen, items...)
	d.menu.Scrollbar = true
	d.menu.OnActivate = func(i int) {
		if f := actions[i]; f != nil {
			f()
		}
	}
	d.root = nav.NewPage(ctx, d.menu)
	d.root.Name = "menu"
	d.root.Enter = d.menu.Enter
	rt.Nav.SetRoot(d.root)
	return d
}

func (d *demo) push(name string, content view.View) *nav.BasePage {
	p := nav.NewPage(d.rt.Ctx, content)
	p.Name = name
	p.Polarity = d.root.Polarity
	p.Back = d.rt.Nav.Pop
	d.rt.Nav.Push(p)
	return p
}

func (d *demo) showTiles() {
	ctx := d.rt.Ctx
	tiles := make([]widget.Tile, 0, len(tileIcons))
	for _, t := range tileIcons {
		ic, err := view.NewIcon(t.data, 24)
		if err != nil {
			ctx.Logger.Error("icon", "label", t.label, "err", err)
			continue
		}
		tiles = append(tiles, widget.Tile{Label: t.label, Icon: ic})
	}
	m := widget.NewTileMenu(ctx, ctx.Screen, tiles...)
	m.OnActivate = func(i int) {
		d.alert(tiles[i].Label, "selected")
	}
	d.push("tiles", m)
}

func (d *demo) showAbout() {
	ctx := d.rt.Ctx
	th := ctx.Theme
	footer := layout.HStack(th.Padding,
		view.NewText(ctx, "Back"),
		layout.NewSpacer(0),
		view.NewText(ctx, "Bksp"),
	)
	footer.SetSize(f64.Sz(ctx.Screen.Width-2*th.Padding, 0))
	title := layout.ZStack(layout.Center,
		view.NewRect(ctx.Screen.Width/2, th.LineHeight+2*th.Padding, th.Radius, false),
		view.NewText(ctx, "monoui"),
	)
	content := layout.VStack(th.Padding,
		title,
		layout.Either(d.invert.Value,
			view.NewText(ctx, "inverted"),
			view.NewText(ctx, fmt.Sprintf("%gx%g @ %d fps", ctx.Screen.Width, ctx.Screen.Height, th.FPS)),
		),
		layout.NewSpacer(0),
		footer,
	).Align(layout.Middle).Pad(th.Padding)
	content.SetSize(ctx.Screen)
	d.push("about", content)
}

func (d *demo) alert(title, message string) {
	a := widget.NewAlert(d.rt.Ctx, title, message, "OK", "Cancel")
	a.OnChoose = func(i int) {
		d.rt.Ctx.Logger.Debug("alert", "title", title, "choice", i)
	}
	d.rt.Ctx.Present(a)
}
