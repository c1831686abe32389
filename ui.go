package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"
	"strconv"

	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/component"
	"gioui.org/x/explorer"
	"git.sr.ht/~gioverse/skel/stream"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"git.sr.ht/~whereswaldon/chartview/backend"
	"git.sr.ht/~whereswaldon/chartview/chart"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

var pauseIcon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.AVPause)
	return icon
}()

var playIcon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.AVPlayArrow)
	return icon
}()

var clearIcon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.ContentClear)
	return icon
}()

var openIcon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.FileFolderOpen)
	return icon
}()

var errorColor = color.NRGBA{R: 150, A: 255}

// margin field indices, in validation order.
const (
	marginLeft = iota
	marginTop
	marginRight
	marginBottom
	numMargins
)

var marginNames = [numMargins]string{"left", "top", "right", "bottom"}

// UI is responsible for holding the state of and drawing the top-level UI.
type UI struct {
	ws   backend.WindowState
	th   *material.Theme
	expl *explorer.Explorer

	chart      *Chart
	dataStream *stream.Stream[backend.Snapshot]
	snapshot   backend.Snapshot
	appliedSeq uint64

	settingsStream *stream.Stream[backend.Reload]
	reload         backend.Reload
	appliedReload  uint64
	settingsErr    string

	margins  [numMargins]component.TextField
	applyBtn widget.Clickable
	pauseBtn widget.Clickable
	clearBtn widget.Clickable
	openBtn  widget.Clickable
	dataErr  string
}

func NewUI(ws backend.WindowState, expl *explorer.Explorer, c *Chart) *UI {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()), text.NoSystemFonts())
	ui := &UI{
		ws:             ws,
		th:             th,
		expl:           expl,
		chart:          c,
		dataStream:     stream.New(ws.Controller, ws.Bundle.Feed.Stream),
		settingsStream: stream.New(ws.Controller, ws.Bundle.Settings.Stream),
	}
	for i := range ui.margins {
		ui.margins[i].SingleLine = true
	}
	ui.resetMarginFields()
	return ui
}

// resetMarginFields shows the chart's current margins in the editors.
func (ui *UI) resetMarginFields() {
	m := ui.chart.View().Margins()
	for i, v := range [numMargins]float32{m.Left, m.Top, m.Right, m.Bottom} {
		ui.margins[i].SetText(strconv.FormatFloat(float64(v), 'g', -1, 32))
		ui.margins[i].ClearError()
	}
}

// applyMargins parses the margin editors and hands the result to the
// chart, flagging the offending editor if anything is rejected.
func (ui *UI) applyMargins() {
	var values [numMargins]float32
	ok := true
	for i := range ui.margins {
		ui.margins[i].ClearError()
		v, err := strconv.ParseFloat(ui.margins[i].Text(), 32)
		if err != nil {
			ui.margins[i].SetError("not a number")
			ok = false
			continue
		}
		values[i] = float32(v)
	}
	if !ok {
		return
	}
	err := ui.chart.SetMargins(chart.Margins{
		Left:   values[marginLeft],
		Top:    values[marginTop],
		Right:  values[marginRight],
		Bottom: values[marginBottom],
	})
	ui.flagMarginError(err)
}

// flagMarginError shows a rejected margin on its editor.
func (ui *UI) flagMarginError(err error) {
	var verr *chart.ValidationError
	if !errors.As(err, &verr) {
		return
	}
	for i, name := range marginNames {
		if name == verr.Field {
			ui.margins[i].SetError(verr.Error())
		}
	}
}

// applyReload puts reloaded chart settings into effect. Feed settings
// only take effect at start-up.
func (ui *UI) applyReload() {
	if ui.reload.Seq == ui.appliedReload {
		return
	}
	ui.appliedReload = ui.reload.Seq
	if ui.reload.Err != nil {
		ui.settingsErr = ui.reload.Err.Error()
		ui.flagMarginError(ui.reload.Err)
		return
	}
	ui.settingsErr = ""
	s := ui.reload.Settings
	if err := ui.chart.SetMargins(s.Margins); err != nil {
		ui.settingsErr = err.Error()
		ui.flagMarginError(err)
		return
	}
	ui.chart.View().Debounce = s.Debounce
	ui.resetMarginFields()
}

// applySnapshot plots the newest window of samples from the feed.
func (ui *UI) applySnapshot() {
	if ui.snapshot.Seq == ui.appliedSeq {
		return
	}
	ui.appliedSeq = ui.snapshot.Seq
	err := ui.chart.SetPlotData(ui.snapshot.Xs, ui.snapshot.Ys)
	switch {
	case errors.Is(err, chart.ErrEmptyInput):
		ui.chart.Clear()
		ui.dataErr = ""
	case err != nil:
		ui.dataErr = err.Error()
	default:
		ui.dataErr = ""
	}
}

// Update the state of the UI from user input and the feed.
func (ui *UI) Update(gtx C) {
	ui.dataStream.ReadInto(gtx, &ui.snapshot, backend.Snapshot{})
	ui.applySnapshot()
	ui.settingsStream.ReadInto(gtx, &ui.reload, backend.Reload{})
	ui.applyReload()
	feed := ui.ws.Bundle.Feed
	if ui.pauseBtn.Clicked(gtx) {
		feed.SetPaused(!feed.Paused())
	}
	if ui.clearBtn.Clicked(gtx) {
		feed.Reset()
		ui.chart.Clear()
	}
	if ui.applyBtn.Clicked(gtx) {
		ui.applyMargins()
	}
	if ui.openBtn.Clicked(gtx) {
		go func() {
			if err := ui.ws.Bundle.Settings.LoadFromFile(ui.expl); err != nil {
				log.Printf("failed loading settings: %v", err)
			}
		}()
	}
}

func (ui *UI) layoutControls(gtx C) D {
	icon, description := pauseIcon, "Pause"
	if ui.ws.Bundle.Feed.Paused() {
		icon, description = playIcon, "Resume"
	}
	button := func(btn *widget.Clickable, icon *widget.Icon, description string) layout.FlexChild {
		return layout.Rigid(func(gtx C) D {
			b := material.IconButton(ui.th, btn, icon, description)
			b.Inset = layout.UniformInset(6)
			b.Size = unit.Dp(20)
			return layout.UniformInset(4).Layout(gtx, b.Layout)
		})
	}
	children := []layout.FlexChild{
		button(&ui.pauseBtn, icon, description),
		button(&ui.clearBtn, clearIcon, "Clear"),
		button(&ui.openBtn, openIcon, "Open settings"),
	}
	for i := range ui.margins {
		i := i
		children = append(children, layout.Flexed(1, func(gtx C) D {
			return layout.UniformInset(4).Layout(gtx, func(gtx C) D {
				return ui.margins[i].Layout(gtx, ui.th, marginNames[i]+" margin")
			})
		}))
	}
	children = append(children, layout.Rigid(func(gtx C) D {
		return layout.UniformInset(4).Layout(gtx, material.Button(ui.th, &ui.applyBtn, "Apply").Layout)
	}))
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx, children...)
}

func (ui *UI) layoutStatus(gtx C) D {
	feed := ui.ws.Bundle.Feed
	state := "live"
	if feed.Paused() {
		state = "paused"
	}
	status := fmt.Sprintf("%s wave, %s, %d samples, chart %s",
		feed.Waveform(), state, ui.chart.View().Data().Len(), ui.chart.View().State())
	return layout.UniformInset(4).Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(material.Body2(ui.th, status).Layout),
			layout.Rigid(func(gtx C) D {
				return ui.layoutError(gtx, ui.dataErr)
			}),
			layout.Rigid(func(gtx C) D {
				return ui.layoutError(gtx, ui.settingsErr)
			}),
		)
	})
}

func (ui *UI) layoutError(gtx C, msg string) D {
	if len(msg) == 0 {
		return D{}
	}
	l := material.Body2(ui.th, msg)
	l.Color = errorColor
	return l.Layout(gtx)
}

// Layout the UI into the provided context.
func (ui *UI) Layout(gtx C) D {
	ui.Update(gtx)
	return layout.Flex{
		Axis: layout.Vertical,
	}.Layout(gtx,
		layout.Rigid(ui.layoutControls),
		layout.Rigid(ui.layoutStatus),
		layout.Flexed(1, func(gtx C) D {
			gtx.Constraints.Min = image.Point{}
			return ui.chart.Layout(gtx, ui.th)
		}),
	)
}
