package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell"
	"github.com/gdamore/tcell/views"

	"github.com/borkshop/gridbox/internal/point"
)

var (
	app = &views.Application{}
	hud = &hudT{}

	canvasFlag = flag.String("canvas", "64x24", "logical canvas size, WxH")
	boxFlag    = flag.String("box", "12x6", "initial selection box size, WxH")
	logFlag    = flag.String("log", "", "write a log to this file")
)

func setup() (*boxView, error) {
	csize, err := parseSize(*canvasFlag)
	if err != nil {
		return nil, err
	}
	bsize, err := parseSize(*boxFlag)
	if err != nil {
		return nil, err
	}
	canvas := point.FromPosAndSize(point.Zero, point.FromImage(csize))
	box := point.FromPosAndSize(point.Zero, point.FromImage(bsize))
	if !box.Fits(canvas) {
		box = box.Clamp(canvas)
	}
	box, err = box.MoveGuarded(canvas.Center().Delta(box.Center()), canvas)
	if err != nil {
		return nil, err
	}
	return newView(canvas, box), nil
}

// reset puts the view's box back where the flags say it starts.
func reset(v *boxView) {
	fresh, err := setup()
	if err != nil {
		v.setStatus("cannot reset: %v", err)
		return
	}
	v.box = fresh.box
	v.setStatus("reset to %v", v.box)
	v.PostEventWidgetContent(v)
}

func main() {
	flag.Parse()
	if err := func() error {
		if *logFlag != "" {
			f, err := os.Create(*logFlag)
			if err != nil {
				return err
			}
			defer f.Close()
			log.SetOutput(f)
		} else {
			log.SetOutput(io.Discard)
		}

		view, err := setup()
		if err != nil {
			return err
		}
		hud.init(view)
		hud.keybar.addAction('Q', "Quit", app.Quit)
		hud.keybar.addAction('R', "Reset", func() { reset(hud.view) })
		app.SetRootWidget(hud)

		scr, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		app.SetScreen(scr)
		app.PostFunc(scr.EnableMouse)
		return app.Run()
	}(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalln(err)
	}
}
