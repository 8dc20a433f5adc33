package main

import (
	"fmt"

	"github.com/kroppt/winfileask"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/gregjohnson2017/glsu/pkg/window"
)

func openFileDialog(w *window.Window) (string, error) {
	win := w.SDLWindow()
	if win == nil {
		return "", fmt.Errorf("file dialog needs the sdl backend")
	}
	var wm *sdl.SysWMInfo
	var err error
	if wm, err = win.GetWMInfo(); err != nil {
		return "", err
	}
	info := wm.GetWindowsInfo()
	filter := winfileask.FileFilter{winfileask.Filter{}}
	str, ok, err := winfileask.GetOpenFileName(info.Window, "Open an Image", filter, "")
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errNoFile
	}
	return str, nil
}
