//go:build !linux && !windows
// +build !linux,!windows

package main

import (
	"fmt"

	"github.com/gregjohnson2017/glsu/pkg/window"
)

func openFileDialog(_ *window.Window) (string, error) {
	return "", fmt.Errorf("no file dialog on this platform, pass a path to -open")
}
