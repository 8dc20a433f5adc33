package main

import (
	"github.com/jcmuller/gozenity"

	"github.com/gregjohnson2017/glsu/pkg/window"
)

func openFileDialog(_ *window.Window) (string, error) {
	files, err := gozenity.FileSelection("Choose a picture to open", nil)
	if err != nil {
		return "", err
	}
	if len(files) == 0 || files[0] == "" {
		return "", errNoFile
	}
	return files[0], nil
}
