// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Default chart size, matching a typical interactive plot window.
const (
	DefaultWidth  = 8 * vg.Inch
	DefaultHeight = 6 * vg.Inch
)

// DPI is the resolution of PNG output.
const DPI = 100

// Render draws p with the given size and writes it to out in format,
// which is one of the formats accepted by plot.Plot.WriterTo
// ("png", "svg", "pdf", "eps", "jpg", "tif"). PNG output has a white
// background.
func Render(out io.Writer, p *plot.Plot, w, h vg.Length, format string) error {
	var wt io.WriterTo
	if format == "png" {
		c := vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(DPI), vgimg.UseBackgroundColor(color.White))}
		p.Draw(draw.New(c))
		wt = c
	} else {
		var err error
		if wt, err = p.WriterTo(w, h, format); err != nil {
			return err
		}
	}
	_, err := wt.WriteTo(out)
	return err
}

// Save draws p and writes it to the file at path. The format is
// chosen by the file's extension.
func Save(p *plot.Plot, path string, w, h vg.Length) (err error) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if format == "" {
		return fmt.Errorf("%s: no file extension to choose an image format", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Render(f, p, w, h, format)
}

// ViewerCommand returns the command that displays the image at path.
// It may be replaced to use a different viewer.
var ViewerCommand = func(ctx context.Context, path string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.CommandContext(ctx, "open", "-W", path)
	case "windows":
		return exec.CommandContext(ctx, "cmd", "/c", "start", "/wait", "", path)
	}
	return exec.CommandContext(ctx, "xdg-open", path)
}

// Show renders p to a temporary PNG file and opens it with
// ViewerCommand, waiting for the viewer to exit or ctx to be done.
// It returns the path of the image, which is left in place so
// viewers that detach can still read it. A viewer stopped because ctx
// was done is not an error.
func Show(ctx context.Context, p *plot.Plot, w, h vg.Length) (string, error) {
	f, err := os.CreateTemp("", "benchplot-*.png")
	if err != nil {
		return "", err
	}
	path := f.Name()
	if err := Render(f, p, w, h, "png"); err != nil {
		f.Close()
		return path, err
	}
	if err := f.Close(); err != nil {
		return path, err
	}

	cmd := ViewerCommand(ctx, path)
	cmd.Stdout, cmd.Stderr = os.Stderr, os.Stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			// Interrupted by the user.
			return path, nil
		}
		return path, fmt.Errorf("displaying %s: %w", path, err)
	}
	return path, nil
}
