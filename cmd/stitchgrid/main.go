// Command stitchgrid converts images into stitchable color grids and walks
// through them run by run.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/setanarut/stitchgrid"
	"github.com/setanarut/stitchgrid/utils"
)

func usage() {
	fmt.Fprintf(os.Stderr, `usage: %s <command> [flags]

commands:
  convert  -in image -out grid.json [-png preview.png] [-cols n] [-rows n] [-colors k] [-method m] [-config file.yaml]
  render   -in grid.json -out image.png [-cell px] [-export] [-step n]
  guide    -in grid.json
  stats    -in grid.json
`, os.Args[0])
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	var err error
	switch os.Args[1] {
	case "convert":
		err = runConvert(os.Args[2:])
	case "render":
		err = runRender(os.Args[2:])
	case "guide":
		err = runGuide(os.Args[2:], os.Stdin, os.Stdout)
	case "stats":
		err = runStats(os.Args[2:], os.Stdout)
	default:
		usage()
	}
	if err != nil {
		slog.Error(os.Args[1], "error", err)
		os.Exit(1)
	}
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	stitchgrid.SetLogger(logger)
}

func runConvert(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	var (
		in       = fs.String("in", "", "source image (png, jpeg, gif)")
		out      = fs.String("out", "grid.json", "grid document to write")
		pngOut   = fs.String("png", "", "optional export image with legend")
		cols     = fs.Int("cols", 0, "grid columns (2-200)")
		rows     = fs.Int("rows", 0, "grid rows (2-200, 0 = keep aspect ratio)")
		colors   = fs.Int("colors", 0, "palette size (2-24)")
		method   = fs.String("method", "", "palette method: binned, kmeans, dominant, mediancut")
		config   = fs.String("config", "", "YAML options file")
		sorted   = fs.Bool("sort", false, "order palette from darkest to brightest")
		logLevel = fs.String("log-level", "info", "debug, info, warn or error")
	)
	fs.Parse(args)
	setupLogging(*logLevel)

	if *in == "" {
		return fmt.Errorf("missing -in image")
	}
	img, err := utils.ReadImage(*in)
	if err != nil {
		return err
	}

	opts := stitchgrid.OptionsFromSize(img.Bounds().Size())
	opts.Rows = 0
	if *config != "" {
		if opts, err = stitchgrid.LoadOptionsFile(*config); err != nil {
			return err
		}
	}
	if *cols > 0 {
		opts.Cols = *cols
	}
	if *rows > 0 {
		opts.Rows = *rows
	}
	if *colors > 0 {
		opts.Colors = *colors
	}
	if *method != "" {
		m, err := stitchgrid.ParseMethod(*method)
		if err != nil {
			return err
		}
		opts.Method = m
	}

	q, err := stitchgrid.Convert(img, opts)
	if err != nil {
		return err
	}
	if *sorted {
		q = utils.SortByBrightness(q)
	}
	if err := utils.WriteResultFile(q, *out); err != nil {
		return err
	}
	slog.Info("wrote grid", "path", *out, "cols", q.Cols, "rows", q.Rows, "colors", len(q.Palette))

	if *pngOut != "" {
		cell := opts.Clamp().CellSize
		if err := utils.SaveImage(utils.RenderExport(q, cell), *pngOut); err != nil {
			return err
		}
		slog.Info("wrote export image", "path", *pngOut)
	}
	return nil
}

func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	var (
		in       = fs.String("in", "", "grid document")
		out      = fs.String("out", "grid.png", "image to write")
		cell     = fs.Int("cell", 16, "cell size in pixels")
		export   = fs.Bool("export", false, "include grid lines and palette legend")
		step     = fs.Int("step", 0, "render the guide at this 1-based step")
		logLevel = fs.String("log-level", "info", "debug, info, warn or error")
	)
	fs.Parse(args)
	setupLogging(*logLevel)

	q, err := utils.ReadResultFile(*in)
	if err != nil {
		return err
	}

	var img = utils.RenderGrid(q, *cell, false)
	switch {
	case *step > 0:
		g := stitchgrid.NewGuide(q)
		for i := 1; i < *step; i++ {
			g.Advance()
		}
		img = utils.RenderGuide(q, g.Runs(), g.Step(), *cell)
	case *export:
		img = utils.RenderExport(q, *cell)
	}
	return utils.SaveImage(img, *out)
}

func runStats(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	in := fs.String("in", "", "grid document")
	fs.Parse(args)

	q, err := utils.ReadResultFile(*in)
	if err != nil {
		return err
	}
	s := stitchgrid.Summarize(q)
	fmt.Fprintf(w, "%dx%d grid, %d cells, %d runs, %d of %d colors used, mean run %.2f\n",
		q.Cols, q.Rows, s.Cells, s.Runs, s.ColorsUsed, len(q.Palette), s.MeanRunLength)
	for _, u := range s.Usage {
		fmt.Fprintf(w, "%3d  %s  %6d cells  %5d runs  %5.1f%%\n", u.Index+1, u.Color.Hex, u.Cells, u.Runs, u.Share)
	}
	return nil
}

func runGuide(args []string, in io.Reader, out io.Writer) error {
	fs := flag.NewFlagSet("guide", flag.ExitOnError)
	path := fs.String("in", "", "grid document")
	fs.Parse(args)

	q, err := utils.ReadResultFile(*path)
	if err != nil {
		return err
	}
	g := stitchgrid.NewGuide(q)
	interact(g, in, out)
	return nil
}

// interact reads one command per line: enter/n advance, b back, u undo,
// r reset, q quit.
func interact(g *stitchgrid.Guide, in io.Reader, out io.Writer) {
	printStep(g, out)
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		switch strings.ToLower(strings.TrimSpace(sc.Text())) {
		case "", "n", "next":
			g.Advance()
		case "b", "back":
			g.Back()
		case "u", "undo":
			g.Undo()
		case "r", "reset":
			g.Reset()
		case "q", "quit":
			return
		default:
			fmt.Fprintln(out, "commands: n(ext) b(ack) u(ndo) r(eset) q(uit)")
			continue
		}
		printStep(g, out)
	}
}

func printStep(g *stitchgrid.Guide, out io.Writer) {
	s := g.Step()
	fmt.Fprintf(out, "[%s] %s\n", s, g.Instruction())
	if s.Next != nil {
		fmt.Fprintf(out, "  next: row %d, %d × %s\n", s.Next.Row+1, s.Next.Length, s.NextColor.Hex)
	}
}
