package main

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/alecthomas/kong"
	pb "github.com/cheggaaa/pb/v3"
	ansi "github.com/gookit/color"
	"github.com/joshdk/preview"
	"github.com/lucasb-eyer/go-colorful"
	log "github.com/sirupsen/logrus"

	"github.com/submersibletoaster/pixelgrid"
)

const desc = `Generates step by step pixel art build diagrams.`

// showImage opens an image in an external viewer.
var showImage = preview.Image

type cliArgs struct {
	Verbose bool `short:"v" help:"Verbose logging."`

	Generate generateCmd `cmd:"" help:"Write one diagram for every step after the background."`
	Digits   digitsCmd   `cmd:"" help:"Render the glyphs of a digit font to check it."`
}

type generateCmd struct {
	Files  []string `arg:"" name:"files" help:"Step images in build order, background first, followed by the digit font (name-WxH.png)."`
	Output string   `short:"o" default:"output.png" help:"Output name; diagrams are written as <stem>-<n><ext> beside it."`

	Scale     int    `default:"10" help:"Upscale factor for every step."`
	Cell      int    `default:"50" help:"Touched cell size, in scaled pixels."`
	Grid      int    `default:"10" help:"Reference grid pitch, in scaled pixels."`
	GridColor string `default:"#000000" help:"Reference grid colour."`
	GridAlpha uint8  `default:"50" help:"Reference grid opacity."`

	Preview bool `help:"Open each diagram in an external image viewer once written."`
}

func (c *generateCmd) options() (pixelgrid.Options, error) {
	opt := pixelgrid.DefaultOptions()
	opt.Scale = c.Scale
	opt.CellSize = c.Cell
	opt.GridPitch = c.Grid

	col, err := colorful.Hex(c.GridColor)
	if err != nil {
		return opt, fmt.Errorf("bad grid colour %q: %w", c.GridColor, err)
	}
	r, g, b := col.RGB255()
	opt.GridColor = color.NRGBA{R: r, G: g, B: b, A: c.GridAlpha}
	return opt, opt.Validate()
}

func (c *generateCmd) Run() error {
	// a background, at least one step, then the font
	if len(c.Files) < 3 {
		return fmt.Errorf("%w: need two step images and a digit font, got %d files",
			pixelgrid.ErrInsufficientSteps, len(c.Files))
	}
	if _, err := pixelgrid.EncoderFor(c.Output); err != nil {
		return err
	}
	opt, err := c.options()
	if err != nil {
		return err
	}

	layers, fontPath := c.Files[:len(c.Files)-1], c.Files[len(c.Files)-1]
	font, err := pixelgrid.LoadFont(fontPath)
	if err != nil {
		return err
	}
	steps, err := pixelgrid.LoadImages(layers)
	if err != nil {
		return err
	}

	diagrams, err := pixelgrid.ComposeSteps(steps, font, opt)
	if err != nil {
		return err
	}

	paths := pixelgrid.OutputPaths(c.Output, len(diagrams))
	bar := pb.StartNew(len(diagrams))
	for i, d := range diagrams {
		if err := pixelgrid.SaveImage(d, paths[i]); err != nil {
			bar.Finish()
			return err
		}
		log.Debugf("wrote %s", paths[i])
		bar.Increment()
	}
	bar.Finish()

	if c.Preview {
		for _, d := range diagrams {
			if err := showImage(d); err != nil {
				log.Warnf("preview: %v", err)
			}
		}
	}
	log.Infof("%d diagrams from %d steps", len(diagrams), len(steps))
	return nil
}

type digitsCmd struct {
	Font   string `arg:"" help:"Digit font (name-WxH.png)."`
	Output string `short:"o" default:"digits.png" help:"Where to write the sheet."`
	Scale  int    `default:"10" help:"Upscale factor."`
}

func (c *digitsCmd) Run() error {
	if c.Scale <= 0 {
		return fmt.Errorf("%w: scale %d", pixelgrid.ErrInvalidOptions, c.Scale)
	}
	font, err := pixelgrid.LoadFont(c.Font)
	if err != nil {
		return err
	}
	log.Debugf("font %s has %v glyphs", c.Font, font.Size())
	return pixelgrid.SaveImage(pixelgrid.DigitSheet(font, c.Scale), c.Output)
}

// run parses args, runs the chosen command and returns the exit code.
func run(args []string, stderr io.Writer) int {
	var cli cliArgs
	parser, err := kong.New(&cli,
		kong.Name("pixelgrid"),
		kong.Description(desc),
		kong.UsageOnError(),
	)
	if err != nil {
		fmt.Fprintln(stderr, ansi.Red.Sprintf("pixelgrid: %v", err))
		return 1
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintln(stderr, ansi.Red.Sprintf("pixelgrid: %v", err))
		return 1
	}
	if cli.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	if err := ctx.Run(); err != nil {
		fmt.Fprintln(stderr, ansi.Red.Sprintf("pixelgrid: %v", err))
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}
