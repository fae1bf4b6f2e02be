// Command tint converts, mixes and composites colors from the command line.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	cli "github.com/urfave/cli/v3"

	"github.com/gogpu/tint"
	"github.com/gogpu/tint/names"
	"github.com/gogpu/tint/space"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "tint:", err)
		os.Exit(1)
	}
}

// app carries state prepared in Before and shared by every subcommand.
type app struct {
	out     io.Writer
	errOut  io.Writer
	palette *names.Palette
}

func newApp(out, errOut io.Writer) *cli.Command {
	a := &app{out: out, errOut: errOut, palette: names.CSS()}

	spaceUsage := "color `SPACE` (" + strings.Join(space.Names(), ", ") + ")"
	modeNames := make([]string, 0, len(tint.BlendModes()))
	for _, m := range tint.BlendModes() {
		modeNames = append(modeNames, m.String())
	}

	return &cli.Command{
		Name:            "tint",
		Usage:           "convert, mix and composite colors",
		Version:         tint.Version,
		HideHelpCommand: true,
		Writer:          out,
		ErrWriter:       errOut,
		Before:          a.before,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "log conversions to stderr"},
			&cli.StringFlag{Name: "palette", Aliases: []string{"p"}, Usage: "load color names from `FILE` (YAML)"},
		},
		Commands: []*cli.Command{
			{
				Name:      "convert",
				Usage:     "Converts a color to another space",
				ArgsUsage: "COLOR",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "to", Value: "rgb", Usage: "target " + spaceUsage},
				},
				Action: a.convert,
			},
			{
				Name:      "mix",
				Usage:     "Mixes two colors",
				ArgsUsage: "COLOR COLOR",
				Flags: []cli.Flag{
					&cli.FloatFlag{Name: "amount", Aliases: []string{"t"}, Value: 0.5, Usage: "share of the second color"},
					&cli.StringFlag{Name: "mode", Value: "rgb", Usage: "interpolation " + spaceUsage},
				},
				Action: a.mix,
			},
			{
				Name:      "lighten",
				Usage:     "Raises the lightness of a color",
				ArgsUsage: "COLOR",
				Flags:     lightnessFlags(spaceUsage),
				Action:    a.lightness(false),
			},
			{
				Name:      "darken",
				Usage:     "Lowers the lightness of a color",
				ArgsUsage: "COLOR",
				Flags:     lightnessFlags(spaceUsage),
				Action:    a.lightness(true),
			},
			{
				Name:      "blend",
				Usage:     "Composites two colors",
				ArgsUsage: "COLOR COLOR",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "mode", Value: "multiply", Usage: "operator `MODE` (" + strings.Join(modeNames, ", ") + ")"},
					&cli.BoolFlag{Name: "opaque", Usage: "ignore alpha instead of premultiplying"},
				},
				Action: a.blend,
			},
			{
				Name:      "exponent",
				Usage:     "Raises normalized channels to a power",
				ArgsUsage: "COLOR",
				Flags: []cli.Flag{
					&cli.FloatFlag{Name: "power", Value: 2, Usage: "exponent"},
				},
				Action: a.exponent,
			},
			{
				Name:      "name",
				Usage:     "Prints the exact or closest color name",
				ArgsUsage: "COLOR",
				Action:    a.name,
			},
		},
	}
}

func lightnessFlags(spaceUsage string) []cli.Flag {
	return []cli.Flag{
		&cli.FloatFlag{Name: "amount", Aliases: []string{"t"}, Value: 0.1, Usage: "fraction of the lightness range"},
		&cli.StringFlag{Name: "mode", Value: "hsl", Usage: "working " + spaceUsage},
	}
}

// before prepares logging and the palette once the command line is parsed.
func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if cmd.Bool("debug") {
		tint.SetLogger(slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if file := cmd.String("palette"); file != "" {
		f, err := os.Open(file)
		if err != nil {
			return ctx, fmt.Errorf("unable to open palette: %w", err)
		}
		defer f.Close()
		if a.palette, err = names.LoadPalette(f); err != nil {
			return ctx, err
		}
		tint.Logger().Debug("palette loaded", "file", file, "names", a.palette.Len())
	}
	return ctx, nil
}

// parse resolves an argument through the active palette first, then as a
// hex string or CSS name.
func (a *app) parse(arg string) (*tint.Color, error) {
	if c, ok := a.palette.Lookup(arg); ok {
		return tint.RGB(float64(c.R), float64(c.G), float64(c.B)), nil
	}
	return tint.Parse(arg)
}

func (a *app) args(cmd *cli.Command, n int) ([]*tint.Color, error) {
	if cmd.NArg() != n {
		return nil, fmt.Errorf("%s: expected %d color argument(s), got %d", cmd.Name, n, cmd.NArg())
	}
	out := make([]*tint.Color, n)
	for i := range out {
		c, err := a.parse(cmd.Args().Get(i))
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// print writes the functional form of c followed by its hex form.
func (a *app) print(c *tint.Color) {
	fmt.Fprintln(a.out, c.String())
	fmt.Fprintln(a.out, c.Hex())
}

func (a *app) convert(_ context.Context, cmd *cli.Command) error {
	cs, err := a.args(cmd, 1)
	if err != nil {
		return err
	}
	out, err := cs[0].ConvertTo(cmd.String("to"))
	if err != nil {
		return err
	}
	a.print(out)
	return nil
}

func (a *app) mix(_ context.Context, cmd *cli.Command) error {
	cs, err := a.args(cmd, 2)
	if err != nil {
		return err
	}
	mode, err := space.Parse(cmd.String("mode"))
	if err != nil {
		return err
	}
	out, err := cs[0].Mix(cs[1], tint.WithAmount(cmd.Float("amount")), tint.WithMode(mode))
	if err != nil {
		return err
	}
	a.print(out)
	return nil
}

func (a *app) lightness(darken bool) cli.ActionFunc {
	return func(_ context.Context, cmd *cli.Command) error {
		cs, err := a.args(cmd, 1)
		if err != nil {
			return err
		}
		mode, err := space.Parse(cmd.String("mode"))
		if err != nil {
			return err
		}
		op := cs[0].Lighten
		if darken {
			op = cs[0].Darken
		}
		out, err := op(tint.WithAmount(cmd.Float("amount")), tint.WithMode(mode))
		if err != nil {
			return err
		}
		a.print(out)
		return nil
	}
}

func (a *app) blend(_ context.Context, cmd *cli.Command) error {
	cs, err := a.args(cmd, 2)
	if err != nil {
		return err
	}
	mode, err := tint.ParseBlendMode(cmd.String("mode"))
	if err != nil {
		return err
	}
	op := cs[0].Composite
	if cmd.Bool("opaque") {
		op = cs[0].CompositeOpaque
	}
	out, err := op(cs[1], mode)
	if err != nil {
		return err
	}
	a.print(out)
	return nil
}

func (a *app) exponent(_ context.Context, cmd *cli.Command) error {
	cs, err := a.args(cmd, 1)
	if err != nil {
		return err
	}
	a.print(cs[0].Exponent(cmd.Float("power")))
	return nil
}

func (a *app) name(_ context.Context, cmd *cli.Command) error {
	cs, err := a.args(cmd, 1)
	if err != nil {
		return err
	}
	if n, ok := a.palette.NameOf(cs[0]); ok {
		fmt.Fprintln(a.out, n)
		return nil
	}
	fmt.Fprintf(a.out, "~%s\n", a.palette.Nearest(cs[0]))
	return nil
}
