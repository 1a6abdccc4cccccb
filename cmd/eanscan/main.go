// Command eanscan decodes EAN-13/UPC-A product codes from binary PPM
// photographs, and renders codes back out as synthetic rasters.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ericlevine/eanscan"
	"github.com/ericlevine/eanscan/ppm"
)

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "eanscan",
		Short: "EAN-13/UPC-A barcode reader for PPM photographs",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.WarnLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).With().Timestamp().Logger()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newEncodeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newScanCmd() *cobra.Command {
	var tryHarder bool

	cmd := &cobra.Command{
		Use:   "scan <file.ppm>...",
		Short: "Decode a product code from each image",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			var errs *multierror.Error
			for _, path := range args {
				if err := scanFile(path, tryHarder); err != nil {
					errs = multierror.Append(errs, fmt.Errorf("%s: %w", path, err))
				}
			}
			return errs.ErrorOrNil()
		},
	}
	cmd.Flags().BoolVar(&tryHarder, "try-harder", false, "scan additional rows around the center")
	return cmd
}

func scanFile(path string, tryHarder bool) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	log.Debug().Str("path", path).Int("bytes", len(raw)).Msg("scanning")

	code, err := eanscan.Decode(raw, &eanscan.DecodeOptions{TryHarder: tryHarder})
	if err != nil {
		if errors.Is(err, eanscan.ErrNotFound) {
			color.Red("%s: no barcode found", path)
		} else {
			color.Red("%s: %v", path, err)
		}
		return err
	}
	fmt.Printf("%s: %s\n", path, color.GreenString(code.String()))
	return nil
}

func newEncodeCmd() *cobra.Command {
	var (
		out         string
		moduleWidth int
		height      int
		quiet       int
	)

	cmd := &cobra.Command{
		Use:   "encode <digits>",
		Short: "Render a 12- or 13-digit code as a PPM barcode image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			code, err := parseCode(args[0])
			if err != nil {
				return err
			}
			pix, err := eanscan.Render(code, moduleWidth, height, quiet)
			if err != nil {
				return err
			}
			log.Debug().Str("code", code.String()).
				Int("width", pix.Width()).Int("height", pix.Height()).
				Msg("rendered")
			return os.WriteFile(out, ppm.Encode(pix), 0o644)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "barcode.ppm", "output file")
	cmd.Flags().IntVar(&moduleWidth, "module-width", 3, "pixels per module")
	cmd.Flags().IntVar(&height, "height", 60, "image height in pixels")
	cmd.Flags().IntVar(&quiet, "quiet-zone", 10, "quiet zone width in modules")
	return cmd
}

// parseCode accepts twelve digits (check digit computed) or thirteen
// (check digit verified by Render).
func parseCode(s string) (eanscan.Code, error) {
	if len(s) != 12 && len(s) != 13 {
		return eanscan.Code{}, fmt.Errorf("need 12 or 13 digits, got %d", len(s))
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return eanscan.Code{}, fmt.Errorf("bad digit %q at position %d", s[i], i)
		}
	}
	var body [12]eanscan.Digit
	for i := 0; i < 12; i++ {
		body[i] = eanscan.Digit(s[i] - '0')
	}
	code := eanscan.Complete(body)
	if len(s) == 13 && code[12] != eanscan.Digit(s[12]-'0') {
		return eanscan.Code{}, fmt.Errorf("check digit mismatch: want %d", code[12])
	}
	return code, nil
}
