package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/zeebo/errs"
)

// Error is the class of errors reported by numcalc itself, as opposed to
// those passed through from num and fixed.
var Error = errs.Class("numcalc")

const (
	keyWidth    = "width"
	keyLogLevel = "log-level"
	keyNoColor  = "no-color"
	keyJSON     = "json"
	keyDump     = "dump"
	keyHumanize = "humanize"
	keyEndian   = "endian"
	keyTrim     = "trim"
)

// app carries the resolved configuration and output streams into every
// subcommand.
type app struct {
	v   *viper.Viper
	log *slog.Logger
	out io.Writer
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: slog.New(slog.DiscardHandler)}

	root := &cobra.Command{
		Use:           "numcalc",
		Short:         "Fixed-width integer and fixed-point calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.Int(keyWidth, 256, "width in bits (uint/int: multiple of 8 in 32..512, fixed: 32, 64, 128 or 256)")
	flags.String(keyLogLevel, "warn", "log level: debug, info, warn or error")
	flags.Bool(keyNoColor, false, "disable coloured log output")
	flags.Bool(keyJSON, false, "print results as JSON")
	flags.Bool(keyDump, false, "dump the limbs of integer results")
	flags.Bool(keyHumanize, false, "print bit length and byte size of integer results")

	a.v.SetEnvPrefix("NUMCALC")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	bindFlags(a.v, flags)

	root.AddCommand(
		newUIntCmd(a),
		newIntCmd(a),
		newFixedCmd(a),
		newBytesCmd(a),
		newRecipCmd(a),
	)
	return root
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
	})
}

func (a *app) setup(cmd *cobra.Command) error {
	// Subcommand-local flags are bound here, once cobra knows which
	// subcommand is running.
	bindFlags(a.v, cmd.Flags())

	var level slog.Level
	if err := level.UnmarshalText([]byte(a.v.GetString(keyLogLevel))); err != nil {
		return Error.Wrap(err)
	}
	a.log = slog.New(tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{
		Level:   level,
		NoColor: a.v.GetBool(keyNoColor),
	}))
	a.out = cmd.OutOrStdout()

	a.log.Debug("configured", "command", cmd.Name(), keyWidth, a.v.GetInt(keyWidth))
	return nil
}

func (a *app) width() int { return a.v.GetInt(keyWidth) }

// result is what every subcommand prints, either as text or as JSON.
type result struct {
	Op    string   `json:"op"`
	Width int      `json:"width"`
	Value string   `json:"value"`
	Hex   string   `json:"hex,omitempty"`
	Limbs []uint64 `json:"limbs,omitempty"`
	State string   `json:"state,omitempty"`
	Note  string   `json:"note,omitempty"`

	bitLen int
	size   int
}

func (a *app) print(r result) error {
	a.log.Info("result", "op", r.Op, "width", r.Width, "value", r.Value)

	if a.v.GetBool(keyJSON) {
		enc := json.NewEncoder(a.out)
		return Error.Wrap(enc.Encode(r))
	}

	fmt.Fprintln(a.out, r.Value)
	if r.State != "" {
		fmt.Fprintf(a.out, "state: %s\n", r.State)
	}
	if r.Note != "" {
		fmt.Fprintln(a.out, r.Note)
	}
	if a.v.GetBool(keyHumanize) && r.Limbs != nil {
		fmt.Fprintf(a.out, "bits: %s of %s, size: %s\n",
			humanize.Comma(int64(r.bitLen)), humanize.Comma(int64(r.Width)), humanize.Bytes(uint64(r.size)))
	}
	if a.v.GetBool(keyDump) && r.Limbs != nil {
		cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true}
		cfg.Fdump(a.out, r.Limbs)
	}
	return nil
}

func unsupportedWidth(kind string, w int) error {
	return Error.New("unsupported %s width %d", kind, w)
}
