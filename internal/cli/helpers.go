package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/Davincible/gfpoly/internal/validation"
	"github.com/Davincible/gfpoly/pkg/config"
	"github.com/Davincible/gfpoly/pkg/gf256"
	"github.com/spf13/cobra"
)

// PolyResult is the JSON form of a polynomial.
type PolyResult struct {
	ReducingPolynomial int    `json:"reducing_polynomial"`
	Coefficients       []int  `json:"coefficients"`
	Rendered           string `json:"rendered"`
}

type settingsKey struct{}

// newConfigManager is replaced in tests to observe config loads.
var newConfigManager = config.NewConfigManager

// loadSettings reads the config file, falling back to defaults when it
// cannot be loaded.
func loadSettings() *config.Config {
	cm, err := newConfigManager()
	if err != nil {
		slog.Warn("Using default configuration", "error", err)
		return config.DefaultConfig()
	}
	return cm.GetConfig()
}

// withSettings attaches settings to the command context for its RunE.
func withSettings(cmd *cobra.Command, settings *config.Config) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, settingsKey{}, settings))
}

// settingsFrom returns the settings loaded by the root command, loading them
// only when the command runs outside the root.
func settingsFrom(cmd *cobra.Command) *config.Config {
	if ctx := cmd.Context(); ctx != nil {
		if settings, ok := ctx.Value(settingsKey{}).(*config.Config); ok {
			return settings
		}
	}
	settings := loadSettings()
	withSettings(cmd, settings)
	return settings
}

// addModulusFlag registers the --modulus flag shared by field commands.
func addModulusFlag(cmd *cobra.Command, modulus *string) {
	cmd.Flags().StringVarP(modulus, "modulus", "m", "",
		"Reducing polynomial, decimal or 0x hex (default from config, 285)")
}

// resolveField builds the field for the --modulus value, or the configured
// default when it is empty.
func resolveField(cmd *cobra.Command, modulus string) (*gf256.Field, error) {
	poly := settingsFrom(cmd).Defaults.ReducingPolynomial
	if modulus != "" {
		p, err := validation.ParseReducingPolynomial(modulus)
		if err != nil {
			return nil, err
		}
		poly = p
	}

	f, err := gf256.NewField(poly)
	if err != nil {
		return nil, fmt.Errorf("failed to build field: %w", err)
	}
	slog.Debug("Built field", "reducing_polynomial", poly)
	return f, nil
}

// parsePoly parses a coefficient list into a polynomial over f.
func parsePoly(input string, f *gf256.Field) (*gf256.Poly, error) {
	coefs, err := validation.ParseCoefficients(input)
	if err != nil {
		return nil, err
	}
	return gf256.NewPoly(coefs, f)
}

func polyResult(p *gf256.Poly) (PolyResult, error) {
	rendered, err := p.Render()
	if err != nil {
		return PolyResult{}, err
	}
	coefs := p.Coefficients()
	ints := make([]int, len(coefs))
	for i, c := range coefs {
		ints[i] = int(c)
	}
	return PolyResult{
		ReducingPolynomial: p.Field().ReducingPolynomial(),
		Coefficients:       ints,
		Rendered:           rendered,
	}, nil
}

// wantJSON reports whether output should be JSON. An explicit --json flag
// overrides the configured default.
func wantJSON(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("json") {
		v, _ := cmd.Flags().GetBool("json")
		return v
	}
	return settingsFrom(cmd).UI.JSONOutput
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
