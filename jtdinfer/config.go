package jtdinfer

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for inference configuration, allowing callers
// to customize flag names while keeping sensible defaults.
type Flags struct {
	EnumHint          string
	ValuesHint        string
	DiscriminatorHint string
	DefaultNumberType string
}

// Config holds CLI flag values for inference configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewDriver] to create a [Driver].
type Config struct {
	Flags             Flags
	EnumHints         []string
	ValuesHints       []string
	DiscriminatorHint []string
	DefaultNumberType string
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		EnumHint:          "enum-hint",
		ValuesHint:        "values-hint",
		DiscriminatorHint: "discriminator-hint",
		DefaultNumberType: "default-number-type",
	}

	return &Config{Flags: f}
}

// RegisterFlags adds inference flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringArrayVar(&c.EnumHints, c.Flags.EnumHint, nil,
		"JSON-Pointer-like path (repeatable) forcing the enum form at that position")
	flags.StringArrayVar(&c.ValuesHints, c.Flags.ValuesHint, nil,
		"JSON-Pointer-like path (repeatable) forcing the values form at that position")
	flags.StringArrayVar(&c.DiscriminatorHint, c.Flags.DiscriminatorHint, nil,
		"JSON-Pointer-like path (repeatable) naming a discriminator tag key")
	flags.StringVar(&c.DefaultNumberType, c.Flags.DefaultNumberType, "uint8",
		"preferred JTD numeric type, emitted wherever it holds every number seen "+
			"(int8, uint8, int16, uint16, int32, uint32, float32, float64)")
}

// RegisterCompletions registers shell completions for inference flags on
// cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.DefaultNumberType,
		cobra.FixedCompletions(numTypeNames(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.DefaultNumberType, err)
	}

	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	for _, flag := range []string{c.Flags.EnumHint, c.Flags.ValuesHint, c.Flags.DiscriminatorHint} {
		if regErr := cmd.RegisterFlagCompletionFunc(flag, noFileComp); regErr != nil {
			return fmt.Errorf("registering %s completion: %w", flag, regErr)
		}
	}

	return nil
}

// NewDriver builds the [Hints] this Config describes and returns a fresh
// [Driver] started from them.
func (c *Config) NewDriver() (*Driver, error) {
	numType, err := parseNumType(c.DefaultNumberType)
	if err != nil {
		return nil, err
	}

	enums, err := parseHintPaths(c.EnumHints)
	if err != nil {
		return nil, err
	}

	values, err := parseHintPaths(c.ValuesHints)
	if err != nil {
		return nil, err
	}

	discriminator, err := parseHintPaths(c.DiscriminatorHint)
	if err != nil {
		return nil, err
	}

	hints := NewHints(numType, NewHintSet(enums), NewHintSet(values), NewHintSet(discriminator))

	return NewDriver(hints), nil
}

func parseHintPaths(raw []string) ([][]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	paths := make([][]string, 0, len(raw))
	for _, p := range raw {
		paths = append(paths, ParseHintPath(p))
	}

	return paths, nil
}

var numTypeByName = map[string]NumType{
	"int8":    NumInt8,
	"uint8":   NumUint8,
	"int16":   NumInt16,
	"uint16":  NumUint16,
	"int32":   NumInt32,
	"uint32":  NumUint32,
	"float32": NumFloat32,
	"float64": NumFloat64,
}

func numTypeNames() []string {
	names := make([]string, 0, len(numTypeByName))
	for name := range numTypeByName {
		names = append(names, name)
	}

	return names
}

func parseNumType(name string) (NumType, error) {
	t, ok := numTypeByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: unknown default number type %q", ErrInvalidOption, name)
	}

	return t, nil
}
