package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gradualcheck/gradual/pkg/config"
	"github.com/gradualcheck/gradual/pkg/diag"
	"github.com/gradualcheck/gradual/pkg/option"
	"github.com/gradualcheck/gradual/pkg/resolve"
)

// ErrConfigInvalid is returned when validation finds error-severity
// diagnostics.
var ErrConfigInvalid = errors.New("configuration is invalid")

var (
	configFile     string
	validateStrict bool
	validateFilter string
	showModule     string
	showFormat     string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and validate checker configuration",
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a configuration file without running any analysis",
	Long: `Validate a configuration file without running any analysis.

This command checks:
  - Source syntax (INI, TOML, YAML, or JSON)
  - That every option is recognized and well-typed
  - That global-only options do not appear in module sections
  - That module patterns are well-formed
  - That overrides actually change something`,
	Example: `  # Validate the discovered config in the current directory
  gradual config validate

  # Validate a specific file
  gradual config validate -f ./gradual.ini

  # Treat unrecognized options as errors
  gradual config validate --strict

  # Only show error-severity findings
  gradual config validate --filter 'severity == "error"'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, report, err := resolveConfig(validateStrict)
		if report == nil {
			return err
		}
		diags := report.All()
		if validateFilter != "" {
			filter, ferr := diag.CompileFilter(validateFilter)
			if ferr != nil {
				return ferr
			}
			diags, ferr = filter.Apply(diags)
			if ferr != nil {
				return ferr
			}
		}
		for _, d := range diags {
			fmt.Fprintln(cmd.OutOrStdout(), d.String())
		}
		if err != nil {
			return err
		}
		if report.HasErrors() {
			return ErrConfigInvalid
		}
		global := cfg.Global()
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration OK (%d options, %d diagnostics)\n",
			len(global.Names()), report.Len())
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective option values",
	Long: `Print the effective option values after resolution.

Without --module the global settings are shown; with --module the settings
in effect for that module, with any matching per-module overrides applied.`,
	Example: `  # Show global settings as JSON
  gradual config show

  # Show the settings in effect for one module
  gradual config show --module trio._core.tests

  # Plain key = value output
  gradual config show --format text`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := resolveConfig(false)
		if err != nil {
			return err
		}

		settings := cfg.Global()
		if showModule != "" {
			settings = cfg.ForModule(showModule)
		}

		switch showFormat {
		case "json":
			data, err := json.MarshalIndent(settings, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
		case "text":
			for _, name := range settings.Names() {
				value, _ := settings.Value(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %v\n", name, value)
			}
		default:
			return fmt.Errorf("unknown format %q (valid: json, text)", showFormat)
		}
		return nil
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema for structured configuration files",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := config.SchemaJSON(option.Builtin())
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configOptionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List the recognized configuration options",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := option.Builtin()
		for _, name := range reg.Names() {
			spec, _ := reg.Lookup(name)
			line := fmt.Sprintf("%-30s %-8s %-10s default=%v", name, spec.Type, spec.Scope, spec.DefaultValue())
			if spec.Type == option.TypeEnum {
				line += fmt.Sprintf(" (one of: %v)", spec.Enum)
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	},
}

func init() {
	configCmd.PersistentFlags().StringVarP(&configFile, "config", "f", "", "Configuration file path (discovered if not set)")

	configValidateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Treat unrecognized options as errors")
	configValidateCmd.Flags().StringVar(&validateFilter, "filter", "", "Expression filter for diagnostics (e.g. 'severity == \"error\"')")

	configShowCmd.Flags().StringVar(&showModule, "module", "", "Show settings in effect for this module")
	configShowCmd.Flags().StringVar(&showFormat, "format", "json", "Output format (json, text)")

	configCmd.AddCommand(configValidateCmd, configShowCmd, configSchemaCmd, configOptionsCmd)
}

// resolveConfig locates the configuration file and resolves it.
func resolveConfig(strict bool) (*resolve.ResolvedConfig, *diag.Report, error) {
	path := configFile
	if path == "" {
		discovered, err := config.Discover(".")
		if err != nil {
			return nil, nil, err
		}
		path = discovered
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return nil, nil, err
	}
	defer closeLog()

	resolver := resolve.New(
		resolve.WithStrictMode(strict),
		resolve.WithLogger(logger),
	)
	return resolver.Resolve(config.FileSource{Path: path})
}
