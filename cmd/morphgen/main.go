// Command morphgen drives the rule-based surface-form generator:
// one-shot generation, paradigm tables, and a JSON REST API server,
// all fed from a YAML rule/lexicon definitions file.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conlang-tools/morphgen"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "morphgen:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "morphgen",
		Short:         "Rule-based morphological surface-form generator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("defs", "definitions.yaml", "path to the YAML rule/lexicon definitions")
	_ = viper.BindPFlag("defs", root.PersistentFlags().Lookup("defs"))
	viper.SetEnvPrefix("MORPHGEN")
	viper.AutomaticEnv()

	root.AddCommand(newGenerateCmd(), newTableCmd(), newServeCmd())
	return root
}

// loadMorphology reads the definitions file named by the --defs flag
// or the MORPHGEN_DEFS environment variable.
func loadMorphology() (*morphgen.Morphology, error) {
	return morphgen.LoadFile(viper.GetString("defs"))
}

// parseFeatures parses "key=value,key=value" request strings from
// flags and query parameters into a feature bundle.
func parseFeatures(s string) (morphgen.FeatureBundle, error) {
	feats := morphgen.FeatureBundle{}
	if strings.TrimSpace(s) == "" {
		return feats, nil
	}
	for _, pair := range strings.Split(s, ",") {
		kv := strings.SplitN(strings.TrimSpace(pair), "=", 2)
		if len(kv) != 2 || kv[0] == "" {
			return nil, fmt.Errorf("malformed feature %q (want key=value)", pair)
		}
		feats[kv[0]] = kv[1]
	}
	return feats, nil
}

func newGenerateCmd() *cobra.Command {
	var featuresFlag string

	cmd := &cobra.Command{
		Use:   "generate <lemma>",
		Short: "Realize one surface form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMorphology()
			if err != nil {
				return err
			}
			feats, err := parseFeatures(featuresFlag)
			if err != nil {
				return err
			}
			surface, err := m.Generate(args[0], feats)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), surface)
			return nil
		},
	}

	cmd.Flags().StringVarP(&featuresFlag, "features", "f", "", "target features as key=value,key=value")
	return cmd
}

func newTableCmd() *cobra.Command {
	var (
		formatFlag  string
		lexemesFlag []string
	)

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Render the paradigm table inferred from the rule set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMorphology()
			if err != nil {
				return err
			}

			var subset []string
			if cmd.Flags().Changed("lexemes") {
				subset = lexemesFlag
			}
			out, err := m.AutoTable(subset, morphgen.TableFormat(formatFlag))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			if out != "" && !strings.HasSuffix(out, "\n") {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&formatFlag, "format", "pretty", "output format: pretty or json")
	cmd.Flags().StringSliceVar(&lexemesFlag, "lexemes", nil, "restrict the table to these lemmas")
	return cmd
}
