// langid is a command line toolbox for Unicode language identifiers.
//
// Usage:
//
//	langid canonicalize en_us ZH_hans_cn   # print canonical forms
//	langid likely en-US                    # add likely subtags
//	langid likely -r en-Latn-US            # remove likely subtags
//	langid match -a en-US,fr,de fr-CH      # negotiate best match
//	langid version                         # library and CLDR data version
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/maxbolgarin/langid"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "langid",
		Short: "Parse, canonicalize and match Unicode language identifiers",
	}

	rootCmd.AddCommand(canonicalizeCmd())
	rootCmd.AddCommand(likelyCmd())
	rootCmd.AddCommand(matchCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func canonicalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "canonicalize <tag>...",
		Short: "Print the canonical form of each identifier",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				out, err := langid.Canonicalize(arg)
				if err != nil {
					slog.Error("cannot canonicalize", "tag", arg, "error", err)
					return err
				}
				fmt.Println(out)
			}
			return nil
		},
	}
}

func likelyCmd() *cobra.Command {
	var remove bool

	cmd := &cobra.Command{
		Use:   "likely <tag>",
		Short: "Add (or remove with -r) likely subtags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := langid.Parse(args[0])
			if err != nil {
				slog.Error("cannot parse", "tag", args[0], "error", err)
				return err
			}
			if remove {
				id.RemoveLikelySubtags()
			} else {
				id.AddLikelySubtags()
			}
			fmt.Println(id.String())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&remove, "remove", "r", false, "remove likely subtags instead of adding them")
	return cmd
}

func matchCmd() *cobra.Command {
	var available string

	cmd := &cobra.Command{
		Use:   "match <requested>...",
		Short: "Pick the best available identifier for the requested ones",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg langid.Config
			if err := cfg.Read(); err != nil {
				slog.Error("cannot read config", "error", err)
				return err
			}

			requested, err := parseAll(args)
			if err != nil {
				return err
			}
			avail, err := parseAll(strings.Split(available, ","))
			if err != nil {
				return err
			}

			best, ok := langid.BestMatch(requested, avail)
			if !ok {
				if cfg.DefaultTag == "" {
					cfg.DefaultTag = "en-US"
				}
				fmt.Println(cfg.DefaultTag)
				return nil
			}
			fmt.Println(best.String())
			return nil
		},
	}

	cmd.Flags().StringVarP(&available, "available", "a", "", "comma-separated list of available identifiers")
	_ = cmd.MarkFlagRequired("available")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the tool and CLDR data versions",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("langid %s (CLDR %s)\n", version, langid.CLDRVersion)
		},
	}
}

func parseAll(inputs []string) ([]langid.LanguageIdentifier, error) {
	ids := make([]langid.LanguageIdentifier, 0, len(inputs))
	for _, input := range inputs {
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		id, err := langid.Parse(input)
		if err != nil {
			slog.Error("cannot parse", "tag", input, "error", err)
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
