package cmd

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/TylerMullins037/Parser/lang"
)

var cfgFile string

var (
	pathStyle   = lipgloss.NewStyle().Bold(true)
	acceptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// config is the optional TOML file listing source files to check, checked
// after any files named on the command line.
type config struct {
	Files []string `toml:"files"`
}

var rootCmd = &cobra.Command{
	Use:   "parsecheck [files...]",
	Short: "Check source files against the calculator-language grammar",
	Long: `parsecheck runs each input file through the lexer and
recursive-descent parser and prints either the accepted parse tree or the
first scanning/syntax error, with the offending line.`,
	SilenceUsage: true,
	RunE:         runCheck,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "TOML file with a 'files' list of inputs")
}

func runCheck(cmd *cobra.Command, args []string) error {
	files := args
	if cfgFile != "" {
		var cfg config
		if _, err := toml.DecodeFile(cfgFile, &cfg); err != nil {
			return fmt.Errorf("load config %s: %w", cfgFile, err)
		}
		files = append(files, cfg.Files...)
	}
	if len(files) == 0 {
		return fmt.Errorf("no input files: name them as arguments or in --config")
	}

	failed := 0
	for _, path := range files {
		src, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", pathStyle.Render(path), err)
			failed++
			continue
		}
		prog, err := lang.Parse(string(src))
		if err != nil {
			fmt.Printf("%s: %s\n", pathStyle.Render(path), errorStyle.Render(err.Error()))
			failed++
			continue
		}
		fmt.Printf("%s: %s\n", pathStyle.Render(path), acceptStyle.Render("Accept:"+lang.TreeString(prog)))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files rejected", failed, len(files))
	}
	return nil
}
