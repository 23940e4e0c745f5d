package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-tlox/interp"
	"github.com/cwbudde/go-tlox/lexer"
	"github.com/cwbudde/go-tlox/parser"
)

var (
	evalFlag    string
	dumpASTFlag bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a go-tlox script from a file or an inline snippet",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVarP(&evalFlag, "eval", "e", "", "evaluate an inline snippet instead of reading a file")
	runCmd.Flags().BoolVar(&dumpASTFlag, "dump-ast", false, "print the parsed statement tree instead of executing it")
}

func runRun(cmd *cobra.Command, args []string) error {
	source, sourceFile, err := readSource(args)
	if err != nil {
		return err
	}

	tokens := lexer.Tokenize(source)
	stmts, parseErrors := parser.Parse(tokens)
	if len(parseErrors) > 0 {
		for _, pe := range parseErrors {
			fmt.Fprintln(os.Stderr, pe)
		}
		os.Exit(65)
	}

	if dumpASTFlag {
		for _, s := range stmts {
			fmt.Fprintf(cmd.OutOrStdout(), "%#v\n", s)
		}
		return nil
	}

	config := interp.DefaultConfig()
	config.Stdout = cmd.OutOrStdout()
	config.SourceFile = sourceFile

	i := interp.New(config)
	if rerr := i.Interpret(stmts); rerr != nil {
		fmt.Fprintln(os.Stderr, rerr.Error())
		os.Exit(70)
	}
	return nil
}

func readSource(args []string) (source string, sourceFile string, err error) {
	if evalFlag != "" {
		return evalFlag, "", nil
	}
	if len(args) == 0 {
		return "", "", fmt.Errorf("run requires a file argument or -e/--eval")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", err
	}
	return string(data), args[0], nil
}
