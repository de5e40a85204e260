// cons - S-expression tool
//
// Usage:
//
//	cons fmt [file]      Print the canonical form of an expression
//	cons tokens [file]   List the tokens of the input with their positions
//	cons tree [file]     Print the parsed tree, one node per line
//	cons check           Run the built-in render and parse checks
//	cons lua <script>    Run a Lua script with the "sexpr" module preloaded
//
// If no file is given, or the file is "-", input is read from stdin. Files
// ending in .gz or .zst are decompressed unless --compression says otherwise.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"
	lua "github.com/yuin/gopher-lua"

	"github.com/xiam/cons"
	"github.com/xiam/cons/ast"
	"github.com/xiam/cons/lexer"
	"github.com/xiam/cons/luasexpr"
)

const version = "0.1.0"

func main() {
	log.SetFlags(0)
	log.SetPrefix("cons: ")

	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "cons",
		Usage:   "read and write S-expressions",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "compression",
				Value:   compressionAuto,
				Usage:   "input compression: auto, none, gzip or zstd",
				EnvVars: []string{"CONS_COMPRESSION"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "fmt",
				Usage:     "print the canonical form of an expression",
				ArgsUsage: "[file]",
				Action:    fmtAction,
			},
			{
				Name:      "tokens",
				Usage:     "list the tokens of the input",
				ArgsUsage: "[file]",
				Action:    tokensAction,
			},
			{
				Name:      "tree",
				Usage:     "print the parsed tree",
				ArgsUsage: "[file]",
				Action:    treeAction,
			},
			{
				Name:   "check",
				Usage:  "run the built-in render and parse checks",
				Action: checkAction,
			},
			{
				Name:      "lua",
				Usage:     "run a Lua script with the sexpr module preloaded",
				ArgsUsage: "<script>",
				Action:    luaAction,
			},
		},
	}
}

func fmtAction(c *cli.Context) error {
	in, err := openInput(c)
	if err != nil {
		return err
	}
	defer in.Close()

	root, err := cons.NewReader(in).Parse()
	if err != nil {
		return fmt.Errorf("%s: %w", inputName(c), err)
	}

	_, err = fmt.Fprintln(c.App.Writer, cons.Render(root))
	return err
}

func tokensAction(c *cli.Context) error {
	in, err := openInput(c)
	if err != nil {
		return err
	}
	defer in.Close()

	tokens, err := lexer.Tokenize(in)
	if err != nil {
		return fmt.Errorf("%s: %w", inputName(c), err)
	}

	for _, tok := range tokens {
		line, col := tok.Pos()
		fmt.Fprintf(c.App.Writer, "%d:%d\t%v\t%q\n", line, col, tok.Type(), tok.Text())
	}
	return nil
}

func treeAction(c *cli.Context) error {
	in, err := openInput(c)
	if err != nil {
		return err
	}
	defer in.Close()

	root, err := cons.NewReader(in).Parse()
	if err != nil {
		return fmt.Errorf("%s: %w", inputName(c), err)
	}

	ast.Print(c.App.Writer, root)
	return nil
}

func checkAction(c *cli.Context) error {
	if !cons.SelfTest(log.New(c.App.ErrWriter, "", 0)) {
		return errors.New("self-test failed")
	}
	_, err := fmt.Fprintln(c.App.Writer, "ok")
	return err
}

func luaAction(c *cli.Context) error {
	script := c.Args().First()
	if script == "" {
		return errors.New("lua: missing script")
	}

	L := lua.NewState()
	defer L.Close()

	luasexpr.Preload(L)

	if err := L.DoFile(script); err != nil {
		return fmt.Errorf("lua: %w", err)
	}
	return nil
}
