package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	bst "github.com/meavi1994/go-bst"
	"github.com/meavi1994/go-bst/internal/applog"

	"github.com/samber/lo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

var treeFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "type",
		Usage:   "value type: auto, int, float or string (auto infers per value)",
		Value:   "auto",
		EnvVars: []string{"BST_TYPE"},
	},
	&cli.StringSliceFlag{
		Name:  "delete",
		Usage: "value to delete after the tree is built (repeatable)",
	},
	&cli.BoolFlag{
		Name:  "strict",
		Usage: "fail on the first value whose type does not match the tree",
	},
	&cli.BoolFlag{
		Name:    "debug",
		Usage:   "enable debug logging",
		EnvVars: []string{"BST_DEBUG"},
	},
}

func run(args []string) error {
	return newApp(os.Stdin, os.Stdout).Run(args)
}

func newApp(in io.Reader, out io.Writer) *cli.App {
	app := &cli.App{
		Name:      "bstctl",
		Usage:     "build a binary search tree from values and inspect it",
		Reader:    in,
		Writer:    out,
		ErrWriter: os.Stderr,
	}
	app.Commands = []*cli.Command{
		cmdStats,
		cmdPrint,
	}
	return app
}

var cmdStats = &cli.Command{
	Name:      "stats",
	Usage:     "print values, size, height, extremes, leaves and full nodes",
	ArgsUsage: "[values...]",
	Flags:     treeFlags,
	Action: func(cctx *cli.Context) error {
		tree, err := buildTree(cctx)
		if err != nil {
			return err
		}
		w := cctx.App.Writer
		fmt.Fprintf(w, "values: %s\n", tree)
		fmt.Fprintf(w, "size:   %d\n", tree.Len())
		fmt.Fprintf(w, "height: %d\n", tree.Height())
		fmt.Fprintf(w, "min:    %s\n", display(tree.Min()))
		fmt.Fprintf(w, "max:    %s\n", display(tree.Max()))
		fmt.Fprintf(w, "leaves: %v\n", values(tree.LeafNodes()))
		fmt.Fprintf(w, "full:   %v\n", values(tree.FullNodes()))
		return nil
	},
}

var cmdPrint = &cli.Command{
	Name:      "print",
	Usage:     "draw the tree",
	ArgsUsage: "[values...]",
	Flags:     treeFlags,
	Action: func(cctx *cli.Context) error {
		tree, err := buildTree(cctx)
		if err != nil {
			return err
		}
		fmt.Fprint(cctx.App.Writer, tree.Pretty())
		return nil
	},
}

// buildTree inserts the positional values, or whitespace separated values
// from stdin when there are none, then applies --delete.
func buildTree(cctx *cli.Context) (*bst.Tree[any], error) {
	logger := applog.NewLogger(cctx.Bool("debug"))
	tree := bst.NewDynamic(bst.WithLogger(applog.WithScope(logger, "TREE")))
	log := applog.WithScope(logger, "BSTCTL")

	tokens := cctx.Args().Slice()
	if len(tokens) == 0 {
		var err error
		if tokens, err = readTokens(cctx.App.Reader); err != nil {
			return nil, err
		}
	}

	kind := cctx.String("type")
	strict := cctx.Bool("strict")
	apply := func(op string, fn func(any) error, token string) error {
		v, err := parseValue(token, kind)
		if err != nil {
			return err
		}
		if err := fn(v); err != nil {
			if strict || !errors.Is(err, bst.ErrTypeMismatch) {
				return fmt.Errorf("%s %q: %w", op, token, err)
			}
			log.Warn().Err(err).Str("value", token).Msgf("skipping %s", op)
		}
		return nil
	}

	for _, token := range tokens {
		if err := apply("insert", tree.Insert, token); err != nil {
			return nil, err
		}
	}
	for _, token := range cctx.StringSlice("delete") {
		if err := apply("delete", tree.Delete, token); err != nil {
			return nil, err
		}
	}

	log.Debug().Int("size", tree.Len()).Str("type", fmt.Sprint(tree.ElementType())).Msg("tree built")
	return tree, nil
}

func readTokens(r io.Reader) ([]string, error) {
	var tokens []string
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read values: %w", err)
	}
	return tokens, nil
}

func parseValue(token, kind string) (any, error) {
	switch kind {
	case "int":
		v, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("invalid int %q: %w", token, err)
		}
		return v, nil
	case "float":
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid float %q: %w", token, err)
		}
		return v, nil
	case "string":
		return token, nil
	case "auto":
		if v, err := strconv.Atoi(token); err == nil {
			return v, nil
		}
		if v, err := strconv.ParseFloat(token, 64); err == nil {
			return v, nil
		}
		return token, nil
	}
	return nil, fmt.Errorf("unknown value type %q", kind)
}

func display(n *bst.Node[any]) string {
	if n == nil {
		return "-"
	}
	return fmt.Sprint(n.Value())
}

func values(nodes []*bst.Node[any]) []any {
	return lo.Map(nodes, func(n *bst.Node[any], _ int) any {
		return n.Value()
	})
}
