package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"
)

// evalCommand wires every binary rangeset operation spec.md names into a
// single "eval OP A B" subcommand, so the set of supported operators stays
// in lock-step with the rangeset package itself instead of drifting into a
// parallel CLI-only list.
func evalCommand() *cli.Command {
	return &cli.Command{
		Name:      "eval",
		Usage:     "evaluate a binary range operation",
		ArgsUsage: "OP A B",
		Description: "OP is one of: contains, overlaps, left, right, " +
			"no-extend-left, no-extend-right, adjacent, union, intersect, " +
			"difference, merge, equal, compare",
		Action: func(c *cli.Context) error {
			if c.Args().Len() < 2 {
				return errors.New("rangectl eval: requires OP A B")
			}
			op := c.Args().Get(0)
			a, err := parseIntRange(c.Args().Get(1))
			if err != nil {
				return err
			}

			cfg, _ := c.App.Metadata["config"].(config)
			log.WithFields(map[string]any{
				"op":      op,
				"a":       formatIntRange(a),
				"db_type": cfg.DBType,
			}).Debug("rangectl: evaluating")

			if c.Args().Len() < 3 {
				return fmt.Errorf("rangectl eval %s: requires OP A B", op)
			}
			b, err := parseIntRange(c.Args().Get(2))
			if err != nil {
				return err
			}

			switch op {
			case "contains":
				fmt.Println(a.Contains(b))
			case "overlaps":
				fmt.Println(a.Overlaps(b))
			case "left":
				fmt.Println(a.Left(b))
			case "right":
				fmt.Println(a.Right(b))
			case "no-extend-left":
				fmt.Println(a.NoExtendLeft(b))
			case "no-extend-right":
				fmt.Println(a.NoExtendRight(b))
			case "adjacent":
				fmt.Println(a.Adjacent(b))
			case "equal":
				fmt.Println(a.Equal(b))
			case "compare":
				fmt.Println(a.Compare(b))
			case "union":
				u, err := a.Union(b)
				if err != nil {
					return err
				}
				fmt.Println(formatIntRange(u))
			case "intersect":
				fmt.Println(formatIntRange(a.Intersect(b)))
			case "merge":
				fmt.Println(formatIntRange(a.Merge(b)))
			case "difference":
				d, err := a.Difference(b)
				if err != nil {
					return err
				}
				fmt.Println(formatIntRange(d))
			default:
				return fmt.Errorf("rangectl eval: unknown operator %q", op)
			}
			return nil
		},
	}
}
