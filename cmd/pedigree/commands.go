package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/katalvlaran/lineage/bfs"
	"github.com/katalvlaran/lineage/core"
	"github.com/katalvlaran/lineage/dfs"
	"github.com/katalvlaran/lineage/internal/samples"
	"github.com/katalvlaran/lineage/relationship"
	"github.com/spf13/cobra"
)

// cli carries state shared by every subcommand.
type cli struct {
	out     io.Writer
	errOut  io.Writer
	format  string
	verbose bool
	logger  *slog.Logger
}

// newRootCmd builds the command tree writing results to out and logs to errOut.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	c := &cli{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "pedigree",
		Short: "Query sample pedigrees",
		Long: `Genealogical queries over built-in sample pedigrees.

Individuals are addressed by label (e.g. "M") or by numeric ID.

Subcommands:
  samples     - List the sample pedigrees
  show        - List individuals with their parents and children
  ancestors   - Ancestor set of an individual
  paths       - Lineage paths from an ancestor to a descendant
  relate      - Coefficient of relationship between two individuals
  separation  - Degree of separation between two individuals`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch c.format {
			case formatText, formatJSON, formatYAML:
			default:
				return fmt.Errorf("unknown output format %q (want text, json or yaml)", c.format)
			}
			level := slog.LevelWarn
			if c.verbose {
				level = slog.LevelDebug
			}
			c.logger = slog.New(slog.NewTextHandler(c.errOut, &slog.HandlerOptions{Level: level}))
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVarP(&c.format, "output", "o", formatText, "output format: text, json or yaml")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log debug diagnostics to stderr")

	root.AddCommand(
		c.samplesCmd(),
		c.showCmd(),
		c.ancestorsCmd(),
		c.pathsCmd(),
		c.relateCmd(),
		c.separationCmd(),
	)

	return root
}

// load builds the named sample and logs its size.
func (c *cli) load(name string) (*samples.Sample, error) {
	s, err := samples.Build(name, c.logger)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("sample loaded", slog.String("sample", name), slog.Int("individuals", s.Pedigree.Len()))

	return s, nil
}

// resolve accepts a label or a numeric ID.
func resolve(s *samples.Sample, ref string) (core.ID, error) {
	if id, err := s.ID(ref); err == nil {
		return id, nil
	}
	n, err := strconv.Atoi(ref)
	if err != nil || !s.Pedigree.Has(core.ID(n)) {
		return core.None, fmt.Errorf("%q: %w", ref, core.ErrUnknownIndividual)
	}

	return core.ID(n), nil
}

func (c *cli) samplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "samples",
		Short: "List the sample pedigrees",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			var rows []sampleRow
			for _, name := range samples.Names() {
				s, err := c.load(name)
				if err != nil {
					return err
				}
				rows = append(rows, sampleRow{Name: name, Individuals: s.Pedigree.Len(), Description: s.Description})
			}
			return c.render(rows)
		},
	}
}

func (c *cli) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show SAMPLE",
		Short: "List individuals with their parents and children",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := c.load(args[0])
			if err != nil {
				return err
			}
			rows := make([]individualRow, 0, s.Pedigree.Len())
			for id := core.ID(0); int(id) < s.Pedigree.Len(); id++ {
				ind, err := s.Pedigree.Individual(id)
				if err != nil {
					return err
				}
				rows = append(rows, individualRow{
					ID:       int(id),
					Label:    ind.Payload,
					Sex:      ind.Sex.String(),
					Alive:    ind.Alive,
					Parents:  s.Labels(ind.Parents),
					Children: s.Labels(ind.Children),
				})
			}
			return c.render(rows)
		},
	}
}

func (c *cli) ancestorsCmd() *cobra.Command {
	var depth int
	cmd := &cobra.Command{
		Use:   "ancestors SAMPLE INDIVIDUAL",
		Short: "Ancestor set of an individual (including itself)",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := c.load(args[0])
			if err != nil {
				return err
			}
			id, err := resolve(s, args[1])
			if err != nil {
				return err
			}
			anc, err := bfs.Ancestors(s.Pedigree, id, bfs.WithMaxDepth(depth))
			if err != nil {
				return err
			}
			return c.render(ancestorsResult{Individual: s.Label(id), Depth: depth, Ancestors: s.Labels(anc)})
		},
	}
	cmd.Flags().IntVarP(&depth, "depth", "d", 0, "limit to this many generations (0 = unbounded)")

	return cmd
}

func (c *cli) pathsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "paths SAMPLE ANCESTOR DESCENDANT",
		Short: "Lineage paths from an ancestor down to a descendant",
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := c.load(args[0])
			if err != nil {
				return err
			}
			a, err := resolve(s, args[1])
			if err != nil {
				return err
			}
			d, err := resolve(s, args[2])
			if err != nil {
				return err
			}
			res := pathsResult{Ancestor: s.Label(a), Descendant: s.Label(d)}
			for _, p := range dfs.Paths(s.Pedigree, a, d) {
				res.Paths = append(res.Paths, s.Labels(p))
			}
			return c.render(res)
		},
	}
}

func (c *cli) relateCmd() *cobra.Command {
	var (
		depth   int
		explain bool
	)
	cmd := &cobra.Command{
		Use:   "relate SAMPLE A B",
		Short: "Coefficient of relationship between two individuals",
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := c.load(args[0])
			if err != nil {
				return err
			}
			a, err := resolve(s, args[1])
			if err != nil {
				return err
			}
			b, err := resolve(s, args[2])
			if err != nil {
				return err
			}
			opts := []relationship.Option{relationship.WithMaxDepth(depth)}
			r, err := relationship.Coefficient(s.Pedigree, a, b, opts...)
			if err != nil {
				return err
			}
			res := relateResult{A: s.Label(a), B: s.Label(b), Coefficient: r}
			if explain {
				terms, err := relationship.Contributions(s.Pedigree, a, b, opts...)
				if err != nil {
					return err
				}
				for _, t := range terms {
					res.Terms = append(res.Terms, termRow{
						Ancestor: s.Label(t.Ancestor),
						PathA:    s.Labels(t.Path1),
						PathB:    s.Labels(t.Path2),
						Value:    t.Value,
					})
				}
			}
			c.logger.Debug("coefficient computed", slog.Int("a", int(a)), slog.Int("b", int(b)), slog.Float64("r", r))
			return c.render(res)
		},
	}
	cmd.Flags().IntVarP(&depth, "depth", "d", 0, "limit ancestor search to this many generations (0 = unbounded)")
	cmd.Flags().BoolVar(&explain, "explain", false, "list every contributing path pair")

	return cmd
}

func (c *cli) separationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "separation SAMPLE A B",
		Short: "Shortest parent/child route between two individuals",
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := c.load(args[0])
			if err != nil {
				return err
			}
			a, err := resolve(s, args[1])
			if err != nil {
				return err
			}
			b, err := resolve(s, args[2])
			if err != nil {
				return err
			}
			path, err := bfs.ShortestPath(s.Pedigree, a, b)
			if err != nil {
				return err
			}
			return c.render(separationResult{A: s.Label(a), B: s.Label(b), Degree: len(path) - 1, Path: s.Labels(path)})
		},
	}
}
