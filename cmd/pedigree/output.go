package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by --output.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// texter is implemented by results with a human-readable form.
type texter interface {
	writeText(w io.Writer) error
}

type sampleRow struct {
	Name        string `json:"name" yaml:"name"`
	Individuals int    `json:"individuals" yaml:"individuals"`
	Description string `json:"description" yaml:"description"`
}

type sampleRows []sampleRow

func (rows sampleRows) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSIZE\tDESCRIPTION")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", r.Name, r.Individuals, r.Description)
	}
	return tw.Flush()
}

type individualRow struct {
	ID       int      `json:"id" yaml:"id"`
	Label    string   `json:"label" yaml:"label"`
	Sex      string   `json:"sex" yaml:"sex"`
	Alive    bool     `json:"alive" yaml:"alive"`
	Parents  []string `json:"parents" yaml:"parents"`
	Children []string `json:"children" yaml:"children"`
}

type individualRows []individualRow

func (rows individualRows) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tLABEL\tSEX\tPARENTS\tCHILDREN")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", r.ID, r.Label, r.Sex, list(r.Parents), list(r.Children))
	}
	return tw.Flush()
}

type ancestorsResult struct {
	Individual string   `json:"individual" yaml:"individual"`
	Depth      int      `json:"depth,omitempty" yaml:"depth,omitempty"`
	Ancestors  []string `json:"ancestors" yaml:"ancestors"`
}

func (r ancestorsResult) writeText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "ancestors of %s: %s\n", r.Individual, list(r.Ancestors))
	return err
}

type pathsResult struct {
	Ancestor   string     `json:"ancestor" yaml:"ancestor"`
	Descendant string     `json:"descendant" yaml:"descendant"`
	Paths      [][]string `json:"paths" yaml:"paths"`
}

func (r pathsResult) writeText(w io.Writer) error {
	if len(r.Paths) == 0 {
		_, err := fmt.Fprintf(w, "%s is not a descendant of %s\n", r.Descendant, r.Ancestor)
		return err
	}
	for _, p := range r.Paths {
		if _, err := fmt.Fprintln(w, strings.Join(p, " ← ")); err != nil {
			return err
		}
	}
	return nil
}

type termRow struct {
	Ancestor string   `json:"ancestor" yaml:"ancestor"`
	PathA    []string `json:"path_a" yaml:"path_a"`
	PathB    []string `json:"path_b" yaml:"path_b"`
	Value    float64  `json:"value" yaml:"value"`
}

type relateResult struct {
	A           string    `json:"a" yaml:"a"`
	B           string    `json:"b" yaml:"b"`
	Coefficient float64   `json:"coefficient" yaml:"coefficient"`
	Terms       []termRow `json:"terms,omitempty" yaml:"terms,omitempty"`
}

func (r relateResult) writeText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "r(%s, %s) = %g\n", r.A, r.B, r.Coefficient); err != nil {
		return err
	}
	for _, t := range r.Terms {
		if _, err := fmt.Fprintf(w, "  via %s: %s | %s = %g\n",
			t.Ancestor, strings.Join(t.PathA, " ← "), strings.Join(t.PathB, " ← "), t.Value); err != nil {
			return err
		}
	}
	return nil
}

type separationResult struct {
	A      string   `json:"a" yaml:"a"`
	B      string   `json:"b" yaml:"b"`
	Degree int      `json:"degree" yaml:"degree"`
	Path   []string `json:"path" yaml:"path"`
}

func (r separationResult) writeText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s → %s: %d (%s)\n", r.A, r.B, r.Degree, strings.Join(r.Path, " - "))
	return err
}

// render writes v in the selected format.
func (c *cli) render(v any) error {
	switch rows := v.(type) {
	case []sampleRow:
		v = sampleRows(rows)
	case []individualRow:
		v = individualRows(rows)
	}

	switch c.format {
	case formatJSON:
		enc := json.NewEncoder(c.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(c.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		t, ok := v.(texter)
		if !ok {
			return fmt.Errorf("no text form for %T", v)
		}
		return t.writeText(c.out)
	}
}

// list joins labels for text output, "-" when empty.
func list(labels []string) string {
	if len(labels) == 0 {
		return "-"
	}
	return strings.Join(labels, ", ")
}
