package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/xiaomi388/empmanag/pkg/types"
	"gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var header = []string{"ID", "Name", "Age", "Department", "Position", "Salary"}

// Table writes records as aligned columns, one row per record.
func Table(w io.Writer, records []types.Record) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, r := range records {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t%s\n",
			r.ID, r.Name, r.Age, r.Department, r.Position, FormatSalary(r.Salary))
	}

	return tw.Flush()
}

func FormatSalary(salary float64) string {
	return strconv.FormatFloat(salary, 'f', -1, 64)
}

// Encode writes records in the given format.
func Encode(w io.Writer, records []types.Record, format string) error {
	if records == nil {
		records = []types.Record{}
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "    ")
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("failed to encode records: %w", err)
		}
	case FormatYAML:
		nodes, err := yamlNodes(records)
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(nodes); err != nil {
			return fmt.Errorf("failed to encode records: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to flush records: %w", err)
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	return nil
}

// yamlNodes keeps the record key order of the JSON file in the YAML output.
func yamlNodes(records []types.Record) (*yaml.Node, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, r := range records {
		m := &yaml.Node{Kind: yaml.MappingNode}
		pairs := []struct {
			key string
			val any
		}{
			{types.FieldID, r.ID},
			{types.FieldName, r.Name},
			{types.FieldAge, r.Age},
			{types.FieldDepartment, r.Department},
			{types.FieldPosition, r.Position},
			{types.FieldSalary, r.Salary},
		}
		for _, k := range r.ExtraKeys() {
			pairs = append(pairs, struct {
				key string
				val any
			}{k, r.Extra[k]})
		}

		for _, p := range pairs {
			var val yaml.Node
			if err := val.Encode(p.val); err != nil {
				return nil, fmt.Errorf("failed to encode %s of record %d: %w", p.key, r.ID, err)
			}
			m.Content = append(m.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: p.key},
				&val,
			)
		}
		seq.Content = append(seq.Content, m)
	}

	return seq, nil
}
