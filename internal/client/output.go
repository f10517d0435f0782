package client

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Format is an output format selected with --output.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

func parseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "", FormatTable:
		return FormatTable, nil
	case FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", errUnknownFormat, s)
}

// view is one printable result: the raw value for JSON and YAML and its
// table rendering.
type view struct {
	data    any
	headers []string
	rows    [][]string
}

func render(w io.Writer, format Format, v view) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v.data)
	case FormatYAML:
		return writeYAML(w, v.data)
	default:
		return writeTable(w, v.headers, v.rows)
	}
}

// writeYAML goes through JSON so YAML keys match the API field names.
func writeYAML(w io.Writer, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error encoding output: %w", err)
	}

	var generic any
	if err = json.Unmarshal(raw, &generic); err != nil {
		return fmt.Errorf("error encoding output: %w", err)
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err = encoder.Encode(generic); err != nil {
		return fmt.Errorf("error encoding output: %w", err)
	}
	return encoder.Close()
}

func writeTable(w io.Writer, headers []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if len(headers) > 0 {
		fmt.Fprintln(tw, strings.Join(headers, "\t"))
	}
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}
