// Package dataset reads chart series from csv, yaml and inline sources.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/midbel/chartview"
	"github.com/midbel/slices"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
)

var ErrFormat = errors.New("unsupported data format")

// Columns gives the index of the label and value columns of csv files. The
// first row of a csv file is always treated as a header.
type Columns struct {
	Label int
	Value int
}

func DefaultColumns() Columns {
	return Columns{
		Label: 0,
		Value: 1,
	}
}

func FormatFromPath(file string) (Format, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".csv":
		return FormatCSV, nil
	case ".yml", ".yaml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%s: %w", file, ErrFormat)
	}
}

func ReadFile(file string, cols Columns) (chartview.Serie, error) {
	format, err := FormatFromPath(file)
	if err != nil {
		return nil, err
	}
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	s, err := Read(r, format, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return s, nil
}

func Read(r io.Reader, format Format, cols Columns) (chartview.Serie, error) {
	switch format {
	case FormatCSV:
		return readCSV(r, cols)
	case FormatYAML:
		return readYAML(r)
	default:
		return nil, fmt.Errorf("%s: %w", format, ErrFormat)
	}
}

// Parse reads a serie written as label:value pairs separated by commas.
func Parse(str string) (chartview.Serie, error) {
	var serie chartview.Serie
	if strings.TrimSpace(str) == "" {
		return serie, nil
	}
	for _, pair := range strings.Split(str, ",") {
		vs := strings.Split(pair, ":")
		if len(vs) < 2 {
			return nil, fmt.Errorf("%s: missing value", pair)
		}
		var (
			label = strings.TrimSpace(strings.Join(vs[:len(vs)-1], ":"))
			value = strings.TrimSpace(slices.Lst(vs))
		)
		if label == "" {
			return nil, fmt.Errorf("%s: missing label", pair)
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", label, err)
		}
		serie = append(serie, chartview.CategoryEntry(label, f))
	}
	return serie, nil
}

func readCSV(r io.Reader, cols Columns) (chartview.Serie, error) {
	var (
		rs    = csv.NewReader(r)
		serie chartview.Serie
	)
	rs.FieldsPerRecord = -1
	rs.TrimLeadingSpace = true
	if _, err := rs.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return serie, nil
		}
		return nil, err
	}
	for {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		if cols.Label < 0 || cols.Label >= len(row) || cols.Value < 0 || cols.Value >= len(row) {
			line, _ := rs.FieldPos(0)
			return nil, fmt.Errorf("line %d: invalid label/value index columns given", line)
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(row[cols.Value]), 64)
		if err != nil {
			line, _ := rs.FieldPos(cols.Value)
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		serie = append(serie, chartview.CategoryEntry(row[cols.Label], value))
	}
	return serie, nil
}

// readYAML accepts a mapping of labels to values, kept in the order of the
// document, or a list of label/value objects.
func readYAML(r io.Reader) (chartview.Serie, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	node := &doc
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = slices.Fst(node.Content)
	}
	switch node.Kind {
	case yaml.MappingNode:
		return decodeMapping(node)
	case yaml.SequenceNode:
		var serie chartview.Serie
		if err := node.Decode(&serie); err != nil {
			return nil, err
		}
		return serie, nil
	default:
		return nil, fmt.Errorf("line %d: expected mapping or sequence", node.Line)
	}
}

func decodeMapping(node *yaml.Node) (chartview.Serie, error) {
	var serie chartview.Serie
	for i := 0; i+1 < len(node.Content); i += 2 {
		var (
			key   = node.Content[i]
			val   = node.Content[i+1]
			value float64
		)
		if err := val.Decode(&value); err != nil {
			return nil, fmt.Errorf("line %d: %s: %w", val.Line, key.Value, err)
		}
		serie = append(serie, chartview.CategoryEntry(key.Value, value))
	}
	return serie, nil
}
