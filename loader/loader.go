// Package loader reads knapsack instances from item files.
//
// Two formats are supported:
//
//   - Text (.txt, .csv, .dat, no extension): one item per line,
//     "name profit weight", separated by whitespace, commas or semicolons. Blank lines and
//     lines starting with '#' are ignored. A first line starting with "name"
//     is treated as a header and skipped.
//
//   - YAML (.yaml, .yml):
//
//     capacity: 50        # optional
//     items:
//     - {name: A, profit: 60, weight: 10}
//     - {name: B, profit: 100, weight: 20}
//
// The loader validates syntax and item values; it does not rank or solve.
// Item validation errors wrap knapsack.ErrInvalidItem so callers can treat
// them exactly like errors from knapsack.Rank.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvknap/knapsack"
)

// Sentinel errors returned by the loader.
var (
	// ErrSyntax indicates a malformed line or document. Wrapped with the line number.
	ErrSyntax = errors.New("loader: syntax error")

	// ErrUnsupportedFormat indicates a file extension the loader cannot read.
	ErrUnsupportedFormat = errors.New("loader: unsupported file format")

	// ErrDuplicateName indicates two items with the same name.
	ErrDuplicateName = errors.New("loader: duplicate item name")
)

// Instance is a loaded problem instance.
type Instance struct {
	// Name identifies the instance (the file base name for LoadFile).
	Name string

	// Items in file order.
	Items []knapsack.Item

	// Capacity is set when the file declares one (YAML only).
	Capacity *int64
}

// yamlItem and yamlDoc mirror the YAML layout.
type yamlItem struct {
	Name   string `yaml:"name"`
	Profit int64  `yaml:"profit"`
	Weight int64  `yaml:"weight"`
}

type yamlDoc struct {
	Capacity *int64     `yaml:"capacity"`
	Items    []yamlItem `yaml:"items"`
}

// LoadFile reads an instance from path, choosing the format by extension.
func LoadFile(path string) (Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return Instance{}, fmt.Errorf("loader: opening %s: %w", path, err)
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	var inst Instance
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		inst, err = ParseYAML(f)
	case "", ".txt", ".csv", ".dat":
		var items []knapsack.Item
		items, err = ParseText(f)
		inst = Instance{Items: items}
	default:
		return Instance{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return Instance{}, fmt.Errorf("%s: %w", path, err)
	}
	inst.Name = name

	return inst, nil
}

// ParseText reads items in the line-oriented text format.
func ParseText(r io.Reader) ([]knapsack.Item, error) {
	var (
		sc     = bufio.NewScanner(r)
		items  []knapsack.Item
		seen   = make(map[string]struct{})
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := splitFields(line)
		if len(items) == 0 && isHeader(fields) {
			continue
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: line %d: want 3 fields (name profit weight), got %d", ErrSyntax, lineNo, len(fields))
		}
		profit, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: profit %q is not an integer", ErrSyntax, lineNo, fields[1])
		}
		weight, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: weight %q is not an integer", ErrSyntax, lineNo, fields[2])
		}
		it := knapsack.Item{Name: fields[0], Profit: profit, Weight: weight}
		if err = checkItem(it, seen); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		items = append(items, it)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("loader: reading items: %w", err)
	}

	return items, nil
}

// ParseYAML reads an instance in the YAML format.
func ParseYAML(r io.Reader) (Instance, error) {
	var doc yamlDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Instance{}, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	if doc.Capacity != nil && *doc.Capacity < 0 {
		return Instance{}, fmt.Errorf("%w: %d", knapsack.ErrNegativeCapacity, *doc.Capacity)
	}

	var (
		inst = Instance{Items: make([]knapsack.Item, 0, len(doc.Items)), Capacity: doc.Capacity}
		seen = make(map[string]struct{}, len(doc.Items))
	)
	for i, yi := range doc.Items {
		it := knapsack.Item{Name: yi.Name, Profit: yi.Profit, Weight: yi.Weight}
		if err := checkItem(it, seen); err != nil {
			return Instance{}, fmt.Errorf("items[%d]: %w", i, err)
		}
		inst.Items = append(inst.Items, it)
	}

	return inst, nil
}

// splitFields splits on commas, semicolons and whitespace, dropping empty fields.
func splitFields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t'
	})
}

// isHeader reports whether fields look like a "name profit weight" header row.
func isHeader(fields []string) bool {
	if !strings.EqualFold(fields[0], "name") {
		return false
	}
	if len(fields) < 2 {
		return true
	}
	_, err := strconv.ParseInt(fields[1], 10, 64)

	return err != nil
}

// checkItem validates one item and records its name.
func checkItem(it knapsack.Item, seen map[string]struct{}) error {
	if it.Name == "" {
		return fmt.Errorf("%w: empty item name", ErrSyntax)
	}
	if _, dup := seen[it.Name]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateName, it.Name)
	}
	if it.Weight <= 0 {
		return fmt.Errorf("%w: %q has weight %d (must be > 0)", knapsack.ErrInvalidItem, it.Name, it.Weight)
	}
	if it.Profit < 0 {
		return fmt.Errorf("%w: %q has profit %d (must be >= 0)", knapsack.ErrInvalidItem, it.Name, it.Profit)
	}
	seen[it.Name] = struct{}{}

	return nil
}
