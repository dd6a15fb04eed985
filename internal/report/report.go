// Package report encodes delta entries for the command line.
//
// Text output groups the entries of each component by kind and colours them:
//   - Green: values or links a fix adds
//   - Red: parts a fix removes
//   - Yellow: parts a fix changes
//
// The json, yaml and msgpack formats encode a flat list of Records.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/fatih/color"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/syssam/faktorgen/delta"
)

// Format is an output format.
type Format string

// Formats.
const (
	Text    Format = "text"
	JSON    Format = "json"
	YAML    Format = "yaml"
	MsgPack Format = "msgpack"
)

// Formats returns the supported formats.
func Formats() []Format { return []Format{Text, JSON, YAML, MsgPack} }

// ParseFormat returns the format with the given name.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if !slices.Contains(Formats(), f) {
		return "", fmt.Errorf("report: unknown format %q", s)
	}
	return f, nil
}

// Record is the encoded form of one entry.
type Record struct {
	Component   string `json:"component" yaml:"component" msgpack:"component"`
	Location    string `json:"location" yaml:"location" msgpack:"location"`
	Type        string `json:"type" yaml:"type" msgpack:"type"`
	Kind        string `json:"kind" yaml:"kind" msgpack:"kind"`
	Description string `json:"description" yaml:"description" msgpack:"description"`
}

// Records flattens the entries of deltas, describing them with p.
func Records(deltas []*delta.Delta, p *message.Printer) []Record {
	records := []Record{}
	for _, d := range deltas {
		for _, e := range d.Entries() {
			records = append(records, Record{
				Component:   d.ProductCmpt().QName,
				Location:    e.Location(),
				Type:        e.Type().String(),
				Kind:        e.Type().Kind().String(),
				Description: e.Description(p),
			})
		}
	}
	return records
}

// Write encodes deltas to w in format f.
func Write(w io.Writer, f Format, deltas []*delta.Delta, p *message.Printer) error {
	switch f {
	case Text:
		return writeText(w, deltas, p)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(Records(deltas, p))
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(Records(deltas, p)); err != nil {
			return err
		}
		return enc.Close()
	case MsgPack:
		return msgpack.NewEncoder(w).Encode(Records(deltas, p))
	default:
		return fmt.Errorf("report: unknown format %q", f)
	}
}

var (
	bold   = color.New(color.Bold)
	faint  = color.New(color.Faint)
	colors = map[delta.Kind]*color.Color{
		delta.KindAdded:   color.New(color.FgGreen),
		delta.KindRemoved: color.New(color.FgRed),
		delta.KindChanged: color.New(color.FgYellow),
	}
	kinds = []delta.Kind{delta.KindAdded, delta.KindRemoved, delta.KindChanged}
)

func writeText(w io.Writer, deltas []*delta.Delta, p *message.Printer) error {
	for _, d := range deltas {
		name := d.ProductCmpt().QName
		if d.IsEmpty() {
			if _, err := faint.Fprintf(w, "%s: up to date\n", name); err != nil {
				return err
			}
			continue
		}
		if _, err := bold.Fprintf(w, "%s\n", name); err != nil {
			return err
		}
		groups := make(map[delta.Kind][]delta.Entry)
		for _, e := range d.Entries() {
			k := e.Type().Kind()
			groups[k] = append(groups[k], e)
		}
		for _, k := range kinds {
			entries := groups[k]
			if len(entries) == 0 {
				continue
			}
			c := colors[k]
			if _, err := c.Fprintf(w, "  %s (%d)\n", k, len(entries)); err != nil {
				return err
			}
			for _, e := range entries {
				if _, err := fmt.Fprintf(w, "    %s: %s\n", c.Sprint(e.Type()), e.Description(p)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
