package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"stakeplug/internal/domain"
)

var (
	nameColor = color.New(color.FgCyan, color.Bold)
	okColor   = color.New(color.FgGreen)
	dimColor  = color.New(color.Faint)
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// readArgs reads contract arguments from path, or stdin for "-".
func readArgs(in io.Reader, path string) (json.RawMessage, error) {
	var (
		b   []byte
		err error
	)
	if path == "-" {
		b, err = io.ReadAll(in)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	if !json.Valid(b) {
		return nil, fmt.Errorf("%s: not valid JSON", path)
	}
	return json.RawMessage(b), nil
}

func printManifest(w io.Writer, m domain.Manifest) {
	_, _ = nameColor.Fprint(w, m.Name)
	fmt.Fprintf(w, "  %s\n", m.DisplayName)
	if m.Description != "" {
		fmt.Fprintf(w, "    %s\n", m.Description)
	}
}

func printRecordLine(w io.Writer, rec domain.ContractRecord) {
	_, _ = nameColor.Fprint(w, rec.ID)
	fmt.Fprintf(w, "  %s  %s  ", rec.Plugin, rec.Funds)
	_, _ = dimColor.Fprintln(w, rec.Compiled.Policy)
}
