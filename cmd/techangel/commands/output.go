package commands

import (
	"encoding/json"
	"fmt"
	"io"
)

// emit writes v as indented JSON with --output json, otherwise calls text.
func emit(w io.Writer, v any, text func(io.Writer)) error {
	if output == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(w)
	return nil
}

func field(w io.Writer, label string, value any) {
	fmt.Fprintf(w, "%-13s %v\n", label+":", value)
}
