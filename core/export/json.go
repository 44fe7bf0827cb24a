package export

import (
	"encoding/json"
	"io"

	"kingshot-calc/core/calculator"
)

// JSONFormatter writes the report record
type JSONFormatter struct {
	Indent bool
}

func (JSONFormatter) Format() Format { return FormatJSON }

func (f JSONFormatter) Render(w io.Writer, report *calculator.Report) error {
	enc := json.NewEncoder(w)
	if f.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(report)
}
