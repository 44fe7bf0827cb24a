package export

import (
	"bytes"
	"encoding/csv"
	"io"

	"kingshot-calc/core/calculator"
	"kingshot-calc/core/table"
)

// CSVFormatter writes one row per breakdown step
type CSVFormatter struct{}

func (CSVFormatter) Format() Format { return FormatCSV }

// Render writes a header of Level or Tier, one column per resource and
// one cumulative column per resource. Reports without a range write
// their details as label,value rows instead.
func (CSVFormatter) Render(w io.Writer, report *calculator.Report) error {
	cw := csv.NewWriter(w)

	res := report.Result
	if res == nil {
		if err := cw.Write([]string{"Label", "Value"}); err != nil {
			return err
		}
		for _, d := range report.Details {
			if err := cw.Write([]string{d.Label, d.Value}); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	}

	header := []string{"Level"}
	if res.Kind == table.Tiers {
		header[0] = "Tier"
	}
	for _, r := range res.Schema {
		header = append(header, resourceLabel(r))
	}
	for _, r := range res.Schema {
		header = append(header, "Cumulative "+resourceLabel(r))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, step := range res.Breakdown {
		row := []string{step.Key.Label}
		for _, r := range res.Schema {
			row = append(row, step.Cost.Get(r).String())
		}
		for _, r := range res.Schema {
			row = append(row, step.Cumulative.Get(r).String())
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// CSV renders a report to a string
func CSV(report *calculator.Report) (string, error) {
	var buf bytes.Buffer
	if err := (CSVFormatter{}).Render(&buf, report); err != nil {
		return "", err
	}
	return buf.String(), nil
}
