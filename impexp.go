package treasury

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/lionrock/treasury/date"
	"github.com/shopspring/decimal"
)

// This file implements the exchange format used with spreadsheets: one CSV
// row per cash-flow event. The columns are fixed; anything fancier than
// this contract belongs to the tool producing the file.

var csvHeader = []string{"date", "status", "entity", "category", "description", "amountHKD", "amountRMB", "amountUSD"}

// ExportEvents writes events as CSV rows in stream order.
func ExportEvents(w io.Writer, events []CashFlowEvent) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, e := range events {
		row := []string{
			e.Date.String(),
			string(e.Status),
			string(e.Entity),
			string(e.Category),
			e.Description,
			e.Amounts.HKD.String(),
			e.Amounts.RMB.String(),
			e.Amounts.USD.String(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportEvents reads CSV rows into manual events. Ids are left empty so the
// ledger assigns fresh ones on Append; the status column is read back but
// callers reclassify against now anyway.
func ImportEvents(r io.Reader) ([]CashFlowEvent, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	if rows[0][0] == csvHeader[0] {
		rows = rows[1:] // skip the header row
	}

	events := make([]CashFlowEvent, 0, len(rows))
	for i, row := range rows {
		e, err := eventFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("csv row %d: %w", i+1, err)
		}
		events = append(events, e)
	}
	return events, nil
}

func eventFromRow(row []string) (CashFlowEvent, error) {
	var e CashFlowEvent
	var err error

	if e.Date, err = date.Parse(row[0]); err != nil {
		return e, err
	}
	switch EventStatus(row[1]) {
	case Forecast, Actual:
		e.Status = EventStatus(row[1])
	default:
		return e, fmt.Errorf("unknown status: %q", row[1])
	}
	if e.Entity, err = ParseEntity(row[2]); err != nil {
		return e, err
	}
	if e.Category, err = ParseCategory(row[3]); err != nil {
		return e, err
	}
	e.Description = row[4]
	if e.Amounts.HKD, err = decimal.NewFromString(row[5]); err != nil {
		return e, fmt.Errorf("invalid HKD amount %q: %w", row[5], err)
	}
	if e.Amounts.RMB, err = decimal.NewFromString(row[6]); err != nil {
		return e, fmt.Errorf("invalid RMB amount %q: %w", row[6], err)
	}
	if e.Amounts.USD, err = decimal.NewFromString(row[7]); err != nil {
		return e, fmt.Errorf("invalid USD amount %q: %w", row[7], err)
	}
	return e, nil
}
