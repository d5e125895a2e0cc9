package treasury

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The ledger file is JSONL: one record per line, identified by a "record"
// property. Human readable, append friendly and easy to diff.
//
//	{"record":"opening","entity":"HQ","balances":{...}}
//	{"record":"scenario",...}
//	{"record":"debt",...}
//	{"record":"event",...}

type recordKind string

const (
	recordOpening  recordKind = "opening"
	recordScenario recordKind = "scenario"
	recordDebt     recordKind = "debt"
	recordEvent    recordKind = "event"
)

type openingRecord struct {
	Entity   Entity  `json:"entity"`
	Balances Amounts `json:"balances"`
}

// EncodeLedger writes the whole ledger in canonical order: opening lines,
// the scenario, the debt book, then the manual events chronologically.
func EncodeLedger(w io.Writer, l *Ledger) error {
	write := func(kind recordKind, v any) error {
		raw, err := json.Marshal(v)
		if err != nil {
			return err
		}
		// prepend the discriminator so decoding can dispatch per line.
		var obj jsonObjectWriter
		obj.Append("record", kind)
		line, err := obj.MarshalJSON()
		if err != nil {
			return err
		}
		line = append(line[:len(line)-1], ',')
		line = append(line, raw[1:]...)
		if _, err := w.Write(append(line, '\n')); err != nil {
			return err
		}
		return nil
	}

	for _, entity := range Entities {
		balances, ok := l.Opening()[entity]
		if !ok {
			continue
		}
		if err := write(recordOpening, openingRecord{Entity: entity, Balances: balances}); err != nil {
			return err
		}
	}
	if err := write(recordScenario, l.Stress()); err != nil {
		return err
	}
	for _, d := range l.Debts() {
		if err := write(recordDebt, d); err != nil {
			return err
		}
	}
	for _, e := range l.Events() {
		if err := write(recordEvent, e); err != nil {
			return err
		}
	}
	return nil
}

// DecodeLedger reads a JSONL stream written by EncodeLedger and rebuilds
// the ledger. Unknown record kinds are an error: the file is ours.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}

		var identifier struct {
			Record recordKind `json:"record"`
		}
		if err := json.Unmarshal(raw, &identifier); err != nil {
			return nil, fmt.Errorf("line %d: could not identify record: %w", line, err)
		}

		switch identifier.Record {
		case recordOpening:
			var rec openingRecord
			if err := json.Unmarshal(raw, &rec); err != nil {
				return nil, fmt.Errorf("line %d: invalid opening record: %w", line, err)
			}
			opening := ledger.Opening()
			opening[rec.Entity] = rec.Balances
			ledger.SetOpening(opening)
		case recordScenario:
			var stress StressConfig
			if err := json.Unmarshal(raw, &stress); err != nil {
				return nil, fmt.Errorf("line %d: invalid scenario record: %w", line, err)
			}
			ledger.SetStress(stress)
		case recordDebt:
			var d DebtInstrument
			if err := json.Unmarshal(raw, &d); err != nil {
				return nil, fmt.Errorf("line %d: invalid debt record: %w", line, err)
			}
			if err := ledger.AddDebt(d); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		case recordEvent:
			var e CashFlowEvent
			if err := json.Unmarshal(raw, &e); err != nil {
				return nil, fmt.Errorf("line %d: invalid event record: %w", line, err)
			}
			if err := ledger.Append(e); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		default:
			return nil, fmt.Errorf("line %d: unknown record kind %q", line, identifier.Record)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ledger, nil
}
