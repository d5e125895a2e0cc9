package treasury

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lionrock/treasury/date"
)

func TestExportImportEvents(t *testing.T) {
	events := []CashFlowEvent{
		manualEvent("m1", "2024-01-05", EntityProperty, Operating, 12.5),
		{
			ID:          "m2",
			Date:        date.MustParse("2024-02-01"),
			Entity:      EntityHQ,
			Category:    Internal,
			Description: "sweep to HQ, with a comma",
			Amounts:     Amounts{HKD: dec(-3), RMB: dec(2.76), USD: dec(0)},
			Status:      Forecast,
		},
	}

	var buf bytes.Buffer
	if err := ExportEvents(&buf, events); err != nil {
		t.Fatalf("ExportEvents() error = %v", err)
	}
	if !strings.HasPrefix(buf.String(), "date,status,entity,category,description,amountHKD,amountRMB,amountUSD\n") {
		t.Fatalf("missing header:\n%s", buf.String())
	}

	got, err := ImportEvents(&buf)
	if err != nil {
		t.Fatalf("ImportEvents() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("imported %d events, want 2", len(got))
	}
	if got[0].ID != "" {
		t.Errorf("import must leave ids empty for the ledger to assign, got %q", got[0].ID)
	}
	if got[1].Description != "sweep to HQ, with a comma" {
		t.Errorf("description mangled: %q", got[1].Description)
	}
	if !got[1].Amounts.HKD.Equal(dec(-3)) || !got[1].Amounts.RMB.Equal(dec(2.76)) {
		t.Errorf("amounts mangled: %+v", got[1].Amounts)
	}
}

func TestImportEvents_badRows(t *testing.T) {
	testCases := []struct {
		name string
		in   string
	}{
		{"bad date", "2024-13-45,ACTUAL,HQ,OPERATING,x,0,1,0\n"},
		{"bad entity", "2024-01-01,ACTUAL,NOWHERE,OPERATING,x,0,1,0\n"},
		{"bad category", "2024-01-01,ACTUAL,HQ,PERSONAL,x,0,1,0\n"},
		{"bad status", "2024-01-01,MAYBE,HQ,OPERATING,x,0,1,0\n"},
		{"bad amount", "2024-01-01,ACTUAL,HQ,OPERATING,x,zero,1,0\n"},
		{"short row", "2024-01-01,ACTUAL,HQ\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ImportEvents(strings.NewReader(tc.in)); err == nil {
				t.Errorf("ImportEvents accepted %q", tc.in)
			}
		})
	}
}

func TestImportEvents_empty(t *testing.T) {
	got, err := ImportEvents(strings.NewReader(""))
	if err != nil || len(got) != 0 {
		t.Errorf("ImportEvents(empty) = %v, %v", got, err)
	}
}
