package treasury

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncodeDecodeLedger_roundTrip(t *testing.T) {
	l := NewLedger()
	l.SetOpening(StartingBalances{
		EntityProperty: Amounts{HKD: dec(10), RMB: dec(20), USD: dec(5)},
		EntityHQ:       In(RMB, dec(200)),
	})
	stress, _ := Preset(PresetPessimistic)
	l.SetStress(stress)
	if err := l.AddDebt(sampleDebt()); err != nil {
		t.Fatalf("AddDebt() error = %v", err)
	}
	if err := l.Append(
		manualEvent("m1", "2024-02-01", EntityHQ, Operating, -3),
		manualEvent("m2", "2024-02-15", EntityProperty, Internal, 7),
	); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatalf("EncodeLedger() error = %v", err)
	}

	got, err := DecodeLedger(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v\nencoded:\n%s", err, buf.String())
	}

	if len(got.Debts()) != 1 || got.Debts()[0].ID != "d1" {
		t.Errorf("decoded debts = %+v", got.Debts())
	}
	if len(got.Events()) != 2 {
		t.Errorf("decoded %d events, want 2", len(got.Events()))
	}
	if !got.Stress().FailRate.Equal(stress.FailRate) {
		t.Errorf("decoded fail rate = %s, want %s", got.Stress().FailRate, stress.FailRate)
	}
	if !got.Opening()[EntityProperty].HKD.Equal(dec(10)) {
		t.Errorf("decoded opening = %+v", got.Opening())
	}

	// Canonical form: encoding the decoded ledger is byte identical.
	var again bytes.Buffer
	if err := EncodeLedger(&again, got); err != nil {
		t.Fatalf("second EncodeLedger() error = %v", err)
	}
	if !bytes.Equal(buf.Bytes(), again.Bytes()) {
		t.Errorf("encoding is not canonical:\n%s\nvs\n%s", buf.String(), again.String())
	}
}

func TestDecodeLedger_badInput(t *testing.T) {
	testCases := []struct {
		name string
		in   string
	}{
		{"not json", "hello\n"},
		{"unknown record", `{"record":"position","x":1}` + "\n"},
		{"invalid debt dates", `{"record":"debt","id":"x","name":"n","entity":"HQ","currency":"RMB","principal":1,"baseRate":1,"benchmark":"FIXED","spreadBps":0,"start":"2025-01-01","end":"2024-01-01","frequency":"MONTHLY","status":"PLANNED"}` + "\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeLedger(strings.NewReader(tc.in)); err == nil {
				t.Errorf("DecodeLedger accepted %q", tc.in)
			}
		})
	}
}

func TestDecodeLedger_skipsEmptyLines(t *testing.T) {
	in := "\n" + `{"record":"event","id":"m1","date":"2024-01-01","entity":"HQ","category":"OPERATING","amounts":{"hkd":0,"rmb":1,"usd":0},"status":"ACTUAL"}` + "\n\n"
	l, err := DecodeLedger(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}
	if len(l.Events()) != 1 {
		t.Errorf("decoded %d events, want 1", len(l.Events()))
	}
}
