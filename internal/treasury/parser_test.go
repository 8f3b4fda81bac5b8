package treasury

import (
	"reflect"
	"testing"
	"time"
)

const sampleHeader = "Date,\"1 Mo\",\"2 Mo\",\"1 Yr\",\"2 Yr\",\"30 Yr\"\n"

func TestParseYearCSV_TableDriven(t *testing.T) {
	cases := []struct {
		name      string
		raw       string
		wantErr   bool
		wantDays  int
		wantFirst string // expected newest date (MM/DD/YYYY), when wantDays > 0
	}{
		{
			name:     "ok two rows sorted newest first",
			raw:      sampleHeader + "09/25/2025,5.65,5.60,4.58,4.10,4.75\n09/26/2025,5.66,5.61,4.59,4.11,4.76\n",
			wantDays: 2, wantFirst: "09/26/2025",
		},
		{
			name:     "blank date row dropped",
			raw:      sampleHeader + ",5.65,5.60,4.58,4.10,4.75\n09/26/2025,5.66,5.61,4.59,4.11,4.76\n",
			wantDays: 1, wantFirst: "09/26/2025",
		},
		{
			name:     "malformed date row dropped",
			raw:      sampleHeader + "2025-09-25,5.65,5.60,4.58,4.10,4.75\n09/26/2025,5.66,5.61,4.59,4.11,4.76\n",
			wantDays: 1, wantFirst: "09/26/2025",
		},
		{
			name:     "row with only bad cells dropped entirely",
			raw:      sampleHeader + "09/25/2025,N/A,,bad,,\n09/26/2025,5.66,5.61,4.59,4.11,4.76\n",
			wantDays: 1, wantFirst: "09/26/2025",
		},
		{
			name:     "short row tolerated",
			raw:      sampleHeader + "09/26/2025,5.66\n",
			wantDays: 1, wantFirst: "09/26/2025",
		},
		{
			name:     "empty body",
			raw:      sampleHeader,
			wantDays: 0,
		},
		{
			name:    "no Date column",
			raw:     "\"1 Mo\",\"2 Mo\"\n5.65,5.60\n",
			wantErr: true,
		},
		{
			name:    "empty input",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "structurally broken csv",
			raw:     "Date,\"1 Mo\n09/26/2025,\"5.66\"x,\n",
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseYearCSV(tc.raw)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %d records", len(got))
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tc.wantDays {
				t.Fatalf("want %d days, got %d", tc.wantDays, len(got))
			}
			if tc.wantDays > 0 {
				if d := got[0].Date.Format("01/02/2006"); d != tc.wantFirst {
					t.Fatalf("want newest %s, got %s", tc.wantFirst, d)
				}
			}
		})
	}
}

func TestParseYearCSV_BasisPoints(t *testing.T) {
	cases := []struct {
		cell string
		want int
	}{
		{"4.58", 458},
		{"4.585", 459}, // round half up away from zero
		{"0.01", 1},
		{"5", 500},
		{"5.00", 500},
		{"0.00", 0},
	}

	for _, tc := range cases {
		t.Run(tc.cell, func(t *testing.T) {
			got, ok := toBasisPoints(tc.cell)
			if !ok {
				t.Fatalf("cell %q not parsed", tc.cell)
			}
			if got != tc.want {
				t.Fatalf("cell %q: want %d bp, got %d", tc.cell, tc.want, got)
			}
		})
	}

	for _, bad := range []string{"", "  ", "N/A", "4.58%"} {
		if _, ok := toBasisPoints(bad); ok {
			t.Fatalf("cell %q should not parse", bad)
		}
	}
}

func TestParseYearCSV_PerCellTolerance(t *testing.T) {
	raw := sampleHeader + "09/26/2025,5.66,,bad,4.11,4.76\n"
	got, err := ParseYearCSV(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("want 1 day, got %d", len(got))
	}
	want := map[string]int{"1 Mo": 566, "2 Yr": 411, "30 Yr": 476}
	if !reflect.DeepEqual(got[0].Yields, want) {
		t.Fatalf("want yields %v, got %v", want, got[0].Yields)
	}
	if !got[0].Date.Equal(time.Date(2025, 9, 26, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date: %v", got[0].Date)
	}
}

func TestParseYearCSV_Idempotent(t *testing.T) {
	raw := sampleHeader +
		"09/24/2025,5.64,5.59,4.57,4.09,4.74\n" +
		"09/26/2025,5.66,5.61,4.59,4.11,4.76\n" +
		"09/25/2025,5.65,5.60,4.58,4.10,4.75\n"

	first, err := ParseYearCSV(raw)
	if err != nil {
		t.Fatalf("first parse: %v", err)
	}
	second, err := ParseYearCSV(raw)
	if err != nil {
		t.Fatalf("second parse: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("parsing is not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}

	// Descending regardless of input order.
	for i := 1; i < len(first); i++ {
		if first[i].Date.After(first[i-1].Date) {
			t.Fatalf("records not sorted descending at %d: %v before %v", i, first[i-1].Date, first[i].Date)
		}
	}
}
