// File: database/repository/availability/redis_test.go
package availabilityRepo

import "testing"

func TestDecodeAvailableDays(t *testing.T) {
	records := decodeAvailableDays([]byte(
		`[{"date":"2026-03-12","available":true},{"date":"2026-03-13","available":false}]`))
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2: %+v", len(records), records)
	}
	if records[0].Date != "2026-03-12" || !records[0].Available {
		t.Fatalf("unexpected first record: %+v", records[0])
	}
	if records[1].Available {
		t.Fatalf("second record should be closed: %+v", records[1])
	}
}

func TestDecodeAvailableDaysCorruptValue(t *testing.T) {
	for _, data := range []string{
		"{not json",
		`"available-days"`,
		`{"date":"2026-03-12"}`, // object, not array
	} {
		records := decodeAvailableDays([]byte(data))
		if records == nil || len(records) != 0 {
			t.Fatalf("corrupt value %q should read as empty, got %+v", data, records)
		}
	}
}

func TestDecodeAvailableDaysNullValue(t *testing.T) {
	records := decodeAvailableDays([]byte("null"))
	if records == nil || len(records) != 0 {
		t.Fatalf("null value should read as empty, got %+v", records)
	}
}

func TestDecodeAvailableDaysCustomRange(t *testing.T) {
	records := decodeAvailableDays([]byte(
		`[{"date":"2026-03-12","available":true,"customTimeRange":{"start":"09:00","end":"12:00"}}]`))
	if len(records) != 1 || records[0].CustomTimeRange == nil {
		t.Fatalf("expected one record with a custom range, got %+v", records)
	}
	if records[0].CustomTimeRange.Start != "09:00" || records[0].CustomTimeRange.End != "12:00" {
		t.Fatalf("unexpected custom range: %+v", records[0].CustomTimeRange)
	}
}
