package models

import (
	"testing"
)

func TestTerminalStatus(t *testing.T) {
	tests := []struct {
		name    string
		success int
		failed  int
		want    ImportStatus
	}{
		{"all rows succeeded", 10, 0, ImportStatusCompleted},
		{"all rows failed", 0, 10, ImportStatusFailed},
		{"mixed outcome", 7, 3, ImportStatusPartial},
		{"single success", 1, 0, ImportStatusCompleted},
		{"single failure", 0, 1, ImportStatusFailed},
		{"empty batch", 0, 0, ImportStatusCompleted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TerminalStatus(tt.success, tt.failed); got != tt.want {
				t.Errorf("TerminalStatus(%d, %d) = %s, want %s", tt.success, tt.failed, got, tt.want)
			}
		})
	}
}

func TestRowErrorListRoundTrip(t *testing.T) {
	list := RowErrorList{
		{Row: 4, Data: map[string]string{"Họ tên": "Nguyễn Văn A", "Ngày sinh": "31/02/2024"}, Error: "invalid date"},
		{Row: 8, Data: map[string]string{"Họ tên": "Lê Văn C"}, Error: "distance not found"},
	}

	value, err := list.Value()
	if err != nil {
		t.Fatal(err)
	}

	var decoded RowErrorList
	if err := decoded.Scan(value); err != nil {
		t.Fatal(err)
	}
	if len(decoded) != 2 {
		t.Fatalf("len: %d", len(decoded))
	}
	if decoded[0].Row != 4 || decoded[1].Row != 8 {
		t.Errorf("rows: %d, %d", decoded[0].Row, decoded[1].Row)
	}
	if decoded[0].Data["Họ tên"] != "Nguyễn Văn A" {
		t.Errorf("data: %+v", decoded[0].Data)
	}
	if decoded[1].Error != "distance not found" {
		t.Errorf("error: %q", decoded[1].Error)
	}
}

func TestRowErrorListScanVariants(t *testing.T) {
	var fromString RowErrorList
	if err := fromString.Scan(`[{"row":2,"error":"x"}]`); err != nil {
		t.Fatal(err)
	}
	if len(fromString) != 1 || fromString[0].Row != 2 {
		t.Errorf("from string: %+v", fromString)
	}

	var fromNil RowErrorList
	if err := fromNil.Scan(nil); err != nil {
		t.Fatal(err)
	}
	if len(fromNil) != 0 {
		t.Errorf("from nil: %+v", fromNil)
	}
}

func TestDistanceIsFull(t *testing.T) {
	unlimited := Distance{CurrentParticipants: 500}
	if unlimited.IsFull() {
		t.Error("a distance without a cap is never full")
	}

	capTen := 10
	capped := Distance{CurrentParticipants: 9, MaxParticipants: &capTen}
	if capped.IsFull() {
		t.Error("one slot remains")
	}
	capped.CurrentParticipants = 10
	if !capped.IsFull() {
		t.Error("cap reached")
	}
}

func TestEventShirtRemaining(t *testing.T) {
	shirt := EventShirt{StockQuantity: 5, SoldQuantity: 3}
	if got := shirt.Remaining(); got != 2 {
		t.Errorf("remaining: %d", got)
	}
}
