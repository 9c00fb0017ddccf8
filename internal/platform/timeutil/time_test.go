package timeutil

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimeMarshalFixedMillis(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			"whole second",
			time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			`"2024-01-15T10:30:00.000Z"`,
		},
		{
			"sub-millisecond truncated",
			time.Date(2024, 1, 15, 10, 30, 0, 123456789, time.UTC),
			`"2024-01-15T10:30:00.123Z"`,
		},
		{
			"non-UTC converted",
			time.Date(2024, 1, 15, 12, 30, 0, 0, time.FixedZone("EET", 2*60*60)),
			`"2024-01-15T10:30:00.000Z"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(Time{Time: tt.in})
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(got) != tt.want {
				t.Fatalf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestTimeUnmarshal(t *testing.T) {
	var parsed Time
	if err := json.Unmarshal([]byte(`"2024-01-15T10:30:00.123Z"`), &parsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := time.Date(2024, 1, 15, 10, 30, 0, 123000000, time.UTC)
	if !parsed.Equal(want) {
		t.Fatalf("got %v, want %v", parsed.Time, want)
	}
}

func TestTimeUnmarshalNullKeepsValue(t *testing.T) {
	existing := NewTime(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC))
	if err := json.Unmarshal([]byte("null"), &existing); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if existing.IsZero() {
		t.Fatal("null must not clear the existing value")
	}
}

func TestTimeUnmarshalInvalid(t *testing.T) {
	var parsed Time
	if err := json.Unmarshal([]byte(`"15/01/2024"`), &parsed); err == nil {
		t.Fatal("expected parse error")
	}
}
