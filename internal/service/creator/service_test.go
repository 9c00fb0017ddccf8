package creator

import (
	"context"
	"reflect"
	"testing"
)

func TestNormalizeCategories(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil", nil, []string{}},
		{"trims entries", []string{" Pottery ", "Mehendi Art"}, []string{"Pottery", "Mehendi Art"}},
		{"drops empties", []string{"Pottery", "  ", ""}, []string{"Pottery"}},
		{"dedupes keeping first", []string{"Pottery", "Painting", "Pottery"}, []string{"Pottery", "Painting"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeCategories(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestMockUpdateMergesFields(t *testing.T) {
	svc := NewMockService()
	ctx := context.Background()
	if _, err := svc.Create(ctx, "c1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bio := "Henna artist"
	updated, err := svc.Update(ctx, "c1", UpdateParams{Bio: &bio})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Bio != "Henna artist" {
		t.Errorf("expected bio set, got %q", updated.Bio)
	}

	city := "Jaipur"
	updated, err = svc.Update(ctx, "c1", UpdateParams{City: &city})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Bio != "Henna artist" {
		t.Errorf("untouched field must survive the merge, got %q", updated.Bio)
	}
	if updated.City != "Jaipur" {
		t.Errorf("expected city set, got %q", updated.City)
	}
}

func TestMockUpdateMissingRow(t *testing.T) {
	svc := NewMockService()
	bio := "x"
	if _, err := svc.Update(context.Background(), "ghost", UpdateParams{Bio: &bio}); err == nil {
		t.Fatal("expected error for missing row")
	}
}
