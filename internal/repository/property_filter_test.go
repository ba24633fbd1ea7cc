package repository

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildListFilterEmpty(t *testing.T) {
	query := buildListFilter(ListFilter{})
	if len(query) != 0 {
		t.Fatalf("expected empty filter document, got %v", query)
	}
}

func TestBuildListFilterTextFields(t *testing.T) {
	query := buildListFilter(ListFilter{Name: "casa", Address: "calle"})

	name, ok := query["name"].(bson.M)
	if !ok {
		t.Fatalf("expected name condition, got %v", query["name"])
	}
	regex, ok := name["$regex"].(primitive.Regex)
	if !ok {
		t.Fatalf("expected regex condition, got %v", name["$regex"])
	}
	if regex.Pattern != "casa" {
		t.Fatalf("unexpected pattern %q", regex.Pattern)
	}
	if regex.Options != "i" {
		t.Fatalf("expected case-insensitive option, got %q", regex.Options)
	}
	if _, ok := query["address"]; !ok {
		t.Fatalf("expected address condition in %v", query)
	}
	if _, ok := query["price"]; ok {
		t.Fatalf("unexpected price condition in %v", query)
	}
}

func TestBuildListFilterEscapesRegexMeta(t *testing.T) {
	query := buildListFilter(ListFilter{Name: "casa (2)"})
	regex := query["name"].(bson.M)["$regex"].(primitive.Regex)
	if regex.Pattern != `casa \(2\)` {
		t.Fatalf("expected quoted pattern, got %q", regex.Pattern)
	}
}

func TestBuildListFilterPriceBounds(t *testing.T) {
	min, max := 100000.0, 500000.0

	cases := []struct {
		name    string
		filter  ListFilter
		wantGte bool
		wantLte bool
	}{
		{"both bounds", ListFilter{MinPrice: &min, MaxPrice: &max}, true, true},
		{"min only", ListFilter{MinPrice: &min}, true, false},
		{"max only", ListFilter{MaxPrice: &max}, false, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			query := buildListFilter(tc.filter)
			price, ok := query["price"].(bson.M)
			if !ok {
				t.Fatalf("expected price condition, got %v", query)
			}
			if _, ok := price["$gte"]; ok != tc.wantGte {
				t.Fatalf("gte presence = %v, want %v", ok, tc.wantGte)
			}
			if _, ok := price["$lte"]; ok != tc.wantLte {
				t.Fatalf("lte presence = %v, want %v", ok, tc.wantLte)
			}
			// Bounds are inclusive operators by construction.
			if tc.wantGte && price["$gte"] != min {
				t.Fatalf("unexpected lower bound %v", price["$gte"])
			}
			if tc.wantLte && price["$lte"] != max {
				t.Fatalf("unexpected upper bound %v", price["$lte"])
			}
		})
	}
}
