package store

import (
	"context"
	"math"
	"testing"

	"github.com/viant/cbir/feature"
)

func TestRegisterFunctionsAndUse(t *testing.T) {
	// Register globally before the first connection so the functions are
	// available on it.
	if err := RegisterFunctions(); err != nil {
		t.Fatalf("RegisterFunctions failed: %v", err)
	}
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	defer db.Close()

	aBlob, err := EncodeVector(feature.Vector{120, 130, 125})
	if err != nil {
		t.Fatalf("EncodeVector a failed: %v", err)
	}
	bBlob, err := EncodeVector(feature.Vector{121, 131, 124})
	if err != nil {
		t.Fatalf("EncodeVector b failed: %v", err)
	}

	var d float64
	if err := db.QueryRow(`SELECT cbir_ssd(?, ?)`, aBlob, bBlob).Scan(&d); err != nil {
		t.Fatalf("cbir_ssd query failed: %v", err)
	}
	if d != 3 {
		t.Fatalf("cbir_ssd = %v, want 3", d)
	}

	// Identical vectors have cosine distance 0; orthogonal, 1.
	xBlob, _ := EncodeVector(feature.Vector{1, 0})
	yBlob, _ := EncodeVector(feature.Vector{0, 1})
	if err := db.QueryRow(`SELECT cbir_cosine(?, ?)`, xBlob, xBlob).Scan(&d); err != nil {
		t.Fatalf("cbir_cosine query failed: %v", err)
	}
	if math.Abs(d) > 1e-9 {
		t.Fatalf("cbir_cosine(x,x) = %v, want 0", d)
	}
	if err := db.QueryRow(`SELECT cbir_cosine(?, ?)`, xBlob, yBlob).Scan(&d); err != nil {
		t.Fatalf("cbir_cosine query failed: %v", err)
	}
	if math.Abs(d-1) > 1e-9 {
		t.Fatalf("cbir_cosine(x,y) = %v, want 1", d)
	}
}

func TestFunctions_RankInSQL(t *testing.T) {
	if err := RegisterFunctions(); err != nil {
		t.Fatalf("RegisterFunctions failed: %v", err)
	}
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	defer db.Close()

	s, err := New(db)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	records := []Record{
		{ID: "far", Vector: feature.Vector{10, 10}},
		{ID: "self", Vector: feature.Vector{0, 0}},
		{ID: "near", Vector: feature.Vector{1, 0}},
	}
	if err := s.PutAll(context.Background(), "center-patch", records); err != nil {
		t.Fatalf("PutAll failed: %v", err)
	}

	query, err := EncodeVector(feature.Vector{0, 0})
	if err != nil {
		t.Fatalf("EncodeVector failed: %v", err)
	}

	rows, err := db.Query(`SELECT id FROM features WHERE kind = ?
ORDER BY cbir_ssd(vector, ?) ASC LIMIT 2`, "center-patch", query)
	if err != nil {
		t.Fatalf("ranking query failed: %v", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			t.Fatalf("Scan failed: %v", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("rows error: %v", err)
	}
	if len(ids) != 2 || ids[0] != "self" || ids[1] != "near" {
		t.Fatalf("ranked ids = %v, want [self near]", ids)
	}
}
