package feature

import (
	"strings"
	"testing"
)

func TestExtract_Lengths(t *testing.T) {
	img := uniformImage(30, 30, 50, 100, 150)
	tests := []struct {
		kind Kind
		want int
	}{
		{KindCenterPatch, 147},
		{KindHistogram, 256},
		{KindSplitHistogram, 128},
		{KindColorTexture, 272},
		{KindBlueScene, 209},
	}
	for _, tc := range tests {
		vec, err := Extract(img, tc.kind, Params{})
		if err != nil {
			t.Fatalf("Extract(%s) failed: %v", tc.kind, err)
		}
		if len(vec) != tc.want {
			t.Fatalf("Extract(%s) length = %d, want %d", tc.kind, len(vec), tc.want)
		}
	}
}

func TestExtract_CustomBins(t *testing.T) {
	img := uniformImage(20, 20, 10, 20, 30)
	vec, err := Extract(img, KindHistogram, Params{HistogramBins: 4})
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(vec) != 16 {
		t.Fatalf("length = %d, want 16 for 4 bins", len(vec))
	}
}

func TestExtract_Embedding(t *testing.T) {
	_, err := Extract(uniformImage(10, 10, 1, 2, 3), KindEmbedding, Params{})
	if err == nil || !strings.Contains(err.Error(), "external") {
		t.Fatalf("Extract(KindEmbedding) error = %v, want external-service error", err)
	}
}

func TestExtract_UnknownKind(t *testing.T) {
	if _, err := Extract(uniformImage(10, 10, 1, 2, 3), Kind(99), Params{}); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestKindString(t *testing.T) {
	if got := KindBlueScene.String(); got != "blue-scene" {
		t.Fatalf("KindBlueScene.String() = %q, want %q", got, "blue-scene")
	}
	if got := Kind(42).String(); got != "kind(42)" {
		t.Fatalf("Kind(42).String() = %q, want %q", got, "kind(42)")
	}
}
