package stremio

import (
	"context"
	"testing"

	"github.com/webtor-io/recent-catalog/services/common"
)

func TestManifest_GetManifest(t *testing.T) {
	manifest := NewManifest()

	response, err := manifest.GetManifest(context.Background())
	if err != nil {
		t.Fatalf("GetManifest failed: %v", err)
	}
	if response == nil {
		t.Fatal("GetManifest returned nil response")
	}

	if response.Id != manifestID {
		t.Errorf("Expected ID '%s', got '%s'", manifestID, response.Id)
	}
	if response.Version != common.Version {
		t.Errorf("Expected Version '%s', got '%s'", common.Version, response.Version)
	}

	expectedTypes := []string{"movie", "series"}
	if len(response.Types) != len(expectedTypes) {
		t.Fatalf("Expected %d types, got %d", len(expectedTypes), len(response.Types))
	}
	for i, expectedType := range expectedTypes {
		if response.Types[i] != expectedType {
			t.Errorf("Expected type[%d] '%s', got '%s'", i, expectedType, response.Types[i])
		}
	}

	expectedCatalogs := []struct{ Type, Id string }{
		{"movie", movieCatalogID},
		{"series", seriesCatalogID},
	}
	if len(response.Catalogs) != len(expectedCatalogs) {
		t.Fatalf("Expected %d catalogs, got %d", len(expectedCatalogs), len(response.Catalogs))
	}
	for i, expected := range expectedCatalogs {
		got := response.Catalogs[i]
		if got.Type != expected.Type || got.Id != expected.Id {
			t.Errorf("Expected catalog[%d] %s/%s, got %s/%s", i, expected.Type, expected.Id, got.Type, got.Id)
		}
	}

	if len(response.Resources) != 1 || response.Resources[0] != "catalog" {
		t.Errorf("Expected resources [catalog], got %v", response.Resources)
	}
	if len(response.IdPrefixes) != 1 || response.IdPrefixes[0] != idPrefix {
		t.Errorf("Expected id prefixes [%s], got %v", idPrefix, response.IdPrefixes)
	}
}

func TestManifest_CatalogExtras(t *testing.T) {
	response, err := NewManifest().GetManifest(context.Background())
	if err != nil {
		t.Fatalf("GetManifest failed: %v", err)
	}
	for _, cat := range response.Catalogs {
		var genre *ExtraItem
		for i := range cat.Extra {
			if cat.Extra[i].Name == "genre" {
				genre = &cat.Extra[i]
			}
		}
		if genre == nil {
			t.Fatalf("Catalog %s has no genre extra", cat.Id)
		}
		if len(genre.Options) != 7 {
			t.Errorf("Expected 7 genre options, got %d", len(genre.Options))
		}
		if genre.IsRequired {
			t.Error("Genre extra should be optional")
		}
	}
}
