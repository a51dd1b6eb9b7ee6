package tool

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadStoreCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	store, err := LoadStore(path)
	if err != nil {
		t.Fatalf("Expected store creation, got %v", err)
	}
	if _, statErr := os.Stat(path); statErr != nil {
		t.Errorf("Settings file should exist after load: %v", statErr)
	}
	if got := store.GetString(SettingModel, DefaultModel); got != DefaultModel {
		t.Errorf("Fresh store should answer the default, got %q", got)
	}
}

func TestLoadStoreReadsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	data, _ := yaml.Marshal(map[string]string{
		SettingCurrency:      "JPY",
		SettingIncludeImages: "false",
	})
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	store, err := LoadStore(path)
	if err != nil {
		t.Fatalf("Expected load, got %v", err)
	}
	if got := store.GetString(SettingCurrency, DefaultCurrency); got != "JPY" {
		t.Errorf("Expected JPY, got %q", got)
	}
	if store.GetBool(SettingIncludeImages, true) {
		t.Error("Expected include_images false")
	}
}

func TestLoadStoreRejectsDirectory(t *testing.T) {
	if _, err := LoadStore(t.TempDir()); err == nil {
		t.Error("Expected error for a directory path")
	}
}

func TestGetBoolFallsBackOnGarbage(t *testing.T) {
	store := NewMemoryStore()
	store.Set(SettingIncludeImages, "maybe")
	if !store.GetBool(SettingIncludeImages, true) {
		t.Error("Unparseable value should answer the default")
	}
}

func TestSetPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	store, err := LoadStore(path)
	if err != nil {
		t.Fatal(err)
	}
	store.Set(SettingModel, "gpt-5.2")

	reloaded, err := LoadStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := reloaded.GetString(SettingModel, DefaultModel); got != "gpt-5.2" {
		t.Errorf("Expected persisted value, got %q", got)
	}
}

func TestMemoryStoreNeverTouchesDisk(t *testing.T) {
	store := NewMemoryStore()
	store.Set(SettingModel, "gpt-5.2")
	if got := store.GetString(SettingModel, ""); got != "gpt-5.2" {
		t.Errorf("Expected in-memory value, got %q", got)
	}
	if snap := store.Snapshot(); len(snap) != 1 {
		t.Errorf("Expected one stored value, got %d", len(snap))
	}
}
