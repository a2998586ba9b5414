// 指示: miu200521358
package minteractor

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuildDefaultOutputPath(t *testing.T) {
	got := BuildDefaultOutputPath(filepath.Join("work", "Avatar_Boy_Sword_Aether.glb"))
	expected := filepath.Join("work", "Avatar_Boy_Sword_Aether_vrc.glb")
	if got != expected {
		t.Fatalf("output path mismatch: %s != %s", got, expected)
	}
}

func TestBuildDefaultOutputPathEmptyBase(t *testing.T) {
	if got := BuildDefaultOutputPath(".glb"); got != "" {
		t.Fatalf("empty base should yield empty path: %s", got)
	}
}

func TestResolveGlbOutputPathFallsBackToDefault(t *testing.T) {
	got, err := resolveGlbOutputPath(filepath.Join("work", "model.glb"), "")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	expected := filepath.Join("work", "model_vrc.glb")
	if got != expected {
		t.Fatalf("output path mismatch: %s != %s", got, expected)
	}
}

func TestResolveGlbOutputPathRejectsOtherExtensions(t *testing.T) {
	if _, err := resolveGlbOutputPath("model.glb", "model.vrm"); err == nil {
		t.Fatalf("expected error for non-glb extension")
	}
}

func TestResolveGlbOutputPathAcceptsUppercaseExtension(t *testing.T) {
	got, err := resolveGlbOutputPath("model.glb", "model.GLB")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if got != "model.GLB" {
		t.Fatalf("output path mismatch: %s", got)
	}
}

func TestPrepareOutputLayoutCreatesDirectories(t *testing.T) {
	tempDir := t.TempDir()
	outputPath := filepath.Join(tempDir, "nested", "deep", "model.glb")
	if err := prepareOutputLayout(outputPath); err != nil {
		t.Fatalf("prepare failed: %v", err)
	}
	info, err := os.Stat(filepath.Dir(outputPath))
	if err != nil {
		t.Fatalf("output directory missing: %v", err)
	}
	if !info.IsDir() {
		t.Fatalf("output directory is not a directory")
	}
}
