// 指示: miu200521358
package minteractor

import (
	"testing"

	"github.com/miu200521358/mu_hoyo2vrc/pkg/domain/mmath"
	"github.com/miu200521358/mu_hoyo2vrc/pkg/domain/model"
)

func meshWithKey(t *testing.T, data *model.Model, meshName, keyName string, positions, offsets []mmath.Vec3) *model.Mesh {
	t.Helper()
	mesh := &model.Mesh{Name: meshName}
	for _, position := range positions {
		mesh.Vertices = append(mesh.Vertices, &model.Vertex{Position: position})
	}
	if keyName != "" {
		mesh.ShapeKeys = append(mesh.ShapeKeys, &model.ShapeKey{Name: keyName, Offsets: offsets})
	}
	if err := data.Meshes.Append(mesh); err != nil {
		t.Fatalf("append mesh failed: %v", err)
	}
	return mesh
}

func TestGenerateShapeKeysFallbackSubstitution(t *testing.T) {
	data := model.NewModel("test")
	mesh := meshWithKey(t, data, "Face", "A",
		[]mmath.Vec3{mmath.NewVec3(0, 0, 0)},
		[]mmath.Vec3{mmath.NewVec3(0, 0, 0.5)})

	generateShapeKeys(data, shapeKeyPlan{
		required:  []requiredShapeKeys{{mesh: "Face", keys: []string{"O"}}},
		fallbacks: []shapeKeyFallback{{missingKey: "O", fallbackKey: "A", value: 0.5}},
	})

	substituted, ok := mesh.ShapeKeyByName("O")
	if !ok {
		t.Fatalf("missing key should be substituted")
	}
	if !substituted.Offsets[0].NearEquals(mmath.NewVec3(0, 0, 0.25), 1e-9) {
		t.Fatalf("substituted offset mismatch: %+v", substituted.Offsets[0])
	}
	if len(data.Warnings) != 0 {
		t.Fatalf("substitution must not warn: %v", data.Warnings)
	}
}

func TestGenerateShapeKeysWarnsWithoutFallback(t *testing.T) {
	data := model.NewModel("test")
	meshWithKey(t, data, "Face", "A",
		[]mmath.Vec3{mmath.NewVec3(0, 0, 0)},
		[]mmath.Vec3{mmath.NewVec3(0, 0, 0.5)})

	generateShapeKeys(data, shapeKeyPlan{
		required: []requiredShapeKeys{{mesh: "Face", keys: []string{"O"}}},
	})

	if !hasWarning(data, model.ConversionWarningShapeKeySourceMissing) {
		t.Fatalf("missing source warning expected: %v", data.Warnings)
	}
}

func TestCreateMixedShapeKeySumsSameMeshSources(t *testing.T) {
	data := model.NewModel("test")
	mesh := meshWithKey(t, data, "Face", "A",
		[]mmath.Vec3{mmath.NewVec3(0, 0, 0), mmath.NewVec3(0.1, 0, 0)},
		[]mmath.Vec3{mmath.NewVec3(0, 0, 0.4), mmath.NewVec3(0, 0, 0.2)})
	mesh.ShapeKeys = append(mesh.ShapeKeys, &model.ShapeKey{
		Name:    "O",
		Offsets: []mmath.Vec3{mmath.NewVec3(0, 0.2, 0), mmath.NewVec3(0, 0.4, 0)},
	})

	generateShapeKeys(data, shapeKeyPlan{
		generated: []generatedShapeKey{{
			name: "vrc.v_aa",
			sources: []shapeKeySource{
				{mesh: "Face", key: "A", value: 1.0},
				{mesh: "Face", key: "O", value: 0.5},
			},
		}},
	})

	mixed, ok := mesh.ShapeKeyByName("vrc.v_aa")
	if !ok {
		t.Fatalf("mixed key missing")
	}
	if !mixed.Offsets[0].NearEquals(mmath.NewVec3(0, 0.1, 0.4), 1e-9) {
		t.Fatalf("mixed offset mismatch: %+v", mixed.Offsets[0])
	}
	if !mixed.Offsets[1].NearEquals(mmath.NewVec3(0, 0.2, 0.2), 1e-9) {
		t.Fatalf("mixed offset mismatch: %+v", mixed.Offsets[1])
	}
}

func TestCreateMixedShapeKeyTransfersAcrossMeshes(t *testing.T) {
	data := model.NewModel("test")
	target := meshWithKey(t, data, "Face", "",
		[]mmath.Vec3{mmath.NewVec3(0, 0, 0), mmath.NewVec3(1, 0, 0)}, nil)
	meshWithKey(t, data, "Brow", "BrowDown",
		[]mmath.Vec3{mmath.NewVec3(1, 0, 0), mmath.NewVec3(5, 5, 5)},
		[]mmath.Vec3{mmath.NewVec3(0, 0, -0.3), mmath.NewVec3(0, 0, -0.9)})

	generateShapeKeys(data, shapeKeyPlan{
		generated: []generatedShapeKey{{
			name: "Angry",
			sources: []shapeKeySource{
				{mesh: "Face", key: "BrowDown", value: 1.0},
				{mesh: "Brow", key: "BrowDown", value: 1.0},
			},
		}},
	})

	mixed, ok := target.ShapeKeyByName("Angry")
	if !ok {
		t.Fatalf("transferred key missing")
	}
	if !mixed.Offsets[0].NearEquals(mmath.NewVec3(0, 0, 0), 1e-9) {
		t.Fatalf("unmatched vertex should keep a zero offset: %+v", mixed.Offsets[0])
	}
	if !mixed.Offsets[1].NearEquals(mmath.NewVec3(0, 0, -0.3), 1e-9) {
		t.Fatalf("matched vertex should receive the source offset: %+v", mixed.Offsets[1])
	}
}

func TestCreateMixedShapeKeyOverwritesExistingKey(t *testing.T) {
	data := model.NewModel("test")
	mesh := meshWithKey(t, data, "Face", "A",
		[]mmath.Vec3{mmath.NewVec3(0, 0, 0)},
		[]mmath.Vec3{mmath.NewVec3(0, 0, 0.4)})
	mesh.ShapeKeys = append(mesh.ShapeKeys, &model.ShapeKey{
		Name:    "vrc.v_aa",
		Offsets: []mmath.Vec3{mmath.NewVec3(9, 9, 9)},
	})

	generateShapeKeys(data, shapeKeyPlan{
		generated: []generatedShapeKey{{
			name:    "vrc.v_aa",
			sources: []shapeKeySource{{mesh: "Face", key: "A", value: 0.5}},
		}},
	})

	mixed, _ := mesh.ShapeKeyByName("vrc.v_aa")
	if !mixed.Offsets[0].NearEquals(mmath.NewVec3(0, 0, 0.2), 1e-9) {
		t.Fatalf("existing key should be overwritten: %+v", mixed.Offsets[0])
	}
	count := 0
	for _, key := range mesh.ShapeKeys {
		if key.Name == "vrc.v_aa" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("overwrite must not duplicate the key: %d", count)
	}
}

func TestBakeExpressionShapeKeys(t *testing.T) {
	data := model.NewModel("test")
	mesh := meshWithKey(t, data, "Face", "",
		[]mmath.Vec3{mmath.NewVec3(0, 0, 1.5), mmath.NewVec3(0.1, 0, 1.5)}, nil)
	mesh.Vertices[0].SetWeight("Mouth_01", 1.0)
	mesh.Vertices[1].SetWeight("Mouth_01", 0.5)
	mesh.Vertices[1].SetWeight("Brow_01", 0.5)

	data.Expressions = append(data.Expressions, &model.ExpressionPose{
		Name: "Smile",
		Translations: map[string]mmath.Vec3{
			"Mouth_01": mmath.NewVec3(0, 0, 0.02),
		},
	})

	bakeExpressionShapeKeys(data, "Face")

	key, ok := mesh.ShapeKeyByName("Smile")
	if !ok {
		t.Fatalf("baked shape key expected")
	}
	if !key.Offsets[0].NearEquals(mmath.NewVec3(0, 0, 0.02), 1e-9) {
		t.Fatalf("fully weighted offset mismatch: %+v", key.Offsets[0])
	}
	if !key.Offsets[1].NearEquals(mmath.NewVec3(0, 0, 0.01), 1e-9) {
		t.Fatalf("half weighted offset mismatch: %+v", key.Offsets[1])
	}
	if data.Expressions != nil {
		t.Fatalf("expressions should be consumed after bake")
	}
}

func TestBakeExpressionShapeKeysSkipsUnweightedPose(t *testing.T) {
	data := model.NewModel("test")
	mesh := meshWithKey(t, data, "Face", "",
		[]mmath.Vec3{mmath.NewVec3(0, 0, 1.5)}, nil)
	mesh.Vertices[0].SetWeight("Mouth_01", 1.0)

	data.Expressions = append(data.Expressions, &model.ExpressionPose{
		Name: "Angry",
		Translations: map[string]mmath.Vec3{
			"Jaw_01": mmath.NewVec3(0, 0, 0.02),
		},
	})

	bakeExpressionShapeKeys(data, "Face")

	if _, ok := mesh.ShapeKeyByName("Angry"); ok {
		t.Fatalf("pose without matching weights must not bake")
	}
}
