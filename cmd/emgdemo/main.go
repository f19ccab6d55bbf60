// Command emgdemo builds a small scene — a cube and an extruded square,
// each with their own material — and writes it out as a .glb file, the
// way the teacher's examples/ programs build a scene and hand it to a
// renderer.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/paraforge-go/emg"
)

func main() {
	out := flag.String("out", "emgdemo.glb", "output GLB file path")
	flag.Parse()

	emg.Init()

	cube := emg.NewCubeGeometry()
	cubeMesh := buildMesh(cube, "cube", "cube material")

	tower := emg.NewGeometry()
	if err := emg.GeometryAddSquare(tower, false); err != nil {
		log.Fatalf("add square: %v", err)
	}
	if err := emg.GeometryExtrude(tower, 0, 0, 3); err != nil {
		log.Fatalf("extrude: %v", err)
	}
	towerMesh := buildMesh(tower, "tower", "tower material")

	cubeNode, err := emg.NodeNew("cube")
	if err != nil {
		log.Fatalf("node new: %v", err)
	}
	if err := emg.NodeSetMesh(cubeNode, cubeMesh); err != nil {
		log.Fatalf("node set mesh: %v", err)
	}

	towerNode, err := emg.NodeNew("tower")
	if err != nil {
		log.Fatalf("node new: %v", err)
	}
	if err := emg.NodeSetTranslation(towerNode, 3, 0, 0); err != nil {
		log.Fatalf("node set translation: %v", err)
	}
	if err := emg.NodeSetMesh(towerNode, towerMesh); err != nil {
		log.Fatalf("node set mesh: %v", err)
	}

	if err := emg.SceneAddNode(0, cubeNode); err != nil {
		log.Fatalf("scene add node: %v", err)
	}
	if err := emg.SceneAddNode(0, towerNode); err != nil {
		log.Fatalf("scene add node: %v", err)
	}

	glbBytes, err := emg.Serialize()
	if err != nil {
		log.Fatalf("serialize: %v", err)
	}

	if err := os.WriteFile(*out, glbBytes, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}

	log.Printf("wrote %d bytes to %s", len(glbBytes), *out)
}

// buildMesh packs geometry handle into the scene document, creates a
// material named matName, and returns the index of a new mesh holding a
// single primitive referencing both.
func buildMesh(geomHandle uint32, meshName, matName string) int {
	packed, err := emg.Pack(geomHandle)
	if err != nil {
		log.Fatalf("pack %s: %v", meshName, err)
	}

	material, err := emg.NewMaterial(matName, 0.7, 0.7, 0.75, 1, 0.1, 0.8)
	if err != nil {
		log.Fatalf("new material: %v", err)
	}

	meshIdx, err := emg.MeshNew(meshName)
	if err != nil {
		log.Fatalf("mesh new: %v", err)
	}

	if _, err := emg.MeshAddPrimitive(meshIdx, packed, &material); err != nil {
		log.Fatalf("mesh add primitive: %v", err)
	}

	return meshIdx
}
