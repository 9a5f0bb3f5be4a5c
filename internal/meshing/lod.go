package meshing

import (
	"github.com/annel0/voxel-engine/internal/block"
	"github.com/annel0/voxel-engine/internal/world"
)

// buildLODSubChunk строит прореженный меш подчанка: сетка сэмплируется
// с шагом 2^lod, на каждую видимую грань сэмпла выкладывается один
// увеличенный квад. Без жадного слияния; слот текстуры всегда от
// верхней грани — с расстояния детали граней неразличимы.
func buildLODSubChunk(view *chunkView, baseY, lod int) []PackedVertex {
	scale := 1 << lod
	samples := world.SubChunkSize / scale
	var out []PackedVertex

	for _, dir := range directions {
		for layer := 0; layer < samples; layer++ {
			for u := 0; u < samples; u++ {
				for v := 0; v < samples; v++ {
					cell := cubeCoords(dir, layer*scale, u*scale, v*scale)
					x, y, z := toLocal(cell, baseY)
					id := view.Block(x, y, z)
					if !block.IsSolid(id) {
						continue
					}
					// Сосед на расстоянии шага вдоль нормали
					nb := cell
					nb[dir.axisL] += dir.sign * scale
					nx, ny, nz := toLocal(nb, baseY)
					if view.Opaque(nx, ny, nz) {
						continue
					}
					out = emitLODQuad(out, dir, cell, scale, block.FaceSlot(id, block.FaceTop))
				}
			}
		}
	}

	return out
}

// emitLODQuad выкладывает один квад со стороной scale без затенения:
// AO на дальних дистанциях не читается, байт остается максимальным
func emitLODQuad(out []PackedVertex, dir direction, cell [3]int, scale int, slot uint8) []PackedVertex {
	base := cell
	if dir.sign > 0 {
		base[dir.axisL] += scale
	}

	makeVertex := func(du, dv int) PackedVertex {
		pos := base
		pos[dir.axisU] += du
		pos[dir.axisV] += dv
		return PackedVertex{
			X:      packPosition(pos[0]),
			Y:      packPosition(pos[1]),
			Z:      packPosition(pos[2]),
			U:      packUV(du),
			V:      packUV(dv),
			Normal: uint8(dir.normal),
			AO:     255,
			Light:  scaleLight(world.MaxLightLevel),
			Slot:   slot,
		}
	}

	var q [4]PackedVertex
	if dir.sign > 0 {
		q = [4]PackedVertex{
			makeVertex(0, 0), makeVertex(scale, 0),
			makeVertex(scale, scale), makeVertex(0, scale),
		}
	} else {
		q = [4]PackedVertex{
			makeVertex(0, 0), makeVertex(0, scale),
			makeVertex(scale, scale), makeVertex(scale, 0),
		}
	}

	return append(out, q[0], q[1], q[2], q[2], q[3], q[0])
}
