package meshing

import (
	"github.com/annel0/voxel-engine/internal/block"
	"github.com/annel0/voxel-engine/internal/world"
)

// Нормали шести граней в порядке индексов
var faceNormals = [6][3]float32{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

// buildWaterSubChunk мешит воду и лаву подчанка. Квады не сливаются:
// при разных уровнях воды соседние ячейки имеют разную высоту
// поверхности, а поверхностным эффектам нужны отдельные нормали.
func buildWaterSubChunk(view *chunkView, baseY int) []WaterVertex {
	var out []WaterVertex

	for ly := 0; ly < world.SubChunkSize; ly++ {
		y := baseY + ly
		for x := 0; x < world.ChunkSizeX; x++ {
			for z := 0; z < world.ChunkSizeZ; z++ {
				id := view.Block(x, y, z)
				if !block.IsLiquid(id) {
					continue
				}

				// Высота поверхности из уровня воды: источник — полный куб
				top := float32(1.0)
				if id == block.WaterID {
					level := view.chunk.WaterLevel(x, y, z)
					if level > 0 && level < world.WaterSource {
						top = float32(level) / float32(world.WaterSource)
					}
				}

				for face, d := range [6][3]int{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}} {
					nid := view.Block(x+d[0], y+d[1], z+d[2])
					// Грань видна на контакте с не-жидкостью и не-заслоном
					if block.IsLiquid(nid) {
						continue
					}
					nprops := block.Props(nid)
					if nprops.Solid && !nprops.Transparent {
						continue
					}
					out = appendWaterFace(out, x, ly, z, face, top)
				}
			}
		}
	}

	return out
}

// appendWaterFace выкладывает два треугольника одной грани водной ячейки.
// Координаты локальны подчанку, как у упакованных вершин.
func appendWaterFace(out []WaterVertex, x, y, z, face int, top float32) []WaterVertex {
	fx, fy, fz := float32(x), float32(y), float32(z)
	n := faceNormals[face]

	var q [4][3]float32
	switch face {
	case NormalEast:
		q = [4][3]float32{
			{fx + 1, fy, fz}, {fx + 1, fy + top, fz},
			{fx + 1, fy + top, fz + 1}, {fx + 1, fy, fz + 1},
		}
	case NormalWest:
		q = [4][3]float32{
			{fx, fy, fz + 1}, {fx, fy + top, fz + 1},
			{fx, fy + top, fz}, {fx, fy, fz},
		}
	case NormalTop:
		q = [4][3]float32{
			{fx, fy + top, fz}, {fx, fy + top, fz + 1},
			{fx + 1, fy + top, fz + 1}, {fx + 1, fy + top, fz},
		}
	case NormalBottom:
		q = [4][3]float32{
			{fx, fy, fz}, {fx + 1, fy, fz},
			{fx + 1, fy, fz + 1}, {fx, fy, fz + 1},
		}
	case NormalNorth:
		q = [4][3]float32{
			{fx + 1, fy, fz + 1}, {fx + 1, fy + top, fz + 1},
			{fx, fy + top, fz + 1}, {fx, fy, fz + 1},
		}
	default: // NormalSouth
		q = [4][3]float32{
			{fx, fy, fz}, {fx, fy + top, fz},
			{fx + 1, fy + top, fz}, {fx + 1, fy, fz},
		}
	}

	uv := [4][2]float32{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	for _, i := range [6]int{0, 1, 2, 2, 3, 0} {
		out = append(out, WaterVertex{
			X: q[i][0], Y: q[i][1], Z: q[i][2],
			NX: n[0], NY: n[1], NZ: n[2],
			U: uv[i][0], V: uv[i][1],
		})
	}
	return out
}
