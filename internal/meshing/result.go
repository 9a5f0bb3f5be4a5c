package meshing

import (
	"github.com/annel0/voxel-engine/internal/block"
	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world"
)

// LODLevels — число уровней детализации, включая полный (LOD 0)
const LODLevels = 3

// BlockSampler возвращает блок по мировым координатам.
// Вне загруженных чанков — воздух.
type BlockSampler func(wx, wy, wz int) block.BlockID

// LightSampler возвращает блочный свет 0..15 по мировым координатам
type LightSampler func(wx, wy, wz int) uint8

// MeshRequest — задание на построение меша. Чанк и соседи берутся
// взаймы только на чтение; сэмплеры должны переживать запрос.
type MeshRequest struct {
	Chunk     *world.Chunk
	Neighbors BlockSampler // nil — все соседи считаются воздухом
	Light     LightSampler // nil — свет вне чанка равен нулю
}

// SubChunkMesh — результат меширования одного подчанка 16×16×16
type SubChunkMesh struct {
	Index    int  // номер подчанка снизу вверх, 0..15
	IsEmpty  bool // ни одной вершины ни на одном уровне
	HasWater bool
	LODs     [LODLevels][]PackedVertex
	Water    []WaterVertex
}

// VertexCount возвращает число вершин уровня детализации
func (s *SubChunkMesh) VertexCount(lod int) int {
	if lod < 0 || lod >= LODLevels {
		return 0
	}
	return len(s.LODs[lod])
}

// MeshResult — полный результат меширования чанка
type MeshResult struct {
	Coords    vec.Vec2
	SubChunks [world.SubChunkCount]SubChunkMesh
}
