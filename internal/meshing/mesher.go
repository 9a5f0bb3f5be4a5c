package meshing

import (
	"github.com/annel0/voxel-engine/internal/block"
	"github.com/annel0/voxel-engine/internal/world"
)

// direction описывает одну из шести граней для жадного обхода.
// Оси (axisU, axisV) — циклические преемники axisL, поэтому порядок
// углов (c00, cU, cUV, cV) дает CCW-обмотку для положительных граней.
type direction struct {
	normal int // индекс нормали и одновременно грань атласа
	axisL  int // ось слоев (вдоль нормали): 0=x, 1=y, 2=z
	axisU  int
	axisV  int
	sign   int // +1 или -1 вдоль axisL
}

var directions = [6]direction{
	{NormalEast, 0, 1, 2, +1},
	{NormalWest, 0, 1, 2, -1},
	{NormalTop, 1, 2, 0, +1},
	{NormalBottom, 1, 2, 0, -1},
	{NormalNorth, 2, 0, 1, +1},
	{NormalSouth, 2, 0, 1, -1},
}

// maskCell — ячейка маски граней одного слоя
type maskCell struct {
	id      block.BlockID
	slot    uint8
	present bool
}

// BuildMesh строит полный результат меширования чанка: жадная сетка
// LOD 0, прореженные LOD-уровни и водные меши по каждому подчанку.
// Чанк не мутируется; отсутствующие соседи читаются как воздух.
func BuildMesh(c *world.Chunk, neighbors BlockSampler, light LightSampler) *MeshResult {
	view := newChunkView(c, neighbors, light)
	result := &MeshResult{Coords: c.Coords}

	for sub := 0; sub < world.SubChunkCount; sub++ {
		mesh := &result.SubChunks[sub]
		mesh.Index = sub

		if c.SubChunkEmpty(sub) {
			mesh.IsEmpty = true
			continue
		}

		baseY := sub * world.SubChunkSize
		mesh.LODs[0] = buildGreedySubChunk(view, baseY)
		for lod := 1; lod < LODLevels; lod++ {
			mesh.LODs[lod] = buildLODSubChunk(view, baseY, lod)
			// Огрубление не должно стоить дороже предыдущего уровня:
			// на плоском рельефе жадная сетка компактнее прореженной
			if len(mesh.LODs[lod]) > len(mesh.LODs[lod-1]) {
				mesh.LODs[lod] = mesh.LODs[lod-1]
			}
		}

		if c.SubChunkHasWater(sub) {
			mesh.HasWater = true
			mesh.Water = buildWaterSubChunk(view, baseY)
		}

		empty := len(mesh.Water) == 0
		for lod := 0; lod < LODLevels; lod++ {
			if len(mesh.LODs[lod]) > 0 {
				empty = false
				break
			}
		}
		mesh.IsEmpty = empty
	}

	return result
}

// buildGreedySubChunk выполняет жадное меширование одного подчанка.
// Классическая схема Лысенко: по каждому направлению и слою строится
// маска 16×16, затем прямоугольники расширяются сначала в ширину,
// потом в высоту, пока совпадает вся новая строка.
func buildGreedySubChunk(view *chunkView, baseY int) []PackedVertex {
	var out []PackedVertex
	var mask [world.SubChunkSize * world.SubChunkSize]maskCell

	for _, dir := range directions {
		for layer := 0; layer < world.SubChunkSize; layer++ {
			// Заполнение маски видимых граней
			populated := false
			for u := 0; u < world.SubChunkSize; u++ {
				for v := 0; v < world.SubChunkSize; v++ {
					cell := cubeCoords(dir, layer, u, v)
					x, y, z := toLocal(cell, baseY)
					id := view.Block(x, y, z)
					props := block.Props(id)
					if !props.Solid {
						mask[u*world.SubChunkSize+v] = maskCell{}
						continue
					}
					nb := cell
					nb[dir.axisL] += dir.sign
					nx, ny, nz := toLocal(nb, baseY)
					if view.Opaque(nx, ny, nz) {
						mask[u*world.SubChunkSize+v] = maskCell{}
						continue
					}
					mask[u*world.SubChunkSize+v] = maskCell{
						id:      id,
						slot:    block.FaceSlot(id, dir.normal),
						present: true,
					}
					populated = true
				}
			}
			if !populated {
				continue
			}

			// Жадное слияние
			for i := 0; i < len(mask); i++ {
				if !mask[i].present {
					continue
				}
				u0 := i / world.SubChunkSize
				v0 := i % world.SubChunkSize
				ref := mask[i]

				// Ширина вдоль v
				width := 1
				for v1 := v0 + 1; v1 < world.SubChunkSize; v1++ {
					c := mask[u0*world.SubChunkSize+v1]
					if !c.present || c.id != ref.id || c.slot != ref.slot {
						break
					}
					width++
				}
				// Высота вдоль u: принимается только целая строка
				height := 1
			grow:
				for u1 := u0 + 1; u1 < world.SubChunkSize; u1++ {
					for v1 := v0; v1 < v0+width; v1++ {
						c := mask[u1*world.SubChunkSize+v1]
						if !c.present || c.id != ref.id || c.slot != ref.slot {
							break grow
						}
					}
					height++
				}

				out = emitQuad(out, view, dir, baseY, layer, u0, v0, width, height, ref.slot)

				for u1 := u0; u1 < u0+height; u1++ {
					for v1 := v0; v1 < v0+width; v1++ {
						mask[u1*world.SubChunkSize+v1] = maskCell{}
					}
				}
			}
		}
	}

	return out
}

// cubeCoords переводит (слой, u, v) в координаты куба подчанка
func cubeCoords(dir direction, layer, u, v int) [3]int {
	var c [3]int
	c[dir.axisL] = layer
	c[dir.axisU] = u
	c[dir.axisV] = v
	return c
}

// toLocal переводит координаты куба подчанка в локальные координаты чанка
func toLocal(c [3]int, baseY int) (int, int, int) {
	return c[0], baseY + c[1], c[2]
}

// corner — один угол квада с предрасчитанными затенением и светом
type corner struct {
	pos   [3]int // координаты куба подчанка, 0..16
	uvU   int
	uvV   int
	ao    uint8
	light uint8
}

// emitQuad формирует 4 угла прямоугольника, считает для каждого AO и
// свет, и выкладывает два треугольника. Квады с перепадом затенения
// по диагонали разворачиваются на другую диагональ.
func emitQuad(out []PackedVertex, view *chunkView, dir direction, baseY, layer, u0, v0, width, height int, slot uint8) []PackedVertex {
	plane := layer
	if dir.sign > 0 {
		plane++
	}

	makeCorner := func(pu, pv int) corner {
		var pos [3]int
		pos[dir.axisL] = plane
		pos[dir.axisU] = pu
		pos[dir.axisV] = pv

		// Ячейка маски, примыкающая к углу изнутри прямоугольника
		cu, du := pu, -1
		if pu > u0 {
			cu, du = pu-1, 1
		}
		cv, dv := pv, -1
		if pv > v0 {
			cv, dv = pv-1, 1
		}

		// Внешняя ячейка напротив грани
		outside := cubeCoords(dir, layer, cu, cv)
		outside[dir.axisL] += dir.sign

		side1 := outside
		side1[dir.axisU] += du
		side2 := outside
		side2[dir.axisV] += dv
		diag := side1
		diag[dir.axisV] += dv

		solids := 0
		for _, n := range [3][3]int{side1, side2, diag} {
			if view.SolidAt(toLocal(n, baseY)) {
				solids++
			}
		}

		// Свет угла: максимум четырех внешних ячеек, касающихся угла
		light := uint8(0)
		for _, n := range [4][3]int{outside, side1, side2, diag} {
			if l := view.Light(toLocal(n, baseY)); l > light {
				light = l
			}
		}

		return corner{
			pos:   pos,
			uvU:   pu - u0,
			uvV:   pv - v0,
			ao:    scaleAO(3 - solids),
			light: light,
		}
	}

	c00 := makeCorner(u0, v0)
	cU := makeCorner(u0+height, v0)
	cUV := makeCorner(u0+height, v0+width)
	cV := makeCorner(u0, v0+width)

	// Обмотка CCW наружу: для отрицательных граней порядок обратный
	var q [4]corner
	if dir.sign > 0 {
		q = [4]corner{c00, cU, cUV, cV}
	} else {
		q = [4]corner{c00, cV, cUV, cU}
	}

	pack := func(c corner) PackedVertex {
		return PackedVertex{
			X:      packPosition(c.pos[0]),
			Y:      packPosition(c.pos[1]),
			Z:      packPosition(c.pos[2]),
			U:      packUV(c.uvU),
			V:      packUV(c.uvV),
			Normal: uint8(dir.normal),
			AO:     c.ao,
			Light:  scaleLight(c.light),
			Slot:   slot,
		}
	}

	// Разворот диагонали при асимметрии затенения
	if int(q[0].ao)+int(q[2].ao) > int(q[1].ao)+int(q[3].ao) {
		out = append(out,
			pack(q[1]), pack(q[2]), pack(q[3]),
			pack(q[3]), pack(q[0]), pack(q[1]),
		)
	} else {
		out = append(out,
			pack(q[0]), pack(q[1]), pack(q[2]),
			pack(q[2]), pack(q[3]), pack(q[0]),
		)
	}
	return out
}
