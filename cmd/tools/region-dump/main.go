// region-dump генерирует квадрат чанков и сохраняет его в сжатый
// снимок. Утилита для отладки генератора: одинаковые seed и радиус
// обязаны давать одинаковый SHA-256 на любой платформе.
package main

import (
	"bufio"
	"crypto/sha256"
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/klauspost/compress/gzip"

	"github.com/annel0/voxel-engine/internal/logging"
	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world"
)

// Магия и версия формата снимка
const (
	snapshotMagic   = "VXRD"
	snapshotVersion = 1
)

func main() {
	seed := flag.Int64("seed", 12345, "зерно мира")
	radius := flag.Int("radius", 4, "радиус квадрата в чанках")
	out := flag.String("out", "region.vxrd.gz", "файл снимка")
	flag.Parse()

	if err := logging.InitLogger(); err != nil {
		log.Fatalf("ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseLogger()

	if err := dumpRegion(*seed, *radius, *out); err != nil {
		logging.Error("Ошибка выгрузки региона: %v", err)
		os.Exit(1)
	}
}

// dumpRegion генерирует чанки в порядке строк и пишет снимок
func dumpRegion(seed int64, radius int, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("создание файла снимка: %w", err)
	}
	defer file.Close()

	// Дайджест считается по сжатому потоку: он и есть артефакт
	digest := sha256.New()
	buffered := bufio.NewWriter(io.MultiWriter(file, digest))

	gz, err := gzip.NewWriterLevel(buffered, gzip.BestCompression)
	if err != nil {
		return fmt.Errorf("инициализация gzip: %w", err)
	}

	if err := writeHeader(gz, seed, radius); err != nil {
		return err
	}

	gen := world.NewTerrainGenerator(seed)
	side := 2*radius + 1
	for cz := -radius; cz <= radius; cz++ {
		for cx := -radius; cx <= radius; cx++ {
			chunk := gen.Generate(vec.Vec2{X: cx, Z: cz})
			if err := writeChunk(gz, chunk); err != nil {
				return fmt.Errorf("чанк (%d,%d): %w", cx, cz, err)
			}
		}
	}

	if err := gz.Close(); err != nil {
		return fmt.Errorf("завершение gzip: %w", err)
	}
	if err := buffered.Flush(); err != nil {
		return fmt.Errorf("сброс буфера: %w", err)
	}

	logging.Info("Снимок региона: %d чанков, seed=%d", side*side, seed)
	fmt.Printf("sha256: %x\n", digest.Sum(nil))
	return nil
}

// writeHeader пишет заголовок снимка
func writeHeader(w io.Writer, seed int64, radius int) error {
	if _, err := w.Write([]byte(snapshotMagic)); err != nil {
		return err
	}
	for _, v := range []uint32{snapshotVersion, uint32(radius)} {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	return binary.Write(w, binary.LittleEndian, seed)
}

// writeChunk сериализует координаты и массив блоков чанка.
// Уровни воды и света выводимы из блоков, в снимок не входят.
func writeChunk(w io.Writer, chunk *world.Chunk) error {
	for _, v := range []int32{int32(chunk.Coords.X), int32(chunk.Coords.Z)} {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return err
		}
	}

	blocks := chunk.BlockData()
	buf := make([]byte, len(blocks)*2)
	for i, id := range blocks {
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(id))
	}
	_, err := w.Write(buf)
	return err
}
