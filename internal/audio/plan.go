package audio

import "github.com/nguyentantai21042004/audio-summarizer/internal/models"

// PlanChunks partitions [0, totalMs) into ceil(totalMs/chunkMs) contiguous
// intervals of at most chunkMs. Paths are left empty.
func PlanChunks(totalMs, chunkMs int64) []models.Chunk {
	if totalMs <= 0 || chunkMs <= 0 {
		return nil
	}

	count := (totalMs + chunkMs - 1) / chunkMs
	chunks := make([]models.Chunk, 0, count)
	for i := int64(0); i < count; i++ {
		start := i * chunkMs
		end := min(start+chunkMs, totalMs)
		chunks = append(chunks, models.Chunk{
			Index:   int(i),
			StartMs: start,
			EndMs:   end,
		})
	}

	return chunks
}
