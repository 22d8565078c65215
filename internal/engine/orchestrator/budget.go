package orchestrator

import "go.trai.ch/brief/internal/core/domain"

// applyBudget keeps files in rank order while they fit in budget tokens.
// A chunked file that does not fit whole keeps the leading chunks that do.
// Later, smaller files may still fit. A zero budget keeps everything.
func applyBudget(files []domain.SelectedFile, budget int) ([]domain.SelectedFile, []string, int) {
	kept := make([]domain.SelectedFile, 0, len(files))
	var omitted []string
	total := 0

	for i := range files {
		file := files[i]

		if budget <= 0 || total+file.TokenEstimate <= budget {
			kept = append(kept, file)
			total += file.TokenEstimate
			continue
		}

		if file.IsChunked() {
			if partial, ok := truncateChunks(file, budget-total); ok {
				kept = append(kept, partial)
				total += partial.TokenEstimate
				continue
			}
		}

		omitted = append(omitted, file.Path)
	}

	return kept, omitted, total
}

// truncateChunks keeps the leading chunks of file fitting in remaining tokens.
func truncateChunks(file domain.SelectedFile, remaining int) (domain.SelectedFile, bool) {
	used := 0
	n := 0
	for _, chunk := range file.Chunks {
		cost := domain.EstimateTokens(chunk.Content)
		if used+cost > remaining {
			break
		}
		used += cost
		n++
	}
	if n == 0 {
		return file, false
	}

	file.Chunks = file.Chunks[:n:n]
	file.TokenEstimate = used
	file.Truncated = true
	return file, true
}

// estimate returns the token estimate of what the file carries.
func estimate(file *domain.SelectedFile) int {
	if !file.IsChunked() {
		return domain.EstimateTokens(file.Content)
	}
	total := 0
	for _, chunk := range file.Chunks {
		total += domain.EstimateTokens(chunk.Content)
	}
	return total
}
