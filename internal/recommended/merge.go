package recommended

import (
	"slices"

	"github.com/FrederickOB/test-hydrogen-app/internal/domain/entity"
)

// Merge concatenates primary and secondary, keeps the first occurrence of every product id
// and drops the product identified by currentID. When currentID is not in the list nothing is
// removed. The inputs are not modified.
func Merge(primary, secondary []entity.ProductCard, currentID string) []entity.ProductCard {
	out := make([]entity.ProductCard, 0, len(primary)+len(secondary))
	seen := make(map[string]struct{}, len(primary)+len(secondary))
	for _, list := range [][]entity.ProductCard{primary, secondary} {
		for _, p := range list {
			if _, ok := seen[p.ID]; ok {
				continue
			}
			seen[p.ID] = struct{}{}
			out = append(out, p)
		}
	}

	if _, ok := seen[currentID]; !ok || currentID == "" {
		return out
	}
	return slices.DeleteFunc(out, func(p entity.ProductCard) bool {
		return p.ID == currentID
	})
}
