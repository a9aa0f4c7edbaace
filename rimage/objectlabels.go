package rimage

import "sort"

// GetObjectLabels scans a scalar label image and returns the ascending,
// deduplicated set of integer label values it contains. If mask is non-nil,
// a pixel only contributes its label value when the corresponding mask pixel
// is nonzero. If excludeZero is true, label value 0 (conventionally
// "background") is never included.
//
// Complexity: O(N) where N is the number of pixels in label.
func GetObjectLabels(label Image, mask Image, excludeZero bool) ([]int, error) {
	sizes := label.Sizes()
	seen := make(map[int]struct{})
	coords := make([]int, len(sizes))

	var walk func(axis int) error
	walk = func(axis int) error {
		if axis == len(sizes) {
			vals, err := label.At(coords)
			if err != nil {
				return err
			}
			id := int(vals[0])
			if excludeZero && id == 0 {
				return nil
			}
			if mask != nil {
				mvals, err := mask.At(coords)
				if err != nil {
					return err
				}
				if mvals[0] == 0 {
					return nil
				}
			}
			seen[id] = struct{}{}
			return nil
		}
		for c := 0; c < sizes[axis]; c++ {
			coords[axis] = c
			if err := walk(axis + 1); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(0); err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}
