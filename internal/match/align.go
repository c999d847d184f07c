package match

import "sort"

// Alignment pairs ground-truth and predicted list items by shared index.
// Only positions 0..Compared-1 are ever scored field-by-field; ground-truth
// items beyond the predicted length still count toward denominators.
type Alignment struct {
	Compared   int
	Missing    int
	Extra      int
	CountMatch bool
}

// AlignByIndex is the positional alignment policy for parallel lists.
func AlignByIndex(nGT, nPred int) Alignment {
	return Alignment{
		Compared:   min(nGT, nPred),
		Missing:    max(0, nGT-nPred),
		Extra:      max(0, nPred-nGT),
		CountMatch: nGT == nPred,
	}
}

// KeyAlignment pairs items that carry a natural unique identifier via set
// intersection and difference. Key slices are sorted for determinism.
type KeyAlignment struct {
	Common  []string // keys present on both sides; only these are scored
	Missing []string // ground-truth keys absent from the prediction
	Extra   []string // predicted keys absent from the ground truth
}

// AlignByKey is the key-based alignment policy. Inputs are assumed unique
// (callers build them from maps).
func AlignByKey(gtKeys, predKeys []string) KeyAlignment {
	gtSet := make(map[string]struct{}, len(gtKeys))
	for _, k := range gtKeys {
		gtSet[k] = struct{}{}
	}
	predSet := make(map[string]struct{}, len(predKeys))
	for _, k := range predKeys {
		predSet[k] = struct{}{}
	}

	var out KeyAlignment
	for _, k := range gtKeys {
		if _, ok := predSet[k]; ok {
			out.Common = append(out.Common, k)
		} else {
			out.Missing = append(out.Missing, k)
		}
	}
	for _, k := range predKeys {
		if _, ok := gtSet[k]; !ok {
			out.Extra = append(out.Extra, k)
		}
	}

	sort.Strings(out.Common)
	sort.Strings(out.Missing)
	sort.Strings(out.Extra)
	return out
}
