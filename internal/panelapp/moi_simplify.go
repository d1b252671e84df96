package panelapp

import "strings"

// SimplifyMOI reduces PanelApp's free-text MOI descriptions to the small set
// of labels the inheritance runner dispatches on. A gene with no usable MOI
// gets the permissive chromosome-aware default: both models on autosomes,
// the hemizygous models on the sex chromosomes.
func SimplifyMOI(rawMOI string, chrom string) string {
	raw := strings.ToUpper(strings.TrimSpace(rawMOI))

	if raw == "" || raw == "UNKNOWN" {
		return defaultForChrom(chrom)
	}

	switch {
	case strings.HasPrefix(raw, "BIALLELIC"):
		return "Biallelic"
	case strings.HasPrefix(raw, "BOTH"):
		return "Mono_And_Biallelic"
	case strings.HasPrefix(raw, "MONOALLELIC"):
		if strings.EqualFold(chrom, "X") {
			return "Hemi_Mono_In_Female"
		}
		return "Monoallelic"
	case strings.HasPrefix(raw, "X-LINKED"):
		if strings.Contains(raw, "BIALLELIC") {
			return "Hemi_Bi_In_Female"
		}
		return "Hemi_Mono_In_Female"
	default:
		return defaultForChrom(chrom)
	}
}

func defaultForChrom(chrom string) string {
	switch strings.ToUpper(chrom) {
	case "X":
		return "Hemi_Mono_In_Female"
	case "Y":
		return "Y_Chrom_Variant"
	default:
		return "Mono_And_Biallelic"
	}
}
