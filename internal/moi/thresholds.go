package moi

import "fmt"

// Config keys for the population-frequency ceilings.
const (
	keyDominantAF   = "gnomad_dominant"
	keyDominantAC   = "gnomad_max_ac_dominant"
	keyDominantHom  = "gnomad_max_homs_dominant"
	keyRecessiveHom = "gnomad_max_homs_recessive"
)

// Thresholds holds the population-frequency ceilings applied by the
// inheritance tests. Recessive tests tolerate a higher homozygote count than
// dominant tests, since recessive disease alleles are expected to appear
// homozygous in population databases.
type Thresholds struct {
	DominantAF   float64 // allele frequency ceiling, dominant gates
	DominantAC   int     // allele count ceiling, dominant gates
	DominantHom  int     // population homozygote ceiling, dominant gates
	RecessiveHom int     // population homozygote ceiling, recessive gates
}

// ThresholdsFromConfig materialises Thresholds from a flat config mapping.
// A missing key fails here, at construction, not at first use.
func ThresholdsFromConfig(conf map[string]any) (Thresholds, error) {
	af, err := floatValue(conf, keyDominantAF)
	if err != nil {
		return Thresholds{}, err
	}
	ac, err := intValue(conf, keyDominantAC)
	if err != nil {
		return Thresholds{}, err
	}
	domHom, err := intValue(conf, keyDominantHom)
	if err != nil {
		return Thresholds{}, err
	}
	recHom, err := intValue(conf, keyRecessiveHom)
	if err != nil {
		return Thresholds{}, err
	}
	return Thresholds{
		DominantAF:   af,
		DominantAC:   ac,
		DominantHom:  domHom,
		RecessiveHom: recHom,
	}, nil
}

func floatValue(conf map[string]any, key string) (float64, error) {
	raw, ok := conf[key]
	if !ok {
		return 0, &ConfigurationError{Message: fmt.Sprintf("missing MOI threshold %q", key)}
	}
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, &ConfigurationError{
			Message: fmt.Sprintf("MOI threshold %q is not numeric: %v", key, raw),
		}
	}
}

func intValue(conf map[string]any, key string) (int, error) {
	f, err := floatValue(conf, key)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}
