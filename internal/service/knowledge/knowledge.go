// Package knowledge holds the reproductive-health reference content shown for
// each BMI category. The content is authored data and never changes at runtime.
package knowledge

import (
	"fmt"

	"github.com/mamadbah2/bmicare/internal/domain/models"
)

// Lookup returns the reference entry for a category. Every enumerated category
// has an entry; an unknown tag is a programming error and panics. Callers get
// their own copy of the slices.
func Lookup(category models.Category) models.ReproductiveHealthImpact {
	entry, ok := reproductiveHealth[category]
	if !ok {
		panic(fmt.Sprintf("knowledge: no entry for category %q", category))
	}
	return clone(entry)
}

// Find is Lookup for untrusted tags, such as a URL parameter.
func Find(category models.Category) (models.ReproductiveHealthImpact, bool) {
	if !category.Valid() {
		return models.ReproductiveHealthImpact{}, false
	}
	return Lookup(category), true
}

func clone(src models.ReproductiveHealthImpact) models.ReproductiveHealthImpact {
	dst := src
	dst.Impacts = models.Impacts{
		Fertility: append([]string(nil), src.Impacts.Fertility...),
		Pregnancy: append([]string(nil), src.Impacts.Pregnancy...),
		Menstrual: append([]string(nil), src.Impacts.Menstrual...),
		LongTerm:  append([]string(nil), src.Impacts.LongTerm...),
	}
	dst.Statistics = append([]models.Statistic(nil), src.Statistics...)
	dst.WHOEvidence.KeyPoints = append([]string(nil), src.WHOEvidence.KeyPoints...)
	return dst
}
