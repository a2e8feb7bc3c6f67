package extract

import "strings"

// fieldVocabulary is the fixed set of research-field terms spotted in free
// text when a page has no explicit research-interests section.
var fieldVocabulary = []string{
	// Materials
	"nanomaterials", "biomaterials", "polymers", "ceramics", "semiconductors",
	"thin films", "nanostructures", "composites", "alloys", "surfaces",
	// Chemistry
	"catalysis", "electrochemistry", "organic synthesis", "photochemistry",
	"biochemistry", "thermodynamics", "kinetics", "spectroscopy",
	// Energy
	"solar cells", "batteries", "fuel cells", "photovoltaics", "energy storage",
	"renewable energy", "hydrogen", "carbon capture",
	// Biology
	"drug delivery", "tissue engineering", "bioengineering", "biotechnology",
	"proteins", "cells", "molecular biology", "synthetic biology",
	// Environment
	"climate change", "sustainability", "environmental", "ecology",
	"water treatment", "pollution", "carbon",
	// Physics / engineering
	"optics", "photonics", "electronics", "transport", "mechanics",
	"fluid dynamics", "heat transfer", "computational",
	// Methods
	"machine learning", "simulation", "modeling", "characterization",
	"microscopy", "imaging",
}

// Keywords returns up to five vocabulary terms present in text, title-cased.
func Keywords(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, kw := range fieldVocabulary {
		if strings.Contains(lower, kw) {
			found = append(found, titleCase(kw))
			if len(found) == maxInterests {
				break
			}
		}
	}
	return found
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
