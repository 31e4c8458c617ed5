package annotate

// Human-readable descriptions for entity labels and dependency labels,
// used verbatim in analysis output.

var entityDescriptions = map[string]string{
	LabelPerson:  "People, including fictional",
	LabelOrg:     "Companies, agencies, institutions",
	LabelGPE:     "Countries, cities, states",
	LabelLoc:     "Non-GPE locations, mountain ranges, bodies of water",
	LabelDate:    "Absolute or relative dates or periods",
	LabelTime:    "Times smaller than a day",
	LabelMoney:   "Monetary values, including unit",
	LabelPercent: "Percentage",
	LabelEvent:   "Named hurricanes, battles, wars, sports events",
	LabelProduct: "Objects, vehicles, foods, etc.",
}

var depDescriptions = map[string]string{
	DepRoot:     "sentence root",
	DepNsubj:    "nominal subject",
	DepDobj:     "direct object",
	DepPobj:     "object of preposition",
	DepAmod:     "adjectival modifier",
	DepAdvmod:   "adverbial modifier",
	DepCompound: "compound",
	DepPoss:     "possession modifier",
	DepAttr:     "attribute",
	DepAcomp:    "adjectival complement",
	"ccomp":     "clausal complement",
	"xcomp":     "open clausal complement",
	DepDet:      "determiner",
	DepPrep:     "prepositional modifier",
	DepAux:      "auxiliary",
}

// DescribeEntity returns a human-readable description of an entity label,
// falling back to the label itself.
func DescribeEntity(label string) string {
	if desc, ok := entityDescriptions[label]; ok {
		return desc
	}
	return label
}

// DescribeDep returns a human-readable description of a dependency label,
// falling back to the label itself.
func DescribeDep(label string) string {
	if desc, ok := depDescriptions[label]; ok {
		return desc
	}
	return label
}
