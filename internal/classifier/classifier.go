package classifier

import "strings"

// Label is the coarse intent category assigned to a message.
type Label string

const (
	LabelBalance Label = "balance"
	LabelAdd     Label = "add"
	LabelReport  Label = "report"
	LabelBudget  Label = "budget"
	LabelInvest  Label = "invest"
	LabelUnknown Label = "unknown"
)

// Classifier maps raw message text to a coarse label. The dispatcher logs
// the label but routes on its own keyword order; the two must stay decoupled.
type Classifier interface {
	Classify(text string) Label
}

// KeywordClassifier is the keyword reduction of the upstream NLP model.
type KeywordClassifier struct{}

func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{}
}

func (c *KeywordClassifier) Classify(text string) Label {
	lowered := strings.ToLower(text)
	switch {
	case strings.Contains(lowered, "balance"):
		return LabelBalance
	case strings.Contains(lowered, "add"):
		return LabelAdd
	case strings.Contains(lowered, "report"):
		return LabelReport
	case strings.Contains(lowered, "budget"):
		return LabelBudget
	case strings.Contains(lowered, "invest"):
		return LabelInvest
	default:
		return LabelUnknown
	}
}
