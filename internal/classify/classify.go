package classify

import "strings"

// Unknown is returned when no rule scores above zero.
const Unknown = "Unknown"

// LabelInvoice is the hard-override label.
const LabelInvoice = "Invoice"

// rule associates a document-type label with the keyword phrases that vote
// for it. Scores are normalized by keyword-list length so labels with more
// keywords are not rewarded.
type rule struct {
	Label    string
	Keywords []string
}

// defaultRules is the fixed catalog, in tie-break order: the first label to
// reach the maximum score wins.
var defaultRules = []rule{
	{"BankApplication_CreditCard", []string{"credit card application", "card request", "new card"}},
	{"BankApplication_SavingsAccount", []string{"savings account", "open account", "new account"}},
	{"ID_DriversLicense", []string{"driver license", "driving permit", "operator license"}},
	{"ID_Passport", []string{"passport", "travel document"}},
	{"ID_StateID", []string{"state id", "identification card"}},
	{"Financial_PayStub", []string{"pay stub", "salary", "wages"}},
	{"Financial_TaxReturn", []string{"tax return", "form 1040", "tax year"}},
	{"Financial_IncomeStatement", []string{"income statement", "earnings report"}},
	{"Receipt", []string{"receipt", "payment received", "transaction record"}},
}

// Classifier assigns exactly one label from a fixed catalog to raw text.
// Purely rule-based: no learned parameters, fully deterministic.
type Classifier struct {
	rules []rule
}

// New returns a Classifier over the built-in catalog.
func New() *Classifier {
	return &Classifier{rules: defaultRules}
}

// Labels returns the catalog labels in tie-break order, the override label
// first.
func (c *Classifier) Labels() []string {
	out := make([]string, 0, len(c.rules)+1)
	out = append(out, LabelInvoice)
	for _, r := range c.rules {
		out = append(out, r.Label)
	}
	return out
}

// Classify lower-cases text and scores it against every rule. The literal
// invoice markers short-circuit; otherwise the label with the strictly
// highest normalized keyword score wins, earliest catalog entry on ties.
// Text matching nothing classifies as Unknown.
func (c *Classifier) Classify(text string) string {
	lower := strings.ToLower(text)

	if strings.Contains(lower, "invoice") || strings.Contains(lower, "inv-") {
		return LabelInvoice
	}

	best := Unknown
	maxScore := 0.0
	for _, r := range c.rules {
		matched := 0
		for _, keyword := range r.Keywords {
			if strings.Contains(lower, keyword) {
				matched++
			}
		}
		score := float64(matched) / float64(len(r.Keywords))
		if score > maxScore {
			maxScore = score
			best = r.Label
		}
	}
	return best
}
