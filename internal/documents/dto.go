package documents

import "time"

type documentResponse struct {
	ID            string  `json:"id"`
	Filename      string  `json:"filename"`
	DocType       string  `json:"docType"`
	PersonID      string  `json:"personId,omitempty"`
	Amount        float64 `json:"amount"`
	Date          string  `json:"date,omitempty"`
	AccountNumber string  `json:"accountNumber,omitempty"`
	Confidence    float64 `json:"confidenceScore"`
	ProcessedAt   string  `json:"processedAt"`
}

func toResponse(doc Document) documentResponse {
	return documentResponse{
		ID:            doc.ID,
		Filename:      doc.Filename,
		DocType:       doc.DocType,
		PersonID:      doc.PersonID,
		Amount:        doc.Amount,
		Date:          doc.Date,
		AccountNumber: doc.AccountNumber,
		Confidence:    doc.Confidence,
		ProcessedAt:   doc.ProcessedAt.Format(time.RFC3339),
	}
}
