// Package models holds the client-side projections of server-owned
// entities and the derived dashboard card.
package models

// Report is an uploaded document as the server describes it. Only the
// fields the client observes are decoded; everything else is ignored.
type Report struct {
	ID            int64  `json:"id"`
	OriginalFile  string `json:"original_file"`
	ExtractedText string `json:"extracted_text"`
	UploadedAt    string `json:"uploaded_at"`
	CreatedAt     string `json:"created_at"`
}

// Summary is one server-generated summary of a report. A report may have
// many; the client only ever uses the latest.
type Summary struct {
	Report      int64  `json:"report"`
	SummaryText string `json:"summary_text"`
	CreatedAt   string `json:"created_at"`
}

// TokenPair is the result of a credential exchange. Refresh may be empty;
// it is stored but never used to re-authenticate.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
