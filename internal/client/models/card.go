package models

import (
	"fmt"
	"strings"
)

// snippetLen is how many characters of cleaned text a card preview shows.
const snippetLen = 180

// maxNonPrintable rejects an extracted-text preview when this many
// characters of the slice fall outside printable ASCII. Extraction of
// scanned or binary-heavy files produces garbage; this keeps it off cards.
const maxNonPrintable = 40

// textLikeExts are the file extensions whose extracted text is worth
// previewing at all. Summaries are previewed regardless of extension.
var textLikeExts = map[string]struct{}{
	"pdf": {}, "docx": {}, "doc": {}, "txt": {},
	"md": {}, "rtf": {}, "html": {}, "htm": {},
}

// Card is the ephemeral, client-derived view of one report on the
// dashboard. Snippet is empty when no preview is available.
type Card struct {
	ID      int64
	Name    string
	Date    string
	Snippet string
}

// FileName returns the last path segment of a stored file path or URL.
func FileName(originalFile string) string {
	if originalFile == "" {
		return ""
	}
	parts := strings.Split(originalFile, "/")
	return parts[len(parts)-1]
}

// fileExt returns the lowercased extension of name, without the dot,
// or "" when the name has none.
func fileExt(name string) string {
	i := strings.LastIndex(name, ".")
	if i < 0 || i == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[i+1:])
}

// CleanText collapses all whitespace runs to single spaces and trims.
func CleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// LatestByReport maps each report id to the first summary seen for it.
// The summaries endpoint returns newest-first, so first seen is latest;
// the ordering is assumed of the service, not verified here.
func LatestByReport(summaries []Summary) map[int64]Summary {
	latest := make(map[int64]Summary, len(summaries))
	for _, s := range summaries {
		if _, ok := latest[s.Report]; !ok {
			latest[s.Report] = s
		}
	}
	return latest
}

// BuildCards derives one dashboard card per report, joining in the latest
// summary per report. Reports keep their given order.
func BuildCards(reports []Report, summaries []Summary) []Card {
	latest := LatestByReport(summaries)

	cards := make([]Card, 0, len(reports))
	for _, r := range reports {
		name := FileName(r.OriginalFile)

		card := Card{
			ID:      r.ID,
			Name:    name,
			Date:    r.UploadedAt,
			Snippet: snippetFor(r, name, latest),
		}
		if card.Name == "" {
			card.Name = fmt.Sprintf("Report %d", r.ID)
		}
		if card.Date == "" {
			card.Date = r.CreatedAt
		}
		cards = append(cards, card)
	}
	return cards
}

// snippetFor prefers the latest summary's text. Extracted text is used
// only for text-like file extensions, and only when the slice passes the
// non-printable gate. An empty result means no preview.
func snippetFor(r Report, name string, latest map[int64]Summary) string {
	if s, ok := latest[r.ID]; ok && s.SummaryText != "" {
		return truncate(CleanText(s.SummaryText), snippetLen)
	}

	if _, ok := textLikeExts[fileExt(name)]; !ok {
		return ""
	}
	if r.ExtractedText == "" {
		return ""
	}

	slice := truncate(CleanText(r.ExtractedText), snippetLen)
	if countNonPrintable(slice) >= maxNonPrintable {
		return ""
	}
	return slice
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func countNonPrintable(s string) int {
	n := 0
	for _, r := range s {
		if r < 0x20 || r > 0x7e {
			n++
		}
	}
	return n
}
