package version

// RuleVersion tracks the published prompt revision; bumped together with
// the hosted prompt version so the footer reflects what answered.
const RuleVersion = "65"

const (
	Edition   = "2025"
	Title     = "NFHS Football Rules Assistant – " + Edition + " Edition"
	Copyright = "© " + Edition + " Tommy Smith. All Rights Reserved."

	// Watermark is emitted in a visually hidden div on every page.
	Watermark = "© " + Edition + " Tommy Smith — NFHS Football Rules Assistant. Proprietary content and methods."

	// Attribution lines rendered under each answer.
	Attribution = "© " + Edition + " Tommy Smith — NFHS Football Rules Assistant"
	Disclaimer  = "This assistant can make mistakes. Check important info."
)

// Footer returns the page footer line, e.g. "… v1.65".
func Footer() string {
	return Title + " v1." + RuleVersion
}
