package consoleprogress

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		"Processing: %d/%d images (%.1f%%)": "処理中: %d/%d 画像 (%.1f%%)",
	})
}
