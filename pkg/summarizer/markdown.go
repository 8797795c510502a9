package summarizer

import (
	"fmt"
	"strings"
)

// TranslateFunc translates a label before it is written to the summary.
type TranslateFunc func(key string) string

// MarkdownOption configures a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithTranslator sets the label translation function.
func WithTranslator(translate TranslateFunc) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.translate = translate
	}
}

// WithVersion sets the version string shown in the summary header.
func WithVersion(version string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.version = version
	}
}

// MarkdownFormatter formats a Summary as a Markdown document.
type MarkdownFormatter struct {
	translate TranslateFunc
	version   string
}

var _ Formatter = (*MarkdownFormatter)(nil)

// NewMarkdownFormatter creates a MarkdownFormatter with the given options.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{
		translate: func(key string) string { return key },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format converts a Summary to a Markdown document.
func (f *MarkdownFormatter) Format(summary *Summary) string {
	t := f.translate
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t("Conversion Summary"))
	if f.version != "" {
		fmt.Fprintf(&b, "%s: %s (framereel %s)\n\n",
			t("Generated"), summary.GeneratedAt.Format("2006-01-02 15:04:05"), f.version)
	} else {
		fmt.Fprintf(&b, "%s: %s\n\n",
			t("Generated"), summary.GeneratedAt.Format("2006-01-02 15:04:05"))
	}

	fmt.Fprintf(&b, "## %s\n\n", t("Source"))
	fmt.Fprintf(&b, "- %s: %s\n", t("Directory"), summary.Source.Dir)
	fmt.Fprintf(&b, "- %s: %s\n", t("Pattern"), summary.Source.Pattern)
	fmt.Fprintf(&b, "- %s: %d\n", t("Matched Images"), summary.Source.Matched)
	if summary.Source.Skipped > 0 {
		fmt.Fprintf(&b, "- %s: %d\n", t("Skipped Images"), summary.Source.Skipped)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## %s\n\n", t("Settings"))
	fmt.Fprintf(&b, "- %s: %.1f fps\n", t("Frame Rate"), summary.Settings.FPS)
	fmt.Fprintf(&b, "- %s: %s\n", t("Rotation"), enabledLabel(t, summary.Settings.Rotate))
	fmt.Fprintf(&b, "- %s: %s (%s, %s)\n",
		t("Codec"), summary.Settings.Codec, summary.Settings.Container, summary.Settings.Backend)
	fmt.Fprintf(&b, "- %s: %d\n", t("Quality"), summary.Settings.Quality)
	if summary.Settings.OutroMs > 0 {
		fmt.Fprintf(&b, "- %s: %d ms\n", t("Outro"), summary.Settings.OutroMs)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## %s\n\n", t("Video"))
	fmt.Fprintf(&b, "- %s: %s\n", t("Output"), summary.Video.OutputPath)
	fmt.Fprintf(&b, "- %s: %dx%d\n", t("Resolution"), summary.Video.Width, summary.Video.Height)
	fmt.Fprintf(&b, "- %s: %d\n", t("Frames"), summary.Video.FrameCount)
	fmt.Fprintf(&b, "- %s: %s\n", t("Duration"), formatDuration(summary.Video.DurationMs))
	fmt.Fprintf(&b, "- %s: %s\n", t("File Size"), formatBytes(summary.Video.FileSize))

	return b.String()
}

// enabledLabel returns a translated on/off label.
func enabledLabel(t TranslateFunc, enabled bool) string {
	if enabled {
		return t("enabled")
	}
	return t("disabled")
}

// formatDuration formats a millisecond duration as seconds.
func formatDuration(ms int) string {
	return fmt.Sprintf("%.2f s", float64(ms)/1000.0)
}

// formatBytes formats a byte count using binary units.
func formatBytes(bytes int64) string {
	switch {
	case bytes >= 1024*1024*1024:
		return fmt.Sprintf("%.2f GB", float64(bytes)/(1024*1024*1024))
	case bytes >= 1024*1024:
		return fmt.Sprintf("%.2f MB", float64(bytes)/(1024*1024))
	case bytes >= 1024:
		return fmt.Sprintf("%.2f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
