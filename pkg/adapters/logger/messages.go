package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Starting conversion":           "変換を開始します",
		"Matched %d files":              "%d ファイルがマッチしました",
		"Video saved to %s":             "動画を %s に保存しました",
		"Summary saved to %s":           "サマリーを %s に保存しました",
		"Interrupted, shutting down...": "中断されました。シャットダウン中...",

		// Scan stage
		"Scanning %s with pattern %s": "%s をパターン %s でスキャン中",

		// Assemble stage
		"First frame decoded: %dx%d":     "最初のフレームをデコード: %dx%d",
		"Output dimensions: %dx%d":       "出力サイズ: %dx%d",
		"Encoding %d frames at %.1f fps": "%d フレームを %.1f fps でエンコード中",
		"Video encoded: %d bytes":        "動画エンコード完了: %d バイト",
		"Holding last frame for %d ms":   "最後のフレームを %d ms 維持します",
		"Skipped %d of %d images":        "%d / %d 画像をスキップしました",

		// Encoder selection
		"Using %s encoder (%s)":                   "%s エンコーダーを使用 (%s)",
		"ffmpeg not found, falling back to MJPEG": "ffmpeg が見つからないため MJPEG にフォールバックします",

		// Warnings
		"Could not read image %s":                    "画像 %s を読み込めませんでした",
		"No images found in %s matching pattern %s": "%s にパターン %s に一致する画像が見つかりませんでした",

		// Errors
		"Failed to scan images: %s":   "画像のスキャンに失敗しました: %s",
		"Failed to encode video: %s":  "動画のエンコードに失敗しました: %s",
		"Failed to write output: %s":  "出力の書き込みに失敗しました: %s",
		"Failed to write summary: %s": "サマリーの書き込みに失敗しました: %s",
	})
}
