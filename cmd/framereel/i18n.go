// Package main provides localization for the framereel CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Convert image sequences into videos.": "連番画像から動画を作成します。",

		// Subcommands
		"Convert an image sequence to a video.": "連番画像を動画に変換",
		"Show encoder availability.":            "利用可能なエンコーダーを表示",
		"Show version information.":             "バージョン情報を表示",

		// Required flags
		"Source directory containing the image sequence.": "連番画像が入ったディレクトリ（必須）",
		"Output video file path (.mp4 or .avi).":          "出力動画ファイルパス（.mp4 または .avi）",

		// Selection flags
		"Glob pattern for matching images (default: *.png).": "画像にマッチするグロブパターン（デフォルト: *.png）",

		// Conversion flags
		"Playback frame rate (default: 30).":                     "再生フレームレート（デフォルト: 30）",
		"Disable the default 90 degree counterclockwise rotation.": "デフォルトの反時計回り90度回転を無効化",
		"Duration to hold the final frame in milliseconds.":      "最終フレームの保持時間（ミリ秒）",
		"Draw the frame index and file name on each frame.":      "各フレームにフレーム番号とファイル名を描画",

		// Encoding flags
		"Video codec: auto, h264 or mjpeg (default: auto).":              "動画コーデック（auto, h264, mjpeg、デフォルト: auto）",
		"Quality preset setting CRF and JPEG quality together (low, medium, high).": "CRFとJPEG品質をまとめて設定する品質プリセット（low, medium, high）",
		"Video quality (CRF 0-51 for H.264, lower is better).":           "動画品質（H.264のCRF値 0-51、低いほど高品質）",
		"Target bitrate in kbps (0 = quality mode).":                     "目標ビットレート（kbps、0 = 品質モード）",
		"JPEG quality for MJPEG frames (1-100).":                         "MJPEGフレームのJPEG品質（1-100）",
		"Path to the ffmpeg executable (falls back to FFMPEG_PATH env, then PATH).": "ffmpeg実行ファイルのパス（FFMPEG_PATH環境変数、PATHの順で探索）",

		// Summary flags
		"Write a Markdown conversion summary to this file.": "変換サマリーをMarkdown形式でファイルに出力",

		// Config flags
		"YAML configuration file (flags override file values).": "YAML設定ファイル（フラグはファイルの値を上書き）",

		// Debug flags
		"Enable debug output.":                        "デバッグ出力を有効化",
		"Directory for debug output (default: ./debug).": "デバッグ出力のディレクトリ（デフォルト: ./debug）",

		// Logging flags
		"Log level (debug, info, warn, error).": "ログレベル（debug, info, warn, error）",
		"Suppress all log output.":              "全てのログ出力を抑制",

		// Version command
		"framereel version %s": "framereel バージョン %s",

		// Formats command
		"Encoder availability:":                                "利用可能なエンコーダー:",
		"h264 (mp4): ffmpeg found at %s":                       "h264 (mp4): ffmpeg を %s で検出しました",
		"h264 (mp4): ffmpeg not found, mjpeg fallback will be used": "h264 (mp4): ffmpeg が見つかりません。mjpeg フォールバックを使用します",
		"mjpeg (mp4): available (pure Go)":                     "mjpeg (mp4): 利用可能（pure Go）",
		"mjpeg (avi): available (pure Go)":                     "mjpeg (avi): 利用可能（pure Go）",

		// Summary content
		"Conversion Summary": "変換サマリー",
		"Generated":          "生成日時",
		"Source":             "入力画像",
		"Directory":          "ディレクトリ",
		"Pattern":            "パターン",
		"Matched Images":     "マッチした画像数",
		"Skipped Images":     "スキップした画像数",
		"Settings":           "設定",
		"Frame Rate":         "フレームレート",
		"Rotation":           "回転",
		"enabled":            "有効",
		"disabled":           "無効",
		"Codec":              "コーデック",
		"Quality":            "品質",
		"Outro":              "アウトロ",
		"Video":              "動画",
		"Output":             "出力先",
		"Resolution":         "解像度",
		"Frames":             "フレーム数",
		"Duration":           "再生時間",
		"File Size":          "ファイルサイズ",
	})
}
