// Package prompt builds the summarization request for a transcript.
package prompt

import (
	"strings"

	"github.com/nguyentantai21042004/audio-summarizer/internal/models"
)

// template is the fixed instruction and system message of a prompt type.
type template struct {
	core   string
	system string
}

var templates = map[models.PromptType]template{
	models.PromptMeeting: {
		core: "あなたは優秀な会議書記担当AIです。以下の会議の文字起こし内容を日本語で要約してください。\n" +
			"会議の主な目的、議論された主要なポイント、参加者の発言の要点、決定事項、およびネクストアクション（担当者と期限が明確な場合はそれも含む）を、構造化された箇条書き（Markdown形式）で示してください。",
		system: "会議の要点を正確に抽出し、議事録として分かりやすくまとめてください。",
	},
	models.PromptPresentation: {
		core: "あなたは優秀なレポート作成AIです。以下の発表、講演、または講義の文字起こし内容を日本語で要約してください。\n" +
			"発表の主要なテーマ、背景、提唱されている中心的なアイデアや議論、重要な論点や発見、そして結論や聴衆への主なメッセージを明確に箇条書き（Markdown形式）で示してください。",
		system: "発表内容の核心を捉えた要約を作成してください。",
	},
	models.PromptGeneral: {
		core: "あなたは優秀な要約AIです。以下の文字起こし内容を日本語で簡潔に要約してください。\n" +
			"テキスト全体の主要な情報を抽出し、最も重要なポイントやトピックを箇条書き（Markdown形式）で分かりやすく示してください。",
		system: "与えられたテキストの内容を正確に把握し、簡潔な要約を作成してください。",
	},
}

// GlossaryHeading introduces the glossary bullets.
const GlossaryHeading = "以下の専門用語を適切に使用してください:"

// Build renders the prompt for transcript. Unknown types use the general template.
func Build(transcript string, terms []string, t models.PromptType) models.Prompt {
	s, ok := templates[t]
	if !ok {
		s = templates[models.PromptGeneral]
	}

	var b strings.Builder
	b.WriteString(s.core)
	b.WriteString("\n")
	writeGlossary(&b, terms)
	b.WriteString("\n文字起こし:\n---\n")
	b.WriteString(transcript)
	b.WriteString("\n---\n要約 (Markdown):")

	return models.Prompt{System: s.system, User: b.String()}
}

func writeGlossary(b *strings.Builder, terms []string) {
	if len(terms) == 0 {
		return
	}
	b.WriteString(GlossaryHeading)
	for _, term := range terms {
		b.WriteString("\n- ")
		b.WriteString(term)
	}
}
