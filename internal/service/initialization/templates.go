package initialization

import "github.com/textgen-tools/textgen/internal/model"

// seedTemplate 内置模板的定义
type seedTemplate struct {
	Name               string
	Description        string
	Category           string
	LLMModel           string
	SystemPrompt       string
	UserPromptTemplate string
	OutputFormat       string
	InputFields        []model.InputField
}

// seedTemplates 首次启动时投入的内置模板
var seedTemplates = []seedTemplate{
	{
		Name:         "SEO記事生成ツール",
		Description:  "SEOに最適化された記事を生成します",
		Category:     "記事作成",
		LLMModel:     "gemini-2.0-flash",
		SystemPrompt: "あなたはSEOに精通したプロのWebライターです。検索エンジンに最適化され、読者にとって価値のある記事を作成してください。",
		UserPromptTemplate: `以下の条件でSEO記事を作成してください。

【キーワード】
{{keyword}}

【ターゲット読者】
{{target_audience}}

【記事の目的】
{{purpose}}

【文字数目安】
{{word_count}}文字程度

【追加の指示】
{{additional_instructions}}`,
		OutputFormat: "Markdown形式で出力",
		InputFields: []model.InputField{
			{ID: "keyword", Name: "キーワード", InputType: model.InputTypeTextShort, Required: true, Placeholder: "例: ダイエット 食事制限"},
			{ID: "target_audience", Name: "ターゲット読者", InputType: model.InputTypeTextShort, Required: true, Placeholder: "例: 30代女性"},
			{ID: "purpose", Name: "記事の目的", InputType: model.InputTypeSelect, Required: true, Options: []string{"情報提供", "商品紹介", "ハウツー", "比較検討"}},
			{ID: "word_count", Name: "文字数目安", InputType: model.InputTypeSelect, Required: true, Options: []string{"1000", "2000", "3000", "5000"}},
			{ID: "additional_instructions", Name: "追加の指示", InputType: model.InputTypeTextLong, Required: false, Placeholder: "その他の要望があれば入力"},
		},
	},
	{
		Name:         "記事リライトツール",
		Description:  "既存の記事をリライトして新しい記事を生成します",
		Category:     "リライト",
		LLMModel:     "gemini-2.0-flash",
		SystemPrompt: "あなたはプロの編集者です。与えられた文章を、オリジナリティを保ちながら読みやすくリライトしてください。",
		UserPromptTemplate: `以下の文章をリライトしてください。

【元の文章】
{{original_text}}

【リライトの方向性】
{{direction}}

【トーン】
{{tone}}

【追加の指示】
{{additional_instructions}}`,
		OutputFormat: "Markdown形式で出力",
		InputFields: []model.InputField{
			{ID: "original_text", Name: "元の文章", InputType: model.InputTypeTextLong, Required: true, Placeholder: "リライトしたい文章を入力"},
			{ID: "direction", Name: "リライトの方向性", InputType: model.InputTypeSelect, Required: true, Options: []string{"より簡潔に", "より詳細に", "より専門的に", "より親しみやすく"}},
			{ID: "tone", Name: "トーン", InputType: model.InputTypeSelect, Required: true, Options: []string{"フォーマル", "カジュアル", "ビジネス", "親しみやすい"}},
			{ID: "additional_instructions", Name: "追加の指示", InputType: model.InputTypeTextLong, Required: false},
		},
	},
	{
		Name:         "YouTube台本生成ツール",
		Description:  "YouTube動画用の台本を生成します",
		Category:     "台本",
		LLMModel:     "gemini-2.0-flash",
		SystemPrompt: "あなたはYouTubeクリエイターのための台本ライターです。視聴者を引き付け、最後まで見てもらえる魅力的な台本を作成してください。",
		UserPromptTemplate: `以下の条件でYouTube動画の台本を作成してください。

【動画のテーマ】
{{theme}}

【動画の長さ】
{{duration}}分程度

【ターゲット視聴者】
{{target_viewer}}

【動画のスタイル】
{{style}}

【含めたいポイント】
{{key_points}}`,
		OutputFormat: "台本形式（セリフ・演出指示を含む）",
		InputFields: []model.InputField{
			{ID: "theme", Name: "動画のテーマ", InputType: model.InputTypeTextShort, Required: true, Placeholder: "例: 朝のルーティン紹介"},
			{ID: "duration", Name: "動画の長さ（分）", InputType: model.InputTypeSelect, Required: true, Options: []string{"3", "5", "10", "15", "20"}},
			{ID: "target_viewer", Name: "ターゲット視聴者", InputType: model.InputTypeTextShort, Required: true, Placeholder: "例: 20代社会人"},
			{ID: "style", Name: "動画のスタイル", InputType: model.InputTypeSelect, Required: true, Options: []string{"解説系", "Vlog系", "エンタメ系", "教育系"}},
			{ID: "key_points", Name: "含めたいポイント", InputType: model.InputTypeTextLong, Required: false, Placeholder: "必ず含めたい内容があれば入力"},
		},
	},
	{
		Name:         "SNS投稿文生成ツール",
		Description:  "Twitter/Instagram/Facebook用の投稿文を生成します",
		Category:     "SNS",
		LLMModel:     "gemini-2.0-flash",
		SystemPrompt: "あなたはSNSマーケティングの専門家です。エンゲージメントを高める魅力的な投稿文を作成してください。",
		UserPromptTemplate: `以下の条件でSNS投稿文を作成してください。

【プラットフォーム】
{{platform}}

【投稿の目的】
{{purpose}}

【伝えたい内容】
{{content}}

【トーン】
{{tone}}

【ハッシュタグを含める】
{{include_hashtags}}`,
		OutputFormat: "投稿文（必要に応じてハッシュタグ付き）",
		InputFields: []model.InputField{
			{ID: "platform", Name: "プラットフォーム", InputType: model.InputTypeSelect, Required: true, Options: []string{"Twitter/X", "Instagram", "Facebook", "LinkedIn"}},
			{ID: "purpose", Name: "投稿の目的", InputType: model.InputTypeSelect, Required: true, Options: []string{"告知・宣伝", "情報共有", "エンゲージメント獲得", "ブランディング"}},
			{ID: "content", Name: "伝えたい内容", InputType: model.InputTypeTextLong, Required: true, Placeholder: "投稿で伝えたいことを入力"},
			{ID: "tone", Name: "トーン", InputType: model.InputTypeSelect, Required: true, Options: []string{"カジュアル", "フォーマル", "ユーモラス", "インスピレーショナル"}},
			{ID: "include_hashtags", Name: "ハッシュタグを含める", InputType: model.InputTypeCheckbox, Required: false},
		},
	},
	{
		Name:         "メール文章生成ツール",
		Description:  "ビジネスメールの文章を生成します",
		Category:     "メール",
		LLMModel:     "gemini-2.0-flash",
		SystemPrompt: "あなたはビジネスコミュニケーションの専門家です。適切な敬語と構成で、目的を達成するメール文章を作成してください。",
		UserPromptTemplate: `以下の条件でメール文章を作成してください。

【メールの種類】
{{email_type}}

【宛先との関係】
{{relationship}}

【用件】
{{subject}}

【詳細内容】
{{details}}

【希望するアクション】
{{call_to_action}}`,
		OutputFormat: "メール形式（件名・本文）",
		InputFields: []model.InputField{
			{ID: "email_type", Name: "メールの種類", InputType: model.InputTypeSelect, Required: true, Options: []string{"依頼", "お礼", "謝罪", "報告", "問い合わせ", "営業"}},
			{ID: "relationship", Name: "宛先との関係", InputType: model.InputTypeSelect, Required: true, Options: []string{"社内上司", "社内同僚", "社外取引先", "新規顧客", "その他"}},
			{ID: "subject", Name: "用件", InputType: model.InputTypeTextShort, Required: true, Placeholder: "例: 打ち合わせ日程の調整"},
			{ID: "details", Name: "詳細内容", InputType: model.InputTypeTextLong, Required: true, Placeholder: "メールに含めたい詳細を入力"},
			{ID: "call_to_action", Name: "希望するアクション", InputType: model.InputTypeTextShort, Required: false, Placeholder: "例: 返信をいただきたい"},
		},
	},
}
