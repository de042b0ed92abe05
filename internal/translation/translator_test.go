package translation

import (
	"reflect"
	"strings"
	"testing"

	"codeberg.org/snonux/bilingual/internal/phrases"
)

func defaultTranslator(t *testing.T) *Translator {
	t.Helper()

	tables, err := phrases.Default()
	if err != nil {
		t.Fatalf("Failed to load default tables: %v", err)
	}
	return NewTranslator(tables)
}

func TestNewTranslator(t *testing.T) {
	translator := defaultTranslator(t)

	if translator.tables == nil {
		t.Error("Tables not set")
	}
	if translator.links == nil {
		t.Error("Link rewriter not initialized")
	}
	if translator.experiment == nil {
		t.Error("Experiment pattern not compiled")
	}
}

func TestTranslateMarkupLine(t *testing.T) {
	translator := defaultTranslator(t)

	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "level one title",
			line: "# 1.1 你的第一次 AI 对话",
			want: []string{"# 1.1 Your First AI Conversation", "# 1.1 你的第一次 AI 对话"},
		},
		{
			name: "level one title with surrounding text",
			line: "#   第 1 课：1.1 你的第一次 AI 对话  ",
			want: []string{"# 1.1 Your First AI Conversation", "# 第 1 课：1.1 你的第一次 AI 对话"},
		},
		{
			name: "level one without title match",
			line: "# 未知的标题",
			want: []string{"# 未知的标题"},
		},
		{
			name: "level two experiment",
			line: "## 实验 3: 自定义参数",
			want: []string{"## Experiment 3: Custom Parameters", "<!-- 实验 3: 自定义参数 -->"},
		},
		{
			name: "level two experiment with full-width colon",
			line: "## 实验3：模型对比",
			want: []string{"## Experiment3: ModelsComparison", "<!-- 实验3：模型对比 -->"},
		},
		{
			name: "level two experiment without phrase hits",
			line: "## 实验 2: 你好世界",
			want: []string{"## 实验 2: 你好世界"},
		},
		{
			name: "level two title map",
			line: "## 2.2 主流模型提供商",
			want: []string{"## 2.2 Major Model Providers", "<!-- 2.2 主流模型提供商 -->"},
		},
		{
			name: "level two phrase table",
			line: "## 安装依赖",
			want: []string{"## Install Dependencies", "<!-- 安装依赖 -->"},
		},
		{
			name: "level two without any match",
			line: "## 你好世界",
			want: []string{"## 你好世界"},
		},
		{
			name: "level three is not translated",
			line: "### 安装依赖",
			want: []string{"### 安装依赖"},
		},
		{
			name: "marker without space",
			line: "#安装依赖",
			want: []string{"#安装依赖"},
		},
		{
			name: "english heading",
			line: "# 1.1 Your First AI Conversation",
			want: []string{"# 1.1 Your First AI Conversation"},
		},
		{
			name: "plain chinese text",
			line: "本 Notebook 演示如何调用模型",
			want: []string{"本 Notebook 演示如何调用模型"},
		},
		{
			name: "badge link is repaired",
			line: "[![Open In Colab](https://colab.research.google.com/assets/colab-badge.svg)](https://colab.research.google.com/github/OWNER/REPO/blob/main/demos/x.ipynb)",
			want: []string{"[![Open In Colab](https://colab.research.google.com/assets/colab-badge.svg)](https://colab.research.google.com/github/forhow134/ai-coding-guide/blob/main/demos/x.ipynb)"},
		},
		{
			name: "empty line",
			line: "",
			want: []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translator.TranslateMarkupLine(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TranslateMarkupLine(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestTranslateMarkupLine_TitlePrecedence(t *testing.T) {
	tables := &phrases.Tables{
		Links:      phrases.Links{Canonical: "a/b"},
		Experiment: phrases.Experiment{Label: "实验", English: "Experiment"},
		Titles: []phrases.Entry{
			{Source: "对话", English: "Conversation"},
			{Source: "第一次", English: "First Time"},
		},
	}
	translator := NewTranslator(tables)

	got := translator.TranslateMarkupLine("# 第一次对话")
	want := []string{"# Conversation", "# 第一次对话"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TranslateMarkupLine() = %q, want %q", got, want)
	}
}

func TestTranslateMarkupLine_NonCJKPassthrough(t *testing.T) {
	// Tables that would match everything still leave non-CJK headings alone
	tables := &phrases.Tables{
		Links:      phrases.Links{Canonical: "a/b"},
		Experiment: phrases.Experiment{Label: "Lab", English: "Experiment"},
		Titles:     []phrases.Entry{{Source: "e", English: "E"}},
		Phrases:    []phrases.Entry{{Source: "e", English: "E"}},
	}
	translator := NewTranslator(tables)

	for _, line := range []string{"# Hello there", "## Lab 1: the end", "## ひらがな"} {
		got := translator.TranslateMarkupLine(line)
		if !reflect.DeepEqual(got, []string{line}) {
			t.Errorf("TranslateMarkupLine(%q) = %q, want unchanged", line, got)
		}
	}
}

func TestTranslateMarkup(t *testing.T) {
	translator := defaultTranslator(t)

	input := strings.Join([]string{
		"# 1.1 你的第一次 AI 对话",
		"",
		"[![Open In Colab](https://colab.research.google.com/assets/colab-badge.svg)](https://colab.research.google.com/github/OWNER/REPO/blob/main/demos/01.ipynb)",
		"",
		"## 实验 3: 自定义参数",
		"正文保持不变。",
	}, "\n")

	want := strings.Join([]string{
		"# 1.1 Your First AI Conversation",
		"# 1.1 你的第一次 AI 对话",
		"",
		"[![Open In Colab](https://colab.research.google.com/assets/colab-badge.svg)](https://colab.research.google.com/github/forhow134/ai-coding-guide/blob/main/demos/01.ipynb)",
		"",
		"## Experiment 3: Custom Parameters",
		"<!-- 实验 3: 自定义参数 -->",
		"正文保持不变。",
	}, "\n")

	got := translator.TranslateMarkup(input)
	if got != want {
		t.Errorf("TranslateMarkup() =\n%s\nwant\n%s", got, want)
	}
}

func TestTranslateMarkup_Idempotent(t *testing.T) {
	translator := defaultTranslator(t)

	inputs := []string{
		"# 1.1 你的第一次 AI 对话\n\n## 实验 3: 自定义参数\n正文",
		"# 12.4 记忆与对话机器人",
		"## 2.2 主流模型提供商\n## 实验3：模型对比",
		"## 实验总结",
		"# 未知的标题\n## 你好世界",
		"plain text\nwith OWNER/REPO link",
		"",
	}

	for _, input := range inputs {
		once := translator.TranslateMarkup(input)
		twice := translator.TranslateMarkup(once)
		if once != twice {
			t.Errorf("TranslateMarkup is not idempotent for %q:\nonce:  %q\ntwice: %q", input, once, twice)
		}
	}
}

func TestTranslateMarkup_KeepsUserWrittenPair(t *testing.T) {
	translator := defaultTranslator(t)

	input := "# 1.1 Your First AI Conversation\n#  1.1 你的第一次 AI 对话"
	if got := translator.TranslateMarkup(input); got != input {
		t.Errorf("TranslateMarkup() = %q, want unchanged %q", got, input)
	}
}

func TestTranslateCodeBlock(t *testing.T) {
	translator := defaultTranslator(t)

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "define tools comment",
			text: "# 定义工具\nsome_code()",
			want: "# Define tools\nsome_code()",
		},
		{
			name: "every occurrence",
			text: "# 测试\nrun()\n# 测试\nrun()",
			want: "# Test\nrun()\n# Test\nrun()",
		},
		{
			name: "longer pattern declared first",
			text: "# 将结果返回给模型",
			want: "# Return results to给模型",
		},
		{
			name: "instruction prompt",
			text: `key = getpass("请输入你的 OpenAI API Key: ")`,
			want: `key = getpass("Enter your OpenAI API Key: ")`,
		},
		{
			name: "inside string literal",
			text: `print("# 创建")`,
			want: `print("# Create")`,
		},
		{
			name: "link placeholder",
			text: "!git clone https://github.com/your-org/ai-first-app.git",
			want: "!git clone https://github.com/forhow134/ai-coding-guide.git",
		},
		{
			name: "untouched code",
			text: "import os\nprint(os.getcwd())",
			want: "import os\nprint(os.getcwd())",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translator.TranslateCodeBlock(tt.text)
			if got != tt.want {
				t.Errorf("TranslateCodeBlock() = %q, want %q", got, tt.want)
			}
			if again := translator.TranslateCodeBlock(got); again != got {
				t.Errorf("TranslateCodeBlock() is not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestRewriteLinks(t *testing.T) {
	translator := defaultTranslator(t)

	got := translator.RewriteLinks("github/OWNER/REPO/blob")
	if got != "github/forhow134/ai-coding-guide/blob" {
		t.Errorf("RewriteLinks() = %q", got)
	}
}
