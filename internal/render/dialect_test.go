package render

import (
	"go/format"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinoworks/tinomacro/internal/config"
)

func TestSwiftEquality(t *testing.T) {
	s := NewSwift(config.Default())

	want := `extension User: @MainActor Equatable {
    public static func == (lhs: User, rhs: User) -> Bool {
        return lhs.name == rhs.name && lhs.age == rhs.age
    }
}`
	assert.Equal(t, want, s.Equality("User", []string{"name", "age"}))

	wantEmpty := `extension User: @MainActor Equatable {
    public static func == (lhs: User, rhs: User) -> Bool {
        return true
    }
}`
	assert.Equal(t, wantEmpty, s.Equality("User", nil))
}

func TestSwiftConformanceIsConfigurable(t *testing.T) {
	cfg := config.Default()
	cfg.Equatable.Conformance = "Equatable"

	got := NewSwift(cfg).Equality("User", []string{"name"})
	assert.Contains(t, got, "extension User: Equatable {")
}

func TestSwiftResource(t *testing.T) {
	s := NewSwift(config.Default())

	want := `LocalizedStringResource(
    "home.title",
    defaultValue: String.LocalizationValue("ホーム"),
    bundle: Bundle.main
)`
	assert.Equal(t, want, s.Resource(`"home.title"`, `"ホーム"`, config.BundleMain))
}

func TestSwiftText(t *testing.T) {
	s := NewSwift(config.Default())
	assert.Equal(t, `Text("home.title", bundle: .module)`, s.Text(`"home.title"`))
}

func TestComments(t *testing.T) {
	tests := []struct {
		dialect Dialect
		line    string
	}{
		{dialect: NewSwift(config.Default()), line: "/// @Metadata: ホーム画面"},
		{dialect: NewGo(config.Default()), line: "// @Metadata: ホーム画面"},
	}
	for _, tt := range tests {
		t.Run(tt.dialect.Name(), func(t *testing.T) {
			assert.Equal(t, tt.line, tt.dialect.LineComment("ホーム画面"))
			assert.Equal(t, "/** @Metadata:\n複数行\nのメタデータ\n*/", tt.dialect.BlockComment("複数行\nのメタデータ"))
		})
	}
}

func TestGoCommentsSurviveGofmt(t *testing.T) {
	g := NewGo(config.Default())
	line := g.LineComment("ホーム画面")
	block := g.BlockComment("複数行\nのメタデータ")

	src := "package p\n\n" + line + "\n// Run runs.\nfunc Run() {}\n\n" + block + "\n// @Metadata(\"x\")\ntype T struct{}\n"
	got, err := format.Source([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, src, string(got))
}

func TestGoEqualityParses(t *testing.T) {
	g := NewGo(config.Default())

	tests := []struct {
		name        string
		comparisons []string
		wantReturn  string
	}{
		{name: "no members", comparisons: nil, wantReturn: "return true"},
		{name: "members", comparisons: []string{"Name", "age"}, wantReturn: "return lhs.Name == rhs.Name && lhs.age == rhs.age"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := g.Equality("User", tt.comparisons)
			assert.Contains(t, src, "func (lhs User) Equal(rhs User) bool {")
			assert.Contains(t, src, tt.wantReturn)

			_, err := parser.ParseFile(token.NewFileSet(), "", "package p\n\n"+src, parser.ParseComments)
			require.NoError(t, err)
		})
	}
}

func TestGoExpressions(t *testing.T) {
	g := NewGo(config.Default())

	resource := g.Resource(`"home.title"`, `"ホーム"`, config.BundleModule)
	assert.Equal(t, `l10n.NewResource("home.title", l10n.Value("ホーム"), l10n.BundleModule)`, resource)
	_, err := parser.ParseExpr(resource)
	assert.NoError(t, err)

	text := g.Text("key")
	assert.Equal(t, `l10n.NewText(key, l10n.BundleModule)`, text)
	_, err = parser.ParseExpr(text)
	assert.NoError(t, err)
}

func TestNew(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, SwiftName, New("", cfg).Name())
	assert.Equal(t, GoName, New("go", cfg).Name())
	assert.Nil(t, New("kotlin", cfg))
	assert.Equal(t, []string{"swift", "go"}, Names())
}
