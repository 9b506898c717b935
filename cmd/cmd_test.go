package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRules(t *testing.T) {
	buf := bytes.Buffer{}
	require.NoError(t, listRules(&buf))

	want := `NAME           SITE                     ROLE
Equatable      attached-to-declaration  equality-derive
SkipEquatable  attached-to-member       equality-skip-marker
L10n           expression-call          localized-resource
LocalizedText  expression-call          localized-text
Metadata       attached-to-declaration  metadata-comment
`
	assert.Equal(t, want, buf.String())
}

func TestSetOutputFilePath(t *testing.T) {
	dir := t.TempDir()

	got, err := setOutputFilePath("", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, defaultDiffFileName), got)

	got, err = setOutputFilePath(filepath.Join(dir, "out.diff"), dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "out.diff"), got)

	_, err = setOutputFilePath(filepath.Join(dir, "out.patch"), dir)
	assert.Error(t, err)

	_, err = setOutputFilePath(filepath.Join(dir, "missing", "out.diff"), dir)
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".tino.yaml"), []byte("metadata:\n  tag: \"@Doc\"\n"), 0o644))

	cfg, err := loadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "@Doc", cfg.Metadata.Tag)

	configFile = filepath.Join(dir, "missing.yaml")
	t.Cleanup(func() { configFile = defaultConfigFile })
	_, err = loadConfig(dir)
	assert.Error(t, err)
}

func TestExpandRequiresPath(t *testing.T) {
	packagePath = ""
	err := Expand(&bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--path is required")
}

func TestExpandAnnotatedApp(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping end to end test in short mode")
	}

	packagePath = filepath.Join("..", "end-to-end-tests", "annotated-app")
	diffFile = filepath.Join(t.TempDir(), "annotated-app.diff")
	t.Cleanup(func() {
		packagePath = defaultPackagePath
		diffFile = defaultOutputFilePath
	})

	out := bytes.Buffer{}
	require.NoError(t, Expand(&out))
	assert.Empty(t, out.String())

	data, err := os.ReadFile(diffFile)
	require.NoError(t, err)
	diff := string(data)

	for _, want := range []string{
		"+func (lhs ProfileView) Equal(rhs ProfileView) bool {",
		"+\treturn lhs.User == rhs.User && lhs.Score == rhs.Score",
		"+// @Metadata: プロフィール画面",
		"+// @Metadata: エントリーポイント",
		"+/** @Metadata:\n+設定\n+複数行\n+*/\n // @Metadata(\"\"\"",
		`l10n.NewResource("home.title", l10n.Value("ホーム"), l10n.BundleModule)`,
		`l10n.NewResource("home.subtitle", l10n.Value("ようこそ"), l10n.BundleMain)`,
		`l10n.NewText("greeting", l10n.BundleModule)`,
	} {
		assert.Contains(t, diff, want)
	}
	assert.NotContains(t, diff, "l10n.go")
	assert.NotContains(t, diff, "// / @Metadata")
	assert.NotContains(t, diff, "*/ //")
}
