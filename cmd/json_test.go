package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chriserin/ftreport/internal/db"
)

const loginFeature = `Feature: Login
  Scenario: User logs in
    Given a user
    When they log in
`

const checkoutFeature = `Feature: Checkout
  Scenario Outline: Pay
    Given a <card>

    Examples:
      | card |
      | visa |
`

func writeFeature(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func runJSON(t *testing.T, paths []string, outDir string, archive bool) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, RunJSON(&buf, paths, outDir, archive))
	return buf.String()
}

func TestJSON_WritesOneDocumentPerFeature(t *testing.T) {
	inTempDir(t)
	writeFeature(t, "features/login.feature", loginFeature)
	writeFeature(t, "features/checkout.feature", checkoutFeature)

	out := runJSON(t, nil, "", false)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)

	var first, second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "Checkout", first["name"])
	assert.Equal(t, "Login", second["name"])

	steps := second["elements"].([]any)[0].(map[string]any)["steps"].([]any)
	assert.Len(t, steps, 2)
}

func TestJSON_ExplicitPaths(t *testing.T) {
	inTempDir(t)
	writeFeature(t, "specs/login.feature", loginFeature)

	out := runJSON(t, []string{"specs/login.feature"}, "", false)

	assert.True(t, strings.HasPrefix(out, `{"keyword":"Feature","name":"Login"`))
}

func TestJSON_OutDirectory(t *testing.T) {
	inTempDir(t)
	writeFeature(t, "features/login.feature", loginFeature)

	out := runJSON(t, nil, "reports", false)

	assert.Contains(t, out, "json  features/login.feature -> reports/login.json")
	assert.Contains(t, out, "wrote 1 reports")

	data, err := os.ReadFile("reports/login.json")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name":"Login"`)
}

func TestJSON_IndentFromConfig(t *testing.T) {
	inTempDir(t)
	runInit(t)
	require.NoError(t, os.WriteFile(".ftreport/config.yaml", []byte("indent: \"  \"\n"), 0o644))
	writeFeature(t, "features/login.feature", loginFeature)

	out := runJSON(t, nil, "", false)

	assert.Contains(t, out, "{\n  \"keyword\": \"Feature\",")
}

func TestJSON_SyntaxErrorSkipsFile(t *testing.T) {
	inTempDir(t)
	writeFeature(t, "features/bad.feature", "Feature: Bad\n  Rule: nope\n")
	writeFeature(t, "features/login.feature", loginFeature)

	var buf bytes.Buffer
	err := RunJSON(&buf, nil, "", false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 feature files")
	assert.Contains(t, buf.String(), "fail  features/bad.feature")
	assert.Contains(t, buf.String(), `"name":"Login"`)
}

func TestJSON_ArchiveRequiresInit(t *testing.T) {
	inTempDir(t)
	writeFeature(t, "features/login.feature", loginFeature)

	var buf bytes.Buffer
	err := RunJSON(&buf, nil, "", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ftreport init")
}

func TestJSON_ArchivesReports(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeFeature(t, "features/login.feature", loginFeature)

	out := runJSON(t, nil, "reports", true)
	assert.Contains(t, out, "arc   #1 features/login.feature")

	sqlDB, err := db.Open(".ftreport/reports.db")
	require.NoError(t, err)
	defer sqlDB.Close()

	r, err := db.GetReport(sqlDB, 1)
	require.NoError(t, err)
	assert.Equal(t, "Login", r.FeatureName)
	assert.Contains(t, r.Document, `"elements"`)
}

func TestReportFileName(t *testing.T) {
	assert.Equal(t, "login.json", reportFileName("features/login.feature"))
	assert.Equal(t, "notes.json", reportFileName("notes"))
}
