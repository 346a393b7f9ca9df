package policy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passwordCheckerBackend/internal/core/analyzer"
)

func TestCheck_Defaults(t *testing.T) {
	a := analyzer.NewStrengthAnalyzer()
	p := Default()

	ok, failures := p.Check(a.Analyze("aB3$xY9#mk2!pL7@"))
	assert.True(t, ok)
	assert.Empty(t, failures)

	ok, failures = p.Check(a.Analyze("password"))
	assert.False(t, ok)
	assert.Contains(t, failures, "Minimum score: 50")
	assert.Contains(t, failures, "Common passwords not allowed")
}

func TestCheck_RequiredClasses(t *testing.T) {
	a := analyzer.NewStrengthAnalyzer()
	p := Policy{
		RequireLowercase: true,
		RequireUppercase: true,
		RequireDigits:    true,
		RequireSymbols:   true,
	}

	ok, failures := p.Check(a.Analyze("onlylowercase"))
	assert.False(t, ok)
	assert.Equal(t, []string{
		"Must contain uppercase",
		"Must contain digits",
		"Must contain symbols",
	}, failures)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"min_length": 14, "require_symbols": true}`), 0600))

	p, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 14, p.MinLength)
	assert.True(t, p.RequireSymbols)
	assert.Equal(t, 50, p.MinScore, "absent fields keep defaults")
	assert.True(t, p.RejectCommon, "reject_common defaults to true")
}

func TestLoad_ExplicitOverrideOfDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"reject_common": false}`), 0600))

	p, err := Load(path)
	require.NoError(t, err)
	assert.False(t, p.RejectCommon)
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed file")
	}
}
