package tag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTag(t *testing.T) {
	tests := []struct {
		name    string
		tagName string
		color   string
		wantErr bool
		errMsg  string
	}{
		{name: "valid simple name", tagName: "billing", color: "#ff8800"},
		{name: "valid name with spaces and dashes", tagName: "vip customer-2", color: "#00FF00"},
		{name: "valid underscore", tagName: "beta_user", color: "#123abc"},
		{name: "boundary 2 chars", tagName: "ab", color: "#ffffff"},
		{name: "boundary 30 chars", tagName: strings.Repeat("a", 30), color: "#ffffff"},
		{name: "too short", tagName: "a", color: "#ffffff", wantErr: true, errMsg: "at least 2"},
		{name: "too long", tagName: strings.Repeat("a", 31), color: "#ffffff", wantErr: true, errMsg: "maximum length"},
		{name: "illegal characters", tagName: "bill!ng", color: "#ffffff", wantErr: true, errMsg: "may contain only"},
		{name: "missing hash in color", tagName: "billing", color: "ff8800", wantErr: true, errMsg: "hex value"},
		{name: "short color", tagName: "billing", color: "#fff", wantErr: true, errMsg: "hex value"},
		{name: "non-hex color", tagName: "billing", color: "#zzzzzz", wantErr: true, errMsg: "hex value"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tag, err := NewTag(tc.tagName, tc.color)
			if tc.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errMsg)
				assert.Nil(t, tag)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, tag)
			assert.Equal(t, strings.TrimSpace(tc.tagName), tag.Name())
			assert.Equal(t, strings.ToLower(tc.color), tag.Color())
			assert.Zero(t, tag.UsageCount())
			assert.Nil(t, tag.LastUsedAt())
		})
	}
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "billing", NormalizeName("Billing"))
	assert.Equal(t, "billing", NormalizeName("  BILLING "))
	assert.Equal(t, "vip customer", NormalizeName("VIP Customer"))
}

func TestTag_NormalizedName(t *testing.T) {
	tag, err := NewTag("High Priority", "#ff0000")
	require.NoError(t, err)
	assert.Equal(t, "high priority", tag.NormalizedName())
	assert.Equal(t, "High Priority", tag.Name(), "display name keeps its casing")
}

func TestTag_RecordUsage(t *testing.T) {
	tag, err := NewTag("billing", "#ff8800")
	require.NoError(t, err)

	tag.RecordUsage()
	tag.RecordUsage()

	assert.Equal(t, 2, tag.UsageCount())
	require.NotNil(t, tag.LastUsedAt())
}

func TestTag_Rename(t *testing.T) {
	tag, err := NewTag("billing", "#ff8800")
	require.NoError(t, err)

	require.NoError(t, tag.Rename("invoicing"))
	assert.Equal(t, "invoicing", tag.Name())

	require.Error(t, tag.Rename("!"))
	assert.Equal(t, "invoicing", tag.Name())
}

func TestTag_ChangeColor(t *testing.T) {
	tag, err := NewTag("billing", "#ff8800")
	require.NoError(t, err)

	require.NoError(t, tag.ChangeColor("#AABBCC"))
	assert.Equal(t, "#aabbcc", tag.Color())

	require.Error(t, tag.ChangeColor("red"))
}
