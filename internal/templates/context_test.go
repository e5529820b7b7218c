package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildContext(t *testing.T) {
	tests := []struct {
		name   string
		params ContextParams
		want   Context
	}{
		{
			name: "single kind keeps project name",
			params: ContextParams{
				Project:   "acme",
				Kind:      "library",
				KindCount: 1,
				LicenseID: "MIT",
				Author:    "Jane Doe",
				PyMin:     "3.8",
				Year:      2026,
			},
			want: Context{
				"name":         "acme",
				"package_name": "acme",
				"module_path":  "acme",
				"cli_name":     "acme",
				"license_id":   "MIT",
				"py_min":       "3.8",
				"year":         "2026",
				"author":       "Jane Doe",
			},
		},
		{
			name: "multi kind qualifies name with kind",
			params: ContextParams{
				Project:   "acme",
				Kind:      "flask",
				KindCount: 2,
				LicenseID: "MIT",
				Author:    "Jane Doe",
				PyMin:     "3.8",
				Year:      2026,
			},
			want: Context{
				"name":         "acme-flask",
				"package_name": "acme_flask",
				"module_path":  "acme_flask",
				"cli_name":     "acme-flask",
				"license_id":   "MIT",
				"py_min":       "3.8",
				"year":         "2026",
				"author":       "Jane Doe",
			},
		},
		{
			name: "hyphenated project normalizes for imports",
			params: ContextParams{
				Project:   "my-tool",
				Kind:      "cli",
				KindCount: 1,
				LicenseID: "Apache-2.0",
				Author:    "Dev",
				PyMin:     "3.10",
				Year:      2026,
			},
			want: Context{
				"name":         "my-tool",
				"package_name": "my_tool",
				"module_path":  "my_tool",
				"cli_name":     "my-tool",
				"license_id":   "Apache-2.0",
				"py_min":       "3.10",
				"year":         "2026",
				"author":       "Dev",
			},
		},
		{
			name: "underscored project normalizes for console scripts",
			params: ContextParams{
				Project:   "my_tool",
				Kind:      "cli",
				KindCount: 1,
				LicenseID: "MIT",
				Author:    "Dev",
				PyMin:     "3.8",
				Year:      2026,
			},
			want: Context{
				"name":         "my_tool",
				"package_name": "my_tool",
				"module_path":  "my_tool",
				"cli_name":     "my-tool",
				"license_id":   "MIT",
				"py_min":       "3.8",
				"year":         "2026",
				"author":       "Dev",
			},
		},
		{
			name: "empty license falls back to proprietary",
			params: ContextParams{
				Project:   "acme",
				Kind:      "library",
				KindCount: 1,
				Author:    "Dev",
				PyMin:     "3.8",
				Year:      2026,
			},
			want: Context{
				"name":         "acme",
				"package_name": "acme",
				"module_path":  "acme",
				"cli_name":     "acme",
				"license_id":   ProprietaryLicense,
				"py_min":       "3.8",
				"year":         "2026",
				"author":       "Dev",
			},
		},
		{
			name: "hyphenated project with multiple kinds",
			params: ContextParams{
				Project:   "data-hub",
				Kind:      "fastapi",
				KindCount: 3,
				LicenseID: "MPL-2.0",
				Author:    "Team",
				PyMin:     "3.11",
				Year:      2026,
			},
			want: Context{
				"name":         "data-hub-fastapi",
				"package_name": "data_hub_fastapi",
				"module_path":  "data_hub_fastapi",
				"cli_name":     "data-hub-fastapi",
				"license_id":   "MPL-2.0",
				"py_min":       "3.11",
				"year":         "2026",
				"author":       "Team",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildContext(tt.params)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildContextInvariants(t *testing.T) {
	params := ContextParams{
		Project:   "mixed-name_case",
		Kind:      "telegram-bot",
		KindCount: 2,
		LicenseID: "MIT",
		Author:    "Dev",
		PyMin:     "3.8",
		Year:      2026,
	}
	ctx := BuildContext(params)

	assert.NotContains(t, ctx["package_name"], "-", "package names must be importable")
	assert.NotContains(t, ctx["module_path"], "-", "module paths must be importable")
	assert.NotContains(t, ctx["cli_name"], "_", "cli names follow console-script convention")
	assert.Len(t, ctx, 8, "context keys are a closed set")
}
