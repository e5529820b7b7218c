// Package workflow generates the GitHub Actions pipeline definition written
// into scaffolded projects.
package workflow

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Path is where the generated pipeline lands, relative to a kind's
// subdirectory.
const Path = ".github/workflows/python-package.yml"

// defaultVersions is the fixed interpreter matrix the requested minimum is
// merged into.
var defaultVersions = []string{"3.9", "3.10", "3.11"}

const base = `name: CI for %s

on: [push, pull_request]

jobs:
  test:
    runs-on: ubuntu-latest
    strategy:
      matrix:
        python-version: [%s]
    steps:
    - uses: actions/checkout@v3
    - name: Set up Python ${{ matrix.python-version }}
      uses: actions/setup-python@v4
      with:
        python-version: ${{ matrix.python-version }}
    - name: Install dependencies
      run: |
        python -m pip install --upgrade pip
`

const webSteps = `    - name: Install requirements
      run: |
        pip install -r requirements.txt || true
    - name: Run simple smoke test
      run: |
        echo "Run server smoke checks" || true
`

const djangoSteps = `    - name: Install requirements
      run: |
        pip install -r requirements.txt || true
    - name: Run Django checks
      run: |
        python manage.py --help || true
`

const mlopsSteps = `    - name: Install requirements
      run: |
        pip install -r requirements.txt || true
    - name: Run training smoke
      run: |
        python -m src.train || true
`

const lambdaSteps = `    - name: Validate SAM template
      run: |
        echo "No SAM validation configured" || true
`

const defaultSteps = `    - name: Install dev deps
      run: |
        pip install pytest || true
    - name: Run tests
      run: |
        pytest -q || true
`

// Generate produces the workflow text for one kind. The verification steps
// are a starting scaffold, so every one of them tolerates its own failure.
func Generate(kind, pyMin string) string {
	versions := matrixVersions(pyMin)
	quoted := make([]string, len(versions))
	for i, v := range versions {
		quoted[i] = "'" + v + "'"
	}

	var b strings.Builder
	fmt.Fprintf(&b, base, kind, strings.Join(quoted, ", "))
	b.WriteString(verificationSteps(kind))
	return b.String()
}

// verificationSteps selects the kind-specific tail of the pipeline.
func verificationSteps(kind string) string {
	switch kind {
	case "flask", "fastapi", "sanic", "aiohttp":
		return webSteps
	case "django":
		return djangoSteps
	case "mlops":
		return mlopsSteps
	case "aws-lambda":
		return lambdaSteps
	default:
		return defaultSteps
	}
}

// matrixVersions merges the minimum version into the default matrix,
// dropping duplicates. Entries sort by version precedence so that 3.10
// lands after 3.9, which plain string ordering gets wrong.
func matrixVersions(pyMin string) []string {
	candidates := make([]string, 0, len(defaultVersions)+1)
	if pyMin != "" {
		candidates = append(candidates, pyMin)
	}
	candidates = append(candidates, defaultVersions...)

	seen := make(map[string]bool, len(candidates))
	versions := make([]string, 0, len(candidates))
	for _, v := range candidates {
		if seen[v] {
			continue
		}
		seen[v] = true
		versions = append(versions, v)
	}

	parsed := make(map[string]*semver.Version, len(versions))
	for _, v := range versions {
		sv, err := semver.NewVersion(v)
		if err != nil {
			// Unparseable minimum: keep the merge order as-is.
			return versions
		}
		parsed[v] = sv
	}
	sort.Slice(versions, func(i, j int) bool {
		return parsed[versions[i]].LessThan(parsed[versions[j]])
	})
	return versions
}
