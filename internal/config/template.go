package config

// DefaultConfigTemplate is the starter config file written by
// `pyforge config init`.
const DefaultConfigTemplate = `# pyforge configuration.
# Values here seed new projects; flags and PYFORGE_* env vars override them.

# Author name written to project manifests and license texts.
author: Your Name

# License identifier for new projects. Leave unset to scaffold proprietary
# projects without a LICENSE file.
#license: MIT

# Minimum Python version for requires-python and CI matrices.
python: "3.8"

# Always create a .venv virtual environment.
always_venv: false

# Always write a GitHub Actions workflow.
always_ci: false
`
