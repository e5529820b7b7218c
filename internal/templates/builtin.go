package templates

// templates is the built-in catalog. It is inert data: adding a kind means
// adding an entry here, never touching orchestration code. Entry order
// within Files is the emission order.
var templates = map[string]Template{
	"library": {
		Kind:        "library",
		Description: "Python library with a src/ package layout",
		Files: []File{
			{Path: "README.md", Content: `# {name}
A Python library called {name}.
`},
			{Path: "pyproject.toml", Content: `[build-system]
requires = ["setuptools>=61.0", "wheel"]
build-backend = "setuptools.build_meta"

[project]
name = "{package_name}"
version = "0.0.0"
description = "A Python library"
readme = "README.md"
license = {text = "{license_id}"}
requires-python = ">={py_min}"

[tool.setuptools.packages.find]
where = ["src"]
`},
			{Path: "src/{package_name}/__init__.py", Content: `# {package_name} package
__version__ = "0.0.0"
`},
			{Path: "tests/test_basic.py", Content: `def test_import():
    import {package_name}
    assert True
`},
			{Path: ".gitignore", Content: `__pycache__/
*.pyc
.env
.venv
dist/
build/
*.egg-info/
`},
		},
	},

	"package": {
		Kind:        "package",
		Description: "Application package with a console entry point",
		Files: []File{
			{Path: "README.md", Content: `# {name}

A Python application package called {name}.
`},
			{Path: "pyproject.toml", Content: `[build-system]
requires = ["setuptools>=61.0", "wheel"]
build-backend = "setuptools.build_meta"

[project]
name = "{package_name}"
version = "0.0.0"
description = "Simple application"
readme = "README.md"
license = {text = "{license_id}"}
requires-python = ">={py_min}"

[project.scripts]
{cli_name} = "{module_path}:main"
`},
			{Path: "{module_path}.py", Content: `def main():
    print("Hello from {name}")

if __name__ == "__main__":
    main()
`},
			{Path: ".gitignore", Content: `__pycache__/
*.pyc
.env
.venv
`},
		},
	},

	"cli": {
		Kind:        "cli",
		Description: "Argparse-based command line tool",
		Files: []File{
			{Path: "README.md", Content: `# {name}

A simple CLI tool.
`},
			{Path: "pyproject.toml", Content: `[build-system]
requires = ["setuptools>=61.0", "wheel"]
build-backend = "setuptools.build_meta"

[project]
name = "{package_name}"
version = "0.0.0"
description = "CLI tool"
readme = "README.md"
license = {text = "{license_id}"}
requires-python = ">={py_min}"

[project.scripts]
{cli_name} = "{module_path}:main"
`},
			{Path: "{module_path}.py", Content: `import argparse

def main():
    parser = argparse.ArgumentParser(prog="{cli_name}")
    parser.add_argument('--version', action='store_true')
    args = parser.parse_args()
    if args.version:
        print("{name} 0.0.0")
    else:
        print("Hello from {name}")

if __name__ == "__main__":
    main()
`},
			{Path: ".gitignore", Content: `__pycache__/
*.pyc
.venv
`},
		},
	},

	"flask": {
		Kind:        "flask",
		Description: "Flask web application",
		Files: []File{
			{Path: "README.md", Content: `# {name}

A small Flask app.
`},
			{Path: "pyproject.toml", Content: `[build-system]
requires = ["setuptools>=61.0", "wheel"]
build-backend = "setuptools.build_meta"

[project]
name = "{package_name}"
version = "0.0.0"
description = "Flask web app"
readme = "README.md"
license = {text = "{license_id}"}
requires-python = ">={py_min}"
dependencies = ["flask>=2.0"]
`},
			{Path: "app.py", Content: `from flask import Flask, render_template_string
app = Flask(__name__)

@app.route('/')
def index():
    return render_template_string('<h1>Hello from {name}</h1>')

if __name__ == '__main__':
    app.run(debug=True)
`},
			{Path: "requirements.txt", Content: `flask>=2.0`},
			{Path: ".gitignore", Content: `__pycache__/
instance/
.env
.venv
`},
		},
	},

	"fastapi": {
		Kind:        "fastapi",
		Description: "FastAPI web application",
		Files: []File{
			{Path: "README.md", Content: `# {name}

A small FastAPI app.
`},
			{Path: "pyproject.toml", Content: `[build-system]
requires = ["setuptools>=61.0", "wheel"]
build-backend = "setuptools.build_meta"

[project]
name = "{package_name}"
version = "0.0.0"
description = "FastAPI web app"
readme = "README.md"
license = {text = "{license_id}"}
requires-python = ">={py_min}"
dependencies = ["fastapi>=0.70", "uvicorn>=0.15"]
`},
			{Path: "main.py", Content: `from fastapi import FastAPI
app = FastAPI()

@app.get('/')
def read_root():
    return {'message': 'Hello from {name}'}
`},
			{Path: "requirements.txt", Content: `fastapi>=0.70
uvicorn>=0.15
`},
			{Path: ".gitignore", Content: `__pycache__/
.venv
`},
		},
	},

	"django": {
		Kind:        "django",
		Description: "Minimal Django project",
		Files: []File{
			{Path: "README.md", Content: `# {name}

A minimal Django project scaffold.
`},
			{Path: "requirements.txt", Content: `django>=4.0`},
			{Path: "manage.py", Content: `#!/usr/bin/env python
import os
import sys

if __name__ == '__main__':
    os.environ.setdefault('DJANGO_SETTINGS_MODULE', '{module_path}.settings')
    try:
        from django.core.management import execute_from_command_line
    except ImportError as exc:
        raise
    execute_from_command_line(sys.argv)
`},
			{Path: "{module_path}/__init__.py", Content: ``},
			{Path: "{module_path}/settings.py", Content: `SECRET_KEY = 'replace-me'
DEBUG = True
ALLOWED_HOSTS = []

INSTALLED_APPS = [
    'django.contrib.admin',
    'django.contrib.auth',
]

ROOT_URLCONF = '{module_path}.urls'
`},
			{Path: "{module_path}/urls.py", Content: `from django.urls import path
from django.http import HttpResponse

def index(request):
    return HttpResponse('Hello from {name}')

urlpatterns = [path('', index)]
`},
		},
	},

	"data-science": {
		Kind:        "data-science",
		Description: "Data-science layout with notebooks/",
		Files: []File{
			{Path: "README.md", Content: `# {name}

Data-science project layout with a simple src/ and notebooks/.
`},
			{Path: "requirements.txt", Content: `numpy
pandas
matplotlib
scikit-learn
`},
			{Path: "src/", Content: ``},
			{Path: "notebooks/README.md", Content: `# Notebooks

Add your exploratory notebooks here.
`},
			{Path: ".gitignore", Content: `__pycache__/
.ipynb_checkpoints/
.venv
`},
		},
	},

	"notebook": {
		Kind:        "notebook",
		Description: "Single-notebook project",
		Files: []File{
			{Path: "README.md", Content: `# {name} Notebook Project

Single notebook project.
`},
			{Path: "notebook.ipynb", Content: ``},
			{Path: ".gitignore", Content: `__pycache__/
.ipynb_checkpoints/
.venv
`},
		},
	},

	"poetry": {
		Kind:        "poetry",
		Description: "Poetry-managed project",
		Files: []File{
			{Path: "README.md", Content: `# {name}

A project scaffold using Poetry.
`},
			{Path: "pyproject.toml", Content: `[tool.poetry]
name = "{package_name}"
version = "0.0.0"
description = "{name}"
authors = ["{author}"]

[tool.poetry.dependencies]
python = ">={py_min}"

[tool.poetry.dev-dependencies]
pytest = "*"
`},
			{Path: ".gitignore", Content: `__pycache__/
.venv
`},
		},
	},

	"docker": {
		Kind:        "docker",
		Description: "Dockerized Python app",
		Files: []File{
			{Path: "README.md", Content: `# {name}

Dockerized Python app scaffold.
`},
			{Path: "Dockerfile", Content: `FROM python:{py_min}-slim
WORKDIR /app
COPY . /app
RUN pip install -r requirements.txt
CMD ["python", "{module_path}.py"]
`},
			{Path: "requirements.txt", Content: `# Add your dependencies`},
			{Path: ".dockerignore", Content: `__pycache__/
*.pyc
.venv
`},
		},
	},

	"streamlit": {
		Kind:        "streamlit",
		Description: "Streamlit app",
		Files: []File{
			{Path: "README.md", Content: `# {name}

A Streamlit app scaffold.
`},
			{Path: "app.py", Content: `import streamlit as st

st.title('Hello from {name}')

if __name__ == '__main__':
    pass
`},
			{Path: "requirements.txt", Content: `streamlit`},
			{Path: ".gitignore", Content: `__pycache__/
.venv
`},
		},
	},

	"gradio": {
		Kind:        "gradio",
		Description: "Gradio demo",
		Files: []File{
			{Path: "README.md", Content: `# {name}

A Gradio demo scaffold.
`},
			{Path: "app.py", Content: `import gradio as gr

def greet(name):
    return f'Hello {name} from {name}'

iface = gr.Interface(fn=greet, inputs='text', outputs='text')

if __name__ == '__main__':
    iface.launch()
`},
			{Path: "requirements.txt", Content: `gradio`},
		},
	},

	"aws-lambda": {
		Kind:        "aws-lambda",
		Description: "AWS Lambda handler with SAM template",
		Files: []File{
			{Path: "README.md", Content: `# {name}

AWS Lambda function scaffold (handler-based).
`},
			{Path: "handler.py", Content: `def handler(event, context):
    return {'statusCode': 200, 'body': 'Hello from {name}'}
`},
			{Path: "template.yml", Content: `AWSTemplateFormatVersion: '2010-09-09'
Resources:
  {name}Function:
    Type: AWS::Serverless::Function
    Properties:
      Handler: handler.handler
      Runtime: python3.9
      CodeUri: ./
`},
			{Path: "requirements.txt", Content: `# Add dependencies for lambda`},
		},
	},

	"telegram-bot": {
		Kind:        "telegram-bot",
		Description: "Telegram bot skeleton",
		Files: []File{
			{Path: "README.md", Content: `# {name}

A Telegram bot scaffold using python-telegram-bot (add dependency manually).
`},
			{Path: "bot.py", Content: `from telegram import Update
from telegram.ext import Updater, CommandHandler, CallbackContext

def start(update: Update, context: CallbackContext):
    update.message.reply_text('Hello from {name}')

def main():
    updater = Updater('YOUR_TOKEN')
    dp = updater.dispatcher
    dp.add_handler(CommandHandler('start', start))
    updater.start_polling()
    updater.idle()

if __name__ == '__main__':
    main()
`},
			{Path: "requirements.txt", Content: `python-telegram-bot`},
		},
	},

	"sanic": {
		Kind:        "sanic",
		Description: "Sanic async web app",
		Files: []File{
			{Path: "README.md", Content: `# {name}

A Sanic async web app scaffold.
`},
			{Path: "app.py", Content: `from sanic import Sanic
from sanic.response import json

app = Sanic(__name__)

@app.get('/')
async def test(request):
    return json({'message': 'Hello from {name}'})

if __name__ == '__main__':
    app.run(host='0.0.0.0', port=8000)
`},
			{Path: "requirements.txt", Content: `sanic`},
		},
	},

	"aiohttp": {
		Kind:        "aiohttp",
		Description: "aiohttp server",
		Files: []File{
			{Path: "README.md", Content: `# {name}

An aiohttp server scaffold.
`},
			{Path: "app.py", Content: `from aiohttp import web

async def handle(request):
    return web.Response(text='Hello from {name}')

app = web.Application()
app.router.add_get('/', handle)

if __name__ == '__main__':
    web.run_app(app, port=8080)
`},
			{Path: "requirements.txt", Content: `aiohttp`},
		},
	},

	"mlops": {
		Kind:        "mlops",
		Description: "MLOps layout with train entrypoint and Makefile",
		Files: []File{
			{Path: "README.md", Content: `# {name}

MLOps project scaffold: src/, experiments/, models/, data/ and a simple Makefile.
`},
			{Path: "Makefile", Content: `.PHONY: venv train

venv:
	python -m venv .venv

train:
	python -m src.train
`},
			{Path: "src/__init__.py", Content: ``},
			{Path: "src/train.py", Content: `def main():
    print('Training placeholder for {name}')

if __name__ == '__main__':
    main()
`},
			{Path: "data/README.md", Content: `# data

Place datasets here.
`},
			{Path: "models/README.md", Content: `# models

Trained models will be stored here.
`},
			{Path: ".gitignore", Content: `__pycache__/
.venv/
models/
data/
`},
		},
	},

	"qt": {
		Kind:        "qt",
		Description: "PyQt desktop app",
		Files: []File{
			{Path: "README.md", Content: `# {name}

A PyQt5/6 desktop app scaffold.
`},
			{Path: "app.py", Content: `import sys
try:
    from PyQt6.QtWidgets import QApplication, QLabel
except Exception:
    from PyQt5.QtWidgets import QApplication, QLabel

app = QApplication(sys.argv)
label = QLabel('Hello from {name}')
label.show()
app.exec()
`},
			{Path: "requirements.txt", Content: `pyqt6`},
		},
	},

	"electron": {
		Kind:        "electron",
		Description: "Electron frontend with Python backend",
		Files: []File{
			{Path: "README.md", Content: `# {name}

An Electron + Python scaffold (Electron frontend but Python backend served over HTTP).
`},
			{Path: "frontend/README.md", Content: `Place your Electron app here.
`},
			{Path: "backend.py", Content: `from http.server import SimpleHTTPRequestHandler, HTTPServer

class Handler(SimpleHTTPRequestHandler):
    pass

if __name__ == '__main__':
    HTTPServer(('0.0.0.0', 5000), Handler).serve_forever()
`},
			{Path: "requirements.txt", Content: `# Add Python backend deps`},
		},
	},

	"grpc": {
		Kind:        "grpc",
		Description: "gRPC service skeleton",
		Files: []File{
			{Path: "README.md", Content: `# {name}

A basic gRPC Python service scaffold (add protobuf files and deps).
`},
			{Path: "server.py", Content: `import grpc
# import generated pb2 and pb2_grpc modules

def serve():
    print('gRPC server placeholder for {name}')

if __name__ == '__main__':
    serve()
`},
			{Path: "requirements.txt", Content: `grpcio`},
		},
	},
}
