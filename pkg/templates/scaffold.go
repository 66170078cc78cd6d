package templates

// ScaffoldFile is one file of a starter template.
type ScaffoldFile struct {
	Path    string
	Content string
}

// Scaffold returns the starter file set for a template name. Files with
// toolchain-sensitive names (go.mod, .gitignore) live here as literals
// instead of embedded assets so the module's own build is not affected.
func Scaffold(name string) ([]ScaffoldFile, bool) {
	files, ok := scaffolds[name]
	return files, ok
}

var scaffolds = map[string][]ScaffoldFile{
	"python": {
		{Path: "requirements.txt", Content: ""},
		{Path: ".gitignore", Content: "*.pyc\n__pycache__/\n.env\n"},
	},
	"node": {
		{Path: "package.json", Content: "{}\n"},
		{Path: ".gitignore", Content: "node_modules/\n.env\n"},
	},
	"angular": {
		{Path: "package.json", Content: `{
  "name": "angular-project",
  "version": "0.0.0",
  "scripts": {
    "ng": "ng",
    "start": "ng serve",
    "build": "ng build",
    "watch": "ng build --watch --configuration development",
    "test": "ng test"
  },
  "private": true
}
`},
		{Path: ".gitignore", Content: `/dist
/tmp
/out-tsc
/bazel-out

# dependencies
/node_modules

# IDEs and editors
.idea/
.project
.classpath
.vscode/*

# Miscellaneous
/.angular/cache
.sass-cache/
/coverage

# System files
.DS_Store
Thumbs.db
`},
	},
	"java": {
		{Path: "pom.xml", Content: `<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0"
         xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
         xsi:schemaLocation="http://maven.apache.org/POM/4.0.0 http://maven.apache.org/xsd/maven-4.0.0.xsd">
    <modelVersion>4.0.0</modelVersion>

    <groupId>com.example</groupId>
    <artifactId>java-project</artifactId>
    <version>1.0-SNAPSHOT</version>

    <properties>
        <maven.compiler.source>11</maven.compiler.source>
        <maven.compiler.target>11</maven.compiler.target>
    </properties>
</project>
`},
		{Path: ".gitignore", Content: `target/
.classpath
.project
.settings
.idea
*.iml
build/
.vscode/
.DS_Store
`},
		{Path: "src/main/java/com/example/App.java", Content: `package com.example;

public class App {
    public static void main(String[] args) {
        System.out.println("Hello World!");
    }
}
`},
	},
	"golang": {
		{Path: "go.mod", Content: "module github.com/example/go-project\n\ngo 1.21\n"},
		{Path: ".gitignore", Content: `# Binaries
*.exe
*.dll
*.so
*.dylib

# Test binary, built with go test -c
*.test

# Coverage output
*.out

# Dependency directories
vendor/

# Go workspace file
go.work

# IDE specific files
.idea/
.vscode/
*.swp

# OS specific files
.DS_Store
Thumbs.db
`},
		{Path: "main.go", Content: `package main

import "fmt"

func main() {
	fmt.Println("Hello, Go!")
}
`},
	},
	"php": {
		{Path: "composer.json", Content: `{
    "name": "example/php-project",
    "description": "PHP Project",
    "type": "project",
    "require": {
        "php": ">=7.4"
    },
    "autoload": {
        "psr-4": {
            "App\\": "src/"
        }
    }
}
`},
		{Path: ".gitignore", Content: `/vendor/
.env
.phpunit.result.cache
composer.lock

# IDE specific files
.idea/
.vscode/

# OS specific files
.DS_Store
Thumbs.db

# PHP specific
*.log
*.cache
`},
		{Path: "index.php", Content: "<?php\n\necho \"Hello, PHP!\";\n"},
	},
}
