// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package rules

// credentialPattern captures a credential keyword and its assigned value in group 2.
const credentialPattern = `(?i)(password|secret|token|apikey|access_key|client_secret)\s*[:=]\s*['"]?` +
	`([a-zA-Z0-9_!@#$%^&*()]+)['"]?`

// configFiles are well-known configuration file names scanned for credentials.
var configFiles = []string{
	".env", ".env.local", ".env.prod", ".env.dev", ".project",
	"Jenkinsfile", "docker-compose.yml", "webpack.config.js",
	"tsconfig.json", "package.json", "package-lock.json",
	"build.gradle", "pom.xml", "composer.json", "go.mod",
	"Gemfile", "Gemfile.lock", "requirements.txt", "setup.py",
	"Makefile", "nginx.conf", "apache.conf", ".gitignore",
	".eslintrc", ".prettierrc", "babel.config.js", "jest.config.js",
}

// CredentialExtensions are the extensions of configuration-like files scanned for credentials.
var CredentialExtensions = []string{
	".properties", ".yml", ".yaml", ".ini", ".cfg", ".conf", ".toml", ".json", ".xml",
}

func configPatterns() []ConfigPattern {
	return []ConfigPattern{
		{
			File:   "application.properties",
			Format: FormatText,
			Needles: []ConfigNeedle{
				{Needle: "spring.datasource", Technology: "Spring Boot"},
				{Needle: "quarkus.datasource", Technology: "Quarkus"},
			},
		},
		{
			File:   "application.yml",
			Format: FormatYAML,
			Needles: []ConfigNeedle{
				{Needle: "spring:", Technology: "Spring Boot"},
				{Needle: "quarkus:", Technology: "Quarkus"},
			},
		},
		{
			File:   "composer.json",
			Format: FormatText,
			Needles: []ConfigNeedle{
				{Needle: `"laravel/framework"`, Technology: "Laravel"},
				{Needle: `"symfony/symfony"`, Technology: "Symfony"},
			},
		},
		{
			File:   "package.json",
			Format: FormatText,
			Needles: []ConfigNeedle{
				{Needle: `"express"`, Technology: "Express"},
				{Needle: `"next"`, Technology: "Next.js"},
				{Needle: `"react"`, Technology: "React"},
			},
		},
		{
			File:   "requirements.txt",
			Format: FormatText,
			Needles: []ConfigNeedle{
				{Needle: "Django", Technology: "Django"},
				{Needle: "Flask", Technology: "Flask"},
				{Needle: "fastapi", Technology: "FastAPI"},
			},
		},
		{
			File:   ".env",
			Format: FormatDotEnv,
			Needles: []ConfigNeedle{
				{Needle: "DB_CONNECTION=mysql", Technology: "MySQL"},
				{Needle: "DB_CONNECTION=pgsql", Technology: "PostgreSQL"},
				{Needle: "CACHE_DRIVER=redis", Technology: "Redis"},
			},
		},
	}
}

// DatabaseTechnologies are the config detector technologies reported under the database category.
var DatabaseTechnologies = []string{"MySQL", "PostgreSQL", "Redis"}
