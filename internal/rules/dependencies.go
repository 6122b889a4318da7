// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package rules

// PackageManifest is the declaration file checked for every tree, whatever the dominant language.
const PackageManifest = "package.json"

// PackageBlocks are the package.json blocks holding declared packages.
var PackageBlocks = []string{"dependencies", "devDependencies"}

func packageTechnologies() []PackageTechnology {
	return []PackageTechnology{
		{Name: "React", Packages: []string{"react", "react-dom"}, Category: Frontend},
		{Name: "Next.js", Packages: []string{"next"}, Category: Frontend},
		{Name: "Angular", Packages: []string{"@angular/core"}, Category: Frontend},
		{Name: "Vue", Packages: []string{"vue"}, Category: Frontend},
		{Name: "Svelte", Packages: []string{"svelte"}, Category: Frontend},
		{Name: "Express", Packages: []string{"express"}, Category: Backend},
		{Name: "NestJS", Packages: []string{"@nestjs/core"}, Category: Backend},
		{Name: "Koa", Packages: []string{"koa"}, Category: Backend},
		{Name: "TypeORM", Packages: []string{"typeorm"}, Category: Database},
		{Name: "Sequelize", Packages: []string{"sequelize"}, Category: Database},
		{Name: "Mongoose", Packages: []string{"mongoose"}, Category: Database},
		{Name: "Prisma", Packages: []string{"prisma", "@prisma/client"}, Category: Database},
		{Name: "webpack", Packages: []string{"webpack"}, Category: BuildTools},
		{Name: "vite", Packages: []string{"vite"}, Category: BuildTools},
		{Name: "Jest", Packages: []string{"jest"}, Category: Testing},
		{Name: "Mocha", Packages: []string{"mocha"}, Category: Testing},
		{Name: "Cypress", Packages: []string{"cypress"}, Category: Testing},
	}
}

func textDependencies() map[string][]TextDependency {
	return map[string][]TextDependency{
		"Java": {
			{File: "pom.xml", Needle: "spring-boot", Category: Backend, Technology: "Spring Boot"},
			{File: "pom.xml", Needle: "quarkus", Category: Backend, Technology: "Quarkus"},
			{File: "pom.xml", Needle: "hibernate", Category: Database, Technology: "Hibernate"},
			{File: "pom.xml", Needle: "junit", Category: Testing, Technology: "JUnit"},
			{File: "pom.xml", Needle: "mockito", Category: Testing, Technology: "Mockito"},
			{File: "build.gradle", Needle: "spring-boot", Category: Backend, Technology: "Spring Boot"},
			{File: "build.gradle", Needle: "quarkus", Category: Backend, Technology: "Quarkus"},
			{File: "build.gradle", Needle: "junit", Category: Testing, Technology: "JUnit"},
		},
		"Kotlin": {
			{File: "build.gradle.kts", Needle: "io.ktor", Category: Backend, Technology: "Ktor"},
			{File: "build.gradle.kts", Needle: "spring-boot", Category: Backend, Technology: "Spring Boot"},
			{File: "build.gradle.kts", Needle: "junit", Category: Testing, Technology: "JUnit"},
		},
		"Python": {
			{File: "requirements.txt", Needle: "django", Category: Backend, Technology: "Django"},
			{File: "requirements.txt", Needle: "flask", Category: Backend, Technology: "Flask"},
			{File: "requirements.txt", Needle: "fastapi", Category: Backend, Technology: "FastAPI"},
			{File: "requirements.txt", Needle: "sqlalchemy", Category: Database, Technology: "SQLAlchemy"},
			{File: "requirements.txt", Needle: "pytest", Category: Testing, Technology: "pytest"},
			{File: "setup.py", Needle: "django", Category: Backend, Technology: "Django"},
			{File: "setup.py", Needle: "flask", Category: Backend, Technology: "Flask"},
			{File: "setup.py", Needle: "fastapi", Category: Backend, Technology: "FastAPI"},
		},
		"Go": {
			{File: "go.mod", Needle: "github.com/gin-gonic/gin", Category: Backend, Technology: "Gin"},
			{File: "go.mod", Needle: "github.com/labstack/echo", Category: Backend, Technology: "Echo"},
			{File: "go.mod", Needle: "github.com/gofiber/fiber", Category: Backend, Technology: "Fiber"},
			{File: "go.mod", Needle: "gorm.io/gorm", Category: Database, Technology: "GORM"},
			{File: "go.mod", Needle: "github.com/stretchr/testify", Category: Testing, Technology: "Testify"},
		},
		"Ruby": {
			{File: "Gemfile", Needle: "rails", Category: Backend, Technology: "Ruby on Rails"},
			{File: "Gemfile", Needle: "sinatra", Category: Backend, Technology: "Sinatra"},
			{File: "Gemfile", Needle: "rspec", Category: Testing, Technology: "RSpec"},
		},
	}
}

func keyDependencies() map[string][]KeyDependency {
	composerBlocks := []string{"require", "require-dev"}
	cargoBlocks := []string{"dependencies", "dev-dependencies"}
	pyprojectBlocks := []string{"project.dependencies", "tool.poetry.dependencies", "tool.poetry.dev-dependencies"}

	return map[string][]KeyDependency{
		"PHP": {
			{
				File:   "composer.json",
				Format: FormatJSON,
				Blocks: composerBlocks,
				Packages: map[string]string{
					"laravel/framework":        "Laravel",
					"symfony/symfony":          "Symfony",
					"symfony/framework-bundle": "Symfony",
				},
				Category: Backend,
			},
			{
				File:     "composer.json",
				Format:   FormatJSON,
				Blocks:   composerBlocks,
				Packages: map[string]string{"doctrine/orm": "Doctrine"},
				Category: Database,
			},
			{
				File:     "composer.json",
				Format:   FormatJSON,
				Blocks:   composerBlocks,
				Packages: map[string]string{"phpunit/phpunit": "PHPUnit"},
				Category: Testing,
			},
		},
		"Rust": {
			{
				File:     "Cargo.toml",
				Format:   FormatTOML,
				Blocks:   cargoBlocks,
				Packages: map[string]string{"actix-web": "Actix", "rocket": "Rocket", "warp": "Warp"},
				Category: Backend,
			},
			{
				File:     "Cargo.toml",
				Format:   FormatTOML,
				Blocks:   cargoBlocks,
				Packages: map[string]string{"diesel": "Diesel", "sqlx": "SQLx", "sea-orm": "SeaORM"},
				Category: Database,
			},
			{
				File:     "Cargo.toml",
				Format:   FormatTOML,
				Blocks:   cargoBlocks,
				Packages: map[string]string{"mockall": "Mockall"},
				Category: Testing,
			},
		},
		"Python": {
			{
				File:     "pyproject.toml",
				Format:   FormatTOML,
				Blocks:   pyprojectBlocks,
				Packages: map[string]string{"django": "Django", "flask": "Flask", "fastapi": "FastAPI"},
				Category: Backend,
			},
			{
				File:     "pyproject.toml",
				Format:   FormatTOML,
				Blocks:   pyprojectBlocks,
				Packages: map[string]string{"sqlalchemy": "SQLAlchemy"},
				Category: Database,
			},
			{
				File:     "pyproject.toml",
				Format:   FormatTOML,
				Blocks:   pyprojectBlocks,
				Packages: map[string]string{"pytest": "pytest"},
				Category: Testing,
			},
		},
	}
}
