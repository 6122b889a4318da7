// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package rules

type techGroup struct {
	category Category
	names    []string
}

type languageTechnologies struct {
	language string
	groups   []techGroup
}

// technologiesByLanguage lists the stack rules of each language in evaluation order. Technologies without
// detectors are skipped by the aggregator.
var technologiesByLanguage = []languageTechnologies{
	{
		language: "Java",
		groups: []techGroup{
			{Backend, []string{"Spring Boot", "Quarkus", "Micronaut", "Jakarta EE", "Play Framework", "Vert.x"}},
			{Database, []string{"Hibernate", "JPA", "MyBatis", "JDBC", "JOOQ"}},
			{BuildTools, []string{"Maven", "Gradle", "Ant"}},
			{Testing, []string{"JUnit", "TestNG", "Mockito", "AssertJ"}},
			{DevOps, []string{"Docker", "Kubernetes", "Jenkins"}},
		},
	},
	{
		language: "C#",
		groups: []techGroup{
			{Backend, []string{
				"ASP.NET Core", ".NET Core", ".NET Framework", "ASP.NET MVC", "ASP.NET Web API", "Blazor", "Xamarin",
			}},
			{Database, []string{"Entity Framework", "Dapper", "ADO.NET", "NHibernate"}},
			{BuildTools, []string{"MSBuild", "NuGet", "Cake"}},
			{Testing, []string{"NUnit", "xUnit", "MSTest", "Moq"}},
			{DevOps, []string{"Azure DevOps", "Octopus Deploy"}},
		},
	},
	{
		language: "Python",
		groups: []techGroup{
			{Backend, []string{"Django", "Flask", "FastAPI", "Pyramid", "Bottle", "Tornado"}},
			{Database, []string{"SQLAlchemy", "Django ORM", "Psycopg", "PyMySQL", "MongoEngine"}},
			{BuildTools, []string{"pip", "Poetry", "Pipenv", "Setuptools"}},
			{Testing, []string{"pytest", "unittest", "nose", "Robot Framework"}},
			{DevOps, []string{"Fabric", "Ansible"}},
		},
	},
	{
		language: "JavaScript",
		groups: []techGroup{
			{Backend, []string{"Express", "Koa", "NestJS", "Meteor"}},
			{Frontend, []string{"React", "Angular", "Vue", "Svelte", "Ember"}},
			{Database, []string{"Sequelize", "TypeORM", "Mongoose", "Prisma"}},
			{BuildTools, []string{"npm", "yarn", "webpack", "vite"}},
			{Testing, []string{"Jest", "Mocha", "Jasmine", "Cypress"}},
			{DevOps, []string{"PM2", "Docker"}},
		},
	},
	{
		language: "TypeScript",
		groups: []techGroup{
			{Backend, []string{"NestJS", "Express", "LoopBack"}},
			{Frontend, []string{"Angular", "React", "Vue", "Svelte"}},
			{Database, []string{"TypeORM", "Prisma", "MikroORM"}},
			{BuildTools, []string{"tsc", "webpack", "esbuild"}},
			{Testing, []string{"Jest", "Mocha", "Jasmine"}},
			{DevOps, []string{"PM2", "Docker"}},
		},
	},
	{
		language: "PHP",
		groups: []techGroup{
			{Backend, []string{"Laravel", "Symfony", "CodeIgniter", "Yii", "Zend"}},
			{Database, []string{"Eloquent ORM", "Doctrine", "PDO"}},
			{BuildTools, []string{"Composer", "Phar"}},
			{Testing, []string{"PHPUnit", "Codeception", "PHPSpec"}},
			{DevOps, []string{"Deployer", "Capistrano"}},
		},
	},
	{
		language: "Go",
		groups: []techGroup{
			{Backend, []string{"Gin", "Echo", "Fiber", "Beego"}},
			{Database, []string{"GORM", "SQLx", "Ent"}},
			{BuildTools, []string{"go build", "GoReleaser"}},
			{Testing, []string{"testing", "Testify", "GoConvey"}},
			{DevOps, []string{"Docker", "Kubernetes"}},
		},
	},
	{
		language: "Ruby",
		groups: []techGroup{
			{Backend, []string{"Ruby on Rails", "Sinatra", "Hanami"}},
			{Database, []string{"Active Record", "Sequel", "ROM"}},
			{BuildTools, []string{"Bundler", "Rake"}},
			{Testing, []string{"RSpec", "Minitest", "Cucumber"}},
			{DevOps, []string{"Capistrano", "Mina"}},
		},
	},
	{
		language: "Swift",
		groups: []techGroup{
			{Backend, []string{"Vapor", "Perfect", "Kitura"}},
			{Database, []string{"Fluent", "GRDB", "Realm"}},
			{BuildTools, []string{"Swift Package Manager", "CocoaPods"}},
			{Testing, []string{"XCTest", "Quick", "Nimble"}},
			{DevOps, []string{"Fastlane", "Xcode Server"}},
		},
	},
	{
		language: "Kotlin",
		groups: []techGroup{
			{Backend, []string{"Ktor", "Spring Boot", "Micronaut", "Vert.x"}},
			{Database, []string{"Exposed", "JPA", "Hibernate"}},
			{BuildTools, []string{"Gradle", "Maven"}},
			{Testing, []string{"JUnit", "Kotest", "MockK"}},
			{DevOps, []string{"Docker", "Kubernetes"}},
		},
	},
	{
		language: "Rust",
		groups: []techGroup{
			{Backend, []string{"Actix", "Rocket", "Warp"}},
			{Database, []string{"Diesel", "SQLx", "SeaORM"}},
			{BuildTools, []string{"Cargo", "Rustup"}},
			{Testing, []string{"cargo test", "Mockall"}},
			{DevOps, []string{"Docker", "Kubernetes"}},
		},
	},
	{
		language: "Scala",
		groups: []techGroup{
			{Backend, []string{"Play", "Akka", "Lift"}},
			{Database, []string{"Slick", "Quill", "Doobie"}},
			{BuildTools, []string{"sbt", "Maven"}},
			{Testing, []string{"ScalaTest", "Specs2", "ScalaCheck"}},
			{DevOps, []string{"Docker", "Kubernetes"}},
		},
	},
}

func fileAt(path string) DetectorSpec {
	return DetectorSpec{Type: string(KindFile), Path: path}
}

func fileWith(path, content string) DetectorSpec {
	return DetectorSpec{Type: string(KindFile), Path: path, Content: content}
}

func fileNamed(name string) DetectorSpec {
	return DetectorSpec{Type: string(KindFile), Name: name}
}

func dirAt(path string) DetectorSpec {
	return DetectorSpec{Type: string(KindDir), Path: path}
}

func code(pattern string) DetectorSpec {
	return DetectorSpec{Type: string(KindCode), Pattern: pattern}
}

// technologyDetectors holds the evidence per technology name, shared by every language listing the name.
var technologyDetectors = map[string][]DetectorSpec{
	// Java and Kotlin
	"Spring Boot": {
		fileWith("**/pom.xml", "spring-boot-starter"),
		fileWith("**/build.gradle", "org.springframework.boot"),
		fileWith("**/build.gradle.kts", "org.springframework.boot"),
		fileAt("**/src/main/resources/application.properties"),
		fileAt("**/src/main/resources/application.yml"),
		code(`@SpringBootApplication`),
	},
	"Quarkus": {
		fileWith("**/pom.xml", "quarkus"),
		fileWith("**/build.gradle", "io.quarkus"),
		fileWith("**/src/main/resources/application.properties", "quarkus"),
		code(`@QuarkusMain`),
	},
	"Micronaut": {
		fileWith("**/pom.xml", "io.micronaut"),
		fileWith("**/build.gradle", "io.micronaut"),
		fileWith("**/build.gradle.kts", "io.micronaut"),
		code(`import io\.micronaut\.`),
	},
	"Jakarta EE": {
		fileWith("**/pom.xml", "jakarta.jakartaee-api"),
		code(`import jakarta\.(ws|ejb|enterprise)\.`),
	},
	"Play Framework": {
		fileAt("conf/routes"),
		code(`import play\.mvc\.`),
	},
	"Vert.x": {
		fileWith("**/pom.xml", "io.vertx"),
		fileWith("**/build.gradle", "io.vertx"),
		code(`import io\.vertx\.`),
	},
	"Hibernate": {
		fileWith("**/pom.xml", "hibernate"),
		fileNamed(`^hibernate\.cfg\.xml$`),
		code(`import org\.hibernate\.`),
	},
	"JPA": {
		fileNamed(`^persistence\.xml$`),
		code(`import (javax|jakarta)\.persistence\.`),
	},
	"MyBatis": {
		fileWith("**/pom.xml", "mybatis"),
		code(`import org\.(apache\.ibatis|mybatis)\.`),
	},
	"JDBC": {
		code(`java\.sql\.(Connection|DriverManager)|jdbc:[a-z]+:`),
	},
	"JOOQ": {
		fileWith("**/pom.xml", "org.jooq"),
		code(`import (static )?org\.jooq\.`),
	},
	"Maven": {
		fileAt("**/pom.xml"),
		fileAt("mvnw"),
	},
	"Gradle": {
		fileAt("**/build.gradle"),
		fileAt("**/build.gradle.kts"),
		fileAt("gradlew"),
	},
	"Ant": {
		fileWith("build.xml", "<project"),
	},
	"JUnit": {
		fileWith("**/pom.xml", "junit"),
		fileWith("**/build.gradle", "junit"),
		code(`@Test|import org\.junit`),
	},
	"TestNG": {
		fileWith("**/pom.xml", "testng"),
		code(`import org\.testng\.`),
	},
	"Mockito": {
		fileWith("**/pom.xml", "mockito"),
		code(`import (static )?org\.mockito\.`),
	},
	"AssertJ": {
		fileWith("**/pom.xml", "assertj"),
		code(`import (static )?org\.assertj\.`),
	},
	"Ktor": {
		fileWith("**/build.gradle.kts", "io.ktor"),
		code(`import io\.ktor\.`),
	},
	"Exposed": {
		code(`import org\.jetbrains\.exposed\.`),
	},
	"Kotest": {
		code(`import io\.kotest\.`),
	},
	"MockK": {
		code(`import io\.mockk\.`),
	},

	// C#
	"ASP.NET Core": {
		fileWith("**/*.csproj", "Microsoft.AspNetCore"),
		fileWith("**/*.csproj", "Microsoft.NET.Sdk.Web"),
		dirAt("**/Controllers"),
		code(`\[HttpGet\]|\[Route\(`),
	},
	".NET Core": {
		fileWith("**/*.csproj", "netcoreapp"),
		fileWith("**/*.csproj", "<TargetFramework>net"),
	},
	".NET Framework": {
		fileWith("**/*.csproj", "TargetFrameworkVersion"),
		fileNamed(`^web\.config$`),
	},
	"ASP.NET MVC": {
		code(`using System\.Web\.Mvc`),
	},
	"ASP.NET Web API": {
		code(`using System\.Web\.Http`),
	},
	"Blazor": {
		fileNamed(`\.razor$`),
		code(`using Microsoft\.AspNetCore\.Components`),
	},
	"Xamarin": {
		code(`using Xamarin\.`),
	},
	"Entity Framework": {
		fileWith("**/*.csproj", "EntityFramework"),
		code(`using Microsoft\.EntityFrameworkCore|using System\.Data\.Entity`),
	},
	"Dapper": {
		fileWith("**/*.csproj", "Dapper"),
		code(`using Dapper;`),
	},
	"ADO.NET": {
		code(`using System\.Data\.SqlClient|using Microsoft\.Data\.SqlClient`),
	},
	"NHibernate": {
		code(`using NHibernate`),
	},
	"MSBuild": {
		fileNamed(`\.(cs|vb|fs)proj$`),
		fileNamed(`^directory\.build\.props$`),
	},
	"NuGet": {
		fileNamed(`^nuget\.config$`),
		fileNamed(`^packages\.config$`),
		fileWith("**/*.csproj", "<PackageReference"),
	},
	"Cake": {
		fileNamed(`\.cake$`),
	},
	"NUnit": {
		code(`using NUnit\.Framework`),
	},
	"xUnit": {
		code(`using Xunit;`),
	},
	"MSTest": {
		code(`using Microsoft\.VisualStudio\.TestTools\.UnitTesting`),
	},
	"Moq": {
		code(`using Moq;`),
	},
	"Azure DevOps": {
		fileNamed(`^azure-pipelines\.ya?ml$`),
	},
	"Octopus Deploy": {
		dirAt(".octopus"),
	},

	// Python
	"Django": {
		fileAt("**/manage.py"),
		fileWith("**/requirements.txt", "Django"),
		fileNamed(`^urls\.py$`),
		fileNamed(`^settings\.py$`),
		code(`from django\.|import django`),
	},
	"Flask": {
		fileWith("**/requirements.txt", "Flask"),
		code(`from flask import|@app\.route`),
		fileWith("**/app.py", "Flask(__name__)"),
	},
	"FastAPI": {
		fileWith("**/requirements.txt", "fastapi"),
		code(`from fastapi import|FastAPI\(`),
	},
	"Pyramid": {
		code(`from pyramid\.`),
	},
	"Bottle": {
		code(`from bottle import|import bottle`),
	},
	"Tornado": {
		code(`import tornado|from tornado`),
	},
	"SQLAlchemy": {
		code(`from sqlalchemy|import sqlalchemy`),
	},
	"Django ORM": {
		code(`from django\.db import models`),
	},
	"Psycopg": {
		code(`import psycopg`),
	},
	"PyMySQL": {
		code(`import pymysql`),
	},
	"MongoEngine": {
		code(`from mongoengine|import mongoengine`),
	},
	"pip": {
		fileAt("**/requirements.txt"),
	},
	"Poetry": {
		fileAt("**/poetry.lock"),
		fileWith("**/pyproject.toml", "[tool.poetry]"),
	},
	"Pipenv": {
		fileAt("**/Pipfile"),
	},
	"Setuptools": {
		fileAt("**/setup.py"),
		fileAt("**/setup.cfg"),
	},
	"pytest": {
		fileWith("**/requirements.txt", "pytest"),
		fileAt("pytest.ini"),
		code(`def test_|import pytest`),
	},
	"unittest": {
		code(`import unittest`),
	},
	"nose": {
		code(`import nose`),
	},
	"Robot Framework": {
		fileNamed(`\.robot$`),
	},
	"Fabric": {
		fileNamed(`^fabfile\.py$`),
	},
	"Ansible": {
		fileNamed(`^ansible\.cfg$`),
		fileNamed(`^playbook.*\.ya?ml$`),
	},

	// JavaScript and TypeScript
	"Express": {
		fileWith("**/package.json", "express"),
		code(`app\.(get|post|put|delete)`),
		code(`import express from ['"]express['"]|require\(['"]express['"]\)`),
	},
	"Koa": {
		code(`require\(['"]koa['"]\)|from ['"]koa['"]`),
	},
	"NestJS": {
		fileWith("**/package.json", "@nestjs/core"),
		code(`@(Controller|Get|Post|Injectable)\(`),
		dirAt("src/controllers"),
	},
	"Meteor": {
		dirAt(".meteor"),
	},
	"LoopBack": {
		code(`from ['"]@loopback/`),
	},
	"React": {
		fileWith("**/package.json", "react"),
		code(`\bimport\s+React\b`),
		code(`\bReactDOM\.render\(`),
		fileNamed(`\.(j|t)sx$`),
	},
	"Next.js": {
		fileNamed(`^next\.config\.(js|mjs|ts)$`),
		code(`from\s+['"]next(/[a-zA-Z\-_]+)*['"]`),
	},
	"Angular": {
		fileNamed(`^angular\.json$`),
		code(`@NgModule\s*\(`),
		code(`@Component\s*\(`),
	},
	"Vue": {
		fileNamed(`\.vue$`),
		code(`\bimport\s+Vue\b`),
		code(`new\s+Vue\s*\(`),
	},
	"Svelte": {
		fileNamed(`\.svelte$`),
		fileNamed(`^svelte\.config\.(js|mjs|ts)$`),
	},
	"Ember": {
		fileNamed(`^ember-cli-build\.js$`),
	},
	"Sequelize": {
		code(`require\(['"]sequelize['"]\)|from ['"]sequelize['"]`),
	},
	"TypeORM": {
		fileWith("**/package.json", "typeorm"),
		code(`@Entity\(`),
	},
	"Mongoose": {
		code(`mongoose\.(connect|Schema|model)\b`),
	},
	"Prisma": {
		fileAt("**/schema.prisma"),
		code(`from ['"]@prisma/client['"]`),
	},
	"MikroORM": {
		code(`from ['"]@mikro-orm/`),
	},
	"npm": {
		fileAt("**/package-lock.json"),
	},
	"yarn": {
		fileAt("**/yarn.lock"),
	},
	"webpack": {
		fileNamed(`^webpack\.config\.(js|cjs|mjs|ts)$`),
	},
	"vite": {
		fileNamed(`^vite\.config\.(js|mjs|ts)$`),
	},
	"tsc": {
		fileAt("**/tsconfig.json"),
	},
	"esbuild": {
		fileWith("**/package.json", "esbuild"),
	},
	"Jest": {
		fileNamed(`^jest\.config\.(js|cjs|mjs|ts)$`),
		fileWith("**/package.json", `"jest"`),
	},
	"Mocha": {
		fileNamed(`^\.mocharc\.`),
		fileWith("**/package.json", `"mocha"`),
	},
	"Jasmine": {
		fileAt("**/jasmine.json"),
		fileWith("**/package.json", `"jasmine`),
	},
	"Cypress": {
		fileNamed(`^cypress\.(config\.(js|ts)|json)$`),
	},
	"PM2": {
		fileNamed(`^ecosystem\.config\.(js|cjs)$`),
	},

	// PHP
	"Laravel": {
		fileAt("artisan"),
		fileWith("composer.json", "laravel/framework"),
		dirAt("app/Http/Controllers"),
		dirAt("resources/views"),
		code(`use Illuminate\\`),
	},
	"Symfony": {
		fileAt("bin/console"),
		fileWith("composer.json", "symfony/framework-bundle"),
		dirAt("config/packages"),
		dirAt("src/Controller"),
		code(`use Symfony\\`),
	},
	"CodeIgniter": {
		fileAt("spark"),
		dirAt("app/Controllers"),
		code(`use CodeIgniter\\`),
		fileWith("composer.json", "codeigniter4/framework"),
	},
	"Yii": {
		code(`use yii\\`),
	},
	"Zend": {
		code(`use (Zend|Laminas)\\`),
	},
	"Eloquent ORM": {
		code(`use Illuminate\\Database\\Eloquent`),
	},
	"Doctrine": {
		code(`use Doctrine\\`),
	},
	"PDO": {
		code(`new PDO\(`),
	},
	"Composer": {
		fileAt("composer.json"),
		fileAt("composer.lock"),
		dirAt("vendor"),
	},
	"Phar": {
		fileNamed(`\.phar$`),
	},
	"PHPUnit": {
		fileAt("phpunit.xml"),
		fileWith("composer.json", "phpunit/phpunit"),
		dirAt("tests"),
	},
	"Codeception": {
		fileNamed(`^codeception\.ya?ml$`),
	},
	"PHPSpec": {
		fileNamed(`^phpspec\.ya?ml$`),
	},
	"Deployer": {
		fileNamed(`^deploy\.php$`),
	},
	"Capistrano": {
		fileAt("Capfile"),
		fileAt("config/deploy.rb"),
	},

	// Go
	"Gin": {
		fileWith("**/go.mod", "github.com/gin-gonic/gin"),
		code(`"github\.com/gin-gonic/gin"`),
	},
	"Echo": {
		fileWith("**/go.mod", "github.com/labstack/echo"),
		code(`"github\.com/labstack/echo`),
	},
	"Fiber": {
		fileWith("**/go.mod", "github.com/gofiber/fiber"),
	},
	"Beego": {
		fileWith("**/go.mod", "beego"),
	},
	"GORM": {
		fileWith("**/go.mod", "gorm.io/gorm"),
	},
	"SQLx": {
		fileWith("**/go.mod", "github.com/jmoiron/sqlx"),
		fileWith("**/Cargo.toml", "sqlx"),
	},
	"Ent": {
		fileWith("**/go.mod", "entgo.io/ent"),
	},
	"go build": {
		fileAt("**/go.mod"),
	},
	"GoReleaser": {
		fileNamed(`^\.goreleaser\.ya?ml$`),
	},
	"testing": {
		code(`"testing"`),
	},
	"Testify": {
		fileWith("**/go.mod", "github.com/stretchr/testify"),
	},
	"GoConvey": {
		fileWith("**/go.mod", "github.com/smartystreets/goconvey"),
	},

	// Ruby
	"Ruby on Rails": {
		fileWith("Gemfile", "rails"),
		fileAt("config/routes.rb"),
		dirAt("app/controllers"),
		code(`class ApplicationController < ActionController::Base`),
	},
	"Sinatra": {
		fileWith("Gemfile", "sinatra"),
		code(`require ['"]sinatra`),
	},
	"Hanami": {
		fileWith("Gemfile", "hanami"),
	},
	"Active Record": {
		code(`<\s*(ActiveRecord::Base|ApplicationRecord)\b`),
	},
	"Sequel": {
		code(`Sequel\.connect`),
	},
	"ROM": {
		code(`ROM\.container`),
	},
	"Bundler": {
		fileAt("Gemfile"),
		fileAt("Gemfile.lock"),
	},
	"Rake": {
		fileAt("Rakefile"),
	},
	"RSpec": {
		fileAt(".rspec"),
		fileWith("Gemfile", "rspec"),
	},
	"Minitest": {
		code(`require ['"]minitest`),
	},
	"Cucumber": {
		fileNamed(`\.feature$`),
	},
	"Mina": {
		fileWith("config/deploy.rb", "mina"),
	},

	// Swift
	"Vapor": {
		fileWith("Package.swift", "vapor"),
	},
	"Perfect": {
		fileWith("Package.swift", "PerfectHTTP"),
	},
	"Kitura": {
		fileWith("Package.swift", "Kitura"),
	},
	"Fluent": {
		fileWith("Package.swift", "fluent"),
	},
	"GRDB": {
		fileWith("Package.swift", "GRDB"),
	},
	"Realm": {
		code(`import RealmSwift`),
	},
	"Swift Package Manager": {
		fileAt("Package.swift"),
	},
	"CocoaPods": {
		fileAt("Podfile"),
	},
	"XCTest": {
		code(`import XCTest`),
	},
	"Quick": {
		code(`import Quick`),
	},
	"Nimble": {
		code(`import Nimble`),
	},
	"Fastlane": {
		dirAt("fastlane"),
	},

	// Rust
	"Actix": {
		fileWith("**/Cargo.toml", "actix-web"),
	},
	"Rocket": {
		fileWith("**/Cargo.toml", "rocket"),
	},
	"Warp": {
		fileWith("**/Cargo.toml", "warp"),
	},
	"Diesel": {
		fileWith("**/Cargo.toml", "diesel"),
	},
	"SeaORM": {
		fileWith("**/Cargo.toml", "sea-orm"),
	},
	"Cargo": {
		fileAt("**/Cargo.toml"),
	},
	"Rustup": {
		fileNamed(`^rust-toolchain(\.toml)?$`),
	},
	"cargo test": {
		code(`#\[test\]`),
	},
	"Mockall": {
		fileWith("**/Cargo.toml", "mockall"),
	},

	// Scala
	"Play": {
		fileWith("build.sbt", "com.typesafe.play"),
		fileAt("conf/routes"),
	},
	"Akka": {
		fileWith("build.sbt", "akka"),
	},
	"Lift": {
		fileWith("build.sbt", "liftweb"),
	},
	"Slick": {
		fileWith("build.sbt", "slick"),
	},
	"Quill": {
		fileWith("build.sbt", "quill"),
	},
	"Doobie": {
		fileWith("build.sbt", "doobie"),
	},
	"sbt": {
		fileAt("build.sbt"),
	},
	"ScalaTest": {
		fileWith("build.sbt", "scalatest"),
	},
	"Specs2": {
		fileWith("build.sbt", "specs2"),
	},
	"ScalaCheck": {
		fileWith("build.sbt", "scalacheck"),
	},

	// Shared
	"Docker": {
		fileNamed(`^dockerfile$`),
		fileNamed(`^(docker-)?compose\.ya?ml$`),
	},
	"Kubernetes": {
		dirAt("**/k8s"),
		dirAt("**/kubernetes"),
		fileNamed(`^kustomization\.ya?ml$`),
		fileNamed(`^chart\.yaml$`),
	},
	"Jenkins": {
		fileNamed(`^jenkinsfile$`),
	},
	"MySQL": {
		fileWith(".env", "DB_CONNECTION=mysql"),
		code(`mysql://|mysql2?\.createConnection`),
	},
	"PostgreSQL": {
		fileWith(".env", "DB_CONNECTION=pgsql"),
		code(`postgres://|pg\.connect`),
	},
}
