// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package rules

// Other is the bucket of files that no language claims.
const Other = "Other"

// languages returns the ordered language table. The first language claiming an extension or file name wins.
func languages() []Language {
	return []Language{
		{"Java", []string{".java"}},
		{"PHP", []string{".php"}},
		{"Python", []string{".py"}},
		{"Go", []string{".go"}},
		{"JavaScript", []string{".js", ".jsx", ".mjs", ".cjs", ".ejs"}},
		{"TypeScript", []string{".ts", ".tsx"}},
		{"HTML", []string{".html", ".htm"}},
		{"CSS", []string{".css", ".scss", ".sass", ".less"}},
		{"Ruby", []string{".rb"}},
		{"Shell", []string{".sh", ".bash"}},
		{"Kotlin", []string{".kt", ".kts"}},
		{"Swift", []string{".swift"}},
		{"Rust", []string{".rs"}},
		{"Scala", []string{".scala", ".sc"}},
		{"C/C++", []string{".c", ".cpp", ".h", ".hpp"}},
		{"C#", []string{".cs"}},
		{"SQL", []string{".sql"}},
		{"XML", []string{".xml"}},
		{"YAML", []string{".yaml", ".yml"}},
		{"JSON", []string{".json"}},
		{"Markdown", []string{".md"}},
		{"Docker", []string{"dockerfile", ".dockerignore"}},
		{"Config", []string{".conf", ".cfg", ".ini"}},
	}
}

// codeExtensions is the default allow-list of files scanned by code detectors.
var codeExtensions = []string{
	".py", ".js", ".jsx", ".mjs", ".cjs", ".ts", ".tsx", ".vue", ".svelte",
	".java", ".kt", ".kts", ".scala", ".php", ".cs", ".go", ".rb", ".rs", ".swift", ".json",
}
