// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package rules

var javaScriptHeaders = []headerSpec{
	{
		pattern: `\bfetch\(\s*(?P<url>['"][^'"]+['"])\s*,\s*\{\s*[^}]*?method\s*:\s*['"](?P<method>\w+)['"]` +
			`[^}]*?headers\s*:\s*(?P<headers>\{[^}]+\})`,
		framework: "Fetch API",
	},
	{
		pattern: `\baxios\.(?P<method>get|post|put|delete|patch)\(\s*(?P<url>['"][^'"]+['"])\s*,\s*[^,]+,\s*` +
			`\{\s*[^}]*?headers\s*:\s*(?P<headers>\{[^}]+\})`,
		framework: "Axios",
	},
	{
		pattern: `(?:\$|\bjQuery)\.ajax\(\s*\{\s*[^}]*?url\s*:\s*(?P<url>['"][^'"]+['"])[^}]*?` +
			`type\s*:\s*['"](?P<method>\w+)['"][^}]*?headers\s*:\s*(?P<headers>\{[^}]+\})`,
		framework: "jQuery AJAX",
	},
	{
		pattern: `\$http\.(?P<method>get|post|put|delete|patch)\(\s*(?P<url>['"][^'"]+['"])\s*,\s*[^,]+,\s*` +
			`\{\s*[^}]*?headers\s*:\s*(?P<headers>\{[^}]+\})`,
		framework: "AngularJS $http",
	},
	{
		pattern: `\bthis\.http\.(?P<method>get|post|put|delete|patch)\(\s*(?P<url>['"][^'"]+['"])\s*,\s*[^,]+,\s*` +
			`\{\s*[^}]*?headers\s*:\s*new\s+HttpHeaders\(\s*(?P<headers>\{[^}]+\})`,
		framework: "Angular HttpClient",
	},
}

var headerPatterns = map[string][]headerSpec{
	"JavaScript": javaScriptHeaders,
	"TypeScript": javaScriptHeaders,
	"Python": {
		{
			pattern: `\brequests\.(?P<method>get|post|put|delete|patch)\(\s*(?P<url>['"][^'"]+['"])\s*,\s*` +
				`headers\s*=\s*(?P<headers>\{[^}]+\})`,
			framework: "requests",
		},
		{
			pattern: `\bawait\s+[\w_]+\.?(?P<method>get|post|put|delete|patch)\(\s*(?P<url>['"][^'"]+['"])\s*,\s*` +
				`headers\s*=\s*(?P<headers>\{[^}]+\})`,
			framework: "aiohttp",
		},
		{
			pattern: `\bapp\.test_client\(\)\.(?P<method>get|post|put|delete|patch)\(\s*(?P<url>['"][^'"]+['"])\s*,\s*` +
				`headers\s*=\s*(?P<headers>\{[^}]+\})`,
			framework: "Flask Test Client",
		},
	},
	"Go": {
		{
			pattern:   `\bhttp\.NewRequest\(\s*['"](?P<method>GET|POST|PUT|DELETE|PATCH)['"]\s*,\s*(?P<url>['"][^'"]+['"])`,
			framework: "net/http NewRequest",
		},
		{
			pattern:   `\.Header\.Set\(\s*['"](?P<headerName>[^'"]+)['"]\s*,\s*['"](?P<headerValue>[^'"]+)['"]\s*\)`,
			framework: "net/http Header.Set",
		},
	},
	"Java": {
		{
			pattern: `@RequestHeader\s*\(\s*["'](?P<headerName>[^"']+)["']` +
				`(?:\s*,\s*defaultValue\s*=\s*["'](?P<headerValue>[^"']+)["'])?` +
				`(?:\s*,\s*required\s*=\s*(?:true|false))?\)`,
			framework: "Spring @RequestHeader",
		},
		{
			pattern: `@(?:GetMapping|PostMapping|PutMapping|DeleteMapping|PatchMapping)\s*\(\s*[^)]*?` +
				`headers\s*=\s*["'](?P<headers>[^"']+)["']`,
			framework: "Spring Mapping with headers",
		},
		{
			pattern:   `\.header\(\s*["'](?P<headerName>[^"']+)["']\s*,\s*["'](?P<headerValue>[^"']+)["']\s*\)`,
			framework: "Spring ResponseEntity.header",
		},
		{
			pattern:   `@HeaderParam\s*\(\s*["'](?P<headerName>[^"']+)["']\s*\)`,
			framework: "JAX-RS @HeaderParam",
		},
	},
	"C#": {
		{
			pattern: `\bapp\.Use\(\s*async\s*\(\s*context\s*,\s*next\s*\)\s*=>\s*\{\s*context\.Response\.Headers\.Add\(\s*` +
				`["'](?P<headerName>[^"']+)["']\s*,\s*new\s+StringValues\(\s*["'](?P<headerValue>[^"']+)["']\)\s*\)`,
			framework: "ASP.NET Core Middleware Headers",
		},
		{
			pattern: `\bDefaultRequestHeaders\.Add\(\s*["'](?P<headerName>[^"']+)["']\s*,\s*` +
				`["'](?P<headerValue>[^"']+)["']\s*\)`,
			framework: "HttpClient DefaultRequestHeaders",
		},
	},
	"PHP": {
		{
			pattern: `\$client->request\(\s*['"](?P<method>GET|POST|PUT|DELETE|PATCH)['"]\s*,\s*[^,]+,\s*` +
				`\[\s*'headers'\s*=>\s*(?P<headers>\[[^\]]+\])`,
			framework: "Guzzle HTTP",
		},
		{
			pattern:   `->header\(\s*['"](?P<headerName>[^"']+)['"]\s*,\s*['"](?P<headerValue>[^"']+)['"]\s*\)`,
			framework: "Laravel Middleware Header",
		},
	},
	"Ruby": {
		{
			pattern: `before_action\s+:.*do\s*\|controller\|\s*controller\.response\.set_header\(\s*` +
				`['"](?P<headerName>[^'"]+)['"]\s*,\s*['"](?P<headerValue>[^'"]+)['"]\s*\)`,
			framework: "Rails before_action header",
		},
		{
			pattern:   `\bheaders\s+['"](?P<headerName>[^'"]+)['"]\s*=>\s*['"](?P<headerValue>[^'"]+)['"]`,
			framework: "Sinatra headers DSL",
		},
	},
	"Rust": {
		{
			pattern:   `\.append_header\(\(\s*['"](?P<headerName>[^'"]+)['"]\s*,\s*['"](?P<headerValue>[^'"]+)['"]\s*\)\)`,
			framework: "Actix-Web append_header",
		},
		{
			pattern: `#\[\s*header\s*\(\s*Name\s*=\s*['"](?P<headerName>[^'"]+)['"]\s*,\s*` +
				`Value\s*=\s*['"](?P<headerValue>[^'"]+)['"]\s*\)\]`,
			framework: "Rocket header macro",
		},
	},
	"Kotlin": {
		{
			pattern:   `@RequestMapping\s*\([^)]+?headers\s*=\s*(?P<headers>\{[^}]+\})`,
			framework: "Spring MVC Kotlin with headers",
		},
		{
			pattern: `respond\w*\([^,]+,\s*headers\s*=\s*headersOf\(\s*['"](?P<headerName>[^'"]+)['"]\s*to\s*` +
				`['"](?P<headerValue>[^'"]+)['"]\)`,
			framework: "Ktor headersOf",
		},
	},
}
