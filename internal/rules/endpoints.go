// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package rules

// Route patterns per language. Group 1 is the method indicator and group 2 the route when a pattern has two
// groups; the named groups method and path take precedence. Single group patterns capture only the route.
var javaScriptRoutes = []routeSpec{
	{
		pattern:   `\b(?:app|router)\.(?P<method>get|post|put|delete|patch|all)\s*\(\s*["'](?P<path>[^"']+)["']`,
		framework: "Express",
	},
	{
		pattern:   `\brouter\.route\s*\(\s*["']([^"']+)["']\)\s*\.\s*(?:get|post|put|delete|patch)\s*\(`,
		framework: "Express",
	},
	{
		pattern:   `@(?:Controller|Get|Post|Put|Delete|Patch)\(\s*["']([^"']*)["']\s*\)`,
		framework: "NestJS",
	},
	{
		pattern:   `(?:\$\.ajax|jQuery\.ajax)\s*\(\s*\{[^}]*url\s*:\s*["']([^"']+)["']`,
		framework: "jQuery AJAX",
	},
	{
		pattern:   `\$\s*\.\s*(?P<method>get|post|ajax)\s*\(\s*["'](?P<path>[^"']+)["']`,
		framework: "jQuery AJAX",
	},
	{
		pattern:   `\b(?:await\s+)?axios\.(?P<method>get|post|put|delete|patch)\s*\(\s*["'](?P<path>[^"']+)["']`,
		framework: "Axios",
	},
	{
		pattern:   `\b(?:await\s+)?fetch\s*\(\s*["'](?P<path>[^"']+)["']`,
		framework: "Fetch API",
	},
	{
		pattern: `\bxhr\.open\(\s*["'](?P<method>GET|POST|PUT|DELETE|PATCH)["']\s*,\s*` +
			`["'](?P<path>[^"']+)["']`,
		framework: "XMLHttpRequest",
	},
	{
		pattern:   `\$http\.(get|post|put|delete|patch)\s*\(\s*['"]([^'"]+)['"]`,
		framework: "AngularJS",
	},
	{
		pattern:   `\bthis\.http\.(get|post|put|delete|patch)\s*\(\s*['"]([^'"]+)['"]`,
		framework: "Angular HttpClient",
	},
}

var springRoute = routeSpec{
	pattern: `@(?P<ann>RequestMapping|GetMapping|PostMapping|PutMapping|DeleteMapping|PatchMapping)` +
		`\s*\(\s*(?:path\s*=\s*|value\s*=\s*)?["']([^"']+)["'](?:\s*,[^)]*)?\)`,
	framework:  "Spring MVC",
	annotation: true,
}

var routePatterns = map[string][]routeSpec{
	"Java": {
		springRoute,
		{pattern: `@Path\s*\(\s*["']([^"']+)["']\s*\)`, framework: "JAX-RS"},
		{pattern: `@Route\s*\(\s*path\s*=\s*["']([^"']+)["']\s*\)`, framework: "Vaadin"},
	},
	"C#": {
		{
			pattern:   `\[Http(?P<method>Get|Post|Put|Delete|Patch)\s*\(\s*["'](?P<path>[^"']+)["']\s*\)\]`,
			framework: "ASP.NET Core",
		},
		{
			pattern:   `\bMap(?P<method>Get|Post|Put|Delete|Patch)\s*\(\s*["'](?P<path>[^"']+)["']\s*,`,
			framework: "ASP.NET Core Minimal",
		},
		{pattern: `\[Route\s*\(\s*["']([^"']+)["']\s*\)\]`, framework: "ASP.NET Route"},
	},
	"Rust": {
		{
			pattern:   `#\[(get|post|put|delete|patch)\s*\(\s*["']([^"']+)["']\s*\)\]`,
			framework: "Rust HTTP",
		},
	},
	"Kotlin": {
		springRoute,
		{
			pattern:   `\brouting\s*\{[^}]*?\b(get|post|put|delete|patch)\s*\(\s*["']([^"']+)["']`,
			framework: "Ktor routing",
		},
	},
	"Python": {
		{
			pattern: `@(?:app|bp|api|router)\.(?P<method>get|post|put|delete|patch)` +
				`\(\s*["'](?P<path>[^"']+)["']`,
			framework: "Flask/FastAPI",
		},
		{pattern: `@(?:app|bp|api)\.route\(\s*["']([^"']+)["']`, framework: "Flask/FastAPI"},
		{pattern: `\bpath\s*\(\s*["'](?P<path>[^"']+)["']`, framework: "Django path"},
		{pattern: `\b(?:url|re_path)\s*\(\s*r?["'](?P<path>[^"']+)["']`, framework: "Django url"},
	},
	"JavaScript": javaScriptRoutes,
	"TypeScript": javaScriptRoutes,
	"Ruby": {
		{
			pattern:   `(?im)^\s*(get|post|put|delete|patch|match)\s+["']([^"']+)["']\s*(?:,|$)`,
			framework: "Rails",
		},
		{
			pattern:   `\b(get|post|put|delete|patch)\s+["']([^"']+)["']\s+do\b`,
			framework: "Sinatra",
		},
	},
	"PHP": {
		{
			pattern:   `Route::(get|post|put|delete|patch|any)\s*\(\s*["']([^"']+)["']`,
			framework: "Laravel",
		},
		{
			pattern:   `Route::(?:prefix|middleware|namespace)\s*\(\s*["']([^"']+)["']\)\s*->\s*group\s*\(`,
			framework: "Laravel group",
		},
		{pattern: `Route::resource\s*\(\s*["']([^"']+)["']`, framework: "Laravel resource"},
		{pattern: `@Route\s*\(\s*["']([^"']+)["']`, framework: "Symfony"},
		{pattern: `#\[Route\s*\(\s*["']([^"']+)["']`, framework: "Symfony"},
	},
	"Go": {
		{
			pattern:   `\b(?:router|engine)\.(GET|POST|PUT|PATCH|DELETE|OPTIONS|HEAD)\s*\(\s*["']([^"']+)["']`,
			framework: "Gin",
		},
		{pattern: `\bhttp\.(?:HandleFunc|Handle)\(\s*["']([^"']+)["']`, framework: "net/http"},
		{pattern: `\b(?:router|mux)\.(?:HandleFunc|Handle)\s*\(\s*["']([^"']+)["']`, framework: "Gorilla Mux"},
	},
}

// outboundPatterns capture server-side HTTP client calls. The URL is the named group url.
var outboundPatterns = map[string][]string{
	"Java": {
		`\bWebClient\.create\(\)\.(?P<method>get|post|put|delete|patch)\s*\(\s*["'](?P<url>[^"']+)["']`,
		`\brestTemplate\.exchange\(\s*["'](?P<url>[^"']+)["']\s*,\s*HttpMethod\.(?P<method>GET|POST|PUT|DELETE|PATCH)`,
		`\brestTemplate\.(?:getForObject|getForEntity|postForObject|postForEntity)\(\s*["'](?P<url>[^"']+)["']`,
		`\.method\(\s*["'](?P<method>GET|POST|PUT|DELETE|PATCH)["']\s*,[^)]*\)\.url\(\s*["'](?P<url>[^"']+)["']`,
	},
}

// ajaxPattern is applied to every file of an active language. The call is the first non-empty group.
var ajaxPattern = `(?:\b(?:await\s+)?fetch\(\s*['"]([^'"]+)['"](?:\s*,[^)]*)?\))` +
	`|(?:\b(?:await\s+)?axios\.(?:get|post|put|delete|patch)\(\s*['"]([^'"]+)['"](?:\s*,[^)]*)?\))` +
	`|(?:\b(?:await\s+)?axios\(\s*\{[^}]*url\s*:\s*['"]([^'"]+)['"][^}]*\}\))` +
	`|(?:new\s+XMLHttpRequest\s*\(\s*\))` +
	`|(?:\bxhr\.open\(\s*['"](?:GET|POST|PUT|DELETE|PATCH)['"]\s*,\s*['"]([^'"]+)['"](?:\s*,[^)]*)?\))` +
	`|(?:(?:\$\.ajax|jQuery\.ajax)\(\s*\{[^}]*url\s*:\s*['"]([^'"]+)['"][^}]*\}\))` +
	`|(?:\$\.(?:get|post|getJSON)\(\s*['"]([^'"]+)['"](?:\s*,[^)]*)?\))` +
	`|(?:\$http\.(?:get|post|put|delete|patch)\(\s*['"]([^'"]+)['"](?:\s*,[^)]*)?\))` +
	`|(?:\bthis\.http\.(?:get|post|put|delete|patch)\(\s*['"]([^'"]+)['"](?:\s*,[^)]*)?\))`
