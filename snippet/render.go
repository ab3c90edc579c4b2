package snippet

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/oasdocs/oasdocs/orderedmap"
)

// renderCurl emits a multi-line curl invocation: method, headers,
// optional data, URL last, joined with backslash continuations.
func renderCurl(req *request) string {
	var b strings.Builder
	b.WriteString("curl -X " + strings.ToUpper(req.method) + " \\\n")
	for _, h := range req.headers {
		b.WriteString("  -H " + shellQuote(h.name+": "+h.value) + " \\\n")
	}
	if req.body != "" {
		b.WriteString("  -d " + shellQuote(req.body) + " \\\n")
	}
	b.WriteString("  " + shellQuote(req.url))
	return b.String()
}

// renderJavaScript emits a fetch call that awaits the response and
// logs the parsed JSON.
func renderJavaScript(req *request) string {
	var b strings.Builder
	b.WriteString("const response = await fetch(" + quoteSingle(req.url) + ", {\n")
	b.WriteString("  method: " + quoteSingle(strings.ToUpper(req.method)) + ",\n")
	b.WriteString("  headers: {\n")
	for i, h := range req.headers {
		b.WriteString("    " + quoteSingle(h.name) + ": " + quoteSingle(h.value))
		if i < len(req.headers)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("  }")
	if req.body != "" {
		// The pretty JSON doubles as a JS object literal.
		b.WriteString(",\n  body: JSON.stringify(" + indentTail(req.body, "  ") + ")")
	}
	b.WriteString("\n});\n\nconst data = await response.json();\nconsole.log(data);\n")
	return b.String()
}

// renderPython emits a requests call. The body is rendered as a
// native Python literal (True/False/None, not JSON) so the script
// runs as written.
func renderPython(req *request) string {
	var b strings.Builder
	b.WriteString("import requests\n\n")
	b.WriteString("url = " + quoteSingle(req.url) + "\n")
	b.WriteString("headers = {\n")
	for _, h := range req.headers {
		b.WriteString("    " + quoteSingle(h.name) + ": " + quoteSingle(h.value) + ",\n")
	}
	b.WriteString("}\n")
	if req.bodyValue != nil {
		b.WriteString("payload = " + pyLiteral(req.bodyValue, "") + "\n")
	}
	b.WriteString("\n")
	if req.bodyValue != nil {
		b.WriteString("response = requests." + req.method + "(url, headers=headers, json=payload)\n")
	} else {
		b.WriteString("response = requests." + req.method + "(url, headers=headers)\n")
	}
	b.WriteString("print(response.json())\n")
	return b.String()
}

// renderGo emits a complete net/http program and runs it through
// goimports-equivalent processing. If formatting fails the raw source
// is returned as-is.
func renderGo(req *request) string {
	var b strings.Builder
	b.WriteString("package main\n\n")
	b.WriteString("import (\n\t\"fmt\"\n\t\"io\"\n\t\"net/http\"\n")
	if req.body != "" {
		b.WriteString("\t\"strings\"\n")
	}
	b.WriteString(")\n\n")
	b.WriteString("func main() {\n")

	reader := "nil"
	if req.body != "" {
		b.WriteString("\tbody := strings.NewReader(" + goString(req.body) + ")\n\n")
		reader = "body"
	}
	b.WriteString("\treq, err := http.NewRequest(" + strconv.Quote(strings.ToUpper(req.method)) + ", " + strconv.Quote(req.url) + ", " + reader + ")\n")
	b.WriteString("\tif err != nil {\n\t\tpanic(err)\n\t}\n")
	for _, h := range req.headers {
		b.WriteString("\treq.Header.Set(" + strconv.Quote(h.name) + ", " + strconv.Quote(h.value) + ")\n")
	}
	b.WriteString("\n\tresp, err := http.DefaultClient.Do(req)\n")
	b.WriteString("\tif err != nil {\n\t\tpanic(err)\n\t}\n")
	b.WriteString("\tdefer resp.Body.Close()\n\n")
	b.WriteString("\tdata, err := io.ReadAll(resp.Body)\n")
	b.WriteString("\tif err != nil {\n\t\tpanic(err)\n\t}\n")
	b.WriteString("\tfmt.Println(string(data))\n")
	b.WriteString("}\n")

	formatted, err := imports.Process("snippet.go", []byte(b.String()), nil)
	if err != nil {
		return b.String()
	}
	return string(formatted)
}

// goString renders s as a Go string literal, preferring a raw literal
// so multi-line JSON stays readable.
func goString(s string) string {
	if strings.Contains(s, "`") {
		return strconv.Quote(s)
	}
	return "`" + s + "`"
}

// quoteSingle renders s as a single-quoted JS or Python string.
func quoteSingle(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", `\'`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return "'" + s + "'"
}

// shellQuote renders s as a POSIX single-quoted word, closing and
// reopening the quotes around any embedded quote.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// indentTail indents every line of s but the first.
func indentTail(s, prefix string) string {
	return strings.ReplaceAll(s, "\n", "\n"+prefix)
}

// pyLiteral renders a synthesized value as a Python literal. indent is
// the indentation of the construct the value is embedded in; nested
// containers add four spaces per level.
func pyLiteral(v any, indent string) string {
	inner := indent + "    "
	switch val := v.(type) {
	case nil:
		return "None"
	case bool:
		if val {
			return "True"
		}
		return "False"
	case string:
		return quoteSingle(val)
	case *orderedmap.Map[any]:
		if val.Len() == 0 {
			return "{}"
		}
		var b strings.Builder
		b.WriteString("{\n")
		for name, item := range val.All() {
			b.WriteString(inner + quoteSingle(name) + ": " + pyLiteral(item, inner) + ",\n")
		}
		b.WriteString(indent + "}")
		return b.String()
	case map[string]any:
		if len(val) == 0 {
			return "{}"
		}
		keys := make([]string, 0, len(val))
		for key := range val {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		var b strings.Builder
		b.WriteString("{\n")
		for _, key := range keys {
			b.WriteString(inner + quoteSingle(key) + ": " + pyLiteral(val[key], inner) + ",\n")
		}
		b.WriteString(indent + "}")
		return b.String()
	case []any:
		if len(val) == 0 {
			return "[]"
		}
		var b strings.Builder
		b.WriteString("[\n")
		for _, item := range val {
			b.WriteString(inner + pyLiteral(item, inner) + ",\n")
		}
		b.WriteString(indent + "]")
		return b.String()
	default:
		// Numbers; their JSON form is valid Python.
		data, err := json.Marshal(val)
		if err != nil {
			return "None"
		}
		return string(data)
	}
}
