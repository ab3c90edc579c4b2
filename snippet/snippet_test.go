package snippet

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/oasdocs/oasdocs/docerrors"
	"github.com/oasdocs/oasdocs/openapi"
	"github.com/oasdocs/oasdocs/orderedmap"
	"github.com/oasdocs/oasdocs/outline"
)

const fixtureYAML = `openapi: 3.0.3
info:
  title: Snippet fixture
  version: 1.0.0
servers:
  - url: https://api.example.com/v1
paths:
  /pets/{petId}:
    get:
      parameters:
        - name: petId
          in: path
          required: true
          example: 123
        - name: limit
          in: query
          schema:
            type: integer
            default: 20
        - name: verbose
          in: query
          schema:
            type: boolean
      responses:
        "200":
          description: OK
    delete:
      parameters:
        - name: petId
          in: path
          example: 123
      requestBody:
        content:
          application/json:
            schema:
              type: object
              properties:
                reason:
                  type: string
      responses:
        "204":
          description: Deleted
  /pets:
    post:
      requestBody:
        $ref: '#/components/requestBodies/NewPet'
      responses:
        "201":
          description: Created
  /unknown/{token}:
    get:
      parameters:
        - name: token
          in: path
      responses:
        "200":
          description: OK
components:
  requestBodies:
    NewPet:
      content:
        application/json:
          schema:
            $ref: '#/components/schemas/Pet'
  schemas:
    Pet:
      type: object
      properties:
        name:
          type: string
        tag:
          type: string
          enum: [dog, cat]
`

func fixtureDoc(t *testing.T) *openapi.Document {
	t.Helper()
	var doc openapi.Document
	require.NoError(t, yaml.Unmarshal([]byte(fixtureYAML), &doc))
	return &doc
}

func fixtureEndpoint(t *testing.T, doc *openapi.Document, id string) outline.Endpoint {
	t.Helper()
	for _, ep := range outline.Endpoints(doc) {
		if ep.ID == id {
			return ep
		}
	}
	t.Fatalf("no endpoint %q", id)
	return outline.Endpoint{}
}

func TestTargets(t *testing.T) {
	assert.Equal(t, []Target{TargetCurl, TargetJavaScript, TargetPython, TargetGo}, Targets())
}

func TestGenerateUnknownTarget(t *testing.T) {
	doc := fixtureDoc(t)
	ep := fixtureEndpoint(t, doc, "get-pets-petId")

	_, err := Generate(Target("ruby"), doc, ep, Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, docerrors.ErrConfig)

	var cfgErr *docerrors.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "target", cfgErr.Option)
	assert.Equal(t, "ruby", cfgErr.Value)
}

func TestPathSubstitutionEveryTarget(t *testing.T) {
	doc := fixtureDoc(t)
	ep := fixtureEndpoint(t, doc, "get-pets-petId")

	for _, target := range Targets() {
		out, err := Generate(target, doc, ep, Options{})
		require.NoError(t, err, "target %s", target)
		assert.Contains(t, out, "/pets/123", "target %s", target)
	}
}

func TestQueryStringEncoding(t *testing.T) {
	doc := fixtureDoc(t)
	ep := fixtureEndpoint(t, doc, "get-pets-petId")

	out, err := Generate(TargetCurl, doc, ep, Options{})
	require.NoError(t, err)

	// limit has a default and is encoded; verbose has no sample value
	// and is silently left out.
	assert.Contains(t, out, "limit=20")
	assert.NotContains(t, out, "verbose")
}

func TestPathPlaceholder(t *testing.T) {
	doc := fixtureDoc(t)
	ep := fixtureEndpoint(t, doc, "get-unknown-token")

	out, err := Generate(TargetCurl, doc, ep, Options{})
	require.NoError(t, err)
	assert.Contains(t, out, "/unknown/<token>")
}

func TestBaseURL(t *testing.T) {
	doc := fixtureDoc(t)
	ep := fixtureEndpoint(t, doc, "get-pets-petId")

	out, err := Generate(TargetCurl, doc, ep, Options{})
	require.NoError(t, err)
	assert.Contains(t, out, "https://api.example.com/v1/pets/123")

	out, err = Generate(TargetCurl, doc, ep, Options{BaseURL: "http://localhost:8080/"})
	require.NoError(t, err)
	assert.Contains(t, out, "http://localhost:8080/pets/123")
	assert.NotContains(t, out, "api.example.com")
}

func TestCurlShape(t *testing.T) {
	doc := fixtureDoc(t)
	ep := fixtureEndpoint(t, doc, "get-pets-petId")

	out, err := Generate(TargetCurl, doc, ep, Options{})
	require.NoError(t, err)
	assert.Equal(t, "curl -X GET \\\n"+
		"  -H 'Content-Type: application/json' \\\n"+
		"  'https://api.example.com/v1/pets/123?limit=20'", out)
}

func TestHeadersOrderAndAuth(t *testing.T) {
	doc := fixtureDoc(t)
	ep := fixtureEndpoint(t, doc, "get-pets-petId")

	out, err := Generate(TargetCurl, doc, ep, Options{
		AuthToken: "secret",
		Headers:   map[string]string{"X-Request-Id": "42", "Accept": "application/json"},
	})
	require.NoError(t, err)

	assert.Contains(t, out, "-H 'Authorization: Bearer secret'")

	// Content-Type first, the rest alphabetical.
	ct := strings.Index(out, "Content-Type:")
	accept := strings.Index(out, "Accept:")
	auth := strings.Index(out, "Authorization:")
	reqID := strings.Index(out, "X-Request-Id:")
	require.NotEqual(t, -1, ct)
	assert.Less(t, ct, accept)
	assert.Less(t, accept, auth)
	assert.Less(t, auth, reqID)
}

func TestHeaderOverride(t *testing.T) {
	doc := fixtureDoc(t)
	ep := fixtureEndpoint(t, doc, "get-pets-petId")

	out, err := Generate(TargetCurl, doc, ep, Options{
		Headers: map[string]string{"Content-Type": "application/xml"},
	})
	require.NoError(t, err)
	assert.Contains(t, out, "'Content-Type: application/xml'")
	assert.NotContains(t, out, "'Content-Type: application/json'")
}

func TestBodyOnlyForBodyMethods(t *testing.T) {
	doc := fixtureDoc(t)

	post, err := Generate(TargetCurl, doc, fixtureEndpoint(t, doc, "post-pets"), Options{})
	require.NoError(t, err)
	assert.Contains(t, post, "-d '{")
	assert.Contains(t, post, `"name": "string"`)
	assert.Contains(t, post, `"tag": "dog"`)

	// DELETE declares a request body but never renders one.
	del, err := Generate(TargetCurl, doc, fixtureEndpoint(t, doc, "delete-pets-petId"), Options{})
	require.NoError(t, err)
	assert.NotContains(t, del, "-d ")

	get, err := Generate(TargetCurl, doc, fixtureEndpoint(t, doc, "get-pets-petId"), Options{})
	require.NoError(t, err)
	assert.NotContains(t, get, "-d ")
}

func TestJavaScriptShape(t *testing.T) {
	doc := fixtureDoc(t)

	out, err := Generate(TargetJavaScript, doc, fixtureEndpoint(t, doc, "post-pets"), Options{})
	require.NoError(t, err)
	assert.Contains(t, out, "const response = await fetch('https://api.example.com/v1/pets', {")
	assert.Contains(t, out, "method: 'POST'")
	assert.Contains(t, out, "'Content-Type': 'application/json'")
	assert.Contains(t, out, "body: JSON.stringify({")
	assert.Contains(t, out, "const data = await response.json();")
	assert.Contains(t, out, "console.log(data);")
}

func TestPythonShape(t *testing.T) {
	doc := fixtureDoc(t)

	post, err := Generate(TargetPython, doc, fixtureEndpoint(t, doc, "post-pets"), Options{})
	require.NoError(t, err)
	assert.Contains(t, post, "import requests")
	assert.Contains(t, post, "url = 'https://api.example.com/v1/pets'")
	assert.Contains(t, post, "payload = {")
	assert.Contains(t, post, "'name': 'string',")
	assert.Contains(t, post, "requests.post(url, headers=headers, json=payload)")
	assert.Contains(t, post, "print(response.json())")

	get, err := Generate(TargetPython, doc, fixtureEndpoint(t, doc, "get-pets-petId"), Options{})
	require.NoError(t, err)
	assert.Contains(t, get, "requests.get(url, headers=headers)")
	assert.NotContains(t, get, "payload")
}

func TestGoShape(t *testing.T) {
	doc := fixtureDoc(t)

	post, err := Generate(TargetGo, doc, fixtureEndpoint(t, doc, "post-pets"), Options{})
	require.NoError(t, err)
	assert.Contains(t, post, "package main")
	assert.Contains(t, post, "strings.NewReader(`{")
	assert.Contains(t, post, `http.NewRequest("POST", "https://api.example.com/v1/pets", body)`)
	assert.Contains(t, post, `req.Header.Set("Content-Type", "application/json")`)
	assert.Contains(t, post, "http.DefaultClient.Do(req)")
	assert.Contains(t, post, "io.ReadAll(resp.Body)")

	get, err := Generate(TargetGo, doc, fixtureEndpoint(t, doc, "get-pets-petId"), Options{})
	require.NoError(t, err)
	assert.Contains(t, get, `, nil)`)
	assert.NotContains(t, get, "strings.NewReader")
}

func TestPyLiteral(t *testing.T) {
	assert.Equal(t, "None", pyLiteral(nil, ""))
	assert.Equal(t, "True", pyLiteral(true, ""))
	assert.Equal(t, "False", pyLiteral(false, ""))
	assert.Equal(t, "42", pyLiteral(42, ""))
	assert.Equal(t, "2.5", pyLiteral(2.5, ""))
	assert.Equal(t, `'O\'Reilly'`, pyLiteral("O'Reilly", ""))
	assert.Equal(t, "[]", pyLiteral([]any{}, ""))
	assert.Equal(t, "{}", pyLiteral(map[string]any{}, ""))

	nested := orderedmap.New[any]()
	nested.Set("name", "string")
	nested.Set("ok", true)
	nested.Set("note", nil)
	assert.Equal(t, "{\n"+
		"    'name': 'string',\n"+
		"    'ok': True,\n"+
		"    'note': None,\n"+
		"}", pyLiteral(nested, ""))

	assert.Equal(t, "[\n    1,\n    2,\n]", pyLiteral([]any{1, 2}, ""))
}

func TestQuoting(t *testing.T) {
	assert.Equal(t, `'it'\''s'`, shellQuote("it's"))
	assert.Equal(t, `'a\'b'`, quoteSingle("a'b"))
	assert.Equal(t, "`{\n}`", goString("{\n}"))
	assert.Equal(t, `"a`+"`"+`b"`, goString("a`b"))
}
