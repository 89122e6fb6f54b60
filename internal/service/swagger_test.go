package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/serverless-sample/internal/config"
)

var errDenied = errors.New("access denied")

type fakeDescriptionSource struct {
	restAPIID string
	idErr     error
	body      []byte
	exportErr error

	calls int
}

func (f *fakeDescriptionSource) RestAPIID(_ context.Context, _, _ string) (string, error) {
	f.calls++
	return f.restAPIID, f.idErr
}

func (f *fakeDescriptionSource) ExportSwagger(_ context.Context, _, _ string) ([]byte, error) {
	f.calls++
	return f.body, f.exportErr
}

func (f *fakeDescriptionSource) IsAccessDenied(err error) bool {
	return errors.Is(err, errDenied)
}

var validSettings = config.Swagger{
	RestAPIName: "sample",
	StageName:   "dev",
	Title:       "Sample API",
	Version:     "2.0.1",
}

const exportedSwagger = `{
  "swagger": "2.0",
  "info": {"title": "dev-sample", "version": "2024-01-01T00:00:00Z"},
  "paths": {
    "/swagger.json": {"get": {}, "options": {}},
    "/cities/{id}": {"get": {"summary": "city"}, "options": {}},
    "/health/check": {"get": {}}
  },
  "definitions": {"Empty": {"type": "object"}}
}`

func TestSwaggerServiceConfiguration(t *testing.T) {
	t.Run("reports every missing variable before calling the gateway", func(t *testing.T) {
		src := &fakeDescriptionSource{}
		_, err := NewSwaggerService(src, config.Swagger{StageName: "dev"}).GetSwaggerDescription(context.Background())
		requireKind(t, err, KindConfiguration, CodeMissingEnv)

		desc := err.(*Error).Description
		for _, key := range []string{"REST_API_NAME", "API_INFO_TITLE", "API_INFO_VERSION"} {
			if !strings.Contains(desc, key) {
				t.Fatalf("expected %s in %q", key, desc)
			}
		}
		if strings.Contains(desc, "STAGE_NAME") {
			t.Fatalf("did not expect STAGE_NAME in %q", desc)
		}
		if src.calls != 0 {
			t.Fatalf("expected no gateway calls, got %d", src.calls)
		}
	})
}

func TestSwaggerServiceGetSwaggerDescription(t *testing.T) {
	ctx := context.Background()

	t.Run("rewrites exported document", func(t *testing.T) {
		src := &fakeDescriptionSource{restAPIID: "abc", body: []byte(exportedSwagger)}
		doc, err := NewSwaggerService(src, validSettings).GetSwaggerDescription(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		paths := doc.Paths()
		if _, ok := paths["/swagger.json"]; ok {
			t.Fatal("expected /swagger.json path to be removed")
		}
		for name, item := range paths {
			if _, ok := item.(map[string]any)["options"]; ok {
				t.Fatalf("expected options to be removed from %s", name)
			}
		}
		city := paths["/cities/{id}"].(map[string]any)
		if _, ok := city["get"]; !ok {
			t.Fatal("expected get operation to survive")
		}

		info := doc.Info()
		if info["title"] != "Sample API" || info["version"] != "2.0.1" {
			t.Fatalf("unexpected info: %v", info)
		}
		if _, ok := doc["definitions"]; !ok {
			t.Fatal("expected untouched fields to survive")
		}
	})

	t.Run("unknown api name is not found", func(t *testing.T) {
		src := &fakeDescriptionSource{}
		_, err := NewSwaggerService(src, validSettings).GetSwaggerDescription(ctx)
		requireKind(t, err, KindNotFound, CodeInvalidName)
		if src.calls != 1 {
			t.Fatalf("expected export not to be called, got %d calls", src.calls)
		}
	})

	t.Run("access denied on lookup is forbidden", func(t *testing.T) {
		src := &fakeDescriptionSource{idErr: errDenied}
		_, err := NewSwaggerService(src, validSettings).GetSwaggerDescription(ctx)
		requireKind(t, err, KindForbidden, CodeMissingPermission)
	})

	t.Run("access denied on export is forbidden", func(t *testing.T) {
		src := &fakeDescriptionSource{restAPIID: "abc", exportErr: errDenied}
		_, err := NewSwaggerService(src, validSettings).GetSwaggerDescription(ctx)
		requireKind(t, err, KindForbidden, CodeMissingPermission)
	})

	t.Run("other gateway errors are internal", func(t *testing.T) {
		src := &fakeDescriptionSource{idErr: errors.New("throttled")}
		_, err := NewSwaggerService(src, validSettings).GetSwaggerDescription(ctx)
		requireKind(t, err, KindInternal, CodeGeneralError)
	})

	t.Run("invalid exported json is internal", func(t *testing.T) {
		src := &fakeDescriptionSource{restAPIID: "abc", body: []byte("not json")}
		_, err := NewSwaggerService(src, validSettings).GetSwaggerDescription(ctx)
		requireKind(t, err, KindInternal, CodeGeneralError)
	})

	t.Run("null export is internal", func(t *testing.T) {
		src := &fakeDescriptionSource{restAPIID: "abc", body: []byte("null")}
		_, err := NewSwaggerService(src, validSettings).GetSwaggerDescription(ctx)
		requireKind(t, err, KindInternal, CodeGeneralError)
	})

	t.Run("document without info gets one", func(t *testing.T) {
		src := &fakeDescriptionSource{restAPIID: "abc", body: []byte(`{"swagger":"2.0"}`)}
		doc, err := NewSwaggerService(src, validSettings).GetSwaggerDescription(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if doc.Info()["title"] != "Sample API" {
			t.Fatalf("unexpected info: %v", doc["info"])
		}
	})
}
