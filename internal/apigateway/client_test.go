package apigateway

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/apigateway"
	"github.com/aws/aws-sdk-go-v2/service/apigateway/types"
	"github.com/aws/smithy-go"
)

type fakeAPI struct {
	pages     [][]types.RestApi
	listErr   error
	export    []byte
	exportErr error

	listCalls   int
	exportInput *apigateway.GetExportInput
}

func (f *fakeAPI) GetRestApis(_ context.Context, in *apigateway.GetRestApisInput, _ ...func(*apigateway.Options)) (*apigateway.GetRestApisOutput, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}

	page := 0
	if in.Position != nil {
		fmt.Sscanf(*in.Position, "page-%d", &page)
	}
	out := &apigateway.GetRestApisOutput{Items: f.pages[page]}
	if page+1 < len(f.pages) {
		out.Position = aws.String(fmt.Sprintf("page-%d", page+1))
	}
	return out, nil
}

func (f *fakeAPI) GetExport(_ context.Context, in *apigateway.GetExportInput, _ ...func(*apigateway.Options)) (*apigateway.GetExportOutput, error) {
	f.exportInput = in
	if f.exportErr != nil {
		return nil, f.exportErr
	}
	return &apigateway.GetExportOutput{Body: f.export}, nil
}

func restAPI(id, name string) types.RestApi {
	return types.RestApi{Id: aws.String(id), Name: aws.String(name)}
}

func TestRestAPIID(t *testing.T) {
	ctx := context.Background()

	t.Run("finds api on a later page", func(t *testing.T) {
		api := &fakeAPI{pages: [][]types.RestApi{
			{restAPI("a1", "prod-sample"), restAPI("a2", "dev-other")},
			{restAPI("b1", "dev-sample")},
		}}
		id, err := NewClient(api).RestAPIID(ctx, "dev", "sample")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if id != "b1" {
			t.Fatalf("expected b1, got %q", id)
		}
		if api.listCalls != 2 {
			t.Fatalf("expected 2 list calls, got %d", api.listCalls)
		}
	})

	t.Run("returns empty id when no api matches", func(t *testing.T) {
		api := &fakeAPI{pages: [][]types.RestApi{{restAPI("a1", "prod-sample")}}}
		id, err := NewClient(api).RestAPIID(ctx, "dev", "sample")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if id != "" {
			t.Fatalf("expected empty id, got %q", id)
		}
	})

	t.Run("returns empty id for no apis at all", func(t *testing.T) {
		api := &fakeAPI{pages: [][]types.RestApi{nil}}
		id, err := NewClient(api).RestAPIID(ctx, "dev", "sample")
		if err != nil || id != "" {
			t.Fatalf("expected empty id and no error, got %q, %v", id, err)
		}
	})

	t.Run("wraps list errors", func(t *testing.T) {
		cause := errors.New("boom")
		_, err := NewClient(&fakeAPI{listErr: cause}).RestAPIID(ctx, "dev", "sample")
		if !errors.Is(err, cause) {
			t.Fatalf("expected wrapped cause, got %v", err)
		}
	})
}

func TestExportSwagger(t *testing.T) {
	api := &fakeAPI{export: []byte(`{"swagger":"2.0"}`)}
	body, err := NewClient(api).ExportSwagger(context.Background(), "abc", "dev")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if string(body) != `{"swagger":"2.0"}` {
		t.Fatalf("unexpected body %q", body)
	}

	in := api.exportInput
	if aws.ToString(in.RestApiId) != "abc" || aws.ToString(in.StageName) != "dev" {
		t.Fatalf("unexpected export target: %s/%s", aws.ToString(in.RestApiId), aws.ToString(in.StageName))
	}
	if aws.ToString(in.ExportType) != "swagger" || aws.ToString(in.Accepts) != "application/json" {
		t.Fatalf("unexpected export format: %s %s", aws.ToString(in.ExportType), aws.ToString(in.Accepts))
	}
}

func TestIsAccessDenied(t *testing.T) {
	c := NewClient(&fakeAPI{})

	denied := fmt.Errorf("export: %w", &smithy.GenericAPIError{Code: "AccessDeniedException", Message: "nope"})
	if !c.IsAccessDenied(denied) {
		t.Fatal("expected wrapped AccessDeniedException to be detected")
	}

	other := &smithy.GenericAPIError{Code: "TooManyRequestsException"}
	if c.IsAccessDenied(other) {
		t.Fatal("expected other API error not to be access denied")
	}

	if c.IsAccessDenied(errors.New("AccessDeniedException")) {
		t.Fatal("expected plain error not to be access denied")
	}
}
